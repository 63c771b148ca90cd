package model

const (
	CourseBeginner     = "beginner"
	CourseIntermediate = "intermediate"
	CourseAdvanced     = "advanced"
)

// Course 课程目录条目，只读参考数据
type Course struct {
	BaseModel
	Title        string `gorm:"size:200;not null" json:"title"`
	Provider     string `gorm:"size:100;not null" json:"provider"`
	Level        string `gorm:"size:20;not null" json:"level"`
	RelatedSkill string `gorm:"size:100;not null;index" json:"related_skill"`
}

func (Course) TableName() string {
	return "courses"
}
