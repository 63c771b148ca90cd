package model

// Role 岗位及其技能要求，Requirements 为 技能名 -> 要求等级
type Role struct {
	BaseModel
	Name         string         `gorm:"size:100;uniqueIndex;not null" json:"name"`
	Requirements map[string]int `gorm:"serializer:json;type:text;not null" json:"requirements"`
}

func (Role) TableName() string {
	return "roles"
}
