package model

type Achievement struct {
	BaseModel
	UserID      uint   `gorm:"index;not null" json:"user_id"`
	Title       string `gorm:"size:200;not null" json:"title"`
	Description string `gorm:"type:text;not null" json:"description"`
	Date        string `gorm:"size:50;not null" json:"date"`
}

func (Achievement) TableName() string {
	return "achievements"
}
