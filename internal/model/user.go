package model

type UserRole string

const (
	Member UserRole = "member"
	Admin  UserRole = "admin"
)

// swagger:model User
type User struct {
	BaseModel
	Email          string          `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Name           string          `gorm:"size:100;not null" json:"name"`
	Skills         []Skill         `gorm:"constraint:OnDelete:CASCADE" json:"skills"`
	Certifications []Certification `gorm:"constraint:OnDelete:CASCADE" json:"certifications"`
	Achievements   []Achievement   `gorm:"constraint:OnDelete:CASCADE" json:"achievements"`
}

func (User) TableName() string {
	return "users"
}

// Skill 用户掌握的技能，等级 1-5
type Skill struct {
	BaseModel
	UserID uint   `gorm:"index;not null" json:"user_id"`
	Name   string `gorm:"size:100;not null" json:"name"`
	Level  int    `gorm:"not null" json:"level"`
}

func (Skill) TableName() string {
	return "skills"
}

type Certification struct {
	BaseModel
	UserID       uint   `gorm:"index;not null" json:"user_id"`
	Name         string `gorm:"size:200;not null" json:"name"`
	Issuer       string `gorm:"size:200;not null" json:"issuer"`
	DateObtained string `gorm:"size:50;not null" json:"date_obtained"`
}

func (Certification) TableName() string {
	return "certifications"
}
