package repository

import (
	"skill_manager_backend/internal/model"

	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) Create(user *model.User) error {
	return r.DB.Create(user).Error
}

func (r *UserRepository) FindByID(id uint) (*model.User, error) {
	var user model.User
	err := r.DB.First(&user, id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// FindProfile 加载用户及其技能、证书、成就（三次独立查询，不保证快照一致）
func (r *UserRepository) FindProfile(id uint) (*model.User, error) {
	var user model.User
	err := r.DB.
		Preload("Skills", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		Preload("Certifications", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		Preload("Achievements", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		First(&user, id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByEmail(email string) (*model.User, error) {
	var user model.User
	err := r.DB.Where("email = ?", email).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) List(skip, limit int) ([]model.User, error) {
	var users []model.User
	err := r.DB.
		Preload("Skills").
		Preload("Certifications").
		Preload("Achievements").
		Order("id").
		Offset(skip).Limit(limit).
		Find(&users).Error
	return users, err
}
