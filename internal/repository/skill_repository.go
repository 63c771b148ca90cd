package repository

import (
	"skill_manager_backend/internal/model"

	"gorm.io/gorm"
)

type SkillRepository struct {
	DB *gorm.DB
}

func NewSkillRepository(db *gorm.DB) *SkillRepository {
	return &SkillRepository{DB: db}
}

func (r *SkillRepository) Create(skill *model.Skill) error {
	return r.DB.Create(skill).Error
}

func (r *SkillRepository) FindByID(id uint) (*model.Skill, error) {
	var skill model.Skill
	err := r.DB.First(&skill, id).Error
	if err != nil {
		return nil, err
	}
	return &skill, nil
}

func (r *SkillRepository) UpdateLevel(skill *model.Skill, level int) error {
	skill.Level = level
	return r.DB.Model(skill).Update("level", level).Error
}

// Delete 返回是否删除了记录
func (r *SkillRepository) Delete(id uint) (bool, error) {
	result := r.DB.Delete(&model.Skill{}, id)
	return result.RowsAffected > 0, result.Error
}

type CertificationRepository struct {
	DB *gorm.DB
}

func NewCertificationRepository(db *gorm.DB) *CertificationRepository {
	return &CertificationRepository{DB: db}
}

func (r *CertificationRepository) Create(cert *model.Certification) error {
	return r.DB.Create(cert).Error
}

func (r *CertificationRepository) Delete(id uint) (bool, error) {
	result := r.DB.Delete(&model.Certification{}, id)
	return result.RowsAffected > 0, result.Error
}

type AchievementRepository struct {
	DB *gorm.DB
}

func NewAchievementRepository(db *gorm.DB) *AchievementRepository {
	return &AchievementRepository{DB: db}
}

func (r *AchievementRepository) Create(achievement *model.Achievement) error {
	return r.DB.Create(achievement).Error
}

func (r *AchievementRepository) Delete(id uint) (bool, error) {
	result := r.DB.Delete(&model.Achievement{}, id)
	return result.RowsAffected > 0, result.Error
}
