package service

import (
	"errors"
	"skill_manager_backend/internal/model"
	"skill_manager_backend/internal/repository"
	"skill_manager_backend/internal/util"

	"gorm.io/gorm"
)

type UserService struct {
	UserRepo          *repository.UserRepository
	SkillRepo         *repository.SkillRepository
	CertificationRepo *repository.CertificationRepository
	AchievementRepo   *repository.AchievementRepository
}

func NewUserService(
	userRepo *repository.UserRepository,
	skillRepo *repository.SkillRepository,
	certificationRepo *repository.CertificationRepository,
	achievementRepo *repository.AchievementRepository,
) *UserService {
	return &UserService{
		UserRepo:          userRepo,
		SkillRepo:         skillRepo,
		CertificationRepo: certificationRepo,
		AchievementRepo:   achievementRepo,
	}
}

type CreateUserRequest struct {
	Email string `json:"email" binding:"required,email"`
	Name  string `json:"name" binding:"required"`
}

type SkillRequest struct {
	Name  string `json:"name" binding:"required"`
	Level int    `json:"level" binding:"required,min=1,max=5"`
}

type SkillUpdateRequest struct {
	Level int `json:"level" binding:"required,min=1,max=5"`
}

type CertificationRequest struct {
	Name         string `json:"name" binding:"required"`
	Issuer       string `json:"issuer" binding:"required"`
	DateObtained string `json:"date_obtained" binding:"required"`
}

type AchievementRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	Date        string `json:"date" binding:"required"`
}

func (s *UserService) CreateUser(req CreateUserRequest) (*model.User, error) {
	_, err := s.UserRepo.FindByEmail(req.Email)
	if err == nil {
		return nil, util.ErrEmailRegistered
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	user := &model.User{
		Email:          req.Email,
		Name:           req.Name,
		Skills:         []model.Skill{},
		Certifications: []model.Certification{},
		Achievements:   []model.Achievement{},
	}
	if err := s.UserRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// GetUser 返回用户及其技能、证书、成就
func (s *UserService) GetUser(id uint) (*model.User, error) {
	user, err := s.UserRepo.FindProfile(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *UserService) ListUsers(skip, limit int) ([]model.User, error) {
	if limit <= 0 {
		limit = util.DefaultPageLimit
	}
	if limit > util.MaxPageLimit {
		limit = util.MaxPageLimit
	}
	users, err := s.UserRepo.List(skip, limit)
	if err != nil {
		return nil, err
	}
	if users == nil {
		users = []model.User{}
	}
	return users, nil
}

func (s *UserService) ensureUser(userID uint) error {
	_, err := s.UserRepo.FindByID(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return util.ErrUserNotFound
	}
	return err
}

func (s *UserService) AddSkill(userID uint, req SkillRequest) (*model.Skill, error) {
	if err := s.ensureUser(userID); err != nil {
		return nil, err
	}

	skill := &model.Skill{UserID: userID, Name: req.Name, Level: req.Level}
	if err := s.SkillRepo.Create(skill); err != nil {
		return nil, err
	}
	return skill, nil
}

func (s *UserService) UpdateSkill(skillID uint, req SkillUpdateRequest) (*model.Skill, error) {
	skill, err := s.SkillRepo.FindByID(skillID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrSkillNotFound
		}
		return nil, err
	}

	if err := s.SkillRepo.UpdateLevel(skill, req.Level); err != nil {
		return nil, err
	}
	return skill, nil
}

func (s *UserService) DeleteSkill(skillID uint) error {
	deleted, err := s.SkillRepo.Delete(skillID)
	if err != nil {
		return err
	}
	if !deleted {
		return util.ErrSkillNotFound
	}
	return nil
}

func (s *UserService) AddCertification(userID uint, req CertificationRequest) (*model.Certification, error) {
	if err := s.ensureUser(userID); err != nil {
		return nil, err
	}

	cert := &model.Certification{
		UserID:       userID,
		Name:         req.Name,
		Issuer:       req.Issuer,
		DateObtained: req.DateObtained,
	}
	if err := s.CertificationRepo.Create(cert); err != nil {
		return nil, err
	}
	return cert, nil
}

func (s *UserService) DeleteCertification(id uint) error {
	deleted, err := s.CertificationRepo.Delete(id)
	if err != nil {
		return err
	}
	if !deleted {
		return util.ErrCertificationNotFound
	}
	return nil
}

func (s *UserService) AddAchievement(userID uint, req AchievementRequest) (*model.Achievement, error) {
	if err := s.ensureUser(userID); err != nil {
		return nil, err
	}

	achievement := &model.Achievement{
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
	}
	if err := s.AchievementRepo.Create(achievement); err != nil {
		return nil, err
	}
	return achievement, nil
}

func (s *UserService) DeleteAchievement(id uint) error {
	deleted, err := s.AchievementRepo.Delete(id)
	if err != nil {
		return err
	}
	if !deleted {
		return util.ErrAchievementNotFound
	}
	return nil
}
