package service

import (
	"errors"
	"fmt"
	"skill_manager_backend/internal/model"
	"skill_manager_backend/internal/repository"
	"skill_manager_backend/internal/util"

	"gorm.io/gorm"
)

// CatalogService 管理员维护的岗位与课程目录
type CatalogService struct {
	RoleRepo   *repository.RoleRepository
	CourseRepo *repository.CourseRepository
}

func NewCatalogService(roleRepo *repository.RoleRepository, courseRepo *repository.CourseRepository) *CatalogService {
	return &CatalogService{RoleRepo: roleRepo, CourseRepo: courseRepo}
}

type RoleRequest struct {
	Name         string         `json:"name" binding:"required"`
	Requirements map[string]int `json:"requirements" binding:"required"`
}

type CourseRequest struct {
	Title        string `json:"title" binding:"required"`
	Provider     string `json:"provider" binding:"required"`
	Level        string `json:"level" binding:"required"`
	RelatedSkill string `json:"related_skill" binding:"required"`
}

func (r RoleRequest) Validate() error {
	for skill, level := range r.Requirements {
		if level < 1 || level > 5 {
			return fmt.Errorf("requirement level for %q must be between 1 and 5", skill)
		}
	}
	return nil
}

func (s *CatalogService) ListRoles() ([]model.Role, error) {
	roles, err := s.RoleRepo.FindAll()
	if err != nil {
		return nil, err
	}
	if roles == nil {
		roles = []model.Role{}
	}
	return roles, nil
}

func (s *CatalogService) CreateRole(req RoleRequest) (*model.Role, error) {
	_, err := s.RoleRepo.FindByName(req.Name)
	if err == nil {
		return nil, util.ErrRoleExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	role := &model.Role{Name: req.Name, Requirements: req.Requirements}
	if err := s.RoleRepo.Create(role); err != nil {
		return nil, err
	}
	return role, nil
}

func (s *CatalogService) ListCourses() ([]model.Course, error) {
	courses, err := s.CourseRepo.FindAll()
	if err != nil {
		return nil, err
	}
	if courses == nil {
		courses = []model.Course{}
	}
	return courses, nil
}

func (s *CatalogService) CreateCourse(req CourseRequest) (*model.Course, error) {
	course := &model.Course{
		Title:        req.Title,
		Provider:     req.Provider,
		Level:        req.Level,
		RelatedSkill: req.RelatedSkill,
	}
	if err := s.CourseRepo.Create(course); err != nil {
		return nil, err
	}
	return course, nil
}
