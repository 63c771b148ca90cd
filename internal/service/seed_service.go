package service

import (
	"errors"
	"fmt"
	"os"
	"skill_manager_backend/internal/model"
	"skill_manager_backend/internal/repository"
	"skill_manager_backend/pkg/logger"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

// SeedData 初始数据文件结构
type SeedData struct {
	DefaultUser *SeedUser    `yaml:"default_user"`
	Roles       []SeedRole   `yaml:"roles"`
	Courses     []SeedCourse `yaml:"courses"`
}

type SeedUser struct {
	Email string `yaml:"email"`
	Name  string `yaml:"name"`
}

type SeedRole struct {
	Name         string         `yaml:"name"`
	Requirements map[string]int `yaml:"requirements"`
}

type SeedCourse struct {
	Title        string `yaml:"title"`
	Provider     string `yaml:"provider"`
	Level        string `yaml:"level"`
	RelatedSkill string `yaml:"related_skill"`
}

// SeedReport 本次写入的数量，已存在的记录不计入
type SeedReport struct {
	UserCreated    bool
	RolesCreated   int
	CoursesCreated int
}

type SeedService struct {
	DB *gorm.DB
}

func NewSeedService(db *gorm.DB) *SeedService {
	return &SeedService{DB: db}
}

func LoadSeedFile(path string) (*SeedData, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}

	var data SeedData
	if err := yaml.Unmarshal(content, &data); err != nil {
		return nil, fmt.Errorf("parse seed file %s: %w", path, err)
	}
	return &data, nil
}

func (s *SeedService) SeedFromFile(path string) (*SeedReport, error) {
	data, err := LoadSeedFile(path)
	if err != nil {
		return nil, err
	}
	return s.Seed(data)
}

// Seed 幂等写入：用户按邮箱、岗位按名称、课程按标题判断是否已存在，整体在一个事务内完成
func (s *SeedService) Seed(data *SeedData) (*SeedReport, error) {
	report := &SeedReport{}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		userRepo := repository.NewUserRepository(tx)
		roleRepo := repository.NewRoleRepository(tx)
		courseRepo := repository.NewCourseRepository(tx)

		if data.DefaultUser != nil && data.DefaultUser.Email != "" {
			_, err := userRepo.FindByEmail(data.DefaultUser.Email)
			switch {
			case errors.Is(err, gorm.ErrRecordNotFound):
				user := &model.User{Email: data.DefaultUser.Email, Name: data.DefaultUser.Name}
				if err := userRepo.Create(user); err != nil {
					return err
				}
				report.UserCreated = true
			case err != nil:
				return err
			}
		}

		for _, r := range data.Roles {
			_, err := roleRepo.FindByName(r.Name)
			if err == nil {
				continue
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}

			requirements := r.Requirements
			if requirements == nil {
				requirements = map[string]int{}
			}
			if err := roleRepo.Create(&model.Role{Name: r.Name, Requirements: requirements}); err != nil {
				return err
			}
			report.RolesCreated++
		}

		for _, c := range data.Courses {
			_, err := courseRepo.FindByTitle(c.Title)
			if err == nil {
				continue
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}

			course := &model.Course{
				Title:        c.Title,
				Provider:     c.Provider,
				Level:        c.Level,
				RelatedSkill: c.RelatedSkill,
			}
			if err := courseRepo.Create(course); err != nil {
				return err
			}
			report.CoursesCreated++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Log.Info("初始数据写入完成",
		zap.Bool("user_created", report.UserCreated),
		zap.Int("roles_created", report.RolesCreated),
		zap.Int("courses_created", report.CoursesCreated))
	return report, nil
}
