package service

import (
	"context"
	"errors"
	"fmt"
	"skill_manager_backend/internal/model"
	"skill_manager_backend/internal/util"
	"skill_manager_backend/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type ProfileReader interface {
	FindProfile(id uint) (*model.User, error)
}

type CourseLister interface {
	FindAll() ([]model.Course, error)
}

type RoleFinder interface {
	FindByName(name string) (*model.Role, error)
}

type AnalysisService struct {
	ai      CompletionClient
	users   ProfileReader
	courses CourseLister
	roles   RoleFinder
}

func NewAnalysisService(ai CompletionClient, users ProfileReader, courses CourseLister, roles RoleFinder) *AnalysisService {
	return &AnalysisService{
		ai:      ai,
		users:   users,
		courses: courses,
		roles:   roles,
	}
}

type AnalysisRequest struct {
	UserID uint   `json:"user_id" binding:"required"`
	Role   string `json:"role" binding:"required"`
}

// AnalyzeSkillGap 对比用户档案与目标岗位。
// 未配置凭证返回 util.ErrAINotConfigured；模型调用或解析失败时返回默认结果而不是错误。
func (s *AnalysisService) AnalyzeSkillGap(ctx context.Context, req AnalysisRequest) (*model.GapAnalysisResult, error) {
	if !s.ai.Configured() {
		return nil, util.ErrAINotConfigured
	}

	user, err := s.users.FindProfile(req.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}

	courses, err := s.courses.FindAll()
	if err != nil {
		return nil, err
	}

	// 岗位未录入时仅按名称分析
	role, err := s.roles.FindByName(req.Role)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		role = nil
	}

	prompt := BuildGapAnalysisPrompt(user, req.Role, role, courses)

	raw, err := s.ai.Complete(ctx, prompt, s.ai.AnalysisOptions())
	if err != nil {
		return model.FailedGapAnalysis(fmt.Sprintf("AI analysis failed: %v", err)), nil
	}

	result, err := ParseGapAnalysis(raw)
	if err != nil {
		logger.Log.Warn("差距分析解析失败", zap.Uint("user_id", req.UserID), zap.String("role", req.Role), zap.Error(err))
		return model.FailedGapAnalysis(fmt.Sprintf("AI analysis failed: %v", err)), nil
	}

	logger.Log.Info("差距分析完成",
		zap.Uint("user_id", req.UserID),
		zap.String("role", req.Role),
		zap.Int("fit_score", result.Analysis.FitScore))
	return result, nil
}
