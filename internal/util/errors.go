package util

import "errors"

var (
	ErrUserNotFound          = errors.New("User not found")
	ErrEmailRegistered       = errors.New("Email already registered")
	ErrSkillNotFound         = errors.New("Skill not found")
	ErrCertificationNotFound = errors.New("Certification not found")
	ErrAchievementNotFound   = errors.New("Achievement not found")
	ErrRoleExists            = errors.New("Role already exists")
	ErrPermissionDenied      = errors.New("permission denied")

	// 以下错误在 AI 接口边界转换为 {error: ...} 载荷
	ErrAINotConfigured     = errors.New("AI API key not configured")
	ErrQuizSessionNotFound = errors.New("No active quiz found for this skill. Generate a quiz first.")
	ErrAnswerCountMismatch = errors.New("Number of answers does not match number of questions")
)
