package service

import (
	"context"
	"errors"
	"skill_manager_backend/internal/model"
	"skill_manager_backend/internal/util"
	"skill_manager_backend/pkg/logger"
	"skill_manager_backend/pkg/monitoring"
	"strconv"
	"time"

	"go.uber.org/zap"
)

type QuizService struct {
	ai       CompletionClient
	sessions QuizSessionStore
	now      func() time.Time
}

func NewQuizService(ai CompletionClient, sessions QuizSessionStore) *QuizService {
	return &QuizService{
		ai:       ai,
		sessions: sessions,
		now:      time.Now,
	}
}

type QuizSubmission struct {
	Answers []int `json:"answers" binding:"required"`
}

// GenerateQuiz 生成测验并覆盖该技能之前的会话
func (s *QuizService) GenerateQuiz(ctx context.Context, skill string) (*model.Quiz, error) {
	if !s.ai.Configured() {
		return nil, util.ErrAINotConfigured
	}

	raw, err := s.ai.Complete(ctx, BuildQuizPrompt(skill), s.ai.QuizOptions())
	if err != nil {
		return nil, err
	}

	quiz, err := ParseQuiz(raw)
	if err != nil {
		logger.Log.Warn("测验解析失败", zap.String("skill", skill), zap.Error(err))
		return nil, err
	}
	if quiz.Skill == "" {
		quiz.Skill = skill
	}

	if err := s.sessions.Put(ctx, model.NewQuizSession(skill, quiz, s.now())); err != nil {
		return nil, err
	}

	monitoring.QuizGeneratedCounter.Inc()
	logger.Log.Info("测验生成完成", zap.String("skill", skill), zap.Int("questions", len(quiz.Questions)))
	return quiz, nil
}

// SubmitQuiz 对最近一次生成的测验评分，评分后会话失效
func (s *QuizService) SubmitQuiz(ctx context.Context, skill string, answers []int) (*model.QuizResult, error) {
	if !s.ai.Configured() {
		return nil, util.ErrAINotConfigured
	}

	session, err := s.sessions.Take(ctx, skill)
	if err != nil {
		return nil, err
	}

	result, err := ScoreQuiz(answers, session.CorrectAnswers, session.Questions)
	if err != nil {
		// 答案数量不符时不消耗会话，允许重新提交；期间已生成的新测验优先
		if errors.Is(err, util.ErrAnswerCountMismatch) {
			if putErr := s.sessions.Restore(ctx, session); putErr != nil {
				logger.Log.Warn("恢复测验会话失败", zap.String("skill", skill), zap.Error(putErr))
			}
		}
		return nil, err
	}

	monitoring.QuizSubmittedCounter.WithLabelValues(strconv.Itoa(result.SuggestedLevel)).Inc()
	logger.Log.Info("测验评分完成",
		zap.String("skill", skill),
		zap.Int("score", result.Score),
		zap.Int("suggested_level", result.SuggestedLevel))
	return result, nil
}
