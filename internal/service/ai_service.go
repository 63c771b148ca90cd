package service

import (
	"context"
	"errors"
	"fmt"
	"skill_manager_backend/internal/config"
	"skill_manager_backend/internal/util"
	"skill_manager_backend/pkg/logger"
	"skill_manager_backend/pkg/monitoring"
	"skill_manager_backend/pkg/tracing"
	"sync"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const (
	OperationAnalysis = "analysis"
	OperationQuiz     = "quiz"
)

// CompletionOptions 单次调用的模型参数
type CompletionOptions struct {
	Operation   string
	Temperature float32
	MaxTokens   int
}

// CompletionClient 大模型调用抽象，便于替换与测试
type CompletionClient interface {
	Configured() bool
	Complete(ctx context.Context, prompt string, opts CompletionOptions) (string, error)
	AnalysisOptions() CompletionOptions
	QuizOptions() CompletionOptions
}

// UpstreamError 网络、接口或响应异常
type UpstreamError struct {
	Op  string
	Err error
}

func (e *UpstreamError) Error() string {
	return e.Err.Error()
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// AIService 通过 OpenAI 兼容接口（默认 Groq）调用对话补全，不重试
type AIService struct {
	mu     sync.RWMutex
	config config.AIConfig
	client *openai.Client
}

func NewAIService(cfg config.AIConfig) *AIService {
	s := &AIService{}
	s.UpdateConfig(cfg)
	return s
}

// UpdateConfig 配置热加载时替换凭证和模型
func (s *AIService) UpdateConfig(cfg config.AIConfig) {
	var client *openai.Client
	if cfg.Configured() {
		clientConfig := openai.DefaultConfig(cfg.APIKey)
		if cfg.BaseURL != "" {
			clientConfig.BaseURL = cfg.BaseURL
		}
		client = openai.NewClientWithConfig(clientConfig)
	}

	s.mu.Lock()
	s.config = cfg
	s.client = client
	s.mu.Unlock()
}

func (s *AIService) Configured() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.client != nil
}

func (s *AIService) AnalysisOptions() CompletionOptions {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return CompletionOptions{
		Operation:   OperationAnalysis,
		Temperature: s.config.AnalysisTemperature,
		MaxTokens:   s.config.AnalysisMaxTokens,
	}
}

func (s *AIService) QuizOptions() CompletionOptions {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return CompletionOptions{
		Operation:   OperationQuiz,
		Temperature: s.config.QuizTemperature,
		MaxTokens:   s.config.QuizMaxTokens,
	}
}

// Complete 发送单条 user 消息并返回助手回复原文
func (s *AIService) Complete(ctx context.Context, prompt string, opts CompletionOptions) (string, error) {
	s.mu.RLock()
	client, modelName := s.client, s.config.Model
	s.mu.RUnlock()

	// 未配置凭证时不发起网络请求
	if client == nil {
		return "", util.ErrAINotConfigured
	}

	ctx, span := tracing.Tracer.Start(ctx, "ai.complete", trace.WithAttributes(
		attribute.String("ai.operation", opts.Operation),
		attribute.String("ai.model", modelName),
	))
	defer span.End()

	start := time.Now()
	content, err := s.complete(ctx, client, modelName, prompt, opts)
	elapsed := time.Since(start)

	status := "ok"
	if err != nil {
		status = "error"
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		logger.Log.Warn("AI completion failed",
			zap.String("operation", opts.Operation),
			zap.String("model", modelName),
			zap.Duration("latency", elapsed),
			zap.Error(err))
	} else {
		logger.Log.Info("AI completion finished",
			zap.String("operation", opts.Operation),
			zap.String("model", modelName),
			zap.Duration("latency", elapsed),
			zap.Int("content_length", len(content)))
	}

	monitoring.AIRequestCounter.WithLabelValues(opts.Operation, status).Inc()
	monitoring.AIRequestDuration.WithLabelValues(opts.Operation).Observe(elapsed.Seconds())

	return content, err
}

func (s *AIService) complete(ctx context.Context, client *openai.Client, modelName, prompt string, opts CompletionOptions) (string, error) {
	resp, err := client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: modelName,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: opts.Temperature,
		MaxTokens:   opts.MaxTokens,
	})
	if err != nil {
		var apiErr *openai.APIError
		if errors.As(err, &apiErr) {
			return "", &UpstreamError{Op: opts.Operation, Err: fmt.Errorf("AI API error (status %d): %s", apiErr.HTTPStatusCode, apiErr.Message)}
		}
		return "", &UpstreamError{Op: opts.Operation, Err: err}
	}

	if len(resp.Choices) == 0 {
		return "", &UpstreamError{Op: opts.Operation, Err: errors.New("AI returned no choices")}
	}

	return resp.Choices[0].Message.Content, nil
}
