package service

import (
	"context"
	"path/filepath"
	"skill_manager_backend/internal/config"
	"skill_manager_backend/pkg/database"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// fakeCompletionClient 按操作返回预设回复并记录提示词
type fakeCompletionClient struct {
	mu         sync.Mutex
	configured bool
	replies    map[string]string
	errs       map[string]error
	prompts    []string
}

func newFakeClient() *fakeCompletionClient {
	return &fakeCompletionClient{
		configured: true,
		replies:    map[string]string{},
		errs:       map[string]error{},
	}
}

func (f *fakeCompletionClient) Configured() bool { return f.configured }

func (f *fakeCompletionClient) Complete(_ context.Context, prompt string, opts CompletionOptions) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.prompts = append(f.prompts, prompt)
	if err := f.errs[opts.Operation]; err != nil {
		return "", err
	}
	return f.replies[opts.Operation], nil
}

func (f *fakeCompletionClient) AnalysisOptions() CompletionOptions {
	return CompletionOptions{Operation: OperationAnalysis, Temperature: 0.7, MaxTokens: 2000}
}

func (f *fakeCompletionClient) QuizOptions() CompletionOptions {
	return CompletionOptions{Operation: OperationQuiz, Temperature: 0.8, MaxTokens: 1500}
}

func (f *fakeCompletionClient) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.prompts)
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Open(&config.DatabaseConfig{
		Driver: config.DriverSQLite,
		Path:   filepath.Join(t.TempDir(), "test.db"),
	}, "test")
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

const pythonQuizReply = "```json\n" + `{
  "skill": "Python",
  "questions": [
    {"q": "What does len([1, 2]) return?", "options": ["1", "2", "3", "Error"], "correct": 1, "difficulty": "Beginner"},
    {"q": "Which keyword defines a generator?", "options": ["return", "yield", "async", "lambda"], "correct": 1, "difficulty": "intermediate"},
    {"q": "What is a decorator?", "options": ["A class", "A wrapper function", "A loop", "A module"], "correct": 1, "difficulty": "intermediate"},
    {"q": "What does the GIL limit?", "options": ["Memory", "I/O", "Parallel bytecode execution", "Imports"], "correct": 2}
  ]
}` + "\n```"
