package service

import (
	"context"
	"errors"
	"skill_manager_backend/internal/model"
	"skill_manager_backend/internal/util"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newQuizFixture() (*QuizService, *fakeCompletionClient, *MemoryQuizSessionStore) {
	client := newFakeClient()
	client.replies[OperationQuiz] = pythonQuizReply
	store := NewMemoryQuizSessionStore(30 * time.Minute)
	return NewQuizService(client, store), client, store
}

func TestQuizService_GenerateAndSubmit(t *testing.T) {
	ctx := context.Background()
	svc, client, _ := newQuizFixture()

	quiz, err := svc.GenerateQuiz(ctx, "Python")
	require.NoError(t, err)
	require.Len(t, quiz.Questions, 4)
	assert.Contains(t, client.prompts[0], "for the skill: Python")

	// 正确答案为 [1,1,1,2]
	result, err := svc.SubmitQuiz(ctx, "Python", []int{1, 1, 0, 2})
	require.NoError(t, err)
	assert.Equal(t, 75, result.Score)
	assert.Equal(t, 4, result.SuggestedLevel)
	assert.True(t, result.AIUsed)
	assert.False(t, result.DetailedResults[2].IsCorrect)
	assert.Equal(t, "A wrapper function", result.DetailedResults[2].CorrectAnswer)

	// 会话只能提交一次
	_, err = svc.SubmitQuiz(ctx, "Python", []int{1, 1, 1, 2})
	assert.ErrorIs(t, err, util.ErrQuizSessionNotFound)
}

func TestQuizService_SessionsAreKeyedBySkill(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newQuizFixture()

	_, err := svc.GenerateQuiz(ctx, "Python")
	require.NoError(t, err)

	_, err = svc.SubmitQuiz(ctx, "Rust", []int{0, 0, 0, 0})
	assert.ErrorIs(t, err, util.ErrQuizSessionNotFound)
	assert.Equal(t, "No active quiz found for this skill. Generate a quiz first.", err.Error())

	result, err := svc.SubmitQuiz(ctx, "Python", []int{1, 1, 1, 2})
	require.NoError(t, err)
	assert.Equal(t, 100, result.Score)
	assert.Equal(t, 5, result.SuggestedLevel)
}

const goQuizReply = `{"skill":"Go","questions":[
  {"q":"q1","options":["a","b","c","d"],"correct":1,"difficulty":"beginner"},
  {"q":"q2","options":["a","b","c","d"],"correct":1,"difficulty":"intermediate"},
  {"q":"q3","options":["a","b","c","d"],"correct":0,"difficulty":"intermediate"},
  {"q":"q4","options":["a","b","c","d"],"correct":0,"difficulty":"advanced"}
]}`

const goSingleQuestionReply = `{"skill":"Go","questions":[{"q":"?","options":["a","b","c","d"],"correct":3,"difficulty":"advanced"}]}`

func TestQuizService_RegenerateOverwrites(t *testing.T) {
	ctx := context.Background()
	svc, client, _ := newQuizFixture()

	first, err := svc.GenerateQuiz(ctx, "Go")
	require.NoError(t, err)
	firstAnswers := make([]int, len(first.Questions))
	for i, q := range first.Questions {
		firstAnswers[i] = q.Correct
	}

	// 第二次生成覆盖第一次，第一份答案按第二份答案评分
	client.replies[OperationQuiz] = goQuizReply
	_, err = svc.GenerateQuiz(ctx, "Go")
	require.NoError(t, err)

	result, err := svc.SubmitQuiz(ctx, "Go", firstAnswers)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 1, 1, 2}, firstAnswers)
	assert.Equal(t, 50, result.Score)
	assert.Equal(t, 2, result.SuggestedLevel)
	assert.True(t, result.DetailedResults[0].IsCorrect)
	assert.False(t, result.DetailedResults[2].IsCorrect)
	assert.Equal(t, "a", result.DetailedResults[2].CorrectAnswer)
}

// takeHookStore 在 Take 之后执行一次回调，用于在提交过程中插入新的生成
type takeHookStore struct {
	*MemoryQuizSessionStore
	afterTake func()
}

func (s *takeHookStore) Take(ctx context.Context, skill string) (*model.QuizSession, error) {
	session, err := s.MemoryQuizSessionStore.Take(ctx, skill)
	if hook := s.afterTake; hook != nil {
		s.afterTake = nil
		hook()
	}
	return session, err
}

func TestQuizService_MismatchDoesNotOverwriteNewerQuiz(t *testing.T) {
	ctx := context.Background()
	client := newFakeClient()
	client.replies[OperationQuiz] = pythonQuizReply
	store := &takeHookStore{MemoryQuizSessionStore: NewMemoryQuizSessionStore(30 * time.Minute)}
	svc := NewQuizService(client, store)

	_, err := svc.GenerateQuiz(ctx, "Go")
	require.NoError(t, err)

	store.afterTake = func() {
		client.replies[OperationQuiz] = goSingleQuestionReply
		_, err := svc.GenerateQuiz(ctx, "Go")
		require.NoError(t, err)
	}
	_, err = svc.SubmitQuiz(ctx, "Go", []int{0})
	assert.ErrorIs(t, err, util.ErrAnswerCountMismatch)

	result, err := svc.SubmitQuiz(ctx, "Go", []int{3})
	require.NoError(t, err)
	assert.Equal(t, 100, result.Score)
	assert.Equal(t, 0, store.Len())
}

func TestQuizService_AnswerCountMismatchKeepsSession(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newQuizFixture()

	_, err := svc.GenerateQuiz(ctx, "Python")
	require.NoError(t, err)

	_, err = svc.SubmitQuiz(ctx, "Python", []int{1})
	assert.ErrorIs(t, err, util.ErrAnswerCountMismatch)

	_, err = svc.SubmitQuiz(ctx, "Python", []int{1, 1, 1, 2})
	assert.NoError(t, err)
}

func TestQuizService_NotConfigured(t *testing.T) {
	ctx := context.Background()
	svc, client, store := newQuizFixture()
	client.configured = false

	_, err := svc.GenerateQuiz(ctx, "Python")
	assert.ErrorIs(t, err, util.ErrAINotConfigured)
	_, err = svc.SubmitQuiz(ctx, "Python", []int{0})
	assert.ErrorIs(t, err, util.ErrAINotConfigured)

	assert.Equal(t, 0, client.calls())
	assert.Equal(t, 0, store.Len())
}

func TestQuizService_GenerationFailuresLeaveNoSession(t *testing.T) {
	ctx := context.Background()

	t.Run("upstream", func(t *testing.T) {
		svc, client, store := newQuizFixture()
		client.errs[OperationQuiz] = &UpstreamError{Op: OperationQuiz, Err: errors.New("connection refused")}

		_, err := svc.GenerateQuiz(ctx, "Python")
		var upstream *UpstreamError
		assert.True(t, errors.As(err, &upstream))
		assert.Equal(t, 0, store.Len())
	})

	t.Run("invalid reply", func(t *testing.T) {
		svc, client, store := newQuizFixture()
		client.replies[OperationQuiz] = "Here are some questions about Python!"

		_, err := svc.GenerateQuiz(ctx, "Python")
		var invalid *InvalidResponseError
		assert.True(t, errors.As(err, &invalid))
		assert.Equal(t, 0, store.Len())
	})
}

func TestQuizService_DefaultsSkillName(t *testing.T) {
	svc, client, _ := newQuizFixture()
	client.replies[OperationQuiz] = `{"questions":[{"q":"?","options":["a","b","c","d"],"correct":0}]}`

	quiz, err := svc.GenerateQuiz(context.Background(), "Terraform")
	require.NoError(t, err)
	assert.Equal(t, "Terraform", quiz.Skill)
}
