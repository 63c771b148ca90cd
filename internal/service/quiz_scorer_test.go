package service

import (
	"skill_manager_backend/internal/model"
	"skill_manager_backend/internal/util"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuggestLevel_Boundaries(t *testing.T) {
	cases := map[int]int{
		100: 5, 90: 5, 89: 4, 75: 4, 74: 3,
		60: 3, 59: 2, 40: 2, 39: 1, 0: 1,
	}
	for score, want := range cases {
		assert.Equal(t, want, SuggestLevel(score), "score %d", score)
	}
}

func sampleQuestions() []model.QuizQuestion {
	return []model.QuizQuestion{
		{Q: "q1", Options: []string{"a", "b", "c", "d"}, Correct: 0, Difficulty: "beginner"},
		{Q: "q2", Options: []string{"a", "b", "c", "d"}, Correct: 1, Difficulty: "intermediate"},
		{Q: "q3", Options: []string{"a", "b", "c", "d"}, Correct: 0, Difficulty: "intermediate"},
		{Q: "q4", Options: []string{"a", "b", "c", "d"}, Correct: 3},
	}
}

func TestScoreQuiz(t *testing.T) {
	result, err := ScoreQuiz([]int{0, 1, 2, 3}, []int{0, 1, 0, 3}, sampleQuestions())
	require.NoError(t, err)

	assert.Equal(t, 75, result.Score)
	assert.Equal(t, 4, result.SuggestedLevel)
	assert.True(t, result.AIUsed)
	require.Len(t, result.DetailedResults, 4)

	third := result.DetailedResults[2]
	assert.Equal(t, 3, third.QuestionNumber)
	assert.False(t, third.IsCorrect)
	assert.Equal(t, "c", third.UserAnswer)
	assert.Equal(t, "a", third.CorrectAnswer)
	assert.Equal(t, "intermediate", third.Difficulty)
	assert.Equal(t, model.DifficultyUnknown, result.DetailedResults[3].Difficulty)
}

func TestScoreQuiz_FloorsScore(t *testing.T) {
	questions := sampleQuestions()[:3]
	result, err := ScoreQuiz([]int{0, 1, 3}, []int{0, 1, 2}, questions)
	require.NoError(t, err)
	assert.Equal(t, 66, result.Score)
	assert.Equal(t, 3, result.SuggestedLevel)
}

func TestScoreQuiz_OutOfRangeIndices(t *testing.T) {
	questions := sampleQuestions()[:2]
	result, err := ScoreQuiz([]int{7, -1}, []int{0, 9}, questions)
	require.NoError(t, err)

	assert.Equal(t, 0, result.Score)
	assert.Equal(t, 1, result.SuggestedLevel)
	assert.Equal(t, "Invalid", result.DetailedResults[0].UserAnswer)
	assert.Equal(t, "Invalid", result.DetailedResults[1].UserAnswer)
	assert.Equal(t, "Unknown", result.DetailedResults[1].CorrectAnswer)
}

func TestScoreQuiz_Errors(t *testing.T) {
	_, err := ScoreQuiz([]int{0, 1}, []int{0, 1, 2, 3}, sampleQuestions())
	assert.ErrorIs(t, err, util.ErrAnswerCountMismatch)

	_, err = ScoreQuiz(nil, nil, nil)
	assert.ErrorIs(t, err, errEmptyQuiz)
}
