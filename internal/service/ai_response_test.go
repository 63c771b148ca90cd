package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripCodeFence(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"plain", `{"a":1}`, `{"a":1}`},
		{"json fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"bare fence", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"surrounding space", "  \n```json {\"a\":1} ```  \n", `{"a":1}`},
		{"suffix only", "{\"a\":1}```", `{"a":1}`},
		{"uppercase tag kept", "```JSON\n{\"a\":1}\n```", "JSON\n{\"a\":1}"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, stripCodeFence(tc.in))
		})
	}
}

const gapReply = `{
  "analysis": {
    "missing": ["Docker"],
    "underdeveloped": [{"skill": "SQL", "user_level": 2, "required": 4, "severity": 2}],
    "fit_score": 65,
    "overall_assessment": "Solid start"
  },
  "recommendations": [
    {"title": "Docker Mastery", "provider": "Udemy", "level": "intermediate", "related_skill": "Docker", "reason": "Missing skill"}
  ],
  "study_plan": "Week 1: Docker basics"
}`

func TestParseGapAnalysis(t *testing.T) {
	result, err := ParseGapAnalysis("```json\n" + gapReply + "\n```")
	require.NoError(t, err)

	assert.True(t, result.AIUsed)
	assert.Empty(t, result.Error)
	assert.Equal(t, []string{"Docker"}, result.Analysis.Missing)
	require.Len(t, result.Analysis.Underdeveloped, 1)
	assert.Equal(t, 4, result.Analysis.Underdeveloped[0].Required)
	assert.Equal(t, 65, result.Analysis.FitScore)
	require.Len(t, result.Recommendations, 1)
	assert.Equal(t, "Docker Mastery", result.Recommendations[0].Title)
	assert.Equal(t, "Week 1: Docker basics", result.StudyPlan)
}

func TestParseGapAnalysis_EmptyCollections(t *testing.T) {
	result, err := ParseGapAnalysis(`{"analysis":{"missing":[],"underdeveloped":[],"fit_score":100},"recommendations":[],"study_plan":"None needed"}`)
	require.NoError(t, err)
	assert.NotNil(t, result.Analysis.Missing)
	assert.NotNil(t, result.Recommendations)
}

func TestParseGapAnalysis_Invalid(t *testing.T) {
	cases := map[string]string{
		"not json":         "Sure! Here is your analysis.",
		"missing analysis": `{"recommendations":[],"study_plan":"x"}`,
		"fit score range":  `{"analysis":{"missing":[],"underdeveloped":[],"fit_score":140},"recommendations":[],"study_plan":"x"}`,
		"wrong type":       `{"analysis":{"missing":"Docker","underdeveloped":[],"fit_score":10},"recommendations":[],"study_plan":"x"}`,
		"truncated":        `{"analysis":{"missing":[`,
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseGapAnalysis(raw)
			var invalid *InvalidResponseError
			assert.True(t, errors.As(err, &invalid), "got %v", err)
		})
	}
}

func TestParseQuiz(t *testing.T) {
	quiz, err := ParseQuiz(pythonQuizReply)
	require.NoError(t, err)

	assert.Equal(t, "Python", quiz.Skill)
	require.Len(t, quiz.Questions, 4)
	assert.Equal(t, "beginner", quiz.Questions[0].Difficulty)
	assert.Equal(t, "unknown", quiz.Questions[3].Difficulty)
	assert.Equal(t, 2, quiz.Questions[3].Correct)
}

func TestParseQuiz_Invalid(t *testing.T) {
	cases := map[string]string{
		"no questions":    `{"skill":"Go","questions":[]}`,
		"three options":   `{"questions":[{"q":"?","options":["a","b","c"],"correct":0}]}`,
		"correct range":   `{"questions":[{"q":"?","options":["a","b","c","d"],"correct":4}]}`,
		"missing correct": `{"questions":[{"q":"?","options":["a","b","c","d"]}]}`,
		"not json":        "I cannot help with that.",
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseQuiz(raw)
			var invalid *InvalidResponseError
			assert.True(t, errors.As(err, &invalid), "got %v", err)
		})
	}
}
