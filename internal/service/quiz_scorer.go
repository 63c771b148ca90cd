package service

import (
	"errors"
	"skill_manager_backend/internal/model"
	"skill_manager_backend/internal/util"
)

var errEmptyQuiz = errors.New("quiz has no questions")

const (
	invalidAnswerText = "Invalid"
	unknownAnswerText = "Unknown"
)

// SuggestLevel 按得分给出建议等级，阈值包含下界，自上而下判断
func SuggestLevel(score int) int {
	switch {
	case score >= 90:
		return 5
	case score >= 75:
		return 4
	case score >= 60:
		return 3
	case score >= 40:
		return 2
	default:
		return 1
	}
}

// ScoreQuiz 比较提交答案与正确答案，得分向下取整，无部分得分和难度加权
func ScoreQuiz(answers, correctAnswers []int, questions []model.QuizQuestion) (*model.QuizResult, error) {
	if len(answers) != len(correctAnswers) {
		return nil, util.ErrAnswerCountMismatch
	}
	total := len(correctAnswers)
	if total == 0 {
		return nil, errEmptyQuiz
	}

	correctCount := 0
	for i, a := range answers {
		if a == correctAnswers[i] {
			correctCount++
		}
	}
	score := correctCount * 100 / total

	n := len(answers)
	if len(questions) < n {
		n = len(questions)
	}
	details := make([]model.QuizAnswerDetail, 0, n)
	for i := 0; i < n; i++ {
		q := questions[i]
		difficulty := q.Difficulty
		if difficulty == "" {
			difficulty = model.DifficultyUnknown
		}
		details = append(details, model.QuizAnswerDetail{
			QuestionNumber: i + 1,
			Question:       q.Q,
			UserAnswer:     optionText(q.Options, answers[i], invalidAnswerText),
			CorrectAnswer:  optionText(q.Options, correctAnswers[i], unknownAnswerText),
			IsCorrect:      answers[i] == correctAnswers[i],
			Difficulty:     difficulty,
		})
	}

	return &model.QuizResult{
		Score:           score,
		SuggestedLevel:  SuggestLevel(score),
		AIUsed:          true,
		DetailedResults: details,
	}, nil
}

func optionText(options []string, idx int, fallback string) string {
	if idx < 0 || idx >= len(options) {
		return fallback
	}
	return options[idx]
}
