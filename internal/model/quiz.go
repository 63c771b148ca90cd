package model

import "time"

const (
	DifficultyBeginner     = "beginner"
	DifficultyIntermediate = "intermediate"
	DifficultyAdvanced     = "advanced"
	DifficultyUnknown      = "unknown"
)

// QuizQuestion 单选题，固定 4 个选项，Correct 为正确选项下标
type QuizQuestion struct {
	Q          string   `json:"q"`
	Options    []string `json:"options"`
	Correct    int      `json:"correct"`
	Difficulty string   `json:"difficulty"`
}

type Quiz struct {
	Skill     string         `json:"skill"`
	Questions []QuizQuestion `json:"questions"`
}

// QuizSession 某个技能最近一次生成的题目及答案，等待一次提交
type QuizSession struct {
	Skill          string         `json:"skill"`
	Questions      []QuizQuestion `json:"questions"`
	CorrectAnswers []int          `json:"correct_answers"`
	CreatedAt      time.Time      `json:"created_at"`
}

// NewQuizSession 从生成的测验构建会话，答案与题目一一对应
func NewQuizSession(skill string, quiz *Quiz, now time.Time) *QuizSession {
	correct := make([]int, len(quiz.Questions))
	for i, q := range quiz.Questions {
		correct[i] = q.Correct
	}
	return &QuizSession{
		Skill:          skill,
		Questions:      quiz.Questions,
		CorrectAnswers: correct,
		CreatedAt:      now,
	}
}

type QuizAnswerDetail struct {
	QuestionNumber int    `json:"question_number"`
	Question       string `json:"question"`
	UserAnswer     string `json:"user_answer"`
	CorrectAnswer  string `json:"correct_answer"`
	IsCorrect      bool   `json:"is_correct"`
	Difficulty     string `json:"difficulty"`
}

type QuizResult struct {
	Score           int                `json:"score"`
	SuggestedLevel  int                `json:"suggested_level"`
	AIUsed          bool               `json:"ai_used"`
	DetailedResults []QuizAnswerDetail `json:"detailed_results"`
}
