package model

// UnderdevelopedSkill 用户已有但等级不足的技能
type UnderdevelopedSkill struct {
	Skill     string `json:"skill"`
	UserLevel int    `json:"user_level"`
	Required  int    `json:"required"`
	Severity  int    `json:"severity"`
}

type GapAnalysis struct {
	Missing           []string              `json:"missing"`
	Underdeveloped    []UnderdevelopedSkill `json:"underdeveloped"`
	FitScore          int                   `json:"fit_score"`
	OverallAssessment string                `json:"overall_assessment,omitempty"`
}

// CourseRecommendation 推荐课程，对应课程目录条目并附带推荐理由
type CourseRecommendation struct {
	Title        string `json:"title"`
	Provider     string `json:"provider"`
	Level        string `json:"level"`
	RelatedSkill string `json:"related_skill"`
	Reason       string `json:"reason"`
}

// GapAnalysisResult 技能差距分析结果
// 调用或解析失败时 AIUsed 为 false，集合与数值字段为空值而不是缺失
type GapAnalysisResult struct {
	Error           string                 `json:"error,omitempty"`
	Analysis        GapAnalysis            `json:"analysis"`
	Recommendations []CourseRecommendation `json:"recommendations"`
	StudyPlan       string                 `json:"study_plan"`
	AIUsed          bool                   `json:"ai_used"`
}

const FallbackStudyPlan = "Unable to generate study plan"

// FailedGapAnalysis 生成分析失败时返回的默认结果
func FailedGapAnalysis(message string) *GapAnalysisResult {
	return &GapAnalysisResult{
		Error: message,
		Analysis: GapAnalysis{
			Missing:        []string{},
			Underdeveloped: []UnderdevelopedSkill{},
		},
		Recommendations: []CourseRecommendation{},
		StudyPlan:       FallbackStudyPlan,
		AIUsed:          false,
	}
}

// ErrorResult AI 相关接口统一的错误载荷
type ErrorResult struct {
	Error string `json:"error"`
}
