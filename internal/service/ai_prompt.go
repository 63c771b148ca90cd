package service

import (
	"fmt"
	"skill_manager_backend/internal/model"
	"sort"
	"strings"

	"github.com/samber/lo"
)

// 用户填写的文本原样拼接进提示词，未做任何转义（提示词注入风险已知，暂不处理）

const gapAnalysisTemplate = `You are an AI career advisor. Analyze this person's qualifications for the role of %[1]s.

**Current Profile:**

Skills: %[2]s

Certifications:
%[3]s

Achievements:
%[4]s

**Target Role:** %[1]s
%[5]s
**Available Courses:**
%[6]s

Based on this information, assess how well this person fits the %[1]s role. Identify what skills are missing, what skills need improvement, and recommend specific courses from the available list(do not recommend any if the user doesnt need it) that would help bridge the gaps.

Provide your analysis as a JSON object with this EXACT structure:
{
  "analysis": {
    "missing": ["skill1", "skill2"],
    "underdeveloped": [
      {"skill": "skillname", "user_level": 2, "required": 4, "severity": 2}
    ],
    "fit_score": 65,
    "overall_assessment": "Brief assessment of their readiness"
  },
  "recommendations": [
    {"title": "Course Title", "provider": "Provider", "level": "beginner", "related_skill": "skill", "reason": "Why this course helps"}
  ],
  "study_plan": "Week-by-week study plan with realistic timelines"
}

Output ONLY the JSON, no other text or explanation.`

const quizTemplate = `Create 4 multiple-choice questions for the skill: %[1]s.
Each question has 4 options and one correct answer (index 0-3).
Output ONLY valid JSON:
{
  "skill": "%[1]s",
  "questions": [
    {
      "q": "Question text here?",
      "options": ["Option A", "Option B", "Option C", "Option D"],
      "correct": 0,
      "difficulty": "beginner"
    }
  ]
}

Include a mix of difficulties: 1 beginner, 2 intermediate, 1 advanced.
Do not include commentary or explanations. Output valid JSON only.`

// BuildGapAnalysisPrompt 生成技能差距分析提示词，role 为 nil 时只按岗位名称分析
func BuildGapAnalysisPrompt(user *model.User, targetRole string, role *model.Role, courses []model.Course) string {
	return fmt.Sprintf(gapAnalysisTemplate,
		targetRole,
		formatSkills(user.Skills),
		formatCertifications(user.Certifications),
		formatAchievements(user.Achievements),
		formatRequirements(role),
		formatCourses(courses),
	)
}

func BuildQuizPrompt(skill string) string {
	return fmt.Sprintf(quizTemplate, skill)
}

func formatSkills(skills []model.Skill) string {
	if len(skills) == 0 {
		return "None"
	}
	parts := lo.Map(skills, func(s model.Skill, _ int) string {
		return fmt.Sprintf("%s (Level %d/5)", s.Name, s.Level)
	})
	return strings.Join(parts, ", ")
}

func formatCertifications(certs []model.Certification) string {
	if len(certs) == 0 {
		return "None"
	}
	lines := lo.Map(certs, func(c model.Certification, _ int) string {
		return fmt.Sprintf("- %s from %s (obtained: %s)", c.Name, c.Issuer, c.DateObtained)
	})
	return strings.Join(lines, "\n")
}

func formatAchievements(achievements []model.Achievement) string {
	if len(achievements) == 0 {
		return "None"
	}
	lines := make([]string, len(achievements))
	for i, a := range achievements {
		lines[i] = fmt.Sprintf("- %s: %s (%s)", a.Title, a.Description, a.Date)
	}
	return strings.Join(lines, "\n")
}

func formatCourses(courses []model.Course) string {
	lines := make([]string, len(courses))
	for i, c := range courses {
		lines[i] = fmt.Sprintf("- %s by %s (%s) - focuses on %s", c.Title, c.Provider, c.Level, c.RelatedSkill)
	}
	return strings.Join(lines, "\n")
}

// formatRequirements 岗位已录入时附加技能要求，按技能名排序保证输出稳定
func formatRequirements(role *model.Role) string {
	if role == nil || len(role.Requirements) == 0 {
		return ""
	}

	names := lo.Keys(role.Requirements)
	sort.Strings(names)

	var b strings.Builder
	b.WriteString("\n**Role Requirements:**\n")
	for _, name := range names {
		fmt.Fprintf(&b, "- %s: Level %d/5\n", name, role.Requirements[name])
	}
	return b.String()
}
