package service

import (
	"encoding/json"
	"fmt"
	"skill_manager_backend/internal/model"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// InvalidResponseError 模型返回内容不是合法 JSON 或不符合约定结构
type InvalidResponseError struct {
	Content string
	Err     error
}

func (e *InvalidResponseError) Error() string {
	return fmt.Sprintf("invalid AI response: %v", e.Err)
}

func (e *InvalidResponseError) Unwrap() error { return e.Err }

const gapAnalysisSchema = `{
  "type": "object",
  "required": ["analysis", "recommendations", "study_plan"],
  "properties": {
    "analysis": {
      "type": "object",
      "required": ["missing", "underdeveloped", "fit_score"],
      "properties": {
        "missing": {"type": "array", "items": {"type": "string"}},
        "underdeveloped": {
          "type": "array",
          "items": {
            "type": "object",
            "required": ["skill"],
            "properties": {
              "skill": {"type": "string"},
              "user_level": {"type": "integer"},
              "required": {"type": "integer"},
              "severity": {"type": "integer"}
            }
          }
        },
        "fit_score": {"type": "integer", "minimum": 0, "maximum": 100},
        "overall_assessment": {"type": "string"}
      }
    },
    "recommendations": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["title"],
        "properties": {
          "title": {"type": "string"},
          "provider": {"type": "string"},
          "level": {"type": "string"},
          "related_skill": {"type": "string"},
          "reason": {"type": "string"}
        }
      }
    },
    "study_plan": {"type": "string"}
  }
}`

const quizSchema = `{
  "type": "object",
  "required": ["questions"],
  "properties": {
    "skill": {"type": "string"},
    "questions": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "required": ["q", "options", "correct"],
        "properties": {
          "q": {"type": "string", "minLength": 1},
          "options": {"type": "array", "minItems": 4, "maxItems": 4, "items": {"type": "string"}},
          "correct": {"type": "integer", "minimum": 0, "maximum": 3},
          "difficulty": {"type": "string"}
        }
      }
    }
  }
}`

var (
	compiledGapAnalysis = sync.OnceValues(func() (*jsonschema.Schema, error) {
		return compileSchema("gap-analysis", gapAnalysisSchema)
	})
	compiledQuiz = sync.OnceValues(func() (*jsonschema.Schema, error) {
		return compileSchema("quiz", quizSchema)
	})
)

func compileSchema(name, definition string) (*jsonschema.Schema, error) {
	doc, err := jsonschema.UnmarshalJSON(strings.NewReader(definition))
	if err != nil {
		return nil, fmt.Errorf("parse schema %s: %w", name, err)
	}

	c := jsonschema.NewCompiler()
	url := fmt.Sprintf("schema://%s.json", name)
	if err := c.AddResource(url, doc); err != nil {
		return nil, fmt.Errorf("add schema %s: %w", name, err)
	}
	return c.Compile(url)
}

// stripCodeFence 去掉首尾的 markdown 代码块标记（```json / ```），只做前后缀判断
func stripCodeFence(content string) string {
	content = strings.TrimSpace(content)
	if strings.HasPrefix(content, "```json") {
		content = content[7:]
	}
	if strings.HasPrefix(content, "```") {
		content = content[3:]
	}
	if strings.HasSuffix(content, "```") {
		content = content[:len(content)-3]
	}
	return strings.TrimSpace(content)
}

// decodeValidated 先按 schema 校验再解码到目标结构
func decodeValidated(raw string, schema func() (*jsonschema.Schema, error), out any) error {
	content := stripCodeFence(raw)

	compiled, err := schema()
	if err != nil {
		return &InvalidResponseError{Content: content, Err: err}
	}

	inst, err := jsonschema.UnmarshalJSON(strings.NewReader(content))
	if err != nil {
		return &InvalidResponseError{Content: content, Err: fmt.Errorf("invalid JSON: %w", err)}
	}

	if err := compiled.Validate(inst); err != nil {
		return &InvalidResponseError{Content: content, Err: fmt.Errorf("schema validation failed: %w", err)}
	}

	if err := json.Unmarshal([]byte(content), out); err != nil {
		return &InvalidResponseError{Content: content, Err: err}
	}
	return nil
}

// ParseGapAnalysis 解析差距分析回复，成功时 AIUsed 置为 true
func ParseGapAnalysis(raw string) (*model.GapAnalysisResult, error) {
	var result model.GapAnalysisResult
	if err := decodeValidated(raw, compiledGapAnalysis, &result); err != nil {
		return nil, err
	}

	if result.Analysis.Missing == nil {
		result.Analysis.Missing = []string{}
	}
	if result.Analysis.Underdeveloped == nil {
		result.Analysis.Underdeveloped = []model.UnderdevelopedSkill{}
	}
	if result.Recommendations == nil {
		result.Recommendations = []model.CourseRecommendation{}
	}
	result.Error = ""
	result.AIUsed = true
	return &result, nil
}

// ParseQuiz 解析测验回复，难度统一为小写
func ParseQuiz(raw string) (*model.Quiz, error) {
	var quiz model.Quiz
	if err := decodeValidated(raw, compiledQuiz, &quiz); err != nil {
		return nil, err
	}

	for i := range quiz.Questions {
		d := strings.ToLower(strings.TrimSpace(quiz.Questions[i].Difficulty))
		if d == "" {
			d = model.DifficultyUnknown
		}
		quiz.Questions[i].Difficulty = d
	}
	return &quiz, nil
}
