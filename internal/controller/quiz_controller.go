package controller

import (
	"errors"
	"fmt"
	"skill_manager_backend/internal/model"
	"skill_manager_backend/internal/service"
	"skill_manager_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type QuizController struct {
	QuizService *service.QuizService
}

func NewQuizController(quizService *service.QuizService) *QuizController {
	return &QuizController{QuizService: quizService}
}

// @Summary 生成技能测验
// @Description 生成 4 道单选题，覆盖该技能之前未提交的测验。失败时 data 为 {error}。
// @Tags AI
// @Produce json
// @Param skill path string true "技能名称"
// @Success 200 {object} util.Response{data=model.Quiz}
// @Router /quiz/{skill} [get]
func (c *QuizController) GenerateQuiz(ctx *gin.Context) {
	skill := ctx.Param("skill")

	quiz, err := c.QuizService.GenerateQuiz(ctx.Request.Context(), skill)
	if err != nil {
		if errors.Is(err, util.ErrAINotConfigured) {
			util.Success(ctx, model.ErrorResult{Error: err.Error()})
			return
		}
		util.Success(ctx, model.ErrorResult{Error: fmt.Sprintf("Quiz generation failed: %v", err)})
		return
	}

	util.Success(ctx, quiz)
}

// @Summary 提交测验答案
// @Description 按最近一次生成的测验评分并给出建议等级，评分后测验失效。失败时 data 为 {error}。
// @Tags AI
// @Accept json
// @Produce json
// @Param skill path string true "技能名称"
// @Param submission body service.QuizSubmission true "答案下标"
// @Success 200 {object} util.Response{data=model.QuizResult}
// @Router /quiz/{skill}/submit [post]
func (c *QuizController) SubmitQuiz(ctx *gin.Context) {
	skill := ctx.Param("skill")

	var req service.QuizSubmission
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.QuizService.SubmitQuiz(ctx.Request.Context(), skill, req.Answers)
	if err != nil {
		util.Success(ctx, model.ErrorResult{Error: err.Error()})
		return
	}

	util.Success(ctx, result)
}
