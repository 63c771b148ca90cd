package controller

import (
	"errors"
	"skill_manager_backend/internal/model"
	"skill_manager_backend/internal/service"
	"skill_manager_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AnalysisController struct {
	AnalysisService *service.AnalysisService
}

func NewAnalysisController(analysisService *service.AnalysisService) *AnalysisController {
	return &AnalysisController{AnalysisService: analysisService}
}

// @Summary 技能差距分析
// @Description 对比用户档案与目标岗位，由大模型给出缺失技能、待提升技能、课程推荐和学习计划。
// @Description 模型不可用时 data 中返回 {error} 及默认值，HTTP 状态仍为 200。
// @Tags AI
// @Accept json
// @Produce json
// @Param request body service.AnalysisRequest true "用户ID与目标岗位"
// @Success 200 {object} util.Response{data=model.GapAnalysisResult}
// @Failure 404 {object} util.Response
// @Router /analysis [post]
func (c *AnalysisController) AnalyzeSkillGap(ctx *gin.Context) {
	var req service.AnalysisRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.AnalysisService.AnalyzeSkillGap(ctx.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrAINotConfigured):
			util.Success(ctx, model.ErrorResult{Error: err.Error()})
		case errors.Is(err, util.ErrUserNotFound):
			util.NotFound(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, result)
}
