package controller

import (
	"skill_manager_backend/internal/service"
	"skill_manager_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// SkillController 技能、证书、成就都挂在用户下，共用同一个服务
type SkillController struct {
	UserService *service.UserService
}

func NewSkillController(userService *service.UserService) *SkillController {
	return &SkillController{UserService: userService}
}

// @Summary 添加技能
// @Tags 技能
// @Accept json
// @Produce json
// @Param userId path int true "用户ID"
// @Param skill body service.SkillRequest true "技能信息，等级 1-5"
// @Success 201 {object} util.Response{data=model.Skill}
// @Failure 404 {object} util.Response
// @Router /skills/users/{userId} [post]
func (c *SkillController) AddSkill(ctx *gin.Context) {
	userID, ok := parseIDParam(ctx, "userId")
	if !ok {
		return
	}

	var req service.SkillRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	skill, err := c.UserService.AddSkill(userID, req)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}

	util.Created(ctx, skill)
}

// @Summary 更新技能等级
// @Tags 技能
// @Accept json
// @Produce json
// @Param id path int true "技能ID"
// @Param skill body service.SkillUpdateRequest true "新等级"
// @Success 200 {object} util.Response{data=model.Skill}
// @Failure 404 {object} util.Response
// @Router /skills/{id} [put]
func (c *SkillController) UpdateSkill(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req service.SkillUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	skill, err := c.UserService.UpdateSkill(id, req)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}

	util.Success(ctx, skill)
}

// @Summary 删除技能
// @Tags 技能
// @Param id path int true "技能ID"
// @Success 204
// @Failure 404 {object} util.Response
// @Router /skills/{id} [delete]
func (c *SkillController) DeleteSkill(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.UserService.DeleteSkill(id); err != nil {
		respondServiceError(ctx, err)
		return
	}

	util.NoContent(ctx)
}

// @Summary 添加证书
// @Tags 证书
// @Accept json
// @Produce json
// @Param userId path int true "用户ID"
// @Param certification body service.CertificationRequest true "证书信息"
// @Success 201 {object} util.Response{data=model.Certification}
// @Failure 404 {object} util.Response
// @Router /certifications/users/{userId} [post]
func (c *SkillController) AddCertification(ctx *gin.Context) {
	userID, ok := parseIDParam(ctx, "userId")
	if !ok {
		return
	}

	var req service.CertificationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	cert, err := c.UserService.AddCertification(userID, req)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}

	util.Created(ctx, cert)
}

// @Summary 删除证书
// @Tags 证书
// @Param id path int true "证书ID"
// @Success 204
// @Failure 404 {object} util.Response
// @Router /certifications/{id} [delete]
func (c *SkillController) DeleteCertification(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.UserService.DeleteCertification(id); err != nil {
		respondServiceError(ctx, err)
		return
	}

	util.NoContent(ctx)
}

// @Summary 添加成就
// @Tags 成就
// @Accept json
// @Produce json
// @Param userId path int true "用户ID"
// @Param achievement body service.AchievementRequest true "成就信息"
// @Success 201 {object} util.Response{data=model.Achievement}
// @Failure 404 {object} util.Response
// @Router /achievements/users/{userId} [post]
func (c *SkillController) AddAchievement(ctx *gin.Context) {
	userID, ok := parseIDParam(ctx, "userId")
	if !ok {
		return
	}

	var req service.AchievementRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	achievement, err := c.UserService.AddAchievement(userID, req)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}

	util.Created(ctx, achievement)
}

// @Summary 删除成就
// @Tags 成就
// @Param id path int true "成就ID"
// @Success 204
// @Failure 404 {object} util.Response
// @Router /achievements/{id} [delete]
func (c *SkillController) DeleteAchievement(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.UserService.DeleteAchievement(id); err != nil {
		respondServiceError(ctx, err)
		return
	}

	util.NoContent(ctx)
}
