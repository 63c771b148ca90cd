package controller

import (
	"errors"
	"net/http"
	"skill_manager_backend/internal/service"
	"skill_manager_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	UserService *service.UserService
}

func NewUserController(userService *service.UserService) *UserController {
	return &UserController{UserService: userService}
}

// @Summary 创建用户
// @Description 按邮箱创建用户，邮箱不可重复
// @Tags 用户
// @Accept json
// @Produce json
// @Param user body service.CreateUserRequest true "用户信息"
// @Success 201 {object} util.Response{data=model.User}
// @Failure 400 {object} util.Response
// @Router /users [post]
func (c *UserController) CreateUser(ctx *gin.Context) {
	var req service.CreateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user, err := c.UserService.CreateUser(req)
	if err != nil {
		if errors.Is(err, util.ErrEmailRegistered) {
			util.BadRequest(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, user)
}

// @Summary 用户列表
// @Description 分页获取用户及其技能、证书、成就
// @Tags 用户
// @Produce json
// @Param skip query int false "跳过数量" default(0)
// @Param limit query int false "返回数量" default(100)
// @Success 200 {object} util.Response{data=[]model.User}
// @Router /users [get]
func (c *UserController) ListUsers(ctx *gin.Context) {
	skip := util.QueryInt(ctx.Query("skip"), 0)
	limit := util.QueryInt(ctx.Query("limit"), util.DefaultPageLimit)

	users, err := c.UserService.ListUsers(skip, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, users)
}

// @Summary 获取用户
// @Description 获取用户档案（技能、证书、成就）
// @Tags 用户
// @Produce json
// @Param id path int true "用户ID"
// @Success 200 {object} util.Response{data=model.User}
// @Failure 404 {object} util.Response
// @Router /users/{id} [get]
func (c *UserController) GetUser(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	user, err := c.UserService.GetUser(id)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}

	util.Success(ctx, user)
}

// respondServiceError 记录类错误映射为 404 / 400，其余按 500 处理
func respondServiceError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrUserNotFound),
		errors.Is(err, util.ErrSkillNotFound),
		errors.Is(err, util.ErrCertificationNotFound),
		errors.Is(err, util.ErrAchievementNotFound):
		util.NotFound(ctx, err.Error())
	case errors.Is(err, util.ErrEmailRegistered),
		errors.Is(err, util.ErrRoleExists):
		util.BadRequest(ctx, err.Error())
	default:
		util.LogInternalError(ctx, err)
	}
}

// parseIDParam 解析路径参数，非法时直接写入 400
func parseIDParam(ctx *gin.Context, name string) (uint, bool) {
	id := util.MustParseUint(ctx.Param(name))
	if id == 0 {
		util.Error(ctx, http.StatusBadRequest, "invalid "+name)
		return 0, false
	}
	return id, true
}
