package controller

import (
	"skill_manager_backend/internal/service"
	"skill_manager_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type CatalogController struct {
	CatalogService *service.CatalogService
}

func NewCatalogController(catalogService *service.CatalogService) *CatalogController {
	return &CatalogController{CatalogService: catalogService}
}

// @Summary 岗位列表
// @Tags 岗位
// @Produce json
// @Success 200 {object} util.Response{data=[]model.Role}
// @Router /roles [get]
func (c *CatalogController) ListRoles(ctx *gin.Context) {
	roles, err := c.CatalogService.ListRoles()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, roles)
}

// @Summary 创建岗位
// @Description 仅管理员，requirements 为 技能名 -> 要求等级(1-5)
// @Tags 岗位
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param role body service.RoleRequest true "岗位信息"
// @Success 201 {object} util.Response{data=model.Role}
// @Failure 400 {object} util.Response
// @Router /roles [post]
func (c *CatalogController) CreateRole(ctx *gin.Context) {
	var req service.RoleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	role, err := c.CatalogService.CreateRole(req)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Created(ctx, role)
}

// @Summary 课程列表
// @Tags 课程
// @Produce json
// @Success 200 {object} util.Response{data=[]model.Course}
// @Router /courses [get]
func (c *CatalogController) ListCourses(ctx *gin.Context) {
	courses, err := c.CatalogService.ListCourses()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, courses)
}

// @Summary 创建课程
// @Description 仅管理员
// @Tags 课程
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param course body service.CourseRequest true "课程信息"
// @Success 201 {object} util.Response{data=model.Course}
// @Router /courses [post]
func (c *CatalogController) CreateCourse(ctx *gin.Context) {
	var req service.CourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	course, err := c.CatalogService.CreateCourse(req)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, course)
}
