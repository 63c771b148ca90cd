package controller

import (
	"skill_manager_backend/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

const (
	ServiceName    = "Skill Manager API"
	ServiceVersion = "1.0.0"
)

type HealthController struct {
	DB    *gorm.DB
	Redis *redis.Client
}

// NewHealthController rdb 为 nil 时不检查 redis
func NewHealthController(db *gorm.DB, rdb *redis.Client) *HealthController {
	return &HealthController{DB: db, Redis: rdb}
}

// @Summary 服务信息
// @Description 返回服务名称、版本和主要接口列表
// @Tags 系统
// @Produce json
// @Success 200 {object} util.Response
// @Router / [get]
func (c *HealthController) Info(ctx *gin.Context) {
	util.Success(ctx, gin.H{
		"message": ServiceName,
		"version": ServiceVersion,
		"endpoints": gin.H{
			"users":          "/api/users",
			"skills":         "/api/skills",
			"certifications": "/api/certifications",
			"achievements":   "/api/achievements",
			"roles":          "/api/roles",
			"courses":        "/api/courses",
			"analysis":       "/api/analysis",
			"quiz":           "/api/quiz/{skill}",
			"docs":           "/swagger/index.html",
		},
	})
}

// @Summary 健康检查
// @Description 检查服务状态
// @Tags 系统
// @Produce json
// @Success 200 {object} util.Response
// @Failure 503 {object} util.Response
// @Router /health [get]
func (c *HealthController) HealthCheck(ctx *gin.Context) {
	// 检查数据库连接
	sqlDB, err := c.DB.DB()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	if err := sqlDB.PingContext(ctx.Request.Context()); err != nil {
		util.ServiceUnavailable(ctx, "Database unavailable")
		return
	}

	components := gin.H{"database": "up"}
	if c.Redis != nil {
		if err := c.Redis.Ping(ctx.Request.Context()).Err(); err != nil {
			util.ServiceUnavailable(ctx, "Redis unavailable")
			return
		}
		components["redis"] = "up"
	}

	util.Success(ctx, gin.H{
		"status":     "healthy",
		"components": components,
	})
}
