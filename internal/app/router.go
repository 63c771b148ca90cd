package app

import (
	"context"
	"skill_manager_backend/docs"
	"skill_manager_backend/internal/config"
	"skill_manager_backend/internal/middleware"
	"skill_manager_backend/pkg/monitoring"
	"skill_manager_backend/pkg/security"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(ctx context.Context, router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	api := router.Group("/api")
	api.Use(middleware.RequestID())
	{
		api.GET("", c.health.Info)
		api.GET("/health", c.health.HealthCheck)

		a.registerProfileRoutes(api, c)
		a.registerCatalogRoutes(api, c, cfg)
		a.registerAIRoutes(ctx, api, c, cfg)
	}
}

// 用户档案：用户、技能、证书、成就
func (a *App) registerProfileRoutes(api *gin.RouterGroup, c *controllers) {
	users := api.Group("/users")
	{
		users.POST("", c.user.CreateUser)
		users.GET("", c.user.ListUsers)
		users.GET("/:id", c.user.GetUser)
	}

	skills := api.Group("/skills")
	{
		skills.POST("/users/:userId", c.skill.AddSkill)
		skills.PUT("/:id", c.skill.UpdateSkill)
		skills.DELETE("/:id", c.skill.DeleteSkill)
	}

	certifications := api.Group("/certifications")
	{
		certifications.POST("/users/:userId", c.skill.AddCertification)
		certifications.DELETE("/:id", c.skill.DeleteCertification)
	}

	achievements := api.Group("/achievements")
	{
		achievements.POST("/users/:userId", c.skill.AddAchievement)
		achievements.DELETE("/:id", c.skill.DeleteAchievement)
	}
}

// 岗位与课程目录，写操作需要管理员
func (a *App) registerCatalogRoutes(api *gin.RouterGroup, c *controllers, cfg *config.Config) {
	admin := middleware.AdminOnly(cfg.JWT.Secret)

	roles := api.Group("/roles")
	{
		roles.GET("", c.catalog.ListRoles)
		roles.POST("", append(admin, c.catalog.CreateRole)...)
	}

	courses := api.Group("/courses")
	{
		courses.GET("", c.catalog.ListCourses)
		courses.POST("", append(admin, c.catalog.CreateCourse)...)
	}
}

// 大模型相关接口单独限流
func (a *App) registerAIRoutes(ctx context.Context, api *gin.RouterGroup, c *controllers, cfg *config.Config) {
	ai := api.Group("")
	ai.Use(security.RateLimiter(ctx, cfg.RateLimit.AIMaxRequests, time.Duration(cfg.RateLimit.WindowMinutes)*time.Minute))
	{
		ai.POST("/analysis", c.analysis.AnalyzeSkillGap)
		ai.GET("/quiz/:skill", c.quiz.GenerateQuiz)
		ai.POST("/quiz/:skill/submit", c.quiz.SubmitQuiz)
	}
}
