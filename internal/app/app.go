package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"skill_manager_backend/internal/config"
	"skill_manager_backend/internal/controller"
	"skill_manager_backend/internal/repository"
	"skill_manager_backend/internal/service"
	"skill_manager_backend/pkg/configwatcher"
	"skill_manager_backend/pkg/database"
	"skill_manager_backend/pkg/logger"
	"skill_manager_backend/pkg/monitoring"
	"skill_manager_backend/pkg/security"
	"skill_manager_backend/pkg/tracing"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	DB              *gorm.DB
	Redis           *redis.Client
	services        *services
	tracer          *sdktrace.TracerProvider
	stopBackground  context.CancelFunc // 停止限流清理等后台协程
	configCallbacks []func(*config.Config)
}

type repositories struct {
	user          *repository.UserRepository
	skill         *repository.SkillRepository
	certification *repository.CertificationRepository
	achievement   *repository.AchievementRepository
	role          *repository.RoleRepository
	course        *repository.CourseRepository
}

type services struct {
	ai       *service.AIService
	user     *service.UserService
	catalog  *service.CatalogService
	analysis *service.AnalysisService
	quiz     *service.QuizService
	sessions service.QuizSessionStore
}

type controllers struct {
	user     *controller.UserController
	skill    *controller.SkillController
	catalog  *controller.CatalogController
	analysis *controller.AnalysisController
	quiz     *controller.QuizController
	health   *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

// applyConfig 热加载后更新运行时配置，只有 AI 相关设置会即时生效
func (a *App) applyConfig(cfg *config.Config) {
	for _, callback := range a.configCallbacks {
		callback(cfg)
	}
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:          repository.NewUserRepository(db),
		skill:         repository.NewSkillRepository(db),
		certification: repository.NewCertificationRepository(db),
		achievement:   repository.NewAchievementRepository(db),
		role:          repository.NewRoleRepository(db),
		course:        repository.NewCourseRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) *services {
	aiService := service.NewAIService(cfg.AI)
	a.RegisterConfigCallback(func(newCfg *config.Config) {
		aiService.UpdateConfig(newCfg.AI)
	})

	sessions := service.NewQuizSessionStore(cfg.Quiz.SessionStore, cfg.Quiz.SessionTTL(), rdb)

	return &services{
		ai:       aiService,
		user:     service.NewUserService(repos.user, repos.skill, repos.certification, repos.achievement),
		catalog:  service.NewCatalogService(repos.role, repos.course),
		analysis: service.NewAnalysisService(aiService, repos.user, repos.course, repos.role),
		quiz:     service.NewQuizService(aiService, sessions),
		sessions: sessions,
	}
}

func (a *App) initControllers(s *services, db *gorm.DB, rdb *redis.Client) *controllers {
	return &controllers{
		user:     controller.NewUserController(s.user),
		skill:    controller.NewSkillController(s.user),
		catalog:  controller.NewCatalogController(s.catalog),
		analysis: controller.NewAnalysisController(s.analysis),
		quiz:     controller.NewQuizController(s.quiz),
		health:   controller.NewHealthController(db, rdb),
	}
}

func (a *App) setupMiddlewares(ctx context.Context, router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())
	router.Use(security.RateLimiter(ctx, cfg.RateLimit.MaxRequests, time.Duration(cfg.RateLimit.WindowMinutes)*time.Minute))

	// 分布式追踪中间件
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

// NewApp 初始化数据库、可选的 Redis、服务与路由
func NewApp(cfg *config.Config) (*App, error) {
	logger.InitLogger(cfg)
	logger.Log.Info("Logger initialized successfully")

	gin.SetMode(cfg.Server.Mode)

	db, err := database.InitDB(&cfg.Database, cfg.Server.Mode, cfg.ForceMigrate)
	if err != nil {
		return nil, fmt.Errorf("initialize database: %w", err)
	}

	if cfg.Seed.File != "" && (cfg.Server.Mode != gin.ReleaseMode || cfg.ForceMigrate) {
		if _, err := service.NewSeedService(db).SeedFromFile(cfg.Seed.File); err != nil {
			return nil, fmt.Errorf("seed database: %w", err)
		}
	}

	app := &App{
		Config: cfg,
		DB:     db,
	}

	if cfg.MigrateOnly {
		return app, nil
	}

	// 仅在测验会话使用 redis 时连接
	if cfg.Quiz.SessionStore == config.SessionStoreRedis {
		rdb, err := database.InitRedis(&cfg.Redis)
		if err != nil {
			return nil, fmt.Errorf("initialize redis: %w", err)
		}
		app.Redis = rdb
	}

	repos := app.initRepositories(db)
	app.services = app.initServices(repos, cfg, app.Redis)
	controllers := app.initControllers(app.services, db, app.Redis)

	// 监控初始化
	monitoring.Init()

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer(tracing.ServiceName, cfg.Tracing.CollectorEndpoint)
		if err != nil {
			return nil, fmt.Errorf("initialize tracing: %w", err)
		}
		app.tracer = tp
	}

	router := gin.New()
	router.Use(gin.Recovery())
	if cfg.Server.Mode == gin.DebugMode {
		router.Use(gin.Logger())
	}
	app.Router = router

	bgCtx, stop := context.WithCancel(context.Background())
	app.stopBackground = stop
	app.setupMiddlewares(bgCtx, router, cfg)
	app.registerRoutes(bgCtx, router, controllers, cfg)

	return app, nil
}

// Close 释放追踪与连接资源
func (a *App) Close() {
	if a.stopBackground != nil {
		a.stopBackground()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := tracing.Shutdown(ctx, a.tracer); err != nil {
		logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
	}
	if a.Redis != nil {
		if err := a.Redis.Close(); err != nil {
			logger.Log.Error("Failed to close redis", zap.Error(err))
		}
	}
	if sqlDB, err := a.DB.DB(); err == nil {
		sqlDB.Close()
	}
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	// 配置文件热加载
	if a.Config.ConfigFile != "" {
		go func() {
			if err := configwatcher.WatchConfig(ctx, a.Config.ConfigFile, a.applyConfig); err != nil {
				logger.Log.Error("Config watcher stopped", zap.Error(err))
			}
		}()
	}

	// 启动服务器
	go func() {
		logger.Log.Info("Server running", zap.String("port", a.Config.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// 等待中断信号优雅地关闭服务器（设置5秒的超时时间）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("Server forced to shutdown", zap.Error(err))
	}

	a.Close()
	logger.Log.Info("Server exiting")
}
