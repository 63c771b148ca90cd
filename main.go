// @title Skill Manager API
// @version 1.0
// @description 技能管理与职业发展平台的后端服务，提供技能差距分析与技能测验。

// @host localhost:8080
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

package main

import (
	"flag"
	"fmt"
	"log"
	"skill_manager_backend/internal/app"
	"skill_manager_backend/internal/config"
	"skill_manager_backend/internal/model"
	"skill_manager_backend/internal/util"
	"skill_manager_backend/pkg/logger"
)

func main() {
	// 命令行参数
	configDir := flag.String("config", "configs", "配置文件所在目录")
	migrateOnly := flag.Bool("migrate-only", false, "只执行数据库迁移，完成后退出")
	migrate := flag.Bool("migrate", false, "启动时强制执行数据库迁移（即使是 release 模式）")
	adminToken := flag.String("admin-token", "", "为指定名称签发管理员令牌并退出")
	flag.Parse()

	if err := config.LoadDotEnv(); err != nil {
		log.Fatalf("Failed to load .env: %v", err)
	}

	cfg, err := config.LoadConfig(*configDir)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if *adminToken != "" {
		if cfg.JWT.Secret == "" {
			log.Fatal("jwt.secret is not configured, admin routes are open")
		}
		token, err := util.GenerateJWT(*adminToken, model.Admin, cfg.JWT.Secret, cfg.JWT.ExpireTime)
		if err != nil {
			log.Fatalf("Failed to sign token: %v", err)
		}
		fmt.Println(token)
		return
	}

	// 设置迁移标志
	cfg.ForceMigrate = *migrate || *migrateOnly
	cfg.MigrateOnly = *migrateOnly

	application, err := app.NewApp(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize app: %v", err)
	}
	defer logger.Log.Sync()

	// 迁移完成后直接退出
	if *migrateOnly {
		application.Close()
		log.Println("数据库迁移完成，退出程序")
		return
	}

	application.Run()
}
