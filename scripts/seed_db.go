// 手动写入初始数据脚本
//
// 主应用在非 release 模式（或 -migrate）启动时会按 seed.file 自动写入，
// 此脚本用于 release 环境首次部署或单独补数据。已存在的记录会跳过。
//
// 用法: go run scripts/seed_db.go [-config configs] [-file configs/seed.yaml]

package main

import (
	"flag"
	"log"
	"skill_manager_backend/internal/config"
	"skill_manager_backend/internal/service"
	"skill_manager_backend/pkg/database"
	"skill_manager_backend/pkg/logger"
)

func main() {
	configDir := flag.String("config", "configs", "配置文件所在目录")
	seedFile := flag.String("file", "", "初始数据文件，默认使用配置中的 seed.file")
	flag.Parse()

	if err := config.LoadDotEnv(); err != nil {
		log.Fatalf("无法读取 .env: %v", err)
	}

	cfg, err := config.LoadConfig(*configDir)
	if err != nil {
		log.Fatalf("无法读取配置文件: %v", err)
	}

	logger.InitLogger(cfg)
	defer logger.Log.Sync()

	db, err := database.InitDB(&cfg.Database, cfg.Server.Mode, true)
	if err != nil {
		log.Fatalf("数据库连接失败: %v", err)
	}

	file := *seedFile
	if file == "" {
		file = cfg.Seed.File
	}
	if file == "" {
		log.Fatal("未指定初始数据文件")
	}

	report, err := service.NewSeedService(db).SeedFromFile(file)
	if err != nil {
		log.Fatalf("写入初始数据失败: %v", err)
	}

	log.Printf("初始数据写入完成: 用户 %v, 岗位 %d, 课程 %d", report.UserCreated, report.RolesCreated, report.CoursesCreated)
}
