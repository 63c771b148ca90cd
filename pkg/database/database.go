package database

import (
	"fmt"
	"skill_manager_backend/internal/config"
	"skill_manager_backend/internal/model"
	applog "skill_manager_backend/pkg/logger"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/mysql"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open 按配置的驱动建立连接，不执行迁移
func Open(cfg *config.DatabaseConfig, mode string) (*gorm.DB, error) {
	logLevel := logger.Warn
	if mode == "debug" {
		logLevel = logger.Info
	}

	var dialector gorm.Dialector
	switch cfg.Driver {
	case config.DriverSQLite:
		dialector = sqlite.Open(cfg.Path)
	default:
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
			cfg.User,
			cfg.Password,
			cfg.Host,
			cfg.Port,
			cfg.DBName,
			cfg.Charset,
			cfg.ParseTime,
		)
		dialector = mysql.Open(dsn)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, err
	}

	applog.Log.Info("Database connection established", zap.String("driver", cfg.Driver))
	return db, nil
}

// Migrate 自动建表
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&model.User{},
		&model.Skill{},
		&model.Certification{},
		&model.Achievement{},
		&model.Role{},
		&model.Course{},
	)
	if err != nil {
		return err
	}

	applog.Log.Info("Database migration completed")
	return nil
}

// InitDB 建立连接；非 release 模式或强制迁移时执行迁移
func InitDB(cfg *config.DatabaseConfig, mode string, forceMigrate bool) (*gorm.DB, error) {
	db, err := Open(cfg, mode)
	if err != nil {
		return nil, err
	}

	if mode != "release" || forceMigrate {
		if err := Migrate(db); err != nil {
			return nil, err
		}
	}

	return db, nil
}
