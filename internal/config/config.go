package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	JWT       JWTConfig
	Tracing   TracingConfig `mapstructure:"tracing"`
	Redis     RedisConfig
	AI        AIConfig
	Quiz      QuizConfig
	Log       LogConfig
	Seed      SeedConfig
	CORS      CORSConfig      `mapstructure:"cors"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`

	// 运行时标志（非配置文件，通过命令行参数设置）
	ForceMigrate bool   `mapstructure:"-"` // 强制执行数据库迁移
	MigrateOnly  bool   `mapstructure:"-"` // 仅迁移模式（迁移后退出）
	ConfigFile   string `mapstructure:"-"` // 实际读取的配置文件路径，供热加载使用
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type RateLimitConfig struct {
	MaxRequests   int `mapstructure:"max_requests"`
	WindowMinutes int `mapstructure:"window_minutes"`
	// AI 接口单独限流，调用大模型成本较高
	AIMaxRequests int `mapstructure:"ai_max_requests"`
}

type AIConfig struct {
	BaseURL             string  `mapstructure:"base_url"`
	APIKey              string  `mapstructure:"api_key"`
	Model               string  `mapstructure:"model"`
	AnalysisTemperature float32 `mapstructure:"analysis_temperature"`
	AnalysisMaxTokens   int     `mapstructure:"analysis_max_tokens"`
	QuizTemperature     float32 `mapstructure:"quiz_temperature"`
	QuizMaxTokens       int     `mapstructure:"quiz_max_tokens"`
}

// Configured 判断是否配置了大模型凭证
func (c AIConfig) Configured() bool {
	return c.APIKey != ""
}

type QuizConfig struct {
	SessionStore      string `mapstructure:"session_store"` // memory 或 redis
	SessionTTLMinutes int    `mapstructure:"session_ttl_minutes"`
}

func (c QuizConfig) SessionTTL() time.Duration {
	return time.Duration(c.SessionTTLMinutes) * time.Minute
}

type ServerConfig struct {
	Port string
	Mode string
}

type DatabaseConfig struct {
	Driver    string // mysql 或 sqlite
	Host      string
	Port      int
	User      string
	Password  string
	DBName    string
	Charset   string
	ParseTime bool
	Path      string // sqlite 文件路径
}

type JWTConfig struct {
	Secret     string        `mapstructure:"secret"`
	ExpireTime time.Duration `mapstructure:"expire_hours"`
}

type TracingConfig struct {
	Enabled           bool   `mapstructure:"enabled"`
	CollectorEndpoint string `mapstructure:"collector_endpoint"`
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type LogConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"` // debug / info / warn / error，留空按 server.mode
}

type SeedConfig struct {
	File string `mapstructure:"file"`
}

const (
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite"

	SessionStoreMemory = "memory"
	SessionStoreRedis  = "redis"
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.mode", "debug")

	v.SetDefault("database.driver", DriverMySQL)
	v.SetDefault("database.charset", "utf8mb4")
	v.SetDefault("database.parsetime", true)
	v.SetDefault("database.path", "skill_manager.db")

	v.SetDefault("ai.base_url", "https://api.groq.com/openai/v1")
	v.SetDefault("ai.model", "llama-3.3-70b-versatile")
	v.SetDefault("ai.analysis_temperature", 0.7)
	v.SetDefault("ai.analysis_max_tokens", 2000)
	v.SetDefault("ai.quiz_temperature", 0.8)
	v.SetDefault("ai.quiz_max_tokens", 1500)

	v.SetDefault("quiz.session_store", SessionStoreMemory)
	v.SetDefault("quiz.session_ttl_minutes", 30)

	v.SetDefault("jwt.expire_hours", 24)
	v.SetDefault("log.file", "logs/app.log")

	v.SetDefault("cors.allowed_origins", []string{"*"})
	v.SetDefault("rate_limit.max_requests", 6000)
	v.SetDefault("rate_limit.window_minutes", 1)
	v.SetDefault("rate_limit.ai_max_requests", 30)
}

// LoadDotEnv 读取 .env 中的环境变量（如 GROQ_API_KEY），已存在的变量不覆盖，文件不存在时忽略
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", f, err)
		}
	}
	return nil
}

func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	v.SetEnvPrefix("SKILL_MANAGER")
	v.AutomaticEnv()

	setDefaults(v)

	// Database
	v.BindEnv("database.driver", "DATABASE_DRIVER")
	v.BindEnv("database.host", "DATABASE_HOST")
	v.BindEnv("database.port", "DATABASE_PORT")
	v.BindEnv("database.user", "DATABASE_USER")
	v.BindEnv("database.password", "DATABASE_PASSWORD")
	v.BindEnv("database.dbname", "DATABASE_NAME")

	// JWT
	v.BindEnv("jwt.secret", "JWT_SECRET")

	// Redis
	v.BindEnv("redis.host", "REDIS_HOST")
	v.BindEnv("redis.port", "REDIS_PORT")
	v.BindEnv("redis.password", "REDIS_PASSWORD")

	// Server
	v.BindEnv("server.mode", "SERVER_MODE")
	v.BindEnv("server.port", "SERVER_PORT")

	// AI，兼容原有的 GROQ_API_KEY
	v.BindEnv("ai.base_url", "AI_BASE_URL")
	v.BindEnv("ai.api_key", "AI_API_KEY", "GROQ_API_KEY")
	v.BindEnv("ai.model", "AI_MODEL")

	// Quiz
	v.BindEnv("quiz.session_store", "QUIZ_SESSION_STORE")

	// Tracing
	v.BindEnv("tracing.enabled", "TRACING_ENABLED")
	v.BindEnv("tracing.collector_endpoint", "TRACING_COLLECTOR_ENDPOINT")

	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	cfg.JWT.ExpireTime = cfg.JWT.ExpireTime * time.Hour
	cfg.ConfigFile = v.ConfigFileUsed()

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	if dir := filepath.Dir(cfg.Log.File); dir != "" {
		if _, err := os.Stat(dir); os.IsNotExist(err) {
			os.MkdirAll(dir, 0755)
		}
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Server.Mode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("unknown server mode: %q", c.Server.Mode)
	}

	// 生产环境校验 JWT Secret 强度，未配置则管理接口不鉴权
	if c.Server.Mode == "release" && c.JWT.Secret != "" && len(c.JWT.Secret) < 32 {
		return fmt.Errorf("JWT secret is too short (%d chars), must be at least 32 characters in release mode", len(c.JWT.Secret))
	}

	switch c.Database.Driver {
	case DriverMySQL, DriverSQLite:
	default:
		return fmt.Errorf("unknown database driver: %q", c.Database.Driver)
	}

	switch c.Quiz.SessionStore {
	case SessionStoreMemory, SessionStoreRedis:
	default:
		return fmt.Errorf("unknown quiz session store: %q", c.Quiz.SessionStore)
	}

	if c.Quiz.SessionTTLMinutes <= 0 {
		return fmt.Errorf("quiz session ttl must be positive, got %d", c.Quiz.SessionTTLMinutes)
	}

	return nil
}
