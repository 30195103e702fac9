package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Engine    EngineConfig    `mapstructure:"engine"`
	AI        AIConfig        `mapstructure:"ai"`
	Mentor    MentorConfig    `mapstructure:"mentor"`
	Tracing   TracingConfig   `mapstructure:"tracing"`
	CORS      CORSConfig      `mapstructure:"cors"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
}

type ServerConfig struct {
	Port string
	Mode string
}

// EngineConfig 自适应学习引擎的模拟参数，seed 固定后生成结果可复现
type EngineConfig struct {
	Seed         uint64   `mapstructure:"seed"`
	Students     int      `mapstructure:"students"`
	Items        int      `mapstructure:"items"`
	HorizonDays  int      `mapstructure:"horizon_days"`
	LookbackDays int      `mapstructure:"lookback_days"`
	Domains      []string `mapstructure:"domains"`
}

type AIConfig struct {
	BaseURL        string        `mapstructure:"base_url"`
	APIKey         string        `mapstructure:"api_key"`
	Model          string        `mapstructure:"model"`
	RequestTimeout time.Duration `mapstructure:"timeout_seconds"`
}

type MentorConfig struct {
	UpdateInterval time.Duration `mapstructure:"update_interval_seconds"`
	LogCapacity    int           `mapstructure:"log_capacity"`
}

type TracingConfig struct {
	Enabled           bool   `mapstructure:"enabled"`
	CollectorEndpoint string `mapstructure:"collector_endpoint"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type RateLimitConfig struct {
	MaxRequests   int `mapstructure:"max_requests"`
	WindowMinutes int `mapstructure:"window_minutes"`
}

// DefaultDomains 固定领域集合，顺序即推荐结果的排序顺序
var DefaultDomains = []string{"Algebra", "Probability", "Calculus", "Statistics", "Programming"}

func LoadConfig(path string) (*Config, error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.SetEnvPrefix("ADAPTIVE_LEARNING")
	viper.AutomaticEnv()

	// Server
	viper.BindEnv("server.port", "SERVER_PORT")
	viper.BindEnv("server.mode", "SERVER_MODE")

	// Engine
	viper.BindEnv("engine.seed", "ENGINE_SEED")
	viper.BindEnv("engine.students", "ENGINE_STUDENTS")
	viper.BindEnv("engine.items", "ENGINE_ITEMS")

	// AI
	viper.BindEnv("ai.base_url", "AI_BASE_URL")
	viper.BindEnv("ai.api_key", "AI_API_KEY")
	viper.BindEnv("ai.model", "AI_MODEL")

	// Tracing
	viper.BindEnv("tracing.enabled", "TRACING_ENABLED")
	viper.BindEnv("tracing.collector_endpoint", "TRACING_COLLECTOR_ENDPOINT")

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	ApplyDefaults(&cfg)

	if cfg.Engine.Students <= 0 || cfg.Engine.Items <= 0 {
		return nil, fmt.Errorf("engine.students and engine.items must be positive (got %d, %d)",
			cfg.Engine.Students, cfg.Engine.Items)
	}

	cfg.AI.RequestTimeout = cfg.AI.RequestTimeout * time.Second
	cfg.Mentor.UpdateInterval = cfg.Mentor.UpdateInterval * time.Second

	return &cfg, nil
}

// ApplyDefaults 缺省值与原型参数保持一致：90名学生、120道题、30天轨迹
func ApplyDefaults(cfg *Config) {
	if cfg.Server.Port == "" {
		cfg.Server.Port = "8080"
	}
	if cfg.Engine.Seed == 0 {
		cfg.Engine.Seed = 42
	}
	if cfg.Engine.Students == 0 {
		cfg.Engine.Students = 90
	}
	if cfg.Engine.Items == 0 {
		cfg.Engine.Items = 120
	}
	if cfg.Engine.HorizonDays <= 0 {
		cfg.Engine.HorizonDays = 30
	}
	if cfg.Engine.LookbackDays <= 0 {
		cfg.Engine.LookbackDays = 7
	}
	if len(cfg.Engine.Domains) == 0 {
		cfg.Engine.Domains = append([]string{}, DefaultDomains...)
	}
	if cfg.AI.Model == "" {
		cfg.AI.Model = "gpt-4o-mini"
	}
	if cfg.AI.RequestTimeout <= 0 {
		cfg.AI.RequestTimeout = 30
	}
	if cfg.Mentor.UpdateInterval <= 0 {
		cfg.Mentor.UpdateInterval = 5
	}
	if cfg.Mentor.LogCapacity <= 0 {
		cfg.Mentor.LogCapacity = 30
	}
	if cfg.RateLimit.MaxRequests <= 0 {
		cfg.RateLimit.MaxRequests = 100000
	}
	if cfg.RateLimit.WindowMinutes <= 0 {
		cfg.RateLimit.WindowMinutes = 1
	}
}
