package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	Server     ServerConfig   `mapstructure:"server"`
	Database   DatabaseConfig `mapstructure:"database"`
	OpenRouter ModelConfig    `mapstructure:"openrouter"`
	JWT        JWTConfig      `mapstructure:"jwt"`
	Insights   InsightsConfig `mapstructure:"insights"`
	Records    RecordsConfig  `mapstructure:"records"`
}

type ServerConfig struct {
	Port string `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug / release
}

type DatabaseConfig struct {
	DSN string `mapstructure:"dsn"`
}

type ModelConfig struct {
	APIKey  string `mapstructure:"api_key"`
	BaseURL string `mapstructure:"base_url"`
	Model   string `mapstructure:"model"`
}

type JWTConfig struct {
	Secret      string `mapstructure:"secret"`
	ExpireHours int    `mapstructure:"expire_hours"`
}

// InsightsConfig AI 窗口的边界
// 30 天 / 50 条是产品定的经验值，没有更多依据，所以做成配置而不是写死
type InsightsConfig struct {
	WindowDays int `mapstructure:"window_days"`
	MaxRecords int `mapstructure:"max_records"`
}

type RecordsConfig struct {
	ListLimit int `mapstructure:"list_limit"`
}

// LoadConfig 读取配置文件
// 不传 path 时在当前目录找 config.yaml；测试里可以指定临时目录
func LoadConfig(paths ...string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config") // 配置文件名 (不带扩展名)
	v.SetConfigType("yaml")
	if len(paths) == 0 {
		paths = []string{"."}
	}
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	// 支持环境变量覆盖 (例如在 Docker 中)
	// 比如 EXPENSETRACKER_OPENROUTER_API_KEY 可以覆盖 yaml 里的值
	v.SetEnvPrefix("EXPENSETRACKER")
	v.AutomaticEnv()

	// 窗口和列表长度的默认值
	v.SetDefault("server.port", ":8080")
	v.SetDefault("jwt.expire_hours", 72)
	v.SetDefault("insights.window_days", 30)
	v.SetDefault("insights.max_records", 50)
	v.SetDefault("records.list_limit", 10)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("读取配置文件失败: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("解析配置文件失败: %w", err)
	}

	return &cfg, nil
}
