package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Smart-todo specifics
	AI        AIConfig
	Scheduler SchedulerConfig
	Timezone  TimezoneConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port            int
	Mode            string
	RateLimitPerMin int
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// AIConfig points at the serialized classifier. An absent or unreadable
// model is not fatal: prediction falls back to the heuristic.
type AIConfig struct {
	ModelPath string
}

// SchedulerConfig carries the default daily/weekly budgets, overridable
// per request.
type SchedulerConfig struct {
	AvailableHours float64
	StartHour      int
	HoursPerDay    float64
}

type TimezoneConfig struct {
	Name string
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.HTTPServer.RateLimitPerMin = viper.GetInt("http_server.rate_limit_per_min")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Smart-todo specifics
	cfg.AI.ModelPath = viper.GetString("ai.model_path")
	if modelPath := viper.GetString("ai_model_path"); modelPath != "" {
		cfg.AI.ModelPath = modelPath
	}

	cfg.Scheduler.AvailableHours = viper.GetFloat64("scheduler.available_hours")
	cfg.Scheduler.StartHour = viper.GetInt("scheduler.start_hour")
	cfg.Scheduler.HoursPerDay = viper.GetFloat64("scheduler.hours_per_day")

	cfg.Timezone.Name = viper.GetString("timezone.name")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("http_server.rate_limit_per_min", 600)
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("ai.model_path", "models/task_model.json")

	viper.SetDefault("scheduler.available_hours", 8)
	viper.SetDefault("scheduler.start_hour", 9)
	viper.SetDefault("scheduler.hours_per_day", 6)

	viper.SetDefault("timezone.name", "Asia/Ho_Chi_Minh")
}
