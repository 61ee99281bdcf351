package config

import (
	"github.com/spf13/viper"
	"github.com/uscsoc/socplan/internal/domain"
)

const (
	defaultBaseURL      = "https://web-app.usc.edu/web/soc/api"
	defaultDirectoryURL = "https://classes.usc.edu"
)

// Load loads configuration from multiple sources:
// 1. Config file (config.yaml, optional)
// 2. Environment variables (SOCPLAN_*)
func Load() (*domain.Config, error) {
	cfg := &domain.Config{}

	cfg.BaseURL = viper.GetString("base_url")
	cfg.DirectoryURL = viper.GetString("directory_url")
	cfg.Term = viper.GetString("term")
	cfg.DBDir = viper.GetString("db_dir")
	cfg.LogLevel = viper.GetString("log_level")
	cfg.DepartmentsFile = viper.GetString("departments_file")
	cfg.DiscordWebhookURL = viper.GetString("discord_webhook_url")

	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.DirectoryURL == "" {
		cfg.DirectoryURL = defaultDirectoryURL
	}
	if cfg.DBDir == "" {
		cfg.DBDir = "."
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	return cfg, nil
}
