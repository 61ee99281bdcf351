package domain

type Config struct {
	BaseURL           string `toml:"base_url" mapstructure:"base_url"`
	DirectoryURL      string `toml:"directory_url" mapstructure:"directory_url"`
	Term              string `toml:"term" mapstructure:"term"`
	DBDir             string `toml:"db_dir" mapstructure:"db_dir"`
	LogLevel          string `toml:"log_level" mapstructure:"log_level"`
	DepartmentsFile   string `toml:"departments_file" mapstructure:"departments_file"`
	DiscordWebhookURL string `toml:"discord_webhook_url" mapstructure:"discord_webhook_url"`
}
