package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Load reads configuration from environment variables and an optional
// config file. Environment variables take precedence over values from
// the config file; both override the built-in defaults. Returns a
// populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	v := viper.New()

	// Defaults. Every key needs a default (or an explicit bind) so that
	// AutomaticEnv can find it during Unmarshal.
	v.SetDefault("scheduler.log_level", "info")
	v.SetDefault("scheduler.steps_dir", ".")
	v.SetDefault("scheduler.schedule_file", "schedule_config.json")
	v.SetDefault("database.url", "")
	v.SetDefault("llm.gemini_api_keys", []string{})
	v.SetDefault("llm.model_name", "gemini-2.5-flash")
	v.SetDefault("email.resend_api_key", "")
	v.SetDefault("email.from_address", "Pantrifi <alert@pantrifi.com>")
	v.SetDefault("email.dashboard_url", "https://www.pantrifi.com/dashboard")
	v.SetDefault("pipeline.workspace_dir", ".")
	v.SetDefault("pipeline.eligible_users_file", "filtered_users_with_sheets.json")

	// Optional config file in the working directory.
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Environment variables: PANTRIFI_SCHEDULER_LOG_LEVEL, etc.
	v.SetEnvPrefix("PANTRIFI")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}
