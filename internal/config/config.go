package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Scheduler SchedulerConfig `mapstructure:"scheduler" validate:"required"`
	Database  DatabaseConfig  `mapstructure:"database"`
	LLM       LLMConfig       `mapstructure:"llm"`
	Email     EmailConfig     `mapstructure:"email"`
	Pipeline  PipelineConfig  `mapstructure:"pipeline"`
}

// SchedulerConfig contains the trigger scheduler settings.
type SchedulerConfig struct {
	// LogLevel controls the slog level for all binaries.
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`

	// StepsDir is the base directory the step executables are resolved
	// against.
	StepsDir string `mapstructure:"steps_dir" validate:"required"`

	// ScheduleFile is the path of the persisted trigger configuration.
	ScheduleFile string `mapstructure:"schedule_file" validate:"required"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"omitempty,url"`
}

// LLMConfig contains all LLM integration related settings.
type LLMConfig struct {
	// GeminiAPIKeys is the ordered credential list for the failover
	// client; the first key is the primary. Comma-separated when set
	// through the environment.
	GeminiAPIKeys []string `mapstructure:"gemini_api_keys"`

	// ModelName selects the Gemini model used for analysis.
	ModelName string `mapstructure:"model_name" validate:"required"`
}

// EmailConfig contains alert email delivery settings.
type EmailConfig struct {
	ResendAPIKey string `mapstructure:"resend_api_key"`
	FromAddress  string `mapstructure:"from_address" validate:"required"`
	DashboardURL string `mapstructure:"dashboard_url" validate:"required,url"`
}

// PipelineConfig contains settings for the analysis workflow step.
type PipelineConfig struct {
	// WorkspaceDir is where per-user scratch directories are created.
	WorkspaceDir string `mapstructure:"workspace_dir" validate:"required"`

	// EligibleUsersFile is the JSON file produced by the filter step and
	// consumed by the analysis step.
	EligibleUsersFile string `mapstructure:"eligible_users_file" validate:"required"`
}
