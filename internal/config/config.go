package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Log      LogConfig      `mapstructure:"log" validate:"required"`
	Grading  GradingConfig  `mapstructure:"grading" validate:"required"`
	Question QuestionConfig `mapstructure:"question" validate:"required"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
}

// GradingConfig contains answer grading settings.
type GradingConfig struct {
	Policy string `mapstructure:"policy" validate:"required,oneof=all_or_nothing partial"`
}

// QuestionConfig holds the defaults applied to questions that do not set
// their own points or selection limit, e.g. entries in a question bank.
type QuestionConfig struct {
	DefaultPoints        int `mapstructure:"default_points" validate:"gte=1"`
	DefaultMaxSelections int `mapstructure:"default_max_selections" validate:"gte=1"`
}
