package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable read by Load,
// e.g. QUIZ_LOG_LEVEL for log.level.
const EnvPrefix = "QUIZ"

// Default values.
const (
	DefaultLogLevel      = "info"
	DefaultGradingPolicy = "all_or_nothing"
)

// Load reads configuration from defaults, an optional config file and
// environment variables, in increasing order of precedence.
//
// If configFile is empty, Load looks for quiz.yaml (or any format viper
// understands) in the working directory and silently continues if there is
// none. An explicit configFile that cannot be read is an error.
// Returns a populated Config struct or an error if loading/validation fails.
func Load(configFile string) (*Config, error) {
	v := viper.New()

	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("grading.policy", DefaultGradingPolicy)
	v.SetDefault("question.default_points", 1)
	v.SetDefault("question.default_max_selections", 1)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("quiz")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.Log.Level = strings.ToLower(strings.TrimSpace(cfg.Log.Level))
	cfg.Grading.Policy = strings.ToLower(strings.TrimSpace(cfg.Grading.Policy))

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}
