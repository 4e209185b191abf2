// Package config handles configuration loading, parsing, and validation
// from defaults, an optional quiz.yaml file and QUIZ_* environment variables.
// It provides type-safe access to the settings needed by the logger, the
// grader and question creation.
package config
