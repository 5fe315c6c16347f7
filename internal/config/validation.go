// Package config provides configuration management for the expected-points trainer.
package config

import (
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"
)

// seasonPattern matches season identifiers such as 2019-20
var seasonPattern = regexp.MustCompile(`^\d{4}-\d{2}$`)

// CustomValidator wraps the validator with custom validation rules
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator creates a new validator with custom validation functions
func NewValidator() *CustomValidator {
	v := validator.New()

	_ = v.RegisterValidation("environment", validateEnvironment)
	_ = v.RegisterValidation("loglevel", validateLogLevel)
	_ = v.RegisterValidation("season", validateSeason)

	return &CustomValidator{validator: v}
}

// Validate validates the entire configuration
func Validate(cfg *Config) error {
	cv := NewValidator()
	return cv.Validate(cfg)
}

// Validate validates the configuration using registered validation rules
func (cv *CustomValidator) Validate(cfg *Config) error {
	err := cv.validator.Struct(cfg)
	if err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			return formatValidationErrors(validationErrors)
		}
		return fmt.Errorf("validation failed: %w", err)
	}

	if err := validateCrossField(cfg); err != nil {
		return err
	}

	return nil
}

// validateEnvironment validates the environment field
func validateEnvironment(fl validator.FieldLevel) bool {
	env := fl.Field().String()
	switch env {
	case "development", "staging", "production":
		return true
	default:
		return false
	}
}

// validateLogLevel validates the log level field
func validateLogLevel(fl validator.FieldLevel) bool {
	level := fl.Field().String()
	switch level {
	case "debug", "info", "warn", "error":
		return true
	default:
		return false
	}
}

// validateSeason validates the season identifier format, e.g. 2019-20
func validateSeason(fl validator.FieldLevel) bool {
	return seasonPattern.MatchString(fl.Field().String())
}

// validateCrossField performs sanity checks beyond the per-field tags:
// the batch size must stay below a hard cap, and the gameweek floor cannot
// exceed the 38 gameweeks a season has.
func validateCrossField(cfg *Config) error {
	if cfg.Training.BatchSize > 8192 {
		return fmt.Errorf("batch_size %d is unreasonably large", cfg.Training.BatchSize)
	}

	if cfg.Dataset.MinGameweeksPlayed > 38 {
		return fmt.Errorf("min_gameweeks_played %d exceeds the length of a season", cfg.Dataset.MinGameweeksPlayed)
	}

	return nil
}

// formatValidationErrors formats validation errors into a readable string
func formatValidationErrors(validationErrors validator.ValidationErrors) error {
	var errMsg string
	for _, fieldError := range validationErrors {
		field := fieldError.StructField()
		tag := fieldError.Tag()
		value := fieldError.Value()

		switch tag {
		case "required":
			errMsg += fmt.Sprintf("- Field '%s' is required\n", field)
		case "gt", "gte", "lt", "lte":
			errMsg += fmt.Sprintf("- Field '%s' validation failed: numeric constraint %s violated\n", field, tag)
		case "environment":
			errMsg += fmt.Sprintf("- Field '%s' must be one of: development, staging, production\n", field)
		case "loglevel":
			errMsg += fmt.Sprintf("- Field '%s' must be one of: debug, info, warn, error\n", field)
		case "season":
			errMsg += fmt.Sprintf("- Field '%s' must be a season identifier like 2019-20, got '%v'\n", field, value)
		default:
			errMsg += fmt.Sprintf("- Field '%s' failed validation: %s\n", field, tag)
		}
	}
	return fmt.Errorf("configuration validation failed:\n%s", errMsg)
}
