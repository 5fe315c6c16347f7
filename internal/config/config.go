// Package config provides configuration management for the expected-points trainer.
package config

import (
	"path/filepath"
)

// Config represents the complete application configuration
type Config struct {
	App      AppConfig      `mapstructure:"app" validate:"required"`
	Data     DataConfig     `mapstructure:"data" validate:"required"`
	Dataset  DatasetConfig  `mapstructure:"dataset" validate:"required"`
	Training TrainingConfig `mapstructure:"training" validate:"required"`
}

// AppConfig represents application-level configuration
type AppConfig struct {
	Name        string `mapstructure:"name" validate:"required"`
	Environment string `mapstructure:"environment" validate:"required,environment"`
	LogLevel    string `mapstructure:"log_level" validate:"required,loglevel"`
}

// DataConfig selects the season input directory and the schema dictionary
type DataConfig struct {
	Dir        string `mapstructure:"dir" validate:"required"`
	Season     string `mapstructure:"season" validate:"required,season"`
	SchemaPath string `mapstructure:"schema_path" validate:"required"`
}

// DatasetConfig represents dataset builder configuration
type DatasetConfig struct {
	MinGameweeksPlayed int     `mapstructure:"min_gameweeks_played" validate:"required,gt=0"`
	TrainFraction      float64 `mapstructure:"train_fraction" validate:"required,gt=0,lt=1"`
	Seed               int64   `mapstructure:"seed"`
}

// TrainingConfig represents model training configuration
type TrainingConfig struct {
	Epochs       int     `mapstructure:"epochs" validate:"required,gt=0"`
	Patience     int     `mapstructure:"patience" validate:"required,gt=0"`
	LearningRate float64 `mapstructure:"learning_rate" validate:"required,gt=0"`
	BatchSize    int     `mapstructure:"batch_size" validate:"required,gt=0"`
	OutputDir    string  `mapstructure:"output_dir" validate:"required"`
	ArtifactName string  `mapstructure:"artifact_name" validate:"required"`
}

// IsDevelopment checks if the application is running in development mode
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development"
}

// IsProduction checks if the application is running in production mode
func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

// SeasonDir returns the input directory for the configured season
func (c *Config) SeasonDir() string {
	return filepath.Join(c.Data.Dir, c.Data.Season)
}

// ArtifactDir returns the directory the trained model is persisted to
func (c *Config) ArtifactDir() string {
	return filepath.Join(c.Training.OutputDir, c.Training.ArtifactName)
}
