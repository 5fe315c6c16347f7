// Package main provides the entry point for the expected-points trainer.
package main

import (
	"context"
	"fmt"
	"log"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/yourusername/fpl-expected-points/internal/config"
	"github.com/yourusername/fpl-expected-points/internal/logger"
	"github.com/yourusername/fpl-expected-points/internal/service"
)

// Build information - set via ldflags
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var (
	configFile     string
	seasonOverride string
	outputOverride string
	appLogger      *logrus.Logger
	cfg            *config.Config
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "./config/config.yaml", "Path to configuration file")
	rootCmd.PersistentFlags().StringVar(&seasonOverride, "season", "", "Override the configured season, e.g. 2019-20")
	rootCmd.PersistentFlags().StringVar(&outputOverride, "output-dir", "", "Override the model output directory")
}

var rootCmd = &cobra.Command{
	Use:   "train",
	Short: "Train the expected-points regression model",
	Long:  `Builds the engineered feature dataset from a season's raw tables and trains the expected-points feed-forward model.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := loadConfig(); err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		appLogger = logger.NewLogger(cfg.App.LogLevel, cfg.App.Environment)
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTraining()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func loadConfig() error {
	loaded, err := config.LoadWithDefaults(configFile)
	if err != nil {
		return err
	}
	if seasonOverride != "" {
		loaded.Data.Season = seasonOverride
	}
	if outputOverride != "" {
		loaded.Training.OutputDir = outputOverride
	}
	if err := config.Validate(loaded); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	cfg = loaded
	return nil
}

func runTraining() error {
	appLogger.WithFields(logrus.Fields{
		"version": Version,
		"season":  cfg.Data.Season,
	}).Info("Starting expected-points training run")

	svc := service.NewTrainingService(cfg, appLogger)
	artifact, err := svc.Run(context.Background())
	if err != nil {
		return err
	}

	appLogger.WithFields(logrus.Fields{
		"run_id":   artifact.RunID,
		"test_mse": artifact.TestMSE,
		"test_mae": artifact.TestMAE,
	}).Info("Run complete")
	return nil
}
