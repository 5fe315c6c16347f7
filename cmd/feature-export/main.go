// Package main provides a diagnostic tool that exports the engineered
// player-fixture table and compares candidate features against actual points.
package main

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/yourusername/fpl-expected-points/internal/config"
	"github.com/yourusername/fpl-expected-points/internal/logger"
	"github.com/yourusername/fpl-expected-points/internal/models"
	"github.com/yourusername/fpl-expected-points/internal/service"
	"github.com/yourusername/fpl-expected-points/internal/stats"
)

func main() {
	var (
		configPath = flag.String("config", "config/config.yaml", "Path to config file")
		season     = flag.String("season", "", "Override season (e.g. 2019-20)")
		output     = flag.String("output", "./output/player_fixture_stats.csv", "Output path for the engineered table")
	)
	flag.Parse()

	cfg := loadConfig(*configPath, *season)
	appLogger := logger.NewLogger(cfg.App.LogLevel, cfg.App.Environment)
	ctx := context.Background()

	svc := service.NewTrainingService(cfg, appLogger)
	rows, err := svc.BuildEngineeredTable(ctx)
	if err != nil {
		appLogger.Fatalf("Failed to build engineered table: %v", err)
	}

	if err := writeCSV(rows, *output); err != nil {
		appLogger.Fatalf("Failed to write engineered table: %v", err)
	}
	appLogger.WithFields(logrus.Fields{"rows": len(rows), "path": *output}).Info("Engineered table exported")

	reportFeatureMSE(appLogger, rows)
}

func loadConfig(path, season string) *config.Config {
	cfg, err := config.LoadWithDefaults(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if season != "" {
		cfg.Data.Season = season
	}
	if err := config.Validate(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// reportFeatureMSE logs the diagnostic mean-squared error of each candidate
// feature against the points actually scored.
func reportFeatureMSE(appLogger *logrus.Logger, rows []models.PlayerFixtureStat) {
	candidates := []struct {
		name   string
		column stats.FeatureColumn
	}{
		{"avg_points_to_gw", func(r *models.PlayerFixtureStat) *float64 { return r.AvgPointsToGW }},
		{"avg_points_opp_points_adj_to_gw", func(r *models.PlayerFixtureStat) *float64 { return r.AvgPointsOppPointsAdjToGW }},
	}

	for _, candidate := range candidates {
		mse, n := stats.FeatureMSE(rows, candidate.column)
		appLogger.WithFields(logrus.Fields{
			"feature": candidate.name,
			"mse":     mse,
			"rows":    n,
		}).Info("Feature diagnostic")
	}
}

func writeCSV(rows []models.PlayerFixtureStat, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{
		"player_id", "player", "fixture_id", "game_week", "position", "is_home",
		"minutes_played", "total_points", "gws_played_to_gw", "total_points_to_gw",
		"avg_points_to_gw", "avg_minutes_played_recently_to_gw",
		"avg_points_opp_points_adj_to_gw", "total_opp_team_goals_scored_diff",
	}
	if err := w.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i := range rows {
		r := &rows[i]
		record := []string{
			strconv.Itoa(r.PlayerID),
			r.PlayerName,
			strconv.Itoa(r.FixtureID),
			strconv.Itoa(r.GameWeek),
			r.Position.String(),
			strconv.FormatBool(r.IsHome),
			strconv.Itoa(r.MinutesPlayed),
			strconv.Itoa(r.TotalPoints),
			strconv.Itoa(r.GWsPlayedToGW),
			strconv.Itoa(r.TotalPointsToGW),
			formatOptional(r.AvgPointsToGW),
			formatOptional(r.AvgMinutesPlayedRecentlyToGW),
			formatOptional(r.AvgPointsOppPointsAdjToGW),
			strconv.Itoa(r.TotalOppTeamGoalsScoredDiff),
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}
	return nil
}

// formatOptional renders a missing value as an empty cell
func formatOptional(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', 4, 64)
}
