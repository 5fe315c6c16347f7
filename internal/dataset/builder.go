// Package dataset builds the train/test partitions from the engineered
// player-fixture table.
package dataset

import (
	"fmt"

	"github.com/yourusername/fpl-expected-points/internal/config"
	"github.com/yourusername/fpl-expected-points/internal/models"
)

// Config holds dataset builder settings
type Config struct {
	MinGameweeksPlayed int
	TrainFraction      float64
	Seed               int64
}

// FromConfig converts app config to dataset config
func FromConfig(cfg *config.DatasetConfig) (Config, error) {
	if cfg == nil {
		return Config{}, fmt.Errorf("dataset config is required")
	}
	dc := Config{
		MinGameweeksPlayed: cfg.MinGameweeksPlayed,
		TrainFraction:      cfg.TrainFraction,
		Seed:               cfg.Seed,
	}
	return dc, dc.Validate()
}

// Validate validates dataset config parameters
func (c Config) Validate() error {
	if c.MinGameweeksPlayed <= 0 {
		return fmt.Errorf("min gameweeks played must be positive")
	}
	if c.TrainFraction <= 0 || c.TrainFraction >= 1 {
		return fmt.Errorf("train fraction must be strictly between 0 and 1")
	}
	return nil
}

// Split holds the train and test partitions
type Split struct {
	Train []models.TrainingExample
	Test  []models.TrainingExample
}

// Build filters and selects the engineered rows into training examples and
// performs the deterministic split. Returns an error when no rows survive
// the filter, since training on an empty partition would otherwise fail far
// from the cause.
func Build(rows []models.PlayerFixtureStat, cfg Config) (*Split, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	examples := SelectExamples(rows, cfg.MinGameweeksPlayed)
	if len(examples) == 0 {
		return nil, fmt.Errorf("no feature-complete rows with at least %d gameweeks played", cfg.MinGameweeksPlayed)
	}

	train, test := SplitExamples(examples, cfg.TrainFraction, cfg.Seed)
	return &Split{Train: train, Test: test}, nil
}

// SelectExamples keeps rows where the player has played at least
// minGameweeks cumulative gameweeks, selects the fixed feature set plus the
// target, and drops any row with a missing engineered feature. The output
// contains zero missing values by construction.
func SelectExamples(rows []models.PlayerFixtureStat, minGameweeks int) []models.TrainingExample {
	examples := make([]models.TrainingExample, 0, len(rows))
	for i := range rows {
		row := &rows[i]
		if row.GWsPlayedToGW < minGameweeks {
			continue
		}
		if row.AvgPointsOppPointsAdjToGW == nil || row.AvgMinutesPlayedRecentlyToGW == nil {
			continue
		}
		if !row.Position.Valid() {
			continue
		}
		examples = append(examples, models.TrainingExample{
			Position:                     row.Position,
			AvgPointsOppPointsAdjToGW:    *row.AvgPointsOppPointsAdjToGW,
			IsHome:                       row.IsHomeValue(),
			AvgMinutesPlayedRecentlyToGW: *row.AvgMinutesPlayedRecentlyToGW,
			TotalOppTeamGoalsScoredDiff:  float64(row.TotalOppTeamGoalsScoredDiff),
			Points:                       float64(row.TotalPoints),
		})
	}
	return examples
}
