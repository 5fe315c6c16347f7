// Package service orchestrates the expected-points training pipeline.
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/yourusername/fpl-expected-points/internal/config"
	"github.com/yourusername/fpl-expected-points/internal/dataset"
	"github.com/yourusername/fpl-expected-points/internal/loader"
	"github.com/yourusername/fpl-expected-points/internal/logger"
	"github.com/yourusername/fpl-expected-points/internal/models"
	"github.com/yourusername/fpl-expected-points/internal/nn"
	"github.com/yourusername/fpl-expected-points/internal/stats"
)

// comparisonSample is how many predicted-vs-actual pairs get logged after
// evaluation for manual inspection.
const comparisonSample = 10

// TrainingService runs the load, derive, build, train and persist stages in
// sequence. Each stage runs to completion before the next begins; any stage
// failing aborts the run.
type TrainingService struct {
	cfg    *config.Config
	logger *logrus.Logger
}

// NewTrainingService creates a training service
func NewTrainingService(cfg *config.Config, logger *logrus.Logger) *TrainingService {
	return &TrainingService{cfg: cfg, logger: logger}
}

// Run executes the full pipeline and returns the persisted artifact metadata
func (s *TrainingService) Run(ctx context.Context) (*models.Artifact, error) {
	rows, err := s.BuildEngineeredTable(ctx)
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	datasetCfg, err := dataset.FromConfig(&s.cfg.Dataset)
	if err != nil {
		return nil, fmt.Errorf("invalid dataset config: %w", err)
	}
	split, err := dataset.Build(rows, datasetCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to build dataset: %w", err)
	}
	trainBatch := dataset.NewBatch(split.Train)
	testBatch := dataset.NewBatch(split.Test)
	logger.WithStage(s.logger, "dataset").WithFields(logrus.Fields{
		"train_samples": trainBatch.Len(),
		"test_samples":  testBatch.Len(),
	}).Info("Dataset built")

	net, err := nn.New(dataset.NumInputs, datasetCfg.Seed)
	if err != nil {
		return nil, fmt.Errorf("failed to create network: %w", err)
	}
	trainerCfg, err := nn.FromConfig(&s.cfg.Training, datasetCfg.Seed)
	if err != nil {
		return nil, fmt.Errorf("invalid training config: %w", err)
	}
	trainer, err := nn.NewTrainer(net, trainerCfg, s.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create trainer: %w", err)
	}

	logger.WithStage(s.logger, "train").WithFields(logrus.Fields{
		"epochs":        trainerCfg.Epochs,
		"patience":      trainerCfg.Patience,
		"learning_rate": trainerCfg.LearningRate,
	}).Info("Training model")
	result, err := trainer.Fit(trainBatch, testBatch)
	if err != nil {
		return nil, fmt.Errorf("training failed: %w", err)
	}

	metrics := nn.Evaluate(net, testBatch)
	logger.WithStage(s.logger, "train").WithFields(logrus.Fields{
		"epochs_run": result.EpochsRun,
		"train_loss": result.TrainLoss,
		"test_mse":   metrics.MSE,
		"test_mae":   metrics.MAE,
	}).Info("Training complete")

	for _, c := range nn.Compare(net, testBatch, comparisonSample) {
		s.logger.WithFields(logrus.Fields{
			"predicted": fmt.Sprintf("%.2f", c.Predicted),
			"actual":    c.Actual,
		}).Info("Prediction sample")
	}

	artifact := models.Artifact{
		ID:           models.ArtifactID(s.cfg.Training.ArtifactName),
		RunID:        uuid.New(),
		Name:         s.cfg.Training.ArtifactName,
		Season:       s.cfg.Data.Season,
		TrainedAt:    time.Now().UTC(),
		EpochsRun:    result.EpochsRun,
		TrainLoss:    result.TrainLoss,
		ValidLoss:    result.ValidLoss,
		TestMSE:      metrics.MSE,
		TestMAE:      metrics.MAE,
		TrainSamples: trainBatch.Len(),
		TestSamples:  testBatch.Len(),
	}
	if err := nn.Save(net, artifact, s.cfg.ArtifactDir()); err != nil {
		return nil, fmt.Errorf("failed to persist model: %w", err)
	}
	logger.WithStage(s.logger, "persist").WithField("dir", s.cfg.ArtifactDir()).Info("Model persisted")

	return &artifact, nil
}

// BuildEngineeredTable runs the pipeline up to the engineered player-fixture
// stat table: load, join, aggregate and the rolling calculator.
func (s *TrainingService) BuildEngineeredTable(ctx context.Context) ([]models.PlayerFixtureStat, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	schema, err := loader.LoadSchema(s.cfg.Data.SchemaPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load schema dictionary: %w", err)
	}

	tables, err := loader.New(schema, s.cfg.SeasonDir(), s.logger).LoadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load season %s: %w", s.cfg.Data.Season, err)
	}

	playerTeams, err := stats.JoinPlayerTeams(tables.Players, tables.Teams)
	if err != nil {
		return nil, fmt.Errorf("failed to join players to teams: %w", err)
	}
	fixtureTeams, err := stats.JoinFixtureTeams(tables.Fixtures, tables.Teams)
	if err != nil {
		return nil, fmt.Errorf("failed to join fixtures to teams: %w", err)
	}

	scoreStats := stats.CalcTeamScoreStats(stats.UnfoldTeamFixtureScores(fixtureTeams))
	pointStats, err := stats.CalcTeamPointStats(tables.History, playerTeams, tables.Fixtures)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate team points: %w", err)
	}
	oppPointStats, err := stats.CalcTeamOppPointStats(tables.History, playerTeams, tables.Fixtures)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate opponent points: %w", err)
	}
	positionStats, err := stats.CalcPositionPointStats(tables.History, playerTeams, tables.Fixtures)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate position points: %w", err)
	}
	for _, ps := range positionStats {
		entry := s.logger.WithFields(logrus.Fields{
			"position":    ps.Position.String(),
			"home_points": ps.TotalPointsHome,
			"away_points": ps.TotalPointsAway,
		})
		if ps.HomeAwayRatio != nil {
			entry = entry.WithField("home_away_ratio", *ps.HomeAwayRatio)
		}
		entry.Debug("Position point stats")
	}

	playerStats := stats.JoinPlayerTeamStats(playerTeams, scoreStats, pointStats)
	rows, err := stats.BuildPlayerFixtureStats(tables.History, tables.Fixtures, playerStats, scoreStats, oppPointStats)
	if err != nil {
		return nil, fmt.Errorf("failed to build player fixture table: %w", err)
	}
	rows = stats.CalcPlayerFixtureStats(rows)
	logger.WithStage(s.logger, "features").WithField("rows", len(rows)).Info("Engineered table built")

	return rows, nil
}
