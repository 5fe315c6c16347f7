package models

import (
	"time"

	"github.com/google/uuid"
)

// Artifact holds metadata persisted alongside a trained model's
// architecture and weights.
type Artifact struct {
	ID           uuid.UUID `json:"id" validate:"required"`
	RunID        uuid.UUID `json:"run_id" validate:"required"`
	Name         string    `json:"name" validate:"required"`
	Season       string    `json:"season" validate:"required"`
	TrainedAt    time.Time `json:"trained_at" validate:"required"`
	EpochsRun    int       `json:"epochs_run" validate:"gte=0"`
	TrainLoss    float64   `json:"train_loss"`
	ValidLoss    float64   `json:"valid_loss"`
	TestMSE      float64   `json:"test_mse"`
	TestMAE      float64   `json:"test_mae"`
	TrainSamples int       `json:"train_samples"`
	TestSamples  int       `json:"test_samples"`
}

// ArtifactID derives a stable artifact identifier from its name. Retraining
// under the same name keeps the same id while RunID distinguishes the runs.
func ArtifactID(name string) uuid.UUID {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(name))
}
