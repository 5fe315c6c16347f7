package nn

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/yourusername/fpl-expected-points/internal/models"
)

func testArtifact() models.Artifact {
	return models.Artifact{
		ID:           models.ArtifactID("expected_points"),
		RunID:        uuid.New(),
		Name:         "expected_points",
		Season:       "2019-20",
		TrainedAt:    time.Date(2020, 7, 26, 18, 0, 0, 0, time.UTC),
		EpochsRun:    60,
		TrainLoss:    5.1,
		ValidLoss:    5.4,
		TestMSE:      5.4,
		TestMAE:      1.6,
		TrainSamples: 800,
		TestSamples:  200,
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	net, err := New(8, 42)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	dir := filepath.Join(t.TempDir(), "expected_points")
	if err := Save(net, testArtifact(), dir); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	loaded, err := Load(dir)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if loaded.Inputs() != net.Inputs() {
		t.Fatalf("expected input width %d, got %d", net.Inputs(), loaded.Inputs())
	}

	batch := syntheticBatch(16, 8, 11)
	original := net.Predict(batch.X)
	restored := loaded.Predict(batch.X)
	for i := 0; i < original.Len(); i++ {
		if original.AtVec(i) != restored.AtVec(i) {
			t.Fatalf("prediction %d differs after reload: %v vs %v", i, original.AtVec(i), restored.AtVec(i))
		}
	}
}

func TestLoadMetadata(t *testing.T) {
	net, _ := New(8, 42)
	artifact := testArtifact()

	dir := filepath.Join(t.TempDir(), "expected_points")
	if err := Save(net, artifact, dir); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	loaded, err := LoadMetadata(dir)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if loaded.RunID != artifact.RunID {
		t.Fatalf("expected run id %s, got %s", artifact.RunID, loaded.RunID)
	}
	// The artifact id is derived from the name, so a retrain under the same
	// name round-trips to the same id.
	if loaded.ID != models.ArtifactID("expected_points") {
		t.Fatalf("expected deterministic artifact id, got %s", loaded.ID)
	}
	if loaded.Season != "2019-20" || loaded.EpochsRun != 60 {
		t.Fatalf("metadata mismatch: %+v", loaded)
	}
}

func TestLoadMissingDirectory(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Fatal("expected error for missing artifact directory")
	}
}

func TestSaveRequiresDirectory(t *testing.T) {
	net, _ := New(8, 42)
	if err := Save(net, testArtifact(), ""); err == nil {
		t.Fatal("expected error for empty directory")
	}
}
