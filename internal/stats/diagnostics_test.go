package stats

import (
	"testing"

	"github.com/yourusername/fpl-expected-points/internal/models"
)

func TestFeatureMSE(t *testing.T) {
	v1, v2 := 3.0, 1.0
	rows := []models.PlayerFixtureStat{
		{TotalPoints: 2, AvgPointsToGW: &v1},
		{TotalPoints: 2, AvgPointsToGW: &v2},
		{TotalPoints: 9, AvgPointsToGW: nil},
	}

	column := func(r *models.PlayerFixtureStat) *float64 { return r.AvgPointsToGW }
	mse, n := FeatureMSE(rows, column)

	if n != 2 {
		t.Fatalf("expected 2 rows compared, got %d", n)
	}
	// Errors are (3-2)^2 and (1-2)^2, mean 1.
	if mse != 1 {
		t.Fatalf("expected mse 1, got %v", mse)
	}
}

func TestFeatureMSENoRows(t *testing.T) {
	mse, n := FeatureMSE(nil, func(r *models.PlayerFixtureStat) *float64 { return nil })
	if mse != 0 || n != 0 {
		t.Fatalf("expected zero mse and count, got %v and %d", mse, n)
	}
}
