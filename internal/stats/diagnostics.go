package stats

import "github.com/yourusername/fpl-expected-points/internal/models"

// FeatureColumn extracts a candidate feature value from a row, nil when the
// feature is missing for that row.
type FeatureColumn func(*models.PlayerFixtureStat) *float64

// FeatureMSE computes the mean squared error of a candidate feature column
// against the points actually scored, skipping rows where the feature is
// missing. It is an offline diagnostic for comparing candidate features and
// plays no part in training. The second return value is the number of rows
// compared; the error is nil-mean (zero) when no rows qualify.
func FeatureMSE(rows []models.PlayerFixtureStat, column FeatureColumn) (float64, int) {
	sum := 0.0
	n := 0
	for i := range rows {
		v := column(&rows[i])
		if v == nil {
			continue
		}
		diff := *v - float64(rows[i].TotalPoints)
		sum += diff * diff
		n++
	}
	if n == 0 {
		return 0, 0
	}
	return sum / float64(n), n
}
