package models

// TrainingExample is a feature-complete row selected from the engineered
// player-fixture table. Every numeric feature is present by construction;
// rows with any missing engineered feature never become examples.
type TrainingExample struct {
	Position Position `json:"position"`

	AvgPointsOppPointsAdjToGW    float64 `json:"avg_points_opp_points_adj_to_gw"`
	IsHome                       float64 `json:"is_home"`
	AvgMinutesPlayedRecentlyToGW float64 `json:"avg_minutes_played_recently_to_gw"`
	TotalOppTeamGoalsScoredDiff  float64 `json:"total_opp_team_goals_scored_diff"`

	// Points is the target: points the player scored in the fixture.
	Points float64 `json:"points"`
}

// NumNumericFeatures is the count of numeric model inputs alongside the
// one-hot position encoding.
const NumNumericFeatures = 4

// NumericFeatures returns the numeric feature values in input order
func (e *TrainingExample) NumericFeatures() [NumNumericFeatures]float64 {
	return [NumNumericFeatures]float64{
		e.AvgPointsOppPointsAdjToGW,
		e.IsHome,
		e.AvgMinutesPlayedRecentlyToGW,
		e.TotalOppTeamGoalsScoredDiff,
	}
}
