package models

// TeamFixtureScore represents one (fixture, team) combination: a fixture row
// unfolded so each side sees goals from its own point of view.
type TeamFixtureScore struct {
	FixtureID         int  `json:"fixture_id"`
	GameWeek          int  `json:"game_week"`
	TeamID            int  `json:"team_id"`
	IsHome            bool `json:"is_home"`
	TeamGoalsScored   int  `json:"team_goals_scored"`
	TeamGoalsConceded int  `json:"team_goals_conceded"`

	TeamName      string `json:"team_name"`
	TeamShortName string `json:"team_short_name"`
}

// TeamScoreStats holds per-team aggregate goal totals across all fixtures.
// Ratio fields are nil when the home total is zero; a missing value, never a
// division by zero.
type TeamScoreStats struct {
	TeamID        int    `json:"team_id"`
	TeamShortName string `json:"team_short_name"`

	TotalTeamGoalsScoredHome   int `json:"total_team_goals_scored_home"`
	TotalTeamGoalsScoredAway   int `json:"total_team_goals_scored_away"`
	TotalTeamGoalsConcededHome int `json:"total_team_goals_conceded_home"`
	TotalTeamGoalsConcededAway int `json:"total_team_goals_conceded_away"`
	TotalTeamGoalsScored       int `json:"total_team_goals_scored"`
	TotalTeamGoalsConceded     int `json:"total_team_goals_conceded"`

	TotalTeamGoalsScoredRatio   *float64 `json:"total_team_goals_scored_ratio"`
	TotalTeamGoalsConcededRatio *float64 `json:"total_team_goals_conceded_ratio"`
}

// TeamPointStats holds the home/away split of the total points scored by all
// players of a team, produced by the group-then-pivot aggregation.
type TeamPointStats struct {
	TeamID int `json:"team_id"`

	TeamTotalPointsHome int `json:"team_total_points_home"`
	TeamTotalPointsAway int `json:"team_total_points_away"`
	TeamTotalPoints     int `json:"team_total_points"`

	// TotalPointsHomeAwayRatio is away/home, nil when the home total is zero.
	TotalPointsHomeAwayRatio *float64 `json:"total_points_home_away_ratio"`
}

// TeamOppPointStats holds the same pivot keyed on each team's role as the
// opponent: points scored against the team, split by the opponent's venue.
type TeamOppPointStats struct {
	TeamID int `json:"team_id"`

	OppTeamTotalPointsHome int `json:"opp_team_total_points_home"`
	OppTeamTotalPointsAway int `json:"opp_team_total_points_away"`
	OppTeamTotalPoints     int `json:"opp_team_total_points"`
}

// PositionPointStats holds per-field-position venue point totals and the
// dampened home/away ratio 1 - (1 - away/home)/2, which pulls the raw ratio
// halfway toward 1.0. Nil when the home total is zero.
type PositionPointStats struct {
	Position Position `json:"position"`

	TotalPointsHome int `json:"total_points_home"`
	TotalPointsAway int `json:"total_points_away"`

	HomeAwayRatio *float64 `json:"home_away_ratio"`
}

// PlayerTeamStats combines a player's team context with the team-level goal
// and point aggregates.
type PlayerTeamStats struct {
	PlayerTeam
	TeamScoreStats
	TeamTotalPoints int `json:"team_total_points"`
}
