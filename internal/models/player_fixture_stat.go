package models

import "time"

// PlayerFixtureStat is the denormalized player-fixture row: the history
// record joined with fixture, player-team and team-level aggregates, plus the
// rolling to-GW statistics. Rolling fields use nil for "no prior history";
// they are computed strictly from fixtures before this one so no future
// information leaks into a row.
type PlayerFixtureStat struct {
	PlayerID    int       `json:"player_id"`
	FixtureID   int       `json:"fixture_id"`
	GameWeek    int       `json:"game_week"`
	KickoffTime time.Time `json:"kickoff_time"`

	PlayerName    string   `json:"player_name"`
	Position      Position `json:"position"`
	TeamID        int      `json:"team_id"`
	OppTeamID     int      `json:"opp_team_id"`
	IsHome        bool     `json:"is_home"`
	MinutesPlayed int      `json:"minutes_played"`
	TotalPoints   int      `json:"total_points"`

	TeamTotalPoints         int `json:"team_total_points"`
	OppTeamTotalPoints      int `json:"opp_team_total_points"`
	TotalTeamGoalsScored    int `json:"total_team_goals_scored"`
	TotalTeamGoalsConceded  int `json:"total_team_goals_conceded"`
	TotalOppTeamGoalsScored int `json:"total_opp_team_goals_scored"`

	GWsPlayedToGW                int      `json:"gws_played_to_gw"`
	TotalPointsToGW              int      `json:"total_points_to_gw"`
	AvgPointsToGW                *float64 `json:"avg_points_to_gw"`
	AvgMinutesPlayedRecentlyToGW *float64 `json:"avg_minutes_played_recently_to_gw"`
	AvgPointsOppPointsAdjToGW    *float64 `json:"avg_points_opp_points_adj_to_gw"`
	TotalOppTeamGoalsScoredDiff  int      `json:"total_opp_team_goals_scored_diff"`
}

// Played reports whether the player was on the pitch in this fixture
func (s *PlayerFixtureStat) Played() bool {
	return s.MinutesPlayed > 0
}

// IsHomeValue returns the home flag as a numeric feature value
func (s *PlayerFixtureStat) IsHomeValue() float64 {
	if s.IsHome {
		return 1
	}
	return 0
}
