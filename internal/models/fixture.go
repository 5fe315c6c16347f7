package models

import "time"

// Fixture represents a single scheduled match between two teams
type Fixture struct {
	ID             int       `json:"id" validate:"required,gt=0"`
	GameWeek       int       `json:"game_week" validate:"required,gt=0"`
	KickoffTime    time.Time `json:"kickoff_time" validate:"required"`
	HomeTeamID     int       `json:"home_team_id" validate:"required,gt=0"`
	AwayTeamID     int       `json:"away_team_id" validate:"required,gt=0"`
	HomeTeamScore  int       `json:"home_team_score" validate:"gte=0"`
	AwayTeamScore  int       `json:"away_team_score" validate:"gte=0"`
	HomeDifficulty int       `json:"home_difficulty"`
	AwayDifficulty int       `json:"away_difficulty"`
}

// Involves reports whether the given team played in this fixture
func (f *Fixture) Involves(teamID int) bool {
	return f.HomeTeamID == teamID || f.AwayTeamID == teamID
}

// OpponentOf returns the other side of the fixture for the given team.
// The second return value is false when the team did not play in the fixture.
func (f *Fixture) OpponentOf(teamID int) (int, bool) {
	switch teamID {
	case f.HomeTeamID:
		return f.AwayTeamID, true
	case f.AwayTeamID:
		return f.HomeTeamID, true
	default:
		return 0, false
	}
}

// FixtureTeams represents a fixture joined with both team rows
type FixtureTeams struct {
	Fixture
	HomeTeamName      string `json:"home_team_name"`
	HomeTeamShortName string `json:"home_team_short_name"`
	AwayTeamName      string `json:"away_team_name"`
	AwayTeamShortName string `json:"away_team_short_name"`
}
