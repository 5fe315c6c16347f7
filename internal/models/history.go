package models

import "github.com/shopspring/decimal"

// PlayerFixtureRecord represents one row of the player-gameweek history
// table: a single player's appearance in a single fixture. The composite
// (PlayerID, FixtureID) key is extracted from the raw table's string key.
type PlayerFixtureRecord struct {
	PlayerID      int             `json:"player_id" validate:"required,gt=0"`
	FixtureID     int             `json:"fixture_id" validate:"required,gt=0"`
	MinutesPlayed int             `json:"minutes_played" validate:"gte=0"`
	TotalPoints   int             `json:"total_points"`
	GameCost      decimal.Decimal `json:"game_cost"`
}

// Played reports whether the player was on the pitch in this fixture
func (r *PlayerFixtureRecord) Played() bool {
	return r.MinutesPlayed > 0
}
