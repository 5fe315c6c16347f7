package models

import (
	"github.com/shopspring/decimal"
)

// Player represents a player from the season roster table
type Player struct {
	ID            int             `json:"id" validate:"required,gt=0"`
	FirstName     string          `json:"first_name"`
	LastName      string          `json:"last_name"`
	Name          string          `json:"name" validate:"required"`
	Position      Position        `json:"position" validate:"required"`
	TeamID        int             `json:"team_id" validate:"required,gt=0"`
	CurrentCost   decimal.Decimal `json:"current_cost"`
	MinutesPlayed int             `json:"minutes_played" validate:"gte=0"`
	TotalPoints   int             `json:"total_points"`
}

// LongName returns the player's first and last name joined
func (p *Player) LongName() string {
	if p.FirstName == "" {
		return p.LastName
	}
	return p.FirstName + " " + p.LastName
}

// PlayerTeam represents a player joined with its team context
type PlayerTeam struct {
	Player
	TeamName      string `json:"team_name"`
	TeamShortName string `json:"team_short_name"`
}

// LongNameAndTeam returns the player's long name with the team name appended
func (p *PlayerTeam) LongNameAndTeam() string {
	return p.LongName() + " (" + p.TeamName + ")"
}

// NameAndShortTeam returns the player's display name with the short team name appended
func (p *PlayerTeam) NameAndShortTeam() string {
	return p.Name + " (" + p.TeamShortName + ")"
}
