package models

import "fmt"

// Position represents a player's field position. The vocabulary is closed:
// goalkeeper, defender, midfielder, forward.
type Position int

// Field position values, ordered by the raw FPL element type id (1-4).
const (
	PositionGK Position = iota + 1
	PositionDEF
	PositionMID
	PositionFWD
)

// NumPositions is the size of the one-hot encoding for Position.
const NumPositions = 4

// PositionFromTypeID maps the raw element type id (1-4) to a Position.
// Any other id is rejected so unexpected values surface at load time.
func PositionFromTypeID(id int) (Position, error) {
	if id < int(PositionGK) || id > int(PositionFWD) {
		return 0, fmt.Errorf("unknown field position type id %d", id)
	}
	return Position(id), nil
}

// ParsePosition parses a short position name (GK, DEF, MID, FWD).
func ParsePosition(s string) (Position, error) {
	switch s {
	case "GK":
		return PositionGK, nil
	case "DEF":
		return PositionDEF, nil
	case "MID":
		return PositionMID, nil
	case "FWD":
		return PositionFWD, nil
	default:
		return 0, fmt.Errorf("unknown field position %q", s)
	}
}

// String returns the short position name.
func (p Position) String() string {
	switch p {
	case PositionGK:
		return "GK"
	case PositionDEF:
		return "DEF"
	case PositionMID:
		return "MID"
	case PositionFWD:
		return "FWD"
	default:
		return fmt.Sprintf("Position(%d)", int(p))
	}
}

// Valid reports whether the position is one of the four known values.
func (p Position) Valid() bool {
	return p >= PositionGK && p <= PositionFWD
}

// OneHot returns the fixed-width one-hot encoding of the position.
func (p Position) OneHot() [NumPositions]float64 {
	var enc [NumPositions]float64
	if p.Valid() {
		enc[int(p)-1] = 1
	}
	return enc
}

// AllPositions lists every position in type-id order.
func AllPositions() []Position {
	return []Position{PositionGK, PositionDEF, PositionMID, PositionFWD}
}
