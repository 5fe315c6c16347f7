package models

import "errors"

// Custom errors
var (
	ErrUnknownTeam      = errors.New("unknown team id")
	ErrUnknownPlayer    = errors.New("unknown player id")
	ErrUnknownFixture   = errors.New("unknown fixture id")
	ErrInvalidKeyFormat = errors.New("invalid composite key format")
)
