package models

// Team represents a team from the season team table
type Team struct {
	ID        int    `json:"id" validate:"required,gt=0"`
	Code      int    `json:"code" validate:"required,gt=0"`
	Name      string `json:"name" validate:"required"`
	ShortName string `json:"short_name" validate:"required"`
}
