package models

import "travelrecords/internal/domain"

// Airline is the stored airline record.
type Airline struct {
	ID          domain.ID   `json:"id"`
	Type        AirlineType `json:"type"`
	CompanyName string      `json:"company_name"`
}

// AirlineInput is the create payload.
type AirlineInput struct {
	ID          Stringish `json:"id" validate:"required"`
	Type        string    `json:"type" validate:"required"`
	CompanyName string    `json:"company_name" validate:"required"`
}

// AirlineUpdate supports partial updates via key presence.
type AirlineUpdate struct {
	ID          *Stringish `json:"id"`
	Type        *string    `json:"type"`
	CompanyName *string    `json:"company_name"`
}
