package models

import (
	"fmt"

	"travelrecords/internal/domain"
)

// FlightKey is the composite identity of a flight. Date holds the canonical
// text produced by utils.ParseFlightDate so that equal keys compare equal.
type FlightKey struct {
	ClientID  domain.ID
	AirlineID domain.ID
	Date      string
}

func (k FlightKey) String() string {
	return fmt.Sprintf("client_id=%d airline_id=%d date=%s", k.ClientID, k.AirlineID, k.Date)
}

// Flight is the stored flight record.
type Flight struct {
	ClientID  domain.ID `json:"client_id"`
	AirlineID domain.ID `json:"airline_id"`
	Date      string    `json:"date"`
	StartCity string    `json:"start_city"`
	EndCity   string    `json:"end_city"`
}

// Key returns the composite identity of f.
func (f Flight) Key() FlightKey {
	return FlightKey{ClientID: f.ClientID, AirlineID: f.AirlineID, Date: f.Date}
}

// FlightInput is the create payload.
type FlightInput struct {
	ClientID  Stringish `json:"client_id" validate:"required"`
	AirlineID Stringish `json:"airline_id" validate:"required"`
	Date      Stringish `json:"date" validate:"required"`
	StartCity string    `json:"start_city" validate:"required"`
	EndCity   string    `json:"end_city" validate:"required"`
}

// FlightUpdate carries the mutable fields; identity fields are accepted only
// so that a change attempt can be rejected.
type FlightUpdate struct {
	ClientID  *Stringish `json:"client_id"`
	AirlineID *Stringish `json:"airline_id"`
	Date      *Stringish `json:"date"`
	StartCity *string    `json:"start_city"`
	EndCity   *string    `json:"end_city"`
}
