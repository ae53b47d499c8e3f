package models

import "travelrecords/internal/domain"

// Client is the stored client record.
type Client struct {
	ID           domain.ID  `json:"id"`
	Type         ClientType `json:"type"`
	Name         string     `json:"name"`
	AddressLine1 string     `json:"address_line1"`
	AddressLine2 *string    `json:"address_line2"`
	AddressLine3 *string    `json:"address_line3"`
	City         string     `json:"city"`
	State        string     `json:"state"`
	ZipCode      string     `json:"zip_code"`
	Country      string     `json:"country"`
	PhoneNumber  string     `json:"phone_number"`
}

// ClientInput is the create payload.
type ClientInput struct {
	ID           Stringish `json:"id" validate:"required"`
	Type         string    `json:"type" validate:"required"`
	Name         string    `json:"name" validate:"required"`
	AddressLine1 string    `json:"address_line1" validate:"required"`
	AddressLine2 string    `json:"address_line2"`
	AddressLine3 string    `json:"address_line3"`
	City         string    `json:"city" validate:"required"`
	State        string    `json:"state" validate:"required"`
	ZipCode      string    `json:"zip_code" validate:"required"`
	Country      string    `json:"country" validate:"required"`
	PhoneNumber  string    `json:"phone_number" validate:"required"`
}

// ClientUpdate supports partial updates via key presence.
type ClientUpdate struct {
	ID           *Stringish `json:"id"`
	Type         *string    `json:"type"`
	Name         *string    `json:"name"`
	AddressLine1 *string    `json:"address_line1"`
	AddressLine2 *string    `json:"address_line2"`
	AddressLine3 *string    `json:"address_line3"`
	City         *string    `json:"city"`
	State        *string    `json:"state"`
	ZipCode      *string    `json:"zip_code"`
	Country      *string    `json:"country"`
	PhoneNumber  *string    `json:"phone_number"`
}
