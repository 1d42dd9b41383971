package domain

import "errors"

var ErrTransportNotFound = errors.New("transport not found")

// Transport is a rentable vehicle: a car, bike, scooter, etc.
type Transport struct {
	ID            string   `json:"id"`
	CanBeRented   bool     `json:"can_be_rented"`
	TransportType string   `json:"transport_type"`
	Model         string   `json:"model"`
	Color         string   `json:"color"`
	Identifier    string   `json:"identifier"` // license plate or similar
	Description   string   `json:"description"`
	Latitude      float64  `json:"latitude"`
	Longitude     float64  `json:"longitude"`
	MinutePrice   *float64 `json:"minute_price,omitempty"`
	DayPrice      *float64 `json:"day_price,omitempty"`
}
