package models

import "time"

// Vehicle is a rentable vehicle type quoted by line items, not an individual
// unit in a fleet.
type Vehicle struct {
	ID           string    `json:"id"`
	Name         string    `json:"name" validate:"required,min=2,max=255"`
	Registration string    `json:"registration,omitempty"`
	DailyRate    float64   `json:"daily_rate" validate:"gte=0"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type CreateVehicleRequest struct {
	Name         string  `json:"name" validate:"required,min=2,max=255"`
	Registration string  `json:"registration,omitempty"`
	DailyRate    float64 `json:"daily_rate" validate:"gte=0"`
}

type UpdateVehicleRequest struct {
	Name         *string  `json:"name,omitempty" validate:"omitempty,min=2,max=255"`
	Registration *string  `json:"registration,omitempty"`
	DailyRate    *float64 `json:"daily_rate,omitempty" validate:"omitempty,gte=0"`
}
