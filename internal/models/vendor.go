package models

import "time"

type Vendor struct {
	ID        string    `json:"id"`
	Name      string    `json:"name" validate:"required,min=2,max=255"`
	Email     string    `json:"email,omitempty" validate:"omitempty,email"`
	Phone     string    `json:"phone,omitempty"`
	Address   string    `json:"address,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CreateVendorRequest struct {
	Name    string `json:"name" validate:"required,min=2,max=255"`
	Email   string `json:"email,omitempty" validate:"omitempty,email"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
}

type UpdateVendorRequest struct {
	Name    *string `json:"name,omitempty" validate:"omitempty,min=2,max=255"`
	Email   *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone   *string `json:"phone,omitempty"`
	Address *string `json:"address,omitempty"`
}
