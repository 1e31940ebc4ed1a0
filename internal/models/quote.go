package models

import "time"

type QuoteStatus string

const (
	QuoteStatusDraft    QuoteStatus = "draft"
	QuoteStatusSent     QuoteStatus = "sent"
	QuoteStatusAccepted QuoteStatus = "accepted"
	QuoteStatusDeclined QuoteStatus = "declined"
)

type Quote struct {
	ID          string      `json:"id"`
	QuoteNumber string      `json:"quote_number" validate:"required"`
	CustomerID  string      `json:"customer_id" validate:"required"`
	QuoteDate   string      `json:"quote_date" validate:"required,datetime=2006-01-02"`
	Status      QuoteStatus `json:"status"`
	Notes       string      `json:"notes,omitempty"`
	Total       float64     `json:"total"`
	Items       []QuoteItem `json:"items"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

type QuoteItem struct {
	ID            string  `json:"id"`
	QuoteID       string  `json:"quote_id"`
	VehicleTypeID string  `json:"vehicle_type_id" validate:"required"`
	Description   string  `json:"description,omitempty"`
	Quantity      int     `json:"quantity" validate:"required,gt=0"`
	UnitPrice     float64 `json:"unit_price" validate:"gte=0"`
}

type CreateQuoteRequest struct {
	QuoteNumber string                   `json:"quote_number" validate:"required"`
	CustomerID  string                   `json:"customer_id" validate:"required"`
	QuoteDate   string                   `json:"quote_date" validate:"required,datetime=2006-01-02"`
	Notes       string                   `json:"notes,omitempty"`
	Items       []CreateQuoteItemRequest `json:"items" validate:"required,min=1,dive"`
}

type CreateQuoteItemRequest struct {
	VehicleTypeID string  `json:"vehicle_type_id" validate:"required"`
	Description   string  `json:"description,omitempty"`
	Quantity      int     `json:"quantity" validate:"required,gt=0"`
	UnitPrice     float64 `json:"unit_price" validate:"gte=0"`
}

type UpdateQuoteRequest struct {
	QuoteNumber *string                  `json:"quote_number,omitempty"`
	CustomerID  *string                  `json:"customer_id,omitempty"`
	QuoteDate   *string                  `json:"quote_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Status      *string                  `json:"status,omitempty" validate:"omitempty,oneof=draft sent accepted declined"`
	Notes       *string                  `json:"notes,omitempty"`
	Items       []CreateQuoteItemRequest `json:"items,omitempty" validate:"omitempty,min=1,dive"`
}
