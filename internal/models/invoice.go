package models

import "time"

type InvoiceStatus string

const (
	InvoiceStatusDraft     InvoiceStatus = "draft"
	InvoiceStatusSent      InvoiceStatus = "sent"
	InvoiceStatusPaid      InvoiceStatus = "paid"
	InvoiceStatusOverdue   InvoiceStatus = "overdue"
	InvoiceStatusCancelled InvoiceStatus = "cancelled"
)

// Invoice may trace back to the quote it fulfils and the purchase order or
// vendor it was costed against; those links are what block deleting the
// referenced records.
type Invoice struct {
	ID              string        `json:"id"`
	InvoiceNumber   string        `json:"invoice_number" validate:"required"`
	CustomerID      string        `json:"customer_id" validate:"required"`
	VendorID        *string       `json:"vendor_id,omitempty"`
	QuoteID         *string       `json:"quote_id,omitempty"`
	PurchaseOrderID *string       `json:"purchase_order_id,omitempty"`
	InvoiceDate     string        `json:"invoice_date" validate:"required,datetime=2006-01-02"`
	DueDate         string        `json:"due_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Status          InvoiceStatus `json:"status"`
	Total           float64       `json:"total" validate:"gte=0"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

type CreateInvoiceRequest struct {
	InvoiceNumber   string  `json:"invoice_number" validate:"required"`
	CustomerID      string  `json:"customer_id" validate:"required"`
	VendorID        *string `json:"vendor_id,omitempty"`
	QuoteID         *string `json:"quote_id,omitempty"`
	PurchaseOrderID *string `json:"purchase_order_id,omitempty"`
	InvoiceDate     string  `json:"invoice_date" validate:"required,datetime=2006-01-02"`
	DueDate         string  `json:"due_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Total           float64 `json:"total" validate:"gte=0"`
}

type UpdateInvoiceRequest struct {
	InvoiceNumber *string  `json:"invoice_number,omitempty"`
	InvoiceDate   *string  `json:"invoice_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	DueDate       *string  `json:"due_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Status        *string  `json:"status,omitempty" validate:"omitempty,oneof=draft sent paid overdue cancelled"`
	Total         *float64 `json:"total,omitempty" validate:"omitempty,gte=0"`
}
