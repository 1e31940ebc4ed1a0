package models

import "time"

type PurchaseOrderStatus string

const (
	PurchaseOrderStatusDraft     PurchaseOrderStatus = "draft"
	PurchaseOrderStatusOrdered   PurchaseOrderStatus = "ordered"
	PurchaseOrderStatusReceived  PurchaseOrderStatus = "received"
	PurchaseOrderStatusCancelled PurchaseOrderStatus = "cancelled"
)

type PurchaseOrder struct {
	ID        string              `json:"id"`
	PONumber  string              `json:"po_number" validate:"required"`
	VendorID  string              `json:"vendor_id" validate:"required"`
	OrderDate string              `json:"order_date" validate:"required,datetime=2006-01-02"`
	Status    PurchaseOrderStatus `json:"status"`
	Notes     string              `json:"notes,omitempty"`
	Total     float64             `json:"total" validate:"gte=0"`
	CreatedAt time.Time           `json:"created_at"`
	UpdatedAt time.Time           `json:"updated_at"`
}

type CreatePurchaseOrderRequest struct {
	PONumber  string  `json:"po_number" validate:"required"`
	VendorID  string  `json:"vendor_id" validate:"required"`
	OrderDate string  `json:"order_date" validate:"required,datetime=2006-01-02"`
	Notes     string  `json:"notes,omitempty"`
	Total     float64 `json:"total" validate:"gte=0"`
}

type UpdatePurchaseOrderRequest struct {
	PONumber  *string  `json:"po_number,omitempty"`
	VendorID  *string  `json:"vendor_id,omitempty"`
	OrderDate *string  `json:"order_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Status    *string  `json:"status,omitempty" validate:"omitempty,oneof=draft ordered received cancelled"`
	Notes     *string  `json:"notes,omitempty"`
	Total     *float64 `json:"total,omitempty" validate:"omitempty,gte=0"`
}
