package models

import "time"

// InvoiceAttachment is a supporting document stored in the blob store. Rows
// cascade with their invoice; the blob itself is removed by the handler.
type InvoiceAttachment struct {
	ID          string    `json:"id"`
	InvoiceID   string    `json:"invoice_id"`
	FileName    string    `json:"file_name"`
	BlobKey     string    `json:"-"`
	ContentType string    `json:"content_type,omitempty"`
	SizeBytes   int64     `json:"size_bytes"`
	UploadedAt  time.Time `json:"uploaded_at"`
}
