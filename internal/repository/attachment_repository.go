package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"backoffice/internal/interfaces"
	"backoffice/internal/models"
)

type attachmentRepository struct {
	db *sql.DB
}

func NewAttachmentRepository(database *sql.DB) interfaces.AttachmentRepository {
	return &attachmentRepository{db: database}
}

func (r *attachmentRepository) Create(ctx context.Context, attachment *models.InvoiceAttachment) error {
	if attachment.ID == "" {
		attachment.ID = uuid.NewString()
	}
	attachment.UploadedAt = time.Now().UTC()

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO invoice_attachments (id, invoice_id, file_name, blob_key, content_type, size_bytes, uploaded_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`,
		attachment.ID,
		attachment.InvoiceID,
		attachment.FileName,
		attachment.BlobKey,
		attachment.ContentType,
		attachment.SizeBytes,
		attachment.UploadedAt,
	)
	if err != nil {
		log.Printf("Error creating attachment: %v", err)
		return fmt.Errorf("failed to create attachment: %w", err)
	}

	return nil
}

func (r *attachmentRepository) GetByID(ctx context.Context, id string) (*models.InvoiceAttachment, error) {
	var attachment models.InvoiceAttachment
	err := r.db.QueryRowContext(ctx, `
		SELECT id, invoice_id, file_name, blob_key, content_type, size_bytes, uploaded_at
		FROM invoice_attachments
		WHERE id = ?
	`, id).Scan(
		&attachment.ID,
		&attachment.InvoiceID,
		&attachment.FileName,
		&attachment.BlobKey,
		&attachment.ContentType,
		&attachment.SizeBytes,
		&attachment.UploadedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, interfaces.ErrNotFound
		}
		log.Printf("Error getting attachment: %v", err)
		return nil, fmt.Errorf("failed to get attachment: %w", err)
	}

	return &attachment, nil
}

func (r *attachmentRepository) ListByInvoice(ctx context.Context, invoiceID string) ([]models.InvoiceAttachment, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, invoice_id, file_name, blob_key, content_type, size_bytes, uploaded_at
		FROM invoice_attachments
		WHERE invoice_id = ?
		ORDER BY uploaded_at, rowid
	`, invoiceID)
	if err != nil {
		log.Printf("Error listing attachments: %v", err)
		return nil, fmt.Errorf("failed to list attachments: %w", err)
	}
	defer rows.Close()

	var attachments []models.InvoiceAttachment
	for rows.Next() {
		var a models.InvoiceAttachment
		if err := rows.Scan(
			&a.ID,
			&a.InvoiceID,
			&a.FileName,
			&a.BlobKey,
			&a.ContentType,
			&a.SizeBytes,
			&a.UploadedAt,
		); err != nil {
			log.Printf("Error scanning attachment: %v", err)
			return nil, fmt.Errorf("failed to scan attachment: %w", err)
		}
		attachments = append(attachments, a)
	}

	if err = rows.Err(); err != nil {
		log.Printf("Error iterating attachments: %v", err)
		return nil, fmt.Errorf("error iterating attachments: %w", err)
	}

	return attachments, nil
}

func (r *attachmentRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM invoice_attachments WHERE id = ?`, id)
	if err != nil {
		log.Printf("Error deleting attachment: %v", err)
		return fmt.Errorf("failed to delete attachment: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Printf("Error getting rows affected: %v", err)
		return fmt.Errorf("failed to delete attachment: %w", err)
	}

	if rowsAffected == 0 {
		return interfaces.ErrNotFound
	}

	return nil
}
