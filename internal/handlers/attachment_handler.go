package handlers

import (
	"errors"
	"io"
	"log"
	"net/http"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"backoffice/internal/blob"
	"backoffice/internal/interfaces"
	"backoffice/internal/models"
)

type AttachmentHandler struct {
	repo     interfaces.AttachmentRepository
	invoices interfaces.InvoiceRepository
	files    blob.Store
}

func NewAttachmentHandler(repo interfaces.AttachmentRepository, invoices interfaces.InvoiceRepository, files blob.Store) *AttachmentHandler {
	return &AttachmentHandler{
		repo:     repo,
		invoices: invoices,
		files:    files,
	}
}

// UploadAttachments stores each uploaded file in the blob store and records
// a row per file against the invoice.
// @Tags Attachments
// @Summary Upload invoice attachments
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Invoice ID"
// @Param files formData file true "Attachment files"
// @Success 201 {array} models.InvoiceAttachment
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/v1/invoices/{id}/attachments [post]
func (h *AttachmentHandler) UploadAttachments(w http.ResponseWriter, r *http.Request) {
	invoiceID := chi.URLParam(r, "id")
	if invoiceID == "" {
		writeJSONError(w, http.StatusBadRequest, "Invoice ID is required")
		return
	}

	if _, err := h.invoices.GetByID(r.Context(), invoiceID); err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			writeJSONError(w, http.StatusNotFound, "invoice not found")
			return
		}
		writeJSONError(w, http.StatusInternalServerError, err.Error())
		return
	}

	const maxMemory = 32 << 20 // 32MB max memory
	if err := r.ParseMultipartForm(maxMemory); err != nil {
		writeJSONError(w, http.StatusBadRequest, "Failed to parse form")
		return
	}

	fileHeaders := r.MultipartForm.File["files"]
	if len(fileHeaders) == 0 {
		writeJSONError(w, http.StatusBadRequest, "No files uploaded")
		return
	}

	var uploaded []*models.InvoiceAttachment
	for _, fileHeader := range fileHeaders {
		file, err := fileHeader.Open()
		if err != nil {
			log.Printf("Failed to open file %s: %v", fileHeader.Filename, err)
			continue
		}

		attachment := &models.InvoiceAttachment{
			ID:          uuid.NewString(),
			InvoiceID:   invoiceID,
			FileName:    fileHeader.Filename,
			ContentType: fileHeader.Header.Get("Content-Type"),
			SizeBytes:   fileHeader.Size,
		}
		attachment.BlobKey = filepath.Join("attachments", invoiceID, attachment.ID+filepath.Ext(fileHeader.Filename))

		err = h.files.Save(r.Context(), attachment.BlobKey, file, attachment.ContentType)
		file.Close()
		if err != nil {
			log.Printf("Failed to store file %s: %v", fileHeader.Filename, err)
			continue
		}

		if err := h.repo.Create(r.Context(), attachment); err != nil {
			log.Printf("Failed to save attachment %s: %v", fileHeader.Filename, err)
			continue
		}

		uploaded = append(uploaded, attachment)
	}

	if len(uploaded) == 0 {
		writeJSONError(w, http.StatusInternalServerError, "Failed to upload any files")
		return
	}

	writeJSON(w, http.StatusCreated, uploaded)
}

func (h *AttachmentHandler) ListAttachments(w http.ResponseWriter, r *http.Request) {
	invoiceID := chi.URLParam(r, "id")
	if invoiceID == "" {
		writeJSONError(w, http.StatusBadRequest, "Invoice ID is required")
		return
	}

	attachments, err := h.repo.ListByInvoice(r.Context(), invoiceID)
	if err != nil {
		writeJSONError(w, http.StatusInternalServerError, "Failed to list attachments: "+err.Error())
		return
	}

	if attachments == nil {
		attachments = []models.InvoiceAttachment{}
	}

	writeJSON(w, http.StatusOK, attachments)
}

func (h *AttachmentHandler) DownloadAttachment(w http.ResponseWriter, r *http.Request) {
	attachmentID := chi.URLParam(r, "attachmentID")
	if attachmentID == "" {
		writeJSONError(w, http.StatusBadRequest, "Attachment ID is required")
		return
	}

	attachment, err := h.repo.GetByID(r.Context(), attachmentID)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			writeJSONError(w, http.StatusNotFound, "attachment not found")
			return
		}
		writeJSONError(w, http.StatusInternalServerError, err.Error())
		return
	}

	body, err := h.files.Read(r.Context(), attachment.BlobKey)
	if err != nil {
		log.Printf("Failed to read attachment %s: %v", attachment.BlobKey, err)
		writeJSONError(w, http.StatusInternalServerError, "Failed to read attachment")
		return
	}
	defer body.Close()

	if attachment.ContentType != "" {
		w.Header().Set("Content-Type", attachment.ContentType)
	} else {
		w.Header().Set("Content-Type", "application/octet-stream")
	}
	w.Header().Set("Content-Disposition", `attachment; filename="`+attachment.FileName+`"`)
	if _, err := io.Copy(w, body); err != nil {
		log.Printf("Failed to stream attachment %s: %v", attachment.ID, err)
	}
}

// DeleteAttachment removes the row first so a blob-store failure cannot
// leave a row pointing at missing bytes; an orphaned blob is the cheaper
// leftover.
func (h *AttachmentHandler) DeleteAttachment(w http.ResponseWriter, r *http.Request) {
	attachmentID := chi.URLParam(r, "attachmentID")
	if attachmentID == "" {
		writeJSONError(w, http.StatusBadRequest, "Attachment ID is required")
		return
	}

	attachment, err := h.repo.GetByID(r.Context(), attachmentID)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			writeJSONError(w, http.StatusNotFound, "attachment not found")
			return
		}
		writeJSONError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if err := h.repo.Delete(r.Context(), attachmentID); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "Failed to delete attachment: "+err.Error())
		return
	}

	if err := h.files.Delete(r.Context(), attachment.BlobKey); err != nil {
		log.Printf("Failed to delete blob %s: %v", attachment.BlobKey, err)
	}

	w.WriteHeader(http.StatusNoContent)
}
