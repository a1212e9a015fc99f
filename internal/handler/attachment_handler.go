package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"opsboard/internal/domain"
	"opsboard/internal/service"
)

// AttachmentHandler handles file attachment endpoints.
type AttachmentHandler struct {
	attachmentService service.AttachmentService
}

// NewAttachmentHandler creates a new AttachmentHandler.
func NewAttachmentHandler(attachmentService service.AttachmentService) *AttachmentHandler {
	return &AttachmentHandler{attachmentService: attachmentService}
}

// Upload handles POST /api/v1/attachments
//
// Expects multipart/form-data with fields "file", "entity_type" and "entity_id".
func (h *AttachmentHandler) Upload(c *gin.Context) {
	userID, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	entityType := domain.AttachmentEntity(c.PostForm("entity_type"))
	if !domain.ValidAttachmentEntities[entityType] {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "entity_type must be one of: project, purchase_order")
		return
	}

	entityID, err := uuid.Parse(c.PostForm("entity_id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid entity_id")
		return
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "MISSING_FILE", "file field is required")
		return
	}
	defer func() { _ = file.Close() }()

	attachment, err := h.attachmentService.Upload(c.Request.Context(), service.AttachmentUploadInput{
		EntityType: entityType,
		EntityID:   entityID,
		UploadedBy: userID,
		File:       file,
		Header:     header,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, attachment)
}

// ListByEntity handles GET /api/v1/attachments?entity_type=project&entity_id=...
func (h *AttachmentHandler) ListByEntity(c *gin.Context) {
	entityType := domain.AttachmentEntity(c.Query("entity_type"))
	if !domain.ValidAttachmentEntities[entityType] {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "entity_type must be one of: project, purchase_order")
		return
	}

	entityID, err := uuid.Parse(c.Query("entity_id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid entity_id")
		return
	}

	attachments, err := h.attachmentService.ListByEntity(c.Request.Context(), entityType, entityID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, attachments)
}

// DownloadURL handles GET /api/v1/attachments/:id/download-url
func (h *AttachmentHandler) DownloadURL(c *gin.Context) {
	attachmentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid attachment ID")
		return
	}

	url, err := h.attachmentService.GetDownloadURL(c.Request.Context(), attachmentID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"url": url})
}

// Delete handles DELETE /api/v1/attachments/:id
func (h *AttachmentHandler) Delete(c *gin.Context) {
	attachmentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid attachment ID")
		return
	}

	if err := h.attachmentService.Delete(c.Request.Context(), attachmentID); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "attachment deleted"})
}
