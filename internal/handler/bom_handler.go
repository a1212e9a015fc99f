package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"opsboard/internal/service"
)

// BOMHandler handles bill-of-materials endpoints.
type BOMHandler struct {
	bomService service.BOMService
}

// NewBOMHandler creates a new BOMHandler.
func NewBOMHandler(bomService service.BOMService) *BOMHandler {
	return &BOMHandler{bomService: bomService}
}

// Create handles POST /api/v1/projects/:id/bom
func (h *BOMHandler) Create(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid project ID")
		return
	}

	var input service.CreateBOMItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	item, err := h.bomService.Create(c.Request.Context(), projectID, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, item)
}

// ListByProject handles GET /api/v1/projects/:id/bom
func (h *BOMHandler) ListByProject(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid project ID")
		return
	}

	summary, err := h.bomService.ListByProject(c.Request.Context(), projectID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, summary)
}

// Update handles PUT /api/v1/bom-items/:id
func (h *BOMHandler) Update(c *gin.Context) {
	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid BOM item ID")
		return
	}

	var input service.UpdateBOMItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	item, err := h.bomService.Update(c.Request.Context(), itemID, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, item)
}

// Delete handles DELETE /api/v1/bom-items/:id
func (h *BOMHandler) Delete(c *gin.Context) {
	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid BOM item ID")
		return
	}

	if err := h.bomService.Delete(c.Request.Context(), itemID); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "BOM item deleted"})
}
