package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"opsboard/internal/domain"
	"opsboard/internal/service"
)

// PartyHandler handles vendor/client endpoints.
type PartyHandler struct {
	partyService service.PartyService
}

// NewPartyHandler creates a new PartyHandler.
func NewPartyHandler(partyService service.PartyService) *PartyHandler {
	return &PartyHandler{partyService: partyService}
}

// Create handles POST /api/v1/parties
func (h *PartyHandler) Create(c *gin.Context) {
	var input service.CreatePartyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	result, err := h.partyService.Create(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, result)
}

// List handles GET /api/v1/parties?kind=vendor&active=true
func (h *PartyHandler) List(c *gin.Context) {
	offset, limit := pagination(c)
	kind := domain.PartyKind(c.Query("kind"))
	if kind != "" && !domain.ValidPartyKinds[kind] {
		RespondError(c, http.StatusBadRequest, "INVALID_PARTY_KIND", "invalid party kind; allowed: vendor, client")
		return
	}
	activeOnly := c.Query("active") == "true"

	parties, total, err := h.partyService.List(c.Request.Context(), kind, activeOnly, offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, parties, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// GetByID handles GET /api/v1/parties/:id
func (h *PartyHandler) GetByID(c *gin.Context) {
	partyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid party ID")
		return
	}

	result, err := h.partyService.GetByID(c.Request.Context(), partyID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, result)
}

// Update handles PUT /api/v1/parties/:id
func (h *PartyHandler) Update(c *gin.Context) {
	partyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid party ID")
		return
	}

	var input service.UpdatePartyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	result, err := h.partyService.Update(c.Request.Context(), partyID, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, result)
}

// Delete handles DELETE /api/v1/parties/:id
func (h *PartyHandler) Delete(c *gin.Context) {
	partyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid party ID")
		return
	}

	if err := h.partyService.Delete(c.Request.Context(), partyID); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "party deleted"})
}
