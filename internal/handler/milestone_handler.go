package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"opsboard/internal/domain"
	"opsboard/internal/service"
)

// MilestoneHandler handles milestone endpoints, including the delay-gated
// date change.
type MilestoneHandler struct {
	milestoneService service.MilestoneService
}

// NewMilestoneHandler creates a new MilestoneHandler.
func NewMilestoneHandler(milestoneService service.MilestoneService) *MilestoneHandler {
	return &MilestoneHandler{milestoneService: milestoneService}
}

// Create handles POST /api/v1/projects/:id/milestones
func (h *MilestoneHandler) Create(c *gin.Context) {
	userID, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid project ID")
		return
	}

	var input service.CreateMilestoneInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	milestone, err := h.milestoneService.Create(c.Request.Context(), projectID, input, userID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, milestone)
}

// ListByProject handles GET /api/v1/projects/:id/milestones
func (h *MilestoneHandler) ListByProject(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid project ID")
		return
	}

	milestones, err := h.milestoneService.ListByProject(c.Request.Context(), projectID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, milestones)
}

// GetByID handles GET /api/v1/milestones/:id
func (h *MilestoneHandler) GetByID(c *gin.Context) {
	milestoneID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid milestone ID")
		return
	}

	milestone, err := h.milestoneService.GetByID(c.Request.Context(), milestoneID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, milestone)
}

// Update handles PATCH /api/v1/milestones/:id
func (h *MilestoneHandler) Update(c *gin.Context) {
	milestoneID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid milestone ID")
		return
	}

	var input service.UpdateMilestoneInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	milestone, err := h.milestoneService.Update(c.Request.Context(), milestoneID, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, milestone)
}

// ChangeDate handles PATCH /api/v1/milestones/:id/date
func (h *MilestoneHandler) ChangeDate(c *gin.Context) {
	userID, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	milestoneID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid milestone ID")
		return
	}

	var input service.ChangeDateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	result, err := h.milestoneService.ChangeDate(c.Request.Context(), milestoneID, input, userID)
	if err != nil {
		if errors.Is(err, domain.ErrDelayLogRequired) && result != nil {
			RespondViolations(c, "DELAY_LOG_REQUIRED", "date change on a baselined milestone requires a complete delay log", result.Violations)
			return
		}
		HandleError(c, err)
		return
	}

	RespondOK(c, result)
}

// Delete handles DELETE /api/v1/milestones/:id
func (h *MilestoneHandler) Delete(c *gin.Context) {
	milestoneID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid milestone ID")
		return
	}

	if err := h.milestoneService.Delete(c.Request.Context(), milestoneID); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "milestone deleted"})
}

// DelayLog handles GET /api/v1/milestones/:id/delay-log
func (h *MilestoneHandler) DelayLog(c *gin.Context) {
	milestoneID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid milestone ID")
		return
	}

	entries, err := h.milestoneService.DelayLog(c.Request.Context(), milestoneID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, entries)
}
