package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"opsboard/internal/domain"
	"opsboard/internal/middleware"
)

// APIResponse is the standard envelope for all API responses.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
	Meta    *PagMeta    `json:"meta,omitempty"`
}

// APIError holds error details in the response. Violations carries the full
// check-result list when a 422 refusal has itemized findings.
type APIError struct {
	Code       string               `json:"code"`
	Message    string               `json:"message"`
	Violations []domain.CheckResult `json:"violations,omitempty"`
}

// PagMeta holds pagination metadata.
type PagMeta struct {
	Total  int `json:"total"`
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// RespondOK sends a 200 success response.
func RespondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data})
}

// RespondCreated sends a 201 success response.
func RespondCreated(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, APIResponse{Success: true, Data: data})
}

// RespondPaginated sends a 200 success response with pagination metadata.
func RespondPaginated(c *gin.Context, data interface{}, meta PagMeta) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data, Meta: &meta})
}

// RespondError sends an error response with the given status code.
func RespondError(c *gin.Context, status int, code, msg string) {
	c.JSON(status, APIResponse{
		Success: false,
		Error:   &APIError{Code: code, Message: msg},
	})
}

// RespondViolations sends a 422 with the complete list of failed checks.
// Refusals are always itemized; the client never sees only the first finding.
func RespondViolations(c *gin.Context, code, msg string, violations []domain.CheckResult) {
	c.JSON(http.StatusUnprocessableEntity, APIResponse{
		Success: false,
		Error:   &APIError{Code: code, Message: msg, Violations: violations},
	})
}

// MapDomainError translates domain errors to HTTP status codes and error codes.
func MapDomainError(err error) (status int, code, msg string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "NOT_FOUND", "resource not found"
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized, "UNAUTHORIZED", "unauthorized"
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "FORBIDDEN", "forbidden"
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "INVALID_CREDENTIALS", "invalid credentials"
	case errors.Is(err, domain.ErrUserInactive):
		return http.StatusForbidden, "USER_INACTIVE", "user is inactive"
	case errors.Is(err, domain.ErrDuplicateEmail):
		return http.StatusConflict, "DUPLICATE_EMAIL", "email already exists"
	case errors.Is(err, domain.ErrDuplicateProjectCode):
		return http.StatusConflict, "DUPLICATE_PROJECT_CODE", "project code already exists"
	case errors.Is(err, domain.ErrDuplicatePONumber):
		return http.StatusConflict, "DUPLICATE_PO_NUMBER", "purchase order number already exists"
	case errors.Is(err, domain.ErrProjectNotFound):
		return http.StatusNotFound, "PROJECT_NOT_FOUND", "project not found"
	case errors.Is(err, domain.ErrMilestoneNotFound):
		return http.StatusNotFound, "MILESTONE_NOT_FOUND", "milestone not found"
	case errors.Is(err, domain.ErrPartyNotFound):
		return http.StatusNotFound, "PARTY_NOT_FOUND", "party not found"
	case errors.Is(err, domain.ErrPONotFound):
		return http.StatusNotFound, "PO_NOT_FOUND", "purchase order not found"
	case errors.Is(err, domain.ErrAttachmentNotFound):
		return http.StatusNotFound, "ATTACHMENT_NOT_FOUND", "attachment not found"
	case errors.Is(err, domain.ErrAlreadyBaselined):
		return http.StatusConflict, "ALREADY_BASELINED", "project baseline is already locked"
	case errors.Is(err, domain.ErrBaselineRefused):
		return http.StatusUnprocessableEntity, "BASELINE_REFUSED", "baseline lock preconditions not met"
	case errors.Is(err, domain.ErrDelayLogRequired):
		return http.StatusUnprocessableEntity, "DELAY_LOG_REQUIRED", "date change on a baselined milestone requires a delay log"
	case errors.Is(err, domain.ErrInvalidStatus):
		return http.StatusBadRequest, "INVALID_STATUS", "invalid status value"
	case errors.Is(err, domain.ErrInvalidRole):
		return http.StatusBadRequest, "INVALID_ROLE", "invalid user role; allowed: admin, member"
	case errors.Is(err, domain.ErrInvalidPartyKind):
		return http.StatusBadRequest, "INVALID_PARTY_KIND", "invalid party kind; allowed: vendor, client"
	case errors.Is(err, domain.ErrVendorRequired):
		return http.StatusBadRequest, "VENDOR_REQUIRED", "purchase order vendor must be a vendor party"
	case errors.Is(err, domain.ErrEmptyPO):
		return http.StatusBadRequest, "EMPTY_PO", "purchase order must have at least one item"
	case errors.Is(err, domain.ErrFileTooLarge):
		return http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", "file exceeds maximum allowed size"
	case errors.Is(err, domain.ErrUploadFailed):
		return http.StatusInternalServerError, "UPLOAD_FAILED", "file upload to storage failed"
	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR", "an internal error occurred"
	}
}

// extractAuthContext extracts user ID and role from the request context.
// Returns false if auth context is missing (error response already written).
func extractAuthContext(c *gin.Context) (userID uuid.UUID, role domain.UserRole, ok bool) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "missing user context")
		return uuid.Nil, "", false
	}
	role = domain.UserRole(middleware.GetRole(c))
	return userID, role, true
}

// HandleError maps a domain error and sends the appropriate error response.
func HandleError(c *gin.Context, err error) {
	status, code, msg := MapDomainError(err)
	if status >= 500 {
		requestID, _ := c.Get("request_id")
		log.Printf("[%s] internal error: %v", requestID, err)
	}
	RespondError(c, status, code, msg)
}
