package domain

import "errors"

var (
	ErrNotFound             = errors.New("resource not found")
	ErrUnauthorized         = errors.New("unauthorized")
	ErrForbidden            = errors.New("forbidden")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrUserInactive         = errors.New("user is inactive")
	ErrDuplicateEmail       = errors.New("email already exists")
	ErrDuplicateProjectCode = errors.New("project code already exists")
	ErrDuplicatePONumber    = errors.New("purchase order number already exists")
	ErrProjectNotFound      = errors.New("project not found")
	ErrMilestoneNotFound    = errors.New("milestone not found")
	ErrPartyNotFound        = errors.New("party not found")
	ErrPONotFound           = errors.New("purchase order not found")
	ErrAttachmentNotFound   = errors.New("attachment not found")
	ErrAlreadyBaselined     = errors.New("project baseline is already locked")
	ErrBaselineRefused      = errors.New("baseline lock preconditions not met")
	ErrDelayLogRequired     = errors.New("date change on a baselined milestone requires a delay log")
	ErrInvalidStatus        = errors.New("invalid milestone status")
	ErrInvalidRole          = errors.New("invalid user role; allowed: admin, member")
	ErrInvalidPartyKind     = errors.New("invalid party kind; allowed: vendor, client")
	ErrVendorRequired       = errors.New("purchase order vendor must be a vendor party")
	ErrEmptyPO              = errors.New("purchase order must have at least one item")
	ErrUploadFailed         = errors.New("file upload to storage failed")
	ErrFileTooLarge         = errors.New("file exceeds maximum allowed size")
)
