package domain

// UserRole defines the role hierarchy.
type UserRole string

const (
	RoleAdmin  UserRole = "admin"
	RoleMember UserRole = "member"
)

// ValidUserRoles is the set of accepted user roles.
var ValidUserRoles = map[UserRole]bool{
	RoleAdmin:  true,
	RoleMember: true,
}

// PartyKind distinguishes vendors from clients.
type PartyKind string

const (
	PartyVendor PartyKind = "vendor"
	PartyClient PartyKind = "client"
)

// ValidPartyKinds is the set of accepted party kinds.
var ValidPartyKinds = map[PartyKind]bool{
	PartyVendor: true,
	PartyClient: true,
}

// ProjectStatus represents the lifecycle of a project.
type ProjectStatus string

const (
	ProjectActive    ProjectStatus = "active"
	ProjectOnHold    ProjectStatus = "on_hold"
	ProjectCompleted ProjectStatus = "completed"
	ProjectCancelled ProjectStatus = "cancelled"
)

// ValidProjectStatuses is the set of accepted project statuses.
var ValidProjectStatuses = map[ProjectStatus]bool{
	ProjectActive:    true,
	ProjectOnHold:    true,
	ProjectCompleted: true,
	ProjectCancelled: true,
}

// MilestoneStatus represents the lifecycle of a milestone.
// Transitions between any two statuses are allowed; moving to completed
// stamps the actual completion date.
type MilestoneStatus string

const (
	MilestoneNotStarted MilestoneStatus = "not_started"
	MilestoneInProgress MilestoneStatus = "in_progress"
	MilestoneCompleted  MilestoneStatus = "completed"
	MilestoneBlocked    MilestoneStatus = "blocked"
)

// ValidMilestoneStatuses is the set of accepted milestone statuses.
var ValidMilestoneStatuses = map[MilestoneStatus]bool{
	MilestoneNotStarted: true,
	MilestoneInProgress: true,
	MilestoneCompleted:  true,
	MilestoneBlocked:    true,
}

// DelayAttribution categorizes who caused a schedule change against a
// locked baseline.
type DelayAttribution string

const (
	AttributionInternalTeam    DelayAttribution = "internal_team"
	AttributionInternalProcess DelayAttribution = "internal_process"
	AttributionExternalClient  DelayAttribution = "external_client"
	AttributionExternalVendor  DelayAttribution = "external_vendor"
	AttributionExternalOther   DelayAttribution = "external_other"
)

// ValidDelayAttributions is the fixed five-value attribution set.
var ValidDelayAttributions = map[DelayAttribution]bool{
	AttributionInternalTeam:    true,
	AttributionInternalProcess: true,
	AttributionExternalClient:  true,
	AttributionExternalVendor:  true,
	AttributionExternalOther:   true,
}

// IsInternal reports whether the attribution points at the company's own
// team or process rather than an external party.
func (a DelayAttribution) IsInternal() bool {
	return a == AttributionInternalTeam || a == AttributionInternalProcess
}

// POStatus represents the lifecycle of a purchase order.
type POStatus string

const (
	POStatusDraft  POStatus = "draft"
	POStatusIssued POStatus = "issued"
	POStatusClosed POStatus = "closed"
)

// PONumberFormat selects the document numbering scheme.
type PONumberFormat string

const (
	// POFormatSimple renders "{prefix}-{calendarYear}-{seq}".
	POFormatSimple PONumberFormat = "simple"
	// POFormatFinancialYear renders "{prefix}/{YY-YY+1}/{seq}" using the
	// Indian financial year (April to March).
	POFormatFinancialYear PONumberFormat = "financial_year"
)

// ValidPONumberFormats is the set of accepted PO number formats.
var ValidPONumberFormats = map[PONumberFormat]bool{
	POFormatSimple:        true,
	POFormatFinancialYear: true,
}

// AttachmentEntity identifies which record an attachment belongs to.
type AttachmentEntity string

const (
	AttachProject       AttachmentEntity = "project"
	AttachPurchaseOrder AttachmentEntity = "purchase_order"
)

// ValidAttachmentEntities is the set of accepted attachment owners.
var ValidAttachmentEntities = map[AttachmentEntity]bool{
	AttachProject:       true,
	AttachPurchaseOrder: true,
}

// CheckSeverity grades a check result.
type CheckSeverity string

const (
	SeverityError   CheckSeverity = "error"
	SeverityWarning CheckSeverity = "warning"
)
