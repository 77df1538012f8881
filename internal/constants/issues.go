package constants

// IssueCode identifies a validation finding. Blocking codes disable commit,
// advisory codes are informational banners.
type IssueCode string

const (
	// Blocking
	IssueExpiredForFlight  IssueCode = "BLOCKING_EXPIRED_FOR_FLIGHT"
	IssueAircraftConflict  IssueCode = "BLOCKING_AIRCRAFT_CONFLICT"
	IssueAircraftUnusable  IssueCode = "BLOCKING_AIRCRAFT_UNUSABLE"
	IssueIncompleteBooking IssueCode = "BLOCKING_INCOMPLETE_BOOKING"
	IssueFieldRequired     IssueCode = "BLOCKING_FIELD_REQUIRED"
	IssueFieldInvalid      IssueCode = "BLOCKING_FIELD_INVALID"

	// Advisory
	IssueCertCritical IssueCode = "ADVISORY_CRITICAL"
	IssueCertWarning  IssueCode = "ADVISORY_WARNING"
	IssuePreemption   IssueCode = "ADVISORY_PREEMPTION"
)

// APIStatus values for the standard response envelope.
type APIStatus string

const (
	APIStatusOk    APIStatus = "OK"
	APIStatusError APIStatus = "ERROR"
)
