package dtos

import "aeroclub/flightdesk/internal/constants"

// Issue is one validation finding. FieldRef, when set, names the form field
// the finding is attached to.
type Issue struct {
	Code     constants.IssueCode `json:"code"`
	Message  string              `json:"message"`
	FieldRef string              `json:"field_ref,omitempty"`
}

// ValidationResult is the structured outcome of a validation pass. OK is
// true iff Blocking is empty; advisory findings never disable commit.
type ValidationResult struct {
	OK       bool    `json:"ok"`
	Blocking []Issue `json:"blocking"`
	Advisory []Issue `json:"advisory"`
}

// AddBlocking appends a blocking issue and flips OK.
func (r *ValidationResult) AddBlocking(code constants.IssueCode, message, fieldRef string) {
	r.OK = false
	r.Blocking = append(r.Blocking, Issue{Code: code, Message: message, FieldRef: fieldRef})
}

// AddAdvisory appends a non-blocking issue.
func (r *ValidationResult) AddAdvisory(code constants.IssueCode, message, fieldRef string) {
	r.Advisory = append(r.Advisory, Issue{Code: code, Message: message, FieldRef: fieldRef})
}

// BookingDraftRequest is the wire form of a booking draft. Dates are
// "2006-01-02", slots "HH:MM".
type BookingDraftRequest struct {
	EntryID      string          `json:"entry_id,omitempty"`
	Date         string          `json:"date"`
	Slot         string          `json:"slot"`
	PilotID      string          `json:"pilot_id"`
	CategoryID   string          `json:"category_id,omitempty"`
	PurposeID    string          `json:"purpose_id,omitempty"`
	AircraftID   string          `json:"aircraft_id,omitempty"`
	TowAvailable bool            `json:"tow_available,omitempty"`
	RoleChecks   map[string]bool `json:"role_checks,omitempty"`
}

// BookingDraftView is the revalidated draft echoed back to the form so the
// client can apply derived-field resets without local rules.
type BookingDraftView struct {
	EntryID      string          `json:"entry_id,omitempty"`
	Date         string          `json:"date,omitempty"`
	Slot         string          `json:"slot,omitempty"`
	PilotID      string          `json:"pilot_id,omitempty"`
	CategoryID   string          `json:"category_id,omitempty"`
	PurposeID    string          `json:"purpose_id,omitempty"`
	AircraftID   string          `json:"aircraft_id,omitempty"`
	TowAvailable bool            `json:"tow_available"`
	ShowTowFlag  bool            `json:"show_tow_flag"`
	RoleChecks   map[string]bool `json:"role_checks,omitempty"`
}

// ValidateResponse is the payload of the validate endpoint.
type ValidateResponse struct {
	Result ValidationResult    `json:"result"`
	Draft  BookingDraftView    `json:"draft"`
	Fleet  []AircraftOptionDTO `json:"fleet,omitempty"`
}

// SubmitResponse reports the entries persisted by a successful submission.
type SubmitResponse struct {
	Result   ValidationResult `json:"result"`
	EntryIDs []string         `json:"entry_ids,omitempty"`
}

// AircraftOptionDTO is one row of the recomputed aircraft picker.
type AircraftOptionDTO struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	Unavailable bool   `json:"unavailable"`
	Reason      string `json:"reason,omitempty"`
}

// ScheduleEntryDTO is the wire form of a committed board row.
type ScheduleEntryDTO struct {
	ID           string `json:"id"`
	Date         string `json:"date"`
	Slot         string `json:"slot"`
	PilotID      string `json:"pilot_id"`
	PilotName    string `json:"pilot_name,omitempty"`
	CategoryID   string `json:"category_id"`
	PurposeID    string `json:"purpose_id"`
	AircraftID   string `json:"aircraft_id,omitempty"`
	TowAvailable bool   `json:"tow_available"`
	AccountID    string `json:"account_id"`
}
