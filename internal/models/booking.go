package models

import (
	"time"

	"aeroclub/flightdesk/internal/constants"
)

// Pilot is the engine's view of a club member: the categories they hold and
// the certificate window that gates their flying.
type Pilot struct {
	ID                string
	DisplayName       string
	CategoryIDs       []string
	CertificateExpiry *time.Time
	AccountID         *string
}

// HoldsCategory reports whether the pilot holds the given category.
func (p *Pilot) HoldsCategory(categoryID string) bool {
	for _, id := range p.CategoryIDs {
		if id == categoryID {
			return true
		}
	}
	return false
}

// Category is a pilot capability. Tag is resolved once from the display name
// when the catalog is loaded.
type Category struct {
	ID   string
	Name string
	Tag  constants.RoleTag
}

// Aircraft is a club airframe, with the derived usability state the
// eligibility filter needs.
type Aircraft struct {
	ID                 string
	Name               string
	Type               constants.AircraftType
	InService          bool
	OutOfServiceReason string
	InsuranceExpiry    *time.Time
}

// Purpose is an entry of the flight purpose catalog. Key is the stable
// identifier rules match on; Name is display text.
type Purpose struct {
	ID   string
	Key  string
	Name string
}

// BookingEntry is one committed row on the daily booking board.
type BookingEntry struct {
	ID           string
	Date         time.Time
	SlotMinutes  int
	PilotID      string
	CategoryID   string
	PurposeID    string
	AircraftID   *string
	TowAvailable bool

	// ConflictExempt marks an entry that may share its (date, slot, aircraft)
	// with others: an instructor giving instruction. Derived from role and
	// purpose at synthesis time; the store's uniqueness guard skips these rows.
	ConflictExempt bool

	AccountID string
}

// BookingDraft is the in-flight form state the validation pipeline operates
// on. Pointer fields distinguish "not filled in" from zero values. The engine
// never mutates a draft; revalidation returns a new one.
type BookingDraft struct {
	// EntryID is set when the draft edits an existing entry; that entry is
	// excluded from collision checks.
	EntryID     *string
	Date        *time.Time
	SlotMinutes *int
	PilotID     string
	CategoryID  string
	PurposeID   string
	AircraftID  *string

	TowAvailable bool

	// RoleChecks maps special-role category ids to their checkbox state in
	// "declare availability" mode. Empty for conventional bookings.
	RoleChecks map[string]bool
}

// Clone returns a copy of the draft safe for the caller to compare against
// the revalidated one.
func (d BookingDraft) Clone() BookingDraft {
	out := d
	if d.RoleChecks != nil {
		out.RoleChecks = make(map[string]bool, len(d.RoleChecks))
		for k, v := range d.RoleChecks {
			out.RoleChecks[k] = v
		}
	}
	return out
}

// ValidationContext is the read-only snapshot the engine validates against.
// It is assembled immediately before validation; the engine performs no I/O
// of its own.
type ValidationContext struct {
	Pilots     map[string]*Pilot
	Categories map[string]*Category
	Aircraft   map[string]*Aircraft
	Purposes   map[string]*Purpose

	// Entries are the existing board rows for the relevant date range.
	Entries []BookingEntry

	// Today anchors the advisory certificate windows.
	Today time.Time
}

// RoleTagOf resolves the role tag of a category id, RoleGeneric when unknown.
func (c *ValidationContext) RoleTagOf(categoryID string) constants.RoleTag {
	if cat, ok := c.Categories[categoryID]; ok {
		return cat.Tag
	}
	return constants.RoleGeneric
}

// PurposeKeyOf resolves the stable key of a purpose id, "" when unknown.
func (c *ValidationContext) PurposeKeyOf(purposeID string) string {
	if p, ok := c.Purposes[purposeID]; ok {
		return p.Key
	}
	return ""
}

// PurposeIDByKey finds the catalog id of a well-known purpose key.
func (c *ValidationContext) PurposeIDByKey(key string) (string, bool) {
	for _, p := range c.Purposes {
		if p.Key == key {
			return p.ID, true
		}
	}
	return "", false
}
