package entities

import (
	"time"

	"aeroclub/flightdesk/internal/constants"
)

type Pilot struct {
	ID                string     `db:"id"`
	DisplayName       string     `db:"display_name"`
	CertificateExpiry *time.Time `db:"certificate_expiry"`
	AccountID         *string    `db:"account_id"`
	CreatedAt         time.Time  `db:"created_at"`
	UpdatedAt         time.Time  `db:"updated_at"`
}

type Category struct {
	ID   string `db:"id"`
	Name string `db:"name"`
}

// PilotCategoryLink is one row of the pilot/category join table.
type PilotCategoryLink struct {
	PilotID    string `db:"pilot_id"`
	CategoryID string `db:"category_id"`
}

type Aircraft struct {
	ID                 string                 `db:"id"`
	Name               string                 `db:"name"`
	Type               constants.AircraftType `db:"aircraft_type"`
	InService          bool                   `db:"in_service"`
	OutOfServiceReason *string                `db:"out_of_service_reason"`
	InsuranceExpiry    *time.Time             `db:"insurance_expiry"`
}

type FlightPurpose struct {
	ID   string `db:"id"`
	Key  string `db:"key"`
	Name string `db:"name"`
}
