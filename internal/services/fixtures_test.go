package services

import (
	"time"

	"aeroclub/flightdesk/internal/constants"
	"aeroclub/flightdesk/internal/models"
)

// Shared catalog fixture: three special categories plus a generic one, a
// mixed fleet, and the well-known purposes.
func testContext() *models.ValidationContext {
	expiry := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	pilots := map[string]*models.Pilot{
		"pilot-p": {
			ID:          "pilot-p",
			DisplayName: "Pat Meier",
			CategoryIDs: []string{"cat-tow", "cat-engine-inst", "cat-basic"},
		},
		"pilot-q": {
			ID:          "pilot-q",
			DisplayName: "Quinn Adler",
			CategoryIDs: []string{"cat-tow", "cat-glider-inst"},
		},
		"pilot-r": {
			ID:                "pilot-r",
			DisplayName:       "Robin Faust",
			CategoryIDs:       []string{"cat-basic"},
			CertificateExpiry: &expiry,
		},
	}

	categories := map[string]*models.Category{
		"cat-tow":         {ID: "cat-tow", Name: "Tow Pilot", Tag: constants.RoleTowPilot},
		"cat-glider-inst": {ID: "cat-glider-inst", Name: "Glider Instructor", Tag: constants.RoleGliderInstructor},
		"cat-engine-inst": {ID: "cat-engine-inst", Name: "Engine Instructor", Tag: constants.RoleEngineInstructor},
		"cat-basic":       {ID: "cat-basic", Name: "Glider Pilot", Tag: constants.RoleGeneric},
	}

	grounded := "annual inspection"
	lapsedInsurance := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	aircraft := map[string]*models.Aircraft{
		"ac-t1": {ID: "ac-t1", Name: "T1", Type: constants.AircraftTowPlane, InService: true},
		"ac-g1": {ID: "ac-g1", Name: "G1", Type: constants.AircraftGlider, InService: true},
		"ac-g2": {ID: "ac-g2", Name: "G2", Type: constants.AircraftGlider, InService: false, OutOfServiceReason: grounded},
		"ac-p1": {ID: "ac-p1", Name: "P1", Type: constants.AircraftPowered, InService: true, InsuranceExpiry: &lapsedInsurance},
	}

	purposes := map[string]*models.Purpose{
		"purp-tow":   {ID: "purp-tow", Key: constants.PurposeTowage, Name: "Towage"},
		"purp-inst":  {ID: "purp-inst", Key: constants.PurposeInstructionGiven, Name: "Instruction Given"},
		"purp-sport": {ID: "purp-sport", Key: constants.PurposeSport, Name: "Sport"},
		"purp-local": {ID: "purp-local", Key: constants.PurposeLocal, Name: "Local Flight"},
	}

	return &models.ValidationContext{
		Pilots:     pilots,
		Categories: categories,
		Aircraft:   aircraft,
		Purposes:   purposes,
		Today:      time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC),
	}
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }

func timePtr(t time.Time) *time.Time { return &t }

// slot converts "HH:MM" to minutes, panicking on bad fixtures.
func slot(s string) int {
	m, err := constants.ParseSlot(s)
	if err != nil {
		panic(err)
	}
	return m
}

// entry builds a committed board row for conflict fixtures.
func entry(id, pilotID, categoryID, purposeID string, aircraftID *string, day time.Time, slotMinutes int) models.BookingEntry {
	return models.BookingEntry{
		ID:          id,
		Date:        day,
		SlotMinutes: slotMinutes,
		PilotID:     pilotID,
		CategoryID:  categoryID,
		PurposeID:   purposeID,
		AircraftID:  aircraftID,
		AccountID:   "acct-" + pilotID,
	}
}
