package services

import (
	"fmt"
	"sort"
	"time"

	"aeroclub/flightdesk/internal/common"
	"aeroclub/flightdesk/internal/constants"
	"aeroclub/flightdesk/internal/models"
)

// AircraftOption is one row of the recomputed aircraft picker. Unavailable
// aircraft stay listed but are not selectable.
type AircraftOption struct {
	Aircraft    models.Aircraft
	Unavailable bool
	Reason      string
}

// EligibilityService narrows the aircraft candidate list by role and flight
// purpose and flags unusable airframes.
type EligibilityService struct{}

func NewEligibilityService() *EligibilityService {
	return &EligibilityService{}
}

// Options recomputes the eligible aircraft list for the given role tag and
// purpose key. Tow work restricts the list to tow planes; everything else
// sees the whole fleet.
func (s *EligibilityService) Options(vctx *models.ValidationContext, roleTag constants.RoleTag, purposeKey string) []AircraftOption {
	towOnly := roleTag == constants.RoleTowPilot || purposeKey == constants.PurposeTowage

	options := make([]AircraftOption, 0, len(vctx.Aircraft))
	for _, ac := range vctx.Aircraft {
		if towOnly && ac.Type != constants.AircraftTowPlane {
			continue
		}
		unavailable, reason := s.availability(ac, vctx.Today)
		options = append(options, AircraftOption{
			Aircraft:    *ac,
			Unavailable: unavailable,
			Reason:      reason,
		})
	}

	sort.Slice(options, func(i, j int) bool {
		return options[i].Aircraft.Name < options[j].Aircraft.Name
	})
	return options
}

// Selectable reports whether the aircraft id is in the option list and not
// flagged unavailable. The second return distinguishes "not listed at all"
// (the caller must clear the selection) from "listed but unusable" (a
// blocking issue).
func (s *EligibilityService) Selectable(options []AircraftOption, aircraftID string) (selectable, listed bool) {
	for _, opt := range options {
		if opt.Aircraft.ID == aircraftID {
			return !opt.Unavailable, true
		}
	}
	return false, false
}

func (s *EligibilityService) availability(ac *models.Aircraft, today time.Time) (bool, string) {
	if !ac.InService {
		reason := ac.OutOfServiceReason
		if reason == "" {
			reason = "out of service"
		}
		return true, reason
	}
	if ac.InsuranceExpiry != nil && common.DateOnly(*ac.InsuranceExpiry).Before(common.DateOnly(today)) {
		return true, fmt.Sprintf("insurance expired %s", ac.InsuranceExpiry.Format("2006-01-02"))
	}
	return false, ""
}
