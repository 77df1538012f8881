package services

import (
	"fmt"
	"time"

	"aeroclub/flightdesk/internal/common"
	"aeroclub/flightdesk/internal/constants"
	"aeroclub/flightdesk/internal/models/dtos"
)

// CertStatus classifies a date-bound credential relative to a flight date
// and today.
type CertStatus string

const (
	CertOK               CertStatus = "ok"
	CertWarning          CertStatus = "warning"
	CertCritical         CertStatus = "critical"
	CertExpiredForFlight CertStatus = "expired_for_flight"
)

const (
	certCriticalDays = 30
	certWarningDays  = 60
)

// CertificationCheck is the outcome of classifying one credential.
type CertificationCheck struct {
	Status        CertStatus
	DaysRemaining int
}

// CertificationService classifies certificate expiry dates. It has no
// dependencies and never reads the wall clock; callers pass today in.
type CertificationService struct{}

func NewCertificationService() *CertificationService {
	return &CertificationService{}
}

// Classify applies the certificate windows. An expiry before the flight date
// is blocking no matter what today is. Otherwise the advisory windows are
// measured from today: 30 days or fewer (including already negative, for
// lapsed certificates kept on record) is critical, 31-60 is a warning.
func (s *CertificationService) Classify(expiry *time.Time, flightDate, today time.Time) CertificationCheck {
	if expiry == nil {
		return CertificationCheck{Status: CertOK}
	}

	e := common.DateOnly(*expiry)
	if e.Before(common.DateOnly(flightDate)) {
		return CertificationCheck{
			Status:        CertExpiredForFlight,
			DaysRemaining: common.DaysBetween(today, e),
		}
	}

	days := common.DaysBetween(today, e)
	switch {
	case days <= certCriticalDays:
		return CertificationCheck{Status: CertCritical, DaysRemaining: days}
	case days <= certWarningDays:
		return CertificationCheck{Status: CertWarning, DaysRemaining: days}
	default:
		return CertificationCheck{Status: CertOK, DaysRemaining: days}
	}
}

// Issue renders the check as a validation issue for the given pilot, nil
// when the certificate is fine.
func (s *CertificationService) Issue(check CertificationCheck, pilotName string) *dtos.Issue {
	switch check.Status {
	case CertExpiredForFlight:
		return &dtos.Issue{
			Code:     constants.IssueExpiredForFlight,
			Message:  fmt.Sprintf("%s's certificate expires before the flight date", pilotName),
			FieldRef: "pilot_id",
		}
	case CertCritical:
		return &dtos.Issue{
			Code:     constants.IssueCertCritical,
			Message:  fmt.Sprintf("%s's certificate expires within %d days", pilotName, certCriticalDays),
			FieldRef: "pilot_id",
		}
	case CertWarning:
		return &dtos.Issue{
			Code:     constants.IssueCertWarning,
			Message:  fmt.Sprintf("%s's certificate expires within %d days", pilotName, certWarningDays),
			FieldRef: "pilot_id",
		}
	default:
		return nil
	}
}
