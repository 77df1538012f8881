package constants

import (
	"fmt"
	"strconv"
	"strings"
)

// Booking board operating window: half-hour slots from 08:00 to 20:00.
// Slots are stored as minutes from midnight, so 08:00 = 480 and 20:00 = 1200.
const (
	SlotOpenMinutes  = 8 * 60
	SlotCloseMinutes = 20 * 60
	SlotStepMinutes  = 30
)

// ValidSlot reports whether m is a slot on the operating grid.
func ValidSlot(m int) bool {
	if m < SlotOpenMinutes || m > SlotCloseMinutes {
		return false
	}
	return m%SlotStepMinutes == 0
}

// ParseSlot converts an "HH:MM" string into minutes from midnight and
// validates it against the operating grid.
func ParseSlot(s string) (int, error) {
	parts := strings.SplitN(strings.TrimSpace(s), ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("malformed time slot %q", s)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("malformed time slot %q", s)
	}
	min, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("malformed time slot %q", s)
	}
	m := h*60 + min
	if !ValidSlot(m) {
		return 0, fmt.Errorf("time slot %q outside the 08:00-20:00 half-hour grid", s)
	}
	return m, nil
}

// FormatSlot renders minutes from midnight as "HH:MM".
func FormatSlot(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}
