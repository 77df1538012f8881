package gorm

import "time"

// ScheduleEntry is the persisted form of a booking board row. The composite
// unique index is the last-resort guard against two submissions racing past
// validation with the same aircraft and slot. It is partial: rows flagged
// ConflictExempt (instructors giving instruction, who may share an airframe
// slot) stay out of the index so they can land next to each other and next to
// a regular booking.
type ScheduleEntry struct {
	ID             string    `gorm:"column:id;primaryKey;type:uuid"`
	EntryDate      time.Time `gorm:"column:entry_date;index:idx_entry_slot_aircraft,unique,where:NOT conflict_exempt"`
	SlotMinutes    int       `gorm:"column:slot_minutes;index:idx_entry_slot_aircraft,unique"`
	PilotID        string    `gorm:"column:pilot_id;type:uuid"`
	CategoryID     string    `gorm:"column:category_id;type:uuid"`
	PurposeID      string    `gorm:"column:purpose_id;type:uuid"`
	AircraftID     *string   `gorm:"column:aircraft_id;type:uuid;index:idx_entry_slot_aircraft,unique"`
	TowAvailable   bool      `gorm:"column:tow_available;default:false"`
	ConflictExempt bool      `gorm:"column:conflict_exempt;default:false"`
	AccountID      string    `gorm:"column:account_id"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt      time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (ScheduleEntry) TableName() string {
	return "schedule_entries"
}
