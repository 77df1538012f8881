package constants

// Well-known flight purpose keys. The purposes table carries a stable key
// column alongside the display name; these are the keys validation rules
// match on. Generic purposes (local flights etc.) have keys too but no rules
// attached.
const (
	PurposeTowage           = "towage"
	PurposeInstructionGiven = "instruction_given"
	PurposeSport            = "sport"
	PurposeLocal            = "local"
)

// AircraftType mirrors the Postgres ENUM 'aircraft_type'.
type AircraftType string

const (
	AircraftGlider   AircraftType = "glider"
	AircraftTowPlane AircraftType = "tow_plane"
	AircraftPowered  AircraftType = "powered"
)

func (t AircraftType) String() string { return string(t) }
