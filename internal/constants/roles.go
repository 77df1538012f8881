package constants

import (
	"database/sql/driver"
	"fmt"
)

// RoleTag mirrors the Postgres ENUM 'role_tag'. It is resolved once from a
// category's display name when the catalog is loaded, never re-derived from
// display text at validation time.
type RoleTag string

const (
	RoleGeneric          RoleTag = "generic"
	RoleTowPilot         RoleTag = "tow_pilot"
	RoleGliderInstructor RoleTag = "glider_instructor"
	RoleEngineInstructor RoleTag = "engine_instructor"
)

// Stringer ­– convenient for fmt / logs
func (r RoleTag) String() string { return string(r) }

// IsInstructor reports whether the tag is one of the two instructor roles.
func (r RoleTag) IsInstructor() bool {
	return r == RoleGliderInstructor || r == RoleEngineInstructor
}

// IsSpecial reports whether the tag is one of the three roles that carry
// defaulting and availability-declaration behavior.
func (r RoleTag) IsSpecial() bool {
	return r == RoleTowPilot || r.IsInstructor()
}

/* ---------- DB adapters so sqlx (or database/sql) scans/values cleanly ---------- */

// Scan implements the sql.Scanner interface
func (r *RoleTag) Scan(src interface{}) error {
	if src == nil {
		*r = RoleGeneric
		return nil
	}
	switch v := src.(type) {
	case string:
		*r = RoleTag(v)
	case []byte:
		*r = RoleTag(v)
	default:
		return fmt.Errorf("RoleTag: cannot scan type %T", src)
	}
	return nil
}

// Value implements the driver.Valuer interface
func (r RoleTag) Value() (driver.Value, error) { return string(r), nil }

// ClubRole mirrors the Postgres ENUM 'club_role' carried in JWT claims.
type ClubRole string

const (
	ClubRoleMember        ClubRole = "member"
	ClubRoleAdministrator ClubRole = "administrator"
)

func (r ClubRole) String() string { return string(r) }

// Scan implements the sql.Scanner interface
func (r *ClubRole) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*r = ClubRoleMember
	case string:
		*r = ClubRole(v)
	case []byte:
		*r = ClubRole(v)
	default:
		return fmt.Errorf("ClubRole: cannot scan type %T", src)
	}
	return nil
}

// Value implements the driver.Valuer interface
func (r ClubRole) Value() (driver.Value, error) { return string(r), nil }
