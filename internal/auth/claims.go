package auth

import (
	"github.com/golang-jwt/jwt/v5"

	"aeroclub/flightdesk/internal/constants"
)

// AccountClaims is what handlers need to know about the caller: who they are
// and whether they hold the administrator predicate. Token minting lives in
// the club's auth service, not here.
type AccountClaims interface {
	AccountID() string
	Role() constants.ClubRole
	IsAdministrator() bool
	// Owns reports whether the caller owns the given booking entry account.
	Owns(accountID string) bool
}

// TokenClaims is the JWT payload flightdesk accepts.
type TokenClaims struct {
	Account  string             `json:"account_id"`
	ClubRole constants.ClubRole `json:"club_role"`
	jwt.RegisteredClaims
}

var _ AccountClaims = (*TokenClaims)(nil)

func (c *TokenClaims) AccountID() string        { return c.Account }
func (c *TokenClaims) Role() constants.ClubRole { return c.ClubRole }
func (c *TokenClaims) IsAdministrator() bool {
	return c.ClubRole == constants.ClubRoleAdministrator
}
func (c *TokenClaims) Owns(accountID string) bool {
	return accountID != "" && accountID == c.Account
}
