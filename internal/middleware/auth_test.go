package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"aeroclub/flightdesk/internal/auth"
	"aeroclub/flightdesk/internal/constants"
)

func TestIsAdministratorMiddleware(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	guarded := IsAdministratorMiddleware()(next)

	tests := []struct {
		name     string
		role     constants.ClubRole
		noClaims bool
		want     int
	}{
		{"administrator passes", constants.ClubRoleAdministrator, false, http.StatusNoContent},
		{"member is rejected", constants.ClubRoleMember, false, http.StatusUnauthorized},
		{"missing claims are rejected", "", true, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/catalog/refresh", nil)
			if !tt.noClaims {
				claims := &auth.TokenClaims{Account: "acct-1", ClubRole: tt.role}
				req = req.WithContext(auth.SetAccountClaims(req.Context(), claims))
			}

			rec := httptest.NewRecorder()
			guarded.ServeHTTP(rec, req)
			if rec.Code != tt.want {
				t.Errorf("Expected %d, got %d", tt.want, rec.Code)
			}
		})
	}
}
