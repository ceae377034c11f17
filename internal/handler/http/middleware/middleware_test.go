package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cmlabs-hris/hris-backoffice-go/internal/domain/user"
	"github.com/cmlabs-hris/hris-backoffice-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProtectedRouter(svc jwt.Service, permission user.Permission) http.Handler {
	r := chi.NewRouter()
	r.Use(jwtauth.Verifier(svc.JWTAuth()))
	r.Use(AuthRequired)
	r.With(RequirePermission(permission)).Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	r.With(RequireAdmin).Get("/admin", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	return r
}

func request(t *testing.T, h http.Handler, path, token string) int {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec.Code
}

func TestAuthRequiredAndPermissions(t *testing.T) {
	svc := jwt.NewJWTService("secret", "1h", "24h", false)
	router := newProtectedRouter(svc, user.PermissionReportsView)

	manager, _, err := svc.GenerateAccessToken(2, "m@example.com", nil, user.RoleManager)
	require.NoError(t, err)
	employeeID := int64(4)
	staff, _, err := svc.GenerateAccessToken(3, "e@example.com", &employeeID, user.RoleEmployee)
	require.NoError(t, err)
	admin, _, err := svc.GenerateAccessToken(1, "a@example.com", nil, user.RoleAdmin)
	require.NoError(t, err)
	refresh, _, err := svc.GenerateRefreshToken(2)
	require.NoError(t, err)

	assert.Equal(t, http.StatusUnauthorized, request(t, router, "/", ""))
	assert.Equal(t, http.StatusUnauthorized, request(t, router, "/", refresh))
	assert.Equal(t, http.StatusNoContent, request(t, router, "/", manager))
	assert.Equal(t, http.StatusForbidden, request(t, router, "/", staff))
	assert.Equal(t, http.StatusForbidden, request(t, router, "/admin", manager))
	assert.Equal(t, http.StatusNoContent, request(t, router, "/admin", admin))
}
