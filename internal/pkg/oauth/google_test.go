package oauth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

func newTestGoogleService(url string) *GoogleServiceImpl {
	svc := NewGoogleService("client", "secret", "http://localhost/callback", nil).(*GoogleServiceImpl)
	svc.userInfoURL = url
	return svc
}

func TestGenerateState_IsRandom(t *testing.T) {
	svc := newTestGoogleService("")

	a, err := svc.GenerateState()
	require.NoError(t, err)
	b, err := svc.GenerateState()
	require.NoError(t, err)

	assert.NotEmpty(t, a)
	assert.NotEqual(t, a, b)
}

func TestRedirectURL_CarriesState(t *testing.T) {
	svc := newTestGoogleService("")

	assert.Contains(t, svc.RedirectURL("abc123"), "state=abc123")
}

func TestVerifyUser(t *testing.T) {
	verified := true
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer access", r.Header.Get("Authorization"))
		_ = json.NewEncoder(w).Encode(GoogleInformation{GoogleID: "g-1", Email: "ana@example.com", VerifiedEmail: verified})
	}))
	defer server.Close()

	svc := newTestGoogleService(server.URL)
	token := &oauth2.Token{AccessToken: "access", TokenType: "Bearer"}

	info, err := svc.VerifyUser(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "g-1", info.GoogleID)

	verified = false
	_, err = svc.VerifyUser(context.Background(), token)
	assert.ErrorIs(t, err, ErrEmailNotVerified)
}
