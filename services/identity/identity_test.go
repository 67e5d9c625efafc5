package identity

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testAllowList = []string{"veernandan00u@gmail.com", "admin@example.com"}
	testDomains   = []string{"@admin.divine"}
)

func TestIsAdmin(t *testing.T) {
	cases := []struct {
		email string
		want  bool
	}{
		{"veernandan00u@gmail.com", true},
		{"admin@example.com", true},
		{"priest@admin.divine", true},
		{"customer@gmail.com", false},
		{"veernandan00u@gmail.com ", false},
		{"", false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, IsAdmin(tc.email, testAllowList, testDomains), tc.email)
	}
}

func TestIsAdminEmptyLists(t *testing.T) {
	assert.False(t, IsAdmin("anyone@example.com", nil, nil))
}

func signedToken(t *testing.T, secret, sub, email string) string {
	t.Helper()
	claims := jwt.MapClaims{
		"sub":   sub,
		"email": email,
		"exp":   time.Now().Add(time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestVerifyLocalJWT(t *testing.T) {
	v := &SupabaseVerifier{
		JWTSecret:      "test-secret",
		AllowList:      testAllowList,
		DomainSuffixes: testDomains,
	}

	token := signedToken(t, "test-secret", "user-1", "veernandan00u@gmail.com")
	ident, err := v.verifyLocal(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", ident.ID)
	assert.True(t, ident.Admin)

	customer := signedToken(t, "test-secret", "user-2", "customer@gmail.com")
	ident, err = v.verifyLocal(customer)
	require.NoError(t, err)
	assert.False(t, ident.Admin)
}

func TestVerifyLocalJWTWrongSecret(t *testing.T) {
	v := &SupabaseVerifier{JWTSecret: "right-secret"}
	token := signedToken(t, "wrong-secret", "user-1", "a@b.com")
	_, err := v.verifyLocal(token)
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestVerifyRemote(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/v1/user", r.URL.Path)
		require.Equal(t, "Bearer good-token", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"user-9","email":"customer@gmail.com"}`))
	}))
	defer srv.Close()

	v := &SupabaseVerifier{
		URL:            srv.URL,
		AllowList:      testAllowList,
		DomainSuffixes: testDomains,
		httpClient:     srv.Client(),
	}

	ident, err := v.Verify(context.Background(), "good-token")
	require.NoError(t, err)
	assert.Equal(t, "user-9", ident.ID)
	assert.Equal(t, "customer@gmail.com", ident.Email)
	assert.False(t, ident.Admin)
}

func TestVerifyRemoteRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"invalid token"}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	v := &SupabaseVerifier{URL: srv.URL, httpClient: srv.Client()}
	_, err := v.Verify(context.Background(), "bad-token")
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestVerifyEmptyToken(t *testing.T) {
	v := &SupabaseVerifier{}
	_, err := v.Verify(context.Background(), "")
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestVerifyFallsBackToRemoteOnLocalFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"user-3","email":"admin@example.com"}`))
	}))
	defer srv.Close()

	v := &SupabaseVerifier{
		URL:            srv.URL,
		JWTSecret:      "secret-a",
		AllowList:      testAllowList,
		DomainSuffixes: testDomains,
		httpClient:     srv.Client(),
	}

	// Opaque token fails local HS256 verification; GoTrue accepts it.
	ident, err := v.Verify(context.Background(), "opaque-session-token")
	require.NoError(t, err)
	assert.True(t, ident.Admin)
}
