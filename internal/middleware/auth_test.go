// AngelaMos | 2026
// auth_test.go

package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fieldpro/fieldpro-api/internal/core"
)

type stubVerifier struct {
	claims *AccessTokenClaims
	err    error
}

func (s *stubVerifier) VerifyAccessToken(
	_ context.Context,
	_ string,
) (*AccessTokenClaims, error) {
	return s.claims, s.err
}

func okHandler(t *testing.T, wantUserID string) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := GetUserID(r.Context()); got != wantUserID {
			t.Errorf("user id in context = %q, want %q", got, wantUserID)
		}
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthenticatorRejectsMissingToken(t *testing.T) {
	mw := Authenticator(&stubVerifier{claims: &AccessTokenClaims{UserID: "u1"}})
	handler := mw(okHandler(t, "u1"))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestAuthenticatorRejectsInvalidToken(t *testing.T) {
	mw := Authenticator(&stubVerifier{err: core.ErrTokenInvalid})
	handler := mw(okHandler(t, ""))

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("Authorization", "Bearer garbage")

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestAuthenticatorRunsClaimsChecks(t *testing.T) {
	verifier := &stubVerifier{claims: &AccessTokenClaims{
		UserID: "u1",
		JTI:    "jti-1",
	}}

	var checked string
	mw := Authenticator(verifier,
		func(_ context.Context, claims *AccessTokenClaims) error {
			checked = claims.JTI
			return core.ErrTokenRevoked
		},
	)
	handler := mw(okHandler(t, "u1"))

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("Authorization", "Bearer token")

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
	if checked != "jti-1" {
		t.Fatalf("claims check saw jti %q", checked)
	}
}

func TestAuthenticatorPassesValidToken(t *testing.T) {
	mw := Authenticator(&stubVerifier{claims: &AccessTokenClaims{UserID: "u1"}})
	handler := mw(okHandler(t, "u1"))

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("Authorization", "Bearer token")

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
}

func TestExtractToken(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	if ExtractToken(r) != "" {
		t.Fatal("no header should yield empty token")
	}

	r.Header.Set("Authorization", "Basic abc")
	if ExtractToken(r) != "" {
		t.Fatal("non-bearer scheme should yield empty token")
	}

	r.Header.Set("Authorization", "Bearer  abc123 ")
	if got := ExtractToken(r); got != "abc123" {
		t.Fatalf("ExtractToken = %q", got)
	}
}
