// AngelaMos | 2026
// handler_test.go

package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/fieldpro/fieldpro-api/internal/middleware"
)

// The handlers below are constructed with a nil service on purpose: the
// assertions only exercise paths that must reject the request before any
// service or storage call happens.

func TestForgotPasswordAlwaysAccepted(t *testing.T) {
	svc := newRecoveryService(
		newFakeAuthRepo(),
		newFakeUserProvider(),
		&recordingSender{},
	)
	h := NewHandler(svc)

	w := httptest.NewRecorder()
	h.ForgotPassword(w, httptest.NewRequest(
		http.MethodPost,
		"/auth/forgot-password",
		strings.NewReader(`{"email": "nobody@example.com"}`),
	))

	if w.Code != http.StatusAccepted {
		t.Fatalf("status = %d, want 202", w.Code)
	}
	if !strings.Contains(w.Body.String(), "reset link has been sent") {
		t.Fatalf("body = %s", w.Body.String())
	}
}

func TestResetPasswordMismatchFailsBeforeServiceCall(t *testing.T) {
	h := NewHandler(nil)

	body := `{
		"token": "recovery-token",
		"new_password": "hunter22",
		"confirm_password": "different"
	}`

	w := httptest.NewRecorder()
	h.ResetPassword(w, httptest.NewRequest(
		http.MethodPost,
		"/auth/reset-password",
		strings.NewReader(body),
	))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestResetPasswordRejectsShortPassword(t *testing.T) {
	h := NewHandler(nil)

	body := `{
		"token": "recovery-token",
		"new_password": "abc",
		"confirm_password": "abc"
	}`

	w := httptest.NewRecorder()
	h.ResetPassword(w, httptest.NewRequest(
		http.MethodPost,
		"/auth/reset-password",
		strings.NewReader(body),
	))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestChangePasswordMismatchFailsBeforeServiceCall(t *testing.T) {
	h := NewHandler(nil)

	body := `{
		"current_password": "oldpass",
		"new_password": "hunter22",
		"confirm_password": "hunter23"
	}`

	r := httptest.NewRequest(
		http.MethodPost,
		"/auth/change-password",
		strings.NewReader(body),
	)
	ctx := context.WithValue(r.Context(), middleware.UserIDKey, "user-1")

	w := httptest.NewRecorder()
	h.ChangePassword(w, r.WithContext(ctx))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestRegisterRejectsShortPassword(t *testing.T) {
	h := NewHandler(nil)

	body := `{"email": "dana@example.com", "password": "abc12"}`

	w := httptest.NewRecorder()
	h.Register(w, httptest.NewRequest(
		http.MethodPost,
		"/auth/register",
		strings.NewReader(body),
	))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}
