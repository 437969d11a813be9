// AngelaMos | 2026
// service_test.go

package auth

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/fieldpro/fieldpro-api/internal/config"
	"github.com/fieldpro/fieldpro-api/internal/core"
	"github.com/fieldpro/fieldpro-api/internal/email"
	"github.com/fieldpro/fieldpro-api/internal/events"
)

type fakeAuthRepo struct {
	Repository

	resetTokens map[string]*PasswordResetToken
	consumed    []string
	revokedAll  []string
}

func newFakeAuthRepo() *fakeAuthRepo {
	return &fakeAuthRepo{resetTokens: map[string]*PasswordResetToken{}}
}

func (f *fakeAuthRepo) CreateResetToken(
	_ context.Context,
	token *PasswordResetToken,
) error {
	f.resetTokens[token.TokenHash] = token
	return nil
}

func (f *fakeAuthRepo) FindResetTokenByHash(
	_ context.Context,
	hash string,
) (*PasswordResetToken, error) {
	token, ok := f.resetTokens[hash]
	if !ok {
		return nil, core.ErrNotFound
	}
	return token, nil
}

func (f *fakeAuthRepo) ConsumeResetToken(_ context.Context, id string) error {
	f.consumed = append(f.consumed, id)
	return nil
}

func (f *fakeAuthRepo) RevokeAllForUser(
	_ context.Context,
	userID string,
) error {
	f.revokedAll = append(f.revokedAll, userID)
	return nil
}

type fakeUserProvider struct {
	users            map[string]*UserInfo
	passwordUpdates  map[string]string
	versionIncrement []string
}

func newFakeUserProvider(users ...*UserInfo) *fakeUserProvider {
	p := &fakeUserProvider{
		users:           map[string]*UserInfo{},
		passwordUpdates: map[string]string{},
	}
	for _, u := range users {
		p.users[u.ID] = u
	}
	return p
}

func (p *fakeUserProvider) GetByEmail(
	_ context.Context,
	emailAddr string,
) (*UserInfo, error) {
	for _, u := range p.users {
		if u.Email == emailAddr {
			return u, nil
		}
	}
	return nil, core.ErrNotFound
}

func (p *fakeUserProvider) GetByID(
	_ context.Context,
	id string,
) (*UserInfo, error) {
	u, ok := p.users[id]
	if !ok {
		return nil, core.ErrNotFound
	}
	return u, nil
}

func (p *fakeUserProvider) Create(
	_ context.Context,
	emailAddr, passwordHash string,
) (*UserInfo, error) {
	u := &UserInfo{ID: "new", Email: emailAddr, PasswordHash: passwordHash}
	p.users[u.ID] = u
	return u, nil
}

func (p *fakeUserProvider) IncrementTokenVersion(
	_ context.Context,
	userID string,
) error {
	p.versionIncrement = append(p.versionIncrement, userID)
	return nil
}

func (p *fakeUserProvider) UpdatePassword(
	_ context.Context,
	userID, passwordHash string,
) error {
	p.passwordUpdates[userID] = passwordHash
	return nil
}

type recordingSender struct {
	sent []email.Message
}

func (s *recordingSender) Send(_ context.Context, msg email.Message) error {
	s.sent = append(s.sent, msg)
	return nil
}

func newRecoveryService(
	repo *fakeAuthRepo,
	provider *fakeUserProvider,
	sender email.Sender,
) *Service {
	jwtMgr := &JWTManager{config: config.JWTConfig{
		RecoveryExpire: time.Hour,
	}}
	return NewService(
		repo,
		jwtMgr,
		provider,
		nil,
		events.NewBus(),
		sender,
		"noreply@fieldpro.app",
		"https://app.example.com",
	)
}

func TestRequestPasswordResetUnknownEmailIsSilent(t *testing.T) {
	repo := newFakeAuthRepo()
	sender := &recordingSender{}
	svc := newRecoveryService(repo, newFakeUserProvider(), sender)

	err := svc.RequestPasswordReset(context.Background(), "nobody@example.com")
	if err != nil {
		t.Fatalf("unknown email must not error: %v", err)
	}
	if len(sender.sent) != 0 {
		t.Fatal("no email should be sent for unknown accounts")
	}
	if len(repo.resetTokens) != 0 {
		t.Fatal("no token should be stored for unknown accounts")
	}
}

func TestRequestPasswordResetStoresHashedToken(t *testing.T) {
	repo := newFakeAuthRepo()
	sender := &recordingSender{}
	provider := newFakeUserProvider(&UserInfo{
		ID:    "user-1",
		Email: "dana@example.com",
	})
	svc := newRecoveryService(repo, provider, sender)

	err := svc.RequestPasswordReset(context.Background(), "dana@example.com")
	if err != nil {
		t.Fatalf("RequestPasswordReset: %v", err)
	}

	if len(sender.sent) != 1 {
		t.Fatalf("sends = %d, want 1", len(sender.sent))
	}
	msg := sender.sent[0]
	if msg.To != "dana@example.com" {
		t.Fatalf("to = %q", msg.To)
	}

	marker := "https://app.example.com/auth#type=recovery&token="
	idx := strings.Index(msg.HTML, marker)
	if idx < 0 {
		t.Fatalf("recovery link missing from email: %s", msg.HTML)
	}
	rest := msg.HTML[idx+len(marker):]
	rawToken := rest[:strings.IndexByte(rest, '"')]

	stored, ok := repo.resetTokens[core.HashToken(rawToken)]
	if !ok {
		t.Fatal("stored token hash does not match the emailed token")
	}
	if stored.UserID != "user-1" {
		t.Fatalf("token user = %q", stored.UserID)
	}
	if strings.Contains(msg.HTML, stored.TokenHash) {
		t.Fatal("the stored hash must never be emailed")
	}
}

func TestResetPasswordConsumesTokenAndRevokesSessions(t *testing.T) {
	repo := newFakeAuthRepo()
	provider := newFakeUserProvider(&UserInfo{
		ID:    "user-1",
		Email: "dana@example.com",
	})
	svc := newRecoveryService(repo, provider, &recordingSender{})

	rawToken := "recovery-raw-token"
	repo.resetTokens[core.HashToken(rawToken)] = &PasswordResetToken{
		ID:        "reset-1",
		UserID:    "user-1",
		TokenHash: core.HashToken(rawToken),
		ExpiresAt: time.Now().Add(time.Hour),
	}

	err := svc.ResetPassword(context.Background(), rawToken, "hunter22")
	if err != nil {
		t.Fatalf("ResetPassword: %v", err)
	}

	if len(repo.consumed) != 1 || repo.consumed[0] != "reset-1" {
		t.Fatalf("consumed = %v", repo.consumed)
	}
	if _, ok := provider.passwordUpdates["user-1"]; !ok {
		t.Fatal("password was not updated")
	}
	if len(repo.revokedAll) != 1 || repo.revokedAll[0] != "user-1" {
		t.Fatal("all sessions must be revoked after reset")
	}
	if len(provider.versionIncrement) != 1 {
		t.Fatal("token version must be bumped after reset")
	}
}

func TestResetPasswordRejectsUsedToken(t *testing.T) {
	repo := newFakeAuthRepo()
	svc := newRecoveryService(repo, newFakeUserProvider(), &recordingSender{})

	used := time.Now().Add(-time.Minute)
	repo.resetTokens[core.HashToken("used")] = &PasswordResetToken{
		ID:        "reset-1",
		UserID:    "user-1",
		ExpiresAt: time.Now().Add(time.Hour),
		UsedAt:    &used,
	}

	err := svc.ResetPassword(context.Background(), "used", "hunter22")
	if !errors.Is(err, core.ErrTokenRevoked) {
		t.Fatalf("expected ErrTokenRevoked, got %v", err)
	}
}

func TestResetPasswordRejectsExpiredToken(t *testing.T) {
	repo := newFakeAuthRepo()
	svc := newRecoveryService(repo, newFakeUserProvider(), &recordingSender{})

	repo.resetTokens[core.HashToken("expired")] = &PasswordResetToken{
		ID:        "reset-1",
		UserID:    "user-1",
		ExpiresAt: time.Now().Add(-time.Minute),
	}

	err := svc.ResetPassword(context.Background(), "expired", "hunter22")
	if !errors.Is(err, core.ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestResetPasswordRejectsUnknownToken(t *testing.T) {
	repo := newFakeAuthRepo()
	svc := newRecoveryService(repo, newFakeUserProvider(), &recordingSender{})

	err := svc.ResetPassword(context.Background(), "never-issued", "hunter22")
	if !errors.Is(err, core.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}
