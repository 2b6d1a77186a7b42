package auth

import (
	"context"
	"testing"
	"time"

	pkgauth "github.com/amakha/storefront-backend/pkg/auth"
	"github.com/amakha/storefront-backend/pkg/auth/session"
	"github.com/amakha/storefront-backend/pkg/config"
	"github.com/amakha/storefront-backend/pkg/enums"
	pkgerrors "github.com/amakha/storefront-backend/pkg/errors"
)

func testService(t *testing.T) (Service, *session.Manager) {
	t.Helper()
	sessions := session.NewManager()
	verifier, err := NewAdminVerifier(config.AdminConfig{
		Username: "admin",
		Password: "admin123",
		Name:     "Administrator",
		Email:    "admin@amakha.com",
	})
	if err != nil {
		t.Fatalf("new verifier: %v", err)
	}
	svc, err := NewService(ServiceParams{
		Sessions:      sessions,
		AdminVerifier: verifier,
		JWTConfig:     config.JWTConfig{Secret: "secret", Issuer: "issuer", ExpirationMinutes: 10},
		AdminConfig:   config.AdminConfig{Name: "Administrator", Email: "admin@amakha.com"},
	})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc, sessions
}

func TestLoginAcceptsWellFormedInput(t *testing.T) {
	svc, sessions := testService(t)

	result, err := svc.Login(context.Background(), LoginInput{Email: "john@example.com", Password: "1234"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if result.User.ID != 1 {
		t.Fatalf("expected user id 1 got %d", result.User.ID)
	}
	if result.User.Name != "john" {
		t.Fatalf("expected name from local part got %q", result.User.Name)
	}
	if result.User.IsAdmin {
		t.Fatalf("customer login must not grant admin")
	}
	if result.AccessToken == "" {
		t.Fatalf("expected access token")
	}
	if _, ok := sessions.Current(); !ok {
		t.Fatalf("expected live session after login")
	}
}

func TestLoginRejectsMalformedInput(t *testing.T) {
	svc, sessions := testService(t)

	cases := []LoginInput{
		{Email: "", Password: "1234"},
		{Email: "john@example.com", Password: "123"},
		{Email: "   ", Password: "longenough"},
	}
	for _, input := range cases {
		_, err := svc.Login(context.Background(), input)
		typed := pkgerrors.As(err)
		if typed == nil || typed.Code() != pkgerrors.CodeUnauthorized {
			t.Fatalf("input %+v: expected UNAUTHORIZED got %v", input, err)
		}
	}
	if _, ok := sessions.Current(); ok {
		t.Fatalf("failed login must leave session empty")
	}
}

func TestAdminLogin(t *testing.T) {
	svc, sessions := testService(t)
	ctx := context.Background()

	_, err := svc.AdminLogin(ctx, AdminLoginInput{Username: "admin", Password: "wrong"})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeUnauthorized {
		t.Fatalf("expected UNAUTHORIZED got %v", err)
	}
	if _, ok := sessions.Current(); ok {
		t.Fatalf("failed admin login must leave session empty")
	}

	result, err := svc.AdminLogin(ctx, AdminLoginInput{Username: "admin", Password: "admin123"})
	if err != nil {
		t.Fatalf("admin login: %v", err)
	}
	if !result.User.IsAdmin {
		t.Fatalf("expected isAdmin true")
	}
	if result.User.ID != 0 {
		t.Fatalf("expected fixed admin id 0 got %d", result.User.ID)
	}
	if result.User.Name != "Administrator" {
		t.Fatalf("unexpected admin name %q", result.User.Name)
	}

	live, ok := sessions.Current()
	if !ok {
		t.Fatalf("expected live session")
	}
	if live.Role != enums.UserRoleAdmin {
		t.Fatalf("expected admin role got %s", live.Role)
	}
}

func TestRegister(t *testing.T) {
	svc, _ := testService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterInput{Name: "", Email: "a@b.com", Password: "123"})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error got %v", err)
	}

	result, err := svc.Register(ctx, RegisterInput{Name: "Jane", Email: "jane@example.com", Password: "1234"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if result.User.ID == 0 {
		t.Fatalf("expected time-derived id")
	}
	if result.User.Name != "Jane" {
		t.Fatalf("unexpected name %q", result.User.Name)
	}
	if result.User.IsAdmin {
		t.Fatalf("registration must not grant admin")
	}
}

func TestRegisterNeverFailsForExistingEmail(t *testing.T) {
	svc, _ := testService(t)
	ctx := context.Background()

	input := RegisterInput{Name: "Jane", Email: "jane@example.com", Password: "1234"}
	if _, err := svc.Register(ctx, input); err != nil {
		t.Fatalf("first register: %v", err)
	}
	if _, err := svc.Register(ctx, input); err != nil {
		t.Fatalf("second register with same email: %v", err)
	}
}

func TestLoginReplacesPreviousSession(t *testing.T) {
	svc, sessions := testService(t)
	ctx := context.Background()

	first, err := svc.Login(ctx, LoginInput{Email: "john@example.com", Password: "1234"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	firstClaims, err := pkgauth.ParseAccessToken(config.JWTConfig{Secret: "secret", Issuer: "issuer", ExpirationMinutes: 10}, first.AccessToken)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	if _, err := svc.Login(ctx, LoginInput{Email: "jane@example.com", Password: "1234"}); err != nil {
		t.Fatalf("second login: %v", err)
	}

	if ok, _ := sessions.HasSession(ctx, firstClaims.ID); ok {
		t.Fatalf("first session should be revoked by second login")
	}
}

func TestLogout(t *testing.T) {
	svc, sessions := testService(t)
	ctx := context.Background()

	result, err := svc.Login(ctx, LoginInput{Email: "john@example.com", Password: "1234"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	claims, err := pkgauth.ParseAccessToken(config.JWTConfig{Secret: "secret", Issuer: "issuer", ExpirationMinutes: 10}, result.AccessToken)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	if err := svc.Logout(ctx, claims.ID); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if _, ok := sessions.Current(); ok {
		t.Fatalf("expected empty session after logout")
	}
}

func TestRegisterIDUsesClock(t *testing.T) {
	sessions := session.NewManager()
	verifier, err := NewAdminVerifier(config.AdminConfig{Username: "admin", Password: "admin123"})
	if err != nil {
		t.Fatalf("new verifier: %v", err)
	}
	fixed := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	svc, err := NewService(ServiceParams{
		Sessions:      sessions,
		AdminVerifier: verifier,
		JWTConfig:     config.JWTConfig{Secret: "secret", Issuer: "issuer", ExpirationMinutes: 10},
		Now:           func() time.Time { return fixed },
	})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	result, err := svc.Register(context.Background(), RegisterInput{Name: "Jane", Email: "jane@example.com", Password: "1234"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if result.User.ID != fixed.UnixMilli() {
		t.Fatalf("expected id %d got %d", fixed.UnixMilli(), result.User.ID)
	}
}
