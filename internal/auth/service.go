package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	pkgauth "github.com/amakha/storefront-backend/pkg/auth"
	"github.com/amakha/storefront-backend/pkg/auth/session"
	"github.com/amakha/storefront-backend/pkg/config"
	"github.com/amakha/storefront-backend/pkg/enums"
	pkgerrors "github.com/amakha/storefront-backend/pkg/errors"
	"github.com/amakha/storefront-backend/pkg/logger"
)

const minPasswordLength = 4

// Service owns login, registration and logout. Customer authentication is a
// demo stub: any well-formed email/password pair is accepted and no user
// records are kept, so registering can never fail with "already exists".
type Service interface {
	Login(ctx context.Context, input LoginInput) (Result, error)
	AdminLogin(ctx context.Context, input AdminLoginInput) (Result, error)
	Register(ctx context.Context, input RegisterInput) (Result, error)
	Logout(ctx context.Context, accessID string) error
}

// ServiceParams collects the dependencies for NewService.
type ServiceParams struct {
	Sessions      *session.Manager
	AdminVerifier CredentialVerifier
	JWTConfig     config.JWTConfig
	AdminConfig   config.AdminConfig
	Logger        *logger.Logger
	Now           func() time.Time
}

type service struct {
	sessions  *session.Manager
	admin     CredentialVerifier
	jwtCfg    config.JWTConfig
	adminUser User
	logg      *logger.Logger
	now       func() time.Time
}

func NewService(params ServiceParams) (Service, error) {
	if params.Sessions == nil {
		return nil, fmt.Errorf("session manager required")
	}
	if params.AdminVerifier == nil {
		return nil, fmt.Errorf("admin credential verifier required")
	}
	now := params.Now
	if now == nil {
		now = time.Now
	}
	return &service{
		sessions: params.Sessions,
		admin:    params.AdminVerifier,
		jwtCfg:   params.JWTConfig,
		adminUser: User{
			ID:      0,
			Name:    params.AdminConfig.Name,
			Email:   params.AdminConfig.Email,
			IsAdmin: true,
		},
		logg: params.Logger,
		now:  now,
	}, nil
}

func (s *service) Login(ctx context.Context, input LoginInput) (Result, error) {
	email := strings.TrimSpace(input.Email)
	if email == "" || len(input.Password) < minPasswordLength {
		return Result{}, pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid credentials")
	}

	user := User{
		ID:      1,
		Name:    localPart(email),
		Email:   email,
		IsAdmin: false,
	}
	return s.startSession(ctx, user, "auth.login")
}

func (s *service) AdminLogin(ctx context.Context, input AdminLoginInput) (Result, error) {
	ok, err := s.admin.Verify(input.Username, input.Password)
	if err != nil {
		return Result{}, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "verifying credentials")
	}
	if !ok {
		return Result{}, pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid credentials")
	}
	return s.startSession(ctx, s.adminUser, "auth.admin_login")
}

func (s *service) Register(ctx context.Context, input RegisterInput) (Result, error) {
	details := map[string]string{}
	if strings.TrimSpace(input.Name) == "" {
		details["name"] = "is required"
	}
	if strings.TrimSpace(input.Email) == "" {
		details["email"] = "is required"
	}
	if len(input.Password) < minPasswordLength {
		details["password"] = fmt.Sprintf("must be at least %d characters", minPasswordLength)
	}
	if len(details) > 0 {
		return Result{}, pkgerrors.New(pkgerrors.CodeValidation, "validation failed").WithDetails(details)
	}

	user := User{
		ID:      s.now().UnixMilli(),
		Name:    strings.TrimSpace(input.Name),
		Email:   strings.TrimSpace(input.Email),
		IsAdmin: false,
	}
	return s.startSession(ctx, user, "auth.register")
}

func (s *service) Logout(ctx context.Context, accessID string) error {
	return s.sessions.Revoke(ctx, accessID)
}

func (s *service) startSession(ctx context.Context, user User, event string) (Result, error) {
	role := enums.UserRoleCustomer
	if user.IsAdmin {
		role = enums.UserRoleAdmin
	}

	accessID := session.NewAccessID()
	token, err := pkgauth.MintAccessToken(s.jwtCfg, s.now(), pkgauth.AccessTokenPayload{
		UserID: user.ID,
		Name:   user.Name,
		Email:  user.Email,
		Role:   role,
		JTI:    accessID,
	})
	if err != nil {
		return Result{}, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "minting access token")
	}

	if _, err := s.sessions.Start(ctx, session.Session{
		AccessID: accessID,
		UserID:   user.ID,
		Name:     user.Name,
		Email:    user.Email,
		Role:     role,
	}); err != nil {
		return Result{}, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "starting session")
	}

	if s.logg != nil {
		ctx = s.logg.WithFields(ctx, map[string]any{
			"user_id": user.ID,
			"role":    role.String(),
		})
		s.logg.Info(ctx, event)
	}
	return Result{AccessToken: token, User: user}, nil
}

func localPart(email string) string {
	if at := strings.Index(email, "@"); at >= 0 {
		return email[:at]
	}
	return email
}
