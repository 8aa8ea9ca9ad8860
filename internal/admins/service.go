// Package admins establishes the staff privilege the admin surface is
// guarded by: password login, token minting, session revocation.
package admins

import (
	"context"
	"fmt"
	"time"

	"github.com/David-19-dev/abdouperformence-sub000/pkg/auth"
	"github.com/David-19-dev/abdouperformence-sub000/pkg/auth/session"
	"github.com/David-19-dev/abdouperformence-sub000/pkg/config"
	"github.com/David-19-dev/abdouperformence-sub000/pkg/db"
	pkgerrors "github.com/David-19-dev/abdouperformence-sub000/pkg/errors"
	"github.com/David-19-dev/abdouperformence-sub000/pkg/security"
)

type sessionWriter interface {
	Create(ctx context.Context, accessID string) error
	Revoke(ctx context.Context, accessID string) error
}

// LoginResult carries the minted token back to the controller.
type LoginResult struct {
	AccessToken string
	ExpiresIn   int
	DisplayName string
}

// Service authenticates staff accounts.
type Service interface {
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	Logout(ctx context.Context, accessID string) error
}

type service struct {
	repo     Repository
	sessions sessionWriter
	jwtCfg   config.JWTConfig
	now      func() time.Time
}

// NewService wires the staff auth service.
func NewService(repo Repository, sessions *session.Manager, jwtCfg config.JWTConfig) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("admins repository required")
	}
	if sessions == nil {
		return nil, fmt.Errorf("session manager required")
	}
	return &service{
		repo:     repo,
		sessions: sessions,
		jwtCfg:   jwtCfg,
		now:      time.Now,
	}, nil
}

// Login verifies the password and mints an access token with a live
// Redis session. Unknown emails and bad passwords are indistinguishable
// to the caller.
func (s *service) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if db.IsNotFound(err) {
			return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid credentials")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load staff account")
	}

	ok, err := security.VerifyPassword(password, user.PasswordHash)
	if err != nil || !ok {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid credentials")
	}

	accessID := session.NewAccessID()
	token, err := auth.MintAccessToken(s.jwtCfg, s.now(), auth.AccessTokenPayload{
		UserID: user.ID,
		Role:   auth.RoleAdmin,
		JTI:    accessID,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "mint access token")
	}

	if err := s.sessions.Create(ctx, accessID); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create session")
	}

	return &LoginResult{
		AccessToken: token,
		ExpiresIn:   s.jwtCfg.ExpirationMinutes * 60,
		DisplayName: user.DisplayName,
	}, nil
}

// Logout revokes the access token's session.
func (s *service) Logout(ctx context.Context, accessID string) error {
	if err := s.sessions.Revoke(ctx, accessID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "revoke session")
	}
	return nil
}
