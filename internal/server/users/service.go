package users

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/merchkeeper/internal/common"
	"github.com/dmitrijs2005/merchkeeper/internal/server/auth"
	"github.com/dmitrijs2005/merchkeeper/internal/server/config"
)

// Service orchestrates signup and login on top of the credential store.
// Tokens are self-contained; there is no server-side session state and
// nothing to clean up on logout.
type Service struct {
	repo      Repository
	jwtSecret []byte
	tokenTTL  time.Duration
}

func NewService(repo Repository, cfg *config.Config) *Service {
	return &Service{
		repo:      repo,
		jwtSecret: []byte(cfg.SecretKey),
		tokenTTL:  cfg.AccessTokenValidityDuration,
	}
}

// SignUp hashes the password and creates the user record. A taken username
// yields common.ErrLoginAlreadyExists; the pre-insert lookup gives the
// common case a friendly answer, and the store's unique constraint settles
// concurrent signups that slip past it.
func (s *Service) SignUp(ctx context.Context, username, password string) (int64, error) {

	if username == "" || password == "" {
		return 0, common.ErrorValidation
	}

	_, err := s.repo.GetByUsername(ctx, username)
	if err == nil {
		return 0, common.ErrLoginAlreadyExists
	}
	if !errors.Is(err, common.ErrorNotFound) {
		return 0, fmt.Errorf("error looking up user: %w", err)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return 0, err
	}

	user, err := s.repo.Create(ctx, &User{Username: username, PasswordHash: hash})
	if err != nil {
		if errors.Is(err, common.ErrLoginAlreadyExists) {
			return 0, common.ErrLoginAlreadyExists
		}
		return 0, fmt.Errorf("error creating user: %w", err)
	}

	return user.ID, nil
}

// LogIn verifies the credentials and issues a session token. An unknown
// username and a wrong password both yield common.ErrInvalidLoginPassword so
// the response never signals which one it was.
func (s *Service) LogIn(ctx context.Context, username, password string) (string, error) {

	user, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrInvalidLoginPassword
		}
		return "", common.ErrorInternal
	}

	ok, err := auth.CheckPassword(password, user.PasswordHash)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", common.ErrInvalidLoginPassword
	}

	token, err := auth.GenerateToken(user.ID, user.Username, s.jwtSecret, s.tokenTTL)
	if err != nil {
		return "", common.ErrorInternal
	}

	return token, nil
}
