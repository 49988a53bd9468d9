package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/klwxsrx/hwstore-client/internal/devserver/app/encoding"
	"github.com/klwxsrx/hwstore-client/internal/devserver/app/session"
	"github.com/klwxsrx/hwstore-client/internal/devserver/domain"
	"github.com/klwxsrx/hwstore-client/pkg/auth"
	"github.com/klwxsrx/hwstore-client/pkg/log"
	pkgtime "github.com/klwxsrx/hwstore-client/pkg/time"
)

type (
	Authentication interface {
		auth.Provider[Principal]
		Login(ctx context.Context, email, password string) (LoginResult, error)
		Logout(ctx context.Context, principal Principal)
		PruneRevokedTokens(context.Context) error
	}

	Principal struct {
		UserID    string
		TokenID   string
		ExpiresAt time.Time
	}

	LoginResult struct {
		Token session.EncodedToken
		User  domain.User
	}

	authenticationService struct {
		userRepo        domain.UserRepository
		tokens          session.TokenIssuer
		passwordEncoder encoding.PasswordEncoder
		clock           pkgtime.Clock
		tokenTTL        time.Duration
		logger          log.Logger

		mu      sync.Mutex
		revoked map[string]time.Time
	}
)

func NewAuthentication(
	userRepo domain.UserRepository,
	tokens session.TokenIssuer,
	passwordEncoder encoding.PasswordEncoder,
	clock pkgtime.Clock,
	tokenTTL time.Duration,
	logger log.Logger,
) Authentication {
	return &authenticationService{
		userRepo:        userRepo,
		tokens:          tokens,
		passwordEncoder: passwordEncoder,
		clock:           clock,
		tokenTTL:        tokenTTL,
		logger:          logger,
		revoked:         make(map[string]time.Time),
	}
}

func (s *authenticationService) Login(ctx context.Context, email, password string) (LoginResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return LoginResult{}, auth.ErrUnauthenticated
	}

	user, err := s.userRepo.FindByEmail(email)
	if errors.Is(err, domain.ErrUserNotFound) {
		return LoginResult{}, auth.ErrUnauthenticated
	}
	if err != nil {
		return LoginResult{}, fmt.Errorf("find user by email: %w", err)
	}

	if !s.passwordEncoder.CompareHash(user.PasswordHash, password) {
		return LoginResult{}, auth.ErrUnauthenticated
	}

	token, err := s.tokens.Issue(user.ID, s.tokenTTL)
	if err != nil {
		return LoginResult{}, fmt.Errorf("issue token: %w", err)
	}

	s.logger.WithField("userID", user.ID).Info(ctx, "user logged in")
	return LoginResult{
		Token: token.EncodedToken,
		User:  user,
	}, nil
}

func (s *authenticationService) Authenticate(_ context.Context, credential string) (Principal, error) {
	token, err := s.tokens.Verify(session.EncodedToken(credential))
	if errors.Is(err, session.ErrInvalidToken) {
		return Principal{}, auth.ErrUnauthenticated
	}
	if err != nil {
		return Principal{}, fmt.Errorf("verify token: %w", err)
	}

	s.mu.Lock()
	_, revoked := s.revoked[token.ID]
	s.mu.Unlock()
	if revoked {
		return Principal{}, auth.ErrUnauthenticated
	}

	_, err = s.userRepo.FindByID(token.UserID)
	if errors.Is(err, domain.ErrUserNotFound) {
		return Principal{}, auth.ErrUnauthenticated
	}
	if err != nil {
		return Principal{}, fmt.Errorf("find user by id: %w", err)
	}

	return Principal{
		UserID:    token.UserID,
		TokenID:   token.ID,
		ExpiresAt: token.ExpiresAt,
	}, nil
}

func (s *authenticationService) Logout(ctx context.Context, principal Principal) {
	s.mu.Lock()
	s.revoked[principal.TokenID] = principal.ExpiresAt
	s.mu.Unlock()

	s.logger.WithField("userID", principal.UserID).Info(ctx, "user logged out")
}

// PruneRevokedTokens forgets revoked tokens that have expired on their own.
func (s *authenticationService) PruneRevokedTokens(ctx context.Context) error {
	now := s.clock.Now()

	s.mu.Lock()
	var pruned int
	for id, expiresAt := range s.revoked {
		if !expiresAt.After(now) {
			delete(s.revoked, id)
			pruned++
		}
	}
	s.mu.Unlock()

	if pruned > 0 {
		s.logger.WithField("count", pruned).Debug(ctx, "revoked tokens pruned")
	}
	return nil
}
