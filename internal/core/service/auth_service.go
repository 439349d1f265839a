package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/workwell/backoffice/internal/core/domain"
	"github.com/workwell/backoffice/internal/core/ports"
)

const (
	minUsernameLen = 3
	minPasswordLen = 6
)

// AuthService implements registration, login and session resolution over the
// users and sessions tables. It holds no state of its own: every call reads
// whatever it needs from the stores, so concurrent requests need no locking.
type AuthService struct {
	users      ports.AuthRepository
	sessions   ports.SessionRepository
	limiter    ports.LoginLimiter
	sessionTTL time.Duration
	log        zerolog.Logger
}

func NewAuthService(
	users ports.AuthRepository,
	sessions ports.SessionRepository,
	limiter ports.LoginLimiter,
	sessionTTL time.Duration,
	log zerolog.Logger,
) *AuthService {
	if sessionTTL <= 0 {
		sessionTTL = 7 * 24 * time.Hour
	}
	return &AuthService{
		users:      users,
		sessions:   sessions,
		limiter:    limiter,
		sessionTTL: sessionTTL,
		log:        log,
	}
}

// Register creates a user with a bcrypt-hashed password and immediately
// establishes a session for it. A taken username fails with ErrUserExists
// and leaves no row behind.
func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, *domain.Session, error) {
	username := strings.TrimSpace(input.Username)
	if len(username) < minUsernameLen || len(input.Password) < minPasswordLen {
		return nil, nil, domain.ErrInvalidCredentials
	}
	if !domain.ValidRole(input.Role) {
		return nil, nil, domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, err
	}

	user := &domain.User{
		Username:     username,
		Email:        strings.TrimSpace(input.Email),
		PasswordHash: string(hash),
		Role:         input.Role,
		DepartmentID: input.DepartmentID,
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, nil, err
	}

	session, err := s.newSession(ctx, created.ID)
	if err != nil {
		return nil, nil, err
	}

	s.log.Info().Str("username", created.Username).Str("role", created.Role).Msg("user registered")
	return created, session, nil
}

// Login verifies credentials and establishes a fresh session. A missing user
// and a wrong password are both reported as ErrInvalidCredentials so the
// caller cannot enumerate usernames.
func (s *AuthService) Login(ctx context.Context, input ports.LoginInput) (*domain.User, *domain.Session, error) {
	if input.Username == "" || input.Password == "" {
		return nil, nil, domain.ErrInvalidCredentials
	}

	throttled, err := s.limiter.TooManyFailures(ctx, input.Username, input.RemoteAddr)
	if err != nil {
		// Redis being down must not lock everyone out.
		s.log.Warn().Err(err).Msg("login limiter check failed, continuing")
	} else if throttled {
		return nil, nil, domain.ErrTooManyAttempts
	}

	user, err := s.users.FindByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.recordFailure(ctx, input)
			return nil, nil, domain.ErrInvalidCredentials
		}
		return nil, nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)) != nil {
		s.recordFailure(ctx, input)
		return nil, nil, domain.ErrInvalidCredentials
	}

	if err := s.limiter.Reset(ctx, input.Username, input.RemoteAddr); err != nil {
		s.log.Warn().Err(err).Msg("login limiter reset failed")
	}

	session, err := s.newSession(ctx, user.ID)
	if err != nil {
		return nil, nil, err
	}

	s.log.Info().Str("username", user.Username).Msg("user logged in")
	return user, session, nil
}

// Logout destroys the session behind token. Calling it with an unknown or
// already-destroyed token is not an error.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.sessions.Delete(ctx, token)
}

// CurrentUser resolves a session token to its user. Expired sessions are
// removed on sight and reported as ErrUnauthenticated, same as unknown ones.
func (s *AuthService) CurrentUser(ctx context.Context, token string) (*domain.User, error) {
	if token == "" {
		return nil, domain.ErrUnauthenticated
	}

	session, err := s.sessions.FindByToken(ctx, token)
	if err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) {
			return nil, domain.ErrUnauthenticated
		}
		return nil, err
	}

	if session.Expired(time.Now().UTC()) {
		if err := s.sessions.Delete(ctx, token); err != nil {
			s.log.Warn().Err(err).Msg("failed to delete expired session")
		}
		return nil, domain.ErrUnauthenticated
	}

	user, err := s.users.FindByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrUnauthenticated
		}
		return nil, err
	}
	return user, nil
}

func (s *AuthService) newSession(ctx context.Context, userID int64) (*domain.Session, error) {
	now := time.Now().UTC()
	session := &domain.Session{
		Token:     uuid.NewString(),
		UserID:    userID,
		ExpiresAt: now.Add(s.sessionTTL),
		CreatedAt: now,
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *AuthService) recordFailure(ctx context.Context, input ports.LoginInput) {
	if err := s.limiter.RecordFailure(ctx, input.Username, input.RemoteAddr); err != nil {
		s.log.Warn().Err(err).Msg("failed to record login failure")
	}
}
