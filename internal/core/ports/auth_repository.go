package ports

import (
	"context"

	"github.com/workwell/backoffice/internal/core/domain"
)

// AuthRepository defines the interface for user persistence.
type AuthRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}

// SessionRepository persists server-side login sessions keyed by their
// opaque token. Delete on a missing token is a no-op, which makes logout
// idempotent all the way down.
type SessionRepository interface {
	Create(ctx context.Context, session *domain.Session) error
	FindByToken(ctx context.Context, token string) (*domain.Session, error)
	Delete(ctx context.Context, token string) error
}

// LoginLimiter throttles repeated failed logins for a username/address pair.
type LoginLimiter interface {
	// TooManyFailures reports whether the pair has exhausted its attempts
	// within the current window.
	TooManyFailures(ctx context.Context, username, addr string) (bool, error)
	RecordFailure(ctx context.Context, username, addr string) error
	Reset(ctx context.Context, username, addr string) error
}
