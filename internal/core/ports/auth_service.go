package ports

import (
	"context"

	"github.com/workwell/backoffice/internal/core/domain"
)

// RegisterInput carries everything needed to create an account.
type RegisterInput struct {
	Username     string
	Password     string
	Email        string
	Role         string
	DepartmentID *int64
}

// LoginInput carries submitted credentials plus the caller's remote address
// for failed-attempt throttling.
type LoginInput struct {
	Username   string
	Password   string
	RemoteAddr string
}

// AuthService owns registration, login state and session resolution.
// Register establishes a session immediately (register implies login).
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, *domain.Session, error)
	Login(ctx context.Context, input LoginInput) (*domain.User, *domain.Session, error)
	// Logout destroys the session for token. Unknown tokens are a no-op.
	Logout(ctx context.Context, token string) error
	// CurrentUser resolves a session token to its user, or
	// domain.ErrUnauthenticated when the token is missing, unknown or expired.
	CurrentUser(ctx context.Context, token string) (*domain.User, error)
}
