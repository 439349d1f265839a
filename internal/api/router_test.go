package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/workwell/backoffice/internal/api/handler"
	"github.com/workwell/backoffice/internal/api/middleware"
	"github.com/workwell/backoffice/internal/core/domain"
	"github.com/workwell/backoffice/internal/core/ports"
)

// sessionAuthStub keeps sessions in a map so logout genuinely destroys them.
type sessionAuthStub struct {
	user     *domain.User
	sessions map[string]bool
}

func newSessionAuthStub() *sessionAuthStub {
	return &sessionAuthStub{
		user:     &domain.User{ID: 1, Username: "alice", Role: domain.RoleAdmin},
		sessions: make(map[string]bool),
	}
}

func (s *sessionAuthStub) Register(context.Context, ports.RegisterInput) (*domain.User, *domain.Session, error) {
	panic("not used")
}

func (s *sessionAuthStub) Login(context.Context, ports.LoginInput) (*domain.User, *domain.Session, error) {
	session := &domain.Session{Token: "tok-1", UserID: s.user.ID, ExpiresAt: time.Now().Add(time.Hour)}
	s.sessions[session.Token] = true
	return s.user, session, nil
}

func (s *sessionAuthStub) Logout(_ context.Context, token string) error {
	delete(s.sessions, token)
	return nil
}

func (s *sessionAuthStub) CurrentUser(_ context.Context, token string) (*domain.User, error) {
	if s.sessions[token] {
		return s.user, nil
	}
	return nil, domain.ErrUnauthenticated
}

func newAuthTestServer(stub *sessionAuthStub) *echo.Echo {
	e := echo.New()
	e.Validator = handler.NewValidator()
	registerAuthRoutes(e.Group("/api"), handler.NewAuthHandler(stub), middleware.Auth(stub))
	return e
}

func doRequest(e *echo.Echo, method, path string, cookie *http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

// Logging out twice, or without any session at all, must always answer 204.
func TestRouter_Logout_Idempotent(t *testing.T) {
	stub := newSessionAuthStub()
	e := newAuthTestServer(stub)

	cookie := &http.Cookie{Name: middleware.SessionCookie, Value: "tok-1"}
	stub.sessions["tok-1"] = true

	rec := doRequest(e, http.MethodPost, "/api/logout", cookie)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("first logout: expected 204, got %d", rec.Code)
	}
	if stub.sessions["tok-1"] {
		t.Fatalf("session not destroyed")
	}

	// Same stale cookie again.
	rec = doRequest(e, http.MethodPost, "/api/logout", cookie)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("second logout with stale cookie: expected 204, got %d", rec.Code)
	}

	// No cookie at all.
	rec = doRequest(e, http.MethodPost, "/api/logout", nil)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("logout without session: expected 204, got %d", rec.Code)
	}
}

func TestRouter_UserRequiresSession(t *testing.T) {
	stub := newSessionAuthStub()
	e := newAuthTestServer(stub)
	stub.sessions["tok-1"] = true
	cookie := &http.Cookie{Name: middleware.SessionCookie, Value: "tok-1"}

	rec := doRequest(e, http.MethodGet, "/api/user", cookie)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 with live session, got %d", rec.Code)
	}

	if rec := doRequest(e, http.MethodPost, "/api/logout", cookie); rec.Code != http.StatusNoContent {
		t.Fatalf("logout failed: %d", rec.Code)
	}

	rec = doRequest(e, http.MethodGet, "/api/user", cookie)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 after logout, got %d", rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Fatalf("expected empty 401 body, got %q", rec.Body.String())
	}
}
