package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/workwell/backoffice/internal/api/middleware"
	"github.com/workwell/backoffice/internal/core/domain"
	"github.com/workwell/backoffice/internal/core/ports"
)

type stubAuthService struct {
	registerFn func(ctx context.Context, input ports.RegisterInput) (*domain.User, *domain.Session, error)
	loginFn    func(ctx context.Context, input ports.LoginInput) (*domain.User, *domain.Session, error)
	logoutFn   func(ctx context.Context, token string) error
}

func (s *stubAuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, *domain.Session, error) {
	return s.registerFn(ctx, input)
}

func (s *stubAuthService) Login(ctx context.Context, input ports.LoginInput) (*domain.User, *domain.Session, error) {
	return s.loginFn(ctx, input)
}

func (s *stubAuthService) Logout(ctx context.Context, token string) error {
	if s.logoutFn != nil {
		return s.logoutFn(ctx, token)
	}
	return nil
}

func (s *stubAuthService) CurrentUser(context.Context, string) (*domain.User, error) {
	panic("not used")
}

func newAuthTestContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func testSession() *domain.Session {
	return &domain.Session{
		Token:     "session-token-1",
		UserID:    1,
		ExpiresAt: time.Now().Add(time.Hour),
		CreatedAt: time.Now(),
	}
}

func sessionCookie(rec *httptest.ResponseRecorder) *http.Cookie {
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == middleware.SessionCookie {
			return cookie
		}
	}
	return nil
}

func TestAuthHandler_Register_Success(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(_ context.Context, input ports.RegisterInput) (*domain.User, *domain.Session, error) {
			if input.Username != "alice" || input.Role != domain.RoleEmployee {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &domain.User{ID: 1, Username: input.Username, Email: input.Email, Role: input.Role}, testSession(), nil
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := newAuthTestContext(t, http.MethodPost, "/api/register",
		`{"username":"alice","password":"pw123456","email":"a@example.com","role":"employee"}`)

	if err := handler.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var user map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &user); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if user["username"] != "alice" || user["role"] != "employee" {
		t.Fatalf("unexpected user payload: %+v", user)
	}
	if _, leaked := user["password_hash"]; leaked {
		t.Fatalf("password hash leaked in response")
	}

	cookie := sessionCookie(rec)
	if cookie == nil || cookie.Value != "session-token-1" {
		t.Fatalf("expected session cookie, got %+v", cookie)
	}
	if !cookie.HttpOnly {
		t.Fatalf("session cookie must be HttpOnly")
	}
}

func TestAuthHandler_Register_UserExists(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(context.Context, ports.RegisterInput) (*domain.User, *domain.Session, error) {
			return nil, nil, domain.ErrUserExists
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := newAuthTestContext(t, http.MethodPost, "/api/register",
		`{"username":"bob","password":"pw123456","email":"b@example.com","role":"admin"}`)

	_ = handler.Register(c)
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
}

func TestAuthHandler_Register_InvalidRole(t *testing.T) {
	handler := NewAuthHandler(&stubAuthService{
		registerFn: func(context.Context, ports.RegisterInput) (*domain.User, *domain.Session, error) {
			t.Fatalf("service should not be called for invalid payload")
			return nil, nil, nil
		},
	})

	c, rec := newAuthTestContext(t, http.MethodPost, "/api/register",
		`{"username":"bob","password":"pw123456","email":"b@example.com","role":"owner"}`)

	_ = handler.Register(c)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(_ context.Context, input ports.LoginInput) (*domain.User, *domain.Session, error) {
			if input.Username != "carol" || input.Password != "s3cret99" {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &domain.User{ID: 2, Username: "carol", Role: domain.RoleAdmin}, testSession(), nil
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := newAuthTestContext(t, http.MethodPost, "/api/login",
		`{"username":"carol","password":"s3cret99"}`)

	if err := handler.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if cookie := sessionCookie(rec); cookie == nil {
		t.Fatalf("expected session cookie")
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(context.Context, ports.LoginInput) (*domain.User, *domain.Session, error) {
			return nil, nil, domain.ErrInvalidCredentials
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := newAuthTestContext(t, http.MethodPost, "/api/login",
		`{"username":"carol","password":"wrong"}`)

	_ = handler.Login(c)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthHandler_Login_Throttled(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(context.Context, ports.LoginInput) (*domain.User, *domain.Session, error) {
			return nil, nil, domain.ErrTooManyAttempts
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := newAuthTestContext(t, http.MethodPost, "/api/login",
		`{"username":"carol","password":"wrong"}`)

	_ = handler.Login(c)
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", rec.Code)
	}
}

func TestAuthHandler_Logout_WithSession(t *testing.T) {
	var loggedOut string
	stub := &stubAuthService{
		logoutFn: func(_ context.Context, token string) error {
			loggedOut = token
			return nil
		},
	}
	handler := NewAuthHandler(stub)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/logout", nil)
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: "tok-9"})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Logout(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if loggedOut != "tok-9" {
		t.Fatalf("expected logout of tok-9, got %q", loggedOut)
	}

	cookie := sessionCookie(rec)
	if cookie == nil || cookie.Value != "" || cookie.MaxAge != -1 {
		t.Fatalf("expected cleared session cookie, got %+v", cookie)
	}
}

func TestAuthHandler_Logout_NoSession(t *testing.T) {
	handler := NewAuthHandler(&stubAuthService{})

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/logout", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Logout(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
}

func TestAuthHandler_Me(t *testing.T) {
	handler := NewAuthHandler(&stubAuthService{})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/user", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.ContextUser, &domain.User{ID: 3, Username: "dana", Role: domain.RoleEmployee})

	if err := handler.Me(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var user map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &user); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if user["username"] != "dana" {
		t.Fatalf("unexpected payload: %+v", user)
	}
}
