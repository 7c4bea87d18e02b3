package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/carelink/portal-api/internal/core/domain"
)

type stubSessionService struct {
	loginFn     func(ctx context.Context, email, password, role string) (*domain.Session, error)
	logoutCalls int
	current     *domain.Session
}

func (s *stubSessionService) Login(ctx context.Context, email, password, role string) (*domain.Session, error) {
	return s.loginFn(ctx, email, password, role)
}

func (s *stubSessionService) Logout(_ context.Context) error {
	s.logoutCalls++
	s.current = nil
	return nil
}

func (s *stubSessionService) Restore(_ context.Context) error { return nil }

func (s *stubSessionService) Current() (*domain.Session, bool) {
	return s.current, s.current != nil
}

func doctorSession() *domain.Session {
	return &domain.Session{
		ID:   "s1",
		Role: domain.RoleDoctor,
		Account: domain.Account{
			ID:             "d1",
			Name:           "Dr. Reyes",
			Email:          "a@b.com",
			Password:       "pw1",
			Specialization: "Cardio",
			Hospital:       "Gen",
		},
		CreatedAt: time.Now().UTC(),
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	e := echo.New()
	stub := &stubSessionService{
		loginFn: func(_ context.Context, email, password, role string) (*domain.Session, error) {
			if email != "a@b.com" || password != "pw1" || role != "doctor" {
				t.Fatalf("unexpected args: %s %s %s", email, password, role)
			}
			return doctorSession(), nil
		},
	}
	h := NewAuthHandler(stub, "secret", time.Hour)

	body := strings.NewReader(`{"email":"a@b.com","password":"pw1","role":"doctor"}`)
	req := httptest.NewRequest(http.MethodPost, "/v1/auth/login", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}

	token, _ := resp["token"].(string)
	if token == "" {
		t.Fatalf("expected token in response")
	}
	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token invalid: %v", err)
	}
	if claims["role"] != domain.RoleDoctor || claims["sub"] != "d1" {
		t.Fatalf("unexpected claims: %+v", claims)
	}

	if strings.Contains(rec.Body.String(), "pw1") {
		t.Fatalf("response leaks the stored secret")
	}
	sess, ok := resp["session"].(map[string]any)
	if !ok || sess["role"] != "doctor" {
		t.Fatalf("unexpected session payload: %+v", resp["session"])
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	e := echo.New()
	stub := &stubSessionService{
		loginFn: func(_ context.Context, _, _, _ string) (*domain.Session, error) {
			return nil, domain.ErrInvalidCredentials
		},
	}
	h := NewAuthHandler(stub, "secret", time.Hour)

	req := httptest.NewRequest(http.MethodPost, "/v1/auth/login", strings.NewReader(`{"email":"a@b.com","password":"bad","role":"doctor"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Login(c); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthHandler_Login_MissingRole(t *testing.T) {
	e := echo.New()
	stub := &stubSessionService{
		loginFn: func(_ context.Context, _, _, role string) (*domain.Session, error) {
			if role != "" {
				t.Fatalf("expected empty role, got %q", role)
			}
			return nil, domain.ErrRoleRequired
		},
	}
	h := NewAuthHandler(stub, "secret", time.Hour)

	req := httptest.NewRequest(http.MethodPost, "/v1/auth/login", strings.NewReader(`{"email":"a@b.com","password":"pw1"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Login(c); !errors.Is(err, domain.ErrRoleRequired) {
		t.Fatalf("expected ErrRoleRequired, got %v", err)
	}
}

func TestAuthHandler_Login_InvalidPayload(t *testing.T) {
	e := echo.New()
	stub := &stubSessionService{
		loginFn: func(_ context.Context, _, _, _ string) (*domain.Session, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewAuthHandler(stub, "secret", time.Hour)

	req := httptest.NewRequest(http.MethodPost, "/v1/auth/login", strings.NewReader("not-json"))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	_ = h.Login(c)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAuthHandler_Logout(t *testing.T) {
	e := echo.New()
	stub := &stubSessionService{current: doctorSession()}
	h := NewAuthHandler(stub, "secret", time.Hour)

	req := httptest.NewRequest(http.MethodPost, "/v1/auth/logout", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Logout(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if stub.logoutCalls != 1 {
		t.Fatalf("expected one logout call, got %d", stub.logoutCalls)
	}
}

func TestAuthHandler_Session(t *testing.T) {
	e := echo.New()
	stub := &stubSessionService{current: doctorSession()}
	h := NewAuthHandler(stub, "secret", time.Hour)

	req := httptest.NewRequest(http.MethodGet, "/v1/auth/session", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Session(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["authenticated"] != true {
		t.Fatalf("expected authenticated true")
	}
	if resp["session"] == nil {
		t.Fatalf("expected session payload")
	}
}

func TestAuthHandler_Session_Anonymous(t *testing.T) {
	e := echo.New()
	h := NewAuthHandler(&stubSessionService{}, "secret", time.Hour)

	req := httptest.NewRequest(http.MethodGet, "/v1/auth/session", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Session(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["authenticated"] != false {
		t.Fatalf("expected authenticated false")
	}
	if resp["session"] != nil {
		t.Fatalf("expected null session, got %v", resp["session"])
	}
}
