package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/carelink/portal-api/internal/api/metrics"
	"github.com/carelink/portal-api/internal/core/domain"
	"github.com/carelink/portal-api/internal/core/ports"
)

// AuthHandler exposes the session surface: login, logout, and the current
// session. Login additionally issues a JWT so dashboard routes can
// authenticate statelessly.
type AuthHandler struct {
	sessions  ports.SessionService
	jwtSecret string
	tokenTTL  time.Duration
}

func NewAuthHandler(sessions ports.SessionService, jwtSecret string, tokenTTL time.Duration) *AuthHandler {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthHandler{sessions: sessions, jwtSecret: jwtSecret, tokenTTL: tokenTTL}
}

// Login authenticates the credentials against the role's directory list.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials with asserted role"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      503   {object}  errorResponse
// @Router       /v1/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}

	start := time.Now()
	sess, err := h.sessions.Login(c.Request().Context(), req.Email, req.Password, req.Role)
	metrics.LoginsTotal.WithLabelValues(loginRole(req.Role), loginOutcome(err)).Inc()
	metrics.LoginDuration.WithLabelValues(loginOutcome(err)).Observe(time.Since(start).Seconds())
	if err != nil {
		return err
	}

	token, err := h.issueToken(sess)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, loginResponse{
		Token:   token,
		Session: toSessionResponse(sess),
	})
}

// Logout ends the active session. Idempotent.
//
// @Summary      Logout
// @Tags         auth
// @Success      204
// @Router       /v1/auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	if err := h.sessions.Logout(c.Request().Context()); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Session returns the current session, if any.
//
// @Summary      Current session
// @Tags         auth
// @Produce      json
// @Success      200  {object}  sessionInfoResponse
// @Router       /v1/auth/session [get]
func (h *AuthHandler) Session(c echo.Context) error {
	sess, ok := h.sessions.Current()
	resp := sessionInfoResponse{Authenticated: ok}
	if ok {
		sr := toSessionResponse(sess)
		resp.Session = &sr
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *AuthHandler) issueToken(sess *domain.Session) (string, error) {
	claims := jwt.MapClaims{
		"sub":   sess.Account.ID,
		"email": sess.Account.Email,
		"name":  sess.Account.Name,
		"role":  sess.Role,
		"exp":   time.Now().Add(h.tokenTTL).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(h.jwtSecret))
}

func loginRole(role string) string {
	if domain.ValidRole(role) {
		return role
	}
	return "unknown"
}

func loginOutcome(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, domain.ErrInvalidCredentials):
		return "invalid_credentials"
	case errors.Is(err, domain.ErrStoreUnavailable):
		return "store_unavailable"
	default:
		return "bad_request"
	}
}
