package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/carelink/portal-api/internal/core/domain"
	"github.com/carelink/portal-api/internal/core/ports"
)

// ProfileHandler serves the caller's role-specific profile, looked up fresh
// from the credential directory.
type ProfileHandler struct {
	directory ports.CredentialSource
}

func NewProfileHandler(directory ports.CredentialSource) *ProfileHandler {
	return &ProfileHandler{directory: directory}
}

// Get handles GET /v1/profile.
//
// @Summary      Get the caller's profile
// @Tags         profile
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  accountResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Failure      503  {object}  errorResponse
// @Router       /v1/profile [get]
func (h *ProfileHandler) Get(c echo.Context) error {
	accountID, role, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	doc, err := h.directory.Fetch(c.Request().Context())
	if err != nil {
		return err
	}

	email, _ := c.Get("email").(string)
	for _, a := range doc.Accounts(role) {
		if a.ID == accountID || (email != "" && strings.EqualFold(a.Email, email)) {
			return c.JSON(http.StatusOK, toAccountResponse(a))
		}
	}
	return domain.ErrAccountNotFound
}
