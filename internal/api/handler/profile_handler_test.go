package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/carelink/portal-api/internal/core/domain"
)

type stubDirectory struct {
	doc *domain.CredentialDocument
	err error
}

func (s *stubDirectory) Fetch(_ context.Context) (*domain.CredentialDocument, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.doc, nil
}

func TestProfileHandler_Get(t *testing.T) {
	dir := &stubDirectory{doc: &domain.CredentialDocument{
		Doctors: []domain.Account{{ID: "d1", Name: "Dr. Reyes", Email: "a@b.com", Password: "pw1", Specialization: "Cardio", Hospital: "Gen"}},
	}}
	h := NewProfileHandler(dir)

	c, rec := newTestContext(t, http.MethodGet, "/v1/profile", "")
	authenticate(c, "d1", domain.RoleDoctor, "Dr. Reyes")
	c.Set("email", "a@b.com")

	if err := h.Get(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["specialization"] != "Cardio" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
	if _, leaked := resp["password"]; leaked {
		t.Fatalf("response leaks the stored secret")
	}
}

func TestProfileHandler_Get_NotFound(t *testing.T) {
	h := NewProfileHandler(&stubDirectory{doc: &domain.CredentialDocument{}})

	c, _ := newTestContext(t, http.MethodGet, "/v1/profile", "")
	authenticate(c, "ghost", domain.RoleDoctor, "")

	if err := h.Get(c); !errors.Is(err, domain.ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}
}

func TestProfileHandler_Get_DirectoryDown(t *testing.T) {
	h := NewProfileHandler(&stubDirectory{err: domain.ErrStoreUnavailable})

	c, _ := newTestContext(t, http.MethodGet, "/v1/profile", "")
	authenticate(c, "d1", domain.RoleDoctor, "")

	if err := h.Get(c); !errors.Is(err, domain.ErrStoreUnavailable) {
		t.Fatalf("expected ErrStoreUnavailable, got %v", err)
	}
}
