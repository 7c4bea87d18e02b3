package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/carelink/portal-api/internal/core/domain"
	"github.com/carelink/portal-api/internal/core/ports"
)

// SessionManager is the sole owner of the active session. It mirrors every
// in-memory mutation to the persisted store and discards persisted records
// that fail validation rather than trusting them.
//
// Concurrent logins are sequenced: each attempt takes a monotonically
// increasing number before the credential fetch, and a result is applied only
// if no later attempt has been applied already. A stale completion still
// returns its own outcome, it just cannot clobber newer state.
type SessionManager struct {
	source   ports.CredentialSource
	store    ports.SessionStore
	verifier CredentialVerifier
	audit    ports.AuditSink // optional
	log      zerolog.Logger

	mu      sync.Mutex
	session *domain.Session
	lastSeq uint64
	applied uint64
}

// NewSessionManager wires a SessionManager. The audit sink may be nil.
func NewSessionManager(
	source ports.CredentialSource,
	store ports.SessionStore,
	verifier CredentialVerifier,
	audit ports.AuditSink,
	log zerolog.Logger,
) *SessionManager {
	return &SessionManager{
		source:   source,
		store:    store,
		verifier: verifier,
		audit:    audit,
		log:      log,
	}
}

// Login verifies the credentials against the role's directory list: first
// record whose email matches case-insensitively and whose secret the verifier
// accepts. Exactly one directory fetch per call; the persisted slot is
// written only on success.
func (m *SessionManager) Login(ctx context.Context, email, password, role string) (*domain.Session, error) {
	if role == "" {
		return nil, domain.ErrRoleRequired
	}
	if !domain.ValidRole(role) {
		return nil, fmt.Errorf("%w: unknown role %q", domain.ErrRoleRequired, role)
	}

	m.mu.Lock()
	m.lastSeq++
	seq := m.lastSeq
	m.mu.Unlock()

	doc, err := m.source.Fetch(ctx)
	if err != nil {
		m.log.Warn().Err(err).Str("role", role).Msg("credential store fetch failed")
		if !errors.Is(err, domain.ErrStoreUnavailable) {
			err = fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
		}
		return nil, err
	}

	accounts := doc.Accounts(role)
	var match *domain.Account
	for i := range accounts {
		a := &accounts[i]
		if strings.EqualFold(a.Email, email) && m.verifier.Verify(a.Password, password) {
			match = a
			break
		}
	}
	if match == nil {
		return nil, domain.ErrInvalidCredentials
	}

	sess := &domain.Session{
		ID:        uuid.NewString(),
		Role:      role,
		Account:   *match,
		CreatedAt: time.Now().UTC(),
	}

	m.mu.Lock()
	if seq < m.applied {
		m.mu.Unlock()
		m.log.Debug().Str("email", match.Email).Msg("stale login result dropped")
		return sess, nil
	}
	m.applied = seq
	m.session = sess
	m.persistLocked(ctx, sess)
	m.mu.Unlock()

	m.record(domain.AuditEntry{
		AccountID: sess.Account.ID,
		Role:      sess.Role,
		Action:    domain.AuditLogin,
		Timestamp: sess.CreatedAt,
	})
	m.log.Info().Str("role", role).Str("account_id", sess.Account.ID).Msg("login succeeded")
	return sess, nil
}

// Logout clears the session and deletes the persisted slot. It always
// succeeds and is a no-op when already logged out.
func (m *SessionManager) Logout(ctx context.Context) error {
	m.mu.Lock()
	prev := m.session
	m.session = nil
	if err := m.store.Delete(ctx); err != nil {
		m.log.Error().Err(err).Msg("delete persisted session failed")
	}
	m.mu.Unlock()

	if prev != nil {
		m.record(domain.AuditEntry{
			AccountID: prev.Account.ID,
			Role:      prev.Role,
			Action:    domain.AuditLogout,
			Timestamp: time.Now().UTC(),
		})
		m.log.Info().Str("account_id", prev.Account.ID).Msg("logged out")
	}
	return nil
}

// Restore loads the persisted slot once at startup. An empty slot leaves the
// state anonymous with no error. A record that fails to parse or validate is
// deleted and logged, never surfaced: it is stale local data, not a user
// action. Only store transport failures are returned.
func (m *SessionManager) Restore(ctx context.Context) error {
	raw, err := m.store.Get(ctx)
	if errors.Is(err, domain.ErrNoSession) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("restore session: %w", err)
	}

	var sess domain.Session
	if err := json.Unmarshal(raw, &sess); err != nil {
		m.discard(ctx, &sess, fmt.Errorf("%w: %v", domain.ErrCorruptSession, err))
		return nil
	}
	if err := sess.Validate(); err != nil {
		m.discard(ctx, &sess, err)
		return nil
	}

	m.mu.Lock()
	m.session = &sess
	m.mu.Unlock()

	m.log.Info().Str("role", sess.Role).Str("account_id", sess.Account.ID).Msg("session restored")
	return nil
}

// Current returns the active session, if any.
func (m *SessionManager) Current() (*domain.Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.session, m.session != nil
}

// persistLocked mirrors the session to the store. Callers hold m.mu so a
// concurrent login cannot interleave an older write after a newer one.
func (m *SessionManager) persistLocked(ctx context.Context, sess *domain.Session) {
	data, err := json.Marshal(sess)
	if err != nil {
		m.log.Error().Err(err).Msg("marshal session failed")
		return
	}
	if err := m.store.Set(ctx, data); err != nil {
		m.log.Error().Err(err).Msg("persist session failed")
	}
}

func (m *SessionManager) discard(ctx context.Context, sess *domain.Session, cause error) {
	m.log.Warn().Err(cause).Msg("discarding persisted session")
	if err := m.store.Delete(ctx); err != nil {
		m.log.Error().Err(err).Msg("delete persisted session failed")
	}
	m.record(domain.AuditEntry{
		AccountID: sess.Account.ID,
		Role:      sess.Role,
		Action:    domain.AuditSessionDiscard,
		Detail:    cause.Error(),
		Timestamp: time.Now().UTC(),
	})
}

func (m *SessionManager) record(entry domain.AuditEntry) {
	if m.audit != nil {
		m.audit.Record(entry)
	}
}
