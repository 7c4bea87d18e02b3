package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/carelink/portal-api/internal/core/domain"
)

type recordingRepo struct {
	mu      sync.Mutex
	entries []domain.AuditEntry
	done    chan struct{}
	want    int
}

func newRecordingRepo(want int) *recordingRepo {
	return &recordingRepo{done: make(chan struct{}), want: want}
}

func (r *recordingRepo) Insert(_ context.Context, entry *domain.AuditEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, *entry)
	if len(r.entries) == r.want {
		close(r.done)
	}
	return nil
}

func (r *recordingRepo) wait(t *testing.T) []domain.AuditEntry {
	t.Helper()
	select {
	case <-r.done:
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for %d entries", r.want)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.AuditEntry, len(r.entries))
	copy(out, r.entries)
	return out
}

func TestDispatcher_RecordsEntries(t *testing.T) {
	repo := newRecordingRepo(3)
	d := NewDispatcher(4, repo, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	d.Record(domain.AuditEntry{AccountID: "d1", Role: domain.RoleDoctor, Action: domain.AuditLogin})
	d.Record(domain.AuditEntry{AccountID: "p1", Role: domain.RolePatient, Action: domain.AuditLogin})
	d.Record(domain.AuditEntry{AccountID: "d1", Role: domain.RoleDoctor, Action: domain.AuditLogout})

	entries := repo.wait(t)
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
}

func TestDispatcher_OrderPreservedPerAccount(t *testing.T) {
	const n = 20
	repo := newRecordingRepo(n)
	d := NewDispatcher(4, repo, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	actions := []string{domain.AuditLogin, domain.AuditLogout}
	for i := 0; i < n; i++ {
		d.Record(domain.AuditEntry{
			AccountID: "d1",
			Role:      domain.RoleDoctor,
			Action:    actions[i%2],
			Timestamp: time.Unix(int64(i), 0),
		})
	}

	entries := repo.wait(t)
	for i, e := range entries {
		if e.Timestamp.Unix() != int64(i) {
			t.Fatalf("entry %d out of order: got timestamp %d", i, e.Timestamp.Unix())
		}
	}
}

func TestDispatcher_ShardIsStable(t *testing.T) {
	d := NewDispatcher(4, newRecordingRepo(1), zerolog.Nop())

	first := d.shardIndex("account-42")
	for i := 0; i < 10; i++ {
		if got := d.shardIndex("account-42"); got != first {
			t.Fatalf("shard index not stable: %d vs %d", got, first)
		}
	}
}
