package history

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/traineedesk/meeting-history/internal/domain/entities"
)

// stubSource implements both source interfaces for tests.
type stubSource struct {
	records []entities.RawRecord
	err     error
	delay   time.Duration
	calls   int32
}

func (s *stubSource) fetch(ctx context.Context) ([]entities.RawRecord, error) {
	atomic.AddInt32(&s.calls, 1)
	if s.delay > 0 {
		select {
		case <-time.After(s.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if s.err != nil {
		return nil, s.err
	}
	out := make([]entities.RawRecord, len(s.records))
	copy(out, s.records)
	return out, nil
}

func (s *stubSource) ListMeetings(ctx context.Context, _ string) ([]entities.RawRecord, error) {
	return s.fetch(ctx)
}

func (s *stubSource) ScanMeetings(ctx context.Context, _ string) ([]entities.RawRecord, error) {
	return s.fetch(ctx)
}

func (s *stubSource) callCount() int {
	return int(atomic.LoadInt32(&s.calls))
}

func rawMeeting(id, owner, project, createdAt string) entities.RawRecord {
	return entities.RawRecord{
		ID:           id,
		OwnerID:      owner,
		ProjectLabel: project,
		CreatedAt:    createdAt,
	}
}

func TestReconcile_MergesValidatesAndOrders(t *testing.T) {
	// The concrete two-source scenario: m1 remote, m2 journal, m3 journal
	// but owned by someone else.
	remote := &stubSource{records: []entities.RawRecord{
		rawMeeting("m1", "u1", "Acme", "2024-01-02T10:00:00Z"),
	}}
	journal := &stubSource{records: []entities.RawRecord{
		rawMeeting("m2", "u1", "Acme", "2024-01-01T09:00:00Z"),
		rawMeeting("m3", "u2", "Acme", "2024-01-03T00:00:00Z"),
	}}

	r := NewReconciler(remote, journal, time.Second, nil)
	records, err := r.Reconcile(context.Background(), "u1")
	require.NoError(t, err)

	require.Len(t, records, 2)
	assert.Equal(t, "m1", records[0].ID)
	assert.Equal(t, "m2", records[1].ID)

	stats := ComputeStats(records)
	assert.Equal(t, 2, stats.TotalMeetings)
}

func TestReconcile_RemoteWinsDedupe(t *testing.T) {
	remote := &stubSource{records: []entities.RawRecord{
		rawMeeting("m1", "u1", "Remote Label", "2024-01-02T10:00:00Z"),
	}}
	journal := &stubSource{records: []entities.RawRecord{
		rawMeeting("m1", "u1", "Journal Label", "2024-01-02T10:00:00Z"),
	}}

	r := NewReconciler(remote, journal, time.Second, nil)
	records, err := r.Reconcile(context.Background(), "u1")
	require.NoError(t, err)

	require.Len(t, records, 1)
	assert.Equal(t, "Remote Label", records[0].ProjectLabel)
}

func TestReconcile_DropsInvalidCandidates(t *testing.T) {
	remote := &stubSource{records: []entities.RawRecord{
		rawMeeting("m1", "u1", "Acme", "2024-01-02T10:00:00Z"),
		{},                                                   // undecodable journal-style blob
		rawMeeting("", "u1", "Acme", "2024-01-02T10:00:00Z"), // no id
		rawMeeting("m4", "u1", "", "2024-01-02T10:00:00Z"),   // no project
		rawMeeting("m5", "u1", "Acme", ""),                   // no timestamp
	}}
	journal := &stubSource{}

	r := NewReconciler(remote, journal, time.Second, nil)
	records, err := r.Reconcile(context.Background(), "u1")
	require.NoError(t, err)

	require.Len(t, records, 1)
	assert.Equal(t, "m1", records[0].ID)
}

func TestReconcile_DescendingOrderWithStableTieBreak(t *testing.T) {
	remote := &stubSource{records: []entities.RawRecord{
		rawMeeting("b", "u1", "Acme", "2024-01-02T10:00:00Z"),
		rawMeeting("a", "u1", "Acme", "2024-01-02T10:00:00Z"),
		rawMeeting("c", "u1", "Acme", "2024-01-05T10:00:00Z"),
		rawMeeting("d", "u1", "Acme", "2024-01-01T10:00:00Z"),
	}}
	journal := &stubSource{}

	r := NewReconciler(remote, journal, time.Second, nil)
	records, err := r.Reconcile(context.Background(), "u1")
	require.NoError(t, err)

	ids := make([]string, len(records))
	for i, rec := range records {
		ids[i] = rec.ID
	}
	assert.Equal(t, []string{"c", "a", "b", "d"}, ids)
}

func TestReconcile_Idempotent(t *testing.T) {
	remote := &stubSource{records: []entities.RawRecord{
		rawMeeting("m1", "u1", "Acme", "2024-01-02T10:00:00Z"),
		rawMeeting("m2", "u1", "Northwind", "2024-01-03T10:00:00Z"),
	}}
	journal := &stubSource{records: []entities.RawRecord{
		rawMeeting("m3", "u1", "Acme", "2024-01-01T10:00:00Z"),
	}}

	r := NewReconciler(remote, journal, time.Second, nil)
	first, err := r.Reconcile(context.Background(), "u1")
	require.NoError(t, err)
	second, err := r.Reconcile(context.Background(), "u1")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestReconcile_SurvivesSingleSourceFailure(t *testing.T) {
	remote := &stubSource{err: errors.New("connection refused")}
	journal := &stubSource{records: []entities.RawRecord{
		rawMeeting("m2", "u1", "Acme", "2024-01-01T09:00:00Z"),
	}}

	r := NewReconciler(remote, journal, time.Second, nil)
	records, err := r.Reconcile(context.Background(), "u1")
	require.NoError(t, err)

	require.Len(t, records, 1)
	assert.Equal(t, "m2", records[0].ID)
}

func TestReconcile_BothSourcesFailed(t *testing.T) {
	remote := &stubSource{err: errors.New("connection refused")}
	journal := &stubSource{err: errors.New("redis down")}

	r := NewReconciler(remote, journal, time.Second, nil)
	records, err := r.Reconcile(context.Background(), "u1")
	require.ErrorIs(t, err, entities.ErrAllSourcesFailed)
	assert.Nil(t, records)
}

func TestReconcile_SlowSourceTimesOutAsFailure(t *testing.T) {
	remote := &stubSource{
		records: []entities.RawRecord{rawMeeting("m1", "u1", "Acme", "2024-01-02T10:00:00Z")},
		delay:   200 * time.Millisecond,
	}
	journal := &stubSource{records: []entities.RawRecord{
		rawMeeting("m2", "u1", "Acme", "2024-01-01T09:00:00Z"),
	}}

	r := NewReconciler(remote, journal, 20*time.Millisecond, nil)
	records, err := r.Reconcile(context.Background(), "u1")
	require.NoError(t, err)

	// Only the journal answered in time.
	require.Len(t, records, 1)
	assert.Equal(t, "m2", records[0].ID)
}
