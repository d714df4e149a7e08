package history

import (
	"context"
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/traineedesk/meeting-history/internal/domain/entities"
	"github.com/traineedesk/meeting-history/internal/domain/repositories"
)

const defaultFetchTimeout = 3 * time.Second

// Reconciler assembles a user's meeting history from the remote store and the
// local journal: fetch both concurrently, validate, normalize, dedupe with
// remote-store precedence, sort by recency. The output is deterministic for
// unchanged source data.
type Reconciler struct {
	remote       repositories.RemoteMeetingStore
	journal      repositories.LocalMeetingJournal
	fetchTimeout time.Duration
	logger       *zap.Logger
}

// NewReconciler creates a reconciler over the two meeting sources.
func NewReconciler(
	remote repositories.RemoteMeetingStore,
	journal repositories.LocalMeetingJournal,
	fetchTimeout time.Duration,
	logger *zap.Logger,
) *Reconciler {
	if fetchTimeout <= 0 {
		fetchTimeout = defaultFetchTimeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Reconciler{
		remote:       remote,
		journal:      journal,
		fetchTimeout: fetchTimeout,
		logger:       logger,
	}
}

type fetchResult struct {
	source  entities.RecordSource
	records []entities.RawRecord
	err     error
}

// Reconcile returns the user's meetings ordered by creation time descending.
// A single failed source degrades to the surviving one; ErrAllSourcesFailed
// is returned only when neither source produced data.
func (r *Reconciler) Reconcile(ctx context.Context, userID string) ([]entities.MeetingRecord, error) {
	results := make(chan fetchResult, 2)

	go r.fetch(ctx, entities.SourceRemoteStore, results, func(ctx context.Context) ([]entities.RawRecord, error) {
		return r.remote.ListMeetings(ctx, userID)
	})
	go r.fetch(ctx, entities.SourceLocalJournal, results, func(ctx context.Context) ([]entities.RawRecord, error) {
		return r.journal.ScanMeetings(ctx, userID)
	})

	var candidates []entities.RawRecord
	failed := 0
	for i := 0; i < 2; i++ {
		res := <-results
		if res.err != nil {
			failed++
			r.logger.Warn("meeting source fetch failed",
				zap.String("source", string(res.source)),
				zap.String("user_id", userID),
				zap.Error(res.err),
			)
			continue
		}
		for j := range res.records {
			res.records[j].Source = res.source
		}
		candidates = append(candidates, res.records...)
	}
	if failed == 2 {
		return nil, entities.ErrAllSourcesFailed
	}

	// Merging happens strictly after both fetches have settled so a partial
	// result can never be mistaken for a complete one.
	type pick struct {
		record entities.MeetingRecord
		source entities.RecordSource
	}
	byID := make(map[string]pick, len(candidates))
	for i := range candidates {
		raw := &candidates[i]
		if rule, err := ValidateRecord(raw, userID); err != nil {
			r.logger.Debug("dropping invalid meeting candidate",
				zap.String("rule", rule),
				zap.String("candidate_id", raw.ID),
				zap.String("source", string(raw.Source)),
				zap.Error(err),
			)
			continue
		}
		// The remote store is authoritative; a journal copy of the same id
		// only covers the gap until remote persistence completes.
		if prev, ok := byID[raw.ID]; ok &&
			prev.source == entities.SourceRemoteStore && raw.Source != entities.SourceRemoteStore {
			continue
		}
		byID[raw.ID] = pick{record: NormalizeRecord(raw), source: raw.Source}
	}

	records := make([]entities.MeetingRecord, 0, len(byID))
	for _, p := range byID {
		records = append(records, p.record)
	}
	sort.Slice(records, func(i, j int) bool {
		if !records[i].CreatedAt.Equal(records[j].CreatedAt) {
			return records[i].CreatedAt.After(records[j].CreatedAt)
		}
		// Tie-break on id so repeated runs over unchanged data are
		// byte-for-byte identical.
		return records[i].ID < records[j].ID
	})
	return records, nil
}

func (r *Reconciler) fetch(
	ctx context.Context,
	source entities.RecordSource,
	out chan<- fetchResult,
	list func(context.Context) ([]entities.RawRecord, error),
) {
	ctx, cancel := context.WithTimeout(ctx, r.fetchTimeout)
	defer cancel()

	records, err := list(ctx)
	if err != nil {
		err = fmt.Errorf("%w: %v", entities.ErrAdapterUnavailable, err)
	}
	out <- fetchResult{source: source, records: records, err: err}
}
