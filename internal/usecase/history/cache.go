package history

import (
	"context"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"go.uber.org/zap"

	"github.com/traineedesk/meeting-history/internal/domain/entities"
)

// DefaultCacheTTL is deliberately short: the cache exists to absorb bursts of
// near-simultaneous reads (a dashboard rendering several widgets), not to
// serve long-lived stale data.
const DefaultCacheTTL = time.Second

// ReconcileFunc produces the reconciled meeting set for one user. The
// indirection keeps the cache testable without real adapters.
type ReconcileFunc func(ctx context.Context, userID string) ([]entities.MeetingRecord, error)

// HistoryCache holds the last reconciled meeting set per user behind a short
// TTL. Concurrent readers that observe a stale or absent entry collapse into
// a single in-flight reconciliation, so a read burst costs at most one fetch
// against each source.
type HistoryCache struct {
	reconcile ReconcileFunc
	ttl       time.Duration
	clock     clock.Clock
	logger    *zap.Logger

	mu      sync.Mutex
	entries map[string]*cacheEntry
}

type cacheEntry struct {
	records  []entities.MeetingRecord
	storedAt time.Time
	hasData  bool
	stale    bool
	flight   *refreshFlight
}

type refreshFlight struct {
	done    chan struct{}
	records []entities.MeetingRecord
	// superseded is set when an invalidation arrives while the refresh is
	// still in flight. The result is kept (it reflects real data) but the
	// entry is immediately marked stale.
	superseded bool
}

// NewHistoryCache creates a cache around the given reconcile function. The
// clock is injected so TTL behavior is deterministic under test.
func NewHistoryCache(reconcile ReconcileFunc, ttl time.Duration, clk clock.Clock, logger *zap.Logger) *HistoryCache {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	if clk == nil {
		clk = clock.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HistoryCache{
		reconcile: reconcile,
		ttl:       ttl,
		clock:     clk,
		logger:    logger,
		entries:   make(map[string]*cacheEntry),
	}
}

// Get returns the user's reconciled meetings, refreshing when the entry is
// absent, stale, past TTL, or forceRefresh is set. Data-quality and source
// failures never surface as errors: at worst the caller sees the previous
// known-good slice, or an empty one.
func (c *HistoryCache) Get(ctx context.Context, userID string, forceRefresh bool) []entities.MeetingRecord {
	c.mu.Lock()
	entry, ok := c.entries[userID]
	if !ok {
		entry = &cacheEntry{}
		c.entries[userID] = entry
	}

	if !forceRefresh && entry.hasData && !entry.stale && c.clock.Since(entry.storedAt) < c.ttl {
		records := entry.records
		c.mu.Unlock()
		return records
	}

	if entry.flight != nil {
		flight := entry.flight
		c.mu.Unlock()
		return awaitFlight(ctx, flight)
	}

	flight := &refreshFlight{done: make(chan struct{})}
	entry.flight = flight
	c.mu.Unlock()

	c.runRefresh(ctx, userID, flight)
	return flight.records
}

// Invalidate drops the user's entry. A refresh already in flight is left to
// finish; readers arriving after this call start a fresh one.
func (c *HistoryCache) Invalidate(userID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.invalidateLocked(userID)
}

// InvalidateAll drops every entry.
func (c *HistoryCache) InvalidateAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for userID := range c.entries {
		c.invalidateLocked(userID)
	}
}

func (c *HistoryCache) invalidateLocked(userID string) {
	entry, ok := c.entries[userID]
	if !ok {
		return
	}
	if entry.flight != nil {
		// Detach so the next Get starts its own refresh instead of awaiting
		// a result computed before this invalidation was requested.
		entry.flight.superseded = true
		entry.flight = nil
	}
	entry.records = nil
	entry.hasData = false
	entry.stale = false
	entry.storedAt = time.Time{}
}

func (c *HistoryCache) runRefresh(ctx context.Context, userID string, flight *refreshFlight) {
	records, err := c.reconcile(ctx, userID)

	c.mu.Lock()
	defer func() {
		close(flight.done)
		c.mu.Unlock()
	}()

	entry, ok := c.entries[userID]
	if ok && entry.flight == flight {
		entry.flight = nil
	}

	if err != nil {
		// Both sources failed. Serve whatever we still hold, even past TTL;
		// the entry timestamp is left untouched so the next read retries.
		if ok && entry.hasData {
			c.logger.Warn("all meeting sources failed, serving last known-good history",
				zap.String("user_id", userID),
				zap.Error(err),
			)
			flight.records = entry.records
			return
		}
		c.logger.Warn("all meeting sources failed with no cached history",
			zap.String("user_id", userID),
			zap.Error(err),
		)
		flight.records = []entities.MeetingRecord{}
		return
	}

	flight.records = records
	if flight.superseded && entry != nil && entry.hasData && !entry.stale {
		// A refresh started after the invalidation has already landed;
		// keep the newer result.
		return
	}
	if !ok {
		entry = &cacheEntry{}
		c.entries[userID] = entry
	}
	entry.records = records
	entry.storedAt = c.clock.Now()
	entry.hasData = true
	entry.stale = flight.superseded
}

func awaitFlight(ctx context.Context, flight *refreshFlight) []entities.MeetingRecord {
	select {
	case <-flight.done:
		return flight.records
	case <-ctx.Done():
		return nil
	}
}
