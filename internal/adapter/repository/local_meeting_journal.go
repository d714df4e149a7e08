package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/traineedesk/meeting-history/internal/domain/entities"
)

const journalScanBatch = 100

// LocalJournal is the Redis-backed transient write journal. Records written
// by the application land here first (and stay briefly) to bridge the gap
// before remote persistence completes or when the remote store is down.
// Entries live under "<prefix>:<userID>:<recordID>".
type LocalJournal struct {
	rdb    *redis.Client
	prefix string
	logger *zap.Logger
}

// NewLocalJournal creates the journal adapter over an existing Redis client.
func NewLocalJournal(rdb *redis.Client, prefix string, logger *zap.Logger) *LocalJournal {
	if prefix == "" {
		prefix = "journal:meeting"
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LocalJournal{rdb: rdb, prefix: prefix, logger: logger}
}

// ScanMeetings enumerates journal blobs under the user's key prefix. Entries
// that fail to decode become empty candidates for the validator to reject,
// so one corrupt blob never aborts the scan; only an unreachable Redis is an
// error.
func (j *LocalJournal) ScanMeetings(ctx context.Context, userID string) ([]entities.RawRecord, error) {
	pattern := fmt.Sprintf("%s:%s:*", j.prefix, userID)

	var keys []string
	iter := j.rdb.Scan(ctx, 0, pattern, journalScanBatch).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("scan journal %q: %w", pattern, err)
	}
	if len(keys) == 0 {
		return nil, nil
	}

	values, err := j.rdb.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("read journal entries: %w", err)
	}

	records := make([]entities.RawRecord, 0, len(values))
	for i, value := range values {
		payload, ok := value.(string)
		if !ok {
			// Expired between scan and read.
			continue
		}
		records = append(records, j.decodeEntry(keys[i], []byte(payload)))
	}
	return records, nil
}

func (j *LocalJournal) decodeEntry(key string, payload []byte) entities.RawRecord {
	var raw entities.RawRecord
	if err := json.Unmarshal(payload, &raw); err != nil {
		j.logger.Debug("undecodable journal entry",
			zap.String("key", key),
			zap.Error(err),
		)
		return entities.RawRecord{}
	}
	return raw
}

// Append writes one journal entry with an expiry. The reconciliation core
// never calls this; it serves the application's write side and the dev
// seeder.
func (j *LocalJournal) Append(ctx context.Context, userID string, raw entities.RawRecord, ttl time.Duration) error {
	if raw.ID == "" {
		return entities.ErrMalformedRecord
	}
	payload, err := json.Marshal(raw)
	if err != nil {
		return fmt.Errorf("encode journal entry: %w", err)
	}
	key := fmt.Sprintf("%s:%s:%s", j.prefix, userID, raw.ID)
	if err := j.rdb.Set(ctx, key, payload, ttl).Err(); err != nil {
		return fmt.Errorf("write journal entry %s: %w", key, err)
	}
	return nil
}
