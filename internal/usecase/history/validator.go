package history

import (
	"strconv"
	"time"

	"github.com/traineedesk/meeting-history/internal/domain/entities"
)

// validationRule is one named predicate in the ordered acceptance pipeline.
type validationRule struct {
	name  string
	check func(raw *entities.RawRecord, userID string) error
}

// validationRules run in order and short-circuit on the first failure. New
// acceptance rules slot in here without touching reconciler logic.
var validationRules = []validationRule{
	{
		name: "structured",
		check: func(raw *entities.RawRecord, _ string) error {
			if raw == nil || raw.ID == "" {
				return entities.ErrMalformedRecord
			}
			return nil
		},
	},
	{
		// Guards against cross-user leakage when reading a shared journal.
		name: "ownership",
		check: func(raw *entities.RawRecord, userID string) error {
			if raw.OwnerID != userID {
				return entities.ErrOwnershipMismatch
			}
			return nil
		},
	},
	{
		name: "project-identity",
		check: func(raw *entities.RawRecord, _ string) error {
			if raw.ProjectLabel == "" && raw.ProjectID == "" {
				return entities.ErrMissingProjectIdentity
			}
			return nil
		},
	},
	{
		// Recency ordering depends on the timestamp, so it is rejected
		// rather than defaulted.
		name: "timestamp",
		check: func(raw *entities.RawRecord, _ string) error {
			if _, ok := recordTimestamp(raw); !ok {
				return entities.ErrMissingTimestamp
			}
			return nil
		},
	},
}

// ValidateRecord runs a candidate through the acceptance pipeline. On
// rejection it returns the name of the failing rule alongside the reason so
// callers can log rejects without inspecting the error chain.
func ValidateRecord(raw *entities.RawRecord, userID string) (string, error) {
	for _, rule := range validationRules {
		if err := rule.check(raw, userID); err != nil {
			return rule.name, err
		}
	}
	return "", nil
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// recordTimestamp resolves the candidate's creation time, falling back to the
// last-updated time when creation is absent. Accepts RFC3339 variants plus
// unix epoch milliseconds, which older journal entries carry.
func recordTimestamp(raw *entities.RawRecord) (time.Time, bool) {
	for _, value := range []string{raw.CreatedAt, raw.UpdatedAt} {
		if value == "" {
			continue
		}
		for _, layout := range timestampLayouts {
			if t, err := time.Parse(layout, value); err == nil {
				return t.UTC(), true
			}
		}
		if ms, err := strconv.ParseInt(value, 10, 64); err == nil && ms > 0 {
			return time.UnixMilli(ms).UTC(), true
		}
	}
	return time.Time{}, false
}
