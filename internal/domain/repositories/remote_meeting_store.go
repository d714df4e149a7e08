package repositories

import (
	"context"

	"github.com/traineedesk/meeting-history/internal/domain/entities"
)

// RemoteMeetingStore lists a user's persisted meeting records from the
// authoritative backend. It is fallible: backend unavailability surfaces as
// an error and the reconciler degrades to journal-only data.
type RemoteMeetingStore interface {
	ListMeetings(ctx context.Context, userID string) ([]entities.RawRecord, error)
}
