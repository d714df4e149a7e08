package repositories

import (
	"context"

	"github.com/traineedesk/meeting-history/internal/domain/entities"
)

// LocalMeetingJournal scans the transient write journal for meeting records
// that have not (or not yet) reached the remote store. Best effort by
// contract: an empty result is fine and individual malformed entries are
// passed through as candidates for the validator to reject, but a scan that
// cannot reach the journal at all still reports an error.
type LocalMeetingJournal interface {
	ScanMeetings(ctx context.Context, userID string) ([]entities.RawRecord, error)
}
