package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	backoff "github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/traineedesk/meeting-history/internal/domain/entities"
	"github.com/traineedesk/meeting-history/internal/domain/repositories"
)

// MeetingRow is the gorm model for the authoritative meeting_records table.
// List-valued fields live in JSONB columns; corrupt cells decode to nil and
// get their defaults downstream instead of failing the whole list.
type MeetingRow struct {
	ID              string         `json:"id" gorm:"type:varchar(64);primaryKey"`
	OwnerID         string         `json:"owner_id" gorm:"type:varchar(64);not null;index"`
	ProjectLabel    string         `json:"project_label" gorm:"type:text"`
	ProjectID       string         `json:"project_id" gorm:"type:varchar(64)"`
	CreatedAt       time.Time      `json:"created_at" gorm:"not null;index"`
	UpdatedAt       time.Time      `json:"updated_at"`
	SessionKind     string         `json:"session_kind" gorm:"type:varchar(32)"`
	DurationSeconds int            `json:"duration_seconds"`
	MessageCounts   datatypes.JSON `json:"message_counts" gorm:"type:jsonb;default:'{}'"`
	Participants    datatypes.JSON `json:"participants" gorm:"type:jsonb;default:'{}'"`
	Transcript      datatypes.JSON `json:"transcript" gorm:"type:jsonb;default:'[]'"`
	TopicsDiscussed datatypes.JSON `json:"topics_discussed" gorm:"type:jsonb;default:'[]'"`
	KeyInsights     datatypes.JSON `json:"key_insights" gorm:"type:jsonb;default:'[]'"`
	SummaryText     string         `json:"summary_text" gorm:"type:text"`
	Status          string         `json:"status" gorm:"type:varchar(16)"`
}

// TableName overrides the gorm table name
func (MeetingRow) TableName() string {
	return "meeting_records"
}

// rowParticipants is the shape of the participants JSONB column.
type rowParticipants struct {
	Names []string `json:"names"`
	Roles []string `json:"roles"`
	IDs   []string `json:"ids"`
}

type remoteMeetingStore struct {
	db       *gorm.DB
	maxRetry uint64
	logger   *zap.Logger
}

// NewRemoteMeetingStore creates the Postgres-backed remote store adapter.
// Transient query failures are retried with exponential backoff before the
// fetch is reported as unavailable.
func NewRemoteMeetingStore(db *gorm.DB, maxRetry uint64, logger *zap.Logger) repositories.RemoteMeetingStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &remoteMeetingStore{db: db, maxRetry: maxRetry, logger: logger}
}

// ListMeetings returns the user's persisted meeting records as raw candidates.
func (r *remoteMeetingStore) ListMeetings(ctx context.Context, userID string) ([]entities.RawRecord, error) {
	var rows []MeetingRow
	operation := func() error {
		rows = rows[:0]
		return r.db.WithContext(ctx).
			Where("owner_id = ?", userID).
			Order("created_at DESC").
			Find(&rows).Error
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), r.maxRetry), ctx)
	if err := backoff.Retry(operation, policy); err != nil {
		return nil, fmt.Errorf("list meetings for user %s: %w", userID, err)
	}

	records := make([]entities.RawRecord, 0, len(rows))
	for i := range rows {
		records = append(records, rows[i].toRaw())
	}
	return records, nil
}

// toRaw converts a persisted row into the loose candidate shape the
// reconciliation pipeline consumes.
func (row *MeetingRow) toRaw() entities.RawRecord {
	raw := entities.RawRecord{
		ID:           row.ID,
		OwnerID:      row.OwnerID,
		ProjectLabel: row.ProjectLabel,
		ProjectID:    row.ProjectID,
		SessionKind:  row.SessionKind,
		SummaryText:  row.SummaryText,
		Status:       row.Status,
	}
	if !row.CreatedAt.IsZero() {
		raw.CreatedAt = row.CreatedAt.UTC().Format(time.RFC3339Nano)
	}
	if !row.UpdatedAt.IsZero() {
		raw.UpdatedAt = row.UpdatedAt.UTC().Format(time.RFC3339Nano)
	}

	duration := row.DurationSeconds
	raw.DurationSeconds = &duration

	if len(row.MessageCounts) > 0 {
		var counts entities.MessageCounts
		if err := json.Unmarshal(row.MessageCounts, &counts); err == nil {
			raw.MessageCounts = &counts
		}
	}
	if len(row.Participants) > 0 {
		var participants rowParticipants
		if err := json.Unmarshal(row.Participants, &participants); err == nil {
			raw.ParticipantNames = participants.Names
			raw.ParticipantRoles = participants.Roles
			raw.ParticipantIDs = participants.IDs
		}
	}
	if len(row.Transcript) > 0 {
		_ = json.Unmarshal(row.Transcript, &raw.Transcript)
	}
	if len(row.TopicsDiscussed) > 0 {
		_ = json.Unmarshal(row.TopicsDiscussed, &raw.TopicsDiscussed)
	}
	if len(row.KeyInsights) > 0 {
		_ = json.Unmarshal(row.KeyInsights, &raw.KeyInsights)
	}
	return raw
}
