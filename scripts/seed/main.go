package main

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/traineedesk/meeting-history/internal/adapter/repository"
	"github.com/traineedesk/meeting-history/internal/domain/entities"
	rediscache "github.com/traineedesk/meeting-history/internal/infrastructure/cache"
	"github.com/traineedesk/meeting-history/internal/infrastructure/database"
	"github.com/traineedesk/meeting-history/pkg/config"
)

// Seeds a handful of persisted meetings plus a few journal-only entries for
// one demo user, standing in for the application's write side during local
// development.
func main() {
	log.Println("🚀 Seeding demo meeting history...")

	// Load configuration from .env
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize database
	log.Println("📦 Connecting to database...")
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.CloseDB(db)

	// Initialize Redis
	log.Println("📦 Connecting to Redis...")
	redisClient, err := rediscache.NewRedisClient(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	ctx := context.Background()
	ownerID := "demo-user"
	now := time.Now().UTC()

	log.Println("🗑️  Cleaning up existing demo records...")
	db.Where("owner_id = ?", ownerID).Delete(&repository.MeetingRow{})

	projects := []string{"Acme Billing Revamp", "Northwind CRM", "Fitlife Onboarding"}
	kinds := []string{"voice", "voice_with_transcript", "voice-only"}

	log.Println("📝 Writing persisted meetings...")
	for i := 0; i < 6; i++ {
		counts, _ := json.Marshal(entities.MessageCounts{Total: 24 + i, FromUser: 12, FromCounterpart: 12 + i})
		participants, _ := json.Marshal(map[string][]string{
			"names": {"Jordan Reyes", "Client Stakeholder"},
			"roles": {"business analyst", "product owner"},
			"ids":   {ownerID, uuid.New().String()},
		})
		row := repository.MeetingRow{
			ID:              uuid.New().String(),
			OwnerID:         ownerID,
			ProjectLabel:    projects[i%len(projects)],
			CreatedAt:       now.Add(-time.Duration(i*26) * time.Hour),
			UpdatedAt:       now.Add(-time.Duration(i*26) * time.Hour),
			SessionKind:     kinds[i%len(kinds)],
			DurationSeconds: 900 + 120*i,
			MessageCounts:   counts,
			Participants:    participants,
			SummaryText:     "Requirements walkthrough with follow-up actions captured.",
			Status:          string(entities.MeetingStatusCompleted),
		}
		if err := db.Create(&row).Error; err != nil {
			log.Fatalf("❌ Failed to seed meeting %s: %v", row.ID, err)
		}
	}

	log.Println("📒 Writing journal-only entries...")
	journal := repository.NewLocalJournal(redisClient, cfg.History.JournalPrefix, nil)
	for i := 0; i < 2; i++ {
		raw := entities.RawRecord{
			ID:           uuid.New().String(),
			OwnerID:      ownerID,
			ProjectLabel: projects[i%len(projects)],
			CreatedAt:    now.Add(-time.Duration(i) * time.Hour).Format(time.RFC3339),
			SessionKind:  "voice_with_transcript",
			Status:       string(entities.MeetingStatusInProgress),
		}
		if err := journal.Append(ctx, ownerID, raw, cfg.History.JournalTTL); err != nil {
			log.Fatalf("❌ Failed to seed journal entry: %v", err)
		}
	}

	log.Printf("✅ Seeded history for user %q", ownerID)
}
