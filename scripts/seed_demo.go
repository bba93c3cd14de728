package main

import (
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/stayflowhq/stayflow/internal/domain/entities"
	"github.com/stayflowhq/stayflow/internal/infrastructure/database"
	"github.com/stayflowhq/stayflow/pkg/config"
	pkgjwt "github.com/stayflowhq/stayflow/pkg/jwt"
)

// Seeds a demo account with a property, an active session and a few inbound
// guest messages, then prints an access token for exercising the automation
// routes locally.
func main() {
	log.Println("🚀 Seeding demo data...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Println("📦 Connecting to database...")
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.CloseDB(db)

	accountID := uuid.New()

	property := &entities.Property{
		ID:                 uuid.New(),
		AccountID:          accountID,
		Name:               "Seaside Loft",
		Address:            "12 Harbour Street, Brighton",
		CheckInTime:        "3:00 PM",
		CheckOutTime:       "11:00 AM",
		WifiName:           "SeasideLoft",
		WifiPassword:       "harbour12",
		AccessInstructions: "Lockbox to the left of the front door, code 4812",
		ParkingInfo:        "Free street parking after 6 PM",
		EmergencyContact:   "+44 7700 900123",
		FAQs: []entities.PropertyFAQ{
			{ID: uuid.New(), Question: "Is there a hair dryer?", Answer: "Yes, in the bathroom cabinet."},
			{ID: uuid.New(), Question: "Can we check out late?", Answer: "Until noon on request, subject to availability."},
		},
	}
	if err := db.Create(property).Error; err != nil {
		log.Fatalf("Failed to create property: %v", err)
	}

	session := entities.NewSession(accountID, entities.ScenarioPayload{
		PropertyID: &property.ID,
		GuestName:  "Dana Reyes",
		GuestEmail: "dana@example.com",
		CheckIn:    "2026-09-01",
		CheckOut:   "2026-09-05",
	})
	if err := db.Create(session).Error; err != nil {
		log.Fatalf("Failed to create session: %v", err)
	}

	inbound := []string{
		"Hi! What's the wifi password?",
		"The wifi is broken and I can't get in, please fix",
		"Also the kitchen wasn't cleaned before we arrived",
	}
	now := time.Now()
	for i, body := range inbound {
		msg := &entities.Message{
			ID:        uuid.New(),
			SessionID: session.ID,
			Direction: entities.MessageDirectionInbound,
			Body:      body,
			Sender:    "dana@example.com",
			SentAt:    now.Add(time.Duration(i-len(inbound)) * time.Minute),
		}
		if err := db.Create(msg).Error; err != nil {
			log.Fatalf("Failed to create message: %v", err)
		}
	}

	jwtManager := pkgjwt.NewManager(cfg.JWT.AccessSecret, cfg.JWT.AccessExpiry)
	token, err := jwtManager.GenerateAccessToken(accountID, "demo@stayflow.local", "manager")
	if err != nil {
		log.Fatalf("Failed to generate access token: %v", err)
	}

	fmt.Printf("═══════════════════════════════════════════════════════\n")
	fmt.Printf("🏠 Property:   %s\n", property.ID)
	fmt.Printf("🗂  Session:    %s\n", session.ID)
	fmt.Printf("👤 Account:    %s\n", accountID)
	fmt.Printf("🔑 Token:      %s\n", token)
	fmt.Printf("═══════════════════════════════════════════════════════\n")
	fmt.Printf("Trigger a run with:\n")
	fmt.Printf("  curl -X POST -H \"Authorization: Bearer <token>\" \\\n")
	fmt.Printf("    http://localhost:%s/v1/sessions/%s/automation/run\n", cfg.Server.Port, session.ID)
}
