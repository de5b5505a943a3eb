package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/segmentio/kafka-go"

	"github.com/khoahotran/network-os/adapters/event"
	"github.com/khoahotran/network-os/adapters/persistence"
	nudgeUC "github.com/khoahotran/network-os/internal/application/usecase/nudge"
	"github.com/khoahotran/network-os/internal/config"
	"github.com/khoahotran/network-os/pkg/logger"
)

func main() {
	fmt.Println("Starting Network OS Worker...")

	// Configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)

	// Database
	dbPool, err := persistence.NewPostgresPool(cfg, appLogger)
	if err != nil {
		log.Fatalf("FATAL: cannot connect Postgres: %v", err)
	}
	defer dbPool.Close()

	// Repositories
	contactRepo := persistence.NewPostgresContactRepo(dbPool, appLogger)
	nudgeRepo := persistence.NewPostgresNudgeRepo(dbPool, appLogger)

	// Worker Use Case
	decayUseCase := nudgeUC.NewGenerateDecayNudgesUseCase(contactRepo, nudgeRepo, appLogger)

	// Kafka Consumer
	importConsumer := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  cfg.Kafka.Brokers,
		Topic:    event.TopicImportEvents,
		GroupID:  "decay-nudge-group",
		MinBytes: 10e3,
		MaxBytes: 10e6,
	})
	defer importConsumer.Close()

	log.Printf("Worker listening on topic '%s'...", event.TopicImportEvents)

	ctx := context.Background()
	for {
		msg, err := importConsumer.ReadMessage(ctx)
		if err != nil {
			log.Printf("ERROR: Failed to read message from Kafka: %v", err)
			continue
		}

		log.Printf("Received message from [Topic: %s], [Key: %s]", msg.Topic, string(msg.Key))

		var payload event.ImportEventPayload
		if err := json.Unmarshal(msg.Value, &payload); err != nil {
			log.Printf("ERROR: Failed to unmarshal event: %v. Skipping.", err)
			commitMessage(importConsumer, msg)
			continue
		}

		log.Printf("Processing event: [%s], created=%d", payload.EventType, payload.CreatedCount)

		output, err := decayUseCase.Execute(ctx)
		if err != nil {
			log.Printf("ERROR: Failed to generate decay nudges: %v", err)
			continue
		}
		log.Printf("Decay pass finished, created %d nudges", output.NudgesCreated)

		commitMessage(importConsumer, msg)
	}
}

func commitMessage(consumer *kafka.Reader, msg kafka.Message) {
	if err := consumer.CommitMessages(context.Background(), msg); err != nil {
		log.Printf("ERROR: Failed to commit message: %v", err)
	}
}
