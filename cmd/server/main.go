package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/khoahotran/network-os/adapters/event"
	httpAdapter "github.com/khoahotran/network-os/adapters/http"
	"github.com/khoahotran/network-os/adapters/persistence"
	contactUC "github.com/khoahotran/network-os/internal/application/usecase/contact"
	importerUC "github.com/khoahotran/network-os/internal/application/usecase/importer"
	nudgeUC "github.com/khoahotran/network-os/internal/application/usecase/nudge"
	profileUC "github.com/khoahotran/network-os/internal/application/usecase/profile"
	"github.com/khoahotran/network-os/internal/config"
	"github.com/khoahotran/network-os/pkg/logger"
	"github.com/khoahotran/network-os/pkg/tracing"
)

func main() {
	fmt.Println("Start Network OS API Server...")

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)

	// Tracing
	if cfg.Otel.OTLPEndpoint != "" {
		tp, err := tracing.NewTracerProvider(cfg, appLogger, "network-os-api")
		if err != nil {
			log.Fatalf("FATAL: cannot init tracer: %v", err)
		}
		defer tp.Shutdown(context.Background())
	}

	// Initialize dependencies
	dbPool, err := persistence.NewPostgresPool(cfg, appLogger)
	if err != nil {
		log.Fatalf("FATAL: cannot connect Postgres: %v", err)
	}
	defer dbPool.Close()

	redisClient, err := persistence.NewRedisClient(cfg, appLogger)
	if err != nil {
		log.Fatalf("FATAL: cannot connect Redis: %v", err)
	}
	defer redisClient.Close()

	kafkaClient, err := event.NewKafkaProducerClient(cfg)
	if err != nil {
		log.Fatalf("FATAL: cannot init Kafka: %v", err)
	}
	defer kafkaClient.Close()

	// Repositories
	contactRepo := persistence.NewPostgresContactRepo(dbPool, appLogger)
	profileRepo := persistence.NewPostgresProfileRepo(dbPool, appLogger)
	nudgeRepo := persistence.NewPostgresNudgeRepo(dbPool, appLogger)
	importLock := persistence.NewRedisImportLock(redisClient)

	// Use Cases
	createContactUseCase := contactUC.NewCreateContactUseCase(contactRepo, kafkaClient, appLogger)
	getContactUseCase := contactUC.NewGetContactUseCase(contactRepo)
	listContactsUseCase := contactUC.NewListContactsUseCase(contactRepo)
	updateContactUseCase := contactUC.NewUpdateContactUseCase(contactRepo)
	deleteContactUseCase := contactUC.NewDeleteContactUseCase(contactRepo)
	profileUseCase := profileUC.NewProfileUseCase(profileRepo)
	nudgeUseCase := nudgeUC.NewNudgeUseCase(nudgeRepo)
	importUseCase := importerUC.NewImportUseCase(contactRepo, profileRepo, importLock, kafkaClient, appLogger)

	// HTTP Handlers
	contactHandler := httpAdapter.NewContactHandler(
		createContactUseCase,
		getContactUseCase,
		listContactsUseCase,
		updateContactUseCase,
		deleteContactUseCase,
		appLogger,
	)
	profileHandler := httpAdapter.NewProfileHandler(profileUseCase, appLogger)
	nudgeHandler := httpAdapter.NewNudgeHandler(nudgeUseCase, appLogger)
	importHandler := httpAdapter.NewImportHandler(importUseCase, appLogger)

	// Setup Gin router
	router := gin.Default()
	router.Use(httpAdapter.ErrorHandler(appLogger))

	api := router.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "UP"}) })

		contacts := api.Group("/contacts")
		{
			contacts.GET("", contactHandler.ListContacts)
			contacts.POST("", contactHandler.CreateContact)
			contacts.POST("/import", importHandler.ImportContacts)
			contacts.GET("/:id", contactHandler.GetContact)
			contacts.PATCH("/:id", contactHandler.UpdateContact)
			contacts.DELETE("/:id", contactHandler.DeleteContact)
		}

		api.GET("/profile", profileHandler.GetProfile)
		api.PUT("/profile", profileHandler.UpdateProfile)

		nudges := api.Group("/nudges")
		{
			nudges.GET("", nudgeHandler.ListNudges)
			nudges.POST("", nudgeHandler.CreateNudge)
			nudges.PATCH("/:id/status", nudgeHandler.UpdateNudgeStatus)
		}
	}

	log.Printf("Server running on port %s", cfg.App.Port)
	if err := router.Run(":" + cfg.App.Port); err != nil {
		log.Fatalf("Cannot run server: %v", err)
	}
}
