package main

import (
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"fin-arcade-api/auth"
	"fin-arcade-api/gamification"
	"fin-arcade-api/handlers"
	"fin-arcade-api/jobs"
	"fin-arcade-api/quiz"
	"fin-arcade-api/storage"
	"fin-arcade-api/utils"
)

func main() {
	// Set up logging with timestamps
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	utils.LogStartup("Fin Arcade API starting...")

	if err := godotenv.Load(); err != nil {
		utils.LogInfo("No .env file found, using environment variables")
	}

	port := utils.GetEnvOrDefault("PORT", "8072")
	dbPath := utils.GetEnvOrDefault("DB_PATH", "./finarcade.db")
	redisURL := os.Getenv("REDIS_URL")

	// Initialize database
	utils.LogStartup("Initializing database connection...")
	store, err := storage.Open(dbPath)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize database: %v", err)
	}

	sessionStore := auth.NewSessionStore()

	emailConfig := auth.LoadEmailConfig()
	emailService := auth.NewEmailService(emailConfig)

	// Background job manager needs redis; without it level-up and streak
	// notifications are skipped entirely.
	var jobManager *jobs.Manager
	var notifier gamification.Notifier
	if redisURL != "" {
		jobManager = jobs.NewManager(redisURL)
		jobManager.RegisterHandlers(emailService)
		go func() {
			if err := jobManager.Start(); err != nil {
				utils.LogError("Job manager stopped: %v", err)
			}
		}()
		notifier = jobs.NewEmailNotifier(jobManager, store, emailService)
	} else {
		utils.LogInfo("REDIS_URL not set, email notifications disabled")
	}

	tracker := gamification.New(store, notifier)
	engine := quiz.New(store, tracker)

	// Set up graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		utils.LogShutdown("Received shutdown signal, cleaning up...")
		if jobManager != nil {
			jobManager.Stop()
		}
		if err := store.Close(); err != nil {
			utils.LogError("Error closing database: %v", err)
		} else {
			utils.LogShutdown("Database connection closed successfully")
		}
		os.Exit(0)
	}()

	// Setup API routes
	utils.LogStartup("Setting up API routes...")
	router := handlers.NewRouter(store, sessionStore, tracker, engine)

	server := &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	utils.LogStartup("Starting HTTP server on port %s...", port)
	utils.LogStartup("Server ready to accept connections at http://localhost:%s", port)

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("[FATAL] Server failed to start: %v", err)
	}
}
