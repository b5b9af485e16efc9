package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"audiobirdle/internal/catalog"
	"audiobirdle/internal/config"
	"audiobirdle/internal/database"
	"audiobirdle/internal/handlers"
	"audiobirdle/internal/repository"
	"audiobirdle/internal/security"
	"audiobirdle/internal/service"
	"audiobirdle/internal/storage"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database with config (supports sqlite, postgres, mysql)
	db, err := database.Initialize(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	log.Printf("Database connection established (type: %s)", cfg.DatabaseType)

	// Run migrations
	if err := db.RunMigrations(cfg.MigrationsPath); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	log.Println("Migrations completed successfully")

	// Load static game data
	loader := catalog.NewLoader(cfg.DataPath, cfg.DataBaseURL)
	data, err := loader.LoadGameData()
	if err != nil {
		log.Fatalf("Failed to load game data: %v", err)
	}

	log.Printf("Game data loaded: %d regions", len(data.Regions))

	gameTZ, err := time.LoadLocation(cfg.GameTimezone)
	if err != nil {
		log.Fatalf("Invalid game timezone %q: %v", cfg.GameTimezone, err)
	}

	// Initialize repositories and storage
	dailyRepo := repository.NewDailyAnswerRepository(db)
	store := storage.NewSQLStore(db)

	// Initialize services
	dailyService := service.NewDailyService(data, loader, dailyRepo, cfg.DailySalt, cfg.DailyTableCacheTTL)
	ledgerService := service.NewLedgerService(store, gameTZ)
	practiceService := service.NewPracticeService(dailyService)

	emailService, err := service.NewEmailService(cfg.AWSRegion, cfg.SESFromEmail, cfg.SESFromName)
	if err != nil {
		log.Fatalf("Failed to initialize email service: %v", err)
	}
	shareService := service.NewShareService(cfg.ShareBaseURL, emailService)

	// Initialize handlers
	gameHandler := handlers.NewGameHandler(dailyService, ledgerService, shareService)
	practiceHandler := handlers.NewPracticeHandler(practiceService)
	settingsHandler := handlers.NewSettingsHandler(dailyService, ledgerService)
	shareHandler := handlers.NewShareHandler(dailyService, ledgerService, shareService)
	adminHandler := handlers.NewAdminHandler(dailyService, cfg.AdminPasswordHash)

	limiter := security.NewRateLimiter(120, time.Minute)
	middleware := handlers.NewMiddleware(cfg.SessionSecret, limiter)

	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	mux.HandleFunc("GET /api/regions", gameHandler.Regions)
	mux.HandleFunc("GET /api/settings/region", settingsHandler.GetRegion)
	mux.HandleFunc("PUT /api/settings/region", settingsHandler.SetRegion)

	mux.HandleFunc("GET /api/game/{region}/today", gameHandler.Today)
	mux.HandleFunc("POST /api/game/{region}/guess", gameHandler.Guess)
	mux.HandleFunc("GET /api/game/{region}/state", gameHandler.State)
	mux.HandleFunc("GET /api/game/{region}/share", gameHandler.Share)
	mux.HandleFunc("DELETE /api/game/{region}/{date}", gameHandler.ResetRecord)
	mux.HandleFunc("GET /api/stats", gameHandler.Stats)
	mux.HandleFunc("DELETE /api/state", gameHandler.ResetAll)
	mux.HandleFunc("POST /api/share/email", shareHandler.Email)

	mux.HandleFunc("POST /api/practice/{region}/start", practiceHandler.Start)
	mux.HandleFunc("GET /api/practice/{region}", practiceHandler.Current)
	mux.HandleFunc("POST /api/practice/{region}/guess", practiceHandler.Guess)
	mux.HandleFunc("POST /api/practice/{region}/next", practiceHandler.Next)
	mux.HandleFunc("POST /api/practice/{region}/retry", practiceHandler.Retry)
	mux.HandleFunc("DELETE /api/practice/{region}", practiceHandler.End)

	mux.HandleFunc("POST /admin/daily", adminHandler.PublishDaily)

	handler := handlers.Logging(middleware.RateLimit(middleware.DeviceIdentity(mux)))

	addr := ":" + cfg.ServerPort
	server := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on %s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
