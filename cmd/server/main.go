package main

import (
	"database/sql"
	"flag"
	"log"
	"net/http"
	"time"

	api "libtrack-backend/internal/api/http"
	"libtrack-backend/internal/config"
	"libtrack-backend/internal/logger"
	"libtrack-backend/internal/repository/postgres"
	"libtrack-backend/internal/service"

	"github.com/go-playground/validator/v10"
	_ "github.com/lib/pq"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Libtrack Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	// Initialize Database
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Services
	catalogSvc := service.NewCatalogService(store.BookRepository)
	memberSvc := service.NewMemberService(store.UserRepository, store.CheckoutRepository)
	circulationSvc := service.NewCirculationService(db, store.BookRepository, store.UserRepository, store.CheckoutRepository)
	dashboardSvc := service.NewDashboardService(store.StatsRepository)

	// Initialize HTTP handlers
	v := validator.New()
	bookHandler := api.NewBookHandler(catalogSvc, circulationSvc, v)
	userHandler := api.NewUserHandler(memberSvc, v)
	dashboardHandler := api.NewDashboardHandler(dashboardSvc)

	router := api.NewRouter(bookHandler, userHandler, dashboardHandler)

	srv := &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := srv.ListenAndServe(); err != nil {
		logger.Error("Failed to serve HTTP", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}
