package main

import (
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/samritter/scorekeep/cliparse"
	"github.com/samritter/scorekeep/db"
	"github.com/samritter/scorekeep/metrics"
	"github.com/samritter/scorekeep/middleware"
	"github.com/samritter/scorekeep/router"
)

// defaultSQLitePath is used when no DATABASE_URL is configured.
const defaultSQLitePath = "scorekeep.db"

func main() {
	var err error

	// Load .env if present
	if err := godotenv.Load(); err == nil {
		slog.Info("Loaded environment from .env")
	}

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// A missing database URL does not crash the process; fall back to a
	// local sqlite file and keep serving.
	if cfg.DatabaseURL == "" {
		slog.Warn("DATABASE_URL not set, waiting on local sqlite database", "path", defaultSQLitePath)
		cfg.DatabaseURL = defaultSQLitePath
		cfg.DatabaseType = "sqlite"
	}

	// Connect to the document store
	dbConn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer dbConn.Close()

	// Verify connection
	if err := dbConn.Ping(); err != nil {
		slog.Error("database ping failed", "error", err)
		os.Exit(1)
	}

	// Create schema (tables)
	if err := db.CreateSchema(dbConn); err != nil {
		slog.Error("schema creation failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Database schema ready")

	// Create metrics recorder and router
	rec := metrics.NewRecorder()
	mux := router.NewRouter(dbConn, cfg, rec)

	// Create server
	server := http.Server{
		Handler: middleware.CORS(mux),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
