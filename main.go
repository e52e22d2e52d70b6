package main

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/Mayank8528/claimwise-new2/cliparse"
	"github.com/Mayank8528/claimwise-new2/db"
	"github.com/Mayank8528/claimwise-new2/events"
	"github.com/Mayank8528/claimwise-new2/router"
	"github.com/Mayank8528/claimwise-new2/store"
)

func main() {
	var err error

	// Load .env if present (development convenience)
	if err := godotenv.Load(); err == nil {
		slog.Info("loaded .env file")
	}

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Pick the claim repository
	var st store.ClaimRepository
	switch cfg.DatabaseType {
	case "memory":
		st = store.NewMemoryStore(store.SeedClaims(), store.SeedQueues())
		slog.Info("Using in-memory claim store")
	case "sqlite", "postgres":
		// Driver registration names match the config values
		dbConn, err := sql.Open(cfg.DatabaseType, cfg.DatabaseURL)
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
		if err := db.CreateSchema(dbConn, cfg.DatabaseType); err != nil {
			slog.Error("schema creation failed", "error", err)
			os.Exit(1)
		}

		sqlStore := store.NewSQLStore(dbConn)
		if err := sqlStore.Seed(context.Background()); err != nil {
			slog.Error("store seeding failed", "error", err)
			os.Exit(1)
		}
		st = sqlStore
		slog.Info("Database schema ready", "type", cfg.DatabaseType)
	}

	// Event hub for the claim feed
	hub := events.NewHub()

	// Create router
	mux := router.NewRouter(st, hub, cfg)

	// Create server
	server := http.Server{
		Handler: mux,
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		hub.Close()
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
