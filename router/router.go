// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/Mayank8528/claimwise-new2/cliparse"
	"github.com/Mayank8528/claimwise-new2/events"
	"github.com/Mayank8528/claimwise-new2/handlers"
	"github.com/Mayank8528/claimwise-new2/middleware"
	"github.com/Mayank8528/claimwise-new2/models"
	"github.com/Mayank8528/claimwise-new2/store"
)

func NewRouter(st store.ClaimRepository, hub *events.Hub, cfg cliparse.Config) http.Handler {
	mux := http.NewServeMux()

	// Initialize handlers
	claimsHandler := handlers.NewClaimsHandler(st, hub)
	queueHandler := handlers.NewQueueHandler(st)
	feedHandler := handlers.NewFeedHandler(hub)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	mux.HandleFunc("GET /api/ping", func(w http.ResponseWriter, r *http.Request) {
		middleware.JSONResponse(w, http.StatusOK, models.PingResponse{Message: cfg.PingMessage})
	})

	// Claims
	mux.HandleFunc("GET /api/claims", middleware.WithLogging(claimsHandler.List))
	mux.HandleFunc("GET /api/claims/{id}", middleware.WithLogging(claimsHandler.Detail))
	mux.HandleFunc("POST /api/claims/{id}/reassign", middleware.WithLogging(claimsHandler.Reassign))
	mux.HandleFunc("POST /api/claims/upload", middleware.WithLogging(claimsHandler.Upload))

	// Queues
	mux.HandleFunc("GET /api/queues", middleware.WithLogging(queueHandler.List))

	// Claim event feed (long-lived; skips the request logger)
	mux.HandleFunc("GET /ws/claims", feedHandler.Serve)

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("claimwise API v1"))
	})

	return middleware.CORS(mux)
}
