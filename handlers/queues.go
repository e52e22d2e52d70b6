// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/Mayank8528/claimwise-new2/middleware"
	"github.com/Mayank8528/claimwise-new2/store"
)

type QueueHandler struct {
	store store.ClaimRepository
}

func NewQueueHandler(st store.ClaimRepository) *QueueHandler {
	return &QueueHandler{store: st}
}

// List handles GET /api/queues
func (h *QueueHandler) List(w http.ResponseWriter, r *http.Request) {
	queues, err := h.store.Queues(r.Context())
	if err != nil {
		slog.Error("failed to list queues", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to fetch queues")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, queues)
}
