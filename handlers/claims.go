// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/Mayank8528/claimwise-new2/events"
	"github.com/Mayank8528/claimwise-new2/ident"
	"github.com/Mayank8528/claimwise-new2/middleware"
	"github.com/Mayank8528/claimwise-new2/models"
	"github.com/Mayank8528/claimwise-new2/store"
)

// maxUploadMemory bounds how much of a multipart upload is held in memory
// before spilling to temp files.
const maxUploadMemory = 32 << 20

// uploadFileRoles are the recognized multipart file field names.
var uploadFileRoles = []string{"acord", "police", "survey", "supporting"}

type ClaimsHandler struct {
	store store.ClaimRepository
	hub   *events.Hub
}

func NewClaimsHandler(st store.ClaimRepository, hub *events.Hub) *ClaimsHandler {
	return &ClaimsHandler{store: st, hub: hub}
}

// List handles GET /api/claims
func (h *ClaimsHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter := store.ListFilter{
		Queue:    q.Get("queue"),
		Severity: q.Get("severity"),
		Search:   q.Get("search"),
	}
	if v := q.Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			filter.Limit = n
		}
	}
	if v := q.Get("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			filter.Offset = n
		}
	}

	claims, err := h.store.List(r.Context(), filter)
	if err != nil {
		slog.Error("failed to list claims", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to fetch claims")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, claims)
}

// Detail handles GET /api/claims/:id
func (h *ClaimsHandler) Detail(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "claim id is required")
		return
	}

	claim, err := h.store.Get(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Claim not found")
		return
	}
	if err != nil {
		slog.Error("failed to get claim", "claim_id", id, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to fetch claim")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, claim)
}

// Reassign handles POST /api/claims/:id/reassign
func (h *ClaimsHandler) Reassign(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "claim id is required")
		return
	}

	var req models.ReassignRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	claim, err := h.store.Reassign(r.Context(), id, req.Queue, req.Assignee)
	if errors.Is(err, store.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Claim not found")
		return
	}
	if err != nil {
		slog.Error("failed to reassign claim", "claim_id", id, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to reassign claim")
		return
	}

	// The note travels on the wire but is not part of the claim record;
	// it only lands in the log.
	slog.Info("claim reassigned",
		"claim_id", id,
		"queue", claim.Queue,
		"assignee", claim.Assignee,
		"note", req.Note,
	)

	// Keep connected dashboards consistent without a refetch.
	h.hub.Broadcast(models.ClaimEvent{
		Type: models.EventClaimUpdated,
		Data: claim.Summary(),
	})

	middleware.JSONResponse(w, http.StatusOK, models.ReassignResponse{
		Success: true,
		Message: "Claim reassigned successfully",
		Claim:   claim,
	})
}

// Upload handles POST /api/claims/upload
// Accepts a multipart form with claim fields plus optional document files
// keyed by role (acord, police, survey, supporting).
func (h *ClaimsHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	name := r.FormValue("name")
	email := r.FormValue("email")
	policyNo := r.FormValue("policy_no")
	description := r.FormValue("description")
	claimType := r.FormValue("claim_type")

	if name == "" || email == "" || policyNo == "" || description == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	lossType := claimType
	if lossType == "" {
		lossType = models.DefaultLossType
	}

	now := time.Now().UTC()
	id, err := ident.NewClaimID(now)
	if err != nil {
		slog.Error("failed to generate claim ID", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create claim")
		return
	}

	// Uploaded documents are handed to the analysis pipeline out-of-band;
	// the stored record starts with empty evidence and attachments.
	if r.MultipartForm != nil {
		for _, role := range uploadFileRoles {
			for _, fh := range r.MultipartForm.File[role] {
				slog.Info("claim document received",
					"claim_id", id, "role", role, "filename", fh.Filename, "bytes", fh.Size)
			}
		}
	}

	claim := models.ClaimDetail{
		ClaimSummary: models.ClaimSummary{
			ID:         id,
			Claimant:   name,
			PolicyNo:   policyNo,
			LossType:   lossType,
			CreatedAt:  now,
			Severity:   models.SeverityMedium,
			Confidence: models.DefaultConfidence,
			Queue:      models.DefaultQueue,
			Status:     models.StatusProcessing,
		},
		PolicyNumber: policyNo,
		Email:        email,
		Description:  description,
		Rationale:    models.DefaultRationale,
		Evidence:     []models.Evidence{},
		Attachments:  []models.Attachment{},
	}

	if err := h.store.Insert(r.Context(), claim); err != nil {
		slog.Error("failed to insert claim", "claim_id", id, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create claim")
		return
	}

	slog.Info("claim created", "claim_id", id, "claimant", name, "loss_type", lossType)

	h.hub.Broadcast(models.ClaimEvent{
		Type: models.EventClaimCreated,
		Data: claim.Summary(),
	})

	middleware.JSONResponse(w, http.StatusCreated, models.UploadResponse{ID: id})
}
