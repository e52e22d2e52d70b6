// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Mayank8528/claimwise-new2/events"
	"github.com/Mayank8528/claimwise-new2/models"
	"github.com/Mayank8528/claimwise-new2/testutil"
)

func TestListClaims(t *testing.T) {
	handler := NewClaimsHandler(testutil.NewSeededStore(), events.NewHub())

	tests := []struct {
		name      string
		query     string
		wantIDs   []string
		wantEmpty bool
	}{
		{
			name:    "no filters",
			query:   "",
			wantIDs: []string{"CLM-2024-001", "CLM-2024-002"},
		},
		{
			name:    "severity filter",
			query:   "?severity=High",
			wantIDs: []string{"CLM-2024-001"},
		},
		{
			name:    "queue filter",
			query:   "?queue=Standard",
			wantIDs: []string{"CLM-2024-002"},
		},
		{
			name:    "search matches claimant case-insensitively",
			query:   "?search=smith",
			wantIDs: []string{"CLM-2024-001"},
		},
		{
			name:    "search matches identifier",
			query:   "?search=2024-002",
			wantIDs: []string{"CLM-2024-002"},
		},
		{
			name:    "pagination offset",
			query:   "?offset=1",
			wantIDs: []string{"CLM-2024-002"},
		},
		{
			name:      "out-of-range offset yields empty 200",
			query:     "?offset=50",
			wantEmpty: true,
		},
		{
			name:      "conjunctive filters with no match",
			query:     "?severity=High&queue=Standard",
			wantEmpty: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("GET", "/api/claims"+tt.query, nil, nil)
			w := httptest.NewRecorder()
			handler.List(w, req)

			testutil.AssertStatus(t, w, http.StatusOK)

			var claims []models.ClaimSummary
			testutil.AssertJSON(t, w, &claims)

			if tt.wantEmpty {
				if len(claims) != 0 {
					t.Errorf("expected empty list, got %v", claims)
				}
				return
			}
			if len(claims) != len(tt.wantIDs) {
				t.Fatalf("expected %d claims, got %d", len(tt.wantIDs), len(claims))
			}
			for i, want := range tt.wantIDs {
				if claims[i].ID != want {
					t.Errorf("claim %d: expected %s, got %s", i, want, claims[i].ID)
				}
			}
		})
	}
}

func TestGetClaimDetail(t *testing.T) {
	handler := NewClaimsHandler(testutil.NewSeededStore(), events.NewHub())

	req := testutil.MakeRequest("GET", "/api/claims/CLM-2024-001", nil, nil)
	req.SetPathValue("id", "CLM-2024-001")
	w := httptest.NewRecorder()
	handler.Detail(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var claim models.ClaimDetail
	testutil.AssertJSON(t, w, &claim)
	if claim.Claimant != "John Smith" {
		t.Errorf("expected John Smith, got %s", claim.Claimant)
	}
	if claim.Email != "john.smith@example.com" {
		t.Errorf("expected detail fields, got %+v", claim)
	}
	if len(claim.Evidence) != 2 || len(claim.Attachments) != 2 {
		t.Errorf("expected evidence and attachments, got %d/%d", len(claim.Evidence), len(claim.Attachments))
	}
}

func TestGetClaimDetail_NotFound(t *testing.T) {
	handler := NewClaimsHandler(testutil.NewSeededStore(), events.NewHub())

	req := testutil.MakeRequest("GET", "/api/claims/CLM-9999-999", nil, nil)
	req.SetPathValue("id", "CLM-9999-999")
	w := httptest.NewRecorder()
	handler.Detail(w, req)

	testutil.AssertStatus(t, w, http.StatusNotFound)

	var resp models.ErrorResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Message != "Claim not found" {
		t.Errorf("expected 'Claim not found', got %q", resp.Message)
	}
}

func TestReassignClaim(t *testing.T) {
	st := testutil.NewSeededStore()
	handler := NewClaimsHandler(st, events.NewHub())

	req := testutil.MakeRequest("POST", "/api/claims/CLM-2024-001/reassign", models.ReassignRequest{
		Queue:    "Priority",
		Assignee: "Alice",
		Note:     "escalating per adjuster request",
	}, nil)
	req.SetPathValue("id", "CLM-2024-001")
	w := httptest.NewRecorder()
	handler.Reassign(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.ReassignResponse
	testutil.AssertJSON(t, w, &resp)
	if !resp.Success {
		t.Error("expected success=true")
	}
	if resp.Message != "Claim reassigned successfully" {
		t.Errorf("unexpected message %q", resp.Message)
	}
	if resp.Claim.Queue != "Priority" || resp.Claim.Assignee != "Alice" {
		t.Errorf("response claim not updated: %+v", resp.Claim.ClaimSummary)
	}

	// Detail fetch reflects the change; other fields untouched
	detailReq := testutil.MakeRequest("GET", "/api/claims/CLM-2024-001", nil, nil)
	detailReq.SetPathValue("id", "CLM-2024-001")
	w = httptest.NewRecorder()
	handler.Detail(w, detailReq)

	var claim models.ClaimDetail
	testutil.AssertJSON(t, w, &claim)
	if claim.Queue != "Priority" || claim.Assignee != "Alice" {
		t.Error("reassignment did not persist")
	}
	if claim.Severity != models.SeverityHigh || claim.Claimant != "John Smith" {
		t.Error("reassignment mutated unrelated fields")
	}
}

func TestReassignClaim_NotFound(t *testing.T) {
	st := testutil.NewSeededStore()
	handler := NewClaimsHandler(st, events.NewHub())

	req := testutil.MakeRequest("POST", "/api/claims/CLM-9999-999/reassign", models.ReassignRequest{
		Queue: "Priority",
	}, nil)
	req.SetPathValue("id", "CLM-9999-999")
	w := httptest.NewRecorder()
	handler.Reassign(w, req)

	testutil.AssertStatus(t, w, http.StatusNotFound)
}

func TestReassignClaim_InvalidJSON(t *testing.T) {
	handler := NewClaimsHandler(testutil.NewSeededStore(), events.NewHub())

	req := httptest.NewRequest("POST", "/api/claims/CLM-2024-001/reassign", strings.NewReader("not json"))
	req.SetPathValue("id", "CLM-2024-001")
	w := httptest.NewRecorder()
	handler.Reassign(w, req)

	testutil.AssertStatus(t, w, http.StatusBadRequest)
}

func TestUploadClaim(t *testing.T) {
	st := testutil.NewSeededStore()
	handler := NewClaimsHandler(st, events.NewHub())

	req := testutil.MakeUploadRequest(t, "/api/claims/upload", map[string]string{
		"name":         "Jane Doe",
		"email":        "jane@x.com",
		"policy_no":    "POL-9",
		"date_of_loss": "2026-08-01",
		"claim_type":   "Auto Accident",
		"description":  "test",
	}, map[string]string{
		"acord":  "fnol_form.pdf",
		"police": "police_report.pdf",
	})
	w := httptest.NewRecorder()
	handler.Upload(w, req)

	testutil.AssertStatus(t, w, http.StatusCreated)

	var resp models.UploadResponse
	testutil.AssertJSON(t, w, &resp)
	if !strings.HasPrefix(resp.ID, "CLM-") {
		t.Fatalf("expected CLM-* identifier, got %q", resp.ID)
	}

	// Fresh record carries the placeholder defaults
	detailReq := testutil.MakeRequest("GET", "/api/claims/"+resp.ID, nil, nil)
	detailReq.SetPathValue("id", resp.ID)
	w = httptest.NewRecorder()
	handler.Detail(w, detailReq)
	testutil.AssertStatus(t, w, http.StatusOK)

	var claim models.ClaimDetail
	testutil.AssertJSON(t, w, &claim)
	if claim.Status != models.StatusProcessing {
		t.Errorf("expected Processing, got %s", claim.Status)
	}
	if claim.Severity != models.SeverityMedium {
		t.Errorf("expected Medium, got %s", claim.Severity)
	}
	if claim.Confidence != models.DefaultConfidence {
		t.Errorf("expected confidence 0.65, got %v", claim.Confidence)
	}
	if claim.Queue != models.DefaultQueue {
		t.Errorf("expected Standard queue, got %s", claim.Queue)
	}
	if len(claim.Evidence) != 0 || len(claim.Attachments) != 0 {
		t.Error("fresh claim must start with empty evidence and attachments")
	}
	if claim.LossType != "Auto Accident" {
		t.Errorf("expected claim_type carried to loss_type, got %s", claim.LossType)
	}
}

func TestUploadClaim_DefaultsLossType(t *testing.T) {
	handler := NewClaimsHandler(testutil.NewSeededStore(), events.NewHub())

	req := testutil.MakeUploadRequest(t, "/api/claims/upload", map[string]string{
		"name":        "Jane Doe",
		"email":       "jane@x.com",
		"policy_no":   "POL-9",
		"description": "test",
	}, nil)
	w := httptest.NewRecorder()
	handler.Upload(w, req)
	testutil.AssertStatus(t, w, http.StatusCreated)

	var resp models.UploadResponse
	testutil.AssertJSON(t, w, &resp)

	detailReq := testutil.MakeRequest("GET", "/api/claims/"+resp.ID, nil, nil)
	detailReq.SetPathValue("id", resp.ID)
	w = httptest.NewRecorder()
	handler.Detail(w, detailReq)

	var claim models.ClaimDetail
	testutil.AssertJSON(t, w, &claim)
	if claim.LossType != models.DefaultLossType {
		t.Errorf("expected General loss type, got %s", claim.LossType)
	}
}

func TestUploadClaim_MissingFields(t *testing.T) {
	valid := map[string]string{
		"name":        "Jane Doe",
		"email":       "jane@x.com",
		"policy_no":   "POL-9",
		"description": "test",
	}

	for _, missing := range []string{"name", "email", "policy_no", "description"} {
		t.Run("missing "+missing, func(t *testing.T) {
			st := testutil.NewSeededStore()
			handler := NewClaimsHandler(st, events.NewHub())

			fields := map[string]string{}
			for k, v := range valid {
				if k != missing {
					fields[k] = v
				}
			}

			req := testutil.MakeUploadRequest(t, "/api/claims/upload", fields, nil)
			w := httptest.NewRecorder()
			handler.Upload(w, req)

			testutil.AssertStatus(t, w, http.StatusBadRequest)

			var resp models.ErrorResponse
			testutil.AssertJSON(t, w, &resp)
			if resp.Message != "Missing required fields" {
				t.Errorf("expected 'Missing required fields', got %q", resp.Message)
			}

			// Nothing stored
			listReq := testutil.MakeRequest("GET", "/api/claims", nil, nil)
			lw := httptest.NewRecorder()
			handler.List(lw, listReq)
			var claims []models.ClaimSummary
			testutil.AssertJSON(t, lw, &claims)
			if len(claims) != 2 {
				t.Errorf("rejected upload must not create a record, got %d claims", len(claims))
			}
		})
	}
}

func TestUploadClaim_NotIdempotent(t *testing.T) {
	handler := NewClaimsHandler(testutil.NewSeededStore(), events.NewHub())

	fields := map[string]string{
		"name":        "Jane Doe",
		"email":       "jane@x.com",
		"policy_no":   "POL-9",
		"description": "test",
	}

	var ids []string
	for i := 0; i < 2; i++ {
		req := testutil.MakeUploadRequest(t, "/api/claims/upload", fields, nil)
		w := httptest.NewRecorder()
		handler.Upload(w, req)
		testutil.AssertStatus(t, w, http.StatusCreated)

		var resp models.UploadResponse
		testutil.AssertJSON(t, w, &resp)
		ids = append(ids, resp.ID)
	}

	if ids[0] == ids[1] {
		t.Errorf("identical resubmission must create a distinct record, both got %s", ids[0])
	}
}

func TestListQueues(t *testing.T) {
	handler := NewQueueHandler(testutil.NewSeededStore())

	req := testutil.MakeRequest("GET", "/api/queues", nil, nil)
	w := httptest.NewRecorder()
	handler.List(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var queues []models.Queue
	testutil.AssertJSON(t, w, &queues)
	if len(queues) != 5 {
		t.Fatalf("expected 5 queues, got %d", len(queues))
	}
	if queues[0].Name != "Auto Claims" || len(queues[0].Assignees) != 3 {
		t.Errorf("unexpected first queue: %+v", queues[0])
	}
}
