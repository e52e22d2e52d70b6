// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Mayank8528/claimwise-new2/models"
	"github.com/Mayank8528/claimwise-new2/store"
)

// NewSeededStore returns a memory store loaded with the demo claims and
// queues.
func NewSeededStore() *store.MemoryStore {
	return store.NewMemoryStore(store.SeedClaims(), store.SeedQueues())
}

// TestClaim builds a minimal valid claim record for store fixtures.
func TestClaim(id, claimant, policyNo string) models.ClaimDetail {
	return models.ClaimDetail{
		ClaimSummary: models.ClaimSummary{
			ID:         id,
			Claimant:   claimant,
			PolicyNo:   policyNo,
			LossType:   models.DefaultLossType,
			CreatedAt:  time.Now().UTC(),
			Severity:   models.SeverityMedium,
			Confidence: models.DefaultConfidence,
			Queue:      models.DefaultQueue,
			Status:     models.StatusProcessing,
		},
		PolicyNumber: policyNo,
		Email:        "claimant@example.com",
		Description:  "test claim",
		Rationale:    models.DefaultRationale,
		Evidence:     []models.Evidence{},
		Attachments:  []models.Attachment{},
	}
}

// MakeRequest creates an HTTP test request with an optional JSON body
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// MakeUploadRequest builds a multipart claim-upload request. fields are
// form values; files maps a role (acord, police, ...) to a filename, with
// placeholder content.
func MakeUploadRequest(t *testing.T, path string, fields map[string]string, files map[string]string) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			t.Fatalf("Failed to write form field: %v", err)
		}
	}
	for role, filename := range files {
		part, err := mw.CreateFormFile(role, filename)
		if err != nil {
			t.Fatalf("Failed to create form file: %v", err)
		}
		if _, err := part.Write([]byte("%PDF-1.4 test document")); err != nil {
			t.Fatalf("Failed to write form file: %v", err)
		}
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("Failed to close multipart writer: %v", err)
	}

	req := httptest.NewRequest("POST", path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

// WSURL converts an httptest server URL to its WebSocket equivalent.
func WSURL(httpURL, path string) string {
	return "ws" + strings.TrimPrefix(httpURL, "http") + path
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
