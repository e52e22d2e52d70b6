// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/Mayank8528/claimwise-new2/models"
)

// ErrNotFound is returned when the server reports an unknown claim.
var ErrNotFound = errors.New("claim not found")

// ListParams mirror the /api/claims query parameters. Zero values are
// omitted from the request.
type ListParams struct {
	Limit    int
	Offset   int
	Queue    string
	Severity string
	Search   string
}

// UploadForm carries the claim intake fields. Files maps a role tag
// (acord, police, survey, supporting) to filename and content.
type UploadForm struct {
	Name        string
	Email       string
	PolicyNo    string
	DateOfLoss  string
	ClaimType   string
	Description string
	Files       map[string]UploadFile
}

type UploadFile struct {
	Filename string
	Content  []byte
}

// API is a client for the claims REST endpoints. BaseURL overrides the
// API origin; empty means requests go to relative paths on the default
// transport (same origin behind a proxy). Calls are not retried; errors
// surface immediately to the caller.
type API struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewAPI(baseURL string) *API {
	return &API{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: http.DefaultClient,
	}
}

// ListClaims fetches claim summaries matching the params.
func (a *API) ListClaims(ctx context.Context, p ListParams) ([]models.ClaimSummary, error) {
	q := url.Values{}
	if p.Limit > 0 {
		q.Set("limit", strconv.Itoa(p.Limit))
	}
	if p.Offset > 0 {
		q.Set("offset", strconv.Itoa(p.Offset))
	}
	if p.Queue != "" {
		q.Set("queue", p.Queue)
	}
	if p.Severity != "" {
		q.Set("severity", p.Severity)
	}
	if p.Search != "" {
		q.Set("search", p.Search)
	}

	path := "/api/claims"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var claims []models.ClaimSummary
	if err := a.getJSON(ctx, path, &claims); err != nil {
		return nil, err
	}
	return claims, nil
}

// GetClaim fetches the full detail for one claim.
func (a *API) GetClaim(ctx context.Context, id string) (models.ClaimDetail, error) {
	var claim models.ClaimDetail
	err := a.getJSON(ctx, "/api/claims/"+url.PathEscape(id), &claim)
	return claim, err
}

// Reassign moves a claim to another queue/assignee.
func (a *API) Reassign(ctx context.Context, id string, req models.ReassignRequest) (models.ReassignResponse, error) {
	var resp models.ReassignResponse

	body, err := json.Marshal(req)
	if err != nil {
		return resp, fmt.Errorf("encode reassign request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		a.BaseURL+"/api/claims/"+url.PathEscape(id)+"/reassign", bytes.NewReader(body))
	if err != nil {
		return resp, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	err = a.do(httpReq, &resp)
	return resp, err
}

// UploadClaim submits a new claim as a multipart form and returns the
// assigned identifier.
func (a *API) UploadClaim(ctx context.Context, form UploadForm) (string, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	fields := map[string]string{
		"name":         form.Name,
		"email":        form.Email,
		"policy_no":    form.PolicyNo,
		"date_of_loss": form.DateOfLoss,
		"claim_type":   form.ClaimType,
		"description":  form.Description,
	}
	for k, v := range fields {
		if v == "" {
			continue
		}
		if err := mw.WriteField(k, v); err != nil {
			return "", fmt.Errorf("encode upload form: %w", err)
		}
	}
	for role, f := range form.Files {
		part, err := mw.CreateFormFile(role, f.Filename)
		if err != nil {
			return "", fmt.Errorf("encode upload file: %w", err)
		}
		if _, err := part.Write(f.Content); err != nil {
			return "", fmt.Errorf("encode upload file: %w", err)
		}
	}
	if err := mw.Close(); err != nil {
		return "", fmt.Errorf("encode upload form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.BaseURL+"/api/claims/upload", &buf)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	var resp models.UploadResponse
	if err := a.do(req, &resp); err != nil {
		return "", err
	}
	return resp.ID, nil
}

// ListQueues fetches the routing queue roster.
func (a *API) ListQueues(ctx context.Context) ([]models.Queue, error) {
	var queues []models.Queue
	if err := a.getJSON(ctx, "/api/queues", &queues); err != nil {
		return nil, err
	}
	return queues, nil
}

func (a *API) getJSON(ctx context.Context, path string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.BaseURL+path, nil)
	if err != nil {
		return err
	}
	return a.do(req, v)
}

func (a *API) do(req *http.Request, v any) error {
	resp, err := a.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr models.ErrorResponse
		body, _ := io.ReadAll(resp.Body)
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Message != "" {
			return fmt.Errorf("%s: %s", resp.Status, apiErr.Message)
		}
		return fmt.Errorf("unexpected status %s", resp.Status)
	}

	if v == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
