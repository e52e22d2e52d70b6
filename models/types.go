package models

import "time"

// Severity levels assigned at claim creation
const (
	SeverityLow      = "Low"
	SeverityMedium   = "Medium"
	SeverityHigh     = "High"
	SeverityCritical = "Critical"
)

// Claim status constants
const (
	StatusProcessing = "Processing"
	StatusCompleted  = "Completed"
	StatusRejected   = "Rejected"
)

// Feed event types
const (
	EventClaimCreated = "claim.created"
	EventClaimUpdated = "claim.updated"
)

// Defaults applied to freshly uploaded claims. Severity, confidence and
// rationale are placeholders until the analysis pipeline fills them in.
const (
	DefaultQueue      = "Standard"
	DefaultConfidence = 0.65
	DefaultRationale  = "Pending AI analysis of uploaded documents"
	DefaultLossType   = "General"
)

// Request types

type ReassignRequest struct {
	Queue    string `json:"queue"`
	Assignee string `json:"assignee"`
	Note     string `json:"note"`
}

// Response types

type ReassignResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Claim   ClaimDetail `json:"claim"`
}

type UploadResponse struct {
	ID string `json:"id"`
}

type PingResponse struct {
	Message string `json:"message"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// Domain types

// ClaimSummary is the projection returned by claim listings and carried in
// feed events. The identifier is immutable once assigned; only Queue (and
// the detail-level assignee) change after creation.
type ClaimSummary struct {
	ID         string    `json:"id"`
	Claimant   string    `json:"claimant"`
	PolicyNo   string    `json:"policy_no"`
	LossType   string    `json:"loss_type"`
	CreatedAt  time.Time `json:"created_at"`
	Severity   string    `json:"severity"`
	Confidence float64   `json:"confidence"`
	Queue      string    `json:"queue"`
	Status     string    `json:"status"`
	Amount     string    `json:"amount,omitempty"`
}

// Evidence is a cited excerpt from a source document supporting the
// claim's assessment. Populated out-of-band by the analysis pipeline.
type Evidence struct {
	Source string `json:"source"`
	Page   int    `json:"page"`
	Span   string `json:"span"`
}

type Attachment struct {
	Filename string `json:"filename"`
	URL      string `json:"url"`
	Size     string `json:"size,omitempty"`
}

// ClaimDetail is the full claim record. PolicyNumber duplicates PolicyNo;
// the original API exposed both spellings and existing consumers read
// either, so the wire format keeps both.
type ClaimDetail struct {
	ClaimSummary
	PolicyNumber string       `json:"policyNumber"`
	Email        string       `json:"email"`
	Description  string       `json:"description"`
	Rationale    string       `json:"rationale"`
	Evidence     []Evidence   `json:"evidence"`
	Attachments  []Attachment `json:"attachments"`
	Assignee     string       `json:"assignee,omitempty"`
}

// Summary returns the listing projection of the claim.
func (d ClaimDetail) Summary() ClaimSummary {
	return d.ClaimSummary
}

// Queue is a named routing bucket claims are assigned to. Read-only in
// this system.
type Queue struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Assignees []string `json:"assignees"`
}

// ClaimEvent is the feed message broadcast on claim creation and
// reassignment. Ephemeral; exists only on the wire.
type ClaimEvent struct {
	Type string       `json:"type"`
	Data ClaimSummary `json:"data"`
}
