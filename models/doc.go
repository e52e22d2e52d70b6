// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - ReassignRequest: queue, assignee, note

# Response Types

Types for JSON responses:

  - ReassignResponse: success, message, claim
  - UploadResponse: id
  - PingResponse: message
  - ErrorResponse: error, message

# Domain Types

Internal data structures:

  - ClaimSummary: listing projection of a claim
  - ClaimDetail: full claim record with evidence and attachments
  - Evidence: cited excerpt from a source document
  - Attachment: uploaded document reference
  - Queue: routing bucket with assignee roster
  - ClaimEvent: feed message ({type, data})

# Constants

Severity values:

	SeverityLow      = "Low"
	SeverityMedium   = "Medium"
	SeverityHigh     = "High"
	SeverityCritical = "Critical"

Status values:

	StatusProcessing = "Processing"
	StatusCompleted  = "Completed"
	StatusRejected   = "Rejected"

Feed event types:

	EventClaimCreated = "claim.created"
	EventClaimUpdated = "claim.updated"
*/
package models
