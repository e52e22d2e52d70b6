// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the claims API.

# Handler Types

Each handler is a struct with its dependencies injected:

  - ClaimsHandler: listing, detail, reassignment, upload
  - QueueHandler: routing queue roster
  - FeedHandler: WebSocket upgrade for the claim event feed

Handlers are created via constructor functions that accept the claim
repository and, where needed, the event hub:

	claims := handlers.NewClaimsHandler(st, hub)

# Claim Flow

	GET  /api/claims               → List (filter + paginate)
	GET  /api/claims/{id}          → Detail
	POST /api/claims/{id}/reassign → Reassign (emits claim.updated)
	POST /api/claims/upload        → Upload (emits claim.created)
	GET  /api/queues               → queue roster
	GET  /ws/claims                → feed subscription

Upload takes a multipart form: name, email, policy_no, date_of_loss,
claim_type, description plus optional file parts keyed acord, police,
survey, supporting. Missing name/email/policy_no/description is a 400.

# Events

Mutating operations broadcast on the hub after the repository commit.
Broadcast is best-effort; a crash between commit and broadcast loses the
event, and clients reconcile on their next fetch.

No endpoint performs authorization; the service sits behind the intake
frontend.
*/
package handlers
