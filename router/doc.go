// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP route mappings for the claims API.

# Routes

Claims:

	GET  /api/claims               → list with filters (limit, offset, queue, severity, search)
	GET  /api/claims/{id}          → claim detail
	POST /api/claims/{id}/reassign → move a claim between queues/assignees
	POST /api/claims/upload        → multipart claim intake

Queues and feed:

	GET /api/queues → routing queue roster
	GET /ws/claims  → WebSocket claim event feed

Utility:

	GET /health   → liveness check
	GET /api/ping → configurable ping message

All routes use Go 1.22+ method-qualified patterns on the standard
ServeMux. REST routes are wrapped with request logging; the feed route
is long-lived and skips it. The whole mux sits behind the CORS
middleware.
*/
package router
