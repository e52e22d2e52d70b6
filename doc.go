// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Claimwise intake API server.

Claimwise is a claims-intake service: form-driven claim upload, a
filterable claims listing, claim detail and reassignment, and a WebSocket
feed pushing claim.created/claim.updated events to connected dashboards.

# Starting the Server

The defaults run a self-contained demo server on an in-memory store:

	go run .

Or against a database:

	go run . -t sqlite -d file:claims.db
	DATABASE_TYPE=postgres DATABASE_URL=postgres://... go run .

# Configuration

Optional settings:

  - PORT (-p): Server port (default: 8080)
  - DATABASE_TYPE (-t): memory, sqlite or postgres (default: memory)
  - DATABASE_URL (-d): connection string for sqlite/postgres
  - PING_MESSAGE: /api/ping response body

A .env file in the working directory is loaded at startup.

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (claims, queues, feed)
  - router: Route definitions using Go 1.22+ routing
  - events: WebSocket fan-out hub for claim events
  - store: claim repository (in-memory or database/sql)
  - middleware: CORS, logging, JSON helpers
  - models: Request/response and domain types
  - ident: claim identifier generation
  - db: Schema creation
  - cliparse: Configuration parsing
  - client: Go consumer of the API and feed (listing view-model)

See package documentation for each component.
*/
package main
