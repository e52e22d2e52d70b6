// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database schema creation.

# Usage

Call CreateSchema after opening the connection, before serving requests:

	if err := db.CreateSchema(dbConn, cfg.DatabaseType); err != nil {
		slog.Error("schema creation failed", "error", err)
		os.Exit(1)
	}

# Schema

Four tables:

  - claim: one row per claim; seq column preserves insertion order
  - evidence: ordered citations per claim
  - attachment: ordered document references per claim
  - claim_queue: routing queues with a JSON assignee roster

All statements use IF NOT EXISTS, so CreateSchema is safe to call on
every startup. The only driver-specific piece is the auto-increment
syntax for claim.seq (AUTOINCREMENT vs BIGSERIAL).
*/
package db
