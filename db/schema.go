// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
// driver is "sqlite" or "postgres"; the two disagree on auto-increment
// column syntax, everything else is shared.
func CreateSchema(db *sql.DB, driver string) error {
	serial := "INTEGER PRIMARY KEY AUTOINCREMENT"
	if driver == "postgres" {
		serial = "BIGSERIAL PRIMARY KEY"
	}

	_, err := db.Exec(fmt.Sprintf(schema, serial))
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// created_at is stored as RFC3339 text so both drivers round-trip it the
// same way. seq preserves insertion order for listings.
const schema = `
-- Claims
CREATE TABLE IF NOT EXISTS claim (
    seq %s,
    id TEXT NOT NULL UNIQUE,
    claimant TEXT NOT NULL,
    policy_no TEXT NOT NULL,
    loss_type TEXT NOT NULL,
    created_at TEXT NOT NULL,
    severity TEXT NOT NULL CHECK (severity IN ('Low', 'Medium', 'High', 'Critical')),
    confidence REAL NOT NULL CHECK (confidence >= 0 AND confidence <= 1),
    queue TEXT NOT NULL,
    status TEXT NOT NULL CHECK (status IN ('Processing', 'Completed', 'Rejected')),
    amount TEXT NOT NULL DEFAULT '',
    email TEXT NOT NULL,
    description TEXT NOT NULL,
    rationale TEXT NOT NULL,
    assignee TEXT NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS idx_claim_id ON claim(id);
CREATE INDEX IF NOT EXISTS idx_claim_queue ON claim(queue);
CREATE INDEX IF NOT EXISTS idx_claim_severity ON claim(severity);

-- Evidence citations (populated out-of-band by the analysis pipeline)
CREATE TABLE IF NOT EXISTS evidence (
    claim_id TEXT NOT NULL REFERENCES claim(id) ON DELETE CASCADE,
    ord INTEGER NOT NULL,
    source TEXT NOT NULL,
    page INTEGER NOT NULL CHECK (page >= 1),
    span TEXT NOT NULL,
    PRIMARY KEY (claim_id, ord)
);

-- Attachments
CREATE TABLE IF NOT EXISTS attachment (
    claim_id TEXT NOT NULL REFERENCES claim(id) ON DELETE CASCADE,
    ord INTEGER NOT NULL,
    filename TEXT NOT NULL,
    url TEXT NOT NULL,
    size TEXT NOT NULL DEFAULT '',
    PRIMARY KEY (claim_id, ord)
);

-- Routing queues (read-only; assignees stored as a JSON array)
CREATE TABLE IF NOT EXISTS claim_queue (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    assignees TEXT NOT NULL
);
`
