// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/Mayank8528/claimwise-new2/models"
)

// SQLStore is a ClaimRepository backed by database/sql. It works against
// both sqlite and postgres; queries stick to the shared dialect and $N
// placeholders, which both drivers accept.
type SQLStore struct {
	db *sql.DB
}

func NewSQLStore(db *sql.DB) *SQLStore {
	return &SQLStore{db: db}
}

const claimColumns = `id, claimant, policy_no, loss_type, created_at, severity,
	       confidence, queue, status, amount, email, description, rationale, assignee`

func (s *SQLStore) List(ctx context.Context, f ListFilter) ([]models.ClaimSummary, error) {
	f = f.Normalize()

	query := `
		SELECT id, claimant, policy_no, loss_type, created_at, severity,
		       confidence, queue, status, amount
		FROM claim`
	var conds []string
	var args []any

	if f.Severity != "" {
		args = append(args, f.Severity)
		conds = append(conds, fmt.Sprintf("severity = $%d", len(args)))
	}
	if f.Queue != "" {
		args = append(args, f.Queue)
		conds = append(conds, fmt.Sprintf("queue = $%d", len(args)))
	}
	if f.Search != "" {
		term := "%" + strings.ToLower(f.Search) + "%"
		args = append(args, term, term, term)
		n := len(args)
		conds = append(conds, fmt.Sprintf(
			"(LOWER(id) LIKE $%d OR LOWER(claimant) LIKE $%d OR LOWER(policy_no) LIKE $%d)", n-2, n-1, n))
	}

	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	args = append(args, f.Limit, f.Offset)
	query += fmt.Sprintf(" ORDER BY seq LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list claims: %w", err)
	}
	defer rows.Close()

	summaries := []models.ClaimSummary{}
	for rows.Next() {
		var c models.ClaimSummary
		var createdAt string
		if err := rows.Scan(&c.ID, &c.Claimant, &c.PolicyNo, &c.LossType, &createdAt,
			&c.Severity, &c.Confidence, &c.Queue, &c.Status, &c.Amount); err != nil {
			return nil, fmt.Errorf("scan claim: %w", err)
		}
		c.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			return nil, fmt.Errorf("parse created_at for %s: %w", c.ID, err)
		}
		summaries = append(summaries, c)
	}
	return summaries, rows.Err()
}

func (s *SQLStore) Get(ctx context.Context, id string) (models.ClaimDetail, error) {
	var c models.ClaimDetail
	var createdAt string
	err := s.db.QueryRowContext(ctx, `
		SELECT `+claimColumns+`
		FROM claim
		WHERE id = $1
	`, id).Scan(
		&c.ID, &c.Claimant, &c.PolicyNo, &c.LossType, &createdAt, &c.Severity,
		&c.Confidence, &c.Queue, &c.Status, &c.Amount, &c.Email,
		&c.Description, &c.Rationale, &c.Assignee,
	)
	if err == sql.ErrNoRows {
		return models.ClaimDetail{}, ErrNotFound
	}
	if err != nil {
		return models.ClaimDetail{}, fmt.Errorf("get claim: %w", err)
	}
	c.PolicyNumber = c.PolicyNo
	c.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return models.ClaimDetail{}, fmt.Errorf("parse created_at for %s: %w", id, err)
	}

	c.Evidence = []models.Evidence{}
	rows, err := s.db.QueryContext(ctx, `
		SELECT source, page, span FROM evidence WHERE claim_id = $1 ORDER BY ord
	`, id)
	if err != nil {
		return models.ClaimDetail{}, fmt.Errorf("get evidence: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var e models.Evidence
		if err := rows.Scan(&e.Source, &e.Page, &e.Span); err != nil {
			return models.ClaimDetail{}, fmt.Errorf("scan evidence: %w", err)
		}
		c.Evidence = append(c.Evidence, e)
	}
	if err := rows.Err(); err != nil {
		return models.ClaimDetail{}, err
	}

	c.Attachments = []models.Attachment{}
	rows, err = s.db.QueryContext(ctx, `
		SELECT filename, url, size FROM attachment WHERE claim_id = $1 ORDER BY ord
	`, id)
	if err != nil {
		return models.ClaimDetail{}, fmt.Errorf("get attachments: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var a models.Attachment
		if err := rows.Scan(&a.Filename, &a.URL, &a.Size); err != nil {
			return models.ClaimDetail{}, fmt.Errorf("scan attachment: %w", err)
		}
		c.Attachments = append(c.Attachments, a)
	}
	return c, rows.Err()
}

func (s *SQLStore) Insert(ctx context.Context, claim models.ClaimDetail) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin insert: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO claim (id, claimant, policy_no, loss_type, created_at, severity,
		                   confidence, queue, status, amount, email, description, rationale, assignee)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`, claim.ID, claim.Claimant, claim.PolicyNo, claim.LossType,
		claim.CreatedAt.UTC().Format(time.RFC3339Nano), claim.Severity,
		claim.Confidence, claim.Queue, claim.Status, claim.Amount,
		claim.Email, claim.Description, claim.Rationale, claim.Assignee)
	if err != nil {
		return fmt.Errorf("insert claim: %w", err)
	}

	for i, e := range claim.Evidence {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO evidence (claim_id, ord, source, page, span)
			VALUES ($1, $2, $3, $4, $5)
		`, claim.ID, i, e.Source, e.Page, e.Span)
		if err != nil {
			return fmt.Errorf("insert evidence: %w", err)
		}
	}
	for i, a := range claim.Attachments {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO attachment (claim_id, ord, filename, url, size)
			VALUES ($1, $2, $3, $4, $5)
		`, claim.ID, i, a.Filename, a.URL, a.Size)
		if err != nil {
			return fmt.Errorf("insert attachment: %w", err)
		}
	}

	return tx.Commit()
}

func (s *SQLStore) Reassign(ctx context.Context, id, queue, assignee string) (models.ClaimDetail, error) {
	// COALESCE(NULLIF(...)) keeps the stored value when the caller sends
	// an empty field, matching the memory store.
	res, err := s.db.ExecContext(ctx, `
		UPDATE claim
		SET queue = COALESCE(NULLIF($1, ''), queue),
		    assignee = COALESCE(NULLIF($2, ''), assignee)
		WHERE id = $3
	`, queue, assignee, id)
	if err != nil {
		return models.ClaimDetail{}, fmt.Errorf("reassign claim: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return models.ClaimDetail{}, fmt.Errorf("reassign claim: %w", err)
	}
	if n == 0 {
		return models.ClaimDetail{}, ErrNotFound
	}
	return s.Get(ctx, id)
}

func (s *SQLStore) Queues(ctx context.Context) ([]models.Queue, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name, assignees FROM claim_queue ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list queues: %w", err)
	}
	defer rows.Close()

	queues := []models.Queue{}
	for rows.Next() {
		var q models.Queue
		var assignees string
		if err := rows.Scan(&q.ID, &q.Name, &assignees); err != nil {
			return nil, fmt.Errorf("scan queue: %w", err)
		}
		if err := json.Unmarshal([]byte(assignees), &q.Assignees); err != nil {
			return nil, fmt.Errorf("decode assignees for %s: %w", q.ID, err)
		}
		queues = append(queues, q)
	}
	return queues, rows.Err()
}

// Seed loads the demo claims and queues if the store is empty. Called
// once at startup so a fresh database serves the same data as the
// memory store.
func (s *SQLStore) Seed(ctx context.Context) error {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM claim`).Scan(&count); err != nil {
		return fmt.Errorf("count claims: %w", err)
	}
	if count == 0 {
		for _, c := range SeedClaims() {
			if err := s.Insert(ctx, c); err != nil {
				return err
			}
		}
	}

	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM claim_queue`).Scan(&count); err != nil {
		return fmt.Errorf("count queues: %w", err)
	}
	if count == 0 {
		for _, q := range SeedQueues() {
			assignees, err := json.Marshal(q.Assignees)
			if err != nil {
				return fmt.Errorf("encode assignees for %s: %w", q.ID, err)
			}
			_, err = s.db.ExecContext(ctx, `
				INSERT INTO claim_queue (id, name, assignees)
				VALUES ($1, $2, $3)
			`, q.ID, q.Name, string(assignees))
			if err != nil {
				return fmt.Errorf("insert queue: %w", err)
			}
		}
	}
	return nil
}
