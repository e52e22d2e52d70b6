// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"errors"
	"strings"

	"github.com/Mayank8528/claimwise-new2/models"
)

var (
	// ErrNotFound is returned when no claim matches the given identifier.
	ErrNotFound = errors.New("claim not found")
	// ErrUnavailable is returned when the backing store cannot be reached.
	ErrUnavailable = errors.New("store unavailable")
)

// Listing limits. Requests above MaxLimit are clamped rather than rejected.
const (
	DefaultLimit = 25
	MaxLimit     = 200
)

// ListFilter describes a claim listing request. Filters combine
// conjunctively; zero values impose no constraint. Search matches
// case-insensitively against the identifier, claimant name, and policy
// number (any one match qualifies).
type ListFilter struct {
	Limit    int
	Offset   int
	Queue    string
	Severity string
	Search   string
}

// Normalize applies the default and maximum limit and clamps a negative
// offset to zero.
func (f ListFilter) Normalize() ListFilter {
	if f.Limit <= 0 {
		f.Limit = DefaultLimit
	}
	if f.Limit > MaxLimit {
		f.Limit = MaxLimit
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
	return f
}

// Matches reports whether the claim satisfies every supplied filter.
// Pagination fields are ignored here; they apply after filtering.
func (f ListFilter) Matches(c models.ClaimDetail) bool {
	if f.Severity != "" && c.Severity != f.Severity {
		return false
	}
	if f.Queue != "" && c.Queue != f.Queue {
		return false
	}
	if f.Search != "" {
		term := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(c.ID), term) &&
			!strings.Contains(strings.ToLower(c.Claimant), term) &&
			!strings.Contains(strings.ToLower(c.PolicyNo), term) {
			return false
		}
	}
	return true
}

// ClaimRepository is the canonical claim store. Implementations must make
// Insert and Reassign atomic per call; callers never observe a partial
// update. Listing preserves insertion order.
type ClaimRepository interface {
	// List returns summaries of claims matching the filter, paginated
	// after filtering. An out-of-range offset yields an empty slice, not
	// an error.
	List(ctx context.Context, f ListFilter) ([]models.ClaimSummary, error)
	// Get returns the full record for the identifier or ErrNotFound.
	Get(ctx context.Context, id string) (models.ClaimDetail, error)
	// Insert stores a new claim record.
	Insert(ctx context.Context, claim models.ClaimDetail) error
	// Reassign updates queue and assignee for the identifier and returns
	// the updated record, or ErrNotFound without mutating anything. An
	// empty queue or assignee leaves the stored value unchanged.
	Reassign(ctx context.Context, id, queue, assignee string) (models.ClaimDetail, error)
	// Queues returns the routing queues with their assignee rosters.
	Queues(ctx context.Context) ([]models.Queue, error)
}
