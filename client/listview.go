// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package client

import (
	"context"

	"github.com/Mayank8528/claimwise-new2/models"
)

// State is the claim list view-model lifecycle.
type State int

const (
	StateEmpty State = iota
	StateLoading
	StateReady
	StateError
)

func (s State) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

// Fetcher loads claim summaries for the view-model, typically
// (*API).ListClaims.
type Fetcher func(ctx context.Context, p ListParams) ([]models.ClaimSummary, error)

// ClaimList keeps one authoritative in-memory claim list per connected
// view, merging the fetched snapshot with live feed events. It is not
// goroutine-safe; the consuming view serializes calls, mirroring the
// single event loop the feed callbacks run on.
type ClaimList struct {
	fetch  Fetcher
	state  State
	claims []models.ClaimSummary
	err    error
}

func NewClaimList(fetch Fetcher) *ClaimList {
	return &ClaimList{fetch: fetch}
}

func (l *ClaimList) State() State { return l.state }

// Err returns the fetch error in StateError, nil otherwise.
func (l *ClaimList) Err() error { return l.err }

// Claims returns the current list in display order.
func (l *ClaimList) Claims() []models.ClaimSummary { return l.claims }

// Load fetches the list with the given filters. Any prior list and merge
// history is discarded: filters are not retroactively applied to events
// that arrived before the refresh.
func (l *ClaimList) Load(ctx context.Context, p ListParams) error {
	l.state = StateLoading
	l.claims = nil
	l.err = nil

	claims, err := l.fetch(ctx, p)
	if err != nil {
		l.state = StateError
		l.err = err
		return err
	}

	l.state = StateReady
	l.claims = claims
	return nil
}

// ApplyCreated merges a claim.created event. New claims are prepended
// (newest first); if the identifier is already present — possible when
// the event races the initial fetch — the entry is replaced in place
// rather than duplicated. Ignored unless the list is Ready.
func (l *ClaimList) ApplyCreated(c models.ClaimSummary) {
	if l.state != StateReady {
		return
	}
	for i := range l.claims {
		if l.claims[i].ID == c.ID {
			l.claims[i] = c
			return
		}
	}
	l.claims = append([]models.ClaimSummary{c}, l.claims...)
}

// ApplyUpdated merges a claim.updated event, replacing the matching
// entry in place. An identifier not in the list is a no-op: updates
// never insert. Ignored unless the list is Ready.
func (l *ClaimList) ApplyUpdated(c models.ClaimSummary) {
	if l.state != StateReady {
		return
	}
	for i := range l.claims {
		if l.claims[i].ID == c.ID {
			l.claims[i] = c
			return
		}
	}
}
