// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package client

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/gorilla/websocket"

	"github.com/Mayank8528/claimwise-new2/models"
)

// Feed maintains one logical connection to the claim event feed and
// dispatches events to the callbacks. On any error or close it
// reconnects under capped exponential backoff with jitter; there is no
// retry limit, so an unreachable server is retried forever until the
// context is cancelled.
type Feed struct {
	// URL is the ws:// or wss:// endpoint, e.g. ws://host/ws/claims.
	URL string

	OnCreated func(models.ClaimSummary)
	OnUpdated func(models.ClaimSummary)

	// InitialBackoff and MaxBackoff tune the reconnect policy. Zero
	// values use the defaults (500ms, 15s).
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
}

const (
	defaultInitialBackoff = 500 * time.Millisecond
	defaultMaxBackoff     = 15 * time.Second
)

// Run connects and consumes events until the context is cancelled.
// Always returns the context's error.
func (f *Feed) Run(ctx context.Context) error {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = f.InitialBackoff
	if b.InitialInterval == 0 {
		b.InitialInterval = defaultInitialBackoff
	}
	b.MaxInterval = f.MaxBackoff
	if b.MaxInterval == 0 {
		b.MaxInterval = defaultMaxBackoff
	}
	b.MaxElapsedTime = 0 // retry forever
	b.Reset()

	for {
		conn, _, err := websocket.DefaultDialer.DialContext(ctx, f.URL, nil)
		if err != nil {
			slog.Warn("claim feed dial failed", "url", f.URL, "error", err)
		} else {
			slog.Info("claim feed connected", "url", f.URL)
			b.Reset()
			f.consume(ctx, conn)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(b.NextBackOff()):
		}
	}
}

// consume reads events until the connection breaks or ctx is cancelled.
func (f *Feed) consume(ctx context.Context, conn *websocket.Conn) {
	// Unblock the read when the context goes away.
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			conn.Close()
		case <-done:
			conn.Close()
		}
	}()

	for {
		_, payload, err := conn.ReadMessage()
		if err != nil {
			slog.Info("claim feed disconnected", "error", err)
			return
		}

		var evt models.ClaimEvent
		if err := json.Unmarshal(payload, &evt); err != nil {
			// Malformed frames are dropped; they never kill the feed.
			slog.Warn("dropping malformed claim event", "error", err)
			continue
		}

		switch evt.Type {
		case models.EventClaimCreated:
			if f.OnCreated != nil {
				f.OnCreated(evt.Data)
			}
		case models.EventClaimUpdated:
			if f.OnUpdated != nil {
				f.OnUpdated(evt.Data)
			}
		default:
			slog.Warn("dropping claim event with unknown type", "type", evt.Type)
		}
	}
}
