// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package events

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/Mayank8528/claimwise-new2/models"
)

var testUpgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// startHubServer runs a minimal feed endpoint over the hub: upgrade,
// register, read until close.
func startHubServer(t *testing.T, hub *Hub) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := testUpgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		id := hub.Add(conn)
		defer hub.Remove(id)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func dialFeed(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("Failed to dial feed: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func waitForCount(t *testing.T, hub *Hub, want int) {
	t.Helper()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if hub.Count() == want {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("expected %d clients, got %d", want, hub.Count())
}

func TestBroadcast_ReachesAllClients(t *testing.T) {
	hub := NewHub()
	srv := startHubServer(t, hub)

	first := dialFeed(t, srv)
	second := dialFeed(t, srv)
	waitForCount(t, hub, 2)

	evt := models.ClaimEvent{
		Type: models.EventClaimCreated,
		Data: models.ClaimSummary{ID: "CLM-2024-001", Claimant: "John Smith"},
	}
	hub.Broadcast(evt)

	for _, conn := range []*websocket.Conn{first, second} {
		conn.SetReadDeadline(time.Now().Add(2 * time.Second))
		_, payload, err := conn.ReadMessage()
		if err != nil {
			t.Fatalf("Failed to read broadcast: %v", err)
		}

		var got models.ClaimEvent
		if err := json.Unmarshal(payload, &got); err != nil {
			t.Fatalf("Failed to decode event: %v", err)
		}
		if got.Type != models.EventClaimCreated {
			t.Errorf("expected %s, got %s", models.EventClaimCreated, got.Type)
		}
		if got.Data.ID != "CLM-2024-001" {
			t.Errorf("expected CLM-2024-001, got %s", got.Data.ID)
		}
	}
}

func TestClientClose_Deregisters(t *testing.T) {
	hub := NewHub()
	srv := startHubServer(t, hub)

	first := dialFeed(t, srv)
	dialFeed(t, srv)
	waitForCount(t, hub, 2)

	first.Close()
	waitForCount(t, hub, 1)

	// Broadcast after close must not fail or panic
	hub.Broadcast(models.ClaimEvent{
		Type: models.EventClaimUpdated,
		Data: models.ClaimSummary{ID: "CLM-2024-002"},
	})
	if hub.Count() != 1 {
		t.Errorf("expected 1 client after broadcast, got %d", hub.Count())
	}
}

func TestHubClose_DropsEveryone(t *testing.T) {
	hub := NewHub()
	srv := startHubServer(t, hub)

	conn := dialFeed(t, srv)
	waitForCount(t, hub, 1)

	hub.Close()
	if hub.Count() != 0 {
		t.Errorf("expected 0 clients after Close, got %d", hub.Count())
	}

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	if _, _, err := conn.ReadMessage(); err == nil {
		t.Error("expected read to fail after hub close")
	}
}
