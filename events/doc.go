// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package events implements the claim event fan-out hub.

The Hub holds every connected WebSocket client and pushes claim.created
and claim.updated events to all of them:

	hub := events.NewHub()
	id := hub.Add(conn)          // on upgrade
	defer hub.Remove(id)         // on disconnect
	hub.Broadcast(models.ClaimEvent{Type: models.EventClaimCreated, Data: summary})

The channel is push-only from server to client. Delivery is best-effort:
a broadcast is not transactional with the repository mutation that
triggered it, and a client whose write fails or stalls past the write
deadline is dropped. Clients self-heal by refetching the claim list.
*/
package events
