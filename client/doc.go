// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package client consumes the claims API and event feed from Go.

It is the programmatic equivalent of the dashboard's data layer: a REST
client, a reconnecting feed subscription, and the claim list view-model
that merges the two.

# REST

	api := client.NewAPI("http://localhost:8080")
	claims, err := api.ListClaims(ctx, client.ListParams{Severity: "High"})

An empty base URL issues relative requests (same origin). Calls are
never retried automatically; errors surface to the caller.

# Feed

	feed := &client.Feed{
		URL:       "ws://localhost:8080/ws/claims",
		OnCreated: list.ApplyCreated,
		OnUpdated: list.ApplyUpdated,
	}
	go feed.Run(ctx)

Run blocks until the context is cancelled, reconnecting after failures
with capped exponential backoff. Malformed frames are logged and
dropped.

# View-Model

ClaimList is a four-state machine (Empty → Loading → Ready/Error) over
one ordered claim list. claim.created events prepend (or replace, when
the event raced the fetch); claim.updated events replace in place and
never insert. Load discards the prior list, so changed filters start
from a clean snapshot.
*/
package client
