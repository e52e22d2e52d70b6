// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store holds the claim repository abstraction and its two
implementations.

# Repository Contract

ClaimRepository is the canonical claim store:

	List(ctx, filter)                  // filtered, paginated summaries
	Get(ctx, id)                       // full detail or ErrNotFound
	Insert(ctx, claim)                 // new record
	Reassign(ctx, id, queue, assignee) // queue/assignee update or ErrNotFound
	Queues(ctx)                        // read-only routing queues

Filters combine conjunctively; severity and queue are exact matches,
search is a case-insensitive substring match over the identifier,
claimant, and policy number. Pagination slices the filtered set; an
out-of-range offset yields an empty result. Listing order is insertion
order.

# Implementations

MemoryStore keeps everything in a mutex-guarded slice and is the
default. SQLStore runs the same contract over database/sql against
sqlite or postgres; the handlers never know which one they talk to.

Seed data (two demo claims, five queues) lives in seed.go and loads
into either implementation at startup.
*/
package store
