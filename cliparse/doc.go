/*
Package cliparse handles configuration from CLI flags and environment
variables.

Flags take precedence over environment variables:

	-p / PORT           server port (default 8080)
	-t / DATABASE_TYPE  store backend: memory, sqlite or postgres (default memory)
	-d / DATABASE_URL   connection string, required unless the store is memory

PING_MESSAGE overrides the /api/ping response body (env only).

The memory store needs no configuration at all, so a bare `claimwise`
starts a fully working demo server.
*/
package cliparse
