// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package ident generates claim identifiers.

Identifiers have the form CLM-<unix-millis>-<hex-token>:

	id, err := ident.NewClaimID(time.Now())
	// "CLM-1756512000000-a1b2c3d4e5"

The millisecond component preserves rough creation ordering in the ID
itself; the random token guarantees uniqueness.
*/
package ident
