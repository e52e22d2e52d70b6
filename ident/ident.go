// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ident

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"
)

// NewClaimID creates a claim identifier of the form CLM-<millis>-<token>.
// The random token keeps IDs unique even when two claims land on the same
// millisecond.
func NewClaimID(now time.Time) (string, error) {
	token, err := RandomToken(5)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("CLM-%d-%s", now.UnixMilli(), token), nil
}

// RandomToken creates a random hex token of the specified byte length
func RandomToken(byteLen int) (string, error) {
	b := make([]byte, byteLen)
	_, err := rand.Read(b)
	if err != nil {
		return "", fmt.Errorf("failed to generate random token: %w", err)
	}
	return hex.EncodeToString(b), nil
}
