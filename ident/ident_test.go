// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ident

import (
	"strings"
	"testing"
	"time"
)

func TestNewClaimID_Format(t *testing.T) {
	id, err := NewClaimID(time.Now())
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(id, "CLM-") {
		t.Errorf("expected CLM- prefix, got %q", id)
	}
	if len(strings.Split(id, "-")) != 3 {
		t.Errorf("expected CLM-<millis>-<token>, got %q", id)
	}
}

func TestNewClaimID_Unique(t *testing.T) {
	now := time.Now()
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id, err := NewClaimID(now)
		if err != nil {
			t.Fatal(err)
		}
		if seen[id] {
			t.Fatalf("duplicate ID generated: %s", id)
		}
		seen[id] = true
	}
}

func TestRandomToken_Length(t *testing.T) {
	token, err := RandomToken(5)
	if err != nil {
		t.Fatal(err)
	}
	if len(token) != 10 {
		t.Errorf("expected 10 hex chars for 5 bytes, got %d", len(token))
	}
}
