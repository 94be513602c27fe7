// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"testing"
)

func TestDebugLogger(t *testing.T) {
	l := NewLogger("debug")
	if l.Security() == nil {
		t.Fatal("expected security logger")
	}
}

func TestInvalidLevel(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on invalid log level")
		}
	}()
	NewLogger("invalid")
}
