// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cryptobox

import (
	"bytes"
	"encoding/base64"
	"errors"
	"strings"
	"testing"
)

func newTestBox(t *testing.T) *Box {
	t.Helper()

	box, err := New("test-secret")
	if err != nil {
		t.Fatalf("failed to create box: %v", err)
	}
	return box
}

func TestNew_MissingSecret(t *testing.T) {
	if _, err := New(""); err == nil {
		t.Fatal("expected error for empty secret")
	}
}

func TestBox_RoundTrip(t *testing.T) {
	box := newTestBox(t)

	payloads := [][]byte{
		[]byte(""),
		[]byte("x"),
		[]byte(`{"organizationId":"org-1","workosOrgId":"org_ext_1"}`),
		bytes.Repeat([]byte("payload."), 512),
		{0x00, 0xff, 0x10, 0x80},
	}

	for _, p := range payloads {
		token, err := box.Seal(p)
		if err != nil {
			t.Fatalf("seal failed: %v", err)
		}

		got, err := box.Open(token)
		if err != nil {
			t.Fatalf("open failed: %v", err)
		}

		if !bytes.Equal(got, p) {
			t.Errorf("round trip mismatch: got %q, want %q", got, p)
		}
	}
}

func TestBox_SealUsesFreshNonce(t *testing.T) {
	box := newTestBox(t)

	a, err := box.Seal([]byte("payload"))
	if err != nil {
		t.Fatalf("seal failed: %v", err)
	}
	b, err := box.Seal([]byte("payload"))
	if err != nil {
		t.Fatalf("seal failed: %v", err)
	}

	if a == b {
		t.Error("two seals of the same plaintext produced identical tokens")
	}
}

func TestBox_OpenRejectsTampering(t *testing.T) {
	box := newTestBox(t)

	token, err := box.Seal([]byte("sensitive payload"))
	if err != nil {
		t.Fatalf("seal failed: %v", err)
	}

	raw, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		t.Fatalf("failed to decode token: %v", err)
	}

	// Flip one byte in every segment in turn.
	segments := strings.Split(string(raw), ".")
	for i := range segments {
		decoded, err := base64.StdEncoding.DecodeString(segments[i])
		if err != nil {
			t.Fatalf("failed to decode segment %d: %v", i, err)
		}
		if len(decoded) == 0 {
			continue
		}

		mutated := make([]byte, len(decoded))
		copy(mutated, decoded)
		mutated[0] ^= 0x01

		tampered := make([]string, len(segments))
		copy(tampered, segments)
		tampered[i] = base64.StdEncoding.EncodeToString(mutated)

		_, err = box.Open(base64.StdEncoding.EncodeToString([]byte(strings.Join(tampered, "."))))
		if err == nil {
			t.Errorf("tampered segment %d was accepted", i)
		}
		var decryptErr *DecryptError
		if !errors.As(err, &decryptErr) {
			t.Errorf("tampered segment %d: expected DecryptError, got %T", i, err)
		}
	}
}

func TestBox_OpenRejectsMalformedTokens(t *testing.T) {
	box := newTestBox(t)

	tokens := []string{
		"",
		"not base64 !!!",
		base64.StdEncoding.EncodeToString([]byte("one.two")),
		base64.StdEncoding.EncodeToString([]byte("a.b.c.d")),
		base64.StdEncoding.EncodeToString([]byte("!!!.!!!.!!!")),
		// valid structure, wrong nonce length
		base64.StdEncoding.EncodeToString([]byte(
			base64.StdEncoding.EncodeToString([]byte("short")) + "." +
				base64.StdEncoding.EncodeToString(bytes.Repeat([]byte{0}, 16)) + "." +
				base64.StdEncoding.EncodeToString([]byte("ct")))),
	}

	for _, token := range tokens {
		_, err := box.Open(token)
		if err == nil {
			t.Errorf("malformed token %q was accepted", token)
			continue
		}
		var decryptErr *DecryptError
		if !errors.As(err, &decryptErr) {
			t.Errorf("token %q: expected DecryptError, got %T", token, err)
		}
	}
}

func TestBox_OpenRejectsForeignKey(t *testing.T) {
	box := newTestBox(t)

	other, err := New("another-secret")
	if err != nil {
		t.Fatalf("failed to create box: %v", err)
	}

	token, err := other.Seal([]byte("payload"))
	if err != nil {
		t.Fatalf("seal failed: %v", err)
	}

	if _, err := box.Open(token); err == nil {
		t.Error("token sealed under a different secret was accepted")
	}
}
