// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package cryptobox seals opaque byte payloads for storage in
// client-held, untrusted locations such as cookies.
package cryptobox

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/crypto/scrypt"
)

const (
	keyLen   = 32
	nonceLen = 12
	tagLen   = 16

	scryptN = 32768
	scryptR = 8
	scryptP = 1

	// kdfSalt is fixed per deployment. The derived key is cached for
	// process lifetime, so per-message salting buys nothing here.
	kdfSalt = "orgauth-session-v1"
)

// DecryptError is returned by Open for any malformed or tampered token.
// Callers treat it as "no value", it must never surface to a client.
type DecryptError struct {
	reason string
}

func (e *DecryptError) Error() string {
	return "cryptobox: " + e.reason
}

type BoxInterface interface {
	Seal(plaintext []byte) (string, error)
	Open(token string) ([]byte, error)
}

var _ BoxInterface = (*Box)(nil)

// Box holds the derived AEAD for the lifetime of the process.
type Box struct {
	aead cipher.AEAD
}

// New stretches the operator secret into an AES-256-GCM key. A missing
// secret is an error, callers are expected to fail process startup on it.
func New(secret string) (*Box, error) {
	if secret == "" {
		return nil, fmt.Errorf("cryptobox: session secret is required")
	}

	key, err := scrypt.Key([]byte(secret), []byte(kdfSalt), scryptN, scryptR, scryptP, keyLen)
	if err != nil {
		return nil, fmt.Errorf("cryptobox: key derivation failed: %w", err)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("cryptobox: cipher init failed: %w", err)
	}

	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("cryptobox: aead init failed: %w", err)
	}

	return &Box{aead: aead}, nil
}

// Seal encrypts the plaintext under a fresh random nonce. The token is
// base64(base64(nonce) "." base64(tag) "." base64(ciphertext)), the
// outer encoding guards against delimiter collision.
func (b *Box) Seal(plaintext []byte) (string, error) {
	nonce := make([]byte, nonceLen)
	if _, err := rand.Read(nonce); err != nil {
		return "", fmt.Errorf("cryptobox: nonce generation failed: %w", err)
	}

	sealed := b.aead.Seal(nil, nonce, plaintext, nil)
	ciphertext := sealed[:len(sealed)-tagLen]
	tag := sealed[len(sealed)-tagLen:]

	enc := base64.StdEncoding
	joined := strings.Join([]string{
		enc.EncodeToString(nonce),
		enc.EncodeToString(tag),
		enc.EncodeToString(ciphertext),
	}, ".")

	return enc.EncodeToString([]byte(joined)), nil
}

// Open authenticates and decrypts a sealed token. Every failure mode
// returns a DecryptError, there is no partial decoding.
func (b *Box) Open(token string) ([]byte, error) {
	enc := base64.StdEncoding

	joined, err := enc.DecodeString(token)
	if err != nil {
		return nil, &DecryptError{reason: "malformed token encoding"}
	}

	segments := strings.Split(string(joined), ".")
	if len(segments) != 3 {
		return nil, &DecryptError{reason: "malformed token structure"}
	}

	nonce, err := enc.DecodeString(segments[0])
	if err != nil || len(nonce) != nonceLen {
		return nil, &DecryptError{reason: "invalid nonce"}
	}

	tag, err := enc.DecodeString(segments[1])
	if err != nil || len(tag) != tagLen {
		return nil, &DecryptError{reason: "invalid auth tag"}
	}

	ciphertext, err := enc.DecodeString(segments[2])
	if err != nil {
		return nil, &DecryptError{reason: "invalid ciphertext"}
	}

	plaintext, err := b.aead.Open(nil, nonce, append(ciphertext, tag...), nil)
	if err != nil {
		return nil, &DecryptError{reason: "authentication failed"}
	}

	return plaintext, nil
}
