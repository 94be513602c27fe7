// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import "context"

// Define a private custom type to avoid collisions
type contextKey struct{}

var principalContextKey = contextKey{}

// WithPrincipalID returns a new context with the given principal ID derived from the parent context.
func WithPrincipalID(ctx context.Context, principalID string) context.Context {
	return context.WithValue(ctx, principalContextKey, principalID)
}

// GetPrincipalID retrieves the authenticated principal ID from the context.
// Returns an empty string and false if no principal is present.
func GetPrincipalID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(principalContextKey).(string)
	return id, ok
}
