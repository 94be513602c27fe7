// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"

	"github.com/canonical/orgauth-service/internal/types"
)

type contextKey int

const (
	orgContextKey contextKey = iota
	roleContextKey
)

// WithOrgContext returns a context carrying the resolved organization scope.
func WithOrgContext(ctx context.Context, octx *types.OrgContext) context.Context {
	return context.WithValue(ctx, orgContextKey, octx)
}

// GetOrgContext retrieves the organization scope established by the guard.
func GetOrgContext(ctx context.Context) (*types.OrgContext, bool) {
	octx, ok := ctx.Value(orgContextKey).(*types.OrgContext)
	return octx, ok
}

// WithRole returns a context carrying the caller's normalized role in the
// selected organization.
func WithRole(ctx context.Context, role string) context.Context {
	return context.WithValue(ctx, roleContextKey, role)
}

// GetRole retrieves the caller's normalized role.
func GetRole(ctx context.Context) (string, bool) {
	role, ok := ctx.Value(roleContextKey).(string)
	return role, ok
}
