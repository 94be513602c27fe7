// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package claims

import (
	"context"

	"github.com/canonical/orgauth-service/internal/idprovider"
	"github.com/canonical/orgauth-service/internal/types"
)

type CacheInterface interface {
	// Get returns a non-expired snapshot without I/O when one exists,
	// otherwise it refreshes synchronously.
	Get(ctx context.Context, principalID string) (*types.ClaimsSnapshot, error)
	// Invalidate removes the cached snapshot unconditionally.
	Invalidate(principalID string)
	// Warm forces a synchronous refresh and stores the result.
	Warm(ctx context.Context, principalID string) (*types.ClaimsSnapshot, error)
}

type ProviderInterface interface {
	ListMemberships(ctx context.Context, principalID string) ([]idprovider.RawMembership, error)
}

// DirectoryInterface is the narrow view of the relational store the
// cache needs to localize provider memberships.
type DirectoryInterface interface {
	FindOrganizationByExternalID(ctx context.Context, externalID string) (*types.Organization, error)
	ListSubOrganizationIDs(ctx context.Context, organizationID string) ([]string, error)
	ListAccessibleSubOrganizationIDs(ctx context.Context, organizationID, principalID string) ([]string, error)
}
