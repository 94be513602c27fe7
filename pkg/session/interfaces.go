// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package session

import (
	"context"
	"net/http"

	"github.com/canonical/orgauth-service/internal/types"
)

type ServiceInterface interface {
	// ReadCurrentOrganization returns the selected organization ID, or an empty
	// string when no valid selection exists. It never fails.
	ReadCurrentOrganization(r *http.Request) string
	// CurrentOrganization returns the full decoded cookie payload, or nil.
	CurrentOrganization(r *http.Request) *types.SessionCookiePayload
	SetCurrentOrganization(ctx context.Context, w http.ResponseWriter, principalID, organizationID string) (*types.SessionCookiePayload, error)
	ClearCurrentOrganization(w http.ResponseWriter, principalID string)
	GetOrganizationContext(ctx context.Context, organizationID string) (*types.OrganizationOverview, error)
	ListOrganizations(ctx context.Context, principalID string) ([]*types.OrganizationOverview, error)
}

type BoxInterface interface {
	Seal(plaintext []byte) (string, error)
	Open(token string) ([]byte, error)
}

type ClaimsCacheInterface interface {
	Get(ctx context.Context, principalID string) (*types.ClaimsSnapshot, error)
	Invalidate(principalID string)
}

type StorageInterface interface {
	FindOrganizationByID(ctx context.Context, id string) (*types.Organization, error)
	ListSubOrganizationIDs(ctx context.Context, organizationID string) ([]string, error)
}
