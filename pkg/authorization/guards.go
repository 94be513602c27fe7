// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"github.com/canonical/orgauth-service/internal/roles"
	"github.com/canonical/orgauth-service/internal/types"
)

// RequireAdmin returns nil when the normalized role is the admin role.
func RequireAdmin(role string) *Error {
	if roles.IsAdmin(role) {
		return nil
	}

	return NewError(CodeAdminRequired, "administrator role required")
}

// RequireOrgSelected returns nil when an organization is selected.
func RequireOrgSelected(organizationID string) *Error {
	if organizationID != "" {
		return nil
	}

	return NewError(CodeNoOrganizationSelected, "no organization selected")
}

// RequireInOrganization checks that a sub-organization belongs to the caller's
// scope. The returned error renders as a plain not-found, so callers leak
// nothing about resources outside the organization.
func RequireInOrganization(octx *types.OrgContext, subOrganizationID string) *Error {
	if octx != nil && octx.Contains(subOrganizationID) {
		return nil
	}

	return ErrResourceNotInOrganization
}
