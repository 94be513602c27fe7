// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package roles maps provider-defined role labels onto the two canonical
// roles the service reasons about.
package roles

import (
	"strings"

	"github.com/canonical/orgauth-service/internal/types"
)

const (
	Admin = "admin"
	User  = "user"

	// NotAMember is the sentinel returned by InOrg when the principal
	// holds no membership for the organization.
	NotAMember = ""
)

// adminSynonyms is a strict allow-list. Unknown future provider role
// names fall through to the least-privileged role.
var adminSynonyms = map[string]struct{}{
	"owner":              {},
	"admin":              {},
	"administrator":      {},
	"org admin":          {},
	"org_admin":          {},
	"organization admin": {},
	"organization_admin": {},
}

// Normalize maps an arbitrary external role label to "admin" or "user".
// Total: any input, including the empty string, yields a canonical role.
func Normalize(raw string) string {
	if _, ok := adminSynonyms[strings.ToLower(strings.TrimSpace(raw))]; ok {
		return Admin
	}
	return User
}

func IsAdmin(raw string) bool {
	return Normalize(raw) == Admin
}

// InOrg returns the normalized role the memberships grant for the given
// local organization id, or NotAMember.
func InOrg(memberships []types.Membership, organizationID string) (string, bool) {
	for i := range memberships {
		if memberships[i].OrganizationID == organizationID {
			return Normalize(memberships[i].Role), true
		}
	}
	return NotAMember, false
}

func HasAdminInOrg(memberships []types.Membership, organizationID string) bool {
	role, ok := InOrg(memberships, organizationID)
	return ok && role == Admin
}
