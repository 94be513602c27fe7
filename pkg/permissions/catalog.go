// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package permissions

import "github.com/canonical/orgauth-service/internal/types"

// Role IDs the resolver knows defaults for. These are organization-level
// roles as reported by the identity provider, normalized to lower case.
const (
	RoleAdmin       = "admin"
	RoleInstructor  = "instructor"
	RoleCoordinator = "coordinator"
	RoleUser        = "user"
)

// The static permission catalog. Inactive permissions stay in the catalog so
// existing override rows keep their meaning, but they are never reported.
var catalog = []types.Permission{
	{ID: "course.view", Title: "View courses", Active: true},
	{ID: "course.edit", Title: "Edit courses", Active: true},
	{ID: "course.create", Title: "Create courses", Active: true},
	{ID: "participant.manage", Title: "Manage participants", Active: true},
	{ID: "calendar.view", Title: "View calendar", Active: true},
	{ID: "calendar.edit", Title: "Edit calendar", Active: true},
	{ID: "billing.view", Title: "View billing", Active: true},
	{ID: "billing.manage", Title: "Manage billing", Active: true},
	{ID: "report.export", Title: "Export reports", Active: false},
}

// roleDefaults is the static role to permission assignment table. A
// permission absent from a role's map defaults to disabled.
var roleDefaults = map[string]map[string]bool{
	RoleAdmin: {
		"course.view":        true,
		"course.edit":        true,
		"course.create":      true,
		"participant.manage": true,
		"calendar.view":      true,
		"calendar.edit":      true,
		"billing.view":       true,
		"billing.manage":     true,
	},
	RoleInstructor: {
		"course.view":        true,
		"course.edit":        false,
		"participant.manage": true,
		"calendar.view":      true,
		"calendar.edit":      true,
	},
	RoleCoordinator: {
		"course.view":        true,
		"course.edit":        true,
		"course.create":      true,
		"participant.manage": true,
		"calendar.view":      true,
		"billing.view":       true,
	},
	RoleUser: {
		"course.view":   true,
		"calendar.view": true,
	},
}

// KnownRole reports whether defaults exist for the role.
func KnownRole(roleID string) bool {
	_, ok := roleDefaults[roleID]
	return ok
}

// KnownPermission reports whether the permission is in the active catalog.
func KnownPermission(permissionID string) bool {
	for _, p := range catalog {
		if p.ID == permissionID {
			return p.Active
		}
	}
	return false
}

// Default returns the role's default state for a permission. Unknown
// pairs default to disabled.
func Default(roleID, permissionID string) bool {
	return roleDefaults[roleID][permissionID]
}

// ActivePermissions returns the catalog entries callers may see, in catalog
// order.
func ActivePermissions() []types.Permission {
	active := make([]types.Permission, 0, len(catalog))
	for _, p := range catalog {
		if p.Active {
			active = append(active, p)
		}
	}
	return active
}
