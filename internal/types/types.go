// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"time"
)

// MembershipStatusActive is the only provider status that grants access.
const MembershipStatusActive = "active"

type Organization struct {
	ID         string    `db:"id"`
	ExternalID string    `db:"external_id"`
	Title      string    `db:"title"`
	CreatedAt  time.Time `db:"created_at"`
}

type SubOrganization struct {
	ID             string    `db:"id"`
	OrganizationID string    `db:"organization_id"`
	Title          string    `db:"title"`
	CreatedAt      time.Time `db:"created_at"`
}

// Membership is the normalized view of one provider-side organization
// membership, enriched with the locally resolved organization and the
// sub-organizations the principal may act on. Replaced wholesale on
// every claims refresh, never mutated in place.
type Membership struct {
	PrincipalID        string
	OrganizationID     string
	ExternalOrgID      string
	Title              string
	Role               string
	Status             string
	SubOrganizationIDs []string
}

// HasUsableAccess reports whether the membership grants any access at
// all: an active status and at least one reachable sub-organization.
func (m *Membership) HasUsableAccess() bool {
	return m.Status == MembershipStatusActive && len(m.SubOrganizationIDs) > 0
}

// ClaimsSnapshot is the cached summary of a principal's organizational
// access. Immutable once constructed.
type ClaimsSnapshot struct {
	PrincipalID   string
	Organizations []Membership
	ExpiresAt     time.Time
}

func (s *ClaimsSnapshot) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}

// FindByExternalOrgID returns the membership for the given provider-side
// organization id, or nil when the snapshot holds none.
func (s *ClaimsSnapshot) FindByExternalOrgID(externalOrgID string) *Membership {
	for i := range s.Organizations {
		if s.Organizations[i].ExternalOrgID == externalOrgID {
			return &s.Organizations[i]
		}
	}
	return nil
}

// FindByOrganizationID returns the membership for the given local
// organization id, or nil when the snapshot holds none.
func (s *ClaimsSnapshot) FindByOrganizationID(organizationID string) *Membership {
	for i := range s.Organizations {
		if s.Organizations[i].OrganizationID == organizationID {
			return &s.Organizations[i]
		}
	}
	return nil
}

// SessionCookiePayload is the JSON placed, sealed, into the current
// organization cookie. Field names are part of the wire format.
type SessionCookiePayload struct {
	SessionID      string    `json:"sessionId"`
	OrganizationID string    `json:"organizationId"`
	ExternalOrgID  string    `json:"workosOrgId"`
	Title          string    `json:"title"`
	SetAt          time.Time `json:"setAt"`
}

// PermissionOverride exists only when its enabled value differs from
// the role default for that permission.
type PermissionOverride struct {
	OrganizationID string    `db:"organization_id"`
	RoleID         string    `db:"role_id"`
	PermissionID   string    `db:"permission_id"`
	Enabled        bool      `db:"is_enabled"`
	UpdatedBy      string    `db:"updated_by"`
	UpdatedAt      time.Time `db:"updated_at"`
}

type Permission struct {
	ID     string
	Title  string
	Active bool
}

// EffectivePermission is the resolved state of one permission for a
// (role, organization) pair as reported to callers.
type EffectivePermission struct {
	PermissionID string `json:"permissionId"`
	IsDefault    bool   `json:"isDefault"`
	HasOverride  bool   `json:"hasOverride"`
	IsEnabled    bool   `json:"isEnabled"`
}

// OrgContext is the request-scoped authorization context emitted by the
// Organization Scope Guard. Constructed once per request, never mutated.
type OrgContext struct {
	OrganizationID     string
	SubOrganizationIDs []string
}

// Contains reports whether the sub-organization is reachable in this context.
func (c *OrgContext) Contains(subOrganizationID string) bool {
	for _, id := range c.SubOrganizationIDs {
		if id == subOrganizationID {
			return true
		}
	}
	return false
}

// OrganizationOverview is the unfiltered projection of an organization
// and all of its sub-organizations. Callers must intersect the
// sub-organization list with claims themselves.
type OrganizationOverview struct {
	ID                 string   `json:"organizationId"`
	ExternalID         string   `json:"workosOrgId"`
	Title              string   `json:"title"`
	SubOrganizationIDs []string `json:"subOrganizationIds"`
}

type Course struct {
	ID                string    `db:"id"`
	SubOrganizationID string    `db:"sub_organization_id"`
	Title             string    `db:"title"`
	CreatedAt         time.Time `db:"created_at"`
}
