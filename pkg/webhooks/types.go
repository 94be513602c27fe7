// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

// ProviderEvent is the envelope the identity provider posts on membership
// changes. Only the fields the service acts on are decoded.
type ProviderEvent struct {
	ID    string            `json:"id"`
	Event string            `json:"event"`
	Data  ProviderEventData `json:"data"`
}

type ProviderEventData struct {
	UserID         string `json:"user_id"`
	OrganizationID string `json:"organization_id"`
}
