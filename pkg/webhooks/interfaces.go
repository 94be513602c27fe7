// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import "context"

// ClaimsCacheInterface is the subset of the claims cache the webhook
// service needs.
type ClaimsCacheInterface interface {
	Invalidate(principalID string)
}

// ServiceInterface defines the webhook service operations.
type ServiceInterface interface {
	HandleProviderEvent(ctx context.Context, event *ProviderEvent) error
}
