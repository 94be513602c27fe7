// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package idprovider

import (
	"context"
)

// NoopClient returns no memberships, for development without a provider.
type NoopClient struct{}

func NewNoopClient() *NoopClient {
	return &NoopClient{}
}

func (c *NoopClient) ListMemberships(ctx context.Context, principalID string) ([]RawMembership, error) {
	return nil, nil
}
