// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"
	"net/http"

	"github.com/canonical/orgauth-service/internal/types"
)

type ClaimsCacheInterface interface {
	Get(ctx context.Context, principalID string) (*types.ClaimsSnapshot, error)
}

type SessionReaderInterface interface {
	CurrentOrganization(r *http.Request) *types.SessionCookiePayload
}
