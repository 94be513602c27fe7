// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package permissions

import (
	"context"

	"github.com/canonical/orgauth-service/internal/types"
)

type ServiceInterface interface {
	EffectivePermissions(ctx context.Context, roleID, organizationID string) (map[string]bool, error)
	ListEffective(ctx context.Context, roleID, organizationID string) ([]*types.EffectivePermission, error)
	SetOverride(ctx context.Context, organizationID, roleID, permissionID string, enabled bool, actorID string) (string, error)
	SetOverrides(ctx context.Context, organizationID, roleID string, items []OverrideItem, actorID string) ([]OverrideResult, error)
}

type StorageInterface interface {
	ListOverrides(ctx context.Context, organizationID, roleID string) ([]*types.PermissionOverride, error)
	FindOverride(ctx context.Context, organizationID, roleID, permissionID string) (*types.PermissionOverride, error)
	UpsertOverride(ctx context.Context, override *types.PermissionOverride) error
	DeleteOverride(ctx context.Context, organizationID, roleID, permissionID string) error
}
