// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"

	"github.com/canonical/orgauth-service/internal/types"
)

type StorageInterface interface {
	FindOrganizationByID(ctx context.Context, id string) (*types.Organization, error)
	FindOrganizationByExternalID(ctx context.Context, externalID string) (*types.Organization, error)
	ListSubOrganizations(ctx context.Context, organizationID string) ([]*types.SubOrganization, error)
	ListSubOrganizationIDs(ctx context.Context, organizationID string) ([]string, error)
	ListAccessibleSubOrganizationIDs(ctx context.Context, organizationID, principalID string) ([]string, error)

	ListOverrides(ctx context.Context, organizationID, roleID string) ([]*types.PermissionOverride, error)
	FindOverride(ctx context.Context, organizationID, roleID, permissionID string) (*types.PermissionOverride, error)
	UpsertOverride(ctx context.Context, override *types.PermissionOverride) error
	DeleteOverride(ctx context.Context, organizationID, roleID, permissionID string) error

	ListCourses(ctx context.Context, subOrganizationIDs []string) ([]*types.Course, error)
	FindCourseByID(ctx context.Context, id string, subOrganizationIDs []string) (*types.Course, error)
}
