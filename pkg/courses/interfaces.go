// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package courses

import (
	"context"

	"github.com/canonical/orgauth-service/internal/types"
)

type ServiceInterface interface {
	ListCourses(ctx context.Context, octx *types.OrgContext) ([]*types.Course, error)
	GetCourse(ctx context.Context, octx *types.OrgContext, id string) (*types.Course, error)
}

type StorageInterface interface {
	ListCourses(ctx context.Context, subOrganizationIDs []string) ([]*types.Course, error)
	FindCourseByID(ctx context.Context, id string, subOrganizationIDs []string) (*types.Course, error)
}
