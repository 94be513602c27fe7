// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package courses

import (
	"context"
	"errors"

	"github.com/canonical/orgauth-service/internal/logging"
	"github.com/canonical/orgauth-service/internal/monitoring"
	"github.com/canonical/orgauth-service/internal/storage"
	"github.com/canonical/orgauth-service/internal/tracing"
	"github.com/canonical/orgauth-service/internal/types"
)

// ErrNotFound covers both a course that does not exist and a course outside
// the caller's organization. Callers cannot tell the two apart.
var ErrNotFound = errors.New("course not found")

type Service struct {
	storage StorageInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	store StorageInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage: store,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

// ListCourses returns every course in the caller's reachable
// sub-organizations.
func (s *Service) ListCourses(ctx context.Context, octx *types.OrgContext) ([]*types.Course, error) {
	ctx, span := s.tracer.Start(ctx, "courses.Service.ListCourses")
	defer span.End()

	return s.storage.ListCourses(ctx, octx.SubOrganizationIDs)
}

// GetCourse fetches one course within the caller's scope. The query itself is
// scoped, so an out-of-scope ID surfaces as ErrNotFound.
func (s *Service) GetCourse(ctx context.Context, octx *types.OrgContext, id string) (*types.Course, error) {
	ctx, span := s.tracer.Start(ctx, "courses.Service.GetCourse")
	defer span.End()

	course, err := s.storage.FindCourseByID(ctx, id, octx.SubOrganizationIDs)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return course, nil
}
