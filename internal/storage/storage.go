// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/canonical/orgauth-service/internal/db"
	"github.com/canonical/orgauth-service/internal/logging"
	"github.com/canonical/orgauth-service/internal/monitoring"
	"github.com/canonical/orgauth-service/internal/tracing"
	"github.com/canonical/orgauth-service/internal/types"
)

var _ StorageInterface = (*Storage)(nil)

type Storage struct {
	db db.DBClientInterface

	logger  logging.LoggerInterface
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
}

func NewStorage(c db.DBClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Storage {
	s := new(Storage)

	s.db = c

	s.logger = logger
	s.tracer = tracer
	s.monitor = monitor

	return s
}

func (s *Storage) FindOrganizationByID(ctx context.Context, id string) (*types.Organization, error) {
	ctx, span := s.tracer.Start(ctx, "storage.FindOrganizationByID")
	defer span.End()

	return s.findOrganization(ctx, sq.Eq{"id": id})
}

func (s *Storage) FindOrganizationByExternalID(ctx context.Context, externalID string) (*types.Organization, error) {
	ctx, span := s.tracer.Start(ctx, "storage.FindOrganizationByExternalID")
	defer span.End()

	return s.findOrganization(ctx, sq.Eq{"external_id": externalID})
}

func (s *Storage) findOrganization(ctx context.Context, where sq.Eq) (*types.Organization, error) {
	var o types.Organization
	err := s.db.Statement(ctx).
		Select("id", "external_id", "title", "created_at").
		From("organizations").
		Where(where).
		QueryRowContext(ctx).
		Scan(&o.ID, &o.ExternalID, &o.Title, &o.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}

	return &o, nil
}

func (s *Storage) ListSubOrganizations(ctx context.Context, organizationID string) ([]*types.SubOrganization, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListSubOrganizations")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("id", "organization_id", "title", "created_at").
		From("sub_organizations").
		Where(sq.Eq{"organization_id": organizationID}).
		OrderBy("title").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sub-organizations: %w", err)
	}
	defer rows.Close()

	var subs []*types.SubOrganization
	for rows.Next() {
		var sub types.SubOrganization
		if err := rows.Scan(&sub.ID, &sub.OrganizationID, &sub.Title, &sub.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan sub-organization: %w", err)
		}
		subs = append(subs, &sub)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return subs, nil
}

func (s *Storage) ListSubOrganizationIDs(ctx context.Context, organizationID string) ([]string, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListSubOrganizationIDs")
	defer span.End()

	query := s.db.Statement(ctx).
		Select("id").
		From("sub_organizations").
		Where(sq.Eq{"organization_id": organizationID})

	return s.scanIDs(ctx, query)
}

// ListAccessibleSubOrganizationIDs returns the subset of an
// organization's sub-organizations granted to the principal. An empty
// result means the principal holds a membership with no usable access.
func (s *Storage) ListAccessibleSubOrganizationIDs(ctx context.Context, organizationID, principalID string) ([]string, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListAccessibleSubOrganizationIDs")
	defer span.End()

	query := s.db.Statement(ctx).
		Select("so.id").
		From("sub_organizations so").
		Join("principal_sub_organizations pso ON so.id = pso.sub_organization_id").
		Where(sq.Eq{
			"so.organization_id": organizationID,
			"pso.principal_id":   principalID,
		})

	return s.scanIDs(ctx, query)
}

func (s *Storage) scanIDs(ctx context.Context, query sq.SelectBuilder) ([]string, error) {
	rows, err := query.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list ids: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan id: %w", err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return ids, nil
}

func (s *Storage) ListCourses(ctx context.Context, subOrganizationIDs []string) ([]*types.Course, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListCourses")
	defer span.End()

	if len(subOrganizationIDs) == 0 {
		return nil, nil
	}

	rows, err := s.db.Statement(ctx).
		Select("id", "sub_organization_id", "title", "created_at").
		From("courses").
		Where(sq.Eq{"sub_organization_id": subOrganizationIDs}).
		OrderBy("created_at DESC").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list courses: %w", err)
	}
	defer rows.Close()

	var courses []*types.Course
	for rows.Next() {
		var c types.Course
		if err := rows.Scan(&c.ID, &c.SubOrganizationID, &c.Title, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan course: %w", err)
		}
		courses = append(courses, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return courses, nil
}

// FindCourseByID scopes the lookup to the caller's sub-organizations. A
// course owned elsewhere scans as ErrNotFound, identical to true absence.
func (s *Storage) FindCourseByID(ctx context.Context, id string, subOrganizationIDs []string) (*types.Course, error) {
	ctx, span := s.tracer.Start(ctx, "storage.FindCourseByID")
	defer span.End()

	if len(subOrganizationIDs) == 0 {
		return nil, ErrNotFound
	}

	var c types.Course
	err := s.db.Statement(ctx).
		Select("id", "sub_organization_id", "title", "created_at").
		From("courses").
		Where(sq.Eq{
			"id":                  id,
			"sub_organization_id": subOrganizationIDs,
		}).
		QueryRowContext(ctx).
		Scan(&c.ID, &c.SubOrganizationID, &c.Title, &c.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get course: %w", err)
	}

	return &c, nil
}
