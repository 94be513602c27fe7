// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/canonical/orgauth-service/internal/types"
)

func (s *Storage) ListOverrides(ctx context.Context, organizationID, roleID string) ([]*types.PermissionOverride, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListOverrides")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("organization_id", "role_id", "permission_id", "is_enabled", "updated_by", "updated_at").
		From("permission_overrides").
		Where(sq.Eq{
			"organization_id": organizationID,
			"role_id":         roleID,
		}).
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list overrides: %w", err)
	}
	defer rows.Close()

	var overrides []*types.PermissionOverride
	for rows.Next() {
		var o types.PermissionOverride
		if err := rows.Scan(&o.OrganizationID, &o.RoleID, &o.PermissionID, &o.Enabled, &o.UpdatedBy, &o.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan override: %w", err)
		}
		overrides = append(overrides, &o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return overrides, nil
}

func (s *Storage) FindOverride(ctx context.Context, organizationID, roleID, permissionID string) (*types.PermissionOverride, error) {
	ctx, span := s.tracer.Start(ctx, "storage.FindOverride")
	defer span.End()

	var o types.PermissionOverride
	err := s.db.Statement(ctx).
		Select("organization_id", "role_id", "permission_id", "is_enabled", "updated_by", "updated_at").
		From("permission_overrides").
		Where(sq.Eq{
			"organization_id": organizationID,
			"role_id":         roleID,
			"permission_id":   permissionID,
		}).
		QueryRowContext(ctx).
		Scan(&o.OrganizationID, &o.RoleID, &o.PermissionID, &o.Enabled, &o.UpdatedBy, &o.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get override: %w", err)
	}

	return &o, nil
}

// UpsertOverride is keyed on (organization, role, permission) so that
// concurrent administrators cannot produce duplicate rows.
func (s *Storage) UpsertOverride(ctx context.Context, override *types.PermissionOverride) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpsertOverride")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Insert("permission_overrides").
		Columns("organization_id", "role_id", "permission_id", "is_enabled", "updated_by").
		Values(override.OrganizationID, override.RoleID, override.PermissionID, override.Enabled, override.UpdatedBy).
		Suffix(`ON CONFLICT (organization_id, role_id, permission_id)
			DO UPDATE SET is_enabled = EXCLUDED.is_enabled, updated_by = EXCLUDED.updated_by, updated_at = NOW()`).
		ExecContext(ctx)

	if err != nil {
		if IsForeignKeyViolation(err) {
			return ErrForeignKeyViolation
		}
		return fmt.Errorf("failed to upsert override: %w", err)
	}

	return nil
}

// DeleteOverride is idempotent, deleting an absent row is not an error.
func (s *Storage) DeleteOverride(ctx context.Context, organizationID, roleID, permissionID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteOverride")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Delete("permission_overrides").
		Where(sq.Eq{
			"organization_id": organizationID,
			"role_id":         roleID,
			"permission_id":   permissionID,
		}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to delete override: %w", err)
	}

	return nil
}
