// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package permissions

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/canonical/orgauth-service/internal/logging"
	"github.com/canonical/orgauth-service/internal/monitoring"
	"github.com/canonical/orgauth-service/internal/storage"
	"github.com/canonical/orgauth-service/internal/tracing"
	"github.com/canonical/orgauth-service/internal/types"
)

// Actions reported by SetOverride.
const (
	ActionUpdated = "updated"
	ActionRemoved = "removed"
)

// ValidationError marks malformed administrative input, an unknown role or
// permission id.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// OverrideItem is one entry of a batch override mutation.
type OverrideItem struct {
	PermissionID string `json:"permissionId" validate:"required"`
	IsEnabled    bool   `json:"isEnabled"`
}

// OverrideResult reports the outcome for one batch item. Items fail
// independently, a batch is never all-or-nothing.
type OverrideResult struct {
	PermissionID string `json:"permissionId"`
	Action       string `json:"action,omitempty"`
	Error        string `json:"error,omitempty"`
}

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

// EffectivePermissions resolves every active permission for the role within
// the organization. An override row wins, otherwise the role default applies.
func (s *Service) EffectivePermissions(ctx context.Context, roleID, organizationID string) (map[string]bool, error) {
	ctx, span := s.tracer.Start(ctx, "permissions.Service.EffectivePermissions")
	defer span.End()

	if !KnownRole(roleID) {
		return nil, &ValidationError{Message: fmt.Sprintf("unknown role %q", roleID)}
	}

	overrides, err := s.loadOverrides(ctx, organizationID, roleID)
	if err != nil {
		return nil, err
	}

	effective := make(map[string]bool)
	for _, p := range ActivePermissions() {
		if override, ok := overrides[p.ID]; ok {
			effective[p.ID] = override.Enabled
			continue
		}
		effective[p.ID] = Default(roleID, p.ID)
	}

	return effective, nil
}

// ListEffective is the UI-facing projection: per active permission it reports
// whether the state comes from the default or from an explicit override.
func (s *Service) ListEffective(ctx context.Context, roleID, organizationID string) ([]*types.EffectivePermission, error) {
	ctx, span := s.tracer.Start(ctx, "permissions.Service.ListEffective")
	defer span.End()

	if !KnownRole(roleID) {
		return nil, &ValidationError{Message: fmt.Sprintf("unknown role %q", roleID)}
	}

	overrides, err := s.loadOverrides(ctx, organizationID, roleID)
	if err != nil {
		return nil, err
	}

	active := ActivePermissions()
	effective := make([]*types.EffectivePermission, 0, len(active))
	for _, p := range active {
		e := &types.EffectivePermission{
			PermissionID: p.ID,
			IsEnabled:    Default(roleID, p.ID),
			IsDefault:    true,
		}

		if override, ok := overrides[p.ID]; ok {
			e.IsEnabled = override.Enabled
			e.HasOverride = true
			e.IsDefault = false
		}

		effective = append(effective, e)
	}

	return effective, nil
}

// SetOverride is idempotent and self-cleaning: a value equal to the role
// default deletes any existing override row, a differing value upserts one.
func (s *Service) SetOverride(ctx context.Context, organizationID, roleID, permissionID string, enabled bool, actorID string) (string, error) {
	ctx, span := s.tracer.Start(ctx, "permissions.Service.SetOverride")
	defer span.End()

	if !KnownRole(roleID) {
		return "", &ValidationError{Message: fmt.Sprintf("unknown role %q", roleID)}
	}
	if !KnownPermission(permissionID) {
		return "", &ValidationError{Message: fmt.Sprintf("unknown permission %q", permissionID)}
	}

	if enabled == Default(roleID, permissionID) {
		if err := s.storage.DeleteOverride(ctx, organizationID, roleID, permissionID); err != nil {
			return "", err
		}
		return ActionRemoved, nil
	}

	err := s.storage.UpsertOverride(ctx, &types.PermissionOverride{
		OrganizationID: organizationID,
		RoleID:         roleID,
		PermissionID:   permissionID,
		Enabled:        enabled,
		UpdatedBy:      actorID,
		UpdatedAt:      time.Now().UTC(),
	})
	if err != nil {
		return "", err
	}

	return ActionUpdated, nil
}

// SetOverrides applies each item independently and reports per-item results.
func (s *Service) SetOverrides(ctx context.Context, organizationID, roleID string, items []OverrideItem, actorID string) ([]OverrideResult, error) {
	ctx, span := s.tracer.Start(ctx, "permissions.Service.SetOverrides")
	defer span.End()

	if !KnownRole(roleID) {
		return nil, &ValidationError{Message: fmt.Sprintf("unknown role %q", roleID)}
	}

	results := make([]OverrideResult, 0, len(items))
	for _, item := range items {
		action, err := s.SetOverride(ctx, organizationID, roleID, item.PermissionID, item.IsEnabled, actorID)
		if err != nil {
			var validation *ValidationError
			if !errors.As(err, &validation) {
				s.logger.Errorf("failed to apply override for %s: %v", item.PermissionID, err)
			}
			results = append(results, OverrideResult{PermissionID: item.PermissionID, Error: err.Error()})
			continue
		}

		results = append(results, OverrideResult{PermissionID: item.PermissionID, Action: action})
	}

	return results, nil
}

func (s *Service) loadOverrides(ctx context.Context, organizationID, roleID string) (map[string]*types.PermissionOverride, error) {
	rows, err := s.storage.ListOverrides(ctx, organizationID, roleID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return map[string]*types.PermissionOverride{}, nil
		}
		return nil, err
	}

	overrides := make(map[string]*types.PermissionOverride, len(rows))
	for _, o := range rows {
		overrides[o.PermissionID] = o
	}

	return overrides, nil
}
