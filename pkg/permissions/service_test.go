// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package permissions

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/canonical/orgauth-service/internal/logging"
	"github.com/canonical/orgauth-service/internal/monitoring"
	"github.com/canonical/orgauth-service/internal/tracing"
	"github.com/canonical/orgauth-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package permissions -destination ./mock_permissions.go -source=./interfaces.go

const testOrg = "org-1"

func newTestService(t *testing.T) (*Service, *MockStorageInterface) {
	t.Helper()

	ctrl := gomock.NewController(t)
	storageMock := NewMockStorageInterface(ctrl)

	service := NewService(
		storageMock,
		tracing.NewNoopTracer(),
		monitoring.NewNoopMonitor(),
		logging.NewNoopLogger(),
	)

	return service, storageMock
}

func TestService_EffectivePermissions_OverrideWins(t *testing.T) {
	service, storageMock := newTestService(t)

	// Instructors may not edit courses by default, org-1 turned it on.
	storageMock.EXPECT().ListOverrides(gomock.Any(), testOrg, RoleInstructor).
		Return([]*types.PermissionOverride{
			{OrganizationID: testOrg, RoleID: RoleInstructor, PermissionID: "course.edit", Enabled: true},
		}, nil)

	effective, err := service.EffectivePermissions(context.Background(), RoleInstructor, testOrg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !effective["course.edit"] {
		t.Error("expected override to win over the instructor default")
	}
	if !effective["course.view"] {
		t.Error("expected course.view to keep its default")
	}
	if effective["billing.manage"] {
		t.Error("expected billing.manage to stay disabled")
	}
	if _, ok := effective["report.export"]; ok {
		t.Error("inactive permissions must not be reported")
	}
}

func TestService_EffectivePermissions_UnknownRole(t *testing.T) {
	service, _ := newTestService(t)

	_, err := service.EffectivePermissions(context.Background(), "superuser", testOrg)

	var validation *ValidationError
	if !errors.As(err, &validation) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestService_ListEffective_DistinguishesDefaultFromOverride(t *testing.T) {
	service, storageMock := newTestService(t)

	storageMock.EXPECT().ListOverrides(gomock.Any(), testOrg, RoleInstructor).
		Return([]*types.PermissionOverride{
			{OrganizationID: testOrg, RoleID: RoleInstructor, PermissionID: "course.edit", Enabled: true},
		}, nil)

	effective, err := service.ListEffective(context.Background(), RoleInstructor, testOrg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	byID := make(map[string]*types.EffectivePermission, len(effective))
	for _, e := range effective {
		byID[e.PermissionID] = e
	}

	edit := byID["course.edit"]
	if edit == nil || !edit.HasOverride || !edit.IsEnabled || edit.IsDefault {
		t.Errorf("expected explicit override to be reported, got %+v", edit)
	}

	view := byID["course.view"]
	if view == nil || view.HasOverride || !view.IsEnabled || !view.IsDefault {
		t.Errorf("expected default to be reported as default, got %+v", view)
	}
}

func TestService_SetOverride_Idempotent(t *testing.T) {
	tests := []struct {
		name           string
		permissionID   string
		enabled        bool
		setupMocks     func(*MockStorageInterface)
		expectedAction string
	}{
		{
			name:         "Value differs from default - upserts",
			permissionID: "course.edit",
			enabled:      true,
			setupMocks: func(storageMock *MockStorageInterface) {
				storageMock.EXPECT().UpsertOverride(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, o *types.PermissionOverride) error {
						if o.PermissionID != "course.edit" || !o.Enabled || o.UpdatedBy != "actor-1" {
							return errors.New("unexpected override row")
						}
						return nil
					})
			},
			expectedAction: ActionUpdated,
		},
		{
			name:         "Value equals default - deletes any row",
			permissionID: "course.edit",
			enabled:      false,
			setupMocks: func(storageMock *MockStorageInterface) {
				storageMock.EXPECT().DeleteOverride(gomock.Any(), testOrg, RoleInstructor, "course.edit").Return(nil)
			},
			expectedAction: ActionRemoved,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, storageMock := newTestService(t)
			tt.setupMocks(storageMock)

			action, err := service.SetOverride(context.Background(), testOrg, RoleInstructor, tt.permissionID, tt.enabled, "actor-1")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if action != tt.expectedAction {
				t.Errorf("expected action %q, got %q", tt.expectedAction, action)
			}
		})
	}
}

func TestService_SetOverride_UnknownPermission(t *testing.T) {
	service, _ := newTestService(t)

	_, err := service.SetOverride(context.Background(), testOrg, RoleInstructor, "course.destroy", true, "actor-1")

	var validation *ValidationError
	if !errors.As(err, &validation) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestService_SetOverrides_PartialSuccess(t *testing.T) {
	service, storageMock := newTestService(t)

	storageMock.EXPECT().UpsertOverride(gomock.Any(), gomock.Any()).Return(nil)

	items := []OverrideItem{
		{PermissionID: "course.edit", IsEnabled: true},
		{PermissionID: "does.not.exist", IsEnabled: true},
	}

	results, err := service.SetOverrides(context.Background(), testOrg, RoleInstructor, items, "actor-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(results) != 2 {
		t.Fatalf("expected two results, got %d", len(results))
	}
	if results[0].Action != ActionUpdated || results[0].Error != "" {
		t.Errorf("expected first item to succeed, got %+v", results[0])
	}
	if results[1].Error == "" {
		t.Errorf("expected second item to fail independently, got %+v", results[1])
	}
}
