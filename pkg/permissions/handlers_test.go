// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package permissions

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	chi "github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	httpTypes "github.com/canonical/orgauth-service/internal/http/types"
	"github.com/canonical/orgauth-service/internal/logging"
	"github.com/canonical/orgauth-service/internal/monitoring"
	"github.com/canonical/orgauth-service/internal/tracing"
	"github.com/canonical/orgauth-service/internal/types"
	"github.com/canonical/orgauth-service/pkg/authentication"
	"github.com/canonical/orgauth-service/pkg/authorization"
)

func newTestAPI(t *testing.T) (*API, *MockServiceInterface, *chi.Mux) {
	t.Helper()

	ctrl := gomock.NewController(t)
	serviceMock := NewMockServiceInterface(ctrl)

	api := NewAPI(
		serviceMock,
		tracing.NewNoopTracer(),
		monitoring.NewNoopMonitor(),
		logging.NewNoopLogger(),
	)

	mux := chi.NewMux()
	api.RegisterEndpoints(mux)

	return api, serviceMock, mux
}

func scopedRequest(method, target, body, role string) *http.Request {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	ctx := authentication.WithPrincipalID(req.Context(), "actor-1")
	ctx = authorization.WithOrgContext(ctx, &types.OrgContext{
		OrganizationID:     "org-1",
		SubOrganizationIDs: []string{"sub-1"},
	})
	ctx = authorization.WithRole(ctx, role)

	return req.WithContext(ctx)
}

func TestAPI_HandleListEffective(t *testing.T) {
	_, serviceMock, mux := newTestAPI(t)

	serviceMock.EXPECT().ListEffective(gomock.Any(), RoleInstructor, "org-1").
		Return([]*types.EffectivePermission{
			{PermissionID: "course.view", IsDefault: true, IsEnabled: true},
		}, nil)

	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, scopedRequest(http.MethodGet, "/api/v0/permissions/instructor", "", "user"))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
}

func TestAPI_HandleSetOverrides_AdminOnly(t *testing.T) {
	_, _, mux := newTestAPI(t)

	body := `{"permissions":[{"permissionId":"course.edit","isEnabled":true}]}`
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, scopedRequest(http.MethodPut, "/api/v0/permissions/instructor", body, "user"))

	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for non-admin, got %d", rr.Code)
	}

	var resp httpTypes.ErrorResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if resp.Code != authorization.CodeAdminRequired {
		t.Errorf("expected admin_required, got %q", resp.Code)
	}
}

func TestAPI_HandleSetOverrides(t *testing.T) {
	_, serviceMock, mux := newTestAPI(t)

	serviceMock.EXPECT().SetOverrides(gomock.Any(), "org-1", "instructor", gomock.Any(), "actor-1").
		Return([]OverrideResult{{PermissionID: "course.edit", Action: ActionUpdated}}, nil)

	body := `{"permissions":[{"permissionId":"course.edit","isEnabled":true}]}`
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, scopedRequest(http.MethodPut, "/api/v0/permissions/instructor", body, "admin"))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
}

func TestAPI_HandleSetOverrides_EmptyBatchRejected(t *testing.T) {
	_, _, mux := newTestAPI(t)

	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, scopedRequest(http.MethodPut, "/api/v0/permissions/instructor", `{"permissions":[]}`, "admin"))

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for empty batch, got %d", rr.Code)
	}
}
