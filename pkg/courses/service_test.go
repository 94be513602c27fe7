// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package courses

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	chi "github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	httpTypes "github.com/canonical/orgauth-service/internal/http/types"
	"github.com/canonical/orgauth-service/internal/logging"
	"github.com/canonical/orgauth-service/internal/monitoring"
	"github.com/canonical/orgauth-service/internal/storage"
	"github.com/canonical/orgauth-service/internal/tracing"
	"github.com/canonical/orgauth-service/internal/types"
	"github.com/canonical/orgauth-service/pkg/authorization"
)

//go:generate mockgen -build_flags=--mod=mod -package courses -destination ./mock_courses.go -source=./interfaces.go

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

func testScope() *types.OrgContext {
	return &types.OrgContext{
		OrganizationID:     "org-1",
		SubOrganizationIDs: []string{"sub-1", "sub-2"},
	}
}

func TestService_GetCourse_ScopesTheQuery(t *testing.T) {
	service, storageMock := newTestService(t)

	storageMock.EXPECT().FindCourseByID(gomock.Any(), "course-1", []string{"sub-1", "sub-2"}).
		Return(&types.Course{ID: "course-1", SubOrganizationID: "sub-1", Title: "Intro"}, nil)

	course, err := service.GetCourse(context.Background(), testScope(), "course-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if course.ID != "course-1" {
		t.Errorf("unexpected course: %+v", course)
	}
}

func TestService_GetCourse_OutOfScopeEqualsMissing(t *testing.T) {
	service, storageMock := newTestService(t)

	// The store answers identically for a foreign course and a nonexistent
	// one, so the service cannot leak the difference even by accident.
	storageMock.EXPECT().FindCourseByID(gomock.Any(), "course-foreign", gomock.Any()).
		Return(nil, storage.ErrNotFound)
	storageMock.EXPECT().FindCourseByID(gomock.Any(), "course-missing", gomock.Any()).
		Return(nil, storage.ErrNotFound)

	_, errForeign := service.GetCourse(context.Background(), testScope(), "course-foreign")
	_, errMissing := service.GetCourse(context.Background(), testScope(), "course-missing")

	if !errors.Is(errForeign, ErrNotFound) || !errors.Is(errMissing, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for both, got %v and %v", errForeign, errMissing)
	}
	if errForeign.Error() != errMissing.Error() {
		t.Error("out-of-scope and missing courses must be indistinguishable")
	}
}

func TestAPI_HandleGet_NotFoundBodiesAreIdentical(t *testing.T) {
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

	serviceMock.EXPECT().GetCourse(gomock.Any(), gomock.Any(), "course-foreign").Return(nil, ErrNotFound)
	serviceMock.EXPECT().GetCourse(gomock.Any(), gomock.Any(), "course-missing").Return(nil, ErrNotFound)

	bodies := make([]string, 0, 2)
	for _, id := range []string{"course-foreign", "course-missing"} {
		req := httptest.NewRequest(http.MethodGet, "/api/v0/courses/"+id, nil)
		req = req.WithContext(authorization.WithOrgContext(req.Context(), testScope()))

		rr := httptest.NewRecorder()
		mux.ServeHTTP(rr, req)

		if rr.Code != http.StatusNotFound {
			t.Fatalf("expected 404 for %s, got %d", id, rr.Code)
		}

		var resp httpTypes.ErrorResponse
		if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to decode body: %v", err)
		}
		if resp.Code != authorization.CodeNotFound {
			t.Errorf("expected not_found for %s, got %q", id, resp.Code)
		}

		bodies = append(bodies, rr.Body.String())
	}

	if bodies[0] != bodies[1] {
		t.Error("response bodies must not reveal whether the course exists elsewhere")
	}
}
