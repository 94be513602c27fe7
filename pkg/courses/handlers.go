// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package courses

import (
	"encoding/json"
	"errors"
	"net/http"

	chi "github.com/go-chi/chi/v5"

	httpTypes "github.com/canonical/orgauth-service/internal/http/types"
	"github.com/canonical/orgauth-service/internal/logging"
	"github.com/canonical/orgauth-service/internal/monitoring"
	"github.com/canonical/orgauth-service/internal/tracing"
	"github.com/canonical/orgauth-service/pkg/authorization"
)

type API struct {
	service ServiceInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewAPI(
	service ServiceInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *API {
	return &API{
		service: service,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Get("/api/v0/courses", a.handleList)
	mux.Get("/api/v0/courses/{courseID}", a.handleGet)
}

func (a *API) handleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "courses.API.handleList")
	defer span.End()

	octx, ok := authorization.GetOrgContext(ctx)
	if !ok {
		authorization.WriteError(w, authorization.NewError(authorization.CodeNoOrganizationSelected, "no organization selected"))
		return
	}

	list, err := a.service.ListCourses(ctx, octx)
	if err != nil {
		a.logger.Errorf("failed to list courses: %v", err)
		authorization.WriteError(w, authorization.NewError(authorization.CodeInternal, "internal server error"))
		return
	}

	a.writeData(w, http.StatusOK, list)
}

func (a *API) handleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "courses.API.handleGet")
	defer span.End()

	octx, ok := authorization.GetOrgContext(ctx)
	if !ok {
		authorization.WriteError(w, authorization.NewError(authorization.CodeNoOrganizationSelected, "no organization selected"))
		return
	}

	course, err := a.service.GetCourse(ctx, octx, chi.URLParam(r, "courseID"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			authorization.WriteError(w, authorization.NewError(authorization.CodeNotFound, "resource not found"))
			return
		}

		a.logger.Errorf("failed to get course: %v", err)
		authorization.WriteError(w, authorization.NewError(authorization.CodeInternal, "internal server error"))
		return
	}

	a.writeData(w, http.StatusOK, course)
}

func (a *API) writeData(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(httpTypes.Response{Data: data, Status: status}); err != nil {
		a.logger.Errorf("failed to encode response: %v", err)
	}
}
