// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package permissions

import (
	"encoding/json"
	"errors"
	"net/http"

	chi "github.com/go-chi/chi/v5"
	validator "github.com/go-playground/validator/v10"

	httpTypes "github.com/canonical/orgauth-service/internal/http/types"
	"github.com/canonical/orgauth-service/internal/logging"
	"github.com/canonical/orgauth-service/internal/monitoring"
	"github.com/canonical/orgauth-service/internal/tracing"
	"github.com/canonical/orgauth-service/pkg/authentication"
	"github.com/canonical/orgauth-service/pkg/authorization"
)

type SetOverridesRequest struct {
	Permissions []OverrideItem `json:"permissions" validate:"required,min=1,dive"`
}

type API struct {
	service  ServiceInterface
	validate *validator.Validate

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
		service:  service,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}

// RegisterEndpoints mounts the permission routes. The router wraps them in
// the organization scope guard, handlers can rely on an established scope.
func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Get("/api/v0/permissions/{roleID}", a.handleListEffective)
	mux.Put("/api/v0/permissions/{roleID}", a.handleSetOverrides)
}

func (a *API) handleListEffective(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "permissions.API.handleListEffective")
	defer span.End()

	octx, ok := authorization.GetOrgContext(ctx)
	if !ok {
		authorization.WriteError(w, authorization.NewError(authorization.CodeNoOrganizationSelected, "no organization selected"))
		return
	}

	effective, err := a.service.ListEffective(ctx, chi.URLParam(r, "roleID"), octx.OrganizationID)
	if err != nil {
		a.writeServiceError(w, err)
		return
	}

	a.writeData(w, http.StatusOK, effective)
}

func (a *API) handleSetOverrides(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "permissions.API.handleSetOverrides")
	defer span.End()

	octx, ok := authorization.GetOrgContext(ctx)
	if !ok {
		authorization.WriteError(w, authorization.NewError(authorization.CodeNoOrganizationSelected, "no organization selected"))
		return
	}

	role, _ := authorization.GetRole(ctx)
	if guardErr := authorization.RequireAdmin(role); guardErr != nil {
		authorization.WriteError(w, guardErr)
		return
	}

	actorID, _ := authentication.GetPrincipalID(ctx)

	var req SetOverridesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		authorization.WriteError(w, authorization.NewError(authorization.CodeValidationError, "invalid request body"))
		return
	}

	if err := a.validate.Struct(req); err != nil {
		authorization.WriteError(w, authorization.NewError(authorization.CodeValidationError, "permissions list is required"))
		return
	}

	results, err := a.service.SetOverrides(ctx, octx.OrganizationID, chi.URLParam(r, "roleID"), req.Permissions, actorID)
	if err != nil {
		a.writeServiceError(w, err)
		return
	}

	a.writeData(w, http.StatusOK, results)
}

func (a *API) writeServiceError(w http.ResponseWriter, err error) {
	var validation *ValidationError
	if errors.As(err, &validation) {
		authorization.WriteError(w, authorization.NewError(authorization.CodeValidationError, validation.Message))
		return
	}

	a.logger.Errorf("permission operation failed: %v", err)
	authorization.WriteError(w, authorization.NewError(authorization.CodeInternal, "internal server error"))
}

func (a *API) writeData(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(httpTypes.Response{Data: data, Status: status}); err != nil {
		a.logger.Errorf("failed to encode response: %v", err)
	}
}
