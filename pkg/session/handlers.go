// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package session

import (
	"encoding/json"
	"errors"
	"net/http"

	chi "github.com/go-chi/chi/v5"
	validator "github.com/go-playground/validator/v10"

	"github.com/canonical/orgauth-service/internal/claims"
	httpTypes "github.com/canonical/orgauth-service/internal/http/types"
	"github.com/canonical/orgauth-service/internal/logging"
	"github.com/canonical/orgauth-service/internal/monitoring"
	"github.com/canonical/orgauth-service/internal/tracing"
	"github.com/canonical/orgauth-service/pkg/authentication"
)

type SetOrganizationRequest struct {
	OrganizationID string `json:"organizationId" validate:"required"`
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

func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Get("/api/v0/session/organization", a.handleGetOrganization)
	mux.Put("/api/v0/session/organization", a.handleSetOrganization)
	mux.Delete("/api/v0/session/organization", a.handleClearOrganization)
	mux.Get("/api/v0/session/organizations", a.handleListOrganizations)
}

func (a *API) handleGetOrganization(w http.ResponseWriter, r *http.Request) {
	_, span := a.tracer.Start(r.Context(), "session.API.handleGetOrganization")
	defer span.End()

	payload := a.service.CurrentOrganization(r)
	if payload == nil {
		a.writeError(w, http.StatusNotFound, "no_organization_selected", "no organization selected")
		return
	}

	a.writeData(w, http.StatusOK, payload)
}

func (a *API) handleSetOrganization(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "session.API.handleSetOrganization")
	defer span.End()

	principalID, ok := authentication.GetPrincipalID(ctx)
	if !ok {
		a.writeError(w, http.StatusUnauthorized, "no_principal", "unauthenticated")
		return
	}

	var req SetOrganizationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.writeError(w, http.StatusBadRequest, "validation_error", "invalid request body")
		return
	}

	if err := a.validate.Struct(req); err != nil {
		a.writeError(w, http.StatusBadRequest, "validation_error", "organizationId is required")
		return
	}

	payload, err := a.service.SetCurrentOrganization(ctx, w, principalID, req.OrganizationID)
	if err != nil {
		switch {
		case errors.Is(err, ErrOrganizationAccessDenied):
			a.writeError(w, http.StatusForbidden, "organization_access_denied", "organization access denied")
		case isClaimsUnavailable(err):
			a.writeError(w, http.StatusServiceUnavailable, "claims_unavailable", "memberships temporarily unavailable")
		default:
			a.logger.Errorf("failed to set current organization: %v", err)
			a.writeError(w, http.StatusInternalServerError, "internal_error", "internal server error")
		}
		return
	}

	a.writeData(w, http.StatusOK, payload)
}

func (a *API) handleClearOrganization(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "session.API.handleClearOrganization")
	defer span.End()

	principalID, ok := authentication.GetPrincipalID(ctx)
	if !ok {
		a.writeError(w, http.StatusUnauthorized, "no_principal", "unauthenticated")
		return
	}

	a.service.ClearCurrentOrganization(w, principalID)
	a.writeData(w, http.StatusOK, nil)
}

func (a *API) handleListOrganizations(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "session.API.handleListOrganizations")
	defer span.End()

	principalID, ok := authentication.GetPrincipalID(ctx)
	if !ok {
		a.writeError(w, http.StatusUnauthorized, "no_principal", "unauthenticated")
		return
	}

	organizations, err := a.service.ListOrganizations(ctx, principalID)
	if err != nil {
		if isClaimsUnavailable(err) {
			a.writeError(w, http.StatusServiceUnavailable, "claims_unavailable", "memberships temporarily unavailable")
			return
		}

		a.logger.Errorf("failed to list organizations: %v", err)
		a.writeError(w, http.StatusInternalServerError, "internal_error", "internal server error")
		return
	}

	a.writeData(w, http.StatusOK, organizations)
}

func (a *API) writeData(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(httpTypes.Response{Data: data, Status: status}); err != nil {
		a.logger.Errorf("failed to encode response: %v", err)
	}
}

func (a *API) writeError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(httpTypes.ErrorResponse{Code: code, Message: message, Status: status}); err != nil {
		a.logger.Errorf("failed to encode error response: %v", err)
	}
}

func isClaimsUnavailable(err error) bool {
	var unavailable *claims.ClaimsUnavailableError
	return errors.As(err, &unavailable)
}
