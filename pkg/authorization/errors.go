// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"encoding/json"
	"net/http"

	httpTypes "github.com/canonical/orgauth-service/internal/http/types"
)

// Stable machine readable error codes. Clients branch on these, never
// on messages.
const (
	CodeNoPrincipal               = "no_principal"
	CodeClaimsUnavailable         = "claims_unavailable"
	CodeNoOrganizationMembership  = "no_organization_membership"
	CodeNoOrganizationSelected    = "no_organization_selected"
	CodeOrganizationAccessDenied  = "organization_access_denied"
	CodeResourceNotInOrganization = "resource_not_in_organization"
	CodeAdminRequired             = "admin_required"
	CodeValidationError           = "validation_error"
	CodeNotFound                  = "not_found"
	CodeInternal                  = "internal_error"
)

type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// HTTPStatus maps the code to its response status.
func (e *Error) HTTPStatus() int {
	switch e.Code {
	case CodeNoPrincipal:
		return http.StatusUnauthorized
	case CodeNoOrganizationSelected, CodeValidationError:
		return http.StatusBadRequest
	case CodeNoOrganizationMembership, CodeOrganizationAccessDenied, CodeAdminRequired:
		return http.StatusForbidden
	case CodeResourceNotInOrganization, CodeNotFound:
		return http.StatusNotFound
	case CodeClaimsUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func NewError(code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// ErrResourceNotInOrganization marks a resource that exists but sits outside
// the caller's organization. WriteError renders it as a plain not-found so the
// response is indistinguishable from the resource not existing at all.
var ErrResourceNotInOrganization = &Error{
	Code:    CodeResourceNotInOrganization,
	Message: "resource not found",
}

// WriteError renders a guard error as JSON. Tenant boundary violations are
// collapsed into the generic not-found body before they leave the process.
func WriteError(w http.ResponseWriter, guardErr *Error) {
	code, message := guardErr.Code, guardErr.Message
	if code == CodeResourceNotInOrganization {
		code, message = CodeNotFound, "resource not found"
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(guardErr.HTTPStatus())
	_ = json.NewEncoder(w).Encode(httpTypes.ErrorResponse{
		Code:    code,
		Message: message,
		Status:  guardErr.HTTPStatus(),
	})
}
