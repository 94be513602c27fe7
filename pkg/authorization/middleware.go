// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"errors"
	"net/http"

	"github.com/canonical/orgauth-service/internal/claims"
	"github.com/canonical/orgauth-service/internal/logging"
	"github.com/canonical/orgauth-service/internal/monitoring"
	"github.com/canonical/orgauth-service/internal/roles"
	"github.com/canonical/orgauth-service/internal/tracing"
	"github.com/canonical/orgauth-service/internal/types"
	"github.com/canonical/orgauth-service/pkg/authentication"
)

// Middleware is the organization scope guard. It resolves the caller's
// claims exactly once per request and attaches the selected organization
// scope and normalized role to the request context. Every failure is a
// typed *Error with a stable code.
type Middleware struct {
	claims  ClaimsCacheInterface
	session SessionReaderInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewMiddleware(
	claimsCache ClaimsCacheInterface,
	session SessionReaderInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Middleware {
	return &Middleware{
		claims:  claimsCache,
		session: session,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

// OrganizationScope guards a route subtree. Downstream handlers can rely on
// GetOrgContext and GetRole succeeding.
func (m *Middleware) OrganizationScope() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := m.tracer.Start(r.Context(), "authorization.Middleware.OrganizationScope")
			defer span.End()

			principalID, ok := authentication.GetPrincipalID(ctx)
			if !ok || principalID == "" {
				WriteError(w, NewError(CodeNoPrincipal, "unauthenticated"))
				return
			}

			snapshot, err := m.claims.Get(ctx, principalID)
			if err != nil {
				var unavailable *claims.ClaimsUnavailableError
				if errors.As(err, &unavailable) {
					WriteError(w, NewError(CodeClaimsUnavailable, "memberships temporarily unavailable"))
					return
				}

				m.logger.Errorf("failed to resolve claims for %s: %v", principalID, err)
				WriteError(w, NewError(CodeInternal, "internal server error"))
				return
			}

			if len(snapshot.Organizations) == 0 {
				m.logger.Security().AuthzFailure(principalID, "organization_scope")
				WriteError(w, NewError(CodeNoOrganizationMembership, "no organization membership"))
				return
			}

			selection := m.session.CurrentOrganization(r)
			if selection == nil {
				WriteError(w, NewError(CodeNoOrganizationSelected, "no organization selected"))
				return
			}

			membership := snapshot.FindByExternalOrgID(selection.ExternalOrgID)
			if membership == nil || !membership.HasUsableAccess() {
				m.logger.Security().AuthzFailure(principalID, "organization_scope")
				WriteError(w, NewError(CodeOrganizationAccessDenied, "organization access denied"))
				return
			}

			octx := &types.OrgContext{
				OrganizationID:     membership.OrganizationID,
				SubOrganizationIDs: membership.SubOrganizationIDs,
			}

			ctx = WithOrgContext(ctx, octx)
			ctx = WithRole(ctx, roles.Normalize(membership.Role))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
