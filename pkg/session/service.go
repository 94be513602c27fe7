// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/canonical/orgauth-service/internal/logging"
	"github.com/canonical/orgauth-service/internal/monitoring"
	"github.com/canonical/orgauth-service/internal/storage"
	"github.com/canonical/orgauth-service/internal/tracing"
	"github.com/canonical/orgauth-service/internal/types"
)

// Cookies persist for 30 days, matching the upstream session lifetime.
const cookieMaxAge = 30 * 24 * 60 * 60

// ErrOrganizationAccessDenied is returned when a principal attempts to select
// an organization it has no usable membership in. The cookie is never written
// in that case.
var ErrOrganizationAccessDenied = errors.New("organization access denied")

type Service struct {
	box     BoxInterface
	claims  ClaimsCacheInterface
	storage StorageInterface

	cookieName    string
	secureCookies bool

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	box BoxInterface,
	claims ClaimsCacheInterface,
	store StorageInterface,
	cookieName string,
	secureCookies bool,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		box:           box,
		claims:        claims,
		storage:       store,
		cookieName:    cookieName,
		secureCookies: secureCookies,
		tracer:        tracer,
		monitor:       monitor,
		logger:        logger,
	}
}

func (s *Service) ReadCurrentOrganization(r *http.Request) string {
	payload := s.CurrentOrganization(r)
	if payload == nil {
		return ""
	}

	return payload.OrganizationID
}

// CurrentOrganization decodes the selection cookie. Every failure mode, from a
// missing cookie to a tampered ciphertext, degrades to nil.
func (s *Service) CurrentOrganization(r *http.Request) *types.SessionCookiePayload {
	cookie, err := r.Cookie(s.cookieName)
	if err != nil || cookie.Value == "" {
		return nil
	}

	plaintext, err := s.box.Open(cookie.Value)
	if err != nil {
		s.logger.Debugf("discarding undecryptable session cookie: %v", err)
		return nil
	}

	var payload types.SessionCookiePayload
	if err := json.Unmarshal(plaintext, &payload); err != nil {
		s.logger.Debugf("discarding malformed session payload: %v", err)
		return nil
	}

	if payload.OrganizationID == "" {
		return nil
	}

	return &payload
}

func (s *Service) SetCurrentOrganization(ctx context.Context, w http.ResponseWriter, principalID, organizationID string) (*types.SessionCookiePayload, error) {
	ctx, span := s.tracer.Start(ctx, "session.Service.SetCurrentOrganization")
	defer span.End()

	org, err := s.storage.FindOrganizationByID(ctx, organizationID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			s.logger.Security().AuthzFailure(principalID, "session_select_organization")
			return nil, ErrOrganizationAccessDenied
		}
		return nil, err
	}

	snapshot, err := s.claims.Get(ctx, principalID)
	if err != nil {
		return nil, err
	}

	membership := snapshot.FindByOrganizationID(org.ID)
	if membership == nil || !membership.HasUsableAccess() {
		s.logger.Security().AuthzFailure(principalID, "session_select_organization")
		return nil, ErrOrganizationAccessDenied
	}

	payload := &types.SessionCookiePayload{
		SessionID:      uuid.NewString(),
		OrganizationID: org.ID,
		ExternalOrgID:  org.ExternalID,
		Title:          org.Title,
		SetAt:          time.Now().UTC(),
	}

	plaintext, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode session payload: %w", err)
	}

	sealed, err := s.box.Seal(plaintext)
	if err != nil {
		return nil, fmt.Errorf("failed to seal session payload: %w", err)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     s.cookieName,
		Value:    sealed,
		Path:     "/",
		MaxAge:   cookieMaxAge,
		HttpOnly: true,
		Secure:   s.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})

	// The next scoped request should see memberships no older than the switch.
	s.claims.Invalidate(principalID)
	s.logger.Security().SessionEstablished(principalID, org.ID)

	return payload, nil
}

func (s *Service) ClearCurrentOrganization(w http.ResponseWriter, principalID string) {
	http.SetCookie(w, &http.Cookie{
		Name:     s.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})

	s.logger.Security().SessionCleared(principalID)
}

// GetOrganizationContext returns the unfiltered organization overview, with
// the full sub-organization ID list. Callers intersect with claims themselves.
// A missing organization yields nil, not an error.
func (s *Service) GetOrganizationContext(ctx context.Context, organizationID string) (*types.OrganizationOverview, error) {
	ctx, span := s.tracer.Start(ctx, "session.Service.GetOrganizationContext")
	defer span.End()

	org, err := s.storage.FindOrganizationByID(ctx, organizationID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	subIDs, err := s.storage.ListSubOrganizationIDs(ctx, org.ID)
	if err != nil {
		return nil, err
	}

	return &types.OrganizationOverview{
		ID:                 org.ID,
		ExternalID:         org.ExternalID,
		Title:              org.Title,
		SubOrganizationIDs: subIDs,
	}, nil
}

// ListOrganizations returns the switcher list derived from the principal's
// claims. Only memberships with usable access appear.
func (s *Service) ListOrganizations(ctx context.Context, principalID string) ([]*types.OrganizationOverview, error) {
	ctx, span := s.tracer.Start(ctx, "session.Service.ListOrganizations")
	defer span.End()

	snapshot, err := s.claims.Get(ctx, principalID)
	if err != nil {
		return nil, err
	}

	overviews := make([]*types.OrganizationOverview, 0, len(snapshot.Organizations))
	for _, membership := range snapshot.Organizations {
		if !membership.HasUsableAccess() {
			continue
		}

		overviews = append(overviews, &types.OrganizationOverview{
			ID:                 membership.OrganizationID,
			ExternalID:         membership.ExternalOrgID,
			Title:              membership.Title,
			SubOrganizationIDs: membership.SubOrganizationIDs,
		})
	}

	return overviews, nil
}
