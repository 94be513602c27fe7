// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"context"
	"fmt"

	"github.com/canonical/orgauth-service/internal/logging"
	"github.com/canonical/orgauth-service/internal/monitoring"
	"github.com/canonical/orgauth-service/internal/tracing"
)

// Membership events force a claims refresh on the next request. Anything
// else the provider sends is acknowledged and ignored.
var membershipEvents = map[string]struct{}{
	"organization_membership.created": {},
	"organization_membership.updated": {},
	"organization_membership.deleted": {},
}

type Service struct {
	claims ClaimsCacheInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	claims ClaimsCacheInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		claims:  claims,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

// HandleProviderEvent drops the cached snapshot of the principal a
// membership event refers to, so the change takes effect before the TTL
// would have expired it.
func (s *Service) HandleProviderEvent(ctx context.Context, event *ProviderEvent) error {
	_, span := s.tracer.Start(ctx, "webhooks.Service.HandleProviderEvent")
	defer span.End()

	if _, ok := membershipEvents[event.Event]; !ok {
		s.logger.Debugf("ignoring provider event %q", event.Event)
		return nil
	}

	if event.Data.UserID == "" {
		return fmt.Errorf("membership event %s carries no user id", event.ID)
	}

	s.claims.Invalidate(event.Data.UserID)
	s.logger.Infof("invalidated claims for principal %s after %s", event.Data.UserID, event.Event)

	return nil
}
