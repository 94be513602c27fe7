// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package claims caches the normalized summary of a principal's
// organizational access so the identity provider is not consulted on
// every request.
package claims

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/canonical/orgauth-service/internal/idprovider"
	"github.com/canonical/orgauth-service/internal/logging"
	"github.com/canonical/orgauth-service/internal/monitoring"
	"github.com/canonical/orgauth-service/internal/roles"
	"github.com/canonical/orgauth-service/internal/storage"
	"github.com/canonical/orgauth-service/internal/tracing"
	"github.com/canonical/orgauth-service/internal/types"
)

// ClaimsUnavailableError means the identity provider was unreachable
// and no cached snapshot exists to fall back on. Retryable.
type ClaimsUnavailableError struct {
	PrincipalID string
	Err         error
}

func (e *ClaimsUnavailableError) Error() string {
	return fmt.Sprintf("claims unavailable for principal %s: %v", e.PrincipalID, e.Err)
}

func (e *ClaimsUnavailableError) Unwrap() error {
	return e.Err
}

var _ CacheInterface = (*Cache)(nil)

// Cache is process-wide shared state. Snapshots are immutable and
// replaced wholesale (copy-on-write), so readers never observe a
// half-built snapshot. Refreshes are single-flighted per principal.
type Cache struct {
	provider  ProviderInterface
	directory DirectoryInterface
	ttl       time.Duration

	mu        sync.RWMutex
	snapshots map[string]*types.ClaimsSnapshot
	group     singleflight.Group

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewCache(
	provider ProviderInterface,
	directory DirectoryInterface,
	ttl time.Duration,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Cache {
	return &Cache{
		provider:  provider,
		directory: directory,
		ttl:       ttl,
		snapshots: make(map[string]*types.ClaimsSnapshot),
		tracer:    tracer,
		monitor:   monitor,
		logger:    logger,
	}
}

func (c *Cache) Get(ctx context.Context, principalID string) (*types.ClaimsSnapshot, error) {
	ctx, span := c.tracer.Start(ctx, "claims.Cache.Get")
	defer span.End()

	if snapshot := c.lookup(principalID); snapshot != nil && !snapshot.Expired(time.Now()) {
		return snapshot, nil
	}

	return c.refresh(ctx, principalID)
}

func (c *Cache) Invalidate(principalID string) {
	c.mu.Lock()
	delete(c.snapshots, principalID)
	c.mu.Unlock()
}

func (c *Cache) Warm(ctx context.Context, principalID string) (*types.ClaimsSnapshot, error) {
	ctx, span := c.tracer.Start(ctx, "claims.Cache.Warm")
	defer span.End()

	// refresh bypasses the freshness check and replaces the entry only
	// on success, so a failed warm leaves the prior snapshot in place.
	return c.refresh(ctx, principalID)
}

// refresh collapses concurrent calls for the same principal onto one
// upstream fetch. Every waiter receives the identical snapshot. A
// failed or timed-out fetch clears the in-flight marker and installs
// nothing, the prior snapshot (if any) stays authoritative.
func (c *Cache) refresh(ctx context.Context, principalID string) (*types.ClaimsSnapshot, error) {
	v, err, _ := c.group.Do(principalID, func() (interface{}, error) {
		snapshot, err := c.build(ctx, principalID)
		if err != nil {
			if stale := c.lookup(principalID); stale != nil {
				// Availability over freshness: serve the stale snapshot
				// and leave it expired so the next call retries upstream.
				c.logger.Warnf("serving stale claims for principal %s: %v", principalID, err)
				return stale, nil
			}
			return nil, &ClaimsUnavailableError{PrincipalID: principalID, Err: err}
		}

		c.mu.Lock()
		c.snapshots[principalID] = snapshot
		c.mu.Unlock()

		return snapshot, nil
	})
	if err != nil {
		return nil, err
	}

	return v.(*types.ClaimsSnapshot), nil
}

func (c *Cache) build(ctx context.Context, principalID string) (*types.ClaimsSnapshot, error) {
	raw, err := c.provider.ListMemberships(ctx, principalID)
	if err != nil {
		return nil, err
	}

	memberships := make([]types.Membership, 0, len(raw))
	for _, rm := range raw {
		m, err := c.localize(ctx, principalID, rm)
		if err != nil {
			return nil, err
		}
		if m == nil {
			continue
		}
		memberships = append(memberships, *m)
	}

	return &types.ClaimsSnapshot{
		PrincipalID:   principalID,
		Organizations: memberships,
		ExpiresAt:     time.Now().Add(c.ttl),
	}, nil
}

// localize resolves a raw provider membership against the local store.
// Memberships for organizations this deployment does not know are
// dropped. Inactive memberships are kept, with no reachable
// sub-organizations, so callers can tell "not a member" from
// "member without usable access".
func (c *Cache) localize(ctx context.Context, principalID string, rm idprovider.RawMembership) (*types.Membership, error) {
	org, err := c.directory.FindOrganizationByExternalID(ctx, rm.ExternalOrgID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.logger.Debugf("no local organization for external id %s, skipping", rm.ExternalOrgID)
			return nil, nil
		}
		return nil, err
	}

	m := &types.Membership{
		PrincipalID:    principalID,
		OrganizationID: org.ID,
		ExternalOrgID:  org.ExternalID,
		Title:          org.Title,
		Role:           rm.Role,
		Status:         strings.ToLower(strings.TrimSpace(rm.Status)),
	}

	if m.Status != types.MembershipStatusActive {
		return m, nil
	}

	// Admins reach every sub-organization, everyone else only the
	// explicitly granted subset.
	if roles.IsAdmin(rm.Role) {
		m.SubOrganizationIDs, err = c.directory.ListSubOrganizationIDs(ctx, org.ID)
	} else {
		m.SubOrganizationIDs, err = c.directory.ListAccessibleSubOrganizationIDs(ctx, org.ID, principalID)
	}
	if err != nil {
		return nil, err
	}

	return m, nil
}

func (c *Cache) lookup(principalID string) *types.ClaimsSnapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.snapshots[principalID]
}
