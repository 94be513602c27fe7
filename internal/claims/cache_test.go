// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package claims

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/canonical/orgauth-service/internal/idprovider"
	"github.com/canonical/orgauth-service/internal/logging"
	"github.com/canonical/orgauth-service/internal/monitoring"
	"github.com/canonical/orgauth-service/internal/storage"
	"github.com/canonical/orgauth-service/internal/tracing"
	"github.com/canonical/orgauth-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package claims -destination ./mock_claims.go -source=./interfaces.go

const testPrincipal = "principal-123"

func newTestCache(t *testing.T, ttl time.Duration) (*Cache, *MockProviderInterface, *MockDirectoryInterface) {
	t.Helper()

	ctrl := gomock.NewController(t)
	provider := NewMockProviderInterface(ctrl)
	directory := NewMockDirectoryInterface(ctrl)

	cache := NewCache(
		provider,
		directory,
		ttl,
		tracing.NewNoopTracer(),
		monitoring.NewNoopMonitor(),
		logging.NewNoopLogger(),
	)

	return cache, provider, directory
}

func TestCache_Get_BuildsNormalizedSnapshot(t *testing.T) {
	cache, provider, directory := newTestCache(t, 5*time.Minute)
	ctx := context.Background()

	provider.EXPECT().ListMemberships(gomock.Any(), testPrincipal).Return([]idprovider.RawMembership{
		{ExternalOrgID: "ext-admin", Role: "Owner", Status: "Active"},
		{ExternalOrgID: "ext-user", Role: "Instructor", Status: "active"},
		{ExternalOrgID: "ext-inactive", Role: "member", Status: "pending"},
		{ExternalOrgID: "ext-unknown", Role: "member", Status: "active"},
	}, nil)

	directory.EXPECT().FindOrganizationByExternalID(gomock.Any(), "ext-admin").
		Return(&types.Organization{ID: "org-a", ExternalID: "ext-admin", Title: "Org A"}, nil)
	directory.EXPECT().FindOrganizationByExternalID(gomock.Any(), "ext-user").
		Return(&types.Organization{ID: "org-b", ExternalID: "ext-user", Title: "Org B"}, nil)
	directory.EXPECT().FindOrganizationByExternalID(gomock.Any(), "ext-inactive").
		Return(&types.Organization{ID: "org-c", ExternalID: "ext-inactive", Title: "Org C"}, nil)
	directory.EXPECT().FindOrganizationByExternalID(gomock.Any(), "ext-unknown").
		Return(nil, storage.ErrNotFound)

	directory.EXPECT().ListSubOrganizationIDs(gomock.Any(), "org-a").
		Return([]string{"sub-1", "sub-2"}, nil)
	directory.EXPECT().ListAccessibleSubOrganizationIDs(gomock.Any(), "org-b", testPrincipal).
		Return([]string{"sub-3"}, nil)

	snapshot, err := cache.Get(ctx, testPrincipal)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(snapshot.Organizations) != 3 {
		t.Fatalf("expected 3 memberships, got %d", len(snapshot.Organizations))
	}

	admin := snapshot.FindByExternalOrgID("ext-admin")
	if admin == nil || len(admin.SubOrganizationIDs) != 2 {
		t.Errorf("expected admin membership with full sub-organization set, got %+v", admin)
	}
	if admin.Status != types.MembershipStatusActive {
		t.Errorf("expected normalized status, got %q", admin.Status)
	}

	user := snapshot.FindByExternalOrgID("ext-user")
	if user == nil || len(user.SubOrganizationIDs) != 1 || user.SubOrganizationIDs[0] != "sub-3" {
		t.Errorf("expected granted subset for user membership, got %+v", user)
	}

	inactive := snapshot.FindByExternalOrgID("ext-inactive")
	if inactive == nil {
		t.Fatal("expected inactive membership to be kept")
	}
	if inactive.HasUsableAccess() {
		t.Error("inactive membership must not grant usable access")
	}

	if snapshot.FindByExternalOrgID("ext-unknown") != nil {
		t.Error("membership for unknown organization should be dropped")
	}
}

func TestCache_Get_FreshSnapshotServedWithoutUpstreamCall(t *testing.T) {
	cache, provider, directory := newTestCache(t, 5*time.Minute)
	ctx := context.Background()

	provider.EXPECT().ListMemberships(gomock.Any(), testPrincipal).Return(nil, nil).Times(1)
	_ = directory

	first, err := cache.Get(ctx, testPrincipal)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	second, err := cache.Get(ctx, testPrincipal)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first != second {
		t.Error("expected the identical cached snapshot on the second get")
	}
}

func TestCache_Invalidate_ForcesRefresh(t *testing.T) {
	cache, provider, _ := newTestCache(t, 5*time.Minute)
	ctx := context.Background()

	provider.EXPECT().ListMemberships(gomock.Any(), testPrincipal).Return(nil, nil).Times(2)

	first, err := cache.Get(ctx, testPrincipal)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cache.Invalidate(testPrincipal)

	second, err := cache.Get(ctx, testPrincipal)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first == second {
		t.Error("expected a fresh snapshot after invalidation")
	}
}

func TestCache_Get_StaleFallbackOnUpstreamFailure(t *testing.T) {
	// A non-positive TTL makes every stored snapshot immediately stale.
	cache, provider, _ := newTestCache(t, -time.Second)
	ctx := context.Background()

	provider.EXPECT().ListMemberships(gomock.Any(), testPrincipal).Return(nil, nil)
	stale, err := cache.Warm(ctx, testPrincipal)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	provider.EXPECT().ListMemberships(gomock.Any(), testPrincipal).Return(nil, errors.New("provider down"))

	got, err := cache.Get(ctx, testPrincipal)
	if err != nil {
		t.Fatalf("expected stale fallback, got error: %v", err)
	}
	if got != stale {
		t.Error("expected the stale snapshot to be returned")
	}

	// The stale snapshot stays expired, so the next call retries upstream.
	provider.EXPECT().ListMemberships(gomock.Any(), testPrincipal).Return(nil, nil)
	fresh, err := cache.Get(ctx, testPrincipal)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fresh == stale {
		t.Error("expected a rebuilt snapshot once upstream recovers")
	}
}

func TestCache_Warm_FailedRefreshKeepsPriorSnapshot(t *testing.T) {
	cache, provider, _ := newTestCache(t, 5*time.Minute)
	ctx := context.Background()

	provider.EXPECT().ListMemberships(gomock.Any(), testPrincipal).Return(nil, nil)
	seeded, err := cache.Warm(ctx, testPrincipal)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	provider.EXPECT().ListMemberships(gomock.Any(), testPrincipal).Return(nil, errors.New("provider down"))
	got, err := cache.Warm(ctx, testPrincipal)
	if err != nil {
		t.Fatalf("expected the prior snapshot on failed warm, got error: %v", err)
	}
	if got != seeded {
		t.Error("expected the prior snapshot to be returned")
	}

	// The prior snapshot is still cached and fresh, so no upstream call.
	after, err := cache.Get(ctx, testPrincipal)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if after != seeded {
		t.Error("expected the prior snapshot to remain cached after a failed warm")
	}
}

func TestCache_Get_UnavailableWithoutSnapshot(t *testing.T) {
	cache, provider, _ := newTestCache(t, 5*time.Minute)
	ctx := context.Background()

	provider.EXPECT().ListMemberships(gomock.Any(), testPrincipal).Return(nil, errors.New("provider down"))

	_, err := cache.Get(ctx, testPrincipal)
	if err == nil {
		t.Fatal("expected error when no snapshot exists")
	}

	var unavailable *ClaimsUnavailableError
	if !errors.As(err, &unavailable) {
		t.Fatalf("expected ClaimsUnavailableError, got %T", err)
	}
	if unavailable.PrincipalID != testPrincipal {
		t.Errorf("expected principal %q on error, got %q", testPrincipal, unavailable.PrincipalID)
	}
}

func TestCache_Get_SingleFlight(t *testing.T) {
	cache, provider, _ := newTestCache(t, 5*time.Minute)
	ctx := context.Background()

	const callers = 8

	release := make(chan struct{})
	provider.EXPECT().ListMemberships(gomock.Any(), testPrincipal).
		DoAndReturn(func(context.Context, string) ([]idprovider.RawMembership, error) {
			<-release
			return nil, nil
		}).Times(1)

	var wg sync.WaitGroup
	results := make([]*types.ClaimsSnapshot, callers)
	errs := make([]error, callers)

	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = cache.Get(ctx, testPrincipal)
		}(i)
	}

	// Let every caller reach the in-flight refresh before releasing it.
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	for i := 0; i < callers; i++ {
		if errs[i] != nil {
			t.Fatalf("caller %d: unexpected error: %v", i, errs[i])
		}
		if results[i] != results[0] {
			t.Errorf("caller %d received a different snapshot", i)
		}
	}
}

func TestCache_ParallelRefreshForDifferentPrincipals(t *testing.T) {
	cache, provider, _ := newTestCache(t, 5*time.Minute)
	ctx := context.Background()

	provider.EXPECT().ListMemberships(gomock.Any(), "principal-a").Return(nil, nil)
	provider.EXPECT().ListMemberships(gomock.Any(), "principal-b").Return(nil, nil)

	var wg sync.WaitGroup
	for _, principal := range []string{"principal-a", "principal-b"} {
		wg.Add(1)
		go func(p string) {
			defer wg.Done()
			if _, err := cache.Get(ctx, p); err != nil {
				t.Errorf("get %s: %v", p, err)
			}
		}(principal)
	}
	wg.Wait()
}
