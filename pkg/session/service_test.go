// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package session

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/canonical/orgauth-service/internal/cryptobox"
	"github.com/canonical/orgauth-service/internal/logging"
	"github.com/canonical/orgauth-service/internal/monitoring"
	"github.com/canonical/orgauth-service/internal/storage"
	"github.com/canonical/orgauth-service/internal/tracing"
	"github.com/canonical/orgauth-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package session -destination ./mock_session.go -source=./interfaces.go

const (
	testCookieName = "orgauth_current_org"
	testPrincipal  = "principal-123"
)

func newTestService(t *testing.T) (*Service, *MockClaimsCacheInterface, *MockStorageInterface) {
	t.Helper()

	ctrl := gomock.NewController(t)
	claimsMock := NewMockClaimsCacheInterface(ctrl)
	storageMock := NewMockStorageInterface(ctrl)

	box, err := cryptobox.New("test-session-secret")
	if err != nil {
		t.Fatalf("failed to build cryptobox: %v", err)
	}

	service := NewService(
		box,
		claimsMock,
		storageMock,
		testCookieName,
		false,
		tracing.NewNoopTracer(),
		monitoring.NewNoopMonitor(),
		logging.NewNoopLogger(),
	)

	return service, claimsMock, storageMock
}

func activeSnapshot() *types.ClaimsSnapshot {
	return &types.ClaimsSnapshot{
		PrincipalID: testPrincipal,
		Organizations: []types.Membership{
			{
				PrincipalID:        testPrincipal,
				OrganizationID:     "org-1",
				ExternalOrgID:      "ext-1",
				Title:              "Org One",
				Role:               "admin",
				Status:             types.MembershipStatusActive,
				SubOrganizationIDs: []string{"sub-1", "sub-2"},
			},
			{
				PrincipalID:    testPrincipal,
				OrganizationID: "org-2",
				ExternalOrgID:  "ext-2",
				Title:          "Org Two",
				Role:           "user",
				Status:         "pending",
			},
		},
		ExpiresAt: time.Now().Add(5 * time.Minute),
	}
}

func TestService_SetCurrentOrganization_WritesSealedCookie(t *testing.T) {
	service, claimsMock, storageMock := newTestService(t)
	ctx := context.Background()

	storageMock.EXPECT().FindOrganizationByID(gomock.Any(), "org-1").
		Return(&types.Organization{ID: "org-1", ExternalID: "ext-1", Title: "Org One"}, nil)
	claimsMock.EXPECT().Get(gomock.Any(), testPrincipal).Return(activeSnapshot(), nil)
	claimsMock.EXPECT().Invalidate(testPrincipal)

	rr := httptest.NewRecorder()
	payload, err := service.SetCurrentOrganization(ctx, rr, testPrincipal, "org-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if payload.OrganizationID != "org-1" || payload.ExternalOrgID != "ext-1" || payload.Title != "Org One" {
		t.Errorf("unexpected payload: %+v", payload)
	}
	if payload.SetAt.IsZero() {
		t.Error("expected setAt to be populated")
	}
	if payload.SessionID == "" {
		t.Error("expected a session id to be generated")
	}

	cookies := rr.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("expected exactly one cookie, got %d", len(cookies))
	}

	cookie := cookies[0]
	if cookie.Name != testCookieName {
		t.Errorf("unexpected cookie name %q", cookie.Name)
	}
	if !cookie.HttpOnly || cookie.SameSite != http.SameSiteLaxMode || cookie.Path != "/" {
		t.Errorf("unexpected cookie attributes: %+v", cookie)
	}
	if cookie.MaxAge != cookieMaxAge {
		t.Errorf("expected max age %d, got %d", cookieMaxAge, cookie.MaxAge)
	}

	// The round trip through the request path must yield the same selection.
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookie)

	if got := service.ReadCurrentOrganization(req); got != "org-1" {
		t.Errorf("expected org-1 from round trip, got %q", got)
	}

	roundTripped := service.CurrentOrganization(req)
	if roundTripped == nil || roundTripped.ExternalOrgID != "ext-1" {
		t.Errorf("unexpected round tripped payload: %+v", roundTripped)
	}
}

func TestService_SetCurrentOrganization_DeniedWritesNothing(t *testing.T) {
	tests := []struct {
		name       string
		orgID      string
		setupMocks func(*MockClaimsCacheInterface, *MockStorageInterface)
	}{
		{
			name:  "Organization does not exist",
			orgID: "org-missing",
			setupMocks: func(claimsMock *MockClaimsCacheInterface, storageMock *MockStorageInterface) {
				storageMock.EXPECT().FindOrganizationByID(gomock.Any(), "org-missing").
					Return(nil, storage.ErrNotFound)
			},
		},
		{
			name:  "No membership in organization",
			orgID: "org-3",
			setupMocks: func(claimsMock *MockClaimsCacheInterface, storageMock *MockStorageInterface) {
				storageMock.EXPECT().FindOrganizationByID(gomock.Any(), "org-3").
					Return(&types.Organization{ID: "org-3", ExternalID: "ext-3", Title: "Org Three"}, nil)
				claimsMock.EXPECT().Get(gomock.Any(), testPrincipal).Return(activeSnapshot(), nil)
			},
		},
		{
			name:  "Membership without usable access",
			orgID: "org-2",
			setupMocks: func(claimsMock *MockClaimsCacheInterface, storageMock *MockStorageInterface) {
				storageMock.EXPECT().FindOrganizationByID(gomock.Any(), "org-2").
					Return(&types.Organization{ID: "org-2", ExternalID: "ext-2", Title: "Org Two"}, nil)
				claimsMock.EXPECT().Get(gomock.Any(), testPrincipal).Return(activeSnapshot(), nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, claimsMock, storageMock := newTestService(t)
			tt.setupMocks(claimsMock, storageMock)

			rr := httptest.NewRecorder()
			_, err := service.SetCurrentOrganization(context.Background(), rr, testPrincipal, tt.orgID)

			if !errors.Is(err, ErrOrganizationAccessDenied) {
				t.Fatalf("expected ErrOrganizationAccessDenied, got %v", err)
			}
			if len(rr.Result().Cookies()) != 0 {
				t.Error("no cookie may be written on a denied selection")
			}
		})
	}
}

func TestService_CurrentOrganization_DegradesToNil(t *testing.T) {
	service, _, _ := newTestService(t)

	tests := []struct {
		name   string
		cookie *http.Cookie
	}{
		{name: "No cookie", cookie: nil},
		{name: "Empty value", cookie: &http.Cookie{Name: testCookieName, Value: ""}},
		{name: "Garbage value", cookie: &http.Cookie{Name: testCookieName, Value: "not-a-sealed-token"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.cookie != nil {
				req.AddCookie(tt.cookie)
			}

			if payload := service.CurrentOrganization(req); payload != nil {
				t.Errorf("expected nil payload, got %+v", payload)
			}
			if got := service.ReadCurrentOrganization(req); got != "" {
				t.Errorf("expected empty selection, got %q", got)
			}
		})
	}
}

func TestService_CurrentOrganization_RejectsForeignKeyCookie(t *testing.T) {
	service, _, _ := newTestService(t)

	otherBox, err := cryptobox.New("a-different-secret")
	if err != nil {
		t.Fatalf("failed to build cryptobox: %v", err)
	}

	sealed, err := otherBox.Seal([]byte(`{"organizationId":"org-1"}`))
	if err != nil {
		t.Fatalf("failed to seal payload: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: testCookieName, Value: sealed})

	if payload := service.CurrentOrganization(req); payload != nil {
		t.Errorf("cookie sealed under another key must be discarded, got %+v", payload)
	}
}

func TestService_ClearCurrentOrganization(t *testing.T) {
	service, _, _ := newTestService(t)

	rr := httptest.NewRecorder()
	service.ClearCurrentOrganization(rr, testPrincipal)

	cookies := rr.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("expected exactly one cookie, got %d", len(cookies))
	}
	if cookies[0].MaxAge >= 0 || cookies[0].Value != "" {
		t.Errorf("expected an expired empty cookie, got %+v", cookies[0])
	}
}

func TestService_GetOrganizationContext(t *testing.T) {
	service, _, storageMock := newTestService(t)
	ctx := context.Background()

	storageMock.EXPECT().FindOrganizationByID(gomock.Any(), "org-1").
		Return(&types.Organization{ID: "org-1", ExternalID: "ext-1", Title: "Org One"}, nil)
	storageMock.EXPECT().ListSubOrganizationIDs(gomock.Any(), "org-1").
		Return([]string{"sub-1", "sub-2", "sub-3"}, nil)

	overview, err := service.GetOrganizationContext(ctx, "org-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if overview == nil || len(overview.SubOrganizationIDs) != 3 {
		t.Errorf("expected full sub-organization list, got %+v", overview)
	}

	storageMock.EXPECT().FindOrganizationByID(gomock.Any(), "org-missing").
		Return(nil, storage.ErrNotFound)

	overview, err = service.GetOrganizationContext(ctx, "org-missing")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if overview != nil {
		t.Errorf("expected nil for a missing organization, got %+v", overview)
	}
}

func TestService_ListOrganizations_FiltersUnusableMemberships(t *testing.T) {
	service, claimsMock, _ := newTestService(t)

	claimsMock.EXPECT().Get(gomock.Any(), testPrincipal).Return(activeSnapshot(), nil)

	organizations, err := service.ListOrganizations(context.Background(), testPrincipal)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(organizations) != 1 {
		t.Fatalf("expected one usable organization, got %d", len(organizations))
	}
	if organizations[0].ID != "org-1" || len(organizations[0].SubOrganizationIDs) != 2 {
		t.Errorf("unexpected overview: %+v", organizations[0])
	}
}
