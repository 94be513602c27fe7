// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package idprovider consumes the identity provider's directory API.
// The provider owns principals and raw organization memberships, this
// service only reads them.
package idprovider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/oauth2/clientcredentials"

	"github.com/canonical/orgauth-service/internal/logging"
	"github.com/canonical/orgauth-service/internal/monitoring"
	"github.com/canonical/orgauth-service/internal/tracing"
)

type ClientInterface interface {
	ListMemberships(ctx context.Context, principalID string) ([]RawMembership, error)
}

// RawMembership is one provider membership after boundary coercion.
// Provider payloads are not assumed well-typed, fields are coerced
// here before anything deeper sees them.
type RawMembership struct {
	ExternalOrgID string
	Role          string
	Status        string
}

type Config struct {
	BaseURL      string
	TokenURL     string
	ClientID     string
	ClientSecret string
}

type Client struct {
	baseURL string
	http    *http.Client

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewClient(cfg Config, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Client {
	cc := clientcredentials.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		TokenURL:     cfg.TokenURL,
	}

	ctx := context.Background()
	httpClient := cc.Client(ctx)
	httpClient.Transport = otelhttp.NewTransport(httpClient.Transport)

	return &Client{
		baseURL: cfg.BaseURL,
		http:    httpClient,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

// membershipEnvelope mirrors the provider's list response loosely. All
// fields are raw JSON so that shape drift upstream degrades to empty
// values instead of decode failures.
type membershipEnvelope struct {
	Data []json.RawMessage `json:"data"`
}

func (c *Client) ListMemberships(ctx context.Context, principalID string) ([]RawMembership, error) {
	ctx, span := c.tracer.Start(ctx, "idprovider.ListMemberships")
	defer span.End()

	endpoint := fmt.Sprintf("%s/user_management/users/%s/organization_memberships", c.baseURL, url.PathEscape(principalID))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build membership request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.setAvailability(0)
		return nil, fmt.Errorf("identity provider unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.setAvailability(0)
		return nil, fmt.Errorf("identity provider returned status %d", resp.StatusCode)
	}
	c.setAvailability(1)

	var envelope membershipEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("failed to decode membership response: %w", err)
	}

	memberships := make([]RawMembership, 0, len(envelope.Data))
	for _, raw := range envelope.Data {
		m, ok := coerceMembership(raw)
		if !ok {
			c.logger.Warnf("skipping malformed membership entry for principal %s", principalID)
			continue
		}
		memberships = append(memberships, m)
	}

	return memberships, nil
}

// coerceMembership extracts the three fields this service cares about
// from an untyped provider object. Role may arrive as a string or as a
// nested {slug} object depending on provider API version.
func coerceMembership(raw json.RawMessage) (RawMembership, bool) {
	var entry map[string]interface{}
	if err := json.Unmarshal(raw, &entry); err != nil {
		return RawMembership{}, false
	}

	orgID := stringField(entry, "organization_id")
	if orgID == "" {
		return RawMembership{}, false
	}

	role := stringField(entry, "role")
	if role == "" {
		if nested, ok := entry["role"].(map[string]interface{}); ok {
			role = stringField(nested, "slug")
		}
	}

	return RawMembership{
		ExternalOrgID: orgID,
		Role:          role,
		Status:        stringField(entry, "status"),
	}, true
}

func stringField(obj map[string]interface{}, key string) string {
	if v, ok := obj[key].(string); ok {
		return v
	}
	return ""
}

func (c *Client) setAvailability(v float64) {
	if err := c.monitor.SetDependencyAvailability(map[string]string{"dependency": "idprovider"}, v); err != nil {
		c.logger.Debugf("failed to record idprovider availability: %v", err)
	}
}
