// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package config

import (
	"time"
)

// EnvSpec is the basic environment configuration setup needed for the app to start
type EnvSpec struct {
	OtelGRPCEndpoint string `envconfig:"otel_grpc_endpoint"`
	OtelHTTPEndpoint string `envconfig:"otel_http_endpoint"`
	TracingEnabled   bool   `envconfig:"tracing_enabled" default:"true"`

	LogLevel string `envconfig:"log_level" default:"error"`
	Debug    bool   `envconfig:"debug" default:"false"`

	Port int `envconfig:"port" default:"8080"`

	DSN string `envconfig:"DSN" required:"true"`

	DBMaxConns        int32         `envconfig:"db_max_conns" default:"25"`
	DBMinConns        int32         `envconfig:"db_min_conns" default:"2"`
	DBMaxConnLifetime time.Duration `envconfig:"db_max_conn_lifetime" default:"1h"`
	DBMaxConnIdleTime time.Duration `envconfig:"db_max_conn_idle_time" default:"30m"`

	// SessionSecret seeds the CryptoBox key derivation, the process
	// refuses to start without it.
	SessionSecret     string        `envconfig:"session_secret" required:"true"`
	SessionCookieName string        `envconfig:"session_cookie_name" default:"orgauth_current_org"`
	SecureCookies     bool          `envconfig:"secure_cookies" default:"true"`
	ClaimsTTL         time.Duration `envconfig:"claims_ttl" default:"5m"`

	AuthenticationEnabled bool     `envconfig:"authentication_enabled" default:"true"`
	OIDCIssuer            string   `envconfig:"oidc_issuer"`
	JWKSURL               string   `envconfig:"jwks_url"`
	AllowedSubjects       []string `envconfig:"allowed_subjects"`
	RequiredScope         string   `envconfig:"required_scope" default:""`

	IDProviderURL          string `envconfig:"idprovider_url"`
	IDProviderTokenURL     string `envconfig:"idprovider_token_url"`
	IDProviderClientID     string `envconfig:"idprovider_client_id"`
	IDProviderClientSecret string `envconfig:"idprovider_client_secret"`
	WebhookSecret          string `envconfig:"webhook_secret"`
}
