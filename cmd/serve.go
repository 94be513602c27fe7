// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/cobra"

	"github.com/canonical/orgauth-service/internal/claims"
	"github.com/canonical/orgauth-service/internal/config"
	"github.com/canonical/orgauth-service/internal/cryptobox"
	"github.com/canonical/orgauth-service/internal/db"
	"github.com/canonical/orgauth-service/internal/idprovider"
	"github.com/canonical/orgauth-service/internal/logging"
	"github.com/canonical/orgauth-service/internal/monitoring/prometheus"
	"github.com/canonical/orgauth-service/internal/storage"
	"github.com/canonical/orgauth-service/internal/tracing"
	"github.com/canonical/orgauth-service/pkg/authentication"
	"github.com/canonical/orgauth-service/pkg/authorization"
	"github.com/canonical/orgauth-service/pkg/courses"
	"github.com/canonical/orgauth-service/pkg/permissions"
	"github.com/canonical/orgauth-service/pkg/session"
	"github.com/canonical/orgauth-service/pkg/web"
	"github.com/canonical/orgauth-service/pkg/webhooks"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "serve starts the web server",
	Long:  `Launch the web application, list of environment variables is available in the readme`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := serve(); err != nil {
			fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func serve() error {
	specs := new(config.EnvSpec)
	if err := envconfig.Process("", specs); err != nil {
		panic(fmt.Errorf("issues with environment sourcing: %s", err))
	}

	logger := logging.NewLogger(specs.LogLevel)
	defer logger.Sync()

	monitor := prometheus.NewMonitor("orgauth-service", logger)
	tracer := tracing.NewTracer(tracing.NewConfig(specs.TracingEnabled, specs.OtelGRPCEndpoint, specs.OtelHTTPEndpoint, logger))

	dbConfig := db.Config{
		DSN:             specs.DSN,
		MaxConns:        specs.DBMaxConns,
		MinConns:        specs.DBMinConns,
		MaxConnLifetime: specs.DBMaxConnLifetime,
		MaxConnIdleTime: specs.DBMaxConnIdleTime,
		TracingEnabled:  specs.TracingEnabled,
	}
	dbClient, err := db.NewDBClient(dbConfig, tracer, monitor, logger)
	if err != nil {
		return fmt.Errorf("failed to create database client: %v", err)
	}
	defer dbClient.Close()
	store := storage.NewStorage(dbClient, tracer, monitor, logger)

	box, err := cryptobox.New(specs.SessionSecret)
	if err != nil {
		return fmt.Errorf("failed to initialize session crypto: %v", err)
	}

	var provider claims.ProviderInterface
	if specs.IDProviderURL != "" {
		provider = idprovider.NewClient(
			idprovider.Config{
				BaseURL:      specs.IDProviderURL,
				TokenURL:     specs.IDProviderTokenURL,
				ClientID:     specs.IDProviderClientID,
				ClientSecret: specs.IDProviderClientSecret,
			},
			tracer,
			monitor,
			logger,
		)
		logger.Info("Identity provider client is enabled")
	} else {
		provider = idprovider.NewNoopClient()
		logger.Info("Using noop identity provider client")
	}

	claimsCache := claims.NewCache(provider, store, specs.ClaimsTTL, tracer, monitor, logger)

	sessionService := session.NewService(
		box,
		claimsCache,
		store,
		specs.SessionCookieName,
		specs.SecureCookies,
		tracer,
		monitor,
		logger,
	)
	permissionsService := permissions.NewService(store, tracer, monitor, logger)
	coursesService := courses.NewService(store, tracer, monitor, logger)
	webhooksService := webhooks.NewService(claimsCache, tracer, monitor, logger)

	guard := authorization.NewMiddleware(claimsCache, sessionService, tracer, monitor, logger)

	var verifier authentication.TokenVerifierInterface
	if specs.AuthenticationEnabled {
		verifier, err = authentication.NewJWTAuthenticator(
			context.Background(),
			specs.OIDCIssuer,
			specs.JWKSURL,
			specs.AllowedSubjects,
			specs.RequiredScope,
			tracer,
			monitor,
			logger,
		)
		if err != nil {
			return fmt.Errorf("failed to initialize authentication: %v", err)
		}
	} else {
		verifier = authentication.NewNoopVerifier()
		logger.Info("Authentication is disabled, tokens are taken at face value")
	}
	authenticate := authentication.NewMiddleware(verifier, tracer, monitor, logger).Authenticate()

	router := web.NewRouter(
		sessionService,
		permissionsService,
		coursesService,
		webhooksService,
		specs.WebhookSecret,
		guard,
		authenticate,
		dbClient,
		tracer,
		monitor,
		logger,
	)
	logger.Infof("Starting HTTP server on port %v", specs.Port)

	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%v", specs.Port),
		WriteTimeout: time.Second * 60,
		ReadTimeout:  time.Second * 15,
		IdleTimeout:  time.Second * 60,
		Handler:      router,
	}

	var serverError error
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Security().SystemStartup()
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverError = fmt.Errorf("server error: %w", err)
			c <- os.Interrupt
		}
	}()

	<-c

	// Create a deadline to wait for.
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logger.Security().SystemShutdown()
	if err := srv.Shutdown(ctx); err != nil {
		serverError = fmt.Errorf("server shutdown error: %w", err)
	}

	return serverError
}
