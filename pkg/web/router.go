// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"net/http"

	chi "github.com/go-chi/chi/v5"
	middleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/canonical/orgauth-service/internal/db"
	"github.com/canonical/orgauth-service/internal/logging"
	"github.com/canonical/orgauth-service/internal/monitoring"
	"github.com/canonical/orgauth-service/internal/tracing"
	"github.com/canonical/orgauth-service/pkg/authorization"
	"github.com/canonical/orgauth-service/pkg/courses"
	"github.com/canonical/orgauth-service/pkg/metrics"
	"github.com/canonical/orgauth-service/pkg/permissions"
	"github.com/canonical/orgauth-service/pkg/session"
	"github.com/canonical/orgauth-service/pkg/status"
	"github.com/canonical/orgauth-service/pkg/webhooks"
)

func NewRouter(
	sessionService session.ServiceInterface,
	permissionsService permissions.ServiceInterface,
	coursesService courses.ServiceInterface,
	webhooksService webhooks.ServiceInterface,
	webhookSecret string,
	guard *authorization.Middleware,
	authenticate func(http.Handler) http.Handler,
	dbClient db.DBClientInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) http.Handler {
	router := chi.NewMux()

	middlewares := make(chi.Middlewares, 0)
	middlewares = append(
		middlewares,
		middleware.RequestID,
		monitoring.NewMiddleware(monitor, logger).ResponseTime(),
		middlewareCORS([]string{"*"}),
	)

	router.Use(middlewares...)

	metrics.NewAPI(logger).RegisterEndpoints(router)
	status.NewAPI(tracer, monitor, logger).RegisterEndpoints(router)
	webhooks.NewAPI(webhooksService, webhookSecret, logger).RegisterEndpoints(router)

	// Session endpoints need an authenticated principal but no selected
	// organization, selecting one is what they are for.
	router.Group(func(r chi.Router) {
		r.Use(authenticate)
		r.Use(db.TransactionMiddleware(dbClient, logger))

		session.NewAPI(sessionService, tracer, monitor, logger).RegisterEndpoints(r)
	})

	// Everything below runs inside an established organization scope.
	router.Group(func(r chi.Router) {
		r.Use(authenticate)
		r.Use(guard.OrganizationScope())
		r.Use(db.TransactionMiddleware(dbClient, logger))

		permissions.NewAPI(permissionsService, tracer, monitor, logger).RegisterEndpoints(r)
		courses.NewAPI(coursesService, tracer, monitor, logger).RegisterEndpoints(r)
	})

	return tracing.NewMiddleware(monitor, logger).OpenTelemetry(router)
}

func middlewareCORS(allowedOrigins []string) func(http.Handler) http.Handler {
	return cors.Handler(
		cors.Options{
			AllowedOrigins:   allowedOrigins,
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
			AllowCredentials: true,
			MaxAge:           300,
		},
	)
}
