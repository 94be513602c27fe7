// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"

	chi "github.com/go-chi/chi/v5"

	"github.com/canonical/orgauth-service/internal/logging"
)

type API struct {
	service ServiceInterface
	secret  string
	logger  logging.LoggerInterface
}

// NewAPI builds the provider webhook surface. An empty secret disables the
// shared-secret check, which is only acceptable in development.
func NewAPI(service ServiceInterface, secret string, logger logging.LoggerInterface) *API {
	return &API{
		service: service,
		secret:  secret,
		logger:  logger,
	}
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Post("/webhooks/idprovider", a.providerEvent)
}

func (a *API) providerEvent(w http.ResponseWriter, r *http.Request) {
	if a.secret != "" {
		presented := r.Header.Get("X-Webhook-Secret")
		if subtle.ConstantTimeCompare([]byte(presented), []byte(a.secret)) != 1 {
			http.Error(w, "invalid webhook secret", http.StatusUnauthorized)
			return
		}
	}

	var event ProviderEvent
	if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := a.service.HandleProviderEvent(r.Context(), &event); err != nil {
		a.logger.Errorf("failed to handle provider event: %v", err)
		http.Error(w, "failed to handle event", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
}
