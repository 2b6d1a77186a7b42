package controllers

import (
	"context"
	"net/http"

	"go.uber.org/multierr"

	"github.com/amakha/storefront-backend/api/responses"
	"github.com/amakha/storefront-backend/pkg/config"
	pkgerrors "github.com/amakha/storefront-backend/pkg/errors"
	"github.com/amakha/storefront-backend/pkg/logger"
)

// ReadinessProbe is a named check the ready endpoint aggregates.
type ReadinessProbe struct {
	Name  string
	Check func(ctx context.Context) error
}

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Amakha-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady runs every probe and reports unavailable if any fails.
func HealthReady(cfg *config.Config, logg *logger.Logger, probes ...ReadinessProbe) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Amakha-Env", cfg.App.Env)

		var err error
		for _, probe := range probes {
			if probe.Check == nil {
				continue
			}
			if probeErr := probe.Check(r.Context()); probeErr != nil {
				err = multierr.Append(err, probeErr)
				if logg != nil {
					ctx := logg.WithField(r.Context(), "probe", probe.Name)
					logg.Error(ctx, "health.probe_failed", probeErr)
				}
			}
		}
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "not ready"))
			return
		}

		responses.WriteSuccess(w, map[string]string{"status": "ready"})
	}
}
