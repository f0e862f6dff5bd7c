package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/diegoclair/shift-timeslots/internal/config"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
	"go.uber.org/zap"
)

// NewRouter mounts the Slack endpoint and, when api is not nil, the JSON API.
// Both are rate limited per client IP; /health is not.
func NewRouter(slackHandler *SlackHandler, api *APIHandler, cfg config.HTTPConfig, log *zap.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(log))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK")
	})

	r.Group(func(r chi.Router) {
		r.Use(httprate.LimitByIP(cfg.MaxRequests, time.Minute))

		r.Post("/slack/commands", slackHandler.HandleSlashCommand)

		if api != nil {
			r.Route("/api", api.Routes)
		}
	})

	return r
}
