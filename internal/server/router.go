package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/podolabs/frontdesk/internal/api"
	"github.com/podolabs/frontdesk/internal/api/handlers"
	"github.com/podolabs/frontdesk/internal/api/middleware"
)

type RouterConfig struct {
	SigningSecret  string
	EventsHandler  *handlers.EventsHandler
	ActionsHandler *handlers.ActionsHandler
}

func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	const maxBodyBytes int64 = 1 * 1024 * 1024

	r.Use(middleware.RequestID)
	r.Use(middleware.SentryMiddleware)
	r.Use(middleware.AccessLog)
	r.Use(middleware.MaxBodyBytes(maxBodyBytes))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		api.Success(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.SlackSignature(cfg.SigningSecret))

		r.Post("/slack/events", cfg.EventsHandler.Handle)
		r.Post("/slack/actions", cfg.ActionsHandler.Handle)
	})

	return r
}
