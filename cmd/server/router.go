package main

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/webforgehq/outreach/internal/handler"
)

func setupRouter(h *handler.Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(render.SetContentType(render.ContentTypeJSON))

	r.Get("/health", h.HealthCheck)

	r.Route("/cron", func(r chi.Router) {
		r.Get("/morning", h.TriggerMorning)
		r.Get("/send", h.TriggerSend)
		r.Get("/reset", h.TriggerReset)
	})

	return r
}
