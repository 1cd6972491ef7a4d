package httpapi

import "github.com/go-chi/chi/v5"

func RegisterRoutes(r chi.Router, app *App) {
	r.Get("/healthz", healthHandler)
	r.Get("/admin/settings", app.getSettingsHandler)
	r.Put("/admin/settings", app.updateSettingsHandler)
	r.Post("/admin/sweep", app.triggerSweepHandler)
}
