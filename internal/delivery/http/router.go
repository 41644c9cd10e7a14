package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"requisitionprint/internal/delivery/http/controllers"
)

// NewRouter initializes the HTTP router with all application routes.
// protect wraps every route that reads or writes an owner's settings; the
// preview stays open because the headless browser loads it without credentials.
func NewRouter(requisitions *controllers.RequisitionController, settings *controllers.SettingsController, protect func(http.HandlerFunc) http.HandlerFunc) *http.ServeMux {
	mux := http.NewServeMux()

	// Requisitions
	mux.HandleFunc("GET /requisitions/preview", requisitions.Preview)
	mux.HandleFunc("POST /requisitions/plan", protect(requisitions.Plan))
	mux.HandleFunc("POST /requisitions/export", protect(requisitions.Export))
	mux.HandleFunc("POST /requisitions/export/email", protect(requisitions.EmailExport))

	// Settings
	mux.HandleFunc("GET /settings", protect(settings.GetSettings))
	mux.HandleFunc("PUT /settings", protect(settings.UpdateSettings))

	// Health
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
