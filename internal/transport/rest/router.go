package rest

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/martiny880/ooo-dashboard/internal/transport/middleware"
)

// Handlers groups the handlers mounted by NewRouter.
type Handlers struct {
	Health   *HealthHandler
	Settings *SettingsHandler
	Auth     *AuthHandler
	Callback *CallbackHandler
}

// NewRouter mounts all routes. apiLimit, if non-nil, wraps every /api route.
// Session auth, CORS and logging are applied around the returned router.
func NewRouter(h Handlers, metricsPath string, apiLimit middleware.Middleware) *mux.Router {
	router := mux.NewRouter()
	router.Use(middleware.Metrics)

	router.HandleFunc("/live", h.Health.Live).Methods(http.MethodGet)
	router.HandleFunc("/ready", h.Health.Ready).Methods(http.MethodGet)
	router.HandleFunc("/health", h.Health.Health).Methods(http.MethodGet)
	router.Handle(metricsPath, promhttp.Handler()).Methods(http.MethodGet)

	api := router.PathPrefix("/api").Subrouter()
	if apiLimit != nil {
		api.Use(mux.MiddlewareFunc(apiLimit))
	}

	api.HandleFunc("/oof", h.Settings.GetOof).Methods(http.MethodGet)
	api.HandleFunc("/oof", h.Settings.SetOof).Methods(http.MethodPost)
	api.HandleFunc("/forwarding", h.Settings.GetForwarding).Methods(http.MethodGet)
	api.HandleFunc("/forwarding", h.Settings.SetForwarding).Methods(http.MethodPost)
	api.HandleFunc("/forwarding", h.Settings.ClearForwarding).Methods(http.MethodDelete)
	api.HandleFunc("/users", h.Settings.SearchUsers).Methods(http.MethodGet)
	api.HandleFunc("/audit", h.Settings.AuditHistory).Methods(http.MethodGet)
	api.HandleFunc("/summary", h.Settings.Summary).Methods(http.MethodGet)

	api.HandleFunc("/auth/credential", h.Auth.StoreCredential).Methods(http.MethodPost)
	api.HandleFunc("/auth/credential", h.Auth.RevokeCredential).Methods(http.MethodDelete)

	api.HandleFunc("/webhooks/n8n", h.Callback.N8n).Methods(http.MethodPost)

	setFallbackHandlers(router)
	setFallbackHandlers(api)

	return router
}

// setFallbackHandlers installs the JSON 404 and 405 envelopes. A subrouter
// answers for its whole prefix, so each one needs its own copy.
func setFallbackHandlers(r *mux.Router) {
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "not found")
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	})
}
