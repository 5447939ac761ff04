package api

import (
	"net/http"
	"time"

	// This blank import is required by swaggo to find the API definitions.
	_ "sentryos/backend/docs"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

// NewRouter creates and configures a chi router with all application routes.
// metrics may be nil when no metrics endpoint should be exposed.
func NewRouter(assistantHandler *AssistantHandler, analysisHandler *AnalysisHandler, metrics http.Handler) *chi.Mux {
	r := chi.NewRouter()

	// --- Global Middleware ---
	r.Use(middleware.RequestID) // Injects a unique request ID into the context.
	r.Use(middleware.RealIP)    // Sets the remote address to the real IP from proxy headers.
	r.Use(middleware.Logger)    // Logs the start and end of each request.
	r.Use(middleware.Recoverer) // Recovers from panics and returns a 500 error.

	// --- Public Routes ---

	// Serves the auto-generated Swagger UI for API documentation.
	r.Get("/api/swagger/*", httpSwagger.WrapHandler)

	// Liveness/readiness probe.
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	if metrics != nil {
		r.Handle("/metrics", metrics)
	}

	// --- API Version 1 Routes ---
	r.Route("/api/v1", func(r chi.Router) {

		// Standard JSON routes carry a request timeout so client
		// connections cannot hang indefinitely.
		r.Group(func(r chi.Router) {
			r.Use(middleware.Timeout(60 * time.Second))

			r.Get("/exchanges", assistantHandler.HandleListExchanges)
			r.Post("/calls/analyze", analysisHandler.HandleAnalyzeCall)
		})

		// Streaming routes must NOT have a timeout; they hold the
		// connection open for the lifetime of the upstream stream.
		r.Group(func(r chi.Router) {
			r.Post("/assistants/email/messages", assistantHandler.HandleEmailMessage)
			r.Post("/assistants/call/messages", assistantHandler.HandleCallMessage)
		})
	})

	return r
}
