// Package router sets up all HTTP routes and middleware chains for the
// FlexiUI API server.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"flexiui/internal/handlers"
	"flexiui/internal/middleware"
)

// MaxBodyBytes bounds every request body.
const MaxBodyBytes = 1 << 20

// New creates and returns the configured Chi router with all middleware
// and routes wired up. allowedOrigins feeds the CORS policy; "*" allows
// any origin.
func New(api *handlers.API, allowedOrigins []string) chi.Router {
	r := chi.NewRouter()

	// Global middleware, applied to every request.
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.SecureHeaders)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
		ExposedHeaders: []string{"Content-Disposition", "X-Request-Id"},
		MaxAge:         300,
	}))
	r.Use(middleware.MaxBodySize(MaxBodyBytes))

	// Liveness probe for orchestrators; never touches the provider.
	r.Get("/health", healthHandler)

	r.Get("/", api.Home)

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.NoStore)

		r.Get("/health", api.Health)
		r.Get("/options", api.Options)

		// Assistant
		r.Post("/chat", api.Chat)
		r.Post("/help", api.Help)

		// Component generation
		r.Post("/generate-ui", api.GenerateUI)
		r.Post("/modify-ui", api.ModifyUI)
		r.Post("/prompt-preview", api.PromptPreview)
		r.Post("/preview", api.Preview)

		// Saved projects
		r.Route("/projects", func(r chi.Router) {
			r.Get("/", api.ListProjects)
			r.Post("/", api.CreateProject)
			r.Get("/{id}", api.GetProject)
			r.Put("/{id}", api.UpdateProject)
			r.Delete("/{id}", api.DeleteProject)
			r.Get("/{id}/export", api.ExportProject)
			r.Post("/{id}/publish", api.PublishProject)
		})

		// Generation history
		r.Get("/logs", api.Logs)
		r.Get("/stats", api.Stats)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":"Not Found"}`))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusMethodNotAllowed)
		w.Write([]byte(`{"error":"Method Not Allowed"}`))
	})

	return r
}

// healthHandler returns a simple JSON liveness response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
