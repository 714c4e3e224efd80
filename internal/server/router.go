package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "massiohealth/docs"
	"massiohealth/internal/calculator"
	"massiohealth/internal/handlers"
	"massiohealth/internal/observability"
	"massiohealth/internal/web"
)

// Options tunes the router.
type Options struct {
	// EnableSwagger mounts the API docs under /swagger/.
	EnableSwagger bool
}

func NewRouter(opts Options) http.Handler {

	r := chi.NewRouter()

	r.Use(chimw.RealIP)
	r.Use(observability.RequestIDMiddleware)
	r.Use(observability.TracingMiddleware)
	r.Use(observability.LoggingMiddleware)
	r.Use(chimw.Recoverer)

	r.Get("/health", handlers.Health)

	r.Handle("/metrics", observability.PrometheusHandler())

	if opts.EnableSwagger {
		r.Get("/swagger/*", httpSwagger.Handler(
			httpSwagger.URL("/swagger/doc.json"),
		))
	}

	calculator.RegisterRoutes(r)
	web.MustNewHandler().RegisterRoutes(r)

	return r
}
