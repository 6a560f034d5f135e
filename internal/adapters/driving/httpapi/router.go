package httpapi

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
)

// Options tunes the router. The zero value disables rate limiting and uses a
// fresh metrics registry.
type Options struct {
	// RateLimitRPS is the per-host request rate; <= 0 disables limiting.
	RateLimitRPS float64
	// RateLimitBurst is the per-host bucket size.
	RateLimitBurst int
	// Metrics receives request metrics. Nil creates a new set.
	Metrics *Metrics
}

// NewRouter builds the HTTP handler for the registry.
func NewRouter(ports Ports, opts Options) (http.Handler, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("validating ports: %w", err)
	}

	metrics := opts.Metrics
	if metrics == nil {
		metrics = NewMetrics()
	}

	h := &handlers{ports: ports}
	r := mux.NewRouter()

	api := r.PathPrefix("/v1/test").Subrouter()
	api.HandleFunc("/saymy", h.sayMy).Methods(http.MethodGet)
	api.HandleFunc("/add", h.add).Methods(http.MethodGet)
	api.HandleFunc("/all", h.all).Methods(http.MethodGet)

	r.HandleFunc("/healthz", healthz).Methods(http.MethodGet)
	r.Handle("/metrics", metrics.Handler()).Methods(http.MethodGet)
	r.HandleFunc("/openapi.json", openAPI).Methods(http.MethodGet)

	// Middleware registered with Use only runs on matched routes.
	observe := metricsMiddleware(metrics)
	r.NotFoundHandler = observe(http.HandlerFunc(notFound))
	r.MethodNotAllowedHandler = observe(http.HandlerFunc(methodNotAllowed))

	r.Use(observe)
	if opts.RateLimitRPS > 0 {
		r.Use(newRateLimiter(opts.RateLimitRPS, opts.RateLimitBurst).middleware)
	}

	return requestIDMiddleware(recoverMiddleware(accessLogMiddleware(r))), nil
}
