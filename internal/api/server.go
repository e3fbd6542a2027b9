// Package api configures and exposes the HTTP server, routes,
// metrics, docs and related middleware for the IP converter service.
package api

import (
	"context"
	_ "embed"
	"fmt"
	"net/http"
	"time"

	"ipconv/internal/api/handler/v1handler"
	"ipconv/internal/config"
	"ipconv/pkg/controller"
	"ipconv/pkg/logger"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/swaggest/swgui/v5emb"
)

// v1Spec contains the embedded OpenAPI specification for version 1 of the API.
//
//go:embed specs/v1.yaml
var v1Spec []byte

// timeoutBody is written by http.TimeoutHandler when a request exceeds RequestTimeout.
const timeoutBody = `{"code":"TIMEOUT","message":"request timed out"}`

// pprofPrefix is where profiling handlers are mounted when enabled.
const pprofPrefix = "/debug/pprof/"

// Options holds configuration for the HTTP server and its dependencies.
// It is typically created from a config.Config via NewOptions.
// Zero durations fall back to the net/http defaults, except RequestTimeout
// which disables the per-request timeout.
type Options struct {
	// HandlerOptions configures the v1 handlers and live sessions.
	HandlerOptions v1handler.Options
	// SecHandlerOptions configures bearer token checks for v1 endpoints.
	SecHandlerOptions *v1handler.SecHandlerOptions

	// Addr is the TCP address the server listens on, e.g. ":8080".
	Addr string
	// ReadTimeout is the maximum duration for reading the entire request, including the body.
	ReadTimeout time.Duration
	// ReadHeaderTimeout is the amount of time allowed to read request headers.
	ReadHeaderTimeout time.Duration
	// WriteTimeout is the maximum duration before timing out writes of the response.
	WriteTimeout time.Duration
	// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled.
	IdleTimeout time.Duration
	// RequestTimeout bounds non-streaming v1 requests via http.TimeoutHandler.
	RequestTimeout time.Duration
	// MaxHeaderBytes controls the maximum number of bytes the server
	// will read parsing the request header's keys and values, including the request line.
	MaxHeaderBytes int
	// MetricsPath is the HTTP path at which Prometheus metrics are served.
	MetricsPath string
	// AllowedOrigins lists browser origins allowed by CORS; "*" allows all.
	AllowedOrigins []string
	// EnablePprof mounts net/http/pprof handlers.
	EnablePprof bool
	// Gatherer serves the metrics endpoint. Defaults to prometheus.DefaultGatherer.
	Gatherer prometheus.Gatherer
}

// NewOptions constructs an Options value from the provided application configuration.
func NewOptions(cfg *config.Config) Options {
	return Options{
		HandlerOptions:    v1handler.NewOptions(cfg),
		SecHandlerOptions: v1handler.NewSecHandlerOptions(cfg),

		Addr:              cfg.HTTP.Addr,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
		RequestTimeout:    cfg.HTTP.RequestTimeout,
		MaxHeaderBytes:    cfg.HTTP.MaxHeaderBytes,
		MetricsPath:       cfg.HTTP.MetricsPath,
		AllowedOrigins:    cfg.HTTP.AllowedOrigins,
		EnablePprof:       cfg.HTTP.EnablePprof,
	}
}

type Deps struct {
	v1handler.Deps
}

// NewServer wires up and returns a configured *http.Server using the provided Options.
// It sets up:
// - Prometheus metrics endpoint (MetricsPath)
// - Embedded OpenAPI v1 spec and Swagger UI
// - v1 API routes behind CORS, bearer auth and a request timeout
// - the live websocket endpoint, which is exempt from the request timeout
// - pprof endpoints for profiling when enabled
// Every request passes through the logging middleware. Live sessions are
// closed when the server shuts down.
func NewServer(deps Deps, opts Options) (*http.Server, error) {
	mux := http.NewServeMux()

	// prometheus metrics server
	gatherer := opts.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	mux.Handle(opts.MetricsPath, promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	// v1 specs file
	mux.HandleFunc("GET /specs/v1.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(v1Spec)
	})
	// v1 api swagger playground
	mux.Handle("/v1/docs/", v5emb.New(
		"IPv4 Binary Converter",
		"/specs/v1.yaml",
		"/v1/docs/",
	))

	// v1 api
	secHandler, err := v1handler.NewSecHandler(opts.SecHandlerOptions)
	if err != nil {
		return nil, fmt.Errorf("could not create sec handler: %w", err)
	}
	h := v1handler.New(deps.Deps, opts.HandlerOptions)
	auth := secHandler.Middleware(h.WriteError)
	cors := controller.WithCORS(opts.AllowedOrigins)

	var v1 http.Handler = cors(auth(h.Routes()))
	if opts.RequestTimeout > 0 {
		v1 = http.TimeoutHandler(v1, opts.RequestTimeout, timeoutBody)
	}
	mux.Handle("/v1/", v1)
	mux.Handle("GET /v1/live", auth(http.HandlerFunc(h.Live)))

	// pprof
	if opts.EnablePprof {
		mux.Handle(pprofPrefix, controller.PprofMux(pprofPrefix))
	}

	srv := &http.Server{
		Addr:              opts.Addr,
		Handler:           controller.WithLogger(mux),
		ReadTimeout:       opts.ReadTimeout,
		ReadHeaderTimeout: opts.ReadHeaderTimeout,
		WriteTimeout:      opts.WriteTimeout,
		IdleTimeout:       opts.IdleTimeout,
		MaxHeaderBytes:    opts.MaxHeaderBytes,
		ErrorLog:          logger.ErrorLog(context.Background()),
	}
	srv.RegisterOnShutdown(h.Close)

	return srv, nil
}
