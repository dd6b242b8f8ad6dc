// Package server is the demo SSR server: a handful of pages whose styled
// components share per-request emit-once trackers, plus a live WebSocket
// endpoint where the tracker's scope is the connection.
package server

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/cssonce/cssonce/internal/demo"
	"github.com/cssonce/cssonce/pkg/cssonce"
	"github.com/cssonce/cssonce/pkg/metrics"
	"github.com/cssonce/cssonce/pkg/render"
)

// Server serves the demo pages over HTTP and WebSocket.
type Server struct {
	config   *Config
	logger   *slog.Logger
	metrics  *metrics.Collector
	renderer *render.Renderer
	tracer   trace.Tracer
	router   chi.Router

	httpServer *http.Server
}

// New creates a Server with the given configuration. A nil config uses
// defaults.
func New(config *Config) *Server {
	if config == nil {
		config = DefaultConfig()
	}
	config.fillDefaults()

	s := &Server{
		config:   config,
		logger:   config.Logger,
		metrics:  config.Metrics,
		renderer: render.NewRenderer(),
		tracer:   otel.Tracer(config.TracerName),
	}

	r := chi.NewRouter()
	r.Get("/", s.handleIndex)
	r.Get("/gallery", s.handleGallery)
	r.Get("/live", s.handleLive)
	r.Get("/healthz", s.handleHealthz)
	r.Handle("/metrics", promhttp.Handler())
	s.router = r

	return s
}

// Handler returns the HTTP handler, for embedding and tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start runs the server until SIGINT/SIGTERM, then shuts down gracefully.
func (s *Server) Start() error {
	s.httpServer = &http.Server{
		Addr:    s.config.Address,
		Handler: s.router,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server listening", "addr", s.config.Address)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		s.logger.Info("shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.config.ShutdownTimeout)
	defer cancel()
	return s.httpServer.Shutdown(ctx)
}

// handleIndex renders repeated instances of one component behind a
// per-request tracker. Exactly one style block appears in the response.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	counter := &emissionCounter{}
	css := counter.gate(s.metrics.Gate(cssonce.New(), "hello-card"))
	s.renderDemoPage(w, r, "/", counter, render.PageData{
		Title: "cssonce demo",
		Body:  demo.IndexBody(css),
	})
}

// handleGallery renders several component types behind one per-request
// keyed tracker. One style block per component type.
func (s *Server) handleGallery(w http.ResponseWriter, r *http.Request) {
	counter := &emissionCounter{}
	css := counter.keyedGate(s.metrics.KeyedGate(cssonce.NewKeyed()))
	s.renderDemoPage(w, r, "/gallery", counter, render.PageData{
		Title: "Component gallery",
		Body:  demo.GalleryBody(css),
	})
}

// renderDemoPage renders page inside a span, recording duration, output
// size, and how many style blocks the page emitted.
func (s *Server) renderDemoPage(w http.ResponseWriter, r *http.Request, route string, emissions *emissionCounter, page render.PageData) {
	_, span := s.tracer.Start(r.Context(), "cssonce.render_page",
		trace.WithAttributes(attribute.String("http.route", route)))
	defer span.End()

	start := time.Now()
	var buf bytes.Buffer
	if err := s.renderer.RenderPage(&buf, page); err != nil {
		span.RecordError(err)
		s.logger.Error("render failed", "route", route, "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	s.metrics.ObserveRender(time.Since(start))
	span.SetAttributes(
		attribute.Int("render.bytes", buf.Len()),
		attribute.Int("render.style_emissions", emissions.count()),
	)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}

// emissionCounter counts latch wins during one page render so the span
// can report them. Rendering is sequential within a request, so a plain
// int suffices.
type emissionCounter struct {
	n int
}

func (c *emissionCounter) count() int { return c.n }

// gate wraps a consumer, counting wins.
func (c *emissionCounter) gate(inner cssonce.Consumer) cssonce.Consumer {
	return &countedConsumer{inner: inner, counter: c}
}

// keyedGate wraps a keyed consumer, counting wins.
func (c *emissionCounter) keyedGate(inner cssonce.KeyedConsumer) cssonce.KeyedConsumer {
	return &countedKeyed{inner: inner, counter: c}
}

type countedConsumer struct {
	inner   cssonce.Consumer
	counter *emissionCounter
}

func (g *countedConsumer) TryConsume() bool {
	won := g.inner.TryConsume()
	if won {
		g.counter.n++
	}
	return won
}

type countedKeyed struct {
	inner   cssonce.KeyedConsumer
	counter *emissionCounter
}

func (g *countedKeyed) TryConsume(key string) bool {
	won := g.inner.TryConsume(key)
	if won {
		g.counter.n++
	}
	return won
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}
