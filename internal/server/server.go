// Package server exposes definition sets over HTTP: forms are rendered on GET
// and submissions are bound, validated and answered on POST.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/goliatone/go-formfield/pkg/definition"
	"github.com/goliatone/go-formfield/pkg/field"
	"github.com/goliatone/go-formfield/pkg/render"
)

// Server serves the forms of a definition store.
type Server struct {
	store    *definition.Store
	render   field.RenderOptions
	basePath string
	hidden   func(*http.Request) []render.Hidden
	logger   zerolog.Logger
}

// Option customises a Server.
type Option func(*Server)

// WithRenderOptions sets the options every form is rendered with. Siblings
// and SuppressErrors are managed per request.
func WithRenderOptions(opts field.RenderOptions) Option {
	return func(s *Server) {
		s.render = opts
	}
}

// WithHidden adds hidden inputs, computed per request, to every rendered
// form. The form id is always sent as "_form".
func WithHidden(fn func(*http.Request) []render.Hidden) Option {
	return func(s *Server) {
		s.hidden = fn
	}
}

// WithLogger sets the request logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithBasePath sets the prefix used in form actions.
func WithBasePath(path string) Option {
	return func(s *Server) {
		s.basePath = strings.TrimRight(path, "/")
	}
}

// New returns a Server for store.
func New(store *definition.Store, opts ...Option) *Server {
	s := &Server{
		store:  store,
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// Handler returns the routes, mounted under the base path.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	routes := func(r chi.Router) {
		r.Get("/forms", s.handleList)
		r.Get("/forms/{id}", s.handleForm)
		r.Post("/forms/{id}", s.handleSubmit)
	}
	if s.basePath == "" {
		routes(r)
	} else {
		r.Route(s.basePath, routes)
	}
	return r
}

// Run serves cfg.Addr until ctx is cancelled, then shuts down gracefully.
func Run(ctx context.Context, cfg Config, handler http.Handler, logger zerolog.Logger) error {
	httpServer := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}

	errChan := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", cfg.Addr).Msg("listening")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
		close(errChan)
	}()

	select {
	case err := <-errChan:
		if err != nil {
			return fmt.Errorf("server: listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	timeout := cfg.ShutdownTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	logger.Info().Msg("shutting down")
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server: shutdown: %w", err)
	}
	return nil
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Debug().
			Str("request_id", middleware.GetReqID(r.Context())).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("elapsed", time.Since(start)).
			Msg("request")
	})
}
