// Package server is the HTTP front door of the site: legacy redirects, SEO documents and the upstream proxy.
package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"net/http/httputil"
	"net/url"
	"time"

	"github.com/aleister1102/siteguard/internal/common"
	"github.com/aleister1102/siteguard/internal/config"
	"github.com/aleister1102/siteguard/internal/redirect"
	"github.com/aleister1102/siteguard/internal/seo"
	"github.com/rs/zerolog"
)

// Server wraps the http.Server with its handler chain
type Server struct {
	cfg        config.ServerConfig
	httpServer *http.Server
	logger     zerolog.Logger
}

// New builds the server. The handler chain is access log, then redirects, then the mux.
func New(cfg config.ServerConfig, table *redirect.Table, source seo.Source, logger zerolog.Logger) (*Server, error) {
	serverLogger := logger.With().Str("module", "Server").Logger()

	fallback, err := newFallback(cfg.UpstreamURL, serverLogger)
	if err != nil {
		return nil, err
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /sitemap.xml", sitemapHandler(source, serverLogger))
	mux.HandleFunc("GET /robots.txt", robotsHandler(source))
	mux.HandleFunc("GET /healthz", healthHandler(table))
	mux.Handle("/", fallback)

	handler := accessLog(serverLogger)(redirect.Middleware(table, serverLogger)(mux))

	return &Server{
		cfg: cfg,
		httpServer: &http.Server{
			Addr:         cfg.ListenAddr,
			Handler:      handler,
			ReadTimeout:  time.Duration(cfg.ReadTimeoutSecs) * time.Second,
			WriteTimeout: time.Duration(cfg.WriteTimeoutSecs) * time.Second,
		},
		logger: serverLogger,
	}, nil
}

// Handler exposes the full handler chain
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Run listens until ctx is cancelled, then shuts down within the configured timeout
func (s *Server) Run(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.cfg.ListenAddr)
	if err != nil {
		return common.WrapErrorf(err, "failed to listen on %s", s.cfg.ListenAddr)
	}
	return s.Serve(ctx, listener)
}

// Serve is Run on an existing listener
func (s *Server) Serve(ctx context.Context, listener net.Listener) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info().Str("addr", listener.Addr().String()).Msg("Server listening")
		errCh <- s.httpServer.Serve(listener)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return common.WrapError(err, "server stopped unexpectedly")
	case <-ctx.Done():
	}

	s.logger.Info().Msg("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(s.cfg.ShutdownTimeoutSecs)*time.Second)
	defer cancel()
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return common.WrapError(err, "graceful shutdown failed")
	}
	<-errCh
	s.logger.Info().Msg("Server stopped")
	return nil
}

func newFallback(upstream string, logger zerolog.Logger) (http.Handler, error) {
	if upstream == "" {
		return http.NotFoundHandler(), nil
	}
	target, err := url.Parse(upstream)
	if err != nil || target.Scheme == "" || target.Host == "" {
		return nil, common.NewValidationError("server_config.upstream_url", upstream, "must be an absolute URL")
	}

	proxy := httputil.NewSingleHostReverseProxy(target)
	proxy.ErrorHandler = func(w http.ResponseWriter, r *http.Request, err error) {
		logger.Error().Err(err).Str("path", r.URL.Path).Msg("Upstream request failed")
		w.WriteHeader(http.StatusBadGateway)
	}
	return proxy, nil
}
