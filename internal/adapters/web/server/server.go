package server

import (
	"context"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/lcalzada-xor/wmap-dissect/internal/adapters/web/handlers"
	"github.com/lcalzada-xor/wmap-dissect/internal/core/ports"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// Server exposes metrics and the network inventory over HTTP.
type Server struct {
	Addr           string
	NetworkHandler *handlers.NetworkHandler
	srv            *http.Server
}

// NewServer creates a new web server.
func NewServer(addr string, source ports.NetworkReader) *Server {
	return &Server{
		Addr:           addr,
		NetworkHandler: handlers.NewNetworkHandler(source),
	}
}

// Handler returns the instrumented route tree.
func (s *Server) Handler() http.Handler {
	return otelhttp.NewHandler(SetupRoutes(s), "wmap-dissect-server")
}

// Run listens on Addr and serves until ctx is done.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.Addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is done, then shuts down gracefully.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	s.srv = &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		log.Println("Web Server shutting down...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("Web Server shutdown error: %v", err)
		}
	}()

	log.Printf("Web server listening on %s", ln.Addr())
	if err := s.srv.Serve(ln); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
