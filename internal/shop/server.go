package shop

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"
)

const DefaultShutdownTimeout = 5 * time.Second

// Server serves the shop routes until its context is cancelled.
type Server struct {
	addr            string
	handler         http.Handler
	shutdownTimeout time.Duration

	ready chan net.Addr
}

type ServerOpt func(*Server)

func WithShutdownTimeout(d time.Duration) ServerOpt {
	return func(s *Server) {
		s.shutdownTimeout = d
	}
}

func NewServer(addr string, h *Handler, opts ...ServerOpt) *Server {
	s := &Server{
		addr:            addr,
		handler:         h.Routes(),
		shutdownTimeout: DefaultShutdownTimeout,
		ready:           make(chan net.Addr, 1),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Ready yields the bound address once the server is accepting requests.
func (s *Server) Ready() <-chan net.Addr {
	return s.ready
}

func (s *Server) Start(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", s.addr, err)
	}

	srv := &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()

	slog.InfoContext(ctx, "shop listening", "addr", ln.Addr().String())
	s.ready <- ln.Addr()

	select {
	case err := <-errCh:
		return fmt.Errorf("serving shop: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down shop: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serving shop: %w", err)
	}

	return nil
}
