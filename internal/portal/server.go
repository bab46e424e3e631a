package portal

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/louisbranch/employee-portal/internal/portal/storage/sqlite"
)

// Config holds the server's runtime settings.
type Config struct {
	// HTTPAddr is the listen address, host:port.
	HTTPAddr string
	// DBPath is the sqlite database file path.
	DBPath string
}

// Server is the employee portal HTTP service. It owns the sqlite store and
// the in-memory session state.
type Server struct {
	cfg      Config
	store    *sqlite.Store
	sessions *sessionManager
	handler  http.Handler
}

// NewServer opens the store, reseeds the employee roster, and wires the
// HTTP handler. The returned server owns the store; call Close when done.
func NewServer(ctx context.Context, cfg Config) (*Server, error) {
	store, err := sqlite.Open(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	if err := store.Bootstrap(ctx); err != nil {
		store.Close()
		return nil, fmt.Errorf("bootstrap store: %w", err)
	}

	sessions := newSessionManager()
	srv := &Server{
		cfg:      cfg,
		store:    store,
		sessions: sessions,
		handler:  newRootHandler(NewAuthenticator(store), sessions, NewDirectory(store)),
	}
	return srv, nil
}

// Handler returns the server's root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// ListenAndServe serves HTTP until the context is canceled, then shuts the
// listener down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:    s.cfg.HTTPAddr,
		Handler: s.handler,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("portal listening on %s", s.cfg.HTTPAddr)
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("serve http: %w", err)
		}
		return nil
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http: %w", err)
		}
		return nil
	}
}

// Close releases the server's store.
func (s *Server) Close() error {
	if s == nil || s.store == nil {
		return nil
	}
	return s.store.Close()
}
