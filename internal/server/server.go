package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/specialistvlad/memgridgo/internal/connectivity"
	"github.com/specialistvlad/memgridgo/internal/ctxlog"
	"github.com/specialistvlad/memgridgo/internal/render"
)

const shutdownTimeout = 5 * time.Second

// Server serves one graph and the snapshot taken from it.
type Server struct {
	ctx    context.Context
	graph  *connectivity.Graph
	snap   *render.Snapshot
	router *mux.Router
}

// InterfaceDetail is the response of the single-interface endpoint.
type InterfaceDetail struct {
	render.Interface
	Connections     []render.Connection `json:"connections"`
	ConnectedMemory *render.Memory      `json:"connectedMemory,omitempty"`
}

// New creates a Server for g. snap must have been taken from g. The logger
// is taken from ctx.
func New(ctx context.Context, g *connectivity.Graph, snap *render.Snapshot) *Server {
	s := &Server{
		ctx:   ctx,
		graph: g,
		snap:  snap,
	}

	r := mux.NewRouter()
	r.HandleFunc("/health", s.health).Methods(http.MethodGet)
	r.HandleFunc("/instances", s.listInstances).Methods(http.MethodGet)
	r.HandleFunc("/interfaces", s.listInterfaces).Methods(http.MethodGet)
	r.HandleFunc("/interfaces/{instance}/{name}", s.interfaceDetail).Methods(http.MethodGet)
	r.HandleFunc("/connections", s.listConnections).Methods(http.MethodGet)
	r.HandleFunc("/memory/{identifier}", s.memoryItem).Methods(http.MethodGet)
	r.HandleFunc("/diagnostics", s.listDiagnostics).Methods(http.MethodGet)
	r.Use(s.logRequests)
	s.router = r

	return s
}

// Handler returns the router.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	return s.Serve(ctx, listener)
}

// Serve is ListenAndServe on an existing listener.
func (s *Server) Serve(ctx context.Context, listener net.Listener) error {
	logger := ctxlog.FromContext(s.ctx)
	httpServer := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Graph server starting.", "address", fmt.Sprintf("http://%s", listener.Addr()))
		errCh <- httpServer.Serve(listener)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("graph server failed: %w", err)
	case <-ctx.Done():
	}

	logger.Info("Shutting down graph server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("Graph server shutdown failed.", "error", err)
		return err
	}
	logger.Debug("Graph server shut down gracefully.")
	return nil
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctxlog.FromContext(s.ctx).Debug("Graph server endpoint hit.", "remote_addr", r.RemoteAddr, "path", r.URL.Path)
		next.ServeHTTP(w, r)
	})
}
