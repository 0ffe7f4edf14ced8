package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/specialistvlad/memgridgo/internal/ctxlog"
	"github.com/specialistvlad/memgridgo/internal/render"
)

func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	fmt.Fprintln(w, "OK")
}

func (s *Server) listInstances(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, s.snap.Instances)
}

func (s *Server) listInterfaces(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, s.snap.Interfaces)
}

func (s *Server) listConnections(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, s.snap.Connections)
}

func (s *Server) listDiagnostics(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, s.snap.Diagnostics)
}

func (s *Server) interfaceDetail(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, ok := s.graph.Lookup(vars["instance"], vars["name"])
	if !ok {
		s.notFound(w, "interface %s.%s not found", vars["instance"], vars["name"])
		return
	}

	iface := s.graph.InterfaceAt(id)
	s.writeJSON(w, http.StatusOK, InterfaceDetail{
		Interface:       render.NewInterface(s.graph, iface),
		Connections:     render.Connections(s.graph, s.graph.ConnectionsOf(id)),
		ConnectedMemory: render.NewMemory(s.graph.ConnectedMemory(iface)),
	})
}

func (s *Server) memoryItem(w http.ResponseWriter, r *http.Request) {
	identifier := mux.Vars(r)["identifier"]
	item, ok := s.graph.MemoryItem(identifier)
	if !ok {
		s.notFound(w, "memory item %s not found", identifier)
		return
	}
	s.writeJSON(w, http.StatusOK, render.NewMemory(item))
}

func (s *Server) notFound(w http.ResponseWriter, format string, args ...any) {
	s.writeJSON(w, http.StatusNotFound, map[string]string{"error": fmt.Sprintf(format, args...)})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	bytes, err := json.Marshal(v)
	if err != nil {
		ctxlog.FromContext(s.ctx).Error("Failed to encode response.", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(bytes)
}
