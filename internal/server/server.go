// Package server exposes the scan result cache over HTTP.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"

	"github.com/projectdiscovery/gologger"

	"github.com/mickeyl/lanagent/pkg/scan"
	"github.com/mickeyl/lanagent/pkg/types"
)

// scanResponse is the wire format of GET /scan.
type scanResponse struct {
	Status  string         `json:"status"`
	Count   int            `json:"count"`
	Devices []types.Device `json:"devices"`
}

// NewRouter returns the route table: GET /scan serving the cached
// device list with CORS allow-all, 404 for everything else.
func NewRouter(cache *scan.Cache) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/scan", func(w http.ResponseWriter, r *http.Request) {
		devices := cache.Snapshot()
		response := scanResponse{
			Status:  "success",
			Count:   len(devices),
			Devices: devices,
		}

		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Access-Control-Allow-Origin", "*")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			gologger.Warning().Msgf("error writing scan response: %v", err)
		}
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "endpoint not found", http.StatusNotFound)
	})
	return mux
}

// Server serves the scan API on a bound TCP port.
type Server struct {
	listener net.Listener
	server   *http.Server
}

// New binds the listener. Port 0 selects a free ephemeral port; Port
// reports the bound one either way. Bind failure is unrecoverable for
// the caller.
func New(port int, cache *scan.Cache) (*Server, error) {
	listener, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
	if err != nil {
		return nil, fmt.Errorf("failed to bind port %d: %w", port, err)
	}
	return &Server{
		listener: listener,
		server:   &http.Server{Handler: NewRouter(cache)},
	}, nil
}

// Port returns the bound TCP port.
func (s *Server) Port() int {
	return s.listener.Addr().(*net.TCPAddr).Port
}

// Start serves requests until Shutdown is called.
func (s *Server) Start() {
	gologger.Info().Msgf("http server started on port %d", s.Port())
	if err := s.server.Serve(s.listener); err != nil && err != http.ErrServerClosed {
		gologger.Error().Msgf("http server failed: %v", err)
	}
}

// Shutdown stops serving gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
