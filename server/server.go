// Package server serves the rendered diff of two documents via HTTP. The
// documents can be swapped out while the server is running; every request
// sees the most recently published pair.
package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
)

// Snapshot is one pair of documents to compare. Snapshots are immutable;
// publishing new content means replacing the whole snapshot.
type Snapshot struct {
	OldName string
	NewName string
	OldText string
	NewText string
}

// Server serves a single document pair via HTTP.
type Server struct {
	http    *http.Server
	handler *handler
	errc    chan error
}

// Run creates a new server and runs it in a new goroutine.
func Run(addr string, snap *Snapshot) (*Server, error) {
	l, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("starting HTTP server: %v", err)
	}

	h := &handler{}
	h.snap.Store(snap)

	s := &Server{
		http: &http.Server{
			Handler: h,
		},
		handler: h,
		errc:    make(chan error),
	}

	go func() {
		if err := s.http.Serve(l); err != nil && err != http.ErrServerClosed {
			s.errc <- err
		}
	}()

	return s, nil
}

// ReplaceSnapshot replaces the document pair to serve with the one provided.
func (s *Server) ReplaceSnapshot(snap *Snapshot) {
	s.handler.snap.Store(snap)
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.http.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutting down HTTP server: %v", err)
	}
	return nil
}

// Error returns a channel to listen to errors while serving.
func (s *Server) Error() <-chan error {
	return s.errc
}
