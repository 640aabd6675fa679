// Package server tracks the clients connected to a host process so they can
// be counted and told to leave on shutdown. Every client plays its own
// session; nothing about the game itself is shared.
package server

import (
	"sync"
	"time"
)

// GameServer is the interface clients use to communicate with the host.
// Decouples the Client from the concrete Server implementation.
type GameServer interface {
	RegisterClient(username string) *ClientHandle
	UnregisterClient(clientID int)
	Clients() int
}

// Server is the registry of connected clients.
type Server struct {
	clients      map[int]*ClientHandle
	nextClientID int
	shuttingDown bool
	mu           sync.RWMutex
}

// Compile-time check that Server implements GameServer.
var _ GameServer = (*Server)(nil)

// ClientHandle represents a client's connection to the server.
type ClientHandle struct {
	ID       int
	Username string           // Display name for this client
	EventsCh chan ClientEvent // Events sent to client; closed on unregister
}

// ClientEvent represents an event sent from server to client.
type ClientEvent struct {
	Type ClientEventType
}

// ClientEventType identifies the type of client event.
type ClientEventType int

const (
	EventServerShutdown ClientEventType = iota
)

// NewServer creates an empty registry.
func NewServer() *Server {
	return &Server{
		clients:      make(map[int]*ClientHandle),
		nextClientID: 1,
	}
}

// RegisterClient registers a new client with the given username and returns its handle.
// A client joining during shutdown is told to leave straight away.
func (s *Server) RegisterClient(username string) *ClientHandle {
	handle, _ := s.TryRegisterClient(username, 0)
	return handle
}

// TryRegisterClient registers a client only while fewer than limit clients
// are connected. A limit of 0 or less means no limit. The check and the
// insert happen under one lock, so concurrent joins never overshoot.
func (s *Server) TryRegisterClient(username string, limit int) (*ClientHandle, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if limit > 0 && len(s.clients) >= limit {
		return nil, false
	}

	handle := &ClientHandle{
		ID:       s.nextClientID,
		Username: username,
		EventsCh: make(chan ClientEvent, 16),
	}
	s.nextClientID++
	s.clients[handle.ID] = handle
	if s.shuttingDown {
		handle.EventsCh <- ClientEvent{Type: EventServerShutdown}
	}
	return handle, true
}

// UnregisterClient removes a client from the server and closes its events
// channel. Unknown IDs are ignored.
func (s *Server) UnregisterClient(clientID int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if handle, ok := s.clients[clientID]; ok {
		close(handle.EventsCh)
		delete(s.clients, clientID)
	}
}

// Clients returns the number of connected clients.
func (s *Server) Clients() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.clients)
}

// Shutdown gracefully shuts down the server by notifying all connected clients
// and waiting for them to disconnect (up to the given timeout).
func (s *Server) Shutdown(timeout time.Duration) {
	// Notify all connected clients about the shutdown
	s.mu.Lock()
	s.shuttingDown = true
	for _, handle := range s.clients {
		select {
		case handle.EventsCh <- ClientEvent{Type: EventServerShutdown}:
		default:
		}
	}
	s.mu.Unlock()

	// Wait for all clients to disconnect, or timeout
	deadline := time.After(timeout)
	ticker := time.NewTicker(200 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-deadline:
			return
		case <-ticker.C:
			if s.Clients() == 0 {
				return
			}
		}
	}
}
