// internal/monitor/monitor.go
package monitor

import (
	"encoding/json"
	"log"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const writeTimeout = 2 * time.Second

// Server streams engine events to WebSocket subscribers as JSON text
// frames, one event per frame. It is a debug surface: a slow subscriber
// is dropped rather than allowed to stall the publisher.
type Server struct {
	mu   sync.Mutex
	subs map[*websocket.Conn]struct{}

	upgrader websocket.Upgrader
	ln       net.Listener
	srv      *http.Server
}

// New creates an unstarted monitor server.
func New() *Server {
	return &Server{
		subs: make(map[*websocket.Conn]struct{}),
	}
}

// Start listens on addr and serves /events subscriptions in the
// background.
func (s *Server) Start(addr string) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/events", s.handleEvents)

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}

	s.ln = ln
	s.srv = &http.Server{Handler: mux}

	go func() {
		if err := s.srv.Serve(ln); err != nil && err != http.ErrServerClosed {
			log.Printf("monitor: serve: %v", err)
		}
	}()
	return nil
}

// Addr returns the bound listen address.
func (s *Server) Addr() string {
	if s.ln == nil {
		return ""
	}
	return s.ln.Addr().String()
}

func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("monitor: upgrade: %v", err)
		return
	}

	s.mu.Lock()
	s.subs[conn] = struct{}{}
	s.mu.Unlock()

	// Reader loop exists only to notice the peer going away.
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				s.drop(conn)
				return
			}
		}
	}()
}

// Publish fans one event out to every subscriber.
func (s *Server) Publish(v any) {
	payload, err := json.Marshal(v)
	if err != nil {
		log.Printf("monitor: marshal: %v", err)
		return
	}

	s.mu.Lock()
	conns := make([]*websocket.Conn, 0, len(s.subs))
	for c := range s.subs {
		conns = append(conns, c)
	}
	s.mu.Unlock()

	for _, c := range conns {
		c.SetWriteDeadline(time.Now().Add(writeTimeout))
		if err := c.WriteMessage(websocket.TextMessage, payload); err != nil {
			s.drop(c)
		}
	}
}

func (s *Server) drop(conn *websocket.Conn) {
	s.mu.Lock()
	_, ok := s.subs[conn]
	delete(s.subs, conn)
	s.mu.Unlock()
	if ok {
		conn.Close()
	}
}

// Close shuts the listener and all subscriber connections.
func (s *Server) Close() error {
	s.mu.Lock()
	for c := range s.subs {
		c.Close()
	}
	s.subs = make(map[*websocket.Conn]struct{})
	s.mu.Unlock()

	if s.srv != nil {
		return s.srv.Close()
	}
	return nil
}
