// Package server exposes blackjack over websockets: each client gets its
// own game session, sends Play commands as JSON, and receives one state
// snapshot per engine transition.
package server

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/lox/blackjack/internal/blackjack"
)

// Server is the websocket front end for the blackjack engine
type Server struct {
	addr        string
	newGame     func() *blackjack.Game
	upgrader    websocket.Upgrader
	logger      *log.Logger
	mu          sync.Mutex
	connections map[*Connection]bool
	httpServer  *http.Server
}

// NewServer creates a server. newGame builds a fresh game per round with
// the configured rules and deck.
func NewServer(addr string, newGame func() *blackjack.Game, logger *log.Logger) *Server {
	return &Server{
		addr:    addr,
		newGame: newGame,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				// Local single-player service; no origin restrictions
				return true
			},
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		logger:      logger.WithPrefix("server"),
		connections: make(map[*Connection]bool),
	}
}

// Run serves until the context is cancelled, then drains connections
func (s *Server) Run(ctx context.Context) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWebSocket)
	mux.HandleFunc("/health", s.handleHealth)

	s.httpServer = &http.Server{Addr: s.addr, Handler: mux}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", s.addr)
		errCh <- s.httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	case <-ctx.Done():
		return s.shutdown()
	}
}

func (s *Server) shutdown() error {
	s.mu.Lock()
	for conn := range s.connections {
		_ = conn.Close()
	}
	s.mu.Unlock()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.httpServer.Shutdown(shutdownCtx)
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	ws, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error("upgrade failed", "error", err)
		return
	}

	session := NewSession(s.newGame, s.logger)
	conn := NewConnection(ws, session, s.logger, s.removeConnection)

	s.mu.Lock()
	s.connections[conn] = true
	total := len(s.connections)
	s.mu.Unlock()

	s.logger.Info("client connected", "remote", r.RemoteAddr, "total", total)
	conn.Start()
}

func (s *Server) removeConnection(conn *Connection) {
	s.mu.Lock()
	delete(s.connections, conn)
	total := len(s.connections)
	s.mu.Unlock()
	s.logger.Info("client disconnected", "total", total)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
