// Package feed streams board snapshots to read-only viewers over WebSocket.
package feed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/lox/wordle/internal/board"
	"github.com/lox/wordle/internal/wordle"
	"github.com/rs/zerolog"
)

// Server publishes the board of one game to any number of viewers
type Server struct {
	addr       string
	upgrader   websocket.Upgrader
	logger     zerolog.Logger
	httpServer *http.Server

	mu      sync.RWMutex
	viewers map[*viewer]struct{}
	latest  *Message
	seq     uint64
	closed  bool
}

// NewServer creates a feed server listening on addr
func NewServer(addr string, logger zerolog.Logger) *Server {
	s := &Server{
		addr: addr,
		upgrader: websocket.Upgrader{
			// Viewers are read-only, any origin may watch
			CheckOrigin:     func(r *http.Request) bool { return true },
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
		},
		logger:  logger.With().Str("component", "feed").Logger(),
		viewers: make(map[*viewer]struct{}),
	}
	s.Publish(wordle.NewGame())
	return s
}

// Handler returns the HTTP handler serving /ws, /state and /health
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWebSocket)
	mux.HandleFunc("/state", s.handleState)
	mux.HandleFunc("/health", s.handleHealth)
	return mux
}

// Start serves until Shutdown is called
func (s *Server) Start() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.httpServer = &http.Server{
		Addr:              s.addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	srv := s.httpServer
	s.mu.Unlock()

	s.logger.Info().Str("addr", s.addr).Msg("Starting board feed")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops the HTTP server and disconnects every viewer
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	s.closed = true
	srv := s.httpServer
	viewers := make([]*viewer, 0, len(s.viewers))
	for v := range s.viewers {
		viewers = append(viewers, v)
	}
	s.viewers = make(map[*viewer]struct{})
	s.mu.Unlock()

	for _, v := range viewers {
		v.close()
	}

	if srv == nil {
		return nil
	}
	return srv.Shutdown(ctx)
}

// Publish records state as the latest board and sends it to every viewer
func (s *Server) Publish(state wordle.GameState) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	msg, err := NewBoardMessage(board.Project(state), s.seq)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to encode board")
		return
	}
	s.latest = msg

	for v := range s.viewers {
		if !v.send(msg) {
			s.logger.Warn().Msg("Viewer too slow, disconnecting")
			delete(s.viewers, v)
			v.close()
		}
	}

	s.logger.Debug().
		Uint64("sequence", msg.Sequence).
		Int("viewers", len(s.viewers)).
		Str("state", state.String()).
		Msg("Published board")
}

// ViewerCount returns the number of connected viewers
func (s *Server) ViewerCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.viewers)
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to upgrade connection")
		return
	}

	v := newViewer(conn, s.logger)

	s.mu.Lock()
	s.viewers[v] = struct{}{}
	v.send(s.latest)
	total := len(s.viewers)
	s.mu.Unlock()

	s.logger.Info().Str("remote", r.RemoteAddr).Int("total", total).Msg("Viewer connected")
	v.start()

	go func() {
		<-v.done
		s.mu.Lock()
		delete(s.viewers, v)
		total := len(s.viewers)
		s.mu.Unlock()
		s.logger.Info().Int("total", total).Msg("Viewer disconnected")
	}()
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	latest := s.latest
	s.mu.RUnlock()

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(latest); err != nil {
		s.logger.Error().Err(err).Msg("Failed to write state")
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = fmt.Fprintf(w, "OK") // Ignore write errors for health check
}
