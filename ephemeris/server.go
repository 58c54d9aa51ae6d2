package ephemeris

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"solarsystem/core"
)

// EphemerisFrame is one snapshot of every body's position
type EphemerisFrame struct {
	Type   string           `json:"type"`
	Time   float32          `json:"time"`
	Paused bool             `json:"paused"`
	Bodies []core.BodyState `json:"bodies"`
}

// SimState is the clock state the render loop shares with the server
type SimState struct {
	mu     sync.RWMutex
	time   float32
	paused bool
}

// Publish stores the latest simulation time
func (s *SimState) Publish(t float32, paused bool) {
	s.mu.Lock()
	s.time = t
	s.paused = paused
	s.mu.Unlock()
}

// Snapshot returns the last published state
func (s *SimState) Snapshot() (float32, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.time, s.paused
}

// Frame computes the ephemeris for the last published time
func (s *SimState) Frame() EphemerisFrame {
	t, paused := s.Snapshot()
	return EphemerisFrame{
		Type:   "ephemeris",
		Time:   t,
		Paused: paused,
		Bodies: core.Ephemeris(t),
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // local viewers
	},
}

// EphemerisServer streams body positions to websocket clients
type EphemerisServer struct {
	addr     string
	interval time.Duration
	state    *SimState

	clients      map[*websocket.Conn]*sync.Mutex
	clientsMutex sync.RWMutex
}

// NewEphemerisServer creates a server broadcasting every interval
func NewEphemerisServer(addr string, interval time.Duration, state *SimState) *EphemerisServer {
	if interval <= 0 {
		interval = 100 * time.Millisecond
	}
	return &EphemerisServer{
		addr:     addr,
		interval: interval,
		state:    state,
		clients:  make(map[*websocket.Conn]*sync.Mutex),
	}
}

// Handler returns the HTTP routes
func (s *EphemerisServer) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWebSocket)
	mux.HandleFunc("/ephemeris", s.handleEphemeris)
	return mux
}

// Run serves until ctx is cancelled
func (s *EphemerisServer) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("ephemeris server: %w", err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is cancelled
func (s *EphemerisServer) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{Handler: s.Handler()}

	go s.broadcastLoop(ctx)
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("warning: ephemeris server shutdown: %v", err)
		}
		s.closeClients()
	}()

	fmt.Printf("Ephemeris server listening on http://%s\n", ln.Addr())
	if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("ephemeris server: %w", err)
	}
	return nil
}

func (s *EphemerisServer) handleEphemeris(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(s.state.Frame()); err != nil {
		log.Println("ephemeris encode error:", err)
	}
}

func (s *EphemerisServer) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("WebSocket upgrade error:", err)
		return
	}
	defer conn.Close()

	connMutex := &sync.Mutex{}
	s.clientsMutex.Lock()
	s.clients[conn] = connMutex
	s.clientsMutex.Unlock()
	defer s.removeClient(conn)

	// Send the current frame right away
	if err := s.send(conn, connMutex, s.state.Frame()); err != nil {
		return
	}

	// Clients don't send anything; reading detects the close
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (s *EphemerisServer) broadcastLoop(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.broadcast(s.state.Frame())
		}
	}
}

func (s *EphemerisServer) broadcast(frame EphemerisFrame) {
	s.clientsMutex.RLock()
	conns := make(map[*websocket.Conn]*sync.Mutex, len(s.clients))
	for conn, mu := range s.clients {
		conns[conn] = mu
	}
	s.clientsMutex.RUnlock()

	for conn, mu := range conns {
		if err := s.send(conn, mu, frame); err != nil {
			log.Println("WebSocket write error:", err)
			s.removeClient(conn)
			conn.Close()
		}
	}
}

func (s *EphemerisServer) send(conn *websocket.Conn, mu *sync.Mutex, frame EphemerisFrame) error {
	mu.Lock()
	defer mu.Unlock()
	if err := conn.SetWriteDeadline(time.Now().Add(time.Second)); err != nil {
		return err
	}
	return conn.WriteJSON(frame)
}

func (s *EphemerisServer) removeClient(conn *websocket.Conn) {
	s.clientsMutex.Lock()
	delete(s.clients, conn)
	s.clientsMutex.Unlock()
}

func (s *EphemerisServer) closeClients() {
	s.clientsMutex.Lock()
	defer s.clientsMutex.Unlock()
	for conn := range s.clients {
		conn.Close()
		delete(s.clients, conn)
	}
}

// ClientCount returns the number of connected websocket clients
func (s *EphemerisServer) ClientCount() int {
	s.clientsMutex.RLock()
	defer s.clientsMutex.RUnlock()
	return len(s.clients)
}
