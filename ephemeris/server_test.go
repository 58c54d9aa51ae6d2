package ephemeris

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"solarsystem/core"
)

func TestSimStateFrame(t *testing.T) {
	var s SimState
	s.Publish(12.5, true)

	got, paused := s.Snapshot()
	if got != 12.5 || !paused {
		t.Fatalf("Snapshot() = %v, %v", got, paused)
	}

	frame := s.Frame()
	if frame.Type != "ephemeris" || frame.Time != 12.5 || !frame.Paused {
		t.Errorf("frame header = %+v", frame)
	}
	if len(frame.Bodies) != len(core.Planets)+len(core.Moons) {
		t.Errorf("got %d bodies", len(frame.Bodies))
	}
}

func TestEphemerisEndpoint(t *testing.T) {
	state := &SimState{}
	state.Publish(3, false)
	srv := httptest.NewServer(NewEphemerisServer("", time.Second, state).Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/ephemeris")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if ct := resp.Header.Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}

	var frame EphemerisFrame
	if err := json.NewDecoder(resp.Body).Decode(&frame); err != nil {
		t.Fatal(err)
	}
	want := core.Ephemeris(3)
	if len(frame.Bodies) != len(want) {
		t.Fatalf("got %d bodies, want %d", len(frame.Bodies), len(want))
	}
	for i := range want {
		if frame.Bodies[i].Name != want[i].Name {
			t.Errorf("body %d = %q, want %q", i, frame.Bodies[i].Name, want[i].Name)
		}
		if !frame.Bodies[i].Position.ApproxEqual(want[i].Position) {
			t.Errorf("%s position = %v, want %v", want[i].Name, frame.Bodies[i].Position, want[i].Position)
		}
	}
}

func dial(t *testing.T, url string) *websocket.Conn {
	t.Helper()
	wsURL := "ws" + strings.TrimPrefix(url, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	return conn
}

func readFrame(t *testing.T, conn *websocket.Conn) EphemerisFrame {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var frame EphemerisFrame
	if err := conn.ReadJSON(&frame); err != nil {
		t.Fatalf("read: %v", err)
	}
	return frame
}

func TestWebSocketStream(t *testing.T) {
	state := &SimState{}
	state.Publish(1, false)

	s := NewEphemerisServer("", 10*time.Millisecond, state)
	srv := httptest.NewServer(s.Handler())
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go s.broadcastLoop(ctx)

	conn := dial(t, srv.URL)
	defer conn.Close()

	first := readFrame(t, conn)
	if first.Time != 1 {
		t.Errorf("initial frame time = %v", first.Time)
	}

	state.Publish(7, true)
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		f := readFrame(t, conn)
		if f.Time == 7 {
			if !f.Paused {
				t.Error("frame not marked paused")
			}
			return
		}
	}
	t.Fatal("never saw the published time")
}

func TestClosedClientIsDropped(t *testing.T) {
	s := NewEphemerisServer("", 10*time.Millisecond, &SimState{})
	srv := httptest.NewServer(s.Handler())
	defer srv.Close()

	conn := dial(t, srv.URL)
	readFrame(t, conn)
	if n := s.ClientCount(); n != 1 {
		t.Fatalf("ClientCount() = %d, want 1", n)
	}

	conn.Close()
	deadline := time.Now().Add(2 * time.Second)
	for s.ClientCount() != 0 {
		if time.Now().After(deadline) {
			t.Fatal("client not removed after close")
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestServeStopsOnCancel(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}

	s := NewEphemerisServer(ln.Addr().String(), 10*time.Millisecond, &SimState{})
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, ln) }()

	// Wait until it answers
	url := "http://" + ln.Addr().String() + "/ephemeris"
	var resp *http.Response
	for i := 0; i < 100; i++ {
		resp, err = http.Get(url)
		if err == nil {
			resp.Body.Close()
			break
		}
		time.Sleep(10 * time.Millisecond)
	}
	if err != nil {
		t.Fatalf("server never answered: %v", err)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Serve() = %v", err)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("Serve did not return after cancel")
	}
}

func TestDefaultInterval(t *testing.T) {
	s := NewEphemerisServer(":0", 0, &SimState{})
	if s.interval != 100*time.Millisecond {
		t.Errorf("interval = %v", s.interval)
	}
}

func TestSendOnClosedConnFails(t *testing.T) {
	s := NewEphemerisServer("", time.Second, &SimState{})
	result := make(chan error, 1)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			result <- err
			return
		}
		mu := &sync.Mutex{}
		s.clientsMutex.Lock()
		s.clients[conn] = mu
		s.clientsMutex.Unlock()

		conn.Close()
		if err := s.send(conn, mu, EphemerisFrame{}); err == nil {
			result <- errors.New("send on closed conn returned nil")
			return
		}
		s.broadcast(EphemerisFrame{})
		result <- nil
	}))
	defer srv.Close()

	conn := dial(t, srv.URL)
	defer conn.Close()

	select {
	case err := <-result:
		if err != nil {
			t.Fatal(err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("handler never finished")
	}
	if n := s.ClientCount(); n != 0 {
		t.Errorf("failed client kept, ClientCount() = %d", n)
	}
}
