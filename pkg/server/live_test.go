package server

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
)

func dialLive(t *testing.T, s *Server) *websocket.Conn {
	t.Helper()

	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/live"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func request(t *testing.T, conn *websocket.Conn, name string) string {
	t.Helper()
	if err := conn.WriteMessage(websocket.TextMessage, []byte(name)); err != nil {
		t.Fatalf("write: %v", err)
	}
	_, msg, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	return string(msg)
}

func TestLiveEmitsStyleOncePerConnection(t *testing.T) {
	conn := dialLive(t, newTestServer(t))

	first := request(t, conn, "badge")
	if !strings.Contains(first, "<style>") {
		t.Errorf("first badge render should carry its style block, got %q", first)
	}
	if !strings.Contains(first, `<span class="badge">new</span>`) {
		t.Errorf("badge markup missing, got %q", first)
	}

	second := request(t, conn, "badge")
	if strings.Contains(second, "<style>") {
		t.Errorf("second badge render should not repeat the style block, got %q", second)
	}

	// A different component type still emits its own block.
	alert := request(t, conn, "alert")
	if !strings.Contains(alert, "<style>") {
		t.Errorf("first alert render should carry its style block, got %q", alert)
	}
}

func TestLiveConnectionsAreIndependentScopes(t *testing.T) {
	s := newTestServer(t)

	a := dialLive(t, s)
	b := dialLive(t, s)

	if got := request(t, a, "badge"); !strings.Contains(got, "<style>") {
		t.Errorf("connection a first render should emit, got %q", got)
	}
	if got := request(t, b, "badge"); !strings.Contains(got, "<style>") {
		t.Errorf("connection b should have its own tracker, got %q", got)
	}
}

func TestLiveUnknownComponent(t *testing.T) {
	conn := dialLive(t, newTestServer(t))

	got := request(t, conn, "nope")
	if !strings.HasPrefix(got, "unknown component:") {
		t.Errorf("got %q", got)
	}

	// The connection stays usable afterwards.
	if got := request(t, conn, "badge"); !strings.Contains(got, "badge") {
		t.Errorf("connection should survive an unknown name, got %q", got)
	}
}
