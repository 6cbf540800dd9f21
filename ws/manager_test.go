package ws

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

// newConnPair dials a throwaway websocket server and returns both ends
// of the connection.
func newConnPair(t *testing.T) (client, server *websocket.Conn) {
	t.Helper()
	var upgrader websocket.Upgrader
	accepted := make(chan *websocket.Conn, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Errorf("upgrade: %v", err)
			return
		}
		accepted <- conn
	}))
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	client, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	server = <-accepted
	t.Cleanup(func() {
		_ = client.Close()
		_ = server.Close()
	})
	return client, server
}

func TestManager_RegisterSendUnregister(t *testing.T) {
	m := NewManager()
	client, server := newConnPair(t)

	if m.IsConnected("c1") {
		t.Fatal("expected no connection before Register")
	}
	if err := m.Send("c1", map[string]string{"type": "ping"}); !errors.Is(err, ErrNotConnected) {
		t.Fatalf("Send without connection: got %v, want ErrNotConnected", err)
	}

	m.Register("c1", server)
	if !m.IsConnected("c1") {
		t.Fatal("expected connection after Register")
	}
	if got := m.List(); len(got) != 1 || got[0] != "c1" {
		t.Fatalf("List() = %v, want [c1]", got)
	}

	if err := m.Send("c1", map[string]string{"type": "ping"}); err != nil {
		t.Fatalf("Send: %v", err)
	}
	_ = client.SetReadDeadline(time.Now().Add(2 * time.Second))
	var frame map[string]string
	if err := client.ReadJSON(&frame); err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}
	if frame["type"] != "ping" {
		t.Errorf("frame type = %q, want %q", frame["type"], "ping")
	}

	m.Unregister("c1")
	if m.IsConnected("c1") {
		t.Error("still connected after Unregister")
	}
	if len(m.List()) != 0 {
		t.Errorf("List() = %v, want empty", m.List())
	}
	_ = client.SetReadDeadline(time.Now().Add(2 * time.Second))
	if _, _, err := client.ReadMessage(); err == nil {
		t.Error("connection still open after Unregister")
	}
}

func TestManager_RegisterReplacesOldConnection(t *testing.T) {
	m := NewManager()
	oldClient, oldServer := newConnPair(t)
	_, newServer := newConnPair(t)

	m.Register("c1", oldServer)
	m.Register("c1", newServer)

	if !m.IsConnected("c1") {
		t.Fatal("expected connection after re-Register")
	}
	_ = oldClient.SetReadDeadline(time.Now().Add(2 * time.Second))
	if _, _, err := oldClient.ReadMessage(); err == nil {
		t.Error("replaced connection still open")
	}
}
