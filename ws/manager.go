// Package ws tracks the live websocket connection of each chat-widget
// session and pushes JSON frames to it.
package ws

import (
	"encoding/json"
	"errors"
	"sync"

	"github.com/gorilla/websocket"
)

// ErrNotConnected is returned by Send when a conversation has no
// connection.
var ErrNotConnected = errors.New("session not connected")

// Manager keeps the active widget connections, keyed by conversation id.
// A conversation has at most one connection; registering again replaces
// and closes the previous one.
type Manager struct {
	mu          sync.RWMutex
	connections map[string]*websocket.Conn
}

func NewManager() *Manager {
	return &Manager{connections: make(map[string]*websocket.Conn)}
}

// Register attaches a connection to a conversation, replacing any
// existing one.
func (m *Manager) Register(conversationID string, conn *websocket.Conn) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if old, ok := m.connections[conversationID]; ok && old != conn {
		_ = old.Close()
	}
	m.connections[conversationID] = conn
}

// Unregister closes and drops a conversation's connection.
func (m *Manager) Unregister(conversationID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if conn, ok := m.connections[conversationID]; ok {
		_ = conn.Close()
		delete(m.connections, conversationID)
	}
}

// Send marshals payload as JSON and writes it to the conversation's
// connection.
func (m *Manager) Send(conversationID string, payload interface{}) error {
	m.mu.RLock()
	conn, ok := m.connections[conversationID]
	m.mu.RUnlock()
	if !ok || conn == nil {
		return ErrNotConnected
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return conn.WriteMessage(websocket.TextMessage, b)
}

// IsConnected reports whether a conversation currently has a connection.
func (m *Manager) IsConnected(conversationID string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.connections[conversationID]
	return ok
}

// List returns a copy of the connected conversation ids.
func (m *Manager) List() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ids := make([]string, 0, len(m.connections))
	for id := range m.connections {
		ids = append(ids, id)
	}
	return ids
}
