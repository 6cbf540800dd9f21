package cache

import (
	"sync"
	"time"
)

// SessionCache tracks live chat-widget sessions in memory. It backs the
// active-sessions gauge on /api/stats and lets the websocket handler see
// whether a conversation is still warm.
type SessionCache struct {
	mu       sync.RWMutex
	sessions map[string]sessionState // conversationID -> state
	ttl      time.Duration
}

type sessionState struct {
	lastSeen time.Time
	messages int
}

func NewSessionCache(ttl time.Duration) *SessionCache {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &SessionCache{
		sessions: make(map[string]sessionState),
		ttl:      ttl,
	}
}

// Touch marks a session as active now.
func (sc *SessionCache) Touch(conversationID string) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	state := sc.sessions[conversationID]
	state.lastSeen = time.Now()
	sc.sessions[conversationID] = state
}

// AddMessage marks activity and bumps the session's message counter.
func (sc *SessionCache) AddMessage(conversationID string) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	state := sc.sessions[conversationID]
	state.lastSeen = time.Now()
	state.messages++
	sc.sessions[conversationID] = state
}

// Remove drops a session, e.g. when its websocket closes.
func (sc *SessionCache) Remove(conversationID string) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	delete(sc.sessions, conversationID)
}

// ActiveCount returns the number of sessions seen within the TTL window.
func (sc *SessionCache) ActiveCount() int {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	cutoff := time.Now().Add(-sc.ttl)
	count := 0
	for _, state := range sc.sessions {
		if state.lastSeen.After(cutoff) {
			count++
		}
	}
	return count
}

// Prune removes sessions idle beyond the TTL and returns how many were
// dropped.
func (sc *SessionCache) Prune() int {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	cutoff := time.Now().Add(-sc.ttl)
	dropped := 0
	for id, state := range sc.sessions {
		if !state.lastSeen.After(cutoff) {
			delete(sc.sessions, id)
			dropped++
		}
	}
	return dropped
}

// Stats returns a snapshot of the cache for the stats endpoint.
func (sc *SessionCache) Stats() map[string]interface{} {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	totalMessages := 0
	for _, state := range sc.sessions {
		totalMessages += state.messages
	}
	return map[string]interface{}{
		"tracked_sessions":  len(sc.sessions),
		"buffered_messages": totalMessages,
		"ttl_minutes":       int(sc.ttl.Minutes()),
	}
}
