package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"helpdesk-server/llm"
	"helpdesk-server/usecases"
	"helpdesk-server/ws"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// WebSocket message envelopes
type incomingMessage struct {
	Type string `json:"type"` // start | ask | end
}

type startPayload struct {
	Type     string `json:"type"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Email    string `json:"email"`
}

type askPayload struct {
	Type           string `json:"type"`
	ConversationID string `json:"conversation_id"`
	Question       string `json:"question"`
}

// ChatWSHandler runs the chat widget flow over a websocket.
type ChatWSHandler struct {
	mgr     *ws.Manager
	useCase *usecases.ChatUseCase
}

func NewChatWSHandler(mgr *ws.Manager, uc *usecases.ChatUseCase) *ChatWSHandler {
	return &ChatWSHandler{mgr: mgr, useCase: uc}
}

var upgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

// HandleChatWS upgrades to websocket and serves one widget session.
// GET /ws/chat
func (h *ChatWSHandler) HandleChatWS(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("websocket upgrade failed: %v", err)
		return
	}

	var conversationID string
	defer func() {
		if conversationID != "" {
			h.mgr.Unregister(conversationID)
			h.useCase.EndSession(conversationID)
			log.Printf("chat session closed: %s", conversationID)
		} else {
			_ = conn.Close()
		}
	}()

	for {
		mt, message, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				return
			}
			log.Printf("chat ws read error: %v", err)
			return
		}
		if mt != websocket.TextMessage {
			continue
		}

		var base incomingMessage
		if err := json.Unmarshal(message, &base); err != nil {
			h.send(conn, gin.H{"type": "error", "error": "invalid json"})
			continue
		}

		switch base.Type {
		case "start":
			var payload startPayload
			if err := json.Unmarshal(message, &payload); err != nil {
				h.send(conn, gin.H{"type": "error", "error": "invalid start payload"})
				continue
			}
			conv, err := h.useCase.StartConversation(payload.Username, payload.Name, payload.Email)
			if err != nil {
				h.send(conn, gin.H{"type": "error", "error": "failed to start conversation"})
				continue
			}
			conversationID = conv.ID
			h.mgr.Register(conv.ID, conn)
			log.Printf("chat session started: %s", conv.ID)
			h.deliver(conv.ID, conn, gin.H{"type": "started", "data": conv})

		case "ask":
			var payload askPayload
			if err := json.Unmarshal(message, &payload); err != nil {
				h.send(conn, gin.H{"type": "error", "error": "invalid ask payload"})
				continue
			}
			if payload.ConversationID == "" {
				payload.ConversationID = conversationID
			}
			if conversationID == "" && payload.ConversationID != "" {
				// widget reattaching to a conversation started over HTTP
				conversationID = payload.ConversationID
				h.mgr.Register(conversationID, conn)
			}
			answer, err := h.useCase.Ask(c.Request.Context(), payload.ConversationID, payload.Question)
			if err != nil {
				var llmErr *llm.Error
				if errors.As(err, &llmErr) {
					h.send(conn, gin.H{"type": "error", "code": llmErr.Code, "error": llmErr.Message})
				} else {
					h.send(conn, gin.H{"type": "error", "error": err.Error()})
				}
				continue
			}
			h.deliver(payload.ConversationID, conn, gin.H{"type": "answer", "data": answer})

		case "end":
			return

		default:
			log.Printf("unknown chat ws message type: %s", base.Type)
		}
	}
}

// deliver routes a frame through the manager once the conversation is
// registered, so pushes initiated elsewhere share the same write path.
// Before registration it falls back to the local connection.
func (h *ChatWSHandler) deliver(conversationID string, conn *websocket.Conn, payload gin.H) {
	if conversationID != "" && h.mgr.IsConnected(conversationID) {
		if err := h.mgr.Send(conversationID, payload); err == nil {
			return
		}
	}
	h.send(conn, payload)
}

func (h *ChatWSHandler) send(conn *websocket.Conn, payload gin.H) {
	b, _ := json.Marshal(payload)
	if err := conn.WriteMessage(websocket.TextMessage, b); err != nil {
		log.Printf("chat ws write error: %v", err)
	}
}

// GetConnectedSessions GET /api/chat/connected
func (h *ChatWSHandler) GetConnectedSessions(c *gin.Context) {
	ids := h.mgr.List()
	c.JSON(http.StatusOK, gin.H{"sessions": ids, "count": len(ids)})
}
