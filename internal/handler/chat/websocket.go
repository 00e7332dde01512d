package chat

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	"github.com/mgdigi/portfolio/backend/internal/middleware"
	"github.com/mgdigi/portfolio/backend/internal/model/chat"
	chatService "github.com/mgdigi/portfolio/backend/internal/service/chat"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10

	maxMessageSize = 8 << 10
)

// WebSocketHandler WebSocket聊天处理器
type WebSocketHandler struct {
	chatSvc  *chatService.Service
	upgrader websocket.Upgrader
}

// NewWebSocketHandler 创建WebSocket处理器
func NewWebSocketHandler(chatSvc *chatService.Service, allowedOrigins []string) *WebSocketHandler {
	return &WebSocketHandler{
		chatSvc: chatSvc,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return middleware.OriginAllowed(allowedOrigins, r.Header.Get("Origin"))
			},
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

// RegisterWebSocketRoutes 注册WebSocket路由
func (h *WebSocketHandler) RegisterWebSocketRoutes(r chi.Router) {
	r.Get("/chat/sessions/{sessionID}/ws", h.handleWebSocket)
}

type inboundMessage struct {
	Type      string          `json:"type"`
	SessionID string          `json:"sessionId"`
	Data      json.RawMessage `json:"data"`
}

// TextMessage 访客输入
type TextMessage struct {
	Text string `json:"text"`
}

type outgoingMessage struct {
	Type      string      `json:"type"`
	SessionID string      `json:"sessionId,omitempty"`
	Data      interface{} `json:"data,omitempty"`
	Timestamp int64       `json:"timestamp"`
}

// handleWebSocket 处理WebSocket连接
func (h *WebSocketHandler) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")
	if _, err := h.chatSvc.GetSession(r.Context(), sessionID); err != nil {
		http.Error(w, "session not found", http.StatusNotFound)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[websocket] upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	log.Printf("[websocket] new connection for session: %s", sessionID)

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	events, err := h.chatSvc.Subscribe(ctx, sessionID)
	if err != nil {
		log.Printf("[websocket] subscribe failed: %v", err)
		return
	}

	out := make(chan outgoingMessage, 16)
	writerDone := make(chan struct{})
	go func() {
		defer close(writerDone)
		// Closing here unblocks ReadJSON when the writer gives up first.
		defer conn.Close()
		h.writeLoop(ctx, cancel, conn, events, out)
	}()

	pending, _ := h.chatSvc.Pending(ctx, sessionID)
	h.enqueue(ctx, out, outgoingMessage{
		Type:      "connected",
		SessionID: sessionID,
		Data:      map[string]any{"typing": pending > 0, "pending": pending},
	})

	conn.SetReadLimit(maxMessageSize)
	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		var msg inboundMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("[websocket] read error: %v", err)
			}
			break
		}
		conn.SetReadDeadline(time.Now().Add(pongWait))

		if msg.SessionID != "" && msg.SessionID != sessionID {
			h.enqueueError(ctx, out, "session mismatch")
			continue
		}

		h.handleMessage(ctx, out, sessionID, &msg)
	}

	cancel()
	<-writerDone
}

func (h *WebSocketHandler) handleMessage(ctx context.Context, out chan<- outgoingMessage, sessionID string, msg *inboundMessage) {
	switch msg.Type {
	case "text":
		var text TextMessage
		if err := json.Unmarshal(msg.Data, &text); err != nil {
			h.enqueueError(ctx, out, "invalid text payload")
			return
		}
		if _, err := h.chatSvc.SendMessage(ctx, sessionID, text.Text); err != nil {
			if errors.Is(err, chatService.ErrEmptyMessage) {
				h.enqueueError(ctx, out, err.Error())
				return
			}
			log.Printf("[websocket] send message failed: %v", err)
			h.enqueueError(ctx, out, "failed to send message")
		}
	case "ping":
		h.enqueue(ctx, out, outgoingMessage{Type: "pong", SessionID: sessionID})
	default:
		h.enqueueError(ctx, out, "unsupported message type")
	}
}

// writeLoop owns every write on conn.
func (h *WebSocketHandler) writeLoop(ctx context.Context, cancel context.CancelFunc, conn *websocket.Conn, events <-chan chat.Event, out <-chan outgoingMessage) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	write := func(msg outgoingMessage) bool {
		msg.Timestamp = time.Now().Unix()
		conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteJSON(msg); err != nil {
			log.Printf("[websocket] write failed: %v", err)
			cancel()
			return false
		}
		return true
	}

	for {
		select {
		case <-ctx.Done():
			return
		case msg := <-out:
			if !write(msg) {
				return
			}
		case ev, ok := <-events:
			if !ok {
				return
			}
			if !write(outgoingMessage{Type: string(ev.Type), SessionID: ev.SessionID, Data: ev}) {
				return
			}
		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				cancel()
				return
			}
		}
	}
}

func (h *WebSocketHandler) enqueue(ctx context.Context, out chan<- outgoingMessage, msg outgoingMessage) {
	select {
	case out <- msg:
	case <-ctx.Done():
	}
}

func (h *WebSocketHandler) enqueueError(ctx context.Context, out chan<- outgoingMessage, message string) {
	h.enqueue(ctx, out, outgoingMessage{
		Type: "error",
		Data: map[string]string{"message": message},
	})
}
