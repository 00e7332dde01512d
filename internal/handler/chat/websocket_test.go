package chat

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	"github.com/mgdigi/portfolio/backend/internal/analysis/responder"
	"github.com/mgdigi/portfolio/backend/internal/i18n"
	"github.com/mgdigi/portfolio/backend/internal/model/chat"
	chatservice "github.com/mgdigi/portfolio/backend/internal/service/chat"
)

type wireMessage struct {
	Type      string          `json:"type"`
	SessionID string          `json:"sessionId"`
	Data      json.RawMessage `json:"data"`
}

func setupWebSocket(t *testing.T, origins []string) (*httptest.Server, *chatservice.Service) {
	t.Helper()
	chatSvc := chatservice.NewService(chatservice.Config{
		MinReplyDelay: 5 * time.Millisecond,
		MaxReplyDelay: 10 * time.Millisecond,
	})

	r := chi.NewRouter()
	NewWebSocketHandler(chatSvc, origins).RegisterWebSocketRoutes(r)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv, chatSvc
}

func wsURL(srv *httptest.Server, sessionID string) string {
	return "ws" + strings.TrimPrefix(srv.URL, "http") + "/chat/sessions/" + sessionID + "/ws"
}

func readUntil(t *testing.T, conn *websocket.Conn, match func(wireMessage) bool) wireMessage {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(3 * time.Second))
	for {
		var msg wireMessage
		if err := conn.ReadJSON(&msg); err != nil {
			t.Fatalf("ReadJSON err: %v", err)
		}
		if match(msg) {
			return msg
		}
	}
}

func TestWebSocketTextRoundTrip(t *testing.T) {
	srv, chatSvc := setupWebSocket(t, nil)
	session, _, _ := chatSvc.CreateSession(context.Background(), i18n.English)

	conn, _, err := websocket.DefaultDialer.Dial(wsURL(srv, session.ID), nil)
	if err != nil {
		t.Fatalf("Dial err: %v", err)
	}
	defer conn.Close()

	readUntil(t, conn, func(m wireMessage) bool { return m.Type == "connected" })

	if err := conn.WriteJSON(map[string]any{
		"type": "text",
		"data": map[string]string{"text": "Tell me about your career"},
	}); err != nil {
		t.Fatalf("WriteJSON err: %v", err)
	}

	msg := readUntil(t, conn, func(m wireMessage) bool {
		if m.Type != string(chat.EventMessage) {
			return false
		}
		var ev chat.Event
		_ = json.Unmarshal(m.Data, &ev)
		return ev.Message != nil && !ev.Message.IsUser
	})

	var ev chat.Event
	if err := json.Unmarshal(msg.Data, &ev); err != nil {
		t.Fatalf("decode event err: %v", err)
	}
	if ev.Message.Text != responder.Reply(responder.Experience) {
		t.Fatalf("unexpected reply %q", ev.Message.Text)
	}
}

func TestWebSocketRejectsBlankAndUnknown(t *testing.T) {
	srv, chatSvc := setupWebSocket(t, nil)
	session, _, _ := chatSvc.CreateSession(context.Background(), i18n.English)

	conn, _, err := websocket.DefaultDialer.Dial(wsURL(srv, session.ID), nil)
	if err != nil {
		t.Fatalf("Dial err: %v", err)
	}
	defer conn.Close()

	readUntil(t, conn, func(m wireMessage) bool { return m.Type == "connected" })

	_ = conn.WriteJSON(map[string]any{"type": "text", "data": map[string]string{"text": "   "}})
	readUntil(t, conn, func(m wireMessage) bool { return m.Type == "error" })

	_ = conn.WriteJSON(map[string]any{"type": "audio"})
	readUntil(t, conn, func(m wireMessage) bool { return m.Type == "error" })

	_ = conn.WriteJSON(map[string]any{"type": "ping"})
	readUntil(t, conn, func(m wireMessage) bool { return m.Type == "pong" })
}

func TestWebSocketUnknownSession(t *testing.T) {
	srv, _ := setupWebSocket(t, nil)

	_, resp, err := websocket.DefaultDialer.Dial(wsURL(srv, "missing"), nil)
	if err == nil {
		t.Fatal("expected dial failure")
	}
	if resp == nil || resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 response, got %v", resp)
	}
}

func TestWebSocketOriginCheck(t *testing.T) {
	srv, chatSvc := setupWebSocket(t, []string{"https://portfolio.example"})
	session, _, _ := chatSvc.CreateSession(context.Background(), i18n.English)

	header := http.Header{}
	header.Set("Origin", "https://evil.example")
	if _, _, err := websocket.DefaultDialer.Dial(wsURL(srv, session.ID), header); err == nil {
		t.Fatal("expected foreign origin to be rejected")
	}

	header.Set("Origin", "https://portfolio.example")
	conn, _, err := websocket.DefaultDialer.Dial(wsURL(srv, session.ID), header)
	if err != nil {
		t.Fatalf("expected allowed origin to connect: %v", err)
	}
	conn.Close()
}
