package stream

import (
	"bufio"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/mgdigi/portfolio/backend/internal/i18n"
	chatservice "github.com/mgdigi/portfolio/backend/internal/service/chat"
)

func setupServer(t *testing.T) (*httptest.Server, *chatservice.Service) {
	t.Helper()
	chatSvc := chatservice.NewService(chatservice.Config{
		MinReplyDelay: 5 * time.Millisecond,
		MaxReplyDelay: 10 * time.Millisecond,
	})

	r := chi.NewRouter()
	New(chatSvc).RegisterRoutes(r)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv, chatSvc
}

func TestEventsUnknownSession(t *testing.T) {
	srv, _ := setupServer(t)

	resp, err := http.Get(srv.URL + "/chat/sessions/missing/events")
	if err != nil {
		t.Fatalf("GET err: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}

func TestEventsStreamTypingAndReply(t *testing.T) {
	srv, chatSvc := setupServer(t)

	session, _, err := chatSvc.CreateSession(context.Background(), i18n.English)
	if err != nil {
		t.Fatalf("CreateSession err: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	req, _ := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"/chat/sessions/"+session.ID+"/events", nil)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("GET err: %v", err)
	}
	defer resp.Body.Close()

	if ct := resp.Header.Get("Content-Type"); ct != "text/event-stream" {
		t.Fatalf("unexpected content type %q", ct)
	}

	scanner := bufio.NewScanner(resp.Body)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	// Wait for the status event so the subscription is live before sending.
	var seen []string
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, "event: ") {
			seen = append(seen, strings.TrimPrefix(line, "event: "))
			if seen[len(seen)-1] == "status" {
				break
			}
		}
	}

	if _, err := chatSvc.SendMessage(ctx, session.ID, "What do you offer?"); err != nil {
		t.Fatalf("SendMessage err: %v", err)
	}

	gotReply := false
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, "event: ") {
			seen = append(seen, strings.TrimPrefix(line, "event: "))
		}
		if strings.HasPrefix(line, "data: ") && strings.Contains(line, `"isUser":false`) {
			gotReply = true
			break
		}
	}

	if !gotReply {
		t.Fatalf("never saw assistant reply, events: %v", seen)
	}
	if len(seen) < 4 || seen[0] != "status" || seen[1] != "message" || seen[2] != "typing" {
		t.Fatalf("unexpected event order: %v", seen)
	}
}
