package contact

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/mgdigi/portfolio/backend/internal/i18n"
	"github.com/mgdigi/portfolio/backend/internal/middleware"
	"github.com/mgdigi/portfolio/backend/internal/model/contact"
	contactservice "github.com/mgdigi/portfolio/backend/internal/service/contact"
)

func setupRouter(delay time.Duration) *chi.Mux {
	handler := New(contactservice.NewService(contactservice.Config{SubmitDelay: delay}))

	r := chi.NewRouter()
	r.Use(middleware.Language(i18n.French))
	handler.RegisterRoutes(r)
	return r
}

func post(r http.Handler, path string, body any) *httptest.ResponseRecorder {
	payload, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func get(r http.Handler, path string) *httptest.ResponseRecorder {
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, path, nil))
	return resp
}

func TestSubmitInvalidFormReturnsFieldErrors(t *testing.T) {
	r := setupRouter(0)

	resp := post(r, "/contact?lang=en", map[string]string{
		"name":    "  ",
		"email":   "not-an-email",
		"subject": "Hello",
	})
	if resp.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", resp.Code)
	}

	var body struct {
		Errors map[string]string `json:"errors"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode err: %v", err)
	}
	if len(body.Errors) != 3 {
		t.Fatalf("expected 3 field errors, got %v", body.Errors)
	}
	if body.Errors["email"] != "Email is invalid" {
		t.Fatalf("unexpected email error %q", body.Errors["email"])
	}
	if _, ok := body.Errors["subject"]; ok {
		t.Fatal("subject should be valid")
	}
}

func TestSubmitUsesRequestLanguage(t *testing.T) {
	r := setupRouter(0)

	payload, _ := json.Marshal(map[string]string{"name": "Awa", "email": "", "subject": "Projet", "message": "Bonjour"})
	req := httptest.NewRequest(http.MethodPost, "/contact", bytes.NewReader(payload))
	req.Header.Set("Accept-Language", "fr-FR,fr;q=0.9")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	var body struct {
		Errors map[string]string `json:"errors"`
	}
	_ = json.NewDecoder(resp.Body).Decode(&body)
	if body.Errors["email"] != i18n.For(i18n.French).T("form.emailRequired") {
		t.Fatalf("expected French message, got %q", body.Errors["email"])
	}
}

func TestSubmitValidFormCompletes(t *testing.T) {
	r := setupRouter(10 * time.Millisecond)

	resp := post(r, "/contact?lang=en", map[string]string{
		"name":    "Awa Diop",
		"email":   "awa@example.com",
		"subject": "New project",
		"message": "Let's build something.",
	})
	if resp.Code != http.StatusAccepted {
		t.Fatalf("expected 202, got %d: %s", resp.Code, resp.Body.String())
	}

	var submission contact.Submission
	if err := json.NewDecoder(resp.Body).Decode(&submission); err != nil {
		t.Fatalf("decode err: %v", err)
	}
	if submission.Status != contact.StatusSending {
		t.Fatalf("expected sending, got %s", submission.Status)
	}

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		var current contact.Submission
		_ = json.NewDecoder(get(r, "/contact/"+submission.ID).Body).Decode(&current)
		if current.Status == contact.StatusSent {
			if current.Notification == nil || current.Notification.Title == "" {
				t.Fatal("expected a notification once sent")
			}
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("submission never completed")
}

func TestSubmitMalformedBody(t *testing.T) {
	r := setupRouter(0)

	req := httptest.NewRequest(http.MethodPost, "/contact", bytes.NewBufferString("{"))
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}

func TestGetUnknownSubmission(t *testing.T) {
	r := setupRouter(0)

	if resp := get(r, "/contact/missing"); resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
}
