package portfolio

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/mgdigi/portfolio/backend/internal/model/portfolio"
)

func setupRouter() *chi.Mux {
	r := chi.NewRouter()
	New(portfolio.NewMemoryStore(portfolio.Seed())).RegisterRoutes(r)
	return r
}

func get(r http.Handler, path string) *httptest.ResponseRecorder {
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, path, nil))
	return resp
}

func TestListProjectsByCategory(t *testing.T) {
	r := setupRouter()

	resp := get(r, "/projects?category=CMS")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var projects []portfolio.Project
	if err := json.NewDecoder(resp.Body).Decode(&projects); err != nil {
		t.Fatalf("decode err: %v", err)
	}
	if len(projects) != 2 {
		t.Fatalf("expected 2 CMS projects, got %d", len(projects))
	}

	var all []portfolio.Project
	_ = json.NewDecoder(get(r, "/projects").Body).Decode(&all)
	if len(all) != 6 {
		t.Fatalf("expected 6 projects, got %d", len(all))
	}
}

func TestProjectCategories(t *testing.T) {
	r := setupRouter()

	var categories []string
	_ = json.NewDecoder(get(r, "/projects/categories").Body).Decode(&categories)
	if len(categories) == 0 || categories[0] != portfolio.AllCategories {
		t.Fatalf("expected All first, got %v", categories)
	}
}

func TestGetProject(t *testing.T) {
	r := setupRouter()

	resp := get(r, "/projects/1")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var project portfolio.Project
	_ = json.NewDecoder(resp.Body).Decode(&project)
	if project.ID != 1 {
		t.Fatalf("expected project 1, got %d", project.ID)
	}

	if resp := get(r, "/projects/abc"); resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
	if resp := get(r, "/projects/999"); resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
}

func TestContentEndpoints(t *testing.T) {
	r := setupRouter()

	for _, path := range []string{"/profile", "/skills", "/services", "/i18n"} {
		if resp := get(r, path); resp.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", path, resp.Code)
		}
	}
}

func TestTranslations(t *testing.T) {
	r := setupRouter()

	resp := get(r, "/i18n/en")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var table map[string]string
	_ = json.NewDecoder(resp.Body).Decode(&table)
	if table["form.emailInvalid"] != "Email is invalid" {
		t.Fatalf("unexpected table entry %q", table["form.emailInvalid"])
	}

	if resp := get(r, "/i18n/de"); resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
}
