package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/petscout/backend/config"
	"github.com/petscout/backend/internal/domain"
	"github.com/petscout/backend/internal/infrastructure/cache"
	"github.com/petscout/backend/internal/usecase"
	"github.com/rs/zerolog"
)

// TestMain sets up test environment before running tests
func TestMain(m *testing.M) {
	// Set Gin to test mode once for all tests
	gin.SetMode(gin.TestMode)

	os.Exit(m.Run())
}

// fakeSource is a scriptable domain.AnimalSource for handler tests
type fakeSource struct {
	animals []domain.Animal
	animal  *domain.Animal
	orgs    []domain.Organization
	err     error
}

func (f *fakeSource) SearchAnimals(context.Context, domain.SearchFilter) ([]domain.Animal, error) {
	return f.animals, f.err
}

func (f *fakeSource) GetAnimal(context.Context, int64) (*domain.Animal, error) {
	return f.animal, f.err
}

func (f *fakeSource) ListOrganizations(context.Context, string) ([]domain.Organization, error) {
	return f.orgs, f.err
}

func testRouterConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Port:           "8080",
			Environment:    "test",
			AllowedOrigins: []string{"http://localhost:3000"},
		},
		Petfinder: config.PetfinderConfig{
			ClientID:     "test-id",
			ClientSecret: "test-secret",
			BaseURL:      "https://api.petfinder.com/v2",
		},
	}
}

// setupTestRouter wires a router around a facade backed by the given
// live source; mock mode is reachable via the dev endpoints
func setupTestRouter(live domain.AnimalSource) *gin.Engine {
	cfg := testRouterConfig()

	mock := &fakeSource{
		animals: []domain.Animal{{ID: 9001, Name: "MockPet"}},
		animal:  &domain.Animal{ID: 9001, Name: "MockPet"},
	}

	adoptions := usecase.NewAdoptionService(
		cache.NewStore(cache.Options{}),
		live,
		mock,
		cfg.Petfinder.HasCredentials(),
		zerolog.Nop(),
	)

	handler := NewHandler(adoptions, cfg.Petfinder.Snapshot())
	return SetupRouter(cfg, zerolog.Nop(), handler)
}

func doRequest(router *gin.Engine, method, path string, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req, _ := http.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHealthCheckEndpoint(t *testing.T) {
	router := setupTestRouter(&fakeSource{})

	w := doRequest(router, "GET", "/health", "")

	if w.Code != http.StatusOK {
		t.Errorf("Status = %d, want %d", w.Code, http.StatusOK)
	}

	var response map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if response["status"] != "healthy" {
		t.Errorf("status = %v, want healthy", response["status"])
	}
	if response["service"] != "petscout-backend" {
		t.Errorf("service = %v, want petscout-backend", response["service"])
	}
}

func TestListAnimalsEndpoint(t *testing.T) {
	t.Run("returns animals", func(t *testing.T) {
		live := &fakeSource{animals: []domain.Animal{{ID: 1, Name: "Rex", Type: "Dog"}}}
		router := setupTestRouter(live)

		w := doRequest(router, "GET", "/api/v1/animals?type=Dog", "")

		if w.Code != http.StatusOK {
			t.Fatalf("Status = %d, want %d", w.Code, http.StatusOK)
		}

		var response struct {
			Animals []domain.Animal `json:"animals"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
			t.Fatalf("Failed to unmarshal response: %v", err)
		}
		if len(response.Animals) != 1 || response.Animals[0].Name != "Rex" {
			t.Errorf("animals = %+v, want one animal named Rex", response.Animals)
		}
	})

	t.Run("provider failure maps to 502 with stable message", func(t *testing.T) {
		live := &fakeSource{err: &domain.APIError{Status: 503}}
		router := setupTestRouter(live)

		w := doRequest(router, "GET", "/api/v1/animals", "")

		if w.Code != http.StatusBadGateway {
			t.Fatalf("Status = %d, want %d", w.Code, http.StatusBadGateway)
		}

		var response map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
			t.Fatalf("Failed to unmarshal response: %v", err)
		}
		if response["error"] != "can't reach the adoption service right now" {
			t.Errorf("error = %v, want the stable user-facing message", response["error"])
		}
		// Wire detail must not leak
		if strings.Contains(w.Body.String(), "503") {
			t.Error("response body leaks the provider status code")
		}
	})

	t.Run("auth failure maps to 502", func(t *testing.T) {
		live := &fakeSource{err: &domain.AuthError{Cause: errors.New("grant rejected")}}
		router := setupTestRouter(live)

		w := doRequest(router, "GET", "/api/v1/animals", "")

		if w.Code != http.StatusBadGateway {
			t.Errorf("Status = %d, want %d", w.Code, http.StatusBadGateway)
		}
	})
}

func TestGetAnimalEndpoint(t *testing.T) {
	t.Run("returns the animal", func(t *testing.T) {
		live := &fakeSource{animal: &domain.Animal{ID: 42, Name: "Luna"}}
		router := setupTestRouter(live)

		w := doRequest(router, "GET", "/api/v1/animals/42", "")

		if w.Code != http.StatusOK {
			t.Fatalf("Status = %d, want %d", w.Code, http.StatusOK)
		}

		var response struct {
			Animal domain.Animal `json:"animal"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
			t.Fatalf("Failed to unmarshal response: %v", err)
		}
		if response.Animal.Name != "Luna" {
			t.Errorf("animal.name = %s, want Luna", response.Animal.Name)
		}
	})

	t.Run("confirmed not-found returns 404", func(t *testing.T) {
		live := &fakeSource{animal: nil}
		router := setupTestRouter(live)

		w := doRequest(router, "GET", "/api/v1/animals/999", "")

		if w.Code != http.StatusNotFound {
			t.Errorf("Status = %d, want %d", w.Code, http.StatusNotFound)
		}
	})

	t.Run("non-numeric id returns 400", func(t *testing.T) {
		router := setupTestRouter(&fakeSource{})

		w := doRequest(router, "GET", "/api/v1/animals/not-a-number", "")

		if w.Code != http.StatusBadRequest {
			t.Errorf("Status = %d, want %d", w.Code, http.StatusBadRequest)
		}
	})
}

func TestSearchNearbyEndpoint(t *testing.T) {
	t.Run("requires location", func(t *testing.T) {
		router := setupTestRouter(&fakeSource{})

		w := doRequest(router, "GET", "/api/v1/animals/nearby", "")

		if w.Code != http.StatusBadRequest {
			t.Errorf("Status = %d, want %d", w.Code, http.StatusBadRequest)
		}
	})

	t.Run("returns nearby animals", func(t *testing.T) {
		live := &fakeSource{animals: []domain.Animal{{ID: 5, Name: "Buddy"}}}
		router := setupTestRouter(live)

		w := doRequest(router, "GET", "/api/v1/animals/nearby?location=Austin%2C+TX", "")

		if w.Code != http.StatusOK {
			t.Errorf("Status = %d, want %d", w.Code, http.StatusOK)
		}
	})
}

func TestListOrganizationsEndpoint(t *testing.T) {
	live := &fakeSource{orgs: []domain.Organization{{ID: "TX42", Name: "Happy Tails Rescue"}}}
	router := setupTestRouter(live)

	w := doRequest(router, "GET", "/api/v1/organizations?location=Austin", "")

	if w.Code != http.StatusOK {
		t.Fatalf("Status = %d, want %d", w.Code, http.StatusOK)
	}

	var response struct {
		Organizations []domain.Organization `json:"organizations"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if len(response.Organizations) != 1 || response.Organizations[0].ID != "TX42" {
		t.Errorf("organizations = %+v, want one org TX42", response.Organizations)
	}
}

func TestDevEndpoints(t *testing.T) {
	t.Run("status reports mode and never leaks the secret", func(t *testing.T) {
		router := setupTestRouter(&fakeSource{})

		w := doRequest(router, "GET", "/api/v1/dev/status", "")

		if w.Code != http.StatusOK {
			t.Fatalf("Status = %d, want %d", w.Code, http.StatusOK)
		}

		var response map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
			t.Fatalf("Failed to unmarshal response: %v", err)
		}
		if response["forceMock"] != false {
			t.Errorf("forceMock = %v, want false", response["forceMock"])
		}
		if response["hasCredentials"] != true {
			t.Errorf("hasCredentials = %v, want true", response["hasCredentials"])
		}
		if strings.Contains(w.Body.String(), "test-secret") {
			t.Error("dev status response leaks the client secret")
		}
	})

	t.Run("mock toggle switches the served source", func(t *testing.T) {
		live := &fakeSource{animals: []domain.Animal{{ID: 1, Name: "LivePet"}}}
		router := setupTestRouter(live)

		w := doRequest(router, "POST", "/api/v1/dev/mock", `{"enabled":true}`)
		if w.Code != http.StatusOK {
			t.Fatalf("Status = %d, want %d", w.Code, http.StatusOK)
		}

		w = doRequest(router, "GET", "/api/v1/animals", "")
		if !strings.Contains(w.Body.String(), "MockPet") {
			t.Error("expected mock data after enabling force-mock mode")
		}
	})

	t.Run("mock toggle requires a boolean body", func(t *testing.T) {
		router := setupTestRouter(&fakeSource{})

		w := doRequest(router, "POST", "/api/v1/dev/mock", `{}`)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Status = %d, want %d", w.Code, http.StatusBadRequest)
		}
	})

	t.Run("cache clear succeeds", func(t *testing.T) {
		router := setupTestRouter(&fakeSource{})

		w := doRequest(router, "POST", "/api/v1/dev/cache/clear", "")

		if w.Code != http.StatusOK {
			t.Errorf("Status = %d, want %d", w.Code, http.StatusOK)
		}
	})
}

func TestRecoveryFromPanic(t *testing.T) {
	router := setupTestRouter(&fakeSource{})

	router.GET("/panic", func(c *gin.Context) {
		panic("test panic")
	})

	w := doRequest(router, "GET", "/panic", "")

	if w.Code != http.StatusInternalServerError {
		t.Errorf("Status = %d, want %d", w.Code, http.StatusInternalServerError)
	}
}
