package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"dreamshoots/pkg/logger"

	"github.com/julienschmidt/httprouter"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Config{
		Level:   "error",
		Format:  logger.JSON,
		Service: "test",
	})
}

func TestHealth_ReportsEnvironmentAndVersion(t *testing.T) {
	h := NewHealthHandler("production", "1.0.0", nil, testLogger())

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()

	// Nil Mongo client: liveness must not touch the store.
	h.Health(w, req, nil)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp HealthResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Status != "healthy" {
		t.Errorf("expected status healthy, got %q", resp.Status)
	}
	if resp.Environment != "production" {
		t.Errorf("expected environment in response, got %q", resp.Environment)
	}
	if resp.Version != "1.0.0" {
		t.Errorf("expected version in response, got %q", resp.Version)
	}
}

func TestRoot_ServiceIdentity(t *testing.T) {
	h := NewRootHandler(testLogger())

	router := httprouter.New()
	h.RegisterRoutes(router)

	for _, path := range []string{"/api", "/api/"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", path, w.Code)
		}

		var resp map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("%s: failed to decode response: %v", path, err)
		}
		if resp["message"] != "Dream Shoots API" {
			t.Errorf("%s: expected service identity message, got %v", path, resp)
		}
	}
}
