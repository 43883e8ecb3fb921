package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
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

func protectedEndpoint(guard *AdminGuard) httprouter.Handle {
	return guard.Protect(func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestAdminGuard_NonProductionBypassesToken(t *testing.T) {
	guard := NewAdminGuard(false, "secret", testLogger())
	handle := protectedEndpoint(guard)

	tests := []struct {
		name  string
		token string
	}{
		{"no token", ""},
		{"wrong token", "wrong"},
		{"correct token", "secret"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/bookings", nil)
			if tt.token != "" {
				req.Header.Set(AdminTokenHeader, tt.token)
			}
			w := httptest.NewRecorder()

			handle(w, req, nil)

			if w.Code != http.StatusOK {
				t.Errorf("expected status 200 outside production, got %d", w.Code)
			}
		})
	}
}

func TestAdminGuard_Production(t *testing.T) {
	guard := NewAdminGuard(true, "secret", testLogger())
	handle := protectedEndpoint(guard)

	tests := []struct {
		name         string
		token        string
		expectedCode int
	}{
		{"missing token", "", http.StatusUnauthorized},
		{"mismatched token", "not-the-secret", http.StatusUnauthorized},
		{"token with extra whitespace", " secret ", http.StatusUnauthorized},
		{"correct token", "secret", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodDelete, "/api/reels/abc", nil)
			if tt.token != "" {
				req.Header.Set(AdminTokenHeader, tt.token)
			}
			w := httptest.NewRecorder()

			handle(w, req, nil)

			if w.Code != tt.expectedCode {
				t.Errorf("expected status %d, got %d", tt.expectedCode, w.Code)
			}
		})
	}
}

func TestAdminGuard_UnauthorizedBody(t *testing.T) {
	guard := NewAdminGuard(true, "secret", testLogger())
	handle := protectedEndpoint(guard)

	req := httptest.NewRequest(http.MethodGet, "/api/bookings", nil)
	w := httptest.NewRecorder()

	handle(w, req, nil)

	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected JSON content type, got %q", ct)
	}
	body := w.Body.String()
	if body == "" {
		t.Fatal("expected a structured error body")
	}
	if !strings.Contains(body, "Unauthorized") || !strings.Contains(body, "UNAUTHORIZED") {
		t.Errorf("expected error kind and detail in body, got %s", body)
	}
}
