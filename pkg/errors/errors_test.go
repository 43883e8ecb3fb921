package errors

import (
	"errors"
	"net/http"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(CodeValidation, "validation failed", http.StatusUnprocessableEntity)

	if err.Code != CodeValidation {
		t.Errorf("expected code %s, got %s", CodeValidation, err.Code)
	}
	if err.Message != "validation failed" {
		t.Errorf("expected message 'validation failed', got %s", err.Message)
	}
	if err.HTTPStatus != http.StatusUnprocessableEntity {
		t.Errorf("expected status %d, got %d", http.StatusUnprocessableEntity, err.HTTPStatus)
	}
}

func TestWrap(t *testing.T) {
	originalErr := errors.New("database connection failed")
	wrapped := Wrap(originalErr, CodeInternal, "internal error", http.StatusInternalServerError)

	if wrapped.Err != originalErr {
		t.Errorf("expected wrapped error to contain original error")
	}
	if !errors.Is(wrapped, originalErr) {
		t.Errorf("expected errors.Is to unwrap to the original error")
	}
}

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		appErr   *AppError
		expected string
	}{
		{
			name: "without underlying error",
			appErr: &AppError{
				Code:    CodeNotFound,
				Message: "resource not found",
			},
			expected: "NOT_FOUND: resource not found",
		},
		{
			name: "with underlying error",
			appErr: &AppError{
				Code:    CodeInternal,
				Message: "something broke",
				Err:     errors.New("disk full"),
			},
			expected: "INTERNAL_ERROR: something broke (caused by: disk full)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.appErr.Error(); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name           string
		err            *AppError
		expectedCode   string
		expectedStatus int
	}{
		{"NotFound", NotFound("Booking"), CodeNotFound, http.StatusNotFound},
		{"NotFoundWithID", NotFoundWithID("Booking", "abc"), CodeNotFound, http.StatusNotFound},
		{"InvalidInput", InvalidInput("bad status"), CodeInvalidInput, http.StatusBadRequest},
		{"Unauthorized", Unauthorized("missing token"), CodeUnauthorized, http.StatusUnauthorized},
		{"Validation", Validation("bad input", nil), CodeValidation, http.StatusUnprocessableEntity},
		{"RateLimited", RateLimited("slow down"), CodeRateLimited, http.StatusTooManyRequests},
		{"Internal", Internal("boom", errors.New("cause")), CodeInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Code != tt.expectedCode {
				t.Errorf("expected code %s, got %s", tt.expectedCode, tt.err.Code)
			}
			if tt.err.StatusCode() != tt.expectedStatus {
				t.Errorf("expected status %d, got %d", tt.expectedStatus, tt.err.StatusCode())
			}
		})
	}
}

func TestNotFoundWithID_Details(t *testing.T) {
	err := NotFoundWithID("Reel", "reel-1")

	if err.Details["resource"] != "Reel" {
		t.Errorf("expected resource detail 'Reel', got %v", err.Details["resource"])
	}
	if err.Details["id"] != "reel-1" {
		t.Errorf("expected id detail 'reel-1', got %v", err.Details["id"])
	}
}

func TestAsAppError(t *testing.T) {
	appErr := NotFound("Booking")
	if got := AsAppError(appErr); got != appErr {
		t.Errorf("expected AsAppError to return the same AppError")
	}

	plain := errors.New("plain error")
	converted := AsAppError(plain)
	if converted.Code != CodeInternal {
		t.Errorf("expected plain error to convert to %s, got %s", CodeInternal, converted.Code)
	}
	if converted.HTTPStatus != http.StatusInternalServerError {
		t.Errorf("expected status 500, got %d", converted.HTTPStatus)
	}
}
