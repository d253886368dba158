package apperror

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestErrorError(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		expected string
	}{
		{
			name:     "without internal error",
			err:      New(http.StatusNotFound, "not_found", "Resource not found"),
			expected: "not_found: Resource not found",
		},
		{
			name:     "with internal error",
			err:      ErrSubmissionFailed.WithInternal(errors.New("mailgun: 401")),
			expected: "submission_failed: The submission could not be delivered (mailgun: 401)",
		},
		{
			name:     "empty message",
			err:      New(http.StatusBadRequest, "bad_request", ""),
			expected: "bad_request: ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestErrorIsAndUnwrap(t *testing.T) {
	cause := errors.New("telegram: status 500")
	err := fmt.Errorf("deliver lead: %w", ErrSubmissionFailed.WithInternal(cause).WithMessage("custom"))

	if !errors.Is(err, ErrSubmissionFailed) {
		t.Error("errors.Is should match on code after WithMessage/WithInternal copies")
	}
	if errors.Is(err, ErrConflict) {
		t.Error("errors.Is matched a different code")
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is should reach the internal cause through Unwrap")
	}
}

func TestWithDetailsKeepsOriginal(t *testing.T) {
	withDetails := ErrValidation.WithDetails(map[string]any{"email": "required"})

	if len(ErrValidation.Details) != 0 {
		t.Error("WithDetails mutated the sentinel")
	}
	if withDetails.Details["email"] != "required" {
		t.Errorf("Details = %v", withDetails.Details)
	}
}

func TestToHTTPError(t *testing.T) {
	status, body := ToHTTPError(NewValidation(map[string]string{"name": "required"}))
	if status != http.StatusUnprocessableEntity {
		t.Errorf("status = %d, want 422", status)
	}
	inner := body["error"].(map[string]any)
	if inner["code"] != "validation_error" {
		t.Errorf("code = %v", inner["code"])
	}
	if inner["details"].(map[string]any)["name"] != "required" {
		t.Errorf("details = %v", inner["details"])
	}

	status, body = ToHTTPError(errors.New("boom"))
	if status != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", status)
	}
	if body["error"].(map[string]any)["code"] != "internal_error" {
		t.Errorf("unknown errors should map to internal_error, got %v", body)
	}
}

func TestWriteJSON(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/contact", nil)
	rec := httptest.NewRecorder()

	WriteJSON(rec, req, slog.Default(), ErrTooManyRequests)

	if rec.Code != http.StatusTooManyRequests {
		t.Errorf("Status = %d, want %d", rec.Code, http.StatusTooManyRequests)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	errObj := resp["error"].(map[string]any)
	if errObj["code"] != "rate_limited" {
		t.Errorf("Code = %v, want rate_limited", errObj["code"])
	}
}

func TestWriteJSON_HeadHasNoBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodHead, "/api/contact", nil)
	rec := httptest.NewRecorder()

	WriteJSON(rec, req, nil, NewInternal("render failed", errors.New("x")))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("Status = %d", rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Errorf("HEAD response should be empty, got %q", rec.Body.String())
	}
}
