package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/erazemk/katalog/internal/model"
	"github.com/erazemk/katalog/internal/store"
)

func TestErrorStatus(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		reason string
	}{
		{"not found", store.ErrNotFound, http.StatusNotFound, "item not found"},
		{"wrapped not found", fmt.Errorf("item 3: %w", store.ErrNotFound), http.StatusNotFound, "item 3: item not found"},
		{"validation", model.MissingFields("title"), http.StatusBadRequest, "missing required field(s): title"},
		{"store", &store.Error{Op: "listing items", Err: errors.New("disk I/O error")}, http.StatusInternalServerError, "internal error"},
		{"other", errors.New("boom"), http.StatusBadRequest, "boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, reason := errorStatus(tt.err)
			if status != tt.status {
				t.Errorf("expected status %d, got %d", tt.status, status)
			}
			if reason != tt.reason {
				t.Errorf("expected reason %q, got %q", tt.reason, reason)
			}
		})
	}
}

func TestHandleRecoversPanic(t *testing.T) {
	h := handle(func(w http.ResponseWriter, r *http.Request) error {
		var m map[string]int
		m["x"] = 1
		return nil
	})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("GET", "/api", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", rec.Code)
	}
	var body envelope
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if body.Status != statusFailed || body.Reason != "internal error" {
		t.Errorf("unexpected body %+v", body)
	}
}

func TestHandleWritesEnvelope(t *testing.T) {
	h := handle(func(w http.ResponseWriter, r *http.Request) error {
		return model.Invalid("invalid request body", errors.New("unexpected EOF"))
	})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("POST", "/api", nil))

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("unexpected content type %q", ct)
	}
	var body envelope
	json.NewDecoder(rec.Body).Decode(&body)
	if body.Reason != "invalid request body: unexpected EOF" {
		t.Errorf("unexpected reason %q", body.Reason)
	}
}

func TestDecodeJSON(t *testing.T) {
	big := `{"title":"` + strings.Repeat("x", maxBodyBytes) + `"}`

	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{"single value", `{"title":"A"}`, false},
		{"trailing whitespace", "{\"title\":\"A\"}\n  ", false},
		{"second value", `{"title":"A"} {"title":"B"}`, true},
		{"stray brace", `{"title":"A"}}`, true},
		{"empty", ``, true},
		{"oversized", big, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/api", strings.NewReader(tt.body))
			var target updateItemRequest
			err := decodeJSON(httptest.NewRecorder(), req, &target)
			if (err != nil) != tt.wantErr {
				t.Errorf("decodeJSON error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
