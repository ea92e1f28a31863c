package api

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
)

const (
	statusOK     = "ok"
	statusFailed = "failed"
)

// envelope is the body of every API response.
type envelope struct {
	Status string `json:"status"`
	Data   any    `json:"data,omitempty"`
	ID     *int64 `json:"id,omitempty"`
	Reason string `json:"reason,omitempty"`
}

// jsonResponse writes a JSON response with the given status code.
func jsonResponse(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body != nil {
		if err := json.NewEncoder(w).Encode(body); err != nil {
			slog.Error("error encoding response", "error", err)
		}
	}
}

// jsonData writes a success envelope carrying data.
func jsonData(w http.ResponseWriter, data any) {
	jsonResponse(w, http.StatusOK, envelope{Status: statusOK, Data: data})
}

// jsonError writes a failure envelope.
func jsonError(w http.ResponseWriter, status int, reason string) {
	jsonResponse(w, status, envelope{Status: statusFailed, Reason: reason})
}

// maxBodyBytes caps the size of request bodies.
const maxBodyBytes = 1 << 20

// decodeJSON decodes a JSON request body holding exactly one value into the
// given target.
func decodeJSON(w http.ResponseWriter, r *http.Request, target any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	defer r.Body.Close()

	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(target); err != nil {
		return err
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return errors.New("body must contain a single JSON value")
	}
	return nil
}
