package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/erazemk/katalog/internal/model"
	"github.com/erazemk/katalog/internal/store"
)

var (
	errNoRoute          = errors.New("no such endpoint")
	errMethodNotAllowed = errors.New("method not allowed")
)

// handlerFunc is an HTTP handler that reports failure by returning an error.
type handlerFunc func(w http.ResponseWriter, r *http.Request) error

// errorStatus maps an error to its HTTP status and client-facing reason.
// Engine failures are not described to the client.
func errorStatus(err error) (int, string) {
	var verr *model.ValidationError
	var serr *store.Error

	switch {
	case errors.Is(err, store.ErrNotFound), errors.Is(err, errNoRoute):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, errMethodNotAllowed):
		return http.StatusMethodNotAllowed, err.Error()
	case errors.As(err, &verr):
		return http.StatusBadRequest, verr.Error()
	case errors.As(err, &serr):
		return http.StatusInternalServerError, "internal error"
	default:
		return http.StatusBadRequest, err.Error()
	}
}

// handle adapts fn to http.Handler. Returned errors and panics are written as
// failure envelopes.
func handle(fn handlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if p := recover(); p != nil {
				if p == http.ErrAbortHandler {
					panic(p)
				}
				logger(r.Context()).Error("handler panic", "panic", fmt.Sprint(p), "method", r.Method, "path", r.URL.Path)
				jsonError(w, http.StatusInternalServerError, "internal error")
			}
		}()

		err := fn(w, r)
		if err == nil {
			return
		}

		status, reason := errorStatus(err)
		if status >= http.StatusInternalServerError {
			logger(r.Context()).Error("request failed", "error", err, "method", r.Method, "path", r.URL.Path)
		} else {
			logger(r.Context()).Debug("request rejected", "error", err, "status", status)
		}
		jsonError(w, status, reason)
	})
}

// noRoute answers requests for paths the router doesn't serve.
func noRoute(w http.ResponseWriter, r *http.Request) error {
	return fmt.Errorf("%s: %w", r.URL.Path, errNoRoute)
}

// notAllowed answers requests whose path exists but whose method doesn't.
func notAllowed(methods ...string) handlerFunc {
	allow := strings.Join(methods, ", ")
	return func(w http.ResponseWriter, r *http.Request) error {
		w.Header().Set("Allow", allow)
		return fmt.Errorf("%s %s: %w", r.Method, r.URL.Path, errMethodNotAllowed)
	}
}
