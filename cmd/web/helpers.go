package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gymello/gymello/internal/errors"
)

// sessionKeyUsername stores the authenticated username in the session.
const sessionKeyUsername = "authenticatedUsername"

// currentUsername returns the authenticated username, or "" when the
// request has no authenticated session.
func (app *application) currentUsername(r *http.Request) string {
	return app.sessionManager.GetString(r.Context(), sessionKeyUsername)
}

func (app *application) serverError(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.LogAttrs(r.Context(), slog.LevelError, "server error", errors.SlogError(err))
	app.writeJSON(w, r, http.StatusInternalServerError, errorResponse{Error: "something went wrong"})
}

func (app *application) clientError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorResponse{Error: message})
}

type errorResponse struct {
	Error string `json:"error"`
}

const maxRequestBody = 1 << 20

// readJSON decodes the request body into dst, rejecting unknown fields and
// oversized bodies.
func readJSON(r *http.Request, dst any) error {
	decoder := json.NewDecoder(http.MaxBytesReader(nil, r.Body, maxRequestBody))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("decode request body: %w", err)
	}
	return nil
}

func (app *application) writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		app.logger.LogAttrs(r.Context(), slog.LevelError, "encode response", errors.SlogError(err))
	}
}
