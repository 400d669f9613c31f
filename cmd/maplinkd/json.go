package main

import (
	"encoding/json"
	"net/http"
)

// This file contains the JSON response helpers shared by all maplinkd
// handlers. Every response body the service emits goes through
// respondWithJSON so the content type and error shape stay uniform.

// errorResponse is the body of every non-2xx response.
type errorResponse struct {
	Error string `json:"error"`
}

// respondWithError logs the underlying error (when there is one) and sends
// the client-facing message as a JSON error body with the given status code.
func (cfg *apiConfig) respondWithError(w http.ResponseWriter, code int, msg string, err error) {
	if err != nil {
		cfg.logger.Error(msg, "status", code, "error", err)
	}
	cfg.respondWithJSON(w, code, errorResponse{Error: msg})
}

// respondWithJSON marshals the payload and writes it with the given status
// code. A payload that fails to marshal turns into an empty 500; the client
// message is not worth inventing at that point.
func (cfg *apiConfig) respondWithJSON(w http.ResponseWriter, code int, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		cfg.logger.Error("marshalling response payload", "status", code, "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err := w.Write(data); err != nil {
		cfg.logger.Error("writing response body", "error", err)
	}
}
