package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MrSnakeDoc/lune/internal/domain"
)

type errorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps the domain error taxonomy onto HTTP statuses. Anything
// outside the taxonomy is a 500.
func writeError(w http.ResponseWriter, err error) {
	var vErr *domain.ValidationError
	if errors.As(err, &vErr) {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: vErr.Error(), Kind: "validation"})
		return
	}

	var cfgErr *domain.ConfigurationError
	if errors.As(err, &cfgErr) {
		writeJSON(w, http.StatusPreconditionFailed, errorResponse{Error: cfgErr.Error(), Kind: "configuration"})
		return
	}

	var colErr *domain.CollaboratorError
	if errors.As(err, &colErr) {
		status := http.StatusBadGateway
		if colErr.Kind == domain.CollaboratorQuotaExceeded {
			status = http.StatusServiceUnavailable
		}
		writeJSON(w, status, errorResponse{Error: colErr.Error(), Kind: string(colErr.Kind)})
		return
	}

	writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
}
