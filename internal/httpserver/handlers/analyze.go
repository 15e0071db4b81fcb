package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/MrSnakeDoc/lune/internal/domain"
	"github.com/MrSnakeDoc/lune/internal/httpserver/deps"
	"github.com/MrSnakeDoc/lune/internal/logger"
)

type analyzeRequest struct {
	Text string `json:"text"`
	Date string `json:"date,omitempty"` // defaults to today (YYYY-MM-DD)
}

// Analyze runs the full analysis flow: validate, classify, commit the
// entry, then best-effort music search.
func Analyze(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req analyzeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, domain.NewValidationError("invalid JSON body"))
			return
		}

		date := strings.TrimSpace(req.Date)
		if date == "" {
			date = d.TimeNow().Format(domain.DateLayout)
		}

		result, err := d.Orchestrator.Analyze(r.Context(), req.Text, date)
		if err != nil {
			d.Logger.Warn("analyze failed", logger.Error(err))
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, result)
	}
}
