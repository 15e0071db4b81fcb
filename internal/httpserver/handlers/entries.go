package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/lune/internal/domain"
	"github.com/MrSnakeDoc/lune/internal/httpserver/deps"
)

// Bounds used when the caller omits from/to. Entry dates are YYYY-MM-DD
// so lexicographic comparison matches chronological comparison.
const (
	minEntryDate = "0000-01-01"
	maxEntryDate = "9999-12-31"
)

type entriesResponse struct {
	Entries []domain.DiaryEntry `json:"entries"`
	Count   int                 `json:"count"`
}

// ListEntries returns entries in insertion order, optionally bounded by
// ?start=YYYY-MM-DD&end=YYYY-MM-DD (inclusive).
func ListEntries(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := r.URL.Query().Get("start")
		if start == "" {
			start = minEntryDate
		}
		end := r.URL.Query().Get("end")
		if end == "" {
			end = maxEntryDate
		}

		entries := d.Entries.ByDateRange(start, end)
		writeJSON(w, http.StatusOK, entriesResponse{Entries: entries, Count: len(entries)})
	}
}

// DeleteEntry removes the entry with the given id. Removing an unknown id
// is a no-op, so the response is 204 either way.
func DeleteEntry(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if id == "" {
			writeError(w, domain.NewValidationError("entry id is required"))
			return
		}

		d.Entries.Remove(r.Context(), id)
		w.WriteHeader(http.StatusNoContent)
	}
}
