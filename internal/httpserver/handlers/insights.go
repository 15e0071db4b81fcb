package handlers

import (
	"net/http"

	"github.com/MrSnakeDoc/lune/internal/domain"
	"github.com/MrSnakeDoc/lune/internal/httpserver/deps"
)

// Insights aggregates the entry collection over ?range=7days|30days|all
// (default all).
func Insights(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dateRange := domain.DateRange(r.URL.Query().Get("range"))
		if dateRange == "" {
			dateRange = domain.RangeAll
		}
		if !domain.ValidDateRange(dateRange) {
			writeError(w, domain.NewValidationError("unknown range %q", dateRange))
			return
		}

		insights := domain.Aggregate(d.Entries.All(), dateRange, d.TimeNow())
		writeJSON(w, http.StatusOK, insights)
	}
}
