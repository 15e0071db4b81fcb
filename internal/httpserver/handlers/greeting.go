package handlers

import (
	"net/http"

	"github.com/MrSnakeDoc/lune/internal/domain"
	"github.com/MrSnakeDoc/lune/internal/httpserver/deps"
)

type greetingResponse struct {
	Greeting     domain.GreetingParts `json:"greeting"`
	Presentation domain.Presentation  `json:"presentation"`
}

// Greeting returns the mood-aware greeting and the presentation derived
// from the current analysis (neutral defaults when none is live).
func Greeting(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		label := d.Analysis.CurrentLabel()
		hour := d.TimeNow().Hour()

		writeJSON(w, http.StatusOK, greetingResponse{
			Greeting:     domain.GreetingWithMood(label, hour),
			Presentation: domain.PresentationFor(label),
		})
	}
}
