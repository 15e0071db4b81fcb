package routes

import (
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/lune/internal/httpserver/deps"
	"github.com/MrSnakeDoc/lune/internal/httpserver/handlers"
	"github.com/MrSnakeDoc/lune/internal/httpserver/mw"
)

func init() { Register(registerAnalyze) }

// Analyze fans out to paid collaborators, so it gets a tight per-IP
// budget.
func registerAnalyze(r chi.Router, d deps.Deps) {
	limit := mw.RateLimit(mw.RateLimitConfig{
		Burst:             3,
		RefillPerIPPerMin: 6,
		MaxEntries:        10_000,
		SweepInterval:     time.Minute,
		IdleTTL:           15 * time.Minute,
		TrustProxy:        d.TrustProxy,
	})

	r.With(limit).Post("/api/analyze", handlers.Analyze(d))
}
