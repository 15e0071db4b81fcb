package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/lune/internal/httpserver/deps"
	"github.com/MrSnakeDoc/lune/internal/httpserver/handlers"
)

func init() { Register(registerInsights) }

func registerInsights(r chi.Router, d deps.Deps) {
	r.Get("/api/insights", handlers.Insights(d))
	r.Get("/api/greeting", handlers.Greeting(d))
}
