package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/lune/internal/httpserver/deps"
	"github.com/MrSnakeDoc/lune/internal/httpserver/handlers"
)

func init() { Register(registerEntries) }

func registerEntries(r chi.Router, d deps.Deps) {
	r.Get("/api/entries", handlers.ListEntries(d))
	r.Delete("/api/entries/{id}", handlers.DeleteEntry(d))
}
