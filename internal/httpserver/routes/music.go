package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/lune/internal/httpserver/deps"
	"github.com/MrSnakeDoc/lune/internal/httpserver/handlers"
)

func init() { Register(registerMusic) }

func registerMusic(r chi.Router, d deps.Deps) {
	r.Get("/api/music", handlers.GetMusic(d))
	r.Put("/api/music/preferences", handlers.UpdateMusicPreferences(d))
	r.Put("/api/music/current", handlers.SetCurrentVideo(d))
	r.Post("/api/music/next", handlers.PlayNext(d))
	r.Post("/api/music/previous", handlers.PlayPrevious(d))
}
