package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/MrSnakeDoc/lune/internal/domain"
	"github.com/MrSnakeDoc/lune/internal/httpserver/deps"
)

type musicPreferencesRequest struct {
	Volume  *int  `json:"volume"`
	IsMuted *bool `json:"isMuted"`
}

type currentVideoRequest struct {
	Video *domain.Video `json:"video"`
}

// GetMusic returns the full player state.
func GetMusic(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, d.Music.Snapshot())
	}
}

// UpdateMusicPreferences sets volume and/or mute. Volume is clamped to
// [0,100] by the store; setting it to 0 also mutes.
func UpdateMusicPreferences(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req musicPreferencesRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, domain.NewValidationError("invalid JSON body"))
			return
		}
		if req.Volume == nil && req.IsMuted == nil {
			writeError(w, domain.NewValidationError("at least one of volume, isMuted is required"))
			return
		}

		if req.Volume != nil {
			d.Music.SetVolume(r.Context(), *req.Volume)
		}
		if req.IsMuted != nil {
			d.Music.SetMuted(r.Context(), *req.IsMuted)
		}

		writeJSON(w, http.StatusOK, d.Music.Snapshot())
	}
}

// SetCurrentVideo replaces the currently playing video (null clears it).
func SetCurrentVideo(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req currentVideoRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, domain.NewValidationError("invalid JSON body"))
			return
		}

		d.Music.SetCurrent(req.Video)
		writeJSON(w, http.StatusOK, d.Music.Snapshot())
	}
}

// PlayNext advances to the next playlist item. A no-op at the end of the
// playlist or without a current video.
func PlayNext(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d.Music.PlayNext()
		writeJSON(w, http.StatusOK, d.Music.Snapshot())
	}
}

// PlayPrevious steps back to the previous playlist item. A no-op at the
// start of the playlist or without a current video.
func PlayPrevious(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d.Music.PlayPrevious()
		writeJSON(w, http.StatusOK, d.Music.Snapshot())
	}
}
