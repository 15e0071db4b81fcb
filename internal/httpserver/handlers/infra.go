package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/MrSnakeDoc/lune/internal/httpserver/deps"
)

type componentStatus struct {
	OK            bool   `json:"ok"`
	EntriesLoaded *int   `json:"entries_loaded,omitempty"`
	Mode          string `json:"mode,omitempty"`
	Impact        string `json:"impact,omitempty"`
	Error         string `json:"error,omitempty"`
}

type infraResponse struct {
	ServiceMode string                     `json:"service_mode"`
	Components  map[string]componentStatus `json:"components"`
}

func Infra(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		entryCount := d.Entries.Len()
		settings := d.Settings.Current()

		components := map[string]componentStatus{
			"entries": {
				OK:            true,
				EntriesLoaded: &entryCount,
			},
			"redis": checkRedis(d),
			"collaborators": {
				OK:   settings.OpenAIAPIKey != "",
				Mode: collaboratorMode(settings.OpenAIAPIKey != "", settings.YouTubeAPIKey != ""),
			},
		}

		response := infraResponse{
			ServiceMode: determineServiceMode(components),
			Components:  components,
		}

		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(response)
	}
}

func collaboratorMode(openai, youtube bool) string {
	switch {
	case openai && youtube:
		return "analysis+music"
	case openai:
		return "analysis-only"
	default:
		return "unconfigured"
	}
}

func determineServiceMode(components map[string]componentStatus) string {
	// No classification credential = analyze is unavailable.
	if collab, exists := components["collaborators"]; exists && !collab.OK {
		return "read-only"
	}

	// Redis down = in-memory only, snapshots are lost on restart.
	if redis, exists := components["redis"]; exists && !redis.OK {
		return "degraded"
	}

	return "full"
}

func checkRedis(d deps.Deps) componentStatus {
	if d.RedisClient == nil {
		return componentStatus{
			OK:     false,
			Mode:   "degraded",
			Impact: "persistence-disabled",
			Error:  "client not initialized",
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	err := d.RedisClient.Ping(ctx).Err()
	if err != nil {
		return componentStatus{
			OK:     false,
			Mode:   "degraded",
			Impact: "persistence-disabled",
			Error:  "timeout",
		}
	}

	return componentStatus{
		OK:     true,
		Mode:   "optimal",
		Impact: "persistence-enabled",
		Error:  "none",
	}
}
