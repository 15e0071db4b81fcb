package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/MrSnakeDoc/lune/internal/domain"
	"github.com/MrSnakeDoc/lune/internal/httpserver/deps"
)

const minTemplateLen = 10

// settingsResponse never echoes credentials back; it only reports whether
// they are configured.
type settingsResponse struct {
	OpenAIConfigured      bool   `json:"openaiConfigured"`
	YouTubeConfigured     bool   `json:"youtubeConfigured"`
	EmotionPromptTemplate string `json:"emotionPromptTemplate"`
}

func settingsView(s domain.Settings) settingsResponse {
	return settingsResponse{
		OpenAIConfigured:      s.OpenAIAPIKey != "",
		YouTubeConfigured:     s.YouTubeAPIKey != "",
		EmotionPromptTemplate: s.EmotionPromptTemplate,
	}
}

// GetSettings returns the redacted settings view.
func GetSettings(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, settingsView(d.Settings.Current()))
	}
}

// UpdateSettings applies a partial update. Absent fields are left
// unchanged; present fields must be usable values.
func UpdateSettings(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var patch domain.SettingsPatch
		if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
			writeError(w, domain.NewValidationError("invalid JSON body"))
			return
		}

		if err := validatePatch(patch); err != nil {
			writeError(w, err)
			return
		}

		updated := d.Settings.Update(r.Context(), patch)
		writeJSON(w, http.StatusOK, settingsView(updated))
	}
}

// ResetSettings restores the boot-time defaults.
func ResetSettings(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		reset := d.Settings.Reset(r.Context())
		writeJSON(w, http.StatusOK, settingsView(reset))
	}
}

func validatePatch(patch domain.SettingsPatch) error {
	if patch.OpenAIAPIKey != nil && strings.TrimSpace(*patch.OpenAIAPIKey) == "" {
		return domain.NewValidationError("openaiApiKey must not be blank")
	}
	if patch.YouTubeAPIKey != nil && strings.TrimSpace(*patch.YouTubeAPIKey) == "" {
		return domain.NewValidationError("youtubeApiKey must not be blank")
	}
	if patch.EmotionPromptTemplate != nil {
		tpl := *patch.EmotionPromptTemplate
		if utf8.RuneCountInString(strings.TrimSpace(tpl)) < minTemplateLen {
			return domain.NewValidationError("emotionPromptTemplate must be at least %d characters", minTemplateLen)
		}
		if !strings.Contains(tpl, "{text}") {
			return domain.NewValidationError("emotionPromptTemplate must contain the {text} placeholder")
		}
	}
	return nil
}
