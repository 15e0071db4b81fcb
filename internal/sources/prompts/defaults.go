package prompts

// DefaultPromptTemplate is the built-in classification prompt. The
// {text} placeholder is substituted with the diary entry at call time.
const DefaultPromptTemplate = `Analyze the following diary entry and identify its emotional content.

Respond strictly in the following JSON format:
{
  "emotionLabel": "one of: happy, joyful, sad, depressed, anxious, angry, calm, tired",
  "emotionScore": a number between 0 and 100,
  "summary": "a one-line summary (50 characters or less)",
  "keywords": ["keyword1", "keyword2", "keyword3"]
}

Diary entry:
{text}`

// defaultSearchPhrases maps each emotion label to its canned music
// search phrases. Only the first phrase of each list is queried.
var defaultSearchPhrases = map[string][]string{
	"happy":     {"music for happy days", "feel good songs", "upbeat playlist", "happy music"},
	"joyful":    {"joyful uplifting music", "bright cheerful songs", "energetic playlist", "cheerful music"},
	"sad":       {"music for sad days", "emotional ballads", "melancholy songs", "sad music"},
	"depressed": {"songs for gloomy days", "comforting ballads", "quiet sad songs", "melancholic music"},
	"anxious":   {"music to ease anxiety", "soothing piano", "calming songs", "calm music"},
	"angry":     {"music for letting off steam", "powerful songs", "high energy tracks", "intense music"},
	"calm":      {"peaceful music", "meditation music", "calm instrumentals", "ambient calm"},
	"tired":     {"relaxing music", "music for falling asleep", "ambient sounds", "relaxing playlist"},
}

// Defaults returns the built-in prompt configuration.
func Defaults() Config {
	phrases := make(map[string][]string, len(defaultSearchPhrases))
	for label, list := range defaultSearchPhrases {
		phrases[label] = append([]string(nil), list...)
	}
	return Config{
		EmotionPromptTemplate: DefaultPromptTemplate,
		SearchPhrases:         phrases,
	}
}
