package domain

// DateLayout is the calendar-date form used by DiaryEntry.Date.
// Zero-padded, so lexicographic order equals chronological order.
const DateLayout = "2006-01-02"

// MinEntryTextLen is the minimum trimmed length accepted for a diary entry.
const MinEntryTextLen = 10

// Canonical emotion labels produced by the classifier.
const (
	LabelHappy     = "happy"
	LabelJoyful    = "joyful"
	LabelSad       = "sad"
	LabelDepressed = "depressed"
	LabelAnxious   = "anxious"
	LabelAngry     = "angry"
	LabelCalm      = "calm"
	LabelTired     = "tired"
)

// Labels lists the closed vocabulary of emotion labels.
var Labels = []string{
	LabelHappy,
	LabelJoyful,
	LabelSad,
	LabelDepressed,
	LabelAnxious,
	LabelAngry,
	LabelCalm,
	LabelTired,
}

// IsCanonicalLabel reports whether label belongs to the closed vocabulary.
func IsCanonicalLabel(label string) bool {
	for _, l := range Labels {
		if l == label {
			return true
		}
	}
	return false
}

// DiaryEntry represents one saved journal record.
//
// ID and CreatedAt are immutable after creation. There is no update
// operation on entries, only create and delete.
type DiaryEntry struct {
	// ID is an opaque unique identifier assigned at creation time.
	ID string `json:"id"`

	// Date is the calendar date the entry logically belongs to,
	// in the user's local time zone (DateLayout form).
	Date string `json:"date"`

	// Text is the raw user-authored content.
	Text string `json:"text"`

	// EmotionLabel is one of the canonical labels.
	EmotionLabel string `json:"emotionLabel"`

	// EmotionScore is constrained to [0, 100].
	EmotionScore int `json:"emotionScore"`

	// Summary is a short synopsis, ~50 characters by convention.
	Summary string `json:"summary"`

	// Keywords holds up to 3 short strings, in classifier order.
	Keywords []string `json:"keywords"`

	// CreatedAt is the creation timestamp, RFC3339.
	CreatedAt string `json:"createdAt"`
}

// EmotionAnalysis is the sanitized classification result for one entry.
type EmotionAnalysis struct {
	EmotionLabel string   `json:"emotionLabel"`
	EmotionScore int      `json:"emotionScore"`
	Summary      string   `json:"summary"`
	Keywords     []string `json:"keywords"`
}

// Video is one music recommendation returned by the music-search collaborator.
type Video struct {
	ID           string `json:"id"`
	VideoID      string `json:"videoId"`
	Title        string `json:"title"`
	Thumbnail    string `json:"thumbnail"`
	ChannelTitle string `json:"channelTitle"`
}

// Settings holds user-supplied credentials and the editable prompt template.
type Settings struct {
	OpenAIAPIKey          string `json:"openaiApiKey"`
	YouTubeAPIKey         string `json:"youtubeApiKey"`
	EmotionPromptTemplate string `json:"emotionPromptTemplate"`
}

// SettingsPatch is a partial settings update. Nil fields are left unchanged.
type SettingsPatch struct {
	OpenAIAPIKey          *string `json:"openaiApiKey"`
	YouTubeAPIKey         *string `json:"youtubeApiKey"`
	EmotionPromptTemplate *string `json:"emotionPromptTemplate"`
}

// MusicPreferences is the persisted subset of the music state.
type MusicPreferences struct {
	Volume  int  `json:"volume"`
	IsMuted bool `json:"isMuted"`
}
