package domain

import (
	"strings"
	"unicode/utf8"
)

const (
	// DefaultEmotionScore is used when the classifier omits the score
	// or returns a zero value.
	DefaultEmotionScore = 50

	// MaxKeywords is the maximum number of keywords kept per entry.
	MaxKeywords = 3

	// DefaultSummary replaces an empty classifier summary.
	DefaultSummary = "No emotion summary available."
)

// DefaultKeywords is the fallback when the classifier response carries no
// keywords field at all.
var DefaultKeywords = []string{"diary", "mood", "reflection"}

// RawAnalysis is the untrusted shape decoded straight from the classifier
// response, before any defaulting or clamping.
type RawAnalysis struct {
	EmotionLabel string   `json:"emotionLabel"`
	EmotionScore float64  `json:"emotionScore"`
	Summary      string   `json:"summary"`
	Keywords     []string `json:"keywords"`
}

// SanitizeAnalysis converts an untrusted classifier response into a typed
// EmotionAnalysis. This is the mandatory boundary between the collaborator
// and the rest of the system; it applies even when the collaborator is a
// stub:
//
//   - empty label defaults to "calm"
//   - missing/zero score defaults to 50, everything else clamps to [0, 100]
//   - empty summary gets a placeholder
//   - a missing keywords field gets a fixed 3-element fallback; a present
//     list is truncated to 3 entries
func SanitizeAnalysis(raw RawAnalysis) EmotionAnalysis {
	label := strings.TrimSpace(raw.EmotionLabel)
	if label == "" {
		label = LabelCalm
	}

	score := int(raw.EmotionScore)
	if score == 0 {
		score = DefaultEmotionScore
	}
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	summary := strings.TrimSpace(raw.Summary)
	if summary == "" {
		summary = DefaultSummary
	}

	keywords := raw.Keywords
	if keywords == nil {
		keywords = append([]string(nil), DefaultKeywords...)
	} else if len(keywords) > MaxKeywords {
		keywords = keywords[:MaxKeywords]
	}

	return EmotionAnalysis{
		EmotionLabel: label,
		EmotionScore: score,
		Summary:      summary,
		Keywords:     keywords,
	}
}

// ValidateEntryText checks the minimum-length precondition applied before
// any analysis or entry creation.
func ValidateEntryText(text string) error {
	if utf8.RuneCountInString(strings.TrimSpace(text)) < MinEntryTextLen {
		return NewValidationError("diary entry must be at least %d characters long", MinEntryTextLen)
	}
	return nil
}
