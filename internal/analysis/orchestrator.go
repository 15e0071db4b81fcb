package analysis

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/MrSnakeDoc/lune/internal/domain"
	"github.com/MrSnakeDoc/lune/internal/logger"
	"github.com/MrSnakeDoc/lune/internal/state"
)

// Classifier is the external emotion classification collaborator.
type Classifier interface {
	Analyze(ctx context.Context, entryText, promptTemplate, apiKey string) (domain.RawAnalysis, error)
}

// MusicSearcher is the external music-search collaborator.
type MusicSearcher interface {
	Search(ctx context.Context, emotionLabel, apiKey string) ([]domain.Video, error)
}

// Orchestrator runs the analyze flow: validate input, classify, persist
// the diary entry, and optionally fetch music recommendations.
type Orchestrator struct {
	classifier Classifier
	music      MusicSearcher
	entries    *state.EntryStore
	settings   *state.SettingsStore
	analysis   *state.AnalysisState
	player     *state.MusicState
	logger     logger.Logger

	// Injection points for tests.
	now   func() time.Time
	newID func() string
}

// New creates an orchestrator wired to the given collaborators and stores.
func New(
	classifier Classifier,
	music MusicSearcher,
	entries *state.EntryStore,
	settings *state.SettingsStore,
	analysisState *state.AnalysisState,
	player *state.MusicState,
	log logger.Logger,
) *Orchestrator {
	return &Orchestrator{
		classifier: classifier,
		music:      music,
		entries:    entries,
		settings:   settings,
		analysis:   analysisState,
		player:     player,
		logger:     log,
		now:        time.Now,
		newID:      uuid.NewString,
	}
}

// Result is the outcome of a successful analyze call.
type Result struct {
	Analysis domain.EmotionAnalysis `json:"analysis"`
	Entry    domain.DiaryEntry      `json:"entry"`
	Videos   []domain.Video         `json:"videos"`
}

// Analyze validates entryText, classifies it, commits a new diary entry,
// and fetches music recommendations when a music credential is present.
//
// Precondition failures (text too short, missing classifier credential)
// abort without side effects. A classifier failure leaves the entry store
// untouched. A music-search failure after the entry is committed is
// logged and swallowed; the entry is never rolled back. The loading flag
// is cleared on every path.
func (o *Orchestrator) Analyze(ctx context.Context, entryText, today string) (*Result, error) {
	if err := domain.ValidateEntryText(entryText); err != nil {
		o.analysis.SetError(err.Error())
		return nil, err
	}

	settings := o.settings.Current()
	if settings.OpenAIAPIKey == "" {
		err := domain.NewConfigurationError("OpenAI API key is not configured, set it in settings")
		o.analysis.SetError(err.Error())
		return nil, err
	}

	o.analysis.ClearError()
	o.analysis.Clear()
	o.analysis.SetLoading(true)
	defer o.analysis.SetLoading(false)

	raw, err := o.classifier.Analyze(ctx, entryText, settings.EmotionPromptTemplate, settings.OpenAIAPIKey)
	if err != nil {
		o.logger.Error("emotion classification failed", logger.Error(err))
		o.analysis.SetError(err.Error())
		return nil, err
	}

	// Mandatory sanitize boundary, applied to stub collaborators too.
	analysis := domain.SanitizeAnalysis(raw)
	o.analysis.SetCurrent(analysis)

	entry := domain.DiaryEntry{
		ID:           o.newID(),
		Date:         today,
		Text:         entryText,
		EmotionLabel: analysis.EmotionLabel,
		EmotionScore: analysis.EmotionScore,
		Summary:      analysis.Summary,
		Keywords:     analysis.Keywords,
		CreatedAt:    o.now().Format(time.RFC3339),
	}
	o.entries.Add(ctx, entry)

	o.logger.Info("diary entry analyzed and saved",
		logger.String("entry_id", entry.ID),
		logger.String("emotion", analysis.EmotionLabel),
		logger.Int("score", analysis.EmotionScore))

	result := &Result{
		Analysis: analysis,
		Entry:    entry,
	}

	// Music is a non-critical enhancement to an already committed entry.
	if settings.YouTubeAPIKey != "" {
		videos, err := o.music.Search(ctx, analysis.EmotionLabel, settings.YouTubeAPIKey)
		if err != nil {
			o.logger.Warn("music recommendation failed, continuing without it",
				logger.String("emotion", analysis.EmotionLabel),
				logger.Error(err))
		} else {
			o.player.SetPlaylist(videos)
			result.Videos = videos
		}
	}

	return result, nil
}
