package state

import (
	"context"
	"sync"

	"github.com/MrSnakeDoc/lune/internal/domain"
	"github.com/MrSnakeDoc/lune/internal/logger"
)

// SettingsStore owns the user credentials and prompt template. The store
// itself performs no validation; callers validate before Update.
type SettingsStore struct {
	mu       sync.RWMutex
	settings domain.Settings
	defaults domain.Settings
	repo     Repository
	logger   logger.Logger
}

// NewSettingsStore creates a settings store initialized to defaults.
// Defaults carry the optional build-time credentials and the built-in
// prompt template.
func NewSettingsStore(defaults domain.Settings, repo Repository, log logger.Logger) *SettingsStore {
	return &SettingsStore{
		settings: defaults,
		defaults: defaults,
		repo:     repo,
		logger:   log,
	}
}

// Bootstrap replaces the in-memory settings with the persisted snapshot,
// if one exists.
func (s *SettingsStore) Bootstrap(ctx context.Context) error {
	settings, err := s.repo.LoadSettings(ctx)
	if err != nil {
		return err
	}
	if settings == nil {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings = *settings
	return nil
}

// Current returns a copy of the current settings.
func (s *SettingsStore) Current() domain.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.settings
}

// Update shallow-merges patch into the current settings and persists.
func (s *SettingsStore) Update(ctx context.Context, patch domain.SettingsPatch) domain.Settings {
	s.mu.Lock()
	if patch.OpenAIAPIKey != nil {
		s.settings.OpenAIAPIKey = *patch.OpenAIAPIKey
	}
	if patch.YouTubeAPIKey != nil {
		s.settings.YouTubeAPIKey = *patch.YouTubeAPIKey
	}
	if patch.EmotionPromptTemplate != nil {
		s.settings.EmotionPromptTemplate = *patch.EmotionPromptTemplate
	}
	updated := s.settings
	s.mu.Unlock()

	s.persist(ctx, updated)
	return updated
}

// Reset restores the built-in defaults and persists.
func (s *SettingsStore) Reset(ctx context.Context) domain.Settings {
	s.mu.Lock()
	s.settings = s.defaults
	updated := s.settings
	s.mu.Unlock()

	s.persist(ctx, updated)
	return updated
}

// Persist re-saves the current snapshot (snapshot flusher hook).
func (s *SettingsStore) Persist(ctx context.Context) error {
	s.mu.RLock()
	snapshot := s.settings
	s.mu.RUnlock()

	return s.repo.SaveSettings(ctx, snapshot)
}

func (s *SettingsStore) persist(ctx context.Context, snapshot domain.Settings) {
	if err := s.repo.SaveSettings(ctx, snapshot); err != nil {
		s.logger.Warn("failed to persist settings, in-memory state kept",
			logger.Error(err))
	}
}
