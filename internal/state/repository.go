package state

import (
	"context"

	"github.com/MrSnakeDoc/lune/internal/domain"
)

// Repository is the durable backing for the in-memory stores. Each store
// saves its full snapshot synchronously after every mutation; a save
// failure is logged and swallowed, and the in-memory state remains the
// source of truth for the rest of the session.
//
// Load methods return (nil, nil) when no snapshot exists yet.
type Repository interface {
	LoadEntries(ctx context.Context) ([]domain.DiaryEntry, error)
	SaveEntries(ctx context.Context, entries []domain.DiaryEntry) error

	LoadSettings(ctx context.Context) (*domain.Settings, error)
	SaveSettings(ctx context.Context, settings domain.Settings) error

	LoadMusicPrefs(ctx context.Context) (*domain.MusicPreferences, error)
	SaveMusicPrefs(ctx context.Context, prefs domain.MusicPreferences) error
}
