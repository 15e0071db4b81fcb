package state

import (
	"context"
	"errors"

	"github.com/MrSnakeDoc/lune/internal/domain"
)

// fakeRepository records saves and can be told to fail, mimicking a
// durable store that is down.
type fakeRepository struct {
	entries  []domain.DiaryEntry
	settings *domain.Settings
	prefs    *domain.MusicPreferences

	saveEntryCalls int
	failSaves      bool
	failLoads      bool
}

var errRepoDown = errors.New("durable store unavailable")

func (f *fakeRepository) LoadEntries(_ context.Context) ([]domain.DiaryEntry, error) {
	if f.failLoads {
		return nil, errRepoDown
	}
	return f.entries, nil
}

func (f *fakeRepository) SaveEntries(_ context.Context, entries []domain.DiaryEntry) error {
	f.saveEntryCalls++
	if f.failSaves {
		return errRepoDown
	}
	f.entries = entries
	return nil
}

func (f *fakeRepository) LoadSettings(_ context.Context) (*domain.Settings, error) {
	if f.failLoads {
		return nil, errRepoDown
	}
	return f.settings, nil
}

func (f *fakeRepository) SaveSettings(_ context.Context, settings domain.Settings) error {
	if f.failSaves {
		return errRepoDown
	}
	f.settings = &settings
	return nil
}

func (f *fakeRepository) LoadMusicPrefs(_ context.Context) (*domain.MusicPreferences, error) {
	if f.failLoads {
		return nil, errRepoDown
	}
	return f.prefs, nil
}

func (f *fakeRepository) SaveMusicPrefs(_ context.Context, prefs domain.MusicPreferences) error {
	if f.failSaves {
		return errRepoDown
	}
	f.prefs = &prefs
	return nil
}
