package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/MrSnakeDoc/lune/internal/domain"
)

// Store persists the three independent namespaced records (entries,
// settings, music preferences) as JSON values. Records are durable: no
// TTL is applied.
type Store struct {
	client *redis.Client
}

// NewStore creates a new Redis-backed store.
func NewStore(client *redis.Client) *Store {
	return &Store{
		client: client,
	}
}

// SaveEntries stores the full entry collection snapshot.
func (s *Store) SaveEntries(ctx context.Context, entries []domain.DiaryEntry) error {
	return s.saveJSON(ctx, KeyEntries, entries)
}

// LoadEntries retrieves the entry collection snapshot.
// Returns (nil, nil) when no snapshot exists.
func (s *Store) LoadEntries(ctx context.Context) ([]domain.DiaryEntry, error) {
	var entries []domain.DiaryEntry
	ok, err := s.loadJSON(ctx, KeyEntries, &entries)
	if err != nil || !ok {
		return nil, err
	}
	return entries, nil
}

// SaveSettings stores the settings record.
func (s *Store) SaveSettings(ctx context.Context, settings domain.Settings) error {
	return s.saveJSON(ctx, KeySettings, settings)
}

// LoadSettings retrieves the settings record.
// Returns (nil, nil) when no snapshot exists.
func (s *Store) LoadSettings(ctx context.Context) (*domain.Settings, error) {
	var settings domain.Settings
	ok, err := s.loadJSON(ctx, KeySettings, &settings)
	if err != nil || !ok {
		return nil, err
	}
	return &settings, nil
}

// SaveMusicPrefs stores the music preference subset.
func (s *Store) SaveMusicPrefs(ctx context.Context, prefs domain.MusicPreferences) error {
	return s.saveJSON(ctx, KeyMusicPrefs, prefs)
}

// LoadMusicPrefs retrieves the music preference subset.
// Returns (nil, nil) when no snapshot exists.
func (s *Store) LoadMusicPrefs(ctx context.Context) (*domain.MusicPreferences, error) {
	var prefs domain.MusicPreferences
	ok, err := s.loadJSON(ctx, KeyMusicPrefs, &prefs)
	if err != nil || !ok {
		return nil, err
	}
	return &prefs, nil
}

func (s *Store) saveJSON(ctx context.Context, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", key, err)
	}

	if err := s.client.Set(ctx, key, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to save %s: %w", key, err)
	}
	return nil
}

// loadJSON reads key into out. The second return is false when the key
// does not exist.
func (s *Store) loadJSON(ctx context.Context, key string, out interface{}) (bool, error) {
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("failed to get %s: %w", key, err)
	}

	if err := json.Unmarshal(data, out); err != nil {
		return false, fmt.Errorf("failed to unmarshal %s: %w", key, err)
	}
	return true, nil
}
