package scheduler

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/MrSnakeDoc/lune/internal/domain"
	"github.com/MrSnakeDoc/lune/internal/logger"
	"github.com/MrSnakeDoc/lune/internal/state"
)

// countingRepository counts saves per record so tests can observe flushes.
type countingRepository struct {
	mu         sync.Mutex
	entrySaves int
	settgSaves int
	prefsSaves int
}

func (c *countingRepository) LoadEntries(context.Context) ([]domain.DiaryEntry, error) {
	return nil, nil
}

func (c *countingRepository) SaveEntries(context.Context, []domain.DiaryEntry) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entrySaves++
	return nil
}

func (c *countingRepository) LoadSettings(context.Context) (*domain.Settings, error) {
	return nil, nil
}

func (c *countingRepository) SaveSettings(context.Context, domain.Settings) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.settgSaves++
	return nil
}

func (c *countingRepository) LoadMusicPrefs(context.Context) (*domain.MusicPreferences, error) {
	return nil, nil
}

func (c *countingRepository) SaveMusicPrefs(context.Context, domain.MusicPreferences) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.prefsSaves++
	return nil
}

func (c *countingRepository) counts() (int, int, int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.entrySaves, c.settgSaves, c.prefsSaves
}

func newFlusherFixture(interval time.Duration, trigger chan struct{}) (*SnapshotFlusher, *countingRepository) {
	repo := &countingRepository{}
	log := logger.NewNop()
	entries := state.NewEntryStore(repo, log)
	settings := state.NewSettingsStore(domain.Settings{}, repo, log)
	music := state.NewMusicState(repo, log)
	return NewSnapshotFlusher(entries, settings, music, log, interval, trigger), repo
}

func TestFlushSavesAllThreeRecords(t *testing.T) {
	flusher, repo := newFlusherFixture(time.Hour, nil)

	flusher.Flush(context.Background())

	entries, settings, prefs := repo.counts()
	if entries != 1 || settings != 1 || prefs != 1 {
		t.Errorf("saves = (%d, %d, %d), want one each", entries, settings, prefs)
	}
}

func TestManualTriggerFlushes(t *testing.T) {
	trigger := make(chan struct{}, 1)
	flusher, repo := newFlusherFixture(time.Hour, trigger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	flusher.Start(ctx)
	defer flusher.Stop()

	trigger <- struct{}{}

	deadline := time.After(2 * time.Second)
	for {
		entries, settings, prefs := repo.counts()
		if entries >= 1 && settings >= 1 && prefs >= 1 {
			return
		}
		select {
		case <-deadline:
			t.Fatalf("flush not observed, saves = (%d, %d, %d)", entries, settings, prefs)
		case <-time.After(10 * time.Millisecond):
		}
	}
}

func TestStopEndsLoop(t *testing.T) {
	trigger := make(chan struct{}, 1)
	flusher, _ := newFlusherFixture(time.Millisecond, trigger)

	flusher.Start(context.Background())
	flusher.Stop()

	// The loop must drain without panicking after Stop.
	time.Sleep(20 * time.Millisecond)
}
