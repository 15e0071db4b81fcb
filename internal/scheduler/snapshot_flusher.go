package scheduler

import (
	"context"
	"time"

	"github.com/MrSnakeDoc/lune/internal/logger"
	"github.com/MrSnakeDoc/lune/internal/state"
)

// SnapshotFlusher periodically re-saves the in-memory snapshots to the
// durable store. Per-mutation writes are best-effort and never retried,
// so a flush lets durable state re-converge after a swallowed failure.
type SnapshotFlusher struct {
	entries       *state.EntryStore
	settings      *state.SettingsStore
	music         *state.MusicState
	logger        logger.Logger
	interval      time.Duration
	stopCh        chan struct{}
	manualTrigger chan struct{}
}

// NewSnapshotFlusher creates a new snapshot flusher.
func NewSnapshotFlusher(
	entries *state.EntryStore,
	settings *state.SettingsStore,
	music *state.MusicState,
	log logger.Logger,
	interval time.Duration,
	manualTrigger chan struct{},
) *SnapshotFlusher {
	return &SnapshotFlusher{
		entries:       entries,
		settings:      settings,
		music:         music,
		logger:        log,
		interval:      interval,
		stopCh:        make(chan struct{}),
		manualTrigger: manualTrigger,
	}
}

// Start begins the periodic flush loop.
func (sf *SnapshotFlusher) Start(ctx context.Context) {
	ticker := time.NewTicker(sf.interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				sf.Flush(ctx)
			case <-sf.manualTrigger:
				sf.logger.Info("manual snapshot flush triggered")
				sf.Flush(ctx)
			case <-sf.stopCh:
				return
			case <-ctx.Done():
				return
			}
		}
	}()
}

// Stop stops the flusher.
func (sf *SnapshotFlusher) Stop() {
	close(sf.stopCh)
}

// Flush re-saves all three snapshots. Failures are logged; the next tick
// tries again.
func (sf *SnapshotFlusher) Flush(ctx context.Context) {
	if err := sf.entries.Persist(ctx); err != nil {
		sf.logger.Warn("snapshot flush failed for entries", logger.Error(err))
	}
	if err := sf.settings.Persist(ctx); err != nil {
		sf.logger.Warn("snapshot flush failed for settings", logger.Error(err))
	}
	if err := sf.music.Persist(ctx); err != nil {
		sf.logger.Warn("snapshot flush failed for music preferences", logger.Error(err))
	}
	sf.logger.Debug("snapshots flushed")
}
