package state

import (
	"context"
	"sync"

	"github.com/MrSnakeDoc/lune/internal/domain"
	"github.com/MrSnakeDoc/lune/internal/logger"
)

// DefaultVolume is the initial playback volume.
const DefaultVolume = 100

// MusicState owns the music player state. The current video and playlist
// are session-only; only volume and mute persist.
type MusicState struct {
	mu       sync.RWMutex
	current  *domain.Video
	playlist []domain.Video
	volume   int
	muted    bool
	repo     Repository
	logger   logger.Logger
}

// NewMusicState creates a music state with default preferences.
func NewMusicState(repo Repository, log logger.Logger) *MusicState {
	return &MusicState{
		playlist: []domain.Video{},
		volume:   DefaultVolume,
		repo:     repo,
		logger:   log,
	}
}

// Bootstrap restores the persisted volume/mute preferences, if any.
func (s *MusicState) Bootstrap(ctx context.Context) error {
	prefs, err := s.repo.LoadMusicPrefs(ctx)
	if err != nil {
		return err
	}
	if prefs == nil {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.volume = prefs.Volume
	s.muted = prefs.IsMuted
	return nil
}

// SetVolume clamps volume to [0, 100] and persists the preferences.
// Setting the volume to 0 mutes; any other value unmutes.
func (s *MusicState) SetVolume(ctx context.Context, volume int) {
	if volume < 0 {
		volume = 0
	}
	if volume > 100 {
		volume = 100
	}

	s.mu.Lock()
	s.volume = volume
	s.muted = volume == 0
	prefs := domain.MusicPreferences{Volume: s.volume, IsMuted: s.muted}
	s.mu.Unlock()

	s.persist(ctx, prefs)
}

// SetMuted toggles mute explicitly and persists the preferences.
func (s *MusicState) SetMuted(ctx context.Context, muted bool) {
	s.mu.Lock()
	s.muted = muted
	prefs := domain.MusicPreferences{Volume: s.volume, IsMuted: s.muted}
	s.mu.Unlock()

	s.persist(ctx, prefs)
}

// SetPlaylist replaces the session playlist.
func (s *MusicState) SetPlaylist(videos []domain.Video) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.playlist = make([]domain.Video, len(videos))
	copy(s.playlist, videos)
}

// SetCurrent replaces the current video (nil to stop).
func (s *MusicState) SetCurrent(video *domain.Video) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if video == nil {
		s.current = nil
		return
	}
	copied := *video
	s.current = &copied
}

// PlayNext advances to the next playlist item. No-op without a current
// video, an empty playlist, or at the end of the playlist.
func (s *MusicState) PlayNext() {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.currentIndexLocked()
	if idx < 0 || idx >= len(s.playlist)-1 {
		return
	}
	next := s.playlist[idx+1]
	s.current = &next
}

// PlayPrevious steps back to the previous playlist item. No-op without a
// current video, an empty playlist, or at the start of the playlist.
func (s *MusicState) PlayPrevious() {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.currentIndexLocked()
	if idx <= 0 {
		return
	}
	prev := s.playlist[idx-1]
	s.current = &prev
}

// Snapshot is the full music state exposed over the API.
type MusicSnapshot struct {
	CurrentVideo *domain.Video  `json:"currentVideo"`
	Playlist     []domain.Video `json:"playlist"`
	Volume       int            `json:"volume"`
	IsMuted      bool           `json:"isMuted"`
}

// Snapshot returns a copy of the full music state.
func (s *MusicState) Snapshot() MusicSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := MusicSnapshot{
		Playlist: make([]domain.Video, len(s.playlist)),
		Volume:   s.volume,
		IsMuted:  s.muted,
	}
	copy(snap.Playlist, s.playlist)
	if s.current != nil {
		copied := *s.current
		snap.CurrentVideo = &copied
	}
	return snap
}

// Persist re-saves the preference subset (snapshot flusher hook).
func (s *MusicState) Persist(ctx context.Context) error {
	s.mu.RLock()
	prefs := domain.MusicPreferences{Volume: s.volume, IsMuted: s.muted}
	s.mu.RUnlock()

	return s.repo.SaveMusicPrefs(ctx, prefs)
}

func (s *MusicState) currentIndexLocked() int {
	if s.current == nil || len(s.playlist) == 0 {
		return -1
	}
	for i, v := range s.playlist {
		if v.ID == s.current.ID {
			return i
		}
	}
	return -1
}

func (s *MusicState) persist(ctx context.Context, prefs domain.MusicPreferences) {
	if err := s.repo.SaveMusicPrefs(ctx, prefs); err != nil {
		s.logger.Warn("failed to persist music preferences, in-memory state kept",
			logger.Error(err))
	}
}
