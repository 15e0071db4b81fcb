package state

import (
	"sync"

	"github.com/MrSnakeDoc/lune/internal/domain"
)

// AnalysisState is the transient single slot holding the most recent
// emotion analysis plus the UI loading/error flags. Never persisted;
// cleared implicitly by being overwritten.
type AnalysisState struct {
	mu        sync.RWMutex
	current   *domain.EmotionAnalysis
	loading   bool
	lastError string
}

// NewAnalysisState creates an empty analysis slot.
func NewAnalysisState() *AnalysisState {
	return &AnalysisState{}
}

// SetCurrent publishes an analysis result to the slot.
func (s *AnalysisState) SetCurrent(analysis domain.EmotionAnalysis) {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := analysis
	s.current = &copied
}

// Clear empties the slot. Called when a new analysis begins.
func (s *AnalysisState) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = nil
}

// Current returns the slot content, or nil when no analysis has completed.
func (s *AnalysisState) Current() *domain.EmotionAnalysis {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == nil {
		return nil
	}
	copied := *s.current
	return &copied
}

// CurrentLabel returns the current emotion label, or "" when the slot is
// empty. Consumed by the presentation mapper.
func (s *AnalysisState) CurrentLabel() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == nil {
		return ""
	}
	return s.current.EmotionLabel
}

// SetLoading sets the advisory loading flag. Nothing at the store level
// fences overlapping analyze calls; the flag only informs callers.
func (s *AnalysisState) SetLoading(loading bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.loading = loading
}

// Loading reports the advisory loading flag.
func (s *AnalysisState) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.loading
}

// SetError records the last user-visible error message.
func (s *AnalysisState) SetError(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastError = msg
}

// ClearError clears the last error message.
func (s *AnalysisState) ClearError() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastError = ""
}

// LastError returns the last recorded error message, "" when none.
func (s *AnalysisState) LastError() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.lastError
}
