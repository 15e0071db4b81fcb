package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/lune/internal/analysis"
	"github.com/MrSnakeDoc/lune/internal/domain"
	"github.com/MrSnakeDoc/lune/internal/httpserver/deps"
	"github.com/MrSnakeDoc/lune/internal/logger"
	"github.com/MrSnakeDoc/lune/internal/state"
)

type nopRepository struct{}

func (nopRepository) LoadEntries(context.Context) ([]domain.DiaryEntry, error) { return nil, nil }
func (nopRepository) SaveEntries(context.Context, []domain.DiaryEntry) error   { return nil }
func (nopRepository) LoadSettings(context.Context) (*domain.Settings, error)   { return nil, nil }
func (nopRepository) SaveSettings(context.Context, domain.Settings) error      { return nil }
func (nopRepository) LoadMusicPrefs(context.Context) (*domain.MusicPreferences, error) {
	return nil, nil
}
func (nopRepository) SaveMusicPrefs(context.Context, domain.MusicPreferences) error { return nil }

type stubClassifier struct {
	raw domain.RawAnalysis
	err error
}

func (s *stubClassifier) Analyze(_ context.Context, _, _, _ string) (domain.RawAnalysis, error) {
	return s.raw, s.err
}

type stubMusic struct {
	videos []domain.Video
	err    error
}

func (s *stubMusic) Search(_ context.Context, _, _ string) ([]domain.Video, error) {
	return s.videos, s.err
}

func newDeps(t *testing.T, settings domain.Settings, classifier analysis.Classifier, music analysis.MusicSearcher) deps.Deps {
	t.Helper()

	log := logger.NewNop()
	repo := nopRepository{}

	entries := state.NewEntryStore(repo, log)
	settingsStore := state.NewSettingsStore(settings, repo, log)
	analysisState := state.NewAnalysisState()
	player := state.NewMusicState(repo, log)

	if classifier == nil {
		classifier = &stubClassifier{raw: domain.RawAnalysis{EmotionLabel: domain.LabelCalm, EmotionScore: 60}}
	}
	if music == nil {
		music = &stubMusic{}
	}

	return deps.Deps{
		Logger:       log,
		StartTime:    time.Now(),
		TimeNow:      func() time.Time { return time.Date(2024, 5, 10, 14, 0, 0, 0, time.UTC) },
		Entries:      entries,
		Settings:     settingsStore,
		Analysis:     analysisState,
		Music:        player,
		Orchestrator: analysis.New(classifier, music, entries, settingsStore, analysisState, player, log),
	}
}

func doJSON(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.NewDecoder(rec.Body).Decode(&v); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return v
}

func TestAnalyzeCommitsEntry(t *testing.T) {
	classifier := &stubClassifier{raw: domain.RawAnalysis{
		EmotionLabel: domain.LabelHappy,
		EmotionScore: 82,
		Summary:      "a bright day",
		Keywords:     []string{"sun", "walk"},
	}}
	d := newDeps(t, domain.Settings{OpenAIAPIKey: "sk-test"}, classifier, nil)

	rec := doJSON(t, Analyze(d), http.MethodPost, "/api/analyze",
		`{"text":"today was bright and I took a long walk"}`)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d (body: %s)", rec.Code, http.StatusCreated, rec.Body.String())
	}

	result := decodeBody[analysis.Result](t, rec)
	if result.Entry.EmotionLabel != domain.LabelHappy {
		t.Errorf("entry label = %q, want %q", result.Entry.EmotionLabel, domain.LabelHappy)
	}
	if result.Entry.Date != "2024-05-10" {
		t.Errorf("entry date = %q, want default of request day", result.Entry.Date)
	}
	if d.Entries.Len() != 1 {
		t.Errorf("store has %d entries, want 1", d.Entries.Len())
	}
}

func TestAnalyzeValidationAndConfiguration(t *testing.T) {
	tests := []struct {
		name       string
		settings   domain.Settings
		body       string
		wantStatus int
	}{
		{
			name:       "short text is a 400",
			settings:   domain.Settings{OpenAIAPIKey: "sk-test"},
			body:       `{"text":"short"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "malformed body is a 400",
			settings:   domain.Settings{OpenAIAPIKey: "sk-test"},
			body:       `{"text":`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "missing credential is a 412",
			settings:   domain.Settings{},
			body:       `{"text":"long enough to pass validation"}`,
			wantStatus: http.StatusPreconditionFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newDeps(t, tt.settings, nil, nil)
			rec := doJSON(t, Analyze(d), http.MethodPost, "/api/analyze", tt.body)
			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if d.Entries.Len() != 0 {
				t.Errorf("store has %d entries, want 0", d.Entries.Len())
			}
		})
	}
}

func TestAnalyzeCollaboratorFailureStatus(t *testing.T) {
	tests := []struct {
		name       string
		kind       domain.CollaboratorKind
		wantStatus int
	}{
		{"invalid credential is a 502", domain.CollaboratorInvalidCredential, http.StatusBadGateway},
		{"quota exhaustion is a 503", domain.CollaboratorQuotaExceeded, http.StatusServiceUnavailable},
		{"generic failure is a 502", domain.CollaboratorGeneric, http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			classifier := &stubClassifier{err: &domain.CollaboratorError{
				Service: "openai", Kind: tt.kind, Msg: "upstream said no",
			}}
			d := newDeps(t, domain.Settings{OpenAIAPIKey: "sk-test"}, classifier, nil)

			rec := doJSON(t, Analyze(d), http.MethodPost, "/api/analyze",
				`{"text":"long enough to pass validation"}`)
			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
		})
	}
}

func TestListEntriesBounds(t *testing.T) {
	d := newDeps(t, domain.Settings{}, nil, nil)
	ctx := context.Background()
	d.Entries.Add(ctx, domain.DiaryEntry{ID: "a", Date: "2024-05-01"})
	d.Entries.Add(ctx, domain.DiaryEntry{ID: "b", Date: "2024-05-08"})
	d.Entries.Add(ctx, domain.DiaryEntry{ID: "c", Date: "2024-05-15"})

	tests := []struct {
		name   string
		target string
		want   int
	}{
		{"no bounds returns everything", "/api/entries", 3},
		{"start bound", "/api/entries?start=2024-05-05", 2},
		{"end bound", "/api/entries?end=2024-05-08", 2},
		{"both bounds inclusive", "/api/entries?start=2024-05-08&end=2024-05-08", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doJSON(t, ListEntries(d), http.MethodGet, tt.target, "")
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, want 200", rec.Code)
			}
			got := decodeBody[entriesResponse](t, rec)
			if got.Count != tt.want {
				t.Errorf("count = %d, want %d", got.Count, tt.want)
			}
		})
	}
}

func TestDeleteEntry(t *testing.T) {
	d := newDeps(t, domain.Settings{}, nil, nil)
	ctx := context.Background()
	d.Entries.Add(ctx, domain.DiaryEntry{ID: "keep", Date: "2024-05-01"})
	d.Entries.Add(ctx, domain.DiaryEntry{ID: "drop", Date: "2024-05-02"})

	r := chi.NewRouter()
	r.Delete("/api/entries/{id}", DeleteEntry(d))

	rec := doJSON(t, r, http.MethodDelete, "/api/entries/drop", "")
	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", rec.Code)
	}
	if d.Entries.Len() != 1 {
		t.Errorf("store has %d entries, want 1", d.Entries.Len())
	}

	// Unknown id is a no-op, still 204.
	rec = doJSON(t, r, http.MethodDelete, "/api/entries/ghost", "")
	if rec.Code != http.StatusNoContent {
		t.Errorf("status = %d, want 204 for unknown id", rec.Code)
	}
	if d.Entries.Len() != 1 {
		t.Errorf("store has %d entries after no-op delete, want 1", d.Entries.Len())
	}
}

func TestInsightsRangeValidation(t *testing.T) {
	d := newDeps(t, domain.Settings{}, nil, nil)
	d.Entries.Add(context.Background(), domain.DiaryEntry{
		ID: "a", Date: "2024-05-09", EmotionLabel: domain.LabelCalm, EmotionScore: 70,
		Keywords: []string{"rest"},
	})

	tests := []struct {
		name       string
		target     string
		wantStatus int
	}{
		{"default range is all", "/api/insights", http.StatusOK},
		{"7days", "/api/insights?range=7days", http.StatusOK},
		{"30days", "/api/insights?range=30days", http.StatusOK},
		{"unknown range rejected", "/api/insights?range=90days", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doJSON(t, Insights(d), http.MethodGet, tt.target, "")
			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
		})
	}

	rec := doJSON(t, Insights(d), http.MethodGet, "/api/insights?range=7days", "")
	got := decodeBody[domain.Insights](t, rec)
	if len(got.EmotionDistribution) != 1 || got.EmotionDistribution[0].Name != domain.LabelCalm {
		t.Errorf("distribution = %+v, want single calm bucket", got.EmotionDistribution)
	}
}

func TestGreetingUsesCurrentAnalysis(t *testing.T) {
	d := newDeps(t, domain.Settings{}, nil, nil)

	// No live analysis: neutral mood, afternoon phrase at 14:00.
	rec := doJSON(t, Greeting(d), http.MethodGet, "/api/greeting", "")
	got := decodeBody[greetingResponse](t, rec)
	if got.Greeting.Mood != domain.NeutralMood {
		t.Errorf("mood = %q, want %q", got.Greeting.Mood, domain.NeutralMood)
	}
	if got.Presentation.Animation != domain.AnimationNone {
		t.Errorf("animation = %q, want %q", got.Presentation.Animation, domain.AnimationNone)
	}

	d.Analysis.SetCurrent(domain.EmotionAnalysis{EmotionLabel: domain.LabelHappy, EmotionScore: 90})
	rec = doJSON(t, Greeting(d), http.MethodGet, "/api/greeting", "")
	got = decodeBody[greetingResponse](t, rec)
	if got.Greeting.Mood != "happy" {
		t.Errorf("mood = %q, want happy", got.Greeting.Mood)
	}
	if got.Presentation.Animation != domain.AnimationPetals {
		t.Errorf("animation = %q, want %q", got.Presentation.Animation, domain.AnimationPetals)
	}
}

func TestSettingsRedactionAndUpdate(t *testing.T) {
	d := newDeps(t, domain.Settings{
		OpenAIAPIKey:          "sk-secret",
		EmotionPromptTemplate: "analyze this diary: {text}",
	}, nil, nil)

	rec := doJSON(t, GetSettings(d), http.MethodGet, "/api/settings", "")
	if strings.Contains(rec.Body.String(), "sk-secret") {
		t.Fatal("settings response leaks the credential")
	}
	view := decodeBody[settingsResponse](t, rec)
	if !view.OpenAIConfigured || view.YouTubeConfigured {
		t.Errorf("configured flags = (%v, %v), want (true, false)", view.OpenAIConfigured, view.YouTubeConfigured)
	}

	rec = doJSON(t, UpdateSettings(d), http.MethodPut, "/api/settings", `{"youtubeApiKey":"yt-key"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	view = decodeBody[settingsResponse](t, rec)
	if !view.OpenAIConfigured || !view.YouTubeConfigured {
		t.Errorf("configured flags after patch = (%v, %v), want (true, true)", view.OpenAIConfigured, view.YouTubeConfigured)
	}
}

func TestUpdateSettingsValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"blank openai key", `{"openaiApiKey":"   "}`},
		{"blank youtube key", `{"youtubeApiKey":""}`},
		{"template too short", `{"emotionPromptTemplate":"{text}"}`},
		{"multibyte template too short", `{"emotionPromptTemplate":"감정{text}"}`},
		{"template without placeholder", `{"emotionPromptTemplate":"a template missing the slot"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newDeps(t, domain.Settings{OpenAIAPIKey: "sk-test"}, nil, nil)
			rec := doJSON(t, UpdateSettings(d), http.MethodPut, "/api/settings", tt.body)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", rec.Code)
			}
			if d.Settings.Current().OpenAIAPIKey != "sk-test" {
				t.Error("rejected patch must not mutate settings")
			}
		})
	}
}

func TestResetSettings(t *testing.T) {
	d := newDeps(t, domain.Settings{EmotionPromptTemplate: "default template {text}"}, nil, nil)
	d.Settings.Update(context.Background(), domain.SettingsPatch{
		OpenAIAPIKey: strPtr("sk-temporary"),
	})

	rec := doJSON(t, ResetSettings(d), http.MethodPost, "/api/settings/reset", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	view := decodeBody[settingsResponse](t, rec)
	if view.OpenAIConfigured {
		t.Error("reset must drop the patched credential")
	}
	if view.EmotionPromptTemplate != "default template {text}" {
		t.Errorf("template = %q, want boot default", view.EmotionPromptTemplate)
	}
}

func TestMusicPreferences(t *testing.T) {
	d := newDeps(t, domain.Settings{}, nil, nil)

	rec := doJSON(t, UpdateMusicPreferences(d), http.MethodPut, "/api/music/preferences", `{"volume":150}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	snap := decodeBody[state.MusicSnapshot](t, rec)
	if snap.Volume != 100 {
		t.Errorf("volume = %d, want clamped to 100", snap.Volume)
	}

	rec = doJSON(t, UpdateMusicPreferences(d), http.MethodPut, "/api/music/preferences", `{"volume":0}`)
	snap = decodeBody[state.MusicSnapshot](t, rec)
	if !snap.IsMuted {
		t.Error("volume 0 must mute")
	}

	rec = doJSON(t, UpdateMusicPreferences(d), http.MethodPut, "/api/music/preferences", `{}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("empty preferences patch status = %d, want 400", rec.Code)
	}
}

func TestMusicPlaylistNavigation(t *testing.T) {
	d := newDeps(t, domain.Settings{}, nil, nil)
	d.Music.SetPlaylist([]domain.Video{
		{ID: "v1", VideoID: "v1", Title: "first"},
		{ID: "v2", VideoID: "v2", Title: "second"},
	})
	d.Music.SetCurrent(&domain.Video{ID: "v1", VideoID: "v1", Title: "first"})

	rec := doJSON(t, PlayNext(d), http.MethodPost, "/api/music/next", "")
	snap := decodeBody[state.MusicSnapshot](t, rec)
	if snap.CurrentVideo == nil || snap.CurrentVideo.ID != "v2" {
		t.Fatalf("current after next = %+v, want v2", snap.CurrentVideo)
	}

	rec = doJSON(t, PlayPrevious(d), http.MethodPost, "/api/music/previous", "")
	snap = decodeBody[state.MusicSnapshot](t, rec)
	if snap.CurrentVideo == nil || snap.CurrentVideo.ID != "v1" {
		t.Fatalf("current after previous = %+v, want v1", snap.CurrentVideo)
	}

	rec = doJSON(t, SetCurrentVideo(d), http.MethodPut, "/api/music/current", `{"video":null}`)
	snap = decodeBody[state.MusicSnapshot](t, rec)
	if snap.CurrentVideo != nil {
		t.Errorf("current after clear = %+v, want nil", snap.CurrentVideo)
	}
}

func TestHealthz(t *testing.T) {
	d := newDeps(t, domain.Settings{}, nil, nil)
	d.Version = "1.2.3"

	rec := doJSON(t, Healthz(d), http.MethodGet, "/healthz", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	got := decodeBody[healthzResponse](t, rec)
	if got.Status != "ok" || got.Version != "1.2.3" {
		t.Errorf("healthz = %+v, want ok/1.2.3", got)
	}
}

func strPtr(s string) *string { return &s }
