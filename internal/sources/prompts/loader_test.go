package prompts

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writePromptsFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "prompts.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write prompts file: %v", err)
	}
	return path
}

func TestLoadDefaultsWithoutFile(t *testing.T) {
	config, err := NewLoader("").Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if config.EmotionPromptTemplate != DefaultPromptTemplate {
		t.Errorf("template differs from the built-in default")
	}
	if len(config.SearchPhrases["happy"]) == 0 {
		t.Errorf("default search phrases missing for happy")
	}
}

func TestLoadOverridesTemplate(t *testing.T) {
	path := writePromptsFile(t, "emotionPromptTemplate: \"classify this entry: {text}\"\n")

	config, err := NewLoader(path).Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !strings.Contains(config.EmotionPromptTemplate, "classify this entry") {
		t.Errorf("template override not applied: %q", config.EmotionPromptTemplate)
	}
	// Untouched phrase lists keep their defaults.
	if len(config.SearchPhrases["sad"]) == 0 {
		t.Errorf("default search phrases dropped by template-only override")
	}
}

func TestLoadRejectsTemplateWithoutPlaceholder(t *testing.T) {
	path := writePromptsFile(t, "emotionPromptTemplate: \"no placeholder here\"\n")

	if _, err := NewLoader(path).Load(); err == nil {
		t.Fatal("Load() should reject a template without the {text} placeholder")
	}
}

func TestLoadOverridesPhrasesPerLabel(t *testing.T) {
	path := writePromptsFile(t, `searchPhrases:
  happy:
    - "my happy mix"
`)

	config, err := NewLoader(path).Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if config.SearchPhrases["happy"][0] != "my happy mix" {
		t.Errorf("phrase override not applied: %v", config.SearchPhrases["happy"])
	}
	if len(config.SearchPhrases["calm"]) == 0 {
		t.Errorf("labels absent from the file should keep defaults")
	}
}

func TestLoadMissingFileIsAnError(t *testing.T) {
	if _, err := NewLoader("/nonexistent/prompts.yaml").Load(); err == nil {
		t.Fatal("Load() should fail for a missing configured file")
	}
}
