package prompts

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the prompt configuration: the default classification prompt
// template and the per-emotion music search phrases.
type Config struct {
	EmotionPromptTemplate string              `yaml:"emotionPromptTemplate"`
	SearchPhrases         map[string][]string `yaml:"searchPhrases"`
}

// Loader handles loading and parsing of the optional prompts.yaml file.
// Fields missing from the file fall back to the built-in defaults.
type Loader struct {
	filePath string
}

// NewLoader creates a prompts loader. An empty path means "defaults only".
func NewLoader(filePath string) *Loader {
	return &Loader{
		filePath: filePath,
	}
}

// Load reads and parses the prompts file, merging it over the defaults.
func (l *Loader) Load() (Config, error) {
	config := Defaults()
	if l.filePath == "" {
		return config, nil
	}

	data, err := os.ReadFile(l.filePath)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read prompts file: %w", err)
	}

	var overrides Config
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return Config{}, fmt.Errorf("failed to parse prompts yaml: %w", err)
	}

	if overrides.EmotionPromptTemplate != "" {
		if !strings.Contains(overrides.EmotionPromptTemplate, "{text}") {
			return Config{}, fmt.Errorf("prompt template in %s is missing the {text} placeholder", l.filePath)
		}
		config.EmotionPromptTemplate = overrides.EmotionPromptTemplate
	}

	// Per-label override: labels absent from the file keep their defaults.
	for label, phrases := range overrides.SearchPhrases {
		if len(phrases) > 0 {
			config.SearchPhrases[label] = phrases
		}
	}

	return config, nil
}
