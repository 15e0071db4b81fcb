package domain

// AnimationType is a background animation category.
type AnimationType string

const (
	AnimationNone     AnimationType = "none"
	AnimationRain     AnimationType = "rain"
	AnimationStars    AnimationType = "stars"
	AnimationPetals   AnimationType = "petals"
	AnimationSparkles AnimationType = "sparkles"
	AnimationFire     AnimationType = "fire"
	AnimationMist     AnimationType = "mist"
)

// NeutralMood is the display mood used when no emotion label is known.
const NeutralMood = "ordinary"

// darkPalette is the shared 3-color gradient. Every animation category
// currently uses the same palette; only the animation varies.
var darkPalette = [3]string{"#1a1a2e", "#16213e", "#0f3460"}

// displayMoods maps each canonical emotion label to its user-facing
// adjectival form.
var displayMoods = map[string]string{
	LabelHappy:     "happy",
	LabelJoyful:    "joyful",
	LabelSad:       "sad",
	LabelDepressed: "gloomy",
	LabelAnxious:   "uneasy",
	LabelAngry:     "fiery",
	LabelCalm:      NeutralMood,
	LabelTired:     "sleepy",
}

// moodAnimations maps each display mood to its background animation.
var moodAnimations = map[string]AnimationType{
	"happy":     AnimationPetals,
	"joyful":    AnimationSparkles,
	NeutralMood: AnimationNone,
	"sleepy":    AnimationStars,
	"sad":       AnimationRain,
	"gloomy":    AnimationRain,
	"fiery":     AnimationFire,
	"uneasy":    AnimationMist,
}

// DisplayMood converts an emotion label to its display mood. An empty or
// unrecognized label yields the neutral mood.
func DisplayMood(emotionLabel string) string {
	if mood, ok := displayMoods[emotionLabel]; ok {
		return mood
	}
	return NeutralMood
}

// Presentation is the background treatment chosen for a display mood.
type Presentation struct {
	Mood      string        `json:"mood"`
	Animation AnimationType `json:"animation"`
	Palette   [3]string     `json:"palette"`
}

// PresentationFor maps an emotion label (empty = no current mood) to its
// presentation. Deterministic, no state, no I/O.
func PresentationFor(emotionLabel string) Presentation {
	mood := DisplayMood(emotionLabel)
	animation, ok := moodAnimations[mood]
	if !ok {
		animation = AnimationNone
	}
	return Presentation{
		Mood:      mood,
		Animation: animation,
		Palette:   darkPalette,
	}
}

// Greeting returns the time-of-day phrase for the given local hour.
func Greeting(hour int) string {
	switch {
	case hour < 6:
		return "it's late at night 🌙"
	case hour < 12:
		return "it's morning ☀️"
	case hour < 18:
		return "it's afternoon 🌤️"
	case hour < 22:
		return "it's evening 🌆"
	default:
		return "it's nighttime 🌙"
	}
}

// GreetingParts is the two-part greeting shown on the home surface.
type GreetingParts struct {
	Mood string `json:"mood"`
	Rest string `json:"rest"`
}

// GreetingWithMood combines the display mood with the time-of-day phrase.
func GreetingWithMood(emotionLabel string, hour int) GreetingParts {
	return GreetingParts{
		Mood: DisplayMood(emotionLabel),
		Rest: Greeting(hour),
	}
}
