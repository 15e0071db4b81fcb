package domain

import "testing"

func TestPresentationForNeutralDefaults(t *testing.T) {
	tests := []struct {
		name  string
		label string
	}{
		{"empty label", ""},
		{"unrecognized label", "ecstatic"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := PresentationFor(tt.label)
			if p.Mood != NeutralMood {
				t.Errorf("PresentationFor(%q).Mood = %v, want %v", tt.label, p.Mood, NeutralMood)
			}
			if p.Animation != AnimationNone {
				t.Errorf("PresentationFor(%q).Animation = %v, want %v", tt.label, p.Animation, AnimationNone)
			}
		})
	}
}

func TestPresentationForCanonicalLabels(t *testing.T) {
	tests := []struct {
		label     string
		mood      string
		animation AnimationType
	}{
		{LabelHappy, "happy", AnimationPetals},
		{LabelJoyful, "joyful", AnimationSparkles},
		{LabelSad, "sad", AnimationRain},
		{LabelDepressed, "gloomy", AnimationRain},
		{LabelAnxious, "uneasy", AnimationMist},
		{LabelAngry, "fiery", AnimationFire},
		{LabelCalm, NeutralMood, AnimationNone},
		{LabelTired, "sleepy", AnimationStars},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			p := PresentationFor(tt.label)
			if p.Mood != tt.mood {
				t.Errorf("mood = %v, want %v", p.Mood, tt.mood)
			}
			if p.Animation != tt.animation {
				t.Errorf("animation = %v, want %v", p.Animation, tt.animation)
			}
		})
	}
}

func TestPresentationPaletteIdenticalAcrossMoods(t *testing.T) {
	base := PresentationFor(LabelCalm).Palette
	for _, label := range Labels {
		if PresentationFor(label).Palette != base {
			t.Errorf("palette for %v differs from the shared palette", label)
		}
	}
}

func TestGreetingBuckets(t *testing.T) {
	tests := []struct {
		hour int
		want string
	}{
		{0, "it's late at night 🌙"},
		{5, "it's late at night 🌙"},
		{6, "it's morning ☀️"},
		{11, "it's morning ☀️"},
		{12, "it's afternoon 🌤️"},
		{17, "it's afternoon 🌤️"},
		{18, "it's evening 🌆"},
		{21, "it's evening 🌆"},
		{22, "it's nighttime 🌙"},
		{23, "it's nighttime 🌙"},
	}

	for _, tt := range tests {
		if got := Greeting(tt.hour); got != tt.want {
			t.Errorf("Greeting(%d) = %q, want %q", tt.hour, got, tt.want)
		}
	}
}

func TestGreetingWithMood(t *testing.T) {
	parts := GreetingWithMood(LabelHappy, 9)
	if parts.Mood != "happy" {
		t.Errorf("mood = %v, want happy", parts.Mood)
	}
	if parts.Rest != "it's morning ☀️" {
		t.Errorf("rest = %q, want morning greeting", parts.Rest)
	}

	neutral := GreetingWithMood("", 23)
	if neutral.Mood != NeutralMood {
		t.Errorf("mood for empty label = %v, want %v", neutral.Mood, NeutralMood)
	}
}
