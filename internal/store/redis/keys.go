package redis

const (
	// KeyEntries holds the ordered diary entry collection.
	KeyEntries = "lune:entries"
	// KeySettings holds the settings record.
	KeySettings = "lune:settings"
	// KeyMusicPrefs holds the persisted music preference subset.
	KeyMusicPrefs = "lune:music:prefs"
)
