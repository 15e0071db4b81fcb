package deps

import (
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/MrSnakeDoc/lune/internal/analysis"
	"github.com/MrSnakeDoc/lune/internal/logger"
	"github.com/MrSnakeDoc/lune/internal/state"
)

type Deps struct {
	Logger    logger.Logger
	StartTime time.Time
	Version   string
	Commit    string
	BuildDate string
	GoVersion string
	TimeNow   func() time.Time // for testing, defaults to time.Now

	RedisClient *redis.Client // Redis client connection

	Entries  *state.EntryStore    // Ordered diary entry collection
	Settings *state.SettingsStore // Credentials + prompt template
	Analysis *state.AnalysisState // Transient current-analysis slot
	Music    *state.MusicState    // Player state (volume/mute persisted)

	Orchestrator *analysis.Orchestrator // Full diary analysis flow

	FlushTrigger chan struct{} // Channel to trigger a manual snapshot flush
	TrustProxy   bool          // true if running behind a trusted reverse proxy (e.g., cloudflared)
}
