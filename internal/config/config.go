package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"
)

type Config struct {
	ListenPort      string        // ex: ":8080"
	ShutdownTimeout time.Duration // ex: 5s

	LogLevel  string // "debug" | "info" | "warn" | "error"
	PrettyLog bool   // true => zap dev (color), false => zap prod (JSON)

	PromptsFile   string        // optional prompts.yaml overriding template/search phrases
	FlushInterval time.Duration // interval between snapshot flushes (default: 6h)

	// Optional build-time default credentials; user settings override them.
	OpenAIAPIKey  string
	YouTubeAPIKey string

	// Collaborator endpoints (overridable for local proxies / tests).
	OpenAIBaseURL  string
	OpenAIModel    string
	YouTubeBaseURL string
	// CollaboratorTimeout bounds each outbound call; 0 = rely on the
	// HTTP client defaults (no timeout).
	CollaboratorTimeout time.Duration

	// Redis
	RedisAddr             string        // ex: "localhost:6379"
	RedisUser             string        // optional
	RedisPassword         string        // optional
	RedisPasswordRequired bool          // true => require password, false => allow empty password
	RedisDB               int           // Redis DB number
	RedisDT               time.Duration // Redis dial timeout (ex: 5s)
	RedisRT               time.Duration // Redis read timeout (ex: 3s)
	RedisWT               time.Duration // Redis write timeout (ex: 3s)
	RedisMaxWait          time.Duration // max wait between retries (ex: 10s)
	RedisPingTimeout      time.Duration // timeout for each ping attempt (ex: 5s)
	RedisPoolSize         int           // Redis connection pool size
	RedisConnectTimeout   time.Duration // Total time to retry connecting (ex: 30s)
	RedisRetryInterval    time.Duration // Initial wait between retries (ex: 2s, grows exponentially)
	RedisWarnThreshold    int           // warn after this many attempts

	TrustProxy bool // true => trust X-Forwarded-For headers (rate limiting key)
}

func Load() *Config {
	cfg := &Config{
		// Server settings
		ListenPort:      getenv("LUNE_LISTEN_PORT", ":8080"),
		ShutdownTimeout: mustDuration("LUNE_SHUTDOWN_TIMEOUT", 5*time.Second),

		// Logging
		LogLevel:  getenv("LUNE_LOG_LEVEL", "info"),
		PrettyLog: mustBool("LUNE_PRETTY_LOG", true),

		// Prompts and persistence upkeep
		PromptsFile:   getenv("LUNE_PROMPTS_FILE", ""), // Optional, empty = built-in defaults
		FlushInterval: mustDuration("LUNE_FLUSH_INTERVAL", 6*time.Hour),

		// Collaborators
		OpenAIAPIKey:        getenv("LUNE_OPENAI_API_KEY", ""),
		YouTubeAPIKey:       getenv("LUNE_YOUTUBE_API_KEY", ""),
		OpenAIBaseURL:       getenv("LUNE_OPENAI_BASE_URL", ""),
		OpenAIModel:         getenv("LUNE_OPENAI_MODEL", ""),
		YouTubeBaseURL:      getenv("LUNE_YOUTUBE_BASE_URL", ""),
		CollaboratorTimeout: mustDuration("LUNE_COLLABORATOR_TIMEOUT", 0),

		// Redis settings
		RedisAddr:             requireEnv("LUNE_REDIS_ADDR"),
		RedisUser:             getenv("LUNE_REDIS_USERNAME", "default"),
		RedisPasswordRequired: mustBool("LUNE_REDIS_PASSWORD_REQUIRED", false),
		RedisPassword:         getenv("LUNE_REDIS_PASSWORD", ""),
		RedisDB:               getenvInt("LUNE_REDIS_DB", 0),
		RedisDT:               mustDuration("REDIS_DIAL_TIMEOUT", 5*time.Second),
		RedisRT:               mustDuration("REDIS_READ_TIMEOUT", 3*time.Second),
		RedisWT:               mustDuration("REDIS_WRITE_TIMEOUT", 3*time.Second),
		RedisMaxWait:          mustDuration("REDIS_MAX_WAIT", 10*time.Second),
		RedisPingTimeout:      mustDuration("REDIS_PING_TIMEOUT", 5*time.Second),
		RedisPoolSize:         getenvInt("REDIS_POOL_SIZE", 10),
		RedisConnectTimeout:   mustDuration("REDIS_CONNECT_TIMEOUT", 30*time.Second),
		RedisRetryInterval:    mustDuration("REDIS_RETRY_INTERVAL", 2*time.Second),
		RedisWarnThreshold:    getenvInt("REDIS_WARN_THRESHOLD", 3),

		TrustProxy: mustBool("LUNE_TRUST_PROXY", false),
	}

	// Validate Redis password configuration
	if cfg.RedisPasswordRequired && cfg.RedisPassword == "" {
		panic("❌ FATAL: LUNE_REDIS_PASSWORD is required when LUNE_REDIS_PASSWORD_REQUIRED=true")
	}

	// Log config only in debug mode with redacted sensitive fields
	if cfg.LogLevel == "debug" {
		cfgCopy := *cfg
		cfgCopy.RedisPassword = "***REDACTED***"
		if cfg.OpenAIAPIKey != "" {
			cfgCopy.OpenAIAPIKey = "***REDACTED***"
		}
		if cfg.YouTubeAPIKey != "" {
			cfgCopy.YouTubeAPIKey = "***REDACTED***"
		}
		log.Printf("[DEBUG] cfg: %+v\n", cfgCopy)
	}

	return cfg
}

// helpers
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func requireEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		panic(fmt.Sprintf("❌ FATAL: Required environment variable %s is not set", key))
	}
	return v
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func mustBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func mustDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
