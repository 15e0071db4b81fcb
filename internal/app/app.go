package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/MrSnakeDoc/lune/internal/analysis"
	"github.com/MrSnakeDoc/lune/internal/config"
	"github.com/MrSnakeDoc/lune/internal/domain"
	"github.com/MrSnakeDoc/lune/internal/httpserver"
	"github.com/MrSnakeDoc/lune/internal/httpserver/deps"
	"github.com/MrSnakeDoc/lune/internal/logger"
	"github.com/MrSnakeDoc/lune/internal/openai"
	"github.com/MrSnakeDoc/lune/internal/redis"
	"github.com/MrSnakeDoc/lune/internal/scheduler"
	"github.com/MrSnakeDoc/lune/internal/sources/prompts"
	"github.com/MrSnakeDoc/lune/internal/state"
	redisstore "github.com/MrSnakeDoc/lune/internal/store/redis"
	"github.com/MrSnakeDoc/lune/internal/version"
	"github.com/MrSnakeDoc/lune/internal/youtube"
)

type App struct {
	cfg         *config.Config
	logger      logger.Logger
	server      *httpserver.Server
	redisClient *goredis.Client
	entries     *state.EntryStore
	settings    *state.SettingsStore
	music       *state.MusicState
	flusher     *scheduler.SnapshotFlusher
}

func New() *App {
	cfg := config.Load()

	loggerClient := logger.New(cfg.LogLevel, cfg.PrettyLog)

	// Initialize Redis early - fail fast if unavailable
	loggerClient.Infof("Connecting to Redis at %s", cfg.RedisAddr)
	redisClient, err := redis.New(redis.ConnectOptions{
		Addr:           cfg.RedisAddr,
		User:           cfg.RedisUser,
		Password:       cfg.RedisPassword,
		RedisDB:        cfg.RedisDB,
		DialTimeout:    cfg.RedisDT,
		ReadTimeout:    cfg.RedisRT,
		WriteTimeout:   cfg.RedisWT,
		PoolSize:       cfg.RedisPoolSize,
		ConnectTimeout: cfg.RedisConnectTimeout,
		RetryInterval:  cfg.RedisRetryInterval,
		MaxWait:        cfg.RedisMaxWait,
		PingTimeout:    cfg.RedisPingTimeout,
		WarnThreshold:  cfg.RedisWarnThreshold,
	}, loggerClient)
	if err != nil {
		loggerClient.Errorf("Failed to connect to Redis: %v", err)
		os.Exit(1)
	}
	loggerClient.Info("Redis initialized successfully")

	// Prompt template + search phrases (file overrides merged over defaults)
	promptCfg, err := prompts.NewLoader(cfg.PromptsFile).Load()
	if err != nil {
		loggerClient.Errorf("Failed to load prompts config: %v", err)
		os.Exit(1)
	}

	store := redisstore.NewStore(redisClient)

	// In-memory stores, hydrated from Redis. A failed load is not fatal:
	// the app starts empty and keeps working without durability.
	entries := state.NewEntryStore(store, loggerClient)
	settings := state.NewSettingsStore(domain.Settings{
		OpenAIAPIKey:          cfg.OpenAIAPIKey,
		YouTubeAPIKey:         cfg.YouTubeAPIKey,
		EmotionPromptTemplate: promptCfg.EmotionPromptTemplate,
	}, store, loggerClient)
	analysisState := state.NewAnalysisState()
	music := state.NewMusicState(store, loggerClient)

	bootCtx := context.Background()
	if err := entries.Bootstrap(bootCtx); err != nil {
		loggerClient.Warn("failed to load entries from redis, starting empty", logger.Error(err))
	}
	if err := settings.Bootstrap(bootCtx); err != nil {
		loggerClient.Warn("failed to load settings from redis, using defaults", logger.Error(err))
	}
	if err := music.Bootstrap(bootCtx); err != nil {
		loggerClient.Warn("failed to load music preferences from redis, using defaults", logger.Error(err))
	}

	// External collaborators
	classifier := openai.NewClient(openai.Options{
		BaseURL: cfg.OpenAIBaseURL,
		Model:   cfg.OpenAIModel,
		Timeout: cfg.CollaboratorTimeout,
	})
	musicSearch := youtube.NewClient(youtube.Options{
		BaseURL:       cfg.YouTubeBaseURL,
		Timeout:       cfg.CollaboratorTimeout,
		SearchPhrases: promptCfg.SearchPhrases,
	})

	orchestrator := analysis.New(
		classifier,
		musicSearch,
		entries,
		settings,
		analysisState,
		music,
		loggerClient,
	)

	// Create manual flush trigger channel
	flushTrigger := make(chan struct{}, 1)

	flusher := scheduler.NewSnapshotFlusher(
		entries,
		settings,
		music,
		loggerClient,
		cfg.FlushInterval,
		flushTrigger,
	)

	// Dependencies passed to routes (extend as needed).
	d := deps.Deps{
		Logger:       loggerClient,
		StartTime:    time.Now(),
		Version:      version.Version,
		Commit:       version.Commit,
		BuildDate:    version.BuildDate,
		GoVersion:    version.GoVersion,
		TimeNow:      time.Now,
		RedisClient:  redisClient,
		Entries:      entries,
		Settings:     settings,
		Analysis:     analysisState,
		Music:        music,
		Orchestrator: orchestrator,
		FlushTrigger: flushTrigger,
		TrustProxy:   cfg.TrustProxy,
	}

	server := httpserver.New(cfg, loggerClient, d)

	return &App{
		cfg:         cfg,
		logger:      loggerClient,
		server:      server,
		redisClient: redisClient,
		entries:     entries,
		settings:    settings,
		music:       music,
		flusher:     flusher,
	}
}

func (a *App) Run() error {
	a.logger.Infof("🌙 Starting Lune v%s on %s", version.Version, a.cfg.ListenPort)
	a.logger.Infof("Lune %s (commit=%s, built=%s, go=%s)",
		version.Version, version.Commit, version.BuildDate, version.GoVersion)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Start snapshot flusher (periodic snapshots + manual trigger)
	a.flusher.Start(ctx)
	a.logger.Info("snapshot flusher started",
		logger.Duration("interval", a.cfg.FlushInterval))

	errCh := make(chan error, 1)
	go func() {
		if err := a.server.Start(); err != nil {
			errCh <- fmt.Errorf("http server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("⏳ Shutting down gracefully...")
	case err := <-errCh:
		return err
	}

	a.flusher.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()
	if err := a.server.Stop(shutdownCtx); err != nil {
		return fmt.Errorf("failed to stop server: %w", err)
	}

	// One last snapshot so Redis carries the latest state across restarts.
	a.flusher.Flush(shutdownCtx)

	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.logger.Warnf("failed to close redis: %v", err)
		} else {
			a.logger.Info("✅ Redis closed cleanly")
		}
	}

	a.logger.Info("✅ Lune stopped cleanly")
	return nil
}
