package handlers

import (
	"net/http"

	"github.com/MrSnakeDoc/lune/internal/httpserver/deps"
	"github.com/MrSnakeDoc/lune/internal/logger"
)

// Flush triggers an immediate snapshot of all stores to Redis.
func Flush(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		select {
		case d.FlushTrigger <- struct{}{}:
			d.Logger.Info("manual snapshot flush triggered via endpoint",
				logger.String("remote_ip", r.RemoteAddr))
			w.WriteHeader(http.StatusAccepted)
			if _, err := w.Write([]byte("✅ Flush triggered successfully\n")); err != nil {
				d.Logger.Debug("failed to write response", logger.Error(err))
			}
		default:
			d.Logger.Warn("snapshot flush already in progress",
				logger.String("remote_ip", r.RemoteAddr))
			w.WriteHeader(http.StatusTooManyRequests)
			if _, err := w.Write([]byte("⏳ Flush already in progress, please wait\n")); err != nil {
				d.Logger.Debug("failed to write response", logger.Error(err))
			}
		}
	}
}
