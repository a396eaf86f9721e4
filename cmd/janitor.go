package cmd

import (
	"context"
	"time"

	"moview/internal/data/repository"

	"go.uber.org/zap"
)

// SessionJanitor deletes expired and revoked sessions every interval until ctx is done.
func SessionJanitor(ctx context.Context, sessions repository.SessionRepository, interval time.Duration, logger *zap.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := sessions.CleanExpiredSessions(ctx)
			if err != nil {
				logger.Warn("Failed to clean expired sessions", zap.Error(err))
				continue
			}
			if n > 0 {
				logger.Info("Expired sessions cleaned", zap.Int64("count", n))
			}
		}
	}
}
