package mcpsrv

import (
	"context"
	"log/slog"
	"time"
)

// StartCacheJanitor clears the source's cache every interval until ctx is
// done. It reports false and does nothing when the source has no cache or the
// interval is not positive.
func StartCacheJanitor(ctx context.Context, source any, interval time.Duration, logger *slog.Logger) bool {
	clearable, ok := source.(cacheClearSource)
	if !ok || interval <= 0 {
		return false
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				clearable.ClearCache()
				logger.Debug("catalog cache cleared")
			case <-ctx.Done():
				return
			}
		}
	}()
	return true
}
