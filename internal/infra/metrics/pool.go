package metrics

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// WatchPool samples pool statistics until ctx is cancelled.
func (m *Metrics) WatchPool(ctx context.Context, pool *pgxpool.Pool, every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		stat := pool.Stat()
		m.SetDBPoolStats(stat.TotalConns(), stat.IdleConns(), stat.AcquiredConns())

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
