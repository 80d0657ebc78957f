package components

import (
	"context"
	"log/slog"
	"time"

	"promo-code-service/internal/infra/db"
	"promo-code-service/internal/infra/kvstore"
	"promo-code-service/internal/infra/metrics"
	"promo-code-service/internal/infra/repository"
	sqlc "promo-code-service/internal/infra/sqlc/generated"
	"promo-code-service/internal/pkg/config"
	"promo-code-service/internal/pkg/errs"
	"promo-code-service/internal/usecase/shared"

	"go.uber.org/fx"
)

const poolStatsInterval = 15 * time.Second

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewPromoCodeStore,
	),
)

// NewPromoCodeStore connects the backend named by STORE_BACKEND. Exactly one
// backend is opened per process.
func NewPromoCodeStore(lc fx.Lifecycle, cfg config.Config, m *metrics.Metrics, logger *slog.Logger) (shared.PromoCodeStore, error) {
	switch cfg.Store.Backend {
	case config.BackendPostgres:
		pool, cleanup, err := db.Connect(cfg.DB)
		if err != nil {
			return nil, err
		}
		watchCtx, stopWatch := context.WithCancel(context.Background())
		lc.Append(fx.Hook{
			OnStart: func(_ context.Context) error {
				go m.WatchPool(watchCtx, pool, poolStatsInterval)
				return nil
			},
			OnStop: func(_ context.Context) error {
				stopWatch()
				cleanup()
				return nil
			},
		})
		logger.Info("store backend selected", "backend", cfg.Store.Backend, "host", cfg.DB.Host, "database", cfg.DB.DBName)
		return repository.NewPromoCodeRepository(sqlc.New(), pool, pool), nil

	case config.BackendRedis:
		client, cleanup, err := kvstore.Connect(cfg.Redis)
		if err != nil {
			return nil, err
		}
		lc.Append(fx.Hook{
			OnStop: func(_ context.Context) error {
				cleanup()
				return nil
			},
		})
		logger.Info("store backend selected", "backend", cfg.Store.Backend, "addr", cfg.Redis.Addr, "collection", cfg.Redis.Collection)
		return kvstore.NewPromoCodeStore(client, cfg.Redis.Collection), nil

	default:
		return nil, errs.Newf("unknown store backend %q", cfg.Store.Backend)
	}
}
