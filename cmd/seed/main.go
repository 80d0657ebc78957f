package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"promo-code-service/cmd/bootstrap"
	"promo-code-service/cmd/bootstrap/components"
	"promo-code-service/internal/domain/promocode"
	"promo-code-service/internal/pkg/config"
	"promo-code-service/internal/pkg/errs"
	"promo-code-service/internal/usecase/shared"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type demoCode struct {
	code            promocode.Code
	leadName        string
	productInterest string
	contact         string
	createdAt       time.Time
	usedBy          string
	usedAt          time.Time
}

var demoCodes = []demoCode{
	{
		code:            "PROMO-DEMO-001",
		leadName:        "Demo User",
		productInterest: "Premium Plan",
		contact:         "demo@example.com",
		createdAt:       time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	},
	{
		code:            "PROMO-DEMO-002",
		leadName:        "Test User",
		productInterest: "Enterprise",
		contact:         "test@example.com",
		createdAt:       time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
		usedBy:          "Sales Representative",
		usedAt:          time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC),
	},
}

func (d demoCode) build() (*promocode.PromoCode, error) {
	lead, err := promocode.NewLead(d.leadName, d.productInterest, d.contact)
	if err != nil {
		return nil, err
	}
	pc := promocode.New(d.code, lead, d.createdAt)
	if d.usedBy != "" {
		if err := pc.MarkUsed(d.usedBy, d.usedAt); err != nil {
			return nil, err
		}
	}
	return pc, nil
}

// seedDemoCodes inserts the demo codes through the store adapter. Codes that
// already exist are left untouched.
func seedDemoCodes(ctx context.Context, store shared.PromoCodeStore, cfg config.Config, logger *slog.Logger) error {
	runID := uuid.NewString()
	logger = logger.With("run_id", runID, "backend", store.Backend())

	for _, d := range demoCodes {
		pc, err := d.build()
		if err != nil {
			return errs.Wrapf(err, "build demo code %s", d.code)
		}

		storeCtx, cancel := shared.StoreContext(ctx, cfg.Store.Timeout)
		exists, err := store.Exists(storeCtx, pc.Code())
		if err != nil {
			cancel()
			return errs.Wrapf(err, "check demo code %s", d.code)
		}
		if exists {
			cancel()
			logger.Info("デモコードは既に存在します", "code", d.code)
			continue
		}

		res, err := store.InsertIfAbsent(storeCtx, pc)
		cancel()
		if err != nil {
			return errs.Wrapf(err, "insert demo code %s", d.code)
		}
		logger.Info("デモコードを登録しました", "code", d.code, "status", pc.Status().String(), "result", res.String())
	}
	return nil
}

func registerSeed(lc fx.Lifecycle, store shared.PromoCodeStore, cfg config.Config, logger *slog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return seedDemoCodes(ctx, store, cfg, logger)
		},
	})
}

func main() {
	app := fx.New(
		bootstrap.ConfigModule,
		bootstrap.LoggerModule,
		bootstrap.MetricsModule,
		components.PersistenceModule,
		fx.NopLogger,
		fx.Invoke(registerSeed),
	)

	if err := app.Start(context.Background()); err != nil {
		slog.Error("デモデータの投入に失敗しました", "error", err)
		os.Exit(1)
	}

	if err := app.Stop(context.Background()); err != nil {
		slog.Error("アプリケーションの停止に失敗しました", "error", err)
	}

	slog.Info("デモデータの投入が完了しました")
}
