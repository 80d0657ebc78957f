package components

import (
	"log/slog"

	"promo-code-service/internal/domain/promocode"
	"promo-code-service/internal/pkg/clock"
	"promo-code-service/internal/pkg/config"
	"promo-code-service/internal/usecase/commands"
	"promo-code-service/internal/usecase/queries"
	"promo-code-service/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		NewCodeGenerator,
		fx.As(new(promocode.Generator)),
	),
	func(cfg config.Config) commands.PromoCodeOptions {
		return commands.PromoCodeOptions{
			MaxAttempts:   cfg.Promo.MaxAttempts,
			DefaultUsedBy: cfg.Promo.DefaultUsedBy,
			StoreTimeout:  cfg.Store.Timeout,
		}
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewPromoCodeCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		NewPromoCodeQueries,
	),
)

func NewCodeGenerator(cfg config.Config) (*promocode.RandomGenerator, error) {
	return promocode.NewRandomGenerator(cfg.Promo.Prefix, cfg.Promo.Alphabet)
}

func NewPromoCodeQueries(
	store shared.PromoCodeStore,
	clk clock.Clock,
	recorder shared.Recorder,
	logger *slog.Logger,
	cfg config.Config,
) queries.PromoCodeQueries {
	return queries.NewPromoCodeQueries(store, clk, recorder, logger, cfg.Store.Timeout)
}
