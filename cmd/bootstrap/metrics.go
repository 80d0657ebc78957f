package bootstrap

import (
	"promo-code-service/internal/infra/metrics"
	"promo-code-service/internal/usecase/shared"

	"go.uber.org/fx"
)

var MetricsModule = fx.Module("metrics",
	fx.Provide(
		metrics.New,
		func(m *metrics.Metrics) shared.Recorder { return m },
	),
)
