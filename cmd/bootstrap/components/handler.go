package components

import (
	"promo-code-service/internal/handler"
	"promo-code-service/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewPromoCodeHandler,
		api.NewHealthHandler,
	),
	fx.Invoke(handler.NewRouter),
)
