package components

import (
	"membership-backoffice/internal/handler"
	"membership-backoffice/internal/handler/api"
	"membership-backoffice/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewCouponHandler,
		api.NewOrphanHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
