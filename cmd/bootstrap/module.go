package bootstrap

import (
	"membership-backoffice/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	JWTModule,
	CommerceModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)
