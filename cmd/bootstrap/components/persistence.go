package components

import (
	"membership-backoffice/internal/infra/readstore"
	"membership-backoffice/internal/infra/repository"
	"membership-backoffice/internal/usecase/commands"
	"membership-backoffice/internal/usecase/queries"

	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	readstoreModule,
	repositoryModule,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		fx.Annotate(
			readstore.NewCouponReadStore,
			fx.As(new(queries.CouponReadStore)),
		),
		fx.Annotate(
			readstore.NewOrphanReadStore,
			fx.As(new(queries.OrphanReadStore)),
		),
		fx.Annotate(
			readstore.NewEmployeeReadStore,
			fx.As(new(queries.EmployeeReadStore)),
		),
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		fx.Annotate(
			repository.NewCouponRepository,
			fx.As(new(commands.CouponRepository)),
		),
		fx.Annotate(
			repository.NewOrphanLogRepository,
			fx.As(new(commands.OrphanLogRepository)),
		),
	),
)
