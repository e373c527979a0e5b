package components

import (
	"membership-backoffice/internal/pkg/clock"
	"membership-backoffice/internal/pkg/config"
	"membership-backoffice/internal/pkg/dedupe"
	"membership-backoffice/internal/usecase"
	"membership-backoffice/internal/usecase/commands"
	"membership-backoffice/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewCouponCommands,
		commands.NewOrphanCommands,
		NewProvisioner,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewEmployeeQueries,
		queries.NewCouponQueries,
		queries.NewOrphanQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

// NewProvisioner wraps the two-phase provisioner with the duplicate-request
// suppressor so concurrent submissions of one code share a single run.
func NewProvisioner(
	cfg config.Config,
	gateway commands.CommerceGateway,
	coupons commands.CouponRepository,
	orphans commands.OrphanLogRepository,
	suppressor *dedupe.Suppressor,
	clk clock.Clock,
) commands.CouponProvisioner {
	policy := commands.RetryPolicy{
		MaxAttempts: cfg.Commerce.MaxAttempts,
		BaseDelay:   cfg.Commerce.RetryBaseDelay,
		SettleDelay: cfg.Commerce.SettleDelay,
	}
	inner := commands.NewCouponProvisioner(gateway, coupons, orphans, policy, clk)
	return commands.NewDedupedProvisioner(inner, suppressor)
}
