package bootstrap

import (
	"context"

	"membership-backoffice/internal/infra/commerce"
	"membership-backoffice/internal/infra/dedupestore"
	"membership-backoffice/internal/pkg/clock"
	"membership-backoffice/internal/pkg/config"
	"membership-backoffice/internal/pkg/dedupe"
	"membership-backoffice/internal/usecase/commands"

	"go.uber.org/fx"
)

var CommerceModule = fx.Module("commerce",
	fx.Provide(
		fx.Annotate(
			NewCommerceClient,
			fx.As(new(commands.CommerceGateway)),
		),
		NewSuppressor,
	),
)

func NewCommerceClient(cfg config.Config) *commerce.HTTPClient {
	return commerce.NewHTTPClient(cfg.Commerce)
}

// NewSuppressor picks the debounce backend: in-process for a single
// instance, Redis when replicas must share debounce state.
func NewSuppressor(lc fx.Lifecycle, cfg config.Config, clk clock.Clock) (*dedupe.Suppressor, error) {
	windows := dedupe.Windows{
		Debounce:    cfg.Dedupe.DebounceWindow,
		DebounceTTL: cfg.Dedupe.DebounceTTL,
	}

	var store dedupe.DebounceStore
	if cfg.Dedupe.Backend == "redis" {
		redisStore, cleanup, err := dedupestore.NewRedisStore(cfg.Redis)
		if err != nil {
			return nil, err
		}
		lc.Append(fx.Hook{
			OnStop: func(_ context.Context) error {
				cleanup()
				return nil
			},
		})
		store = redisStore
	} else {
		store = dedupe.NewMemoryStore(clk)
	}

	return dedupe.NewSuppressor(store, clk, windows), nil
}
