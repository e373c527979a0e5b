package commands

import (
	"context"

	"membership-backoffice/internal/domain/coupon"
	"membership-backoffice/internal/pkg/dedupe"
)

// dedupedProvisioner coalesces concurrent provision requests for the same
// code into one upstream execution and debounces rapid re-submissions.
type dedupedProvisioner struct {
	inner      CouponProvisioner
	suppressor *dedupe.Suppressor
}

func NewDedupedProvisioner(inner CouponProvisioner, suppressor *dedupe.Suppressor) CouponProvisioner {
	return &dedupedProvisioner{
		inner:      inner,
		suppressor: suppressor,
	}
}

func (d *dedupedProvisioner) ProvisionCoupon(ctx context.Context, params ProvisionParams) (*ProvisionResult, error) {
	key := params.Code
	if normalized, err := coupon.NewCode(params.Code); err == nil {
		key = normalized.String()
	}

	v, err := d.suppressor.Submit(ctx, key, func(ctx context.Context) (any, error) {
		return d.inner.ProvisionCoupon(ctx, params)
	})
	if err != nil {
		return nil, err
	}
	return v.(*ProvisionResult), nil
}
