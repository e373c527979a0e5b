package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"membership-backoffice/internal/domain/coupon"
	"membership-backoffice/internal/infra"
	"membership-backoffice/internal/infra/commerce"
	"membership-backoffice/internal/pkg/clock"
	"membership-backoffice/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrCouponNotFound        = errs.New("coupon not found")
	ErrInvalidStatus         = errs.New("invalid coupon status")
	ErrMinimumPurchaseNotMet = errs.New("order amount below minimum purchase")
	ErrRedemptionFailed      = errs.New("coupon redemption failed")
)

type ValidationReason string

const (
	ReasonNotFound           ValidationReason = "not_found"
	ReasonCancelled          ValidationReason = "cancelled"
	ReasonExpired            ValidationReason = "expired"
	ReasonUsed               ValidationReason = "used"
	ReasonNotYetValid        ValidationReason = "not_yet_valid"
	ReasonUsageExceeded      ValidationReason = "usage_exceeded"
	ReasonNotValidExternally ValidationReason = "not_valid_externally"
)

// RedemptionError carries the typed reason a redemption or validation
// precondition failed; never a generic failure.
type RedemptionError struct {
	Reason ValidationReason
}

func (e *RedemptionError) Error() string {
	return "coupon not redeemable: " + string(e.Reason)
}

type ValidationResult struct {
	Valid  bool
	Reason ValidationReason
	Coupon *CouponSnapshot
}

type RedeemParams struct {
	Code             string
	CustomerID       uuid.UUID
	OrderRef         *string
	OrderAmountCents *int64
}

type RedeemResult struct {
	Use                  *CouponUseSnapshot
	DiscountAppliedCents int64
	NewUsageCount        int32
	Status               string
}

type CouponCommands interface {
	Validate(ctx context.Context, code string) (*ValidationResult, error)
	Redeem(ctx context.Context, params RedeemParams) (*RedeemResult, error)
	SetStatus(ctx context.Context, id uuid.UUID, status string) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type couponCommandsImpl struct {
	coupons CouponRepository
	gateway CommerceGateway
	clock   clock.Clock
}

func NewCouponCommands(coupons CouponRepository, gateway CommerceGateway, clk clock.Clock) CouponCommands {
	return &couponCommandsImpl{
		coupons: coupons,
		gateway: gateway,
		clock:   clk,
	}
}

// Validate lazily recomputes the status cache, then cross-checks the code
// still exists on the platform: a locally active coupon can be externally
// absent when provisioning only partially completed.
func (c *couponCommandsImpl) Validate(ctx context.Context, code string) (*ValidationResult, error) {
	snap, entity, err := c.loadFresh(ctx, code)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return &ValidationResult{Valid: false, Reason: ReasonNotFound}, nil
		}
		return nil, err
	}

	if reason, ok := usageReason(entity, c.clock.Now()); ok {
		return &ValidationResult{Valid: false, Reason: reason, Coupon: snap}, nil
	}

	if _, err := c.gateway.LookupCode(ctx, snap.Code); err != nil {
		if errors.Is(err, commerce.ErrCodeNotFound) {
			return &ValidationResult{Valid: false, Reason: ReasonNotValidExternally, Coupon: snap}, nil
		}
		// The platform being unreachable is not the coupon's fault;
		// fall back to the local verdict.
		slog.Warn("external code lookup failed, accepting local verdict",
			"code", snap.Code, "error", err.Error())
	}

	return &ValidationResult{Valid: true, Coupon: snap}, nil
}

// Redeem re-validates, computes the applied discount, and consumes one use
// atomically. Concurrent redemptions past the usage cap lose on the
// conditional update inside the repository transaction.
func (c *couponCommandsImpl) Redeem(ctx context.Context, params RedeemParams) (*RedeemResult, error) {
	snap, entity, err := c.loadFresh(ctx, params.Code)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, &RedemptionError{Reason: ReasonNotFound}
		}
		return nil, err
	}

	now := c.clock.Now()
	if reason, ok := usageReason(entity, now); ok {
		// A spent cap reads as "used" on validation; a redeem attempt
		// against it is reported as usage_exceeded.
		if reason == ReasonUsed {
			reason = ReasonUsageExceeded
		}
		return nil, &RedemptionError{Reason: reason}
	}

	var orderAmount int64
	if params.OrderAmountCents != nil {
		orderAmount = *params.OrderAmountCents
		if !entity.MeetsMinimumPurchase(orderAmount) {
			return nil, ErrMinimumPurchaseNotMet
		}
	}

	discountApplied := entity.ApplyDiscount(orderAmount)

	use, err := c.coupons.RecordRedemption(ctx, RedemptionRecord{
		CouponID:             snap.ID,
		CustomerID:           params.CustomerID,
		OrderRef:             params.OrderRef,
		OrderAmountCents:     params.OrderAmountCents,
		DiscountAppliedCents: discountApplied,
		UsedAt:               now,
	})
	if err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return nil, &RedemptionError{Reason: ReasonUsageExceeded}
		}
		return nil, errs.Mark(err, ErrRedemptionFailed)
	}

	status := coupon.StatusActive
	if use.NowUsed {
		status = coupon.StatusUsed
	}
	return &RedeemResult{
		Use:                  use,
		DiscountAppliedCents: use.DiscountAppliedCents,
		NewUsageCount:        use.NewUsageCount,
		Status:               status.String(),
	}, nil
}

func (c *couponCommandsImpl) SetStatus(ctx context.Context, id uuid.UUID, status string) error {
	parsed, err := coupon.NewStatus(status)
	if err != nil {
		return errs.Mark(err, ErrInvalidStatus)
	}
	if err := c.coupons.UpdateStatus(ctx, id, parsed.String()); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrCouponNotFound
		}
		return err
	}
	return nil
}

// Delete removes the local record after a best-effort delete of the
// external rule; a platform failure is logged, never blocking.
func (c *couponCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	snap, err := c.coupons.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrCouponNotFound
		}
		return err
	}

	if snap.ExternalRuleID != nil {
		if err := c.gateway.DeleteRule(ctx, *snap.ExternalRuleID); err != nil {
			slog.Warn("failed to delete external rule",
				"coupon_id", id, "rule_id", *snap.ExternalRuleID, "error", err.Error())
		}
	}

	return c.coupons.Delete(ctx, id)
}

// loadFresh reads a coupon and persists its derived status when the stored
// cache has drifted.
func (c *couponCommandsImpl) loadFresh(ctx context.Context, code string) (*CouponSnapshot, *coupon.Coupon, error) {
	normalized, err := coupon.NewCode(code)
	if err != nil {
		return nil, nil, infra.WrapRepoErr("invalid code", err, infra.KindNotFound)
	}

	snap, err := c.coupons.FindByCode(ctx, normalized.String())
	if err != nil {
		return nil, nil, err
	}

	entity, err := snapshotToDomain(snap)
	if err != nil {
		return nil, nil, err
	}

	derived := entity.DeriveStatus(c.clock.Now())
	if derived.String() != snap.Status {
		if err := c.coupons.UpdateStatus(ctx, snap.ID, derived.String()); err != nil {
			slog.Warn("failed to persist derived status",
				"coupon_id", snap.ID, "status", derived, "error", err.Error())
		} else {
			snap.Status = derived.String()
		}
	}

	return snap, entity, nil
}

func usageReason(entity *coupon.Coupon, now time.Time) (ValidationReason, bool) {
	err := entity.ValidateUsage(now)
	switch {
	case err == nil:
		return "", false
	case errors.Is(err, coupon.ErrCouponCancelled):
		return ReasonCancelled, true
	case errors.Is(err, coupon.ErrCouponUsedUp):
		return ReasonUsed, true
	case errors.Is(err, coupon.ErrCouponExpired):
		return ReasonExpired, true
	case errors.Is(err, coupon.ErrCouponNotYetValid):
		return ReasonNotYetValid, true
	}
	return ReasonUsageExceeded, true
}

func snapshotToDomain(snap *CouponSnapshot) (*coupon.Coupon, error) {
	discount, err := coupon.NewDiscount(coupon.DiscountType(snap.DiscountType), snap.DiscountValue)
	if err != nil {
		return nil, err
	}
	status, err := coupon.NewStatus(snap.Status)
	if err != nil {
		return nil, err
	}
	return coupon.Restore(
		snap.ID,
		coupon.Code(snap.Code),
		discount,
		snap.Description,
		snap.ValidFrom,
		snap.ValidUntil,
		snap.UsageLimit,
		snap.UsageCount,
		snap.MinimumPurchaseCents,
		status,
	), nil
}
