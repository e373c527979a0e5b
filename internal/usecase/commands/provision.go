package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"membership-backoffice/internal/domain/coupon"
	"membership-backoffice/internal/infra/commerce"
	"membership-backoffice/internal/pkg/clock"
	"membership-backoffice/internal/pkg/errs"
)

var (
	ErrInvalidCouponSpec  = errs.New("invalid coupon specification")
	ErrProvisioningFailed = errs.New("coupon provisioning failed")
)

type ProvisionParams struct {
	Code                 string
	DiscountType         string
	DiscountValue        float64
	Description          string
	ValidFrom            time.Time
	ValidUntil           *time.Time
	UsageLimit           *int32
	MinimumPurchaseCents *int64
	OncePerCustomer      bool
	CustomerEmail        string
	CustomerName         string
}

// ProvisionResult reports the outcome of one provisioning run. Orphaned
// means the rule exists on the platform but no code could be attached:
// a degraded success the caller can surface as "pending", never a
// silent full success.
type ProvisionResult struct {
	RuleID        int64
	CodeID        *int64
	Code          string
	Reused        bool
	Orphaned      bool
	FailureDetail string
	Coupon        *CouponSnapshot
}

type CouponProvisioner interface {
	ProvisionCoupon(ctx context.Context, params ProvisionParams) (*ProvisionResult, error)
}

type provisionerImpl struct {
	gateway CommerceGateway
	coupons CouponRepository
	orphans OrphanLogRepository
	policy  RetryPolicy
	clock   clock.Clock
	sleep   Sleeper
}

func NewCouponProvisioner(
	gateway CommerceGateway,
	coupons CouponRepository,
	orphans OrphanLogRepository,
	policy RetryPolicy,
	clk clock.Clock,
) CouponProvisioner {
	return &provisionerImpl{
		gateway: gateway,
		coupons: coupons,
		orphans: orphans,
		policy:  policy,
		clock:   clk,
		sleep:   RealSleeper,
	}
}

// ProvisionCoupon drives the two-phase creation saga: resolve an already
// existing code, otherwise create the rule, then attach the code under
// the retry budget. It is safe to re-invoke for the same code after any
// outcome; the pre-flight lookup makes re-entry idempotent.
func (p *provisionerImpl) ProvisionCoupon(ctx context.Context, params ProvisionParams) (*ProvisionResult, error) {
	code, err := coupon.NewCode(params.Code)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidCouponSpec)
	}
	if _, err := coupon.NewDiscount(coupon.DiscountType(params.DiscountType), params.DiscountValue); err != nil {
		return nil, errs.Mark(err, ErrInvalidCouponSpec)
	}
	params.Code = code.String()

	if result, ok := p.resolveExisting(ctx, params); ok {
		return result, nil
	}

	rule, err := p.createRule(ctx, params)
	if err != nil {
		return nil, err
	}

	codeID, attempts, lastErr := p.attachCode(ctx, rule.ID, params.Code)
	if lastErr != nil {
		return p.recordOrphan(ctx, rule.ID, params.Code, lastErr, attempts)
	}

	// The code now verifiably binds to the rule; orphan entries recorded
	// by earlier failed runs for this pair are stale.
	p.resolveStaleOrphans(ctx, rule.ID, params.Code)

	snapshot, err := p.persistCoupon(ctx, params, rule.ID, codeID)
	if err != nil {
		// Platform resources exist; a re-run repairs the local record
		// via the pre-flight lookup.
		return nil, err
	}

	return &ProvisionResult{
		RuleID: rule.ID,
		CodeID: &codeID,
		Code:   params.Code,
		Coupon: snapshot,
	}, nil
}

// resolveExisting short-circuits when the platform already knows the code,
// e.g. a previous attempt partially or fully succeeded.
func (p *provisionerImpl) resolveExisting(ctx context.Context, params ProvisionParams) (*ProvisionResult, bool) {
	lookup, err := p.gateway.LookupCode(ctx, params.Code)
	if err != nil {
		if !errors.Is(err, commerce.ErrCodeNotFound) {
			slog.Warn("pre-flight code lookup failed, proceeding with creation",
				"code", params.Code, "error", err.Error())
		}
		return nil, false
	}

	snapshot, err := p.coupons.FindByCode(ctx, params.Code)
	if err != nil {
		// The platform has the code but the local mirror is missing or
		// unreadable; repair it.
		snapshot, err = p.persistCoupon(ctx, params, lookup.RuleID, lookup.CodeID)
		if err != nil {
			slog.Error("failed to repair local coupon record",
				"code", params.Code, "error", err.Error())
			snapshot = nil
		}
	}

	codeID := lookup.CodeID
	return &ProvisionResult{
		RuleID: lookup.RuleID,
		CodeID: &codeID,
		Code:   params.Code,
		Reused: true,
		Coupon: snapshot,
	}, true
}

func (p *provisionerImpl) createRule(ctx context.Context, params ProvisionParams) (*commerce.Rule, error) {
	spec := commerce.RuleSpec{
		Title:                params.Code,
		ValueType:            params.DiscountType,
		Value:                params.DiscountValue,
		StartsAt:             params.ValidFrom,
		EndsAt:               params.ValidUntil,
		UsageLimit:           params.UsageLimit,
		OncePerCustomer:      params.OncePerCustomer,
		MinimumPurchaseCents: params.MinimumPurchaseCents,
	}

	rule, err := p.gateway.CreateRule(ctx, spec)
	if err == nil {
		return rule, nil
	}
	if commerce.IsConflict(err) {
		// The rule already exists; the title is the coupon code, which
		// the local store keeps unique, so resolution is unambiguous.
		rule, findErr := p.gateway.FindRuleByTitle(ctx, params.Code)
		if findErr != nil {
			return nil, errs.Mark(findErr, ErrProvisioningFailed)
		}
		return rule, nil
	}
	return nil, errs.Mark(err, ErrProvisioningFailed)
}

// attachCode tries to bind the code to the rule under the retry budget,
// validating each write with a post-settle lookup. Returns the confirmed
// code id, or the last error with the number of attempts spent.
func (p *provisionerImpl) attachCode(ctx context.Context, ruleID int64, code string) (int64, int32, error) {
	var lastErr error

	for attempt := 1; attempt <= p.policy.MaxAttempts; attempt++ {
		if err := p.sleep(ctx, p.policy.Backoff(attempt)); err != nil {
			return 0, int32(attempt - 1), err
		}

		created, err := p.gateway.CreateCode(ctx, ruleID, code)
		switch {
		case err == nil:
		case commerce.IsConflict(err):
			// The code already exists under the rule; validate below.
		case commerce.IsTransient(err):
			lastErr = err
			slog.Warn("code creation attempt failed",
				"rule_id", ruleID, "code", code, "attempt", attempt, "error", err.Error())
			continue
		default:
			// Permanent validation failure: retrying cannot help.
			return 0, int32(attempt), err
		}

		if err := p.sleep(ctx, p.policy.SettleDelay); err != nil {
			return 0, int32(attempt), err
		}

		lookup, err := p.gateway.LookupCode(ctx, code)
		if err == nil && lookup.RuleID == ruleID {
			return lookup.CodeID, int32(attempt), nil
		}
		if err == nil {
			lastErr = errs.Errorf("code %q resolved to foreign rule %d", code, lookup.RuleID)
		} else if created != nil && errors.Is(err, commerce.ErrCodeNotFound) {
			lastErr = errs.Errorf("code %q not visible after create", code)
		} else {
			lastErr = err
		}
		slog.Warn("code validation attempt failed",
			"rule_id", ruleID, "code", code, "attempt", attempt, "error", lastErr.Error())
	}

	return 0, int32(p.policy.MaxAttempts), lastErr
}

// recordOrphan persists the partial-failure state and still hands the rule
// reference back so the caller can present a degraded result. The rule is
// never deleted here: it can be repaired by re-attempting code creation.
func (p *provisionerImpl) recordOrphan(ctx context.Context, ruleID int64, code string, lastErr error, attempts int32) (*ProvisionResult, error) {
	entry := OrphanEntry{
		ExternalRuleID: ruleID,
		Code:           code,
		ErrorMessage:   lastErr.Error(),
		RawResponse:    platformBody(lastErr),
		AttemptCount:   attempts,
	}
	if _, err := p.orphans.Record(ctx, entry); err != nil {
		slog.Error("failed to record orphaned rule",
			"rule_id", ruleID, "code", code, "error", err.Error())
	}

	slog.Error("coupon provisioning left an orphaned rule",
		"rule_id", ruleID, "code", code, "attempts", attempts, "error", lastErr.Error())

	return &ProvisionResult{
		RuleID:        ruleID,
		Code:          code,
		Orphaned:      true,
		FailureDetail: lastErr.Error(),
	}, nil
}

// resolveStaleOrphans closes unresolved orphan entries for a code whose
// attachment to ruleID has since been confirmed. Best effort: a log miss
// leaves the entry for the sweep or manual resolution.
func (p *provisionerImpl) resolveStaleOrphans(ctx context.Context, ruleID int64, code string) {
	entries, err := p.orphans.FindByCode(ctx, code)
	if err != nil {
		slog.Warn("orphan log lookup failed", "code", code, "error", err.Error())
		return
	}

	now := p.clock.Now()
	for _, entry := range entries {
		if entry.Resolved || entry.ExternalRuleID != ruleID {
			continue
		}
		if err := p.orphans.MarkResolved(ctx, entry.ID, now); err != nil {
			slog.Warn("failed to resolve stale orphan entry",
				"orphan_id", entry.ID, "code", code, "error", err.Error())
		}
	}
}

func (p *provisionerImpl) persistCoupon(ctx context.Context, params ProvisionParams, ruleID, codeID int64) (*CouponSnapshot, error) {
	var info *CustomerInfo
	if params.CustomerEmail != "" {
		info = &CustomerInfo{Email: params.CustomerEmail, Name: params.CustomerName}
	}

	return p.coupons.CreateWithCustomer(ctx, info, NewCoupon{
		Code:                 params.Code,
		DiscountType:         params.DiscountType,
		DiscountValue:        params.DiscountValue,
		Description:          params.Description,
		ValidFrom:            params.ValidFrom,
		ValidUntil:           params.ValidUntil,
		UsageLimit:           params.UsageLimit,
		MinimumPurchaseCents: params.MinimumPurchaseCents,
		ExternalRuleID:       ruleID,
		ExternalCodeID:       codeID,
	})
}

func platformBody(err error) string {
	var pe *commerce.PlatformError
	if errors.As(err, &pe) {
		return pe.Body
	}
	return ""
}
