package coupon

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrCouponExpired     = errors.New("coupon has expired")
	ErrCouponNotYetValid = errors.New("coupon is not yet valid")
	ErrCouponCancelled   = errors.New("coupon has been cancelled")
	ErrCouponUsedUp      = errors.New("coupon usage limit reached")
)

type Status string

const (
	StatusActive    Status = "active"
	StatusExpired   Status = "expired"
	StatusUsed      Status = "used"
	StatusCancelled Status = "cancelled"
)

func NewStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusActive, StatusExpired, StatusUsed, StatusCancelled:
		return Status(s), nil
	}
	return "", errors.New("unknown coupon status")
}

func (s Status) String() string {
	return string(s)
}

type Coupon struct {
	id                   uuid.UUID
	code                 Code
	discount             Discount
	description          string
	validFrom            time.Time
	validUntil           *time.Time
	usageLimit           *int32
	usageCount           int32
	minimumPurchaseCents *int64
	status               Status
	cancelled            bool
}

func NewCoupon(
	id uuid.UUID,
	code string,
	discount Discount,
	description string,
	validFrom time.Time,
	validUntil *time.Time,
	usageLimit *int32,
	minimumPurchaseCents *int64,
) (*Coupon, error) {
	couponCode, err := NewCode(code)
	if err != nil {
		return nil, err
	}
	if minimumPurchaseCents != nil && *minimumPurchaseCents < 0 {
		return nil, ErrInvalidMinimumPurchase
	}

	return &Coupon{
		id:                   id,
		code:                 couponCode,
		discount:             discount,
		description:          description,
		validFrom:            validFrom,
		validUntil:           validUntil,
		usageLimit:           usageLimit,
		minimumPurchaseCents: minimumPurchaseCents,
		status:               StatusActive,
	}, nil
}

// Restore rebuilds a coupon from its persisted state.
func Restore(
	id uuid.UUID,
	code Code,
	discount Discount,
	description string,
	validFrom time.Time,
	validUntil *time.Time,
	usageLimit *int32,
	usageCount int32,
	minimumPurchaseCents *int64,
	status Status,
) *Coupon {
	return &Coupon{
		id:                   id,
		code:                 code,
		discount:             discount,
		description:          description,
		validFrom:            validFrom,
		validUntil:           validUntil,
		usageLimit:           usageLimit,
		usageCount:           usageCount,
		minimumPurchaseCents: minimumPurchaseCents,
		status:               status,
		cancelled:            status == StatusCancelled,
	}
}

// DeriveStatus recomputes the status as a pure function of cancellation,
// usage and the validity window. The stored status column is a cache of
// this value; callers persist the result when it drifts.
func (c *Coupon) DeriveStatus(now time.Time) Status {
	if c.cancelled {
		return StatusCancelled
	}
	if c.usageLimit != nil && c.usageCount >= *c.usageLimit {
		return StatusUsed
	}
	if c.validUntil != nil && now.After(*c.validUntil) {
		return StatusExpired
	}
	return StatusActive
}

// ValidateUsage reports why the coupon cannot be redeemed at t, or nil.
func (c *Coupon) ValidateUsage(t time.Time) error {
	switch c.DeriveStatus(t) {
	case StatusCancelled:
		return ErrCouponCancelled
	case StatusUsed:
		return ErrCouponUsedUp
	case StatusExpired:
		return ErrCouponExpired
	}
	if t.Before(c.validFrom) {
		return ErrCouponNotYetValid
	}
	return nil
}

func (c *Coupon) MeetsMinimumPurchase(orderAmountCents int64) bool {
	if c.minimumPurchaseCents == nil {
		return true
	}
	return orderAmountCents >= *c.minimumPurchaseCents
}

func (c *Coupon) ApplyDiscount(orderAmountCents int64) int64 {
	return c.discount.AppliedAmount(orderAmountCents)
}

func (c *Coupon) ID() uuid.UUID                { return c.id }
func (c *Coupon) Code() Code                   { return c.code }
func (c *Coupon) Discount() Discount           { return c.discount }
func (c *Coupon) Description() string          { return c.description }
func (c *Coupon) ValidFrom() time.Time         { return c.validFrom }
func (c *Coupon) ValidUntil() *time.Time       { return c.validUntil }
func (c *Coupon) UsageLimit() *int32           { return c.usageLimit }
func (c *Coupon) UsageCount() int32            { return c.usageCount }
func (c *Coupon) MinimumPurchaseCents() *int64 { return c.minimumPurchaseCents }
func (c *Coupon) Status() Status               { return c.status }
