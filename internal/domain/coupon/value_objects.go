package coupon

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidCouponCode      = errors.New("invalid coupon code format")
	ErrInvalidDiscountAmount  = errors.New("discount amount must be positive")
	ErrInvalidDiscountPercent = errors.New("percentage discount must be between 0 and 100")
	ErrInvalidMinimumPurchase = errors.New("minimum purchase cannot be negative")
)

var couponCodeRegex = regexp.MustCompile(`^[A-Z0-9_-]{3,32}$`)

// Code is a case-normalized, human-enterable coupon code.
type Code string

func NewCode(code string) (Code, error) {
	code = strings.TrimSpace(strings.ToUpper(code))
	if !couponCodeRegex.MatchString(code) {
		return Code(""), ErrInvalidCouponCode
	}
	return Code(code), nil
}

func (c Code) String() string {
	return string(c)
}

type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed_amount"
)

// Discount is either a percentage off or a fixed amount off in cents.
type Discount struct {
	kind           DiscountType
	percentOff     float64
	amountOffCents int64
}

func NewPercentageDiscount(percentOff float64) (Discount, error) {
	if percentOff <= 0 || percentOff > 100 {
		return Discount{}, ErrInvalidDiscountPercent
	}
	return Discount{kind: DiscountPercentage, percentOff: percentOff}, nil
}

func NewFixedDiscount(amountOffCents int64) (Discount, error) {
	if amountOffCents <= 0 {
		return Discount{}, ErrInvalidDiscountAmount
	}
	return Discount{kind: DiscountFixed, amountOffCents: amountOffCents}, nil
}

func NewDiscount(kind DiscountType, value float64) (Discount, error) {
	switch kind {
	case DiscountPercentage:
		return NewPercentageDiscount(value)
	case DiscountFixed:
		return NewFixedDiscount(int64(value))
	default:
		return Discount{}, errors.New("unknown discount type")
	}
}

func (d Discount) Type() DiscountType    { return d.kind }
func (d Discount) IsPercentage() bool    { return d.kind == DiscountPercentage }
func (d Discount) PercentOff() float64   { return d.percentOff }
func (d Discount) AmountOffCents() int64 { return d.amountOffCents }

// Value returns the raw magnitude regardless of kind.
func (d Discount) Value() float64 {
	if d.IsPercentage() {
		return d.percentOff
	}
	return float64(d.amountOffCents)
}

// AppliedAmount computes the discount applied to an order amount:
// percentage of the amount, or min(fixed amount, amount).
// A zero order amount yields a zero discount for percentage coupons
// and the full fixed amount for fixed coupons when no amount is known.
func (d Discount) AppliedAmount(orderAmountCents int64) int64 {
	if d.IsPercentage() {
		return int64(float64(orderAmountCents) * d.percentOff / 100.0)
	}
	if orderAmountCents > 0 && d.amountOffCents > orderAmountCents {
		return orderAmountCents
	}
	return d.amountOffCents
}
