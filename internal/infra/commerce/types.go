package commerce

import "time"

// RuleSpec describes the discount policy to create on the platform.
// Title doubles as the conflict-resolution handle: it is set to the coupon
// code, which the local store keeps unique.
type RuleSpec struct {
	Title                string     `json:"title"`
	ValueType            string     `json:"value_type"` // percentage | fixed_amount
	Value                float64    `json:"value"`
	StartsAt             time.Time  `json:"starts_at"`
	EndsAt               *time.Time `json:"ends_at,omitempty"`
	UsageLimit           *int32     `json:"usage_limit,omitempty"`
	OncePerCustomer      bool       `json:"once_per_customer"`
	MinimumPurchaseCents *int64     `json:"minimum_purchase_cents,omitempty"`
}

// Rule is the platform's representation of a discount policy. It is not
// redeemable until a code is attached.
type Rule struct {
	ID         int64      `json:"id"`
	Title      string     `json:"title"`
	ValueType  string     `json:"value_type"`
	Value      float64    `json:"value"`
	StartsAt   time.Time  `json:"starts_at"`
	EndsAt     *time.Time `json:"ends_at,omitempty"`
	UsageLimit *int32     `json:"usage_limit,omitempty"`
}

// DiscountCode is a redeemable code bound to a rule.
type DiscountCode struct {
	ID         int64  `json:"id"`
	RuleID     int64  `json:"price_rule_id"`
	Code       string `json:"code"`
	UsageCount int32  `json:"usage_count"`
}

// CodeLookup is the result of resolving a code string to its resources.
type CodeLookup struct {
	RuleID int64  `json:"price_rule_id"`
	CodeID int64  `json:"id"`
	Code   string `json:"code"`
}

type ruleEnvelope struct {
	PriceRule Rule `json:"price_rule"`
}

type rulesEnvelope struct {
	PriceRules []Rule `json:"price_rules"`
}

type codeEnvelope struct {
	DiscountCode DiscountCode `json:"discount_code"`
}

type lookupEnvelope struct {
	DiscountCode CodeLookup `json:"discount_code"`
}
