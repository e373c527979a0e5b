package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type CouponView struct {
	ID                   uuid.UUID  `json:"id"`
	Code                 string     `json:"code"`
	DiscountType         string     `json:"discount_type"`
	DiscountValue        float64    `json:"discount_value"`
	Description          string     `json:"description,omitempty"`
	ValidFrom            time.Time  `json:"valid_from"`
	ValidUntil           *time.Time `json:"valid_until,omitempty"`
	UsageLimit           *int32     `json:"usage_limit,omitempty"`
	UsageCount           int32      `json:"usage_count"`
	MinimumPurchaseCents *int64     `json:"minimum_purchase_cents,omitempty"`
	ExternalRuleID       *int64     `json:"external_rule_id,omitempty"`
	ExternalCodeID       *int64     `json:"external_code_id,omitempty"`
	Status               string     `json:"status"`
	CustomerID           *uuid.UUID `json:"customer_id,omitempty"`
	CustomerEmail        *string    `json:"customer_email,omitempty"`
	CreatedAt            time.Time  `json:"created_at"`
	UpdatedAt            time.Time  `json:"updated_at"`
}

type CouponListItem struct {
	ID            uuid.UUID  `json:"id"`
	Code          string     `json:"code"`
	DiscountType  string     `json:"discount_type"`
	DiscountValue float64    `json:"discount_value"`
	Status        string     `json:"status"`
	UsageCount    int32      `json:"usage_count"`
	UsageLimit    *int32     `json:"usage_limit,omitempty"`
	ValidUntil    *time.Time `json:"valid_until,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

type CouponUseView struct {
	ID                   uuid.UUID `json:"id"`
	CouponID             uuid.UUID `json:"coupon_id"`
	CustomerID           uuid.UUID `json:"customer_id"`
	CustomerEmail        string    `json:"customer_email"`
	OrderRef             *string   `json:"order_ref,omitempty"`
	OrderAmountCents     *int64    `json:"order_amount_cents,omitempty"`
	DiscountAppliedCents int64     `json:"discount_applied_cents"`
	UsedAt               time.Time `json:"used_at"`
}

type OrphanView struct {
	ID             uuid.UUID  `json:"id"`
	ExternalRuleID int64      `json:"external_rule_id"`
	Code           string     `json:"code"`
	ErrorMessage   string     `json:"error_message"`
	AttemptCount   int32      `json:"attempt_count"`
	Resolved       bool       `json:"resolved"`
	ResolvedAt     *time.Time `json:"resolved_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

type EmployeeView struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	IsActive bool      `json:"is_active"`
}

type OrphanStatsView struct {
	Total      int64 `json:"total"`
	Resolved   int64 `json:"resolved"`
	Unresolved int64 `json:"unresolved"`
	Last7Days  int64 `json:"last_7_days"`
}
