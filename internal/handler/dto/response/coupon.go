package response

import (
	"time"

	"membership-backoffice/internal/usecase/commands"
	"membership-backoffice/internal/usecase/queries"

	"github.com/google/uuid"
)

type ProvisionResponse struct {
	Code          string    `json:"code"`
	RuleID        int64     `json:"rule_id"`
	CodeID        *int64    `json:"code_id,omitempty"`
	Reused        bool      `json:"reused"`
	Orphaned      bool      `json:"orphaned"`
	FailureDetail string    `json:"failure_detail,omitempty"`
	CouponID      uuid.UUID `json:"coupon_id,omitempty"`
	Status        string    `json:"status,omitempty"`
}

func FromProvisionResult(r *commands.ProvisionResult) ProvisionResponse {
	resp := ProvisionResponse{
		Code:          r.Code,
		RuleID:        r.RuleID,
		CodeID:        r.CodeID,
		Reused:        r.Reused,
		Orphaned:      r.Orphaned,
		FailureDetail: r.FailureDetail,
	}
	if r.Coupon != nil {
		resp.CouponID = r.Coupon.ID
		resp.Status = r.Coupon.Status
	}
	return resp
}

type CouponSummary struct {
	ID            uuid.UUID  `json:"id"`
	Code          string     `json:"code"`
	DiscountType  string     `json:"discount_type"`
	DiscountValue float64    `json:"discount_value"`
	Status        string     `json:"status"`
	UsageCount    int32      `json:"usage_count"`
	UsageLimit    *int32     `json:"usage_limit,omitempty"`
	ValidUntil    *time.Time `json:"valid_until,omitempty"`
}

func summaryFromSnapshot(s *commands.CouponSnapshot) *CouponSummary {
	if s == nil {
		return nil
	}
	return &CouponSummary{
		ID:            s.ID,
		Code:          s.Code,
		DiscountType:  s.DiscountType,
		DiscountValue: s.DiscountValue,
		Status:        s.Status,
		UsageCount:    s.UsageCount,
		UsageLimit:    s.UsageLimit,
		ValidUntil:    s.ValidUntil,
	}
}

type ValidateResponse struct {
	Valid  bool           `json:"valid"`
	Reason string         `json:"reason,omitempty"`
	Coupon *CouponSummary `json:"coupon,omitempty"`
}

func FromValidationResult(r *commands.ValidationResult) ValidateResponse {
	return ValidateResponse{
		Valid:  r.Valid,
		Reason: string(r.Reason),
		Coupon: summaryFromSnapshot(r.Coupon),
	}
}

type RedeemResponse struct {
	UseID                uuid.UUID `json:"use_id"`
	DiscountAppliedCents int64     `json:"discount_applied_cents"`
	NewUsageCount        int32     `json:"new_usage_count"`
	Status               string    `json:"status"`
	UsedAt               time.Time `json:"used_at"`
}

func FromRedeemResult(r *commands.RedeemResult) RedeemResponse {
	return RedeemResponse{
		UseID:                r.Use.ID,
		DiscountAppliedCents: r.DiscountAppliedCents,
		NewUsageCount:        r.NewUsageCount,
		Status:               r.Status,
		UsedAt:               r.Use.UsedAt,
	}
}

type CouponListResponse struct {
	Items      []*queries.CouponListItem `json:"items"`
	NextCursor string                    `json:"next_cursor,omitempty"`
}

type RetryReportResponse struct {
	Attempted int `json:"attempted"`
	Resolved  int `json:"resolved"`
	Failed    int `json:"failed"`
}
