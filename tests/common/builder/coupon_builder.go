//go:build unit || e2e

package builder

import (
	"time"

	domcoupon "membership-backoffice/internal/domain/coupon"
	reqdto "membership-backoffice/internal/handler/dto/request"
	"membership-backoffice/internal/usecase/commands"
	"membership-backoffice/internal/usecase/queries"

	"github.com/google/uuid"
)

type CouponBuilder struct {
	ID                   uuid.UUID
	Code                 string
	DiscountType         string
	DiscountValue        float64
	Description          string
	ValidFrom            time.Time
	ValidUntil           *time.Time
	UsageLimit           *int32
	UsageCount           int32
	MinimumPurchaseCents *int64
	ExternalRuleID       *int64
	ExternalCodeID       *int64
	Status               string
	CustomerEmail        string
	CustomerName         string
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

func NewCouponBuilder() *CouponBuilder {
	now := time.Now().UTC().Truncate(time.Microsecond)
	until := now.Add(30 * 24 * time.Hour)
	limit := int32(10)
	ruleID := int64(9001)
	codeID := int64(7001)
	return &CouponBuilder{
		ID:             uuid.New(),
		Code:           "SAVE20",
		DiscountType:   string(domcoupon.DiscountPercentage),
		DiscountValue:  20,
		Description:    "Loyalty reward",
		ValidFrom:      now.Add(-time.Hour),
		ValidUntil:     &until,
		UsageLimit:     &limit,
		UsageCount:     0,
		ExternalRuleID: &ruleID,
		ExternalCodeID: &codeID,
		Status:         string(domcoupon.StatusActive),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func (c *CouponBuilder) With(mutate func(*CouponBuilder)) *CouponBuilder {
	mutate(c)
	return c
}

func (c *CouponBuilder) BuildDomain() (*domcoupon.Coupon, error) {
	code, err := domcoupon.NewCode(c.Code)
	if err != nil {
		return nil, err
	}
	discount, err := domcoupon.NewDiscount(domcoupon.DiscountType(c.DiscountType), c.DiscountValue)
	if err != nil {
		return nil, err
	}
	status, err := domcoupon.NewStatus(c.Status)
	if err != nil {
		return nil, err
	}
	return domcoupon.Restore(c.ID, code, discount, c.Description, c.ValidFrom, c.ValidUntil,
		c.UsageLimit, c.UsageCount, c.MinimumPurchaseCents, status), nil
}

func (c *CouponBuilder) BuildSnapshot() *commands.CouponSnapshot {
	return &commands.CouponSnapshot{
		ID:                   c.ID,
		Code:                 c.Code,
		DiscountType:         c.DiscountType,
		DiscountValue:        c.DiscountValue,
		Description:          c.Description,
		ValidFrom:            c.ValidFrom,
		ValidUntil:           c.ValidUntil,
		UsageLimit:           c.UsageLimit,
		UsageCount:           c.UsageCount,
		MinimumPurchaseCents: c.MinimumPurchaseCents,
		ExternalRuleID:       c.ExternalRuleID,
		ExternalCodeID:       c.ExternalCodeID,
		Status:               c.Status,
		CreatedAt:            c.CreatedAt,
		UpdatedAt:            c.UpdatedAt,
	}
}

func (c *CouponBuilder) BuildCreateRequestDTO() reqdto.CreateCouponRequest {
	return reqdto.CreateCouponRequest{
		Code:                 c.Code,
		DiscountType:         c.DiscountType,
		DiscountValue:        c.DiscountValue,
		Description:          c.Description,
		ValidFrom:            c.ValidFrom,
		ValidUntil:           c.ValidUntil,
		UsageLimit:           c.UsageLimit,
		MinimumPurchaseCents: c.MinimumPurchaseCents,
		CustomerEmail:        c.CustomerEmail,
		CustomerName:         c.CustomerName,
	}
}

func (c *CouponBuilder) BuildViewQuery() *queries.CouponView {
	return &queries.CouponView{
		ID:                   c.ID,
		Code:                 c.Code,
		DiscountType:         c.DiscountType,
		DiscountValue:        c.DiscountValue,
		Description:          c.Description,
		ValidFrom:            c.ValidFrom,
		ValidUntil:           c.ValidUntil,
		UsageLimit:           c.UsageLimit,
		UsageCount:           c.UsageCount,
		MinimumPurchaseCents: c.MinimumPurchaseCents,
		ExternalRuleID:       c.ExternalRuleID,
		ExternalCodeID:       c.ExternalCodeID,
		Status:               c.Status,
		CreatedAt:            c.CreatedAt,
		UpdatedAt:            c.UpdatedAt,
	}
}

func (c *CouponBuilder) BuildListItemQuery() *queries.CouponListItem {
	return &queries.CouponListItem{
		ID:            c.ID,
		Code:          c.Code,
		DiscountType:  c.DiscountType,
		DiscountValue: c.DiscountValue,
		Status:        c.Status,
		UsageCount:    c.UsageCount,
		UsageLimit:    c.UsageLimit,
		ValidUntil:    c.ValidUntil,
		CreatedAt:     c.CreatedAt,
	}
}

type OrphanBuilder struct {
	ID             uuid.UUID
	ExternalRuleID int64
	Code           string
	ErrorMessage   string
	AttemptCount   int32
	Resolved       bool
	CreatedAt      time.Time
}

func NewOrphanBuilder() *OrphanBuilder {
	return &OrphanBuilder{
		ID:             uuid.New(),
		ExternalRuleID: 9001,
		Code:           "SAVE20",
		ErrorMessage:   "code attach failed after retries",
		AttemptCount:   3,
		CreatedAt:      time.Now().UTC().Truncate(time.Microsecond),
	}
}

func (o *OrphanBuilder) With(mutate func(*OrphanBuilder)) *OrphanBuilder {
	mutate(o)
	return o
}

func (o *OrphanBuilder) BuildSnapshot() commands.OrphanLogSnapshot {
	return commands.OrphanLogSnapshot{
		ID:             o.ID,
		ExternalRuleID: o.ExternalRuleID,
		Code:           o.Code,
		ErrorMessage:   o.ErrorMessage,
		AttemptCount:   o.AttemptCount,
		Resolved:       o.Resolved,
		CreatedAt:      o.CreatedAt,
	}
}

func (o *OrphanBuilder) BuildViewQuery() *queries.OrphanView {
	return &queries.OrphanView{
		ID:             o.ID,
		ExternalRuleID: o.ExternalRuleID,
		Code:           o.Code,
		ErrorMessage:   o.ErrorMessage,
		AttemptCount:   o.AttemptCount,
		Resolved:       o.Resolved,
		CreatedAt:      o.CreatedAt,
	}
}
