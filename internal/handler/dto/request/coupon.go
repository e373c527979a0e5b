package request

import (
	"time"

	"membership-backoffice/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateCouponRequest struct {
	Code                 string     `json:"code" binding:"required,min=3,max=32"`
	DiscountType         string     `json:"discount_type" binding:"required,oneof=percentage fixed_amount"`
	DiscountValue        float64    `json:"discount_value" binding:"required,gt=0"`
	Description          string     `json:"description"`
	ValidFrom            time.Time  `json:"valid_from" binding:"required"`
	ValidUntil           *time.Time `json:"valid_until"`
	UsageLimit           *int32     `json:"usage_limit" binding:"omitempty,gt=0"`
	MinimumPurchaseCents *int64     `json:"minimum_purchase_cents" binding:"omitempty,gte=0"`
	OncePerCustomer      bool       `json:"once_per_customer"`
	CustomerEmail        string     `json:"customer_email" binding:"omitempty,email"`
	CustomerName         string     `json:"customer_name"`
}

func (r *CreateCouponRequest) ToParams() commands.ProvisionParams {
	return commands.ProvisionParams{
		Code:                 r.Code,
		DiscountType:         r.DiscountType,
		DiscountValue:        r.DiscountValue,
		Description:          r.Description,
		ValidFrom:            r.ValidFrom,
		ValidUntil:           r.ValidUntil,
		UsageLimit:           r.UsageLimit,
		MinimumPurchaseCents: r.MinimumPurchaseCents,
		OncePerCustomer:      r.OncePerCustomer,
		CustomerEmail:        r.CustomerEmail,
		CustomerName:         r.CustomerName,
	}
}

type ValidateCouponRequest struct {
	Code string `json:"code" binding:"required"`
}

type RedeemCouponRequest struct {
	Code             string    `json:"code" binding:"required"`
	CustomerID       uuid.UUID `json:"customer_id" binding:"required"`
	OrderRef         *string   `json:"order_ref"`
	OrderAmountCents *int64    `json:"order_amount_cents" binding:"omitempty,gte=0"`
}

type UpdateCouponStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=active expired used cancelled"`
}
