package commands

import (
	"context"
	"time"

	"membership-backoffice/internal/infra/commerce"

	"github.com/google/uuid"
)

// CouponSnapshot is the persisted shape of a coupon row.
type CouponSnapshot struct {
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
	Notified             bool
	NotifiedAt           *time.Time
	CustomerID           *uuid.UUID
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// NewCoupon is the insert payload written at provisioning success time.
type NewCoupon struct {
	Code                 string
	DiscountType         string
	DiscountValue        float64
	Description          string
	ValidFrom            time.Time
	ValidUntil           *time.Time
	UsageLimit           *int32
	MinimumPurchaseCents *int64
	ExternalRuleID       int64
	ExternalCodeID       int64
}

type CustomerInfo struct {
	Email string
	Name  string
}

type RedemptionRecord struct {
	CouponID             uuid.UUID
	CustomerID           uuid.UUID
	OrderRef             *string
	OrderAmountCents     *int64
	DiscountAppliedCents int64
	UsedAt               time.Time
}

type CouponUseSnapshot struct {
	ID                   uuid.UUID
	CouponID             uuid.UUID
	CustomerID           uuid.UUID
	OrderRef             *string
	OrderAmountCents     *int64
	DiscountAppliedCents int64
	UsedAt               time.Time
	NewUsageCount        int32
	NowUsed              bool
}

type OrphanEntry struct {
	ExternalRuleID int64
	Code           string
	ErrorMessage   string
	RawResponse    string
	AttemptCount   int32
}

type OrphanLogSnapshot struct {
	ID             uuid.UUID
	ExternalRuleID int64
	Code           string
	ErrorMessage   string
	RawResponse    string
	AttemptCount   int32
	Resolved       bool
	ResolvedAt     *time.Time
	CreatedAt      time.Time
}

// CouponRepository is the durable coupon store. Multi-statement operations
// run inside a single transaction on the implementation side.
type CouponRepository interface {
	// CreateWithCustomer finds or creates the customer by email, then
	// upserts the coupon row; both succeed or both roll back. A nil info
	// leaves the coupon unowned.
	CreateWithCustomer(ctx context.Context, info *CustomerInfo, c NewCoupon) (*CouponSnapshot, error)
	FindByCode(ctx context.Context, code string) (*CouponSnapshot, error)
	FindByID(ctx context.Context, id uuid.UUID) (*CouponSnapshot, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
	// RecordRedemption atomically consumes one use and appends the
	// CouponUse row. Returns a CONFLICT repository error when the usage
	// cap is already reached.
	RecordRedemption(ctx context.Context, rec RedemptionRecord) (*CouponUseSnapshot, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type OrphanLogRepository interface {
	Record(ctx context.Context, entry OrphanEntry) (*OrphanLogSnapshot, error)
	FindByCode(ctx context.Context, code string) ([]OrphanLogSnapshot, error)
	FindUnresolved(ctx context.Context) ([]OrphanLogSnapshot, error)
	MarkResolved(ctx context.Context, id uuid.UUID, at time.Time) error
}

// CommerceGateway is the external resource client surface the commands use.
type CommerceGateway interface {
	CreateRule(ctx context.Context, spec commerce.RuleSpec) (*commerce.Rule, error)
	FindRuleByTitle(ctx context.Context, title string) (*commerce.Rule, error)
	CreateCode(ctx context.Context, ruleID int64, code string) (*commerce.DiscountCode, error)
	LookupCode(ctx context.Context, code string) (*commerce.CodeLookup, error)
	DeleteRule(ctx context.Context, ruleID int64) error
}
