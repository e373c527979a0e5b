package repository

import (
	"context"

	"membership-backoffice/internal/infra"
	"membership-backoffice/internal/pkg/pgconv"
	"membership-backoffice/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const couponColumns = `id, code, discount_type, discount_value, description,
	valid_from, valid_until, usage_limit, usage_count, minimum_purchase_cents,
	external_rule_id, external_code_id, status, notified, notified_at,
	customer_id, created_at, updated_at`

type CouponRepository struct {
	pool *pgxpool.Pool
}

func NewCouponRepository(pool *pgxpool.Pool) *CouponRepository {
	return &CouponRepository{pool: pool}
}

// CreateWithCustomer upserts the customer by email and the coupon by code in
// one transaction. Re-provisioning an existing code refreshes the external
// references instead of failing on the unique constraint.
func (r *CouponRepository) CreateWithCustomer(ctx context.Context, info *commands.CustomerInfo, c commands.NewCoupon) (*commands.CouponSnapshot, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to begin transaction", err)
	}
	defer tx.Rollback(ctx)

	var customerID *uuid.UUID
	if info != nil {
		id, err := upsertCustomer(ctx, tx, info.Email, info.Name)
		if err != nil {
			return nil, err
		}
		customerID = &id
	}

	row := tx.QueryRow(ctx, `
		INSERT INTO coupons (
			code, discount_type, discount_value, description,
			valid_from, valid_until, usage_limit, minimum_purchase_cents,
			external_rule_id, external_code_id, status, customer_id
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, 'active', $11)
		ON CONFLICT (code) DO UPDATE SET
			external_rule_id = EXCLUDED.external_rule_id,
			external_code_id = EXCLUDED.external_code_id,
			updated_at       = now()
		RETURNING `+couponColumns,
		c.Code, c.DiscountType, c.DiscountValue, c.Description,
		c.ValidFrom, c.ValidUntil, c.UsageLimit, c.MinimumPurchaseCents,
		c.ExternalRuleID, c.ExternalCodeID, customerID,
	)
	snap, err := scanCoupon(row)
	if err != nil {
		if pgconv.IsForeignKeyViolation(err) {
			return nil, infra.WrapRepoErr("customer does not exist", err, infra.KindForeignKeyViolated)
		}
		return nil, infra.WrapRepoErr("failed to insert coupon", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, infra.WrapRepoErr("failed to commit transaction", err)
	}
	return snap, nil
}

func (r *CouponRepository) FindByCode(ctx context.Context, code string) (*commands.CouponSnapshot, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+couponColumns+` FROM coupons WHERE code = $1`, code)
	snap, err := scanCoupon(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("coupon not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find coupon by code", err)
	}
	return snap, nil
}

func (r *CouponRepository) FindByID(ctx context.Context, id uuid.UUID) (*commands.CouponSnapshot, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+couponColumns+` FROM coupons WHERE id = $1`, id)
	snap, err := scanCoupon(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("coupon not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find coupon by id", err)
	}
	return snap, nil
}

func (r *CouponRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE coupons SET status = $2, updated_at = now() WHERE id = $1`, id, status)
	if err != nil {
		return infra.WrapRepoErr("failed to update coupon status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("coupon not found", nil, infra.KindNotFound)
	}
	return nil
}

// RecordRedemption locks the coupon row, re-checks the cap under the lock,
// bumps the counter and appends the usage row. Two concurrent redemptions of
// the last remaining use serialize on the row lock; the loser sees the cap
// reached and gets a CONFLICT error.
func (r *CouponRepository) RecordRedemption(ctx context.Context, rec commands.RedemptionRecord) (*commands.CouponUseSnapshot, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to begin transaction", err)
	}
	defer tx.Rollback(ctx)

	var (
		usageCount int32
		usageLimit *int32
		status     string
	)
	err = tx.QueryRow(ctx, `
		SELECT usage_count, usage_limit, status
		FROM coupons WHERE id = $1 FOR UPDATE`, rec.CouponID,
	).Scan(&usageCount, &usageLimit, &status)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("coupon not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock coupon row", err)
	}

	if status != "active" || (usageLimit != nil && usageCount >= *usageLimit) {
		return nil, infra.WrapRepoErr("coupon usage limit reached", nil, infra.KindConflict)
	}

	newCount := usageCount + 1
	nowUsed := usageLimit != nil && newCount >= *usageLimit
	newStatus := status
	if nowUsed {
		newStatus = "used"
	}

	_, err = tx.Exec(ctx, `
		UPDATE coupons SET usage_count = $2, status = $3, updated_at = now()
		WHERE id = $1`, rec.CouponID, newCount, newStatus)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to bump usage count", err)
	}

	use := &commands.CouponUseSnapshot{
		CouponID:             rec.CouponID,
		CustomerID:           rec.CustomerID,
		OrderRef:             rec.OrderRef,
		OrderAmountCents:     rec.OrderAmountCents,
		DiscountAppliedCents: rec.DiscountAppliedCents,
		UsedAt:               rec.UsedAt,
		NewUsageCount:        newCount,
		NowUsed:              nowUsed,
	}
	err = tx.QueryRow(ctx, `
		INSERT INTO coupon_uses (
			coupon_id, customer_id, order_ref, order_amount_cents,
			discount_applied_cents, used_at
		) VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`,
		rec.CouponID, rec.CustomerID, rec.OrderRef, rec.OrderAmountCents,
		rec.DiscountAppliedCents, rec.UsedAt,
	).Scan(&use.ID)
	if err != nil {
		if pgconv.IsForeignKeyViolation(err) {
			return nil, infra.WrapRepoErr("customer does not exist", err, infra.KindForeignKeyViolated)
		}
		return nil, infra.WrapRepoErr("failed to insert coupon use", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, infra.WrapRepoErr("failed to commit redemption", err)
	}
	return use, nil
}

func (r *CouponRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM coupons WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete coupon", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("coupon not found", nil, infra.KindNotFound)
	}
	return nil
}

func upsertCustomer(ctx context.Context, tx pgx.Tx, email, name string) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, `
		INSERT INTO customers (email, name)
		VALUES ($1, $2)
		ON CONFLICT (email) DO UPDATE SET
			name       = CASE WHEN EXCLUDED.name <> '' THEN EXCLUDED.name ELSE customers.name END,
			updated_at = now()
		RETURNING id`, email, name,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to upsert customer", err)
	}
	return id, nil
}

func scanCoupon(row pgx.Row) (*commands.CouponSnapshot, error) {
	var s commands.CouponSnapshot
	err := row.Scan(
		&s.ID, &s.Code, &s.DiscountType, &s.DiscountValue, &s.Description,
		&s.ValidFrom, &s.ValidUntil, &s.UsageLimit, &s.UsageCount, &s.MinimumPurchaseCents,
		&s.ExternalRuleID, &s.ExternalCodeID, &s.Status, &s.Notified, &s.NotifiedAt,
		&s.CustomerID, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
