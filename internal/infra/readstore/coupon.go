package readstore

import (
	"context"
	"strconv"
	"time"

	"membership-backoffice/internal/infra"
	"membership-backoffice/internal/pkg/pgconv"
	"membership-backoffice/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jinzhu/copier"
)

// couponRow mirrors the read query projection; copier maps it onto the
// view by field name.
type couponRow struct {
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
	CustomerID           *uuid.UUID
	CustomerEmail        *string
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

type CouponReadStore struct {
	pool *pgxpool.Pool
}

func NewCouponReadStore(pool *pgxpool.Pool) *CouponReadStore {
	return &CouponReadStore{pool: pool}
}

func (r *CouponReadStore) FindByCode(ctx context.Context, code string) (*queries.CouponView, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT c.id, c.code, c.discount_type, c.discount_value, c.description,
		       c.valid_from, c.valid_until, c.usage_limit, c.usage_count,
		       c.minimum_purchase_cents, c.external_rule_id, c.external_code_id,
		       c.status, c.customer_id, cu.email, c.created_at, c.updated_at
		FROM coupons c
		LEFT JOIN customers cu ON cu.id = c.customer_id
		WHERE c.code = $1`, code)

	var cr couponRow
	err := row.Scan(
		&cr.ID, &cr.Code, &cr.DiscountType, &cr.DiscountValue, &cr.Description,
		&cr.ValidFrom, &cr.ValidUntil, &cr.UsageLimit, &cr.UsageCount,
		&cr.MinimumPurchaseCents, &cr.ExternalRuleID, &cr.ExternalCodeID,
		&cr.Status, &cr.CustomerID, &cr.CustomerEmail, &cr.CreatedAt, &cr.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("coupon not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find coupon by code", err)
	}

	var view queries.CouponView
	if err := copier.Copy(&view, &cr); err != nil {
		return nil, infra.WrapRepoErr("failed to map coupon view", err)
	}
	return &view, nil
}

func (r *CouponReadStore) FindFirstPage(ctx context.Context, filter queries.CouponListFilter, limit int32) ([]*queries.CouponListItem, error) {
	sql, args := listQuery(filter, nil, nil, limit)
	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list coupons", err)
	}
	return collectListItems(rows)
}

func (r *CouponReadStore) FindPage(ctx context.Context, filter queries.CouponListFilter, afterCreated time.Time, afterID uuid.UUID, limit int32) ([]*queries.CouponListItem, error) {
	sql, args := listQuery(filter, &afterCreated, &afterID, limit)
	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list coupons", err)
	}
	return collectListItems(rows)
}

func (r *CouponReadStore) FindUsesByCode(ctx context.Context, code string) ([]*queries.CouponUseView, error) {
	var couponID uuid.UUID
	err := r.pool.QueryRow(ctx, `SELECT id FROM coupons WHERE code = $1`, code).Scan(&couponID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("coupon not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to resolve coupon code", err)
	}

	rows, err := r.pool.Query(ctx, `
		SELECT u.id, u.coupon_id, u.customer_id, cu.email, u.order_ref,
		       u.order_amount_cents, u.discount_applied_cents, u.used_at
		FROM coupon_uses u
		JOIN customers cu ON cu.id = u.customer_id
		WHERE u.coupon_id = $1
		ORDER BY u.used_at DESC`, couponID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list coupon uses", err)
	}
	defer rows.Close()

	var out []*queries.CouponUseView
	for rows.Next() {
		var v queries.CouponUseView
		err := rows.Scan(
			&v.ID, &v.CouponID, &v.CustomerID, &v.CustomerEmail, &v.OrderRef,
			&v.OrderAmountCents, &v.DiscountAppliedCents, &v.UsedAt,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan coupon use", err)
		}
		out = append(out, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read coupon uses", err)
	}
	return out, nil
}

// listQuery builds the keyset-paginated list statement. Tuple comparison on
// (created_at, id) keeps the order stable across equal timestamps.
func listQuery(filter queries.CouponListFilter, afterCreated *time.Time, afterID *uuid.UUID, limit int32) (string, []any) {
	sql := `
		SELECT id, code, discount_type, discount_value, status,
		       usage_count, usage_limit, valid_until, created_at
		FROM coupons
		WHERE TRUE`
	var args []any

	if filter.Status != nil {
		args = append(args, *filter.Status)
		sql += ` AND status = $` + strconv.Itoa(len(args))
	}
	if filter.CustomerID != nil {
		args = append(args, *filter.CustomerID)
		sql += ` AND customer_id = $` + strconv.Itoa(len(args))
	}
	if afterCreated != nil && afterID != nil {
		args = append(args, *afterCreated, *afterID)
		sql += ` AND (created_at, id) < ($` + strconv.Itoa(len(args)-1) + `, $` + strconv.Itoa(len(args)) + `)`
	}

	args = append(args, limit)
	sql += ` ORDER BY created_at DESC, id DESC LIMIT $` + strconv.Itoa(len(args))
	return sql, args
}

func collectListItems(rows pgx.Rows) ([]*queries.CouponListItem, error) {
	defer rows.Close()
	var out []*queries.CouponListItem
	for rows.Next() {
		var item queries.CouponListItem
		err := rows.Scan(
			&item.ID, &item.Code, &item.DiscountType, &item.DiscountValue,
			&item.Status, &item.UsageCount, &item.UsageLimit, &item.ValidUntil,
			&item.CreatedAt,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan coupon row", err)
		}
		out = append(out, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read coupon rows", err)
	}
	return out, nil
}
