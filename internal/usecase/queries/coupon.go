package queries

import (
	"context"
	"time"

	"membership-backoffice/internal/infra"
	"membership-backoffice/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrCouponNotFound = errs.New("coupon not found")

type CouponListFilter struct {
	Status     *string
	CustomerID *uuid.UUID
}

type CouponQueries interface {
	GetByCode(ctx context.Context, code string) (*CouponView, error)
	List(ctx context.Context, filter CouponListFilter, after *Cursor, limit int) ([]*CouponListItem, *Cursor, error)
	ListUses(ctx context.Context, code string) ([]*CouponUseView, error)
}

type CouponReadStore interface {
	FindByCode(ctx context.Context, code string) (*CouponView, error)
	FindPage(ctx context.Context, filter CouponListFilter, afterCreated time.Time, afterID uuid.UUID, limit int32) ([]*CouponListItem, error)
	FindFirstPage(ctx context.Context, filter CouponListFilter, limit int32) ([]*CouponListItem, error)
	FindUsesByCode(ctx context.Context, code string) ([]*CouponUseView, error)
}

type couponQueriesImpl struct {
	readStore CouponReadStore
}

func NewCouponQueries(readStore CouponReadStore) CouponQueries {
	return &couponQueriesImpl{readStore: readStore}
}

func (q *couponQueriesImpl) GetByCode(ctx context.Context, code string) (*CouponView, error) {
	view, err := q.readStore.FindByCode(ctx, code)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCouponNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *couponQueriesImpl) List(ctx context.Context, filter CouponListFilter, after *Cursor, limit int) ([]*CouponListItem, *Cursor, error) {
	limit = ValidateLimit(limit)

	// Fetch one extra row to know whether a next page exists.
	var (
		rows []*CouponListItem
		err  error
	)
	if after != nil && after.After != "" {
		createdAt, id, decodeErr := DecodeAfterCursor(after.After)
		if decodeErr != nil {
			return nil, nil, errs.Wrap(decodeErr, "invalid pagination cursor")
		}
		rows, err = q.readStore.FindPage(ctx, filter, createdAt, id, int32(limit+1))
	} else {
		rows, err = q.readStore.FindFirstPage(ctx, filter, int32(limit+1))
	}
	if err != nil {
		return nil, nil, err
	}

	var next *Cursor
	if len(rows) > limit {
		rows = rows[:limit]
		last := rows[len(rows)-1]
		next = &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}
	}
	return rows, next, nil
}

func (q *couponQueriesImpl) ListUses(ctx context.Context, code string) ([]*CouponUseView, error) {
	uses, err := q.readStore.FindUsesByCode(ctx, code)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCouponNotFound
		}
		return nil, err
	}
	return uses, nil
}
