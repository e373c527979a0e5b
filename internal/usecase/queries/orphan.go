package queries

import (
	"context"
)

type OrphanListFilter struct {
	UnresolvedOnly bool
}

type OrphanQueries interface {
	List(ctx context.Context, filter OrphanListFilter) ([]*OrphanView, error)
	Stats(ctx context.Context) (*OrphanStatsView, error)
}

type OrphanReadStore interface {
	FindAll(ctx context.Context, unresolvedOnly bool) ([]*OrphanView, error)
	CountStats(ctx context.Context) (*OrphanStatsView, error)
}

type orphanQueriesImpl struct {
	readStore OrphanReadStore
}

func NewOrphanQueries(readStore OrphanReadStore) OrphanQueries {
	return &orphanQueriesImpl{readStore: readStore}
}

func (q *orphanQueriesImpl) List(ctx context.Context, filter OrphanListFilter) ([]*OrphanView, error) {
	return q.readStore.FindAll(ctx, filter.UnresolvedOnly)
}

func (q *orphanQueriesImpl) Stats(ctx context.Context) (*OrphanStatsView, error) {
	return q.readStore.CountStats(ctx)
}
