package readstore

import (
	"context"

	"membership-backoffice/internal/infra"
	"membership-backoffice/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
)

type OrphanReadStore struct {
	pool *pgxpool.Pool
}

func NewOrphanReadStore(pool *pgxpool.Pool) *OrphanReadStore {
	return &OrphanReadStore{pool: pool}
}

func (r *OrphanReadStore) FindAll(ctx context.Context, unresolvedOnly bool) ([]*queries.OrphanView, error) {
	sql := `
		SELECT id, external_rule_id, code, error_message, attempt_count,
		       resolved, resolved_at, created_at
		FROM orphaned_rule_logs`
	if unresolvedOnly {
		sql += ` WHERE NOT resolved`
	}
	sql += ` ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, sql)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list orphaned rules", err)
	}
	defer rows.Close()

	var out []*queries.OrphanView
	for rows.Next() {
		var v queries.OrphanView
		err := rows.Scan(
			&v.ID, &v.ExternalRuleID, &v.Code, &v.ErrorMessage, &v.AttemptCount,
			&v.Resolved, &v.ResolvedAt, &v.CreatedAt,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan orphan row", err)
		}
		out = append(out, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read orphan rows", err)
	}
	return out, nil
}

func (r *OrphanReadStore) CountStats(ctx context.Context) (*queries.OrphanStatsView, error) {
	var stats queries.OrphanStatsView
	err := r.pool.QueryRow(ctx, `
		SELECT count(*),
		       count(*) FILTER (WHERE resolved),
		       count(*) FILTER (WHERE NOT resolved),
		       count(*) FILTER (WHERE created_at >= now() - INTERVAL '7 days')
		FROM orphaned_rule_logs`,
	).Scan(&stats.Total, &stats.Resolved, &stats.Unresolved, &stats.Last7Days)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to count orphan stats", err)
	}
	return &stats, nil
}
