package repository

import (
	"context"
	"time"

	"membership-backoffice/internal/infra"
	"membership-backoffice/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const orphanColumns = `id, external_rule_id, code, error_message, raw_response,
	attempt_count, resolved, resolved_at, created_at`

type OrphanLogRepository struct {
	pool *pgxpool.Pool
}

func NewOrphanLogRepository(pool *pgxpool.Pool) *OrphanLogRepository {
	return &OrphanLogRepository{pool: pool}
}

func (r *OrphanLogRepository) Record(ctx context.Context, entry commands.OrphanEntry) (*commands.OrphanLogSnapshot, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO orphaned_rule_logs (
			external_rule_id, code, error_message, raw_response, attempt_count
		) VALUES ($1, $2, $3, $4, $5)
		RETURNING `+orphanColumns,
		entry.ExternalRuleID, entry.Code, entry.ErrorMessage, entry.RawResponse, entry.AttemptCount,
	)
	snap, err := scanOrphan(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to record orphaned rule", err)
	}
	return snap, nil
}

func (r *OrphanLogRepository) FindByCode(ctx context.Context, code string) ([]commands.OrphanLogSnapshot, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+orphanColumns+` FROM orphaned_rule_logs WHERE code = $1 ORDER BY created_at DESC`, code)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query orphan log by code", err)
	}
	return collectOrphans(rows)
}

func (r *OrphanLogRepository) FindUnresolved(ctx context.Context) ([]commands.OrphanLogSnapshot, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+orphanColumns+` FROM orphaned_rule_logs WHERE NOT resolved ORDER BY created_at`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query unresolved orphans", err)
	}
	return collectOrphans(rows)
}

func (r *OrphanLogRepository) MarkResolved(ctx context.Context, id uuid.UUID, at time.Time) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE orphaned_rule_logs SET resolved = TRUE, resolved_at = $2
		WHERE id = $1 AND NOT resolved`, id, at)
	if err != nil {
		return infra.WrapRepoErr("failed to mark orphan resolved", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("orphan log entry not found or already resolved", nil, infra.KindNotFound)
	}
	return nil
}

func scanOrphan(row pgx.Row) (*commands.OrphanLogSnapshot, error) {
	var s commands.OrphanLogSnapshot
	err := row.Scan(
		&s.ID, &s.ExternalRuleID, &s.Code, &s.ErrorMessage, &s.RawResponse,
		&s.AttemptCount, &s.Resolved, &s.ResolvedAt, &s.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func collectOrphans(rows pgx.Rows) ([]commands.OrphanLogSnapshot, error) {
	defer rows.Close()
	var out []commands.OrphanLogSnapshot
	for rows.Next() {
		snap, err := scanOrphan(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan orphan row", err)
		}
		out = append(out, *snap)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read orphan rows", err)
	}
	return out, nil
}
