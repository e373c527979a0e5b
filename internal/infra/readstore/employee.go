package readstore

import (
	"context"

	"membership-backoffice/internal/infra"
	"membership-backoffice/internal/pkg/pgconv"
	"membership-backoffice/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type EmployeeReadStore struct {
	pool *pgxpool.Pool
}

func NewEmployeeReadStore(pool *pgxpool.Pool) *EmployeeReadStore {
	return &EmployeeReadStore{pool: pool}
}

func (r *EmployeeReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.EmployeeView, error) {
	var v queries.EmployeeView
	err := r.pool.QueryRow(ctx, `
		SELECT id, email, role, is_active FROM employees WHERE id = $1`, id,
	).Scan(&v.ID, &v.Email, &v.Role, &v.IsActive)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("employee not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find employee by ID", err)
	}
	return &v, nil
}

func (r *EmployeeReadStore) FindByEmail(ctx context.Context, email string) (*queries.EmployeeView, string, error) {
	var (
		v    queries.EmployeeView
		hash string
	)
	err := r.pool.QueryRow(ctx, `
		SELECT id, email, role, is_active, password_hash
		FROM employees WHERE email = $1`, email,
	).Scan(&v.ID, &v.Email, &v.Role, &v.IsActive, &hash)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, "", infra.WrapRepoErr("employee not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find employee by email", err)
	}
	return &v, hash, nil
}
