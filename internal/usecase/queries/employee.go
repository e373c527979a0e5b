package queries

import (
	"context"

	"membership-backoffice/internal/infra"
	"membership-backoffice/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrEmployeeNotFound = errs.New("employee not found")
	ErrEmployeeInactive = errs.New("employee inactive")
)

type EmployeeQueries interface {
	GetCurrentEmployee(ctx context.Context, employeeID uuid.UUID) (*EmployeeView, error)
}

type EmployeeReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*EmployeeView, error)
	FindByEmail(ctx context.Context, email string) (*EmployeeView, string, error)
}

type employeeQueriesImpl struct {
	readStore EmployeeReadStore
}

func NewEmployeeQueries(readStore EmployeeReadStore) EmployeeQueries {
	return &employeeQueriesImpl{
		readStore: readStore,
	}
}

func (q *employeeQueriesImpl) GetCurrentEmployee(ctx context.Context, employeeID uuid.UUID) (*EmployeeView, error) {
	emp, err := q.readStore.FindByID(ctx, employeeID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrEmployeeNotFound
		}
		return nil, err
	}

	if !emp.IsActive {
		return nil, ErrEmployeeInactive
	}

	return emp, nil
}
