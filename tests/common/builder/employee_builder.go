//go:build unit || e2e

package builder

import (
	"membership-backoffice/internal/usecase/queries"

	"github.com/google/uuid"
)

type EmployeeBuilder struct {
	ID       uuid.UUID
	Email    string
	Role     string
	IsActive bool
}

func NewEmployeeBuilder() *EmployeeBuilder {
	return &EmployeeBuilder{
		ID:       uuid.New(),
		Email:    "operator@example.com",
		Role:     "operator",
		IsActive: true,
	}
}

func (e *EmployeeBuilder) With(mutate func(*EmployeeBuilder)) *EmployeeBuilder {
	mutate(e)
	return e
}

func (e *EmployeeBuilder) BuildViewQuery() *queries.EmployeeView {
	return &queries.EmployeeView{
		ID:       e.ID,
		Email:    e.Email,
		Role:     e.Role,
		IsActive: e.IsActive,
	}
}
