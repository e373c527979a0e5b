package request

import (
	"membership-backoffice/internal/domain/employee"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

func (r *LoginRequest) ToDomain() (employee.Credentials, error) {
	return employee.NewCredentials(r.Email, r.Password)
}
