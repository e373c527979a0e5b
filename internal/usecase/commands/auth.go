package commands

import (
	"context"

	"membership-backoffice/internal/domain/employee"
	"membership-backoffice/internal/pkg/errs"
	"membership-backoffice/internal/pkg/jwt"
	"membership-backoffice/internal/pkg/password"
	"membership-backoffice/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrEmployeeNotFound     = errs.New("employee not found")
	ErrInvalidCredentials   = errs.New("invalid credentials")
	ErrEmployeeInactive     = errs.New("employee inactive")
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
)

type LoginResult struct {
	EmployeeID  uuid.UUID
	Role        string
	AccessToken string
}

type AuthCommands interface {
	Login(ctx context.Context, email, rawPassword string) (*LoginResult, error)
}

type authCommandsImpl struct {
	readStore  queries.EmployeeReadStore
	jwtService *jwt.Service
}

func NewAuthCommands(readStore queries.EmployeeReadStore, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{
		readStore:  readStore,
		jwtService: jwtService,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, email, rawPassword string) (*LoginResult, error) {
	credentials, err := employee.NewCredentials(email, rawPassword)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	emp, err := a.validateEmployee(ctx, credentials)
	if err != nil {
		return nil, err
	}

	role, err := employee.NewRole(emp.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	token, err := a.jwtService.GenerateToken(emp.ID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &LoginResult{
		EmployeeID:  emp.ID,
		Role:        emp.Role,
		AccessToken: token,
	}, nil
}

func (a *authCommandsImpl) validateEmployee(ctx context.Context, credentials employee.Credentials) (*queries.EmployeeView, error) {
	emp, hashedPassword, err := a.readStore.FindByEmail(ctx, credentials.Email().String())
	if err != nil {
		// Same error as a password mismatch to prevent account enumeration
		return nil, ErrInvalidCredentials
	}

	if emp == nil {
		return nil, ErrEmployeeNotFound
	}

	if !emp.IsActive {
		return nil, ErrEmployeeInactive
	}

	if err := password.Compare(hashedPassword, credentials.Password().Value()); err != nil {
		return nil, ErrInvalidCredentials
	}

	return emp, nil
}
