package employee

import (
	"errors"
	"strings"
)

var (
	ErrInvalidRole     = errors.New("invalid employee role")
	ErrInvalidEmail    = errors.New("invalid email address")
	ErrInvalidPassword = errors.New("password must be at least 8 characters")
)

type Role string

const (
	RoleViewer   Role = "viewer"
	RoleOperator Role = "operator"
	RoleAdmin    Role = "admin"
)

func NewRole(s string) (Role, error) {
	switch Role(s) {
	case RoleViewer, RoleOperator, RoleAdmin:
		return Role(s), nil
	}
	return "", ErrInvalidRole
}

func (r Role) String() string {
	return string(r)
}

type Email string

func NewEmail(email string) (Email, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || !strings.Contains(email, "@") {
		return Email(""), ErrInvalidEmail
	}
	return Email(email), nil
}

func (e Email) String() string {
	return string(e)
}

type Password string

func NewPassword(raw string) (Password, error) {
	if len(raw) < 8 {
		return Password(""), ErrInvalidPassword
	}
	return Password(raw), nil
}

func (p Password) Value() string {
	return string(p)
}

// Credentials are the login inputs for a back-office employee.
type Credentials struct {
	email    Email
	password Password
}

func NewCredentials(email, password string) (Credentials, error) {
	addr, err := NewEmail(email)
	if err != nil {
		return Credentials{}, err
	}
	pw, err := NewPassword(password)
	if err != nil {
		return Credentials{}, err
	}
	return Credentials{email: addr, password: pw}, nil
}

func (c Credentials) Email() Email       { return c.email }
func (c Credentials) Password() Password { return c.password }
