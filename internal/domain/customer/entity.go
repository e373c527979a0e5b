package customer

import (
	"errors"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

var ErrInvalidEmail = errors.New("invalid email address")

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

type Email string

func NewEmail(email string) (Email, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if !emailRegex.MatchString(email) {
		return Email(""), ErrInvalidEmail
	}
	return Email(email), nil
}

func (e Email) String() string {
	return string(e)
}

// Customer owns zero or more coupons. Rows are created lazily, the first
// time a coupon is provisioned for an email we have not seen before.
type Customer struct {
	id    uuid.UUID
	email Email
	name  string
}

func New(id uuid.UUID, email string, name string) (*Customer, error) {
	addr, err := NewEmail(email)
	if err != nil {
		return nil, err
	}
	return &Customer{id: id, email: addr, name: strings.TrimSpace(name)}, nil
}

func (c *Customer) ID() uuid.UUID { return c.id }
func (c *Customer) Email() Email  { return c.email }
func (c *Customer) Name() string  { return c.name }
