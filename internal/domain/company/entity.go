package company

import (
	"errors"
	"strings"
	"time"

	"shiftboard/internal/domain/user"

	"github.com/google/uuid"
)

var ErrEmptyName = errors.New("company name must not be empty")

type Company struct {
	id        uuid.UUID
	name      string
	email     user.Email
	createdAt time.Time
	updatedAt time.Time
}

func NewCompany(name string, email user.Email) (*Company, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}

	return &Company{
		id:    uuid.New(),
		name:  name,
		email: email,
	}, nil
}

func (c *Company) ID() uuid.UUID        { return c.id }
func (c *Company) Name() string         { return c.name }
func (c *Company) Email() user.Email    { return c.email }
func (c *Company) CreatedAt() time.Time { return c.createdAt }
func (c *Company) UpdatedAt() time.Time { return c.updatedAt }
