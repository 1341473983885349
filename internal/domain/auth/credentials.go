package auth

import (
	"errors"

	"shiftboard/internal/domain/user"
)

// ErrInvalidCredentials covers both unknown email and wrong password so the
// login surface cannot be used to enumerate accounts.
var ErrInvalidCredentials = errors.New("invalid email or password")

// Credentials is a validated login attempt. Construction rejects anything
// that could never authenticate (bad email shape, short password) before the
// storage layer is touched.
type Credentials struct {
	email    user.Email
	password user.Password
}

func NewCredentials(email, password string) (Credentials, error) {
	e, err := user.NewEmail(email)
	if err != nil {
		return Credentials{}, err
	}

	p, err := user.NewPassword(password)
	if err != nil {
		return Credentials{}, err
	}

	return Credentials{email: e, password: p}, nil
}

func (c Credentials) Email() user.Email {
	return c.email
}

func (c Credentials) Password() user.Password {
	return c.password
}
