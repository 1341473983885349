package usecase

import (
	"errors"

	"shiftboard/internal/domain/auth"
	"shiftboard/internal/pkg/jwt"
)

var ErrNoToken = errors.New("no token provided")

// SessionResolver maps a raw token string to the principal embedded in it.
// It is pure token verification: no storage access, safe to call on every
// request. Both the browser-navigation gate and the API middleware share
// this in-process resolver, so a transient upstream failure can never turn
// a validly authenticated user into a redirect.
type SessionResolver interface {
	Resolve(tokenString string) (auth.Principal, error)
}

type sessionResolverImpl struct {
	jwtService *jwt.Service
}

func NewSessionResolver(jwtService *jwt.Service) SessionResolver {
	return &sessionResolverImpl{jwtService: jwtService}
}

func (s *sessionResolverImpl) Resolve(tokenString string) (auth.Principal, error) {
	if tokenString == "" {
		return auth.Principal{}, ErrNoToken
	}

	claims, err := s.jwtService.ValidateToken(tokenString)
	if err != nil {
		return auth.Principal{}, err
	}

	return claims.ToPrincipal()
}
