package jwt

import (
	"errors"
	"time"

	"shiftboard/internal/domain/auth"
	"shiftboard/internal/domain/user"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrMalformedToken   = errors.New("malformed token")
	ErrInvalidSignature = errors.New("invalid token signature")
	ErrExpiredToken     = errors.New("token expired")
)

// Claims carries the full principal so that no storage lookup is needed to
// authorize a request. Name and CompanyName can therefore go stale relative
// to the database until the next login.
type Claims struct {
	UserID      uuid.UUID `json:"user_id"`
	Email       string    `json:"email"`
	Name        string    `json:"name"`
	Role        string    `json:"role"`
	CompanyID   uuid.UUID `json:"company_id"`
	CompanyName string    `json:"company_name"`
	jwt.RegisteredClaims
}

type Service struct {
	secretKey     []byte
	tokenDuration time.Duration
}

func NewService(secretKey string, tokenDuration time.Duration) *Service {
	return &Service{
		secretKey:     []byte(secretKey),
		tokenDuration: tokenDuration,
	}
}

func (s *Service) TokenDuration() time.Duration {
	return s.tokenDuration
}

func (s *Service) GenerateToken(p auth.Principal) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:      p.UserID,
		Email:       p.Email,
		Name:        p.Name,
		Role:        p.Role.String(),
		CompanyID:   p.CompanyID,
		CompanyName: p.CompanyName,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenDuration)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secretKey)
}

func (s *Service) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidSignature
		}
		return s.secretKey, nil
	})

	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrExpiredToken
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, ErrInvalidSignature
		default:
			return nil, ErrMalformedToken
		}
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrMalformedToken
	}

	return claims, nil
}

// ToPrincipal rebuilds the principal exactly as it was embedded at issuance.
func (c *Claims) ToPrincipal() (auth.Principal, error) {
	role, err := user.NewRole(c.Role)
	if err != nil {
		return auth.Principal{}, err
	}

	return auth.Principal{
		UserID:      c.UserID,
		Email:       c.Email,
		Name:        c.Name,
		Role:        role,
		CompanyID:   c.CompanyID,
		CompanyName: c.CompanyName,
	}, nil
}
