package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/monocle-dev/taskboard/internal/types"
)

const bearerPrefix = "Bearer "

type Claims struct {
	jwt.RegisteredClaims
}

type Signer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewSigner(secret string, ttl time.Duration) (*Signer, error) {
	if secret == "" {
		return nil, fmt.Errorf("JWT secret must not be empty")
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("JWT ttl must be positive, got %s", ttl)
	}
	return &Signer{secret: []byte(secret), ttl: ttl, now: time.Now}, nil
}

// GenerateJWT issues an HS256 token whose subject is the user id.
func (s *Signer) GenerateJWT(userID uuid.UUID) (string, error) {
	now := s.now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// VerifyJWT checks signature and expiry and returns the subject user id.
// Every failure wraps types.ErrInvalidToken.
func (s *Signer) VerifyJWT(tokenString string) (uuid.UUID, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)

	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %w", types.ErrInvalidToken, err)
	}

	if !token.Valid {
		return uuid.Nil, types.ErrInvalidToken
	}

	userID, err := uuid.Parse(claims.Subject)

	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: bad subject: %v", types.ErrInvalidToken, err)
	}

	return userID, nil
}

// BearerToken strips the "Bearer " prefix from an Authorization header value.
func BearerToken(header string) (string, error) {
	token := strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix))

	if token == "" {
		return "", types.ErrUnauthenticated
	}

	return token, nil
}

// IsExpired reports whether err came from an expired token.
func IsExpired(err error) bool {
	return errors.Is(err, jwt.ErrTokenExpired)
}
