package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/exp/slog"
)

type Servicer interface {
	Issue(userID int64) (string, error)
	Verify(token string) (int64, error)
}

// Claims bind a user id to the standard time-bounded claims.
type Claims struct {
	jwt.RegisteredClaims
	UserID int64 `json:"uid"`
}

// Service issues and verifies stateless bearer tokens. The signing
// secret and validity window are injected at construction; there is no
// server-side session state and no revocation list.
type Service struct {
	secret []byte
	ttl    time.Duration
	log    *slog.Logger
}

func NewService(secret []byte, ttl time.Duration, log *slog.Logger) *Service {
	return &Service{
		secret: secret,
		ttl:    ttl,
		log:    log.With(slog.String("component", "session")),
	}
}

func (s *Service) Issue(userID int64) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
		UserID: userID,
	})

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return signed, nil
}

// Verify checks signature integrity and expiry and returns the embedded
// user id. The returned sentinels distinguish causes for logging; the
// HTTP boundary collapses them all into a single 401.
func (s *Service) Verify(tokenString string) (int64, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		// jwt/v5 joins validation errors, so check the signature first: a
		// tampered token must never be classified as merely expired.
		switch {
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return 0, fmt.Errorf("%w: %v", ErrTokenInvalid, err)
		case errors.Is(err, jwt.ErrTokenExpired):
			return 0, ErrTokenExpired
		}
		return 0, fmt.Errorf("%w: %v", ErrTokenInvalid, err)
	}

	if !token.Valid || claims.UserID <= 0 {
		return 0, ErrTokenInvalid
	}

	return claims.UserID, nil
}
