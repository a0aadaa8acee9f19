package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AuthService is the soft login gate: one fixed username/password pair
// compared in plain text, exchanged for a signed session token. There is no
// lockout and no hashing; this is not a security boundary.
type AuthService struct {
	username string
	password string
	secret   []byte
	ttl      time.Duration
	clock    func() time.Time
}

func NewAuthService(username, password string, secret []byte, ttl time.Duration) *AuthService {
	return &AuthService{
		username: username,
		password: password,
		secret:   secret,
		ttl:      ttl,
		clock:    time.Now,
	}
}

func (s *AuthService) Login(username, password string) (string, error) {
	if username != s.username || password != s.password {
		return "", ErrUnauthorized
	}

	now := s.clock()
	claims := jwt.RegisteredClaims{
		Subject:   username,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

func (s *AuthService) VerifySession(token string) error {
	parsed, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrUnauthorized
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return ErrUnauthorized
	}
	return nil
}
