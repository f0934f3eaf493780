package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims carries the admin identity inside the session token.
type Claims struct {
	UserID uint   `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// JWTService signs and verifies HS256 session tokens.
type JWTService struct {
	secret     []byte
	expiresIn  time.Duration
}

// DefaultSessionHours matches the session cookie lifetime of seven days.
const DefaultSessionHours = 168

func NewJWTService(secret string, expiresInHours int) *JWTService {
	if expiresInHours <= 0 {
		expiresInHours = DefaultSessionHours
	}
	return &JWTService{
		secret:    []byte(secret),
		expiresIn: time.Duration(expiresInHours) * time.Hour,
	}
}

// Generate signs a session token for the given admin.
func (s *JWTService) Generate(userID uint, email string) (string, error) {
	now := time.Now().UTC()

	claims := &Claims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiresIn)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return signed, nil
}

// Validate parses and verifies a session token.
func (s *JWTService) Validate(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid session token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid session token claims")
	}
	if claims.UserID == 0 {
		return nil, fmt.Errorf("session token missing user identity")
	}
	return claims, nil
}

// ExpiresIn returns the configured token lifetime.
func (s *JWTService) ExpiresIn() time.Duration {
	return s.expiresIn
}
