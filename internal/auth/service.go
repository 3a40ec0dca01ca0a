// Package auth issues and verifies the admin session token. A single admin
// principal, no scopes, no server-side session state: a token cannot be
// revoked before it expires.
package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"hoteladmin/pkg/config"
	apperrors "hoteladmin/pkg/errors"
	"hoteladmin/pkg/logger"
)

type Service struct {
	username     string
	passwordHash []byte
	secret       []byte
	tokenTTL     time.Duration
	log          *logger.Logger
}

func NewService(cfg *config.Config) *Service {
	return &Service{
		username:     cfg.AdminUsername,
		passwordHash: []byte(cfg.AdminPasswordHash),
		secret:       []byte(cfg.JWTSecret),
		tokenTTL:     cfg.AdminTokenTTL,
		log:          cfg.Log,
	}
}

// Login verifies the credentials and issues a signed token carrying the admin
// identity. Failed attempts are not throttled or counted.
func (s *Service) Login(username, password string) (string, error) {
	if username != s.username {
		return "", apperrors.Unauthorized("Invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)); err != nil {
		return "", apperrors.Unauthorized("Invalid credentials")
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   s.username,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
	})

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", apperrors.Internal("Failed to sign token", err)
	}

	s.log.Info("Admin login succeeded", "username", username)
	return signed, nil
}

// VerifyToken checks signature, expiry, and subject, returning the admin
// identity the token was issued for.
func (s *Service) VerifyToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return "", apperrors.Unauthorized("Invalid or expired token")
	}

	subject, err := token.Claims.GetSubject()
	if err != nil || subject != s.username {
		return "", apperrors.Unauthorized("Invalid token subject")
	}

	return subject, nil
}
