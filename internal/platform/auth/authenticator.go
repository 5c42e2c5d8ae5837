// Package auth implements the single-admin login and the bearer contract that protects the
// admin API: HS256 tokens whose subject is the admin login.
package auth

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/murkotick/showcase-catalog-service/internal/pkg/clock"
)

const TokenType = "bearer"

var (
	// ErrInvalidCredentials is returned for any login/password mismatch.
	ErrInvalidCredentials = errors.New("invalid login or password")

	// ErrInvalidToken covers malformed, expired and foreign tokens alike.
	ErrInvalidToken = errors.New("invalid or expired token")
)

// Options configures an Authenticator.
type Options struct {
	AdminLogin        string
	AdminPassword     string
	AdminPasswordHash string
	Secret            string
	TokenTTL          time.Duration
}

type Authenticator struct {
	login        string
	password     string
	passwordHash string
	secret       []byte
	ttl          time.Duration
	clock        clock.Clock
}

func NewAuthenticator(opts Options, clk clock.Clock) *Authenticator {
	if clk == nil {
		clk = clock.RealClock{}
	}
	ttl := opts.TokenTTL
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &Authenticator{
		login:        opts.AdminLogin,
		password:     opts.AdminPassword,
		passwordHash: strings.TrimSpace(opts.AdminPasswordHash),
		secret:       []byte(opts.Secret),
		ttl:          ttl,
		clock:        clk,
	}
}

// Login checks the credentials and issues a token for the admin login.
func (a *Authenticator) Login(login, password string) (string, error) {
	if subtle.ConstantTimeCompare([]byte(login), []byte(a.login)) != 1 {
		return "", ErrInvalidCredentials
	}
	if !a.verifyPassword(password) {
		return "", ErrInvalidCredentials
	}
	return a.IssueToken(login)
}

// verifyPassword prefers a bcrypt hash and falls back to the plain development password.
func (a *Authenticator) verifyPassword(password string) bool {
	if strings.HasPrefix(a.passwordHash, "$2a$") || strings.HasPrefix(a.passwordHash, "$2b$") {
		return bcrypt.CompareHashAndPassword([]byte(a.passwordHash), []byte(password)) == nil
	}
	if a.password == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(password), []byte(a.password)) == 1
}

func (a *Authenticator) IssueToken(subject string) (string, error) {
	now := a.clock.Now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(a.ttl)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// ParseToken validates the signature and expiry and returns the subject.
func (a *Authenticator) ParseToken(raw string) (string, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithoutClaimsValidation(),
	)
	claims := &jwt.RegisteredClaims{}
	token, err := parser.ParseWithClaims(raw, claims, func(*jwt.Token) (any, error) {
		return a.secret, nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}
	if !claims.VerifyExpiresAt(a.clock.Now(), true) {
		return "", ErrInvalidToken
	}
	if claims.Subject == "" || subtle.ConstantTimeCompare([]byte(claims.Subject), []byte(a.login)) != 1 {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}
