// Package auth validates bearer tokens presented at the HTTP boundary.
// Tokens are issued by an external identity provider and signed with a shared
// HS256 secret.
package auth

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// ErrEmptyToken is returned when no token was presented.
var ErrEmptyToken = errors.New("token is empty")

// Claims are the validated claims of an access token.
type Claims struct {
	Subject string
	Scope   string
}

type accessClaims struct {
	jwt.RegisteredClaims
	Scope string `json:"scope,omitempty"`
}

// Validator checks HS256 access tokens.
type Validator struct {
	secret []byte
	issuer string
}

// NewValidator creates a token validator.
// secret must be at least 32 characters for HS256 security.
func NewValidator(secret, issuer string) *Validator {
	return &Validator{
		secret: []byte(secret),
		issuer: issuer,
	}
}

// Validate parses and validates a JWT access token. Expiry is required.
func (v *Validator) Validate(tokenString string) (Claims, error) {
	if tokenString == "" {
		return Claims{}, ErrEmptyToken
	}

	token, err := jwt.ParseWithClaims(tokenString, &accessClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return v.secret, nil
	}, jwt.WithIssuer(v.issuer), jwt.WithExpirationRequired())
	if err != nil {
		return Claims{}, fmt.Errorf("parse token: %w", err)
	}

	claims, ok := token.Claims.(*accessClaims)
	if !ok || !token.Valid {
		return Claims{}, fmt.Errorf("invalid token claims")
	}
	if claims.Subject == "" {
		return Claims{}, fmt.Errorf("token has no subject")
	}

	return Claims{Subject: claims.Subject, Scope: claims.Scope}, nil
}
