// Package jwtmw provides JWT issuance and the gin authentication middleware.
package jwtmw

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// EnvKeyJWTSecret is the environment variable holding the signing secret.
const EnvKeyJWTSecret = "JWT_SECRET"

// Token lifetimes. The access token is short-lived and travels in the
// response body; the refresh token lives in an HTTP-only cookie.
const (
	AccessTokenTTL  = 15 * time.Minute
	RefreshTokenTTL = 3 * 24 * time.Hour
)

// Generator signs HS256 session tokens carrying the user's id and email.
type Generator struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

// NewGenerator creates a Generator with the given secret and lifetimes.
func NewGenerator(secret string, accessTTL, refreshTTL time.Duration) *Generator {
	return &Generator{
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

// GenerateAccessToken creates the short-lived token returned in the
// login response body.
func (g *Generator) GenerateAccessToken(userID uint, email string) (string, error) {
	return g.sign(userID, email, g.accessTTL)
}

// GenerateRefreshToken creates the longer-lived token delivered via the
// refreshToken cookie.
func (g *Generator) GenerateRefreshToken(userID uint, email string) (string, error) {
	return g.sign(userID, email, g.refreshTTL)
}

// sign builds and signs a token whose payload is the minimal {id, email}
// pair plus the standard exp/iat claims. No other user attribute ever
// enters a token.
func (g *Generator) sign(userID uint, email string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"id":    userID,
		"email": email,
		"exp":   now.Add(ttl).Unix(),
		"iat":   now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(g.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// ParseToken verifies the signature and expiry of a token issued by this
// generator and returns the user id and email it carries.
func (g *Generator) ParseToken(tokenStr string) (uint, string, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return g.secret, nil
	})
	if err != nil || !token.Valid {
		return 0, "", fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, "", jwt.ErrTokenInvalidClaims
	}
	id, ok := claims["id"].(float64) // JWT numbers are decoded as float64
	if !ok {
		return 0, "", jwt.ErrTokenInvalidClaims
	}
	email, _ := claims["email"].(string)
	return uint(id), email, nil
}
