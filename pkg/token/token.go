package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"fieldservice-backend/pkg/id"
)

const (
	AccessTTL  = time.Hour
	RefreshTTL = 90 * 24 * time.Hour
)

var ErrInvalidToken = errors.New("invalid token")

// Claims carried by both access and refresh tokens. Kind distinguishes the
// two so a refresh token cannot be replayed as an access token.
type Claims struct {
	UserID uint64 `json:"user_id"`
	Email  string `json:"email,omitempty"`
	Kind   string `json:"kind"`
	jwt.RegisteredClaims
}

const (
	KindAccess  = "access"
	KindRefresh = "refresh"
)

// GeneratePair issues an access/refresh token pair for the user.
func GeneratePair(userID uint64, email, secret string) (access, refresh string, err error) {
	now := time.Now()
	access, err = sign(Claims{
		UserID: userID,
		Email:  email,
		Kind:   KindAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        id.NewID32(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(AccessTTL)),
		},
	}, secret)
	if err != nil {
		return "", "", err
	}
	refresh, err = sign(Claims{
		UserID: userID,
		Kind:   KindRefresh,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        id.NewID32(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(RefreshTTL)),
		},
	}, secret)
	if err != nil {
		return "", "", err
	}
	return access, refresh, nil
}

func sign(c Claims, secret string) (string, error) {
	return jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString([]byte(secret))
}

// Parse validates the signature and expiry and returns the claims.
func Parse(tokenString, secret string) (*Claims, error) {
	tok, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := tok.Claims.(*Claims)
	if !ok || !tok.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
