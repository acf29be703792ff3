package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrBadToken = errors.New("invalid token")

// Claims ties a signed cookie to one row in the sessions table. The token
// alone is not enough: the session must also still be active.
type Claims struct {
	UserID    int64  `json:"uid"`
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

func MakeToken(uid int64, sid string, secret []byte, issued, expires time.Time) (string, error) {
	c := Claims{
		UserID:    uid,
		SessionID: sid,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        sid,
			ExpiresAt: jwt.NewNumericDate(expires),
			IssuedAt:  jwt.NewNumericDate(issued),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(secret)
}

func ParseToken(raw string, secret []byte) (*Claims, error) {
	tok, err := jwt.ParseWithClaims(raw, &Claims{}, func(t *jwt.Token) (any, error) {
		// block alg confusion
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrBadToken
		}
		return secret, nil
	}, jwt.WithExpirationRequired())
	if err != nil {
		return nil, err
	}
	c, ok := tok.Claims.(*Claims)
	if !ok || !tok.Valid || c.SessionID == "" || c.UserID == 0 {
		return nil, ErrBadToken
	}
	return c, nil
}
