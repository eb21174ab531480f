package jwt

import (
	"errors"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
)

const (
	defaultSecret = "firstpost-secret-change-me"
	issuer        = "firstpost-journal"

	// TokenTTL is the admin session lifetime. Cookies issued at login
	// expire together with the token.
	TokenTTL = 24 * time.Hour
)

var secret = []byte(defaultSecret)

// ErrInvalidToken covers every parse failure; callers treat all bad
// tokens alike.
var ErrInvalidToken = errors.New("invalid token")

// SetSecret configures the JWT signing secret (call on startup).
func SetSecret(s string) {
	if s != "" {
		secret = []byte(s)
	}
}

// Claims is the admin session payload. Username rides along so the
// dashboard can display who is signed in without a user lookup.
type Claims struct {
	UserID   string `json:"uid"`
	Username string `json:"unm"`
	jwtlib.RegisteredClaims
}

// Sign creates a session token for the given admin.
func Sign(userID, username string) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:   userID,
		Username: username,
		RegisteredClaims: jwtlib.RegisteredClaims{
			Issuer:    issuer,
			Subject:   userID,
			ExpiresAt: jwtlib.NewNumericDate(now.Add(TokenTTL)),
			IssuedAt:  jwtlib.NewNumericDate(now),
		},
	}
	token := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// Parse validates a token and returns its claims. Tokens must be HS256,
// unexpired and carry this service's issuer.
func Parse(tokenStr string) (*Claims, error) {
	token, err := jwtlib.ParseWithClaims(tokenStr, &Claims{},
		func(t *jwtlib.Token) (interface{}, error) { return secret, nil },
		jwtlib.WithValidMethods([]string{jwtlib.SigningMethodHS256.Alg()}),
		jwtlib.WithIssuer(issuer),
		jwtlib.WithExpirationRequired(),
	)
	if err != nil {
		return nil, ErrInvalidToken
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.UserID == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
