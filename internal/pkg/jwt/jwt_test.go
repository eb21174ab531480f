package jwt

import (
	"testing"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
)

func TestSignParseRoundtrip(t *testing.T) {
	token, err := Sign("u-1", "admin")
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}

	claims, err := Parse(token)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if claims.UserID != "u-1" {
		t.Errorf("UserID = %q, want u-1", claims.UserID)
	}
	if claims.Username != "admin" {
		t.Errorf("Username = %q, want admin", claims.Username)
	}
	if claims.Issuer != issuer {
		t.Errorf("Issuer = %q, want %q", claims.Issuer, issuer)
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	if _, err := Parse("not.a.token"); err == nil {
		t.Fatal("expected error for malformed token")
	}
}

func forgeToken(t *testing.T, claims Claims, method jwtlib.SigningMethod) string {
	t.Helper()
	signed, err := jwtlib.NewWithClaims(method, claims).SignedString(secret)
	if err != nil {
		t.Fatalf("sign forged token: %v", err)
	}
	return signed
}

func TestParseRejectsForeignIssuer(t *testing.T) {
	token := forgeToken(t, Claims{
		UserID: "u-1",
		RegisteredClaims: jwtlib.RegisteredClaims{
			Issuer:    "someone-else",
			ExpiresAt: jwtlib.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}, jwtlib.SigningMethodHS256)

	if _, err := Parse(token); err == nil {
		t.Fatal("expected error for foreign issuer")
	}
}

func TestParseRejectsExpired(t *testing.T) {
	token := forgeToken(t, Claims{
		UserID: "u-1",
		RegisteredClaims: jwtlib.RegisteredClaims{
			Issuer:    issuer,
			ExpiresAt: jwtlib.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	}, jwtlib.SigningMethodHS256)

	if _, err := Parse(token); err == nil {
		t.Fatal("expected error for expired token")
	}
}

func TestParseRejectsWrongMethod(t *testing.T) {
	token := forgeToken(t, Claims{
		UserID: "u-1",
		RegisteredClaims: jwtlib.RegisteredClaims{
			Issuer:    issuer,
			ExpiresAt: jwtlib.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}, jwtlib.SigningMethodHS512)

	if _, err := Parse(token); err == nil {
		t.Fatal("expected error for non-HS256 token")
	}
}

func TestParseRejectsMissingUserID(t *testing.T) {
	token := forgeToken(t, Claims{
		RegisteredClaims: jwtlib.RegisteredClaims{
			Issuer:    issuer,
			ExpiresAt: jwtlib.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}, jwtlib.SigningMethodHS256)

	if _, err := Parse(token); err == nil {
		t.Fatal("expected error for claims without a user id")
	}
}
