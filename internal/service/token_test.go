package service_test

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/msomdec/mathpractice/internal/domain"
	"github.com/msomdec/mathpractice/internal/service"
)

func TestTokenIssuer_IssueAndVerify(t *testing.T) {
	tokens := service.NewTokenIssuer(testJWTSecret, time.Hour)

	token, err := tokens.Issue(42)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	userID, err := tokens.Verify(token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if userID != 42 {
		t.Fatalf("expected user 42, got %d", userID)
	}
}

func TestTokenIssuer_Expired(t *testing.T) {
	tokens := service.NewTokenIssuer(testJWTSecret, -time.Second)

	token, err := tokens.Issue(7)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	_, err = tokens.Verify(token)
	if !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
	// The cause stays available to logs.
	if !errors.Is(err, jwt.ErrTokenExpired) {
		t.Fatalf("expected jwt.ErrTokenExpired in chain, got %v", err)
	}
}

func TestTokenIssuer_InvalidTokens(t *testing.T) {
	tokens := service.NewTokenIssuer(testJWTSecret, time.Hour)
	other := service.NewTokenIssuer("a-completely-different-secret-value!!", time.Hour)

	valid, err := tokens.Issue(1)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	foreign, err := other.Issue(1)
	if err != nil {
		t.Fatalf("Issue foreign: %v", err)
	}

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"user_id": 1}).
		SignedString([]byte(testJWTSecret))
	if err != nil {
		t.Fatalf("sign no-expiry token: %v", err)
	}
	noUser, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"exp": time.Now().Add(time.Hour).Unix()}).
		SignedString([]byte(testJWTSecret))
	if err != nil {
		t.Fatalf("sign no-user token: %v", err)
	}
	wrongAlg, err := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.MapClaims{"user_id": 1, "exp": time.Now().Add(time.Hour).Unix()}).
		SignedString([]byte(testJWTSecret))
	if err != nil {
		t.Fatalf("sign HS512 token: %v", err)
	}

	tests := []struct {
		name  string
		token string
	}{
		{"malformed", "not-a-valid-jwt"},
		{"empty", ""},
		{"tampered", valid[:len(valid)-5] + "XXXXX"},
		{"wrong secret", foreign},
		{"no expiry", noExpiry},
		{"no user id", noUser},
		{"wrong algorithm", wrongAlg},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tokens.Verify(tc.token)
			if !errors.Is(err, domain.ErrInvalidToken) {
				t.Fatalf("expected ErrInvalidToken, got %v", err)
			}
		})
	}
}
