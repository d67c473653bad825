package identity_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/msomdec/mathpractice/internal/domain"
	"github.com/msomdec/mathpractice/internal/identity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProvider(t *testing.T, h http.HandlerFunc) *identity.GoogleProvider {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return identity.NewGoogleProvider(srv.URL+"/oauth2/v1/userinfo", 5*time.Second)
}

func TestGoogleProvider_Exchange_Success(t *testing.T) {
	p := newProvider(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/oauth2/v1/userinfo", r.URL.Path)
		assert.Equal(t, "good token", r.URL.Query().Get("access_token"))
		_, _ = w.Write([]byte(`{"id":"1234","email":"Student@Example.com","name":"Student","verified_email":true}`))
	})

	id, err := p.Exchange(context.Background(), "good token")

	require.NoError(t, err)
	assert.Equal(t, &domain.Identity{Subject: "1234", Email: "student@example.com", Name: "Student"}, id)
}

func TestGoogleProvider_Exchange_Rejected(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"unauthorized status", http.StatusUnauthorized, `{"error":{"code":401,"message":"Invalid Credentials"}}`},
		{"error body with 200", http.StatusOK, `{"error":"invalid_token"}`},
		{"missing id", http.StatusOK, `{"email":"a@b.com","name":"A"}`},
		{"missing email", http.StatusOK, `{"id":"1","name":"A"}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := newProvider(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			})

			_, err := p.Exchange(context.Background(), "bad")
			require.ErrorIs(t, err, domain.ErrUnauthorized)
		})
	}
}

func TestGoogleProvider_Exchange_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	p := identity.NewGoogleProvider(url, time.Second)
	_, err := p.Exchange(context.Background(), "token")

	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrUnauthorized)
}

func TestGoogleProvider_Exchange_InvalidBody(t *testing.T) {
	p := newProvider(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>`))
	})

	_, err := p.Exchange(context.Background(), "token")

	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrUnauthorized)
}

func TestNewGoogleProvider_DefaultURL(t *testing.T) {
	assert.Equal(t, "https://www.googleapis.com/oauth2/v1/userinfo", identity.DefaultGoogleUserInfoURL)
	assert.NotNil(t, identity.NewGoogleProvider("", time.Second))
}
