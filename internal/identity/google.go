package identity

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/msomdec/mathpractice/internal/domain"
)

const DefaultGoogleUserInfoURL = "https://www.googleapis.com/oauth2/v1/userinfo"

// GoogleProvider verifies Google access tokens against the userinfo endpoint.
type GoogleProvider struct {
	userInfoURL string
	client      *http.Client
}

var _ domain.IdentityProvider = (*GoogleProvider)(nil)

// NewGoogleProvider creates a provider for userInfoURL, or the public Google
// endpoint when it is empty.
func NewGoogleProvider(userInfoURL string, timeout time.Duration) *GoogleProvider {
	if userInfoURL == "" {
		userInfoURL = DefaultGoogleUserInfoURL
	}
	return &GoogleProvider{
		userInfoURL: userInfoURL,
		client:      &http.Client{Timeout: timeout},
	}
}

type userInfo struct {
	ID    string          `json:"id"`
	Email string          `json:"email"`
	Name  string          `json:"name"`
	Error json.RawMessage `json:"error"`
}

// Exchange resolves an access token to the identity it was issued for.
// A token Google rejects yields domain.ErrUnauthorized.
func (p *GoogleProvider) Exchange(ctx context.Context, token string) (*domain.Identity, error) {
	u, err := url.Parse(p.userInfoURL)
	if err != nil {
		return nil, fmt.Errorf("parse userinfo url: %w", err)
	}
	q := u.Query()
	q.Set("access_token", token)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("userinfo request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: userinfo returned status %d", domain.ErrUnauthorized, resp.StatusCode)
	}

	var info userInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("decode userinfo: %w", err)
	}
	if len(info.Error) > 0 && string(info.Error) != "null" {
		return nil, fmt.Errorf("%w: userinfo error %s", domain.ErrUnauthorized, info.Error)
	}
	if info.ID == "" || info.Email == "" {
		return nil, fmt.Errorf("%w: userinfo missing id or email", domain.ErrUnauthorized)
	}

	return &domain.Identity{
		Subject: info.ID,
		Email:   domain.NormalizeEmail(info.Email),
		Name:    info.Name,
	}, nil
}
