package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/msomdec/mathpractice/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

// AuthResult is returned by every successful authentication flow.
type AuthResult struct {
	Token string
	User  *domain.User
}

// AuthService implements signup, password login, and federated login.
type AuthService struct {
	users      domain.UserRepository
	identity   domain.IdentityProvider
	tokens     *TokenIssuer
	bcryptCost int
	// dummyHash is compared against when no stored hash exists so that
	// unknown emails cost as much as a wrong password.
	dummyHash []byte
}

// NewAuthService creates a new AuthService.
func NewAuthService(users domain.UserRepository, identity domain.IdentityProvider, tokens *TokenIssuer, bcryptCost int) *AuthService {
	// GenerateFromPassword only fails for an out-of-range cost, which config rejects.
	dummy, _ := bcrypt.GenerateFromPassword([]byte("not-a-real-password"), bcryptCost)
	return &AuthService{
		users:      users,
		identity:   identity,
		tokens:     tokens,
		bcryptCost: bcryptCost,
		dummyHash:  dummy,
	}
}

// Signup creates a password account and issues a session token.
func (s *AuthService) Signup(ctx context.Context, email, password, name string) (*AuthResult, error) {
	email = domain.NormalizeEmail(email)
	name = strings.TrimSpace(name)
	if email == "" || password == "" || name == "" {
		return nil, fmt.Errorf("%w: email, password, and name are required", domain.ErrInvalidInput)
	}

	_, err := s.users.GetByEmail(ctx, email)
	if err == nil {
		return nil, domain.ErrDuplicateEmail
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("get user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		Email:        email,
		Name:         name,
		PasswordHash: string(hash),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	return s.issue(user)
}

// Login verifies an email and password. Unknown email, a federated-only
// account, and a wrong password all yield the same domain.ErrUnauthorized.
func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	email = domain.NormalizeEmail(email)
	if email == "" || password == "" {
		return nil, fmt.Errorf("%w: email and password are required", domain.ErrInvalidInput)
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.burnCompare(password)
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	if user.PasswordHash == "" {
		s.burnCompare(password)
		return nil, domain.ErrUnauthorized
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, domain.ErrUnauthorized
	}

	return s.issue(user)
}

// FederatedLogin exchanges a provider token for a verified identity, then
// finds, links, or creates the matching user.
func (s *AuthService) FederatedLogin(ctx context.Context, providerToken string) (*AuthResult, error) {
	if strings.TrimSpace(providerToken) == "" {
		return nil, fmt.Errorf("%w: provider token is required", domain.ErrInvalidInput)
	}

	identity, err := s.identity.Exchange(ctx, providerToken)
	if err != nil {
		return nil, fmt.Errorf("exchange provider token: %w", err)
	}

	user, err := s.users.GetByFederatedIDOrEmail(ctx, identity.Subject, identity.Email)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		user = &domain.User{
			Email:       identity.Email,
			Name:        identity.Name,
			FederatedID: identity.Subject,
		}
		if user.Name == "" {
			user.Name = identity.Email
		}
		if err := s.users.Create(ctx, user); err != nil {
			return nil, fmt.Errorf("create federated user: %w", err)
		}
	case err != nil:
		return nil, fmt.Errorf("get user: %w", err)
	case user.FederatedID == "":
		if err := s.users.LinkFederatedID(ctx, user.ID, identity.Subject); err != nil {
			return nil, fmt.Errorf("link federated id: %w", err)
		}
		user.FederatedID = identity.Subject
	}

	return s.issue(user)
}

// VerifyToken resolves a session token to its user id.
func (s *AuthService) VerifyToken(token string) (int64, error) {
	return s.tokens.Verify(token)
}

func (s *AuthService) issue(user *domain.User) (*AuthResult, error) {
	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}
	return &AuthResult{Token: token, User: user}, nil
}

func (s *AuthService) burnCompare(password string) {
	_ = bcrypt.CompareHashAndPassword(s.dummyHash, []byte(password))
}
