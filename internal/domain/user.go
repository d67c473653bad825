package domain

import (
	"context"
	"strings"
	"time"
)

// User represents a registered student. A user always has a PasswordHash,
// a FederatedID, or both.
type User struct {
	ID           int64
	Email        string
	Name         string
	PasswordHash string // empty for federated-only accounts
	FederatedID  string // empty until linked to an identity provider
	CreatedAt    time.Time
}

// UserRepository defines persistence operations for users.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	// GetByFederatedIDOrEmail prefers the row matching the federated id and
	// falls back to the email match.
	GetByFederatedIDOrEmail(ctx context.Context, federatedID, email string) (*User, error)
	// LinkFederatedID sets the federated id only when the user has none yet.
	LinkFederatedID(ctx context.Context, userID int64, federatedID string) error
}

// NormalizeEmail is applied to every email before it is stored or looked up,
// making email identity case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
