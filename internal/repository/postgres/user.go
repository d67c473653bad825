package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/msomdec/mathpractice/internal/domain"
)

type UserRepository struct {
	db DBTX
}

func NewUserRepository(db DBTX) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	user.Email = domain.NormalizeEmail(user.Email)

	query :=
		`INSERT INTO users (email, name, password_hash, federated_id)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query,
		user.Email, user.Name, nullString(user.PasswordHash), nullString(user.FederatedID),
	).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateEmail
		}
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	query :=
		`SELECT id, email, name, password_hash, federated_id, created_at FROM users
		 WHERE id = $1`
	return scanUser(r.db.QueryRowContext(ctx, query, id))
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query :=
		`SELECT id, email, name, password_hash, federated_id, created_at FROM users
		 WHERE email = $1`
	return scanUser(r.db.QueryRowContext(ctx, query, domain.NormalizeEmail(email)))
}

func (r *UserRepository) GetByFederatedIDOrEmail(ctx context.Context, federatedID, email string) (*domain.User, error) {
	query :=
		`SELECT id, email, name, password_hash, federated_id, created_at FROM users
		 WHERE federated_id = $1 OR email = $2
		 ORDER BY (federated_id = $1) IS NOT TRUE
		 LIMIT 1`
	return scanUser(r.db.QueryRowContext(ctx, query, federatedID, domain.NormalizeEmail(email)))
}

func (r *UserRepository) LinkFederatedID(ctx context.Context, userID int64, federatedID string) error {
	query :=
		`UPDATE users SET federated_id = $1
		 WHERE id = $2 AND federated_id IS NULL`

	if _, err := r.db.ExecContext(ctx, query, federatedID, userID); err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateEmail
		}
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func scanUser(row *sql.Row) (*domain.User, error) {
	var (
		user         domain.User
		passwordHash sql.NullString
		federatedID  sql.NullString
	)
	err := row.Scan(&user.ID, &user.Email, &user.Name, &passwordHash, &federatedID, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	user.PasswordHash = passwordHash.String
	user.FederatedID = federatedID.String
	return &user, nil
}
