package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/msomdec/mathpractice/internal/domain"
)

const userColumns = `id, email, name, password_hash, federated_id, created_at`

// UserRepository implements domain.UserRepository using SQLite.
type UserRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new SQLite-backed UserRepository.
func NewUserRepository(db *DB) *UserRepository {
	return &UserRepository{db: db.SqlDB}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	now := time.Now().UTC()
	user.Email = domain.NormalizeEmail(user.Email)

	result, err := r.db.ExecContext(ctx,
		`INSERT INTO users (email, name, password_hash, federated_id, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		user.Email, user.Name, nullString(user.PasswordHash), nullString(user.FederatedID), now,
	)
	if err != nil {
		if isUniqueConstraintError(err) {
			return domain.ErrDuplicateEmail
		}
		return fmt.Errorf("insert user: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get last insert id: %w", err)
	}

	user.ID = id
	user.CreatedAt = now
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = ?`, id)
	user, err := scanUser(row)
	if err != nil {
		return nil, fmt.Errorf("query user by id: %w", err)
	}
	return user, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = ?`, domain.NormalizeEmail(email))
	user, err := scanUser(row)
	if err != nil {
		return nil, fmt.Errorf("query user by email: %w", err)
	}
	return user, nil
}

func (r *UserRepository) GetByFederatedIDOrEmail(ctx context.Context, federatedID, email string) (*domain.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users
		 WHERE federated_id = ? OR email = ?
		 ORDER BY CASE WHEN federated_id = ? THEN 0 ELSE 1 END
		 LIMIT 1`,
		federatedID, domain.NormalizeEmail(email), federatedID)
	user, err := scanUser(row)
	if err != nil {
		return nil, fmt.Errorf("query user by federated id or email: %w", err)
	}
	return user, nil
}

func (r *UserRepository) LinkFederatedID(ctx context.Context, userID int64, federatedID string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE users SET federated_id = ? WHERE id = ? AND federated_id IS NULL`,
		federatedID, userID)
	if err != nil {
		if isUniqueConstraintError(err) {
			return domain.ErrDuplicateEmail
		}
		return fmt.Errorf("link federated id: %w", err)
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
		return nil, err
	}
	user.PasswordHash = passwordHash.String
	user.FederatedID = federatedID.String
	return &user, nil
}
