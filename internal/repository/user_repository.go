package repository

import (
	"context"
	"strings"

	"recipe-be/internal/dbx"
	"recipe-be/internal/entities"
)

//go:generate mockgen -source=user_repository.go -destination=mocks/user_repository_mock.go -package=mocks

// UserRepository defines the interface for user database operations
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) (*entities.User, error)
	FindByEmail(ctx context.Context, email string) (*entities.User, error)
	FindByID(ctx context.Context, id int64) (*entities.User, error)
	Update(ctx context.Context, user *entities.User) (*entities.User, error)
	List(ctx context.Context, search string) ([]*entities.User, error)
}

type userRepository struct {
	db dbx.DBTX
}

// NewUserRepository creates a new user repository
func NewUserRepository(db dbx.DBTX) UserRepository {
	return &userRepository{db: db}
}

const userColumns = `id, email, name, password_hash, is_active, is_staff, is_superuser, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*entities.User, error) {
	var user entities.User
	err := row.Scan(
		&user.ID,
		&user.Email,
		&user.Name,
		&user.PasswordHash,
		&user.IsActive,
		&user.IsStaff,
		&user.IsSuperuser,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Create inserts a new user into the database
func (r *userRepository) Create(ctx context.Context, user *entities.User) (*entities.User, error) {
	query := `
		INSERT INTO users (email, name, password_hash, is_active, is_staff, is_superuser)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + userColumns

	created, err := scanUser(r.db.QueryRowContext(ctx, query,
		user.Email, user.Name, user.PasswordHash, user.IsActive, user.IsStaff, user.IsSuperuser))
	if err != nil {
		return nil, mapError(err)
	}
	return created, nil
}

// FindByEmail finds a user by email
func (r *userRepository) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	user, err := scanUser(r.db.QueryRowContext(ctx, query, email))
	if err != nil {
		return nil, mapError(err)
	}
	return user, nil
}

// FindByID finds a user by ID
func (r *userRepository) FindByID(ctx context.Context, id int64) (*entities.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	user, err := scanUser(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, mapError(err)
	}
	return user, nil
}

// Update stores the mutable profile fields of user
func (r *userRepository) Update(ctx context.Context, user *entities.User) (*entities.User, error) {
	query := `
		UPDATE users
		SET email = $1, name = $2, password_hash = $3, updated_at = NOW()
		WHERE id = $4
		RETURNING ` + userColumns

	updated, err := scanUser(r.db.QueryRowContext(ctx, query, user.Email, user.Name, user.PasswordHash, user.ID))
	if err != nil {
		return nil, mapError(err)
	}
	return updated, nil
}

// List returns users ordered by ID. A non-empty search matches email or
// name case-insensitively.
func (r *userRepository) List(ctx context.Context, search string) ([]*entities.User, error) {
	query := `SELECT ` + userColumns + ` FROM users`
	var args []any

	if search = strings.TrimSpace(search); search != "" {
		query += ` WHERE email ILIKE $1 OR name ILIKE $1`
		args = append(args, "%"+escapeLike(search)+"%")
	}
	query += ` ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	users := make([]*entities.User, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, mapError(err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err)
	}
	return users, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
