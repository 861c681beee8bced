package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recipe-be/internal/common"
	"recipe-be/internal/entities"
)

var userCols = []string{"id", "email", "name", "password_hash", "is_active", "is_staff", "is_superuser", "created_at", "updated_at"}

func newUserRepoWithMock(t *testing.T) (UserRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewUserRepository(db), mock
}

func userRow(id int64, email, name string) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows(userCols).AddRow(id, email, name, "hash", true, false, false, now, now)
}

func TestUserRepository_Create(t *testing.T) {
	repo, mock := newUserRepoWithMock(t)

	mock.ExpectQuery(`INSERT INTO users \(email, name, password_hash, is_active, is_staff, is_superuser\)`).
		WithArgs("sad@sad.com", "SADD", "hash", true, false, false).
		WillReturnRows(userRow(1, "sad@sad.com", "SADD"))

	got, err := repo.Create(context.Background(), &entities.User{
		Email: "sad@sad.com", Name: "SADD", PasswordHash: "hash", IsActive: true,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.ID)
	assert.Equal(t, "hash", got.PasswordHash)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Create_Duplicate(t *testing.T) {
	repo, mock := newUserRepoWithMock(t)

	mock.ExpectQuery(`INSERT INTO users`).
		WillReturnError(&pq.Error{Code: "23505", Constraint: "users_email_key"})

	_, err := repo.Create(context.Background(), &entities.User{Email: "a@b.c"})
	assert.ErrorIs(t, err, common.ErrorAlreadyExists)
}

func TestUserRepository_FindByEmail(t *testing.T) {
	repo, mock := newUserRepoWithMock(t)

	mock.ExpectQuery(`SELECT .* FROM users WHERE email = \$1`).
		WithArgs("sad@sad.com").
		WillReturnRows(userRow(3, "sad@sad.com", "SADD"))

	got, err := repo.FindByEmail(context.Background(), "sad@sad.com")
	require.NoError(t, err)
	assert.Equal(t, int64(3), got.ID)
}

func TestUserRepository_FindByEmail_NotFound(t *testing.T) {
	repo, mock := newUserRepoWithMock(t)

	mock.ExpectQuery(`FROM users WHERE email = \$1`).
		WithArgs("ghost@x.com").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindByEmail(context.Background(), "ghost@x.com")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestUserRepository_FindByID_DBError(t *testing.T) {
	repo, mock := newUserRepoWithMock(t)

	mock.ExpectQuery(`FROM users WHERE id = \$1`).
		WithArgs(int64(9)).
		WillReturnError(errors.New("db down"))

	_, err := repo.FindByID(context.Background(), 9)
	require.Error(t, err)
	assert.Regexp(t, `db error: .*db down`, err.Error())
}

func TestUserRepository_Update(t *testing.T) {
	repo, mock := newUserRepoWithMock(t)

	mock.ExpectQuery(`UPDATE users\s+SET email = \$1, name = \$2, password_hash = \$3, updated_at = NOW\(\)\s+WHERE id = \$4`).
		WithArgs("new@x.com", "New", "hash2", int64(5)).
		WillReturnRows(userRow(5, "new@x.com", "New"))

	got, err := repo.Update(context.Background(), &entities.User{ID: 5, Email: "new@x.com", Name: "New", PasswordHash: "hash2"})
	require.NoError(t, err)
	assert.Equal(t, "New", got.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_List_Search(t *testing.T) {
	repo, mock := newUserRepoWithMock(t)

	rows := userRow(1, "a@x.com", "Ann")
	rows.AddRow(int64(2), "b@x.com", "Bob_1", "h", true, true, false, time.Now(), time.Now())
	mock.ExpectQuery(`FROM users WHERE email ILIKE \$1 OR name ILIKE \$1 ORDER BY id`).
		WithArgs(`%Bob\_1%`).
		WillReturnRows(rows)

	users, err := repo.List(context.Background(), " Bob_1 ")
	require.NoError(t, err)
	assert.Len(t, users, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_List_All(t *testing.T) {
	repo, mock := newUserRepoWithMock(t)

	mock.ExpectQuery(`FROM users ORDER BY id`).
		WillReturnRows(sqlmock.NewRows(userCols))

	users, err := repo.List(context.Background(), "")
	require.NoError(t, err)
	assert.NotNil(t, users)
	assert.Empty(t, users)
}
