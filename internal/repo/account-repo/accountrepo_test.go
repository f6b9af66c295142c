package accountrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/scrapsync/scrapsync/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	t.Cleanup(mockDB.Close)

	return New(mockDB), mockDB
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestRepository_Create(t *testing.T) {
	insertQuery := regexp.QuoteMeta(`
        INSERT INTO users (full_name, email, phone, password_hash, role, status, balance)
        VALUES ($1, $2, $3, $4, $5, $6, 0)
        RETURNING id, created_at
    `)

	t.Run("inserts with a zero balance", func(t *testing.T) {
		repo, mock := NewMock(t)
		now := time.Now()
		mock.ExpectQuery(insertQuery).
			WithArgs("Asha Verma", "asha@scrapsync.in", "+919800000001", "hash", domain.RoleMCP, domain.StatusActive).
			WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(1, now))

		account, err := repo.Create(context.Background(), &domain.Account{
			FullName:     "Asha Verma",
			Email:        "asha@scrapsync.in",
			Phone:        "+919800000001",
			PasswordHash: "hash",
			Role:         domain.RoleMCP,
			Status:       domain.StatusActive,
		})
		assert.NoError(t, err)
		assert.Equal(t, 1, account.ID)
		assert.True(t, account.Balance.IsZero())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unique violation maps to ErrDuplicateEmail", func(t *testing.T) {
		repo, mock := NewMock(t)
		mock.ExpectQuery(insertQuery).
			WithArgs("Asha Verma", "asha@scrapsync.in", "", "hash", domain.RoleMCP, domain.StatusActive).
			WillReturnError(&pgconn.PgError{Code: "23505"})

		_, err := repo.Create(context.Background(), &domain.Account{
			FullName: "Asha Verma", Email: "asha@scrapsync.in", PasswordHash: "hash",
			Role: domain.RoleMCP, Status: domain.StatusActive,
		})
		assert.ErrorIs(t, err, ErrDuplicateEmail)
	})

	t.Run("database error", func(t *testing.T) {
		repo, mock := NewMock(t)
		mock.ExpectQuery(insertQuery).
			WithArgs("Asha Verma", "asha@scrapsync.in", "", "hash", domain.RoleMCP, domain.StatusActive).
			WillReturnError(errors.New("database error"))

		_, err := repo.Create(context.Background(), &domain.Account{
			FullName: "Asha Verma", Email: "asha@scrapsync.in", PasswordHash: "hash",
			Role: domain.RoleMCP, Status: domain.StatusActive,
		})
		assert.Error(t, err)
	})
}

func TestRepository_GetByID(t *testing.T) {
	query := regexp.QuoteMeta(`
        SELECT id, full_name, email, phone, password_hash, role, status, balance, created_at, updated_at
        FROM users
        WHERE id = $1
    `)
	columns := []string{"id", "full_name", "email", "phone", "password_hash", "role", "status", "balance", "created_at", "updated_at"}

	t.Run("found", func(t *testing.T) {
		repo, mock := NewMock(t)
		now := time.Now()
		mock.ExpectQuery(query).WithArgs(1).WillReturnRows(
			pgxmock.NewRows(columns).AddRow(
				1, "Asha Verma", "asha@scrapsync.in", "+919800000001", "hash",
				domain.RoleMCP, domain.StatusActive, dec("500.50"), now, now,
			))

		account, err := repo.GetByID(context.Background(), 1)
		assert.NoError(t, err)
		assert.Equal(t, "asha@scrapsync.in", account.Email)
		assert.True(t, account.Balance.Equal(dec("500.50")))
	})

	t.Run("missing id returns nil", func(t *testing.T) {
		repo, mock := NewMock(t)
		mock.ExpectQuery(query).WithArgs(99).WillReturnError(pgx.ErrNoRows)

		account, err := repo.GetByID(context.Background(), 99)
		assert.NoError(t, err)
		assert.Nil(t, account)
	})

	t.Run("database error", func(t *testing.T) {
		repo, mock := NewMock(t)
		mock.ExpectQuery(query).WithArgs(1).WillReturnError(errors.New("database error"))

		_, err := repo.GetByID(context.Background(), 1)
		assert.Error(t, err)
	})
}

func TestRepository_Credit(t *testing.T) {
	query := regexp.QuoteMeta(`
        UPDATE users
        SET balance = balance + $1, updated_at = now()
        WHERE id = $2
        RETURNING balance
    `)

	t.Run("returns the new balance", func(t *testing.T) {
		repo, mock := NewMock(t)
		mock.ExpectQuery(query).WithArgs(dec("100"), 1).
			WillReturnRows(pgxmock.NewRows([]string{"balance"}).AddRow(dec("600.50")))

		balance, err := repo.Credit(context.Background(), 1, dec("100"))
		assert.NoError(t, err)
		assert.True(t, balance.Equal(dec("600.50")))
	})

	t.Run("missing account surfaces ErrNoRows", func(t *testing.T) {
		repo, mock := NewMock(t)
		mock.ExpectQuery(query).WithArgs(dec("100"), 99).WillReturnError(pgx.ErrNoRows)

		_, err := repo.Credit(context.Background(), 99, dec("100"))
		assert.ErrorIs(t, err, pgx.ErrNoRows)
	})
}

func TestRepository_Debit(t *testing.T) {
	query := regexp.QuoteMeta(`
        UPDATE users
        SET balance = balance - $1, updated_at = now()
        WHERE id = $2 AND balance >= $1
        RETURNING balance
    `)

	t.Run("sufficient funds", func(t *testing.T) {
		repo, mock := NewMock(t)
		mock.ExpectQuery(query).WithArgs(dec("100"), 1).
			WillReturnRows(pgxmock.NewRows([]string{"balance"}).AddRow(dec("400.50")))

		balance, ok, err := repo.Debit(context.Background(), 1, dec("100"))
		assert.NoError(t, err)
		assert.True(t, ok)
		assert.True(t, balance.Equal(dec("400.50")))
	})

	t.Run("insufficient funds reports ok=false", func(t *testing.T) {
		repo, mock := NewMock(t)
		mock.ExpectQuery(query).WithArgs(dec("1000000"), 1).WillReturnError(pgx.ErrNoRows)

		_, ok, err := repo.Debit(context.Background(), 1, dec("1000000"))
		assert.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("database error", func(t *testing.T) {
		repo, mock := NewMock(t)
		mock.ExpectQuery(query).WithArgs(dec("100"), 1).WillReturnError(errors.New("database error"))

		_, ok, err := repo.Debit(context.Background(), 1, dec("100"))
		assert.Error(t, err)
		assert.False(t, ok)
	})
}

func TestRepository_UpdateStatus(t *testing.T) {
	query := regexp.QuoteMeta(`
        UPDATE users
        SET status = $1, updated_at = now()
        WHERE id = $2
    `)

	t.Run("updates", func(t *testing.T) {
		repo, mock := NewMock(t)
		mock.ExpectExec(query).WithArgs(domain.StatusInactive, 1).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		err := repo.UpdateStatus(context.Background(), 1, domain.StatusInactive)
		assert.NoError(t, err)
	})

	t.Run("missing account", func(t *testing.T) {
		repo, mock := NewMock(t)
		mock.ExpectExec(query).WithArgs(domain.StatusInactive, 99).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		err := repo.UpdateStatus(context.Background(), 99, domain.StatusInactive)
		assert.ErrorIs(t, err, pgx.ErrNoRows)
	})
}
