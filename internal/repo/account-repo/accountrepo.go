package accountrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/scrapsync/scrapsync/internal/domain"
	"github.com/scrapsync/scrapsync/internal/pg"
)

// ErrDuplicateEmail is returned on a unique violation for users.email.
var ErrDuplicateEmail = errors.New("email already taken")

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Create(ctx context.Context, account *domain.Account) (*domain.Account, error) {
	query := `
        INSERT INTO users (full_name, email, phone, password_hash, role, status, balance)
        VALUES ($1, $2, $3, $4, $5, $6, 0)
        RETURNING id, created_at
    `
	err := r.db.QueryRow(ctx, query,
		account.FullName, account.Email, account.Phone, account.PasswordHash, account.Role, account.Status,
	).Scan(&account.ID, &account.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, ErrDuplicateEmail
		}
		zap.L().Error("can't save account", zap.Error(err))
		return nil, err
	}
	account.Balance = decimal.Zero
	return account, nil
}

func (r *Repository) FindByEmail(ctx context.Context, email string) (*domain.Account, error) {
	query := `
        SELECT id, full_name, email, phone, password_hash, role, status, balance, created_at, updated_at
        FROM users
        WHERE email = $1
    `
	return r.scanOne(r.db.QueryRow(ctx, query, email))
}

func (r *Repository) GetByID(ctx context.Context, id int) (*domain.Account, error) {
	query := `
        SELECT id, full_name, email, phone, password_hash, role, status, balance, created_at, updated_at
        FROM users
        WHERE id = $1
    `
	return r.scanOne(r.db.QueryRow(ctx, query, id))
}

func (r *Repository) scanOne(row pgx.Row) (*domain.Account, error) {
	var account domain.Account
	err := row.Scan(
		&account.ID, &account.FullName, &account.Email, &account.Phone, &account.PasswordHash,
		&account.Role, &account.Status, &account.Balance, &account.CreatedAt, &account.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find account", zap.Error(err))
		return nil, err
	}
	return &account, nil
}

// Credit atomically increments the balance and returns the new value.
func (r *Repository) Credit(ctx context.Context, id int, amount decimal.Decimal) (decimal.Decimal, error) {
	query := `
        UPDATE users
        SET balance = balance + $1, updated_at = now()
        WHERE id = $2
        RETURNING balance
    `
	var balance decimal.Decimal
	err := r.db.QueryRow(ctx, query, amount, id).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, pgx.ErrNoRows
		}
		zap.L().Error("can't credit account", zap.Error(err), zap.Int("userID", id))
		return decimal.Zero, err
	}
	return balance, nil
}

// Debit decrements the balance only when sufficient funds remain. The
// sufficiency check and the decrement are a single guarded UPDATE, so
// concurrent debits of one account can never interleave partially.
// Returns ok=false when the balance was insufficient (or the account is
// missing); the caller distinguishes the two.
func (r *Repository) Debit(ctx context.Context, id int, amount decimal.Decimal) (decimal.Decimal, bool, error) {
	query := `
        UPDATE users
        SET balance = balance - $1, updated_at = now()
        WHERE id = $2 AND balance >= $1
        RETURNING balance
    `
	var balance decimal.Decimal
	err := r.db.QueryRow(ctx, query, amount, id).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, false, nil
		}
		zap.L().Error("can't debit account", zap.Error(err), zap.Int("userID", id))
		return decimal.Zero, false, err
	}
	return balance, true, nil
}

func (r *Repository) UpdateProfile(ctx context.Context, id int, fullName, phone string) (*domain.Account, error) {
	query := `
        UPDATE users
        SET full_name = COALESCE(NULLIF($1, ''), full_name),
            phone     = COALESCE(NULLIF($2, ''), phone),
            updated_at = now()
        WHERE id = $3
        RETURNING id, full_name, email, phone, password_hash, role, status, balance, created_at, updated_at
    `
	return r.scanOne(r.db.QueryRow(ctx, query, fullName, phone, id))
}

func (r *Repository) UpdateStatus(ctx context.Context, id int, status string) error {
	query := `
        UPDATE users
        SET status = $1, updated_at = now()
        WHERE id = $2
    `
	tag, err := r.db.Exec(ctx, query, status, id)
	if err != nil {
		zap.L().Error("can't update account status", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
