package transactionrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/scrapsync/scrapsync/internal/domain"
	"github.com/scrapsync/scrapsync/internal/pg"
)

// Repository is the append-only transaction log. Rows are inserted in
// their final status for internally-atomic flows, or PENDING for
// externally-confirmed ones; the only mutations allowed afterwards are
// guarded PENDING -> COMPLETED / PENDING -> FAILED transitions.
type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

const txnColumns = `id, from_user_id, to_user_id, amount, type, status, order_id, description, provider_order_id, provider_payment_id, provider_signature, created_at, updated_at`

// Filter narrows List results; zero values mean "any".
type Filter struct {
	Type   string
	Status string
	From   *time.Time
	To     *time.Time
}

func (r *Repository) Create(ctx context.Context, txn *domain.Transaction) (*domain.Transaction, error) {
	query := `
        INSERT INTO transactions (from_user_id, to_user_id, amount, type, status, order_id, description, provider_order_id)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING id, created_at
    `
	err := r.db.QueryRow(ctx, query,
		txn.FromUserID, txn.ToUserID, txn.Amount, txn.Type, txn.Status,
		txn.OrderID, txn.Description, txn.ProviderOrderID,
	).Scan(&txn.ID, &txn.CreatedAt)
	if err != nil {
		zap.L().Error("can't save transaction", zap.Error(err))
		return nil, err
	}
	return txn, nil
}

func (r *Repository) GetByID(ctx context.Context, id int) (*domain.Transaction, error) {
	query := `
        SELECT ` + txnColumns + `
        FROM transactions
        WHERE id = $1
    `
	return r.scanOne(r.db.QueryRow(ctx, query, id))
}

// GetByIDForUpdate locks the transaction row so concurrent confirmations
// of the same payment serialize on it.
func (r *Repository) GetByIDForUpdate(ctx context.Context, id int) (*domain.Transaction, error) {
	query := `
        SELECT ` + txnColumns + `
        FROM transactions
        WHERE id = $1
        FOR UPDATE
    `
	return r.scanOne(r.db.QueryRow(ctx, query, id))
}

func (r *Repository) scanOne(row pgx.Row) (*domain.Transaction, error) {
	var txn domain.Transaction
	err := row.Scan(
		&txn.ID, &txn.FromUserID, &txn.ToUserID, &txn.Amount, &txn.Type, &txn.Status,
		&txn.OrderID, &txn.Description, &txn.ProviderOrderID, &txn.ProviderPaymentID,
		&txn.ProviderSignature, &txn.CreatedAt, &txn.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find transaction", zap.Error(err))
		return nil, err
	}
	return &txn, nil
}

// MarkCompleted finalizes a PENDING transaction, storing the provider
// payment metadata. The WHERE clause keeps the transition monotonic:
// a second call reports ok=false instead of rewriting a COMPLETED row.
func (r *Repository) MarkCompleted(ctx context.Context, id int, paymentID, signature *string) (bool, error) {
	query := `
        UPDATE transactions
        SET status = 'COMPLETED',
            provider_payment_id = COALESCE($1, provider_payment_id),
            provider_signature  = COALESCE($2, provider_signature),
            updated_at = now()
        WHERE id = $3 AND status = 'PENDING'
    `
	tag, err := r.db.Exec(ctx, query, paymentID, signature, id)
	if err != nil {
		zap.L().Error("can't complete transaction", zap.Error(err), zap.Int("transactionID", id))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

// MarkFailed moves a PENDING transaction to FAILED.
func (r *Repository) MarkFailed(ctx context.Context, id int) (bool, error) {
	query := `
        UPDATE transactions
        SET status = 'FAILED', updated_at = now()
        WHERE id = $1 AND status = 'PENDING'
    `
	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		zap.L().Error("can't fail transaction", zap.Error(err), zap.Int("transactionID", id))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

// ListByUser pages through transactions where the user is sender or
// recipient, newest first.
func (r *Repository) ListByUser(ctx context.Context, userID int, filter Filter, limit, offset int) ([]domain.Transaction, int, error) {
	where := ` WHERE (from_user_id = $1 OR to_user_id = $1)`
	args := []interface{}{userID}
	if filter.Type != "" {
		args = append(args, filter.Type)
		where += fmt.Sprintf(" AND type = $%d", len(args))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		where += fmt.Sprintf(" AND status = $%d", len(args))
	}
	if filter.From != nil {
		args = append(args, *filter.From)
		where += fmt.Sprintf(" AND created_at >= $%d", len(args))
	}
	if filter.To != nil {
		args = append(args, *filter.To)
		where += fmt.Sprintf(" AND created_at <= $%d", len(args))
	}

	var total int
	if err := r.db.QueryRow(ctx, `SELECT count(*) FROM transactions`+where, args...).Scan(&total); err != nil {
		zap.L().Error("can't count transactions", zap.Error(err))
		return nil, 0, err
	}

	args = append(args, limit, offset)
	query := `SELECT ` + txnColumns + ` FROM transactions` + where +
		fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	txns, err := r.list(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	return txns, total, nil
}

func (r *Repository) RecentByUser(ctx context.Context, userID, limit int) ([]domain.Transaction, error) {
	query := `
        SELECT ` + txnColumns + `
        FROM transactions
        WHERE from_user_id = $1 OR to_user_id = $1
        ORDER BY created_at DESC
        LIMIT $2
    `
	return r.list(ctx, query, userID, limit)
}

// FindPendingWithdrawals feeds the settlement watcher.
func (r *Repository) FindPendingWithdrawals(ctx context.Context, limit int) ([]domain.Transaction, error) {
	query := `
        SELECT ` + txnColumns + `
        FROM transactions
        WHERE type = 'WITHDRAW' AND status = 'PENDING'
        ORDER BY created_at ASC
        LIMIT $1
    `
	return r.list(ctx, query, limit)
}

func (r *Repository) list(ctx context.Context, query string, args ...interface{}) ([]domain.Transaction, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't list transactions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var txns []domain.Transaction
	for rows.Next() {
		var txn domain.Transaction
		err := rows.Scan(
			&txn.ID, &txn.FromUserID, &txn.ToUserID, &txn.Amount, &txn.Type, &txn.Status,
			&txn.OrderID, &txn.Description, &txn.ProviderOrderID, &txn.ProviderPaymentID,
			&txn.ProviderSignature, &txn.CreatedAt, &txn.UpdatedAt,
		)
		if err != nil {
			zap.L().Error("can't scan transaction row", zap.Error(err))
			return nil, err
		}
		txns = append(txns, txn)
	}
	return txns, nil
}
