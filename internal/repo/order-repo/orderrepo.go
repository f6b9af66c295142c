package orderrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/scrapsync/scrapsync/internal/domain"
	"github.com/scrapsync/scrapsync/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

const orderColumns = `id, customer_id, pickup_partner_id, mcp_id, order_amount, status, address, latitude, longitude, created_at, updated_at, completed_at`

// Filter narrows List results; zero values mean "any".
type Filter struct {
	Status    string
	MCPID     int
	PartnerID int
	From      *time.Time
	To        *time.Time
}

func (r *Repository) Create(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	query := `
        INSERT INTO orders (customer_id, pickup_partner_id, mcp_id, order_amount, status, address, latitude, longitude)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING id, created_at
    `
	err := r.db.QueryRow(ctx, query,
		order.CustomerID, order.PickupPartnerID, order.MCPID, order.OrderAmount,
		order.Status, order.Address, order.Latitude, order.Longitude,
	).Scan(&order.ID, &order.CreatedAt)
	if err != nil {
		zap.L().Error("can't save order", zap.Error(err))
		return nil, err
	}
	return order, nil
}

func (r *Repository) GetByID(ctx context.Context, id int) (*domain.Order, error) {
	query := `
        SELECT ` + orderColumns + `
        FROM orders
        WHERE id = $1
    `
	return r.scanOne(r.db.QueryRow(ctx, query, id))
}

// GetByIDForUpdate locks the order row for the rest of the ambient
// transaction so a status transition cannot race a concurrent one.
func (r *Repository) GetByIDForUpdate(ctx context.Context, id int) (*domain.Order, error) {
	query := `
        SELECT ` + orderColumns + `
        FROM orders
        WHERE id = $1
        FOR UPDATE
    `
	return r.scanOne(r.db.QueryRow(ctx, query, id))
}

func (r *Repository) scanOne(row pgx.Row) (*domain.Order, error) {
	var order domain.Order
	err := row.Scan(
		&order.ID, &order.CustomerID, &order.PickupPartnerID, &order.MCPID, &order.OrderAmount,
		&order.Status, &order.Address, &order.Latitude, &order.Longitude,
		&order.CreatedAt, &order.UpdatedAt, &order.CompletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find order", zap.Error(err))
		return nil, err
	}
	return &order, nil
}

func (r *Repository) List(ctx context.Context, filter Filter) ([]domain.Order, error) {
	query := `
        SELECT ` + orderColumns + `
        FROM orders
        WHERE 1 = 1
    `
	var args []interface{}
	if filter.Status != "" {
		args = append(args, filter.Status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	if filter.MCPID != 0 {
		args = append(args, filter.MCPID)
		query += fmt.Sprintf(" AND mcp_id = $%d", len(args))
	}
	if filter.PartnerID != 0 {
		args = append(args, filter.PartnerID)
		query += fmt.Sprintf(" AND pickup_partner_id = $%d", len(args))
	}
	if filter.From != nil {
		args = append(args, *filter.From)
		query += fmt.Sprintf(" AND created_at >= $%d", len(args))
	}
	if filter.To != nil {
		args = append(args, *filter.To)
		query += fmt.Sprintf(" AND created_at <= $%d", len(args))
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't list orders", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		var order domain.Order
		err := rows.Scan(
			&order.ID, &order.CustomerID, &order.PickupPartnerID, &order.MCPID, &order.OrderAmount,
			&order.Status, &order.Address, &order.Latitude, &order.Longitude,
			&order.CreatedAt, &order.UpdatedAt, &order.CompletedAt,
		)
		if err != nil {
			zap.L().Error("can't scan order row", zap.Error(err))
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, nil
}

func (r *Repository) Assign(ctx context.Context, orderID, partnerID int) (*domain.Order, error) {
	query := `
        UPDATE orders
        SET pickup_partner_id = $1, status = 'ASSIGNED', updated_at = now()
        WHERE id = $2
        RETURNING ` + orderColumns + `
	`
	return r.scanOne(r.db.QueryRow(ctx, query, partnerID, orderID))
}

func (r *Repository) UpdateStatus(ctx context.Context, orderID int, status string, completedAt *time.Time) (*domain.Order, error) {
	query := `
        UPDATE orders
        SET status = $1, completed_at = COALESCE($2, completed_at), updated_at = now()
        WHERE id = $3
        RETURNING ` + orderColumns + `
	`
	return r.scanOne(r.db.QueryRow(ctx, query, status, completedAt, orderID))
}

// Stats aggregates the dashboard counters for one MCP.
type Stats struct {
	Total            int
	Completed        int
	Pending          int
	Cancelled        int
	CompletedRevenue decimal.Decimal
}

func (r *Repository) StatsByMCP(ctx context.Context, mcpID int) (*Stats, error) {
	query := `
        SELECT count(*),
               count(*) FILTER (WHERE status = 'COMPLETED'),
               count(*) FILTER (WHERE status IN ('PENDING', 'ASSIGNED', 'IN_PROGRESS')),
               count(*) FILTER (WHERE status = 'CANCELLED'),
               COALESCE(sum(order_amount) FILTER (WHERE status = 'COMPLETED'), 0)
        FROM orders
        WHERE mcp_id = $1
    `
	var stats Stats
	err := r.db.QueryRow(ctx, query, mcpID).Scan(
		&stats.Total, &stats.Completed, &stats.Pending, &stats.Cancelled, &stats.CompletedRevenue,
	)
	if err != nil {
		zap.L().Error("can't aggregate order stats", zap.Error(err))
		return nil, err
	}
	return &stats, nil
}
