package relationshiprepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
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

const relationshipColumns = `id, mcp_id, partner_id, commission_rate, commission_type, status, created_at, updated_at`

func (r *Repository) Create(ctx context.Context, rel *domain.PartnerRelationship) (*domain.PartnerRelationship, error) {
	query := `
        INSERT INTO partner_relationships (mcp_id, partner_id, commission_rate, commission_type, status)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, created_at
    `
	err := r.db.QueryRow(ctx, query,
		rel.MCPID, rel.PartnerID, rel.CommissionRate, rel.CommissionType, rel.Status,
	).Scan(&rel.ID, &rel.CreatedAt)
	if err != nil {
		zap.L().Error("can't save partner relationship", zap.Error(err))
		return nil, err
	}
	return rel, nil
}

func (r *Repository) GetByPair(ctx context.Context, mcpID, partnerID int) (*domain.PartnerRelationship, error) {
	query := `
        SELECT ` + relationshipColumns + `
        FROM partner_relationships
        WHERE mcp_id = $1 AND partner_id = $2
    `
	return r.scanOne(r.db.QueryRow(ctx, query, mcpID, partnerID))
}

// GetActiveByPair returns nil when no ACTIVE relationship links the pair.
func (r *Repository) GetActiveByPair(ctx context.Context, mcpID, partnerID int) (*domain.PartnerRelationship, error) {
	query := `
        SELECT ` + relationshipColumns + `
        FROM partner_relationships
        WHERE mcp_id = $1 AND partner_id = $2 AND status = 'ACTIVE'
    `
	return r.scanOne(r.db.QueryRow(ctx, query, mcpID, partnerID))
}

func (r *Repository) scanOne(row pgx.Row) (*domain.PartnerRelationship, error) {
	var rel domain.PartnerRelationship
	err := row.Scan(
		&rel.ID, &rel.MCPID, &rel.PartnerID, &rel.CommissionRate, &rel.CommissionType,
		&rel.Status, &rel.CreatedAt, &rel.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find partner relationship", zap.Error(err))
		return nil, err
	}
	return &rel, nil
}

// ListByMCP returns the MCP's roster together with partner account data.
func (r *Repository) ListByMCP(ctx context.Context, mcpID int) ([]domain.RosterEntry, error) {
	query := `
        SELECT r.id, r.mcp_id, r.partner_id, r.commission_rate, r.commission_type, r.status, r.created_at, r.updated_at,
               u.id, u.full_name, u.email, u.phone, u.status, u.balance
        FROM partner_relationships r
        JOIN users u ON u.id = r.partner_id
        WHERE r.mcp_id = $1
        ORDER BY r.created_at DESC
    `
	rows, err := r.db.Query(ctx, query, mcpID)
	if err != nil {
		zap.L().Error("can't list partners", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var entries []domain.RosterEntry
	for rows.Next() {
		var e domain.RosterEntry
		err := rows.Scan(
			&e.Relationship.ID, &e.Relationship.MCPID, &e.Relationship.PartnerID,
			&e.Relationship.CommissionRate, &e.Relationship.CommissionType,
			&e.Relationship.Status, &e.Relationship.CreatedAt, &e.Relationship.UpdatedAt,
			&e.Partner.ID, &e.Partner.FullName, &e.Partner.Email, &e.Partner.Phone,
			&e.Partner.Status, &e.Partner.Balance,
		)
		if err != nil {
			zap.L().Error("can't scan roster row", zap.Error(err))
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, nil
}

func (r *Repository) Update(ctx context.Context, rel *domain.PartnerRelationship) (*domain.PartnerRelationship, error) {
	query := `
        UPDATE partner_relationships
        SET commission_rate = $1, commission_type = $2, status = $3, updated_at = now()
        WHERE id = $4
        RETURNING ` + relationshipColumns + `
	`
	return r.scanOne(r.db.QueryRow(ctx, query, rel.CommissionRate, rel.CommissionType, rel.Status, rel.ID))
}

func (r *Repository) CountByMCP(ctx context.Context, mcpID int) (total, active int, err error) {
	query := `
        SELECT count(*), count(*) FILTER (WHERE status = 'ACTIVE')
        FROM partner_relationships
        WHERE mcp_id = $1
    `
	err = r.db.QueryRow(ctx, query, mcpID).Scan(&total, &active)
	if err != nil {
		zap.L().Error("can't count partners", zap.Error(err))
		return 0, 0, err
	}
	return total, active, nil
}
