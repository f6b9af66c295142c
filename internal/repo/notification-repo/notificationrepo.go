package notificationrepo

import (
	"context"
	"fmt"

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

// Filter narrows List results; nil / empty values mean "any".
type Filter struct {
	Type           string
	IsRead         *bool
	Priority       string
	ActionRequired *bool
}

// Create inserts a notification. When called with a context carrying an
// open transaction the write joins that atomic unit, so wallet and order
// notifications commit (or vanish) together with the money movement
// they describe.
func (r *Repository) Create(ctx context.Context, n *domain.Notification) (*domain.Notification, error) {
	query := `
        INSERT INTO notifications (user_id, title, message, type, reference_id, priority, action_required)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id, created_at
    `
	if n.Priority == "" {
		n.Priority = domain.PriorityLow
	}
	err := r.db.QueryRow(ctx, query,
		n.UserID, n.Title, n.Message, n.Type, n.ReferenceID, n.Priority, n.ActionRequired,
	).Scan(&n.ID, &n.CreatedAt)
	if err != nil {
		zap.L().Error("can't save notification", zap.Error(err))
		return nil, err
	}
	return n, nil
}

func (r *Repository) ListByUser(ctx context.Context, userID int, filter Filter, limit, offset int) ([]domain.Notification, int, error) {
	where := ` WHERE user_id = $1`
	args := []interface{}{userID}
	if filter.Type != "" {
		args = append(args, filter.Type)
		where += fmt.Sprintf(" AND type = $%d", len(args))
	}
	if filter.IsRead != nil {
		args = append(args, *filter.IsRead)
		where += fmt.Sprintf(" AND is_read = $%d", len(args))
	}
	if filter.Priority != "" {
		args = append(args, filter.Priority)
		where += fmt.Sprintf(" AND priority = $%d", len(args))
	}
	if filter.ActionRequired != nil {
		args = append(args, *filter.ActionRequired)
		where += fmt.Sprintf(" AND action_required = $%d", len(args))
	}

	var total int
	if err := r.db.QueryRow(ctx, `SELECT count(*) FROM notifications`+where, args...).Scan(&total); err != nil {
		zap.L().Error("can't count notifications", zap.Error(err))
		return nil, 0, err
	}

	args = append(args, limit, offset)
	query := `
        SELECT id, user_id, title, message, type, is_read, reference_id, priority, action_required, created_at
        FROM notifications` + where +
		fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't list notifications", zap.Error(err))
		return nil, 0, err
	}
	defer rows.Close()

	var notifications []domain.Notification
	for rows.Next() {
		var n domain.Notification
		err := rows.Scan(
			&n.ID, &n.UserID, &n.Title, &n.Message, &n.Type, &n.IsRead,
			&n.ReferenceID, &n.Priority, &n.ActionRequired, &n.CreatedAt,
		)
		if err != nil {
			zap.L().Error("can't scan notification row", zap.Error(err))
			return nil, 0, err
		}
		notifications = append(notifications, n)
	}
	return notifications, total, nil
}

func (r *Repository) MarkRead(ctx context.Context, id, userID int) (bool, error) {
	query := `
        UPDATE notifications
        SET is_read = TRUE
        WHERE id = $1 AND user_id = $2
    `
	tag, err := r.db.Exec(ctx, query, id, userID)
	if err != nil {
		zap.L().Error("can't mark notification read", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *Repository) MarkAllRead(ctx context.Context, userID int) (int64, error) {
	query := `
        UPDATE notifications
        SET is_read = TRUE
        WHERE user_id = $1 AND is_read = FALSE
    `
	tag, err := r.db.Exec(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't mark notifications read", zap.Error(err))
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *Repository) CountUnread(ctx context.Context, userID int) (int, error) {
	query := `
        SELECT count(*)
        FROM notifications
        WHERE user_id = $1 AND is_read = FALSE
    `
	var count int
	if err := r.db.QueryRow(ctx, query, userID).Scan(&count); err != nil {
		zap.L().Error("can't count unread notifications", zap.Error(err))
		return 0, err
	}
	return count, nil
}
