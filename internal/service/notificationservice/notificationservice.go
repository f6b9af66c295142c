package notificationservice

import (
	"context"
	"errors"

	"github.com/scrapsync/scrapsync/internal/domain"
	notificationrepo "github.com/scrapsync/scrapsync/internal/repo/notification-repo"
)

type NotificationRepo interface {
	Create(ctx context.Context, n *domain.Notification) (*domain.Notification, error)
	ListByUser(ctx context.Context, userID int, filter notificationrepo.Filter, limit, offset int) ([]domain.Notification, int, error)
	MarkRead(ctx context.Context, id, userID int) (bool, error)
	MarkAllRead(ctx context.Context, userID int) (int64, error)
	CountUnread(ctx context.Context, userID int) (int, error)
}

var ErrNotificationNotFound = errors.New("notification not found")

const (
	defaultLimit = 20
	maxLimit     = 100
)

// Service is the user-facing notification inbox. The Create method also
// satisfies the Notifier interface the wallet, order and partner
// services emit through.
type Service struct {
	notificationRepo NotificationRepo
}

func New(notificationRepo NotificationRepo) *Service {
	return &Service{
		notificationRepo: notificationRepo,
	}
}

func (s *Service) Create(ctx context.Context, n *domain.Notification) (*domain.Notification, error) {
	return s.notificationRepo.Create(ctx, n)
}

// List pages through a user's notifications, newest first. page and
// limit are 1-based and clamped.
func (s *Service) List(ctx context.Context, userID int, filter notificationrepo.Filter, page, limit int) ([]domain.Notification, int, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return s.notificationRepo.ListByUser(ctx, userID, filter, limit, (page-1)*limit)
}

// MarkRead marks one of the user's notifications read. Marking someone
// else's notification reports not found.
func (s *Service) MarkRead(ctx context.Context, id, userID int) error {
	ok, err := s.notificationRepo.MarkRead(ctx, id, userID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotificationNotFound
	}
	return nil
}

func (s *Service) MarkAllRead(ctx context.Context, userID int) (int64, error) {
	return s.notificationRepo.MarkAllRead(ctx, userID)
}

func (s *Service) UnreadCount(ctx context.Context, userID int) (int, error) {
	return s.notificationRepo.CountUnread(ctx, userID)
}
