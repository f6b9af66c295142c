package orderservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/scrapsync/scrapsync/internal/domain"
	"github.com/scrapsync/scrapsync/internal/pg"
	orderrepo "github.com/scrapsync/scrapsync/internal/repo/order-repo"
)

type OrderRepo interface {
	Create(ctx context.Context, order *domain.Order) (*domain.Order, error)
	GetByID(ctx context.Context, id int) (*domain.Order, error)
	GetByIDForUpdate(ctx context.Context, id int) (*domain.Order, error)
	List(ctx context.Context, filter orderrepo.Filter) ([]domain.Order, error)
	Assign(ctx context.Context, orderID, partnerID int) (*domain.Order, error)
	UpdateStatus(ctx context.Context, orderID int, status string, completedAt *time.Time) (*domain.Order, error)
}

type AccountRepo interface {
	GetByID(ctx context.Context, id int) (*domain.Account, error)
}

type RelationshipRepo interface {
	GetActiveByPair(ctx context.Context, mcpID, partnerID int) (*domain.PartnerRelationship, error)
}

// Payout settles the pickup partner's share when an order completes.
type Payout interface {
	SettlePayout(ctx context.Context, order *domain.Order) error
}

type Notifier interface {
	Create(ctx context.Context, n *domain.Notification) (*domain.Notification, error)
}

var (
	ErrInvalidOrder      = errors.New("invalid order")
	ErrOrderNotFound     = errors.New("order not found")
	ErrPartnerNotFound   = errors.New("pickup partner not found or inactive")
	ErrNotAssociated     = errors.New("pickup partner is not associated with this MCP")
	ErrNotOrderParty     = errors.New("order does not belong to this account")
	ErrInvalidTransition = errors.New("invalid order status transition")
	ErrTransactionFailed = errors.New("transaction failed")
)

// statusRank orders the forward-only lifecycle. CANCELLED sits outside
// the ranking: it is reachable from any non-terminal state and, like
// COMPLETED, absorbs every later transition attempt.
var statusRank = map[string]int{
	domain.OrderPending:    0,
	domain.OrderAssigned:   1,
	domain.OrderInProgress: 2,
	domain.OrderCompleted:  3,
}

func isTerminal(status string) bool {
	return status == domain.OrderCompleted || status == domain.OrderCancelled
}

// isOrderParty reports whether userID is the order's MCP or its
// assigned pickup partner.
func isOrderParty(order *domain.Order, userID int) bool {
	if order.MCPID == userID {
		return true
	}
	return order.PickupPartnerID != nil && *order.PickupPartnerID == userID
}

func canTransition(from, to string) bool {
	if isTerminal(from) {
		return false
	}
	if to == domain.OrderCancelled {
		return true
	}
	fromRank, ok := statusRank[from]
	if !ok {
		return false
	}
	toRank, ok := statusRank[to]
	if !ok {
		return false
	}
	return toRank > fromRank
}

// Service runs the order lifecycle. A transition to COMPLETED settles
// the partner payout inside the same atomic unit, and the row lock
// taken before the transition check makes that settlement happen at
// most once per order.
type Service struct {
	orderRepo        OrderRepo
	accountRepo      AccountRepo
	relationshipRepo RelationshipRepo
	payout           Payout
	notifier         Notifier
	txManager        pg.TXManager
}

func New(orderRepo OrderRepo, accountRepo AccountRepo, relationshipRepo RelationshipRepo, payout Payout, notifier Notifier, txManager pg.TXManager) *Service {
	return &Service{
		orderRepo:        orderRepo,
		accountRepo:      accountRepo,
		relationshipRepo: relationshipRepo,
		payout:           payout,
		notifier:         notifier,
		txManager:        txManager,
	}
}

var knownErrors = []error{
	ErrInvalidOrder,
	ErrOrderNotFound,
	ErrPartnerNotFound,
	ErrNotAssociated,
	ErrNotOrderParty,
	ErrInvalidTransition,
}

func unitErr(op string, err error) error {
	if err == nil {
		return nil
	}
	for _, known := range knownErrors {
		if errors.Is(err, known) {
			return err
		}
	}
	zap.L().Error(op+" unit aborted", zap.Error(err))
	return ErrTransactionFailed
}

// CreateParams carries the fields of a new order.
type CreateParams struct {
	OrderAmount decimal.Decimal
	Address     string
	Latitude    *float64
	Longitude   *float64
}

func (s *Service) Create(ctx context.Context, userID int, p CreateParams) (*domain.Order, error) {
	if p.OrderAmount.Sign() <= 0 || p.Address == "" {
		return nil, ErrInvalidOrder
	}

	var order *domain.Order
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		order, err = s.orderRepo.Create(ctx, &domain.Order{
			CustomerID:  userID,
			MCPID:       userID,
			OrderAmount: p.OrderAmount,
			Status:      domain.OrderPending,
			Address:     p.Address,
			Latitude:    p.Latitude,
			Longitude:   p.Longitude,
		})
		if err != nil {
			return err
		}

		_, err = s.notifier.Create(ctx, &domain.Notification{
			UserID:         order.MCPID,
			Title:          "New Order Received",
			Message:        fmt.Sprintf("You have received a new order of amount ₹%s", order.OrderAmount),
			Type:           domain.NotificationOrder,
			ReferenceID:    &order.ID,
			Priority:       domain.PriorityHigh,
			ActionRequired: true,
		})
		return err
	})
	if err != nil {
		return nil, unitErr("create order", err)
	}
	return order, nil
}

func (s *Service) List(ctx context.Context, filter orderrepo.Filter) ([]domain.Order, error) {
	return s.orderRepo.List(ctx, filter)
}

func (s *Service) GetOrder(ctx context.Context, orderID int) (*domain.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// Assign hands a PENDING order to an active pickup partner of the
// order's MCP and moves it to ASSIGNED. Only the order's MCP may
// assign.
func (s *Service) Assign(ctx context.Context, userID, orderID, partnerID int) (*domain.Order, error) {
	var order *domain.Order
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		current, err := s.orderRepo.GetByIDForUpdate(ctx, orderID)
		if err != nil {
			return err
		}
		if current == nil {
			return ErrOrderNotFound
		}
		if current.MCPID != userID {
			return ErrNotOrderParty
		}
		if !canTransition(current.Status, domain.OrderAssigned) {
			return ErrInvalidTransition
		}

		partner, err := s.accountRepo.GetByID(ctx, partnerID)
		if err != nil {
			return err
		}
		if partner == nil || partner.Role != domain.RolePickupPartner || partner.Status != domain.StatusActive {
			return ErrPartnerNotFound
		}

		rel, err := s.relationshipRepo.GetActiveByPair(ctx, current.MCPID, partnerID)
		if err != nil {
			return err
		}
		if rel == nil {
			return ErrNotAssociated
		}

		order, err = s.orderRepo.Assign(ctx, orderID, partnerID)
		if err != nil {
			return err
		}

		_, err = s.notifier.Create(ctx, &domain.Notification{
			UserID:         partnerID,
			Title:          "New Order Assigned",
			Message:        fmt.Sprintf("You have been assigned a new order #%d", orderID),
			Type:           domain.NotificationOrder,
			ReferenceID:    &orderID,
			Priority:       domain.PriorityHigh,
			ActionRequired: true,
		})
		return err
	})
	if err != nil {
		return nil, unitErr("assign order", err)
	}
	return order, nil
}

// UpdateStatus advances the lifecycle on behalf of the order's MCP or
// its assigned pickup partner. COMPLETED stamps completed_at and
// settles the partner payout in the same unit; CANCELLED goes through
// Cancel so a reason is always recorded.
func (s *Service) UpdateStatus(ctx context.Context, userID, orderID int, status string) (*domain.Order, error) {
	if status == domain.OrderCancelled {
		return s.Cancel(ctx, userID, orderID, "")
	}
	if _, ok := statusRank[status]; !ok {
		return nil, ErrInvalidTransition
	}

	var order *domain.Order
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		current, err := s.orderRepo.GetByIDForUpdate(ctx, orderID)
		if err != nil {
			return err
		}
		if current == nil {
			return ErrOrderNotFound
		}
		if !isOrderParty(current, userID) {
			return ErrNotOrderParty
		}
		if !canTransition(current.Status, status) {
			return ErrInvalidTransition
		}

		var completedAt *time.Time
		if status == domain.OrderCompleted {
			now := time.Now()
			completedAt = &now
		}

		order, err = s.orderRepo.UpdateStatus(ctx, orderID, status, completedAt)
		if err != nil {
			return err
		}

		if status == domain.OrderCompleted {
			if err := s.payout.SettlePayout(ctx, order); err != nil {
				return err
			}
		}

		return s.notifyParties(ctx, order, "Order Status Updated",
			fmt.Sprintf("Order #%d status has been updated to %s", order.ID, status),
			statusPriority(status), statusActionRequired(status))
	})
	if err != nil {
		return nil, unitErr("update order status", err)
	}
	return order, nil
}

func (s *Service) Cancel(ctx context.Context, userID, orderID int, reason string) (*domain.Order, error) {
	if reason == "" {
		reason = "No reason provided"
	}

	var order *domain.Order
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		current, err := s.orderRepo.GetByIDForUpdate(ctx, orderID)
		if err != nil {
			return err
		}
		if current == nil {
			return ErrOrderNotFound
		}
		if !isOrderParty(current, userID) {
			return ErrNotOrderParty
		}
		if !canTransition(current.Status, domain.OrderCancelled) {
			return ErrInvalidTransition
		}

		order, err = s.orderRepo.UpdateStatus(ctx, orderID, domain.OrderCancelled, nil)
		if err != nil {
			return err
		}

		return s.notifyParties(ctx, order, "Order Cancelled",
			fmt.Sprintf("Order #%d has been cancelled. Reason: %s", order.ID, reason),
			domain.PriorityMedium, false)
	})
	if err != nil {
		return nil, unitErr("cancel order", err)
	}
	return order, nil
}

// notifyParties fans a lifecycle notification out to customer, MCP and
// pickup partner, once per distinct user.
func (s *Service) notifyParties(ctx context.Context, order *domain.Order, title, message, priority string, actionRequired bool) error {
	seen := map[int]struct{}{}
	userIDs := []int{order.CustomerID, order.MCPID}
	if order.PickupPartnerID != nil {
		userIDs = append(userIDs, *order.PickupPartnerID)
	}

	for _, userID := range userIDs {
		if _, ok := seen[userID]; ok {
			continue
		}
		seen[userID] = struct{}{}

		if _, err := s.notifier.Create(ctx, &domain.Notification{
			UserID:         userID,
			Title:          title,
			Message:        message,
			Type:           domain.NotificationOrder,
			ReferenceID:    &order.ID,
			Priority:       priority,
			ActionRequired: actionRequired,
		}); err != nil {
			return err
		}
	}
	return nil
}

func statusPriority(status string) string {
	if status == domain.OrderInProgress {
		return domain.PriorityHigh
	}
	return domain.PriorityMedium
}

func statusActionRequired(status string) bool {
	return status != domain.OrderCompleted && status != domain.OrderCancelled
}
