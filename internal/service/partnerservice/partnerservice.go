package partnerservice

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/scrapsync/scrapsync/internal/domain"
	"github.com/scrapsync/scrapsync/internal/pg"
	accountrepo "github.com/scrapsync/scrapsync/internal/repo/account-repo"
	"github.com/scrapsync/scrapsync/pkg/auth"
)

type AccountRepo interface {
	Create(ctx context.Context, account *domain.Account) (*domain.Account, error)
	GetByID(ctx context.Context, id int) (*domain.Account, error)
	UpdateStatus(ctx context.Context, id int, status string) error
}

type RelationshipRepo interface {
	Create(ctx context.Context, rel *domain.PartnerRelationship) (*domain.PartnerRelationship, error)
	GetByPair(ctx context.Context, mcpID, partnerID int) (*domain.PartnerRelationship, error)
	ListByMCP(ctx context.Context, mcpID int) ([]domain.RosterEntry, error)
	Update(ctx context.Context, rel *domain.PartnerRelationship) (*domain.PartnerRelationship, error)
}

type Notifier interface {
	Create(ctx context.Context, n *domain.Notification) (*domain.Notification, error)
}

var (
	ErrInvalidInput      = errors.New("invalid partner data")
	ErrDuplicateEmail    = errors.New("email already taken")
	ErrPartnerNotFound   = errors.New("partner not found")
	ErrNotAssociated     = errors.New("partner is not associated with this MCP")
	ErrTransactionFailed = errors.New("transaction failed")
)

// Service manages an MCP's pickup partner roster. Accounts are never
// deleted; removing a partner flips the relationship and the partner
// account to INACTIVE.
type Service struct {
	accountRepo      AccountRepo
	relationshipRepo RelationshipRepo
	notifier         Notifier
	hashService      auth.HashServiceInterface
	txManager        pg.TXManager
}

func New(accountRepo AccountRepo, relationshipRepo RelationshipRepo, notifier Notifier, hashService auth.HashServiceInterface, txManager pg.TXManager) *Service {
	return &Service{
		accountRepo:      accountRepo,
		relationshipRepo: relationshipRepo,
		notifier:         notifier,
		hashService:      hashService,
		txManager:        txManager,
	}
}

var knownErrors = []error{
	ErrInvalidInput,
	ErrDuplicateEmail,
	ErrPartnerNotFound,
	ErrNotAssociated,
}

func unitErr(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, accountrepo.ErrDuplicateEmail) {
		return ErrDuplicateEmail
	}
	for _, known := range knownErrors {
		if errors.Is(err, known) {
			return err
		}
	}
	zap.L().Error(op+" unit aborted", zap.Error(err))
	return ErrTransactionFailed
}

// AddParams carries the fields for onboarding a new pickup partner.
type AddParams struct {
	FullName       string
	Email          string
	Password       string
	Phone          string
	CommissionRate decimal.Decimal
	CommissionType string
}

func validCommission(rate decimal.Decimal, commissionType string) bool {
	if rate.Sign() < 0 {
		return false
	}
	return commissionType == domain.CommissionPercentage || commissionType == domain.CommissionFixed
}

// AddPartner creates the partner account and its relationship to the
// MCP in one unit, so a duplicate email leaves no dangling relationship.
func (s *Service) AddPartner(ctx context.Context, mcpID int, p AddParams) (*domain.RosterEntry, error) {
	if p.FullName == "" || p.Email == "" || p.Password == "" || !validCommission(p.CommissionRate, p.CommissionType) {
		return nil, ErrInvalidInput
	}

	passwordHash, err := s.hashService.HashPassword(p.Password)
	if err != nil {
		return nil, ErrInvalidInput
	}

	var entry domain.RosterEntry
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		account, err := s.accountRepo.Create(ctx, &domain.Account{
			FullName:     p.FullName,
			Email:        p.Email,
			Phone:        p.Phone,
			PasswordHash: passwordHash,
			Role:         domain.RolePickupPartner,
			Status:       domain.StatusActive,
		})
		if err != nil {
			return err
		}

		rel, err := s.relationshipRepo.Create(ctx, &domain.PartnerRelationship{
			MCPID:          mcpID,
			PartnerID:      account.ID,
			CommissionRate: p.CommissionRate,
			CommissionType: p.CommissionType,
			Status:         domain.StatusActive,
		})
		if err != nil {
			return err
		}

		entry = domain.RosterEntry{Relationship: *rel, Partner: *account}

		_, err = s.notifier.Create(ctx, &domain.Notification{
			UserID:      mcpID,
			Title:       "New Partner Added",
			Message:     fmt.Sprintf("%s has joined your pickup partner network.", account.FullName),
			Type:        domain.NotificationPartner,
			ReferenceID: &rel.ID,
		})
		return err
	})
	if err != nil {
		return nil, unitErr("add partner", err)
	}
	return &entry, nil
}

func (s *Service) ListPartners(ctx context.Context, mcpID int) ([]domain.RosterEntry, error) {
	return s.relationshipRepo.ListByMCP(ctx, mcpID)
}

// GetPartner returns the roster entry for one partner of the MCP.
func (s *Service) GetPartner(ctx context.Context, mcpID, partnerID int) (*domain.RosterEntry, error) {
	rel, err := s.relationshipRepo.GetByPair(ctx, mcpID, partnerID)
	if err != nil {
		return nil, unitErr("get partner", err)
	}
	if rel == nil {
		return nil, ErrNotAssociated
	}

	partner, err := s.accountRepo.GetByID(ctx, partnerID)
	if err != nil {
		return nil, unitErr("get partner", err)
	}
	if partner == nil {
		return nil, ErrPartnerNotFound
	}
	return &domain.RosterEntry{Relationship: *rel, Partner: *partner}, nil
}

// UpdateParams are the optional commission fields; nil means unchanged.
type UpdateParams struct {
	CommissionRate *decimal.Decimal
	CommissionType *string
	Status         *string
}

func (s *Service) UpdateCommission(ctx context.Context, mcpID, partnerID int, p UpdateParams) (*domain.PartnerRelationship, error) {
	var updated *domain.PartnerRelationship
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		rel, err := s.relationshipRepo.GetByPair(ctx, mcpID, partnerID)
		if err != nil {
			return err
		}
		if rel == nil {
			return ErrNotAssociated
		}

		if p.CommissionRate != nil {
			rel.CommissionRate = *p.CommissionRate
		}
		if p.CommissionType != nil {
			rel.CommissionType = *p.CommissionType
		}
		if p.Status != nil {
			if *p.Status != domain.StatusActive && *p.Status != domain.StatusInactive {
				return ErrInvalidInput
			}
			rel.Status = *p.Status
		}
		if !validCommission(rel.CommissionRate, rel.CommissionType) {
			return ErrInvalidInput
		}

		updated, err = s.relationshipRepo.Update(ctx, rel)
		if err != nil {
			return err
		}

		_, err = s.notifier.Create(ctx, &domain.Notification{
			UserID:      partnerID,
			Title:       "Commission Updated",
			Message:     fmt.Sprintf("Your commission is now %s (%s).", updated.CommissionRate, updated.CommissionType),
			Type:        domain.NotificationPartner,
			ReferenceID: &updated.ID,
		})
		return err
	})
	if err != nil {
		return nil, unitErr("update commission", err)
	}
	return updated, nil
}

// DeactivatePartner takes the partner off the MCP's active roster and
// marks the account INACTIVE. The account and its ledger history stay.
func (s *Service) DeactivatePartner(ctx context.Context, mcpID, partnerID int) error {
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		rel, err := s.relationshipRepo.GetByPair(ctx, mcpID, partnerID)
		if err != nil {
			return err
		}
		if rel == nil {
			return ErrNotAssociated
		}

		rel.Status = domain.StatusInactive
		if _, err := s.relationshipRepo.Update(ctx, rel); err != nil {
			return err
		}

		if err := s.accountRepo.UpdateStatus(ctx, partnerID, domain.StatusInactive); err != nil {
			return err
		}

		_, err = s.notifier.Create(ctx, &domain.Notification{
			UserID:      partnerID,
			Title:       "Account Deactivated",
			Message:     "Your pickup partner account has been deactivated.",
			Type:        domain.NotificationPartner,
			ReferenceID: &rel.ID,
			Priority:    domain.PriorityHigh,
		})
		return err
	})
	return unitErr("deactivate partner", err)
}
