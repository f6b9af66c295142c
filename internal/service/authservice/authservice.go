package authservice

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/scrapsync/scrapsync/internal/domain"
	accountrepo "github.com/scrapsync/scrapsync/internal/repo/account-repo"
	"github.com/scrapsync/scrapsync/pkg/auth"
)

const tokenTTL = 24 * time.Hour

type AccountRepo interface {
	Create(ctx context.Context, account *domain.Account) (*domain.Account, error)
	FindByEmail(ctx context.Context, email string) (*domain.Account, error)
	GetByID(ctx context.Context, id int) (*domain.Account, error)
	UpdateProfile(ctx context.Context, id int, fullName, phone string) (*domain.Account, error)
}

var (
	ErrInvalidInput       = errors.New("invalid registration data")
	ErrDuplicateEmail     = errors.New("email already taken")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountInactive    = errors.New("account is deactivated")
	ErrAccountNotFound    = errors.New("account not found")
	ErrInternal           = errors.New("internal error")
)

type Service struct {
	accountRepo AccountRepo
	hashService auth.HashServiceInterface
	jwtService  auth.JWTServiceInterface
}

func New(accountRepo AccountRepo, hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface) *Service {
	return &Service{
		accountRepo: accountRepo,
		hashService: hashService,
		jwtService:  jwtService,
	}
}

// RegisterParams carries a new account's fields.
type RegisterParams struct {
	FullName string
	Email    string
	Password string
	Phone    string
	Role     string
}

func (s *Service) Register(ctx context.Context, p RegisterParams) (*domain.Account, error) {
	if p.FullName == "" || p.Email == "" || p.Password == "" {
		return nil, ErrInvalidInput
	}
	if p.Role != domain.RoleMCP && p.Role != domain.RolePickupPartner {
		return nil, ErrInvalidInput
	}

	passwordHash, err := s.hashService.HashPassword(p.Password)
	if err != nil {
		return nil, ErrInvalidInput
	}

	account, err := s.accountRepo.Create(ctx, &domain.Account{
		FullName:     p.FullName,
		Email:        p.Email,
		Phone:        p.Phone,
		PasswordHash: passwordHash,
		Role:         p.Role,
		Status:       domain.StatusActive,
	})
	if err != nil {
		if errors.Is(err, accountrepo.ErrDuplicateEmail) {
			return nil, ErrDuplicateEmail
		}
		zap.L().Error("failed to register account", zap.Error(err))
		return nil, ErrInternal
	}
	return account, nil
}

// Authenticate checks the credentials and returns the account. A
// deactivated account cannot log in even with the right password.
func (s *Service) Authenticate(ctx context.Context, email, password string) (*domain.Account, error) {
	account, err := s.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		zap.L().Error("failed to look up account", zap.Error(err))
		return nil, ErrInternal
	}
	if account == nil || !s.hashService.ComparePassword(account.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}
	if account.Status != domain.StatusActive {
		return nil, ErrAccountInactive
	}
	return account, nil
}

func (s *Service) GenerateToken(account *domain.Account) (string, error) {
	token, err := s.jwtService.GenerateJWT(account.ID, account.Role, time.Now().Add(tokenTTL))
	if err != nil {
		zap.L().Error("failed to sign token", zap.Error(err))
		return "", ErrInternal
	}
	return token, nil
}

func (s *Service) GetProfile(ctx context.Context, userID int) (*domain.Account, error) {
	account, err := s.accountRepo.GetByID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to load profile", zap.Error(err))
		return nil, ErrInternal
	}
	if account == nil {
		return nil, ErrAccountNotFound
	}
	return account, nil
}

// UpdateProfile changes name and phone. Empty fields are left untouched;
// email and role are immutable.
func (s *Service) UpdateProfile(ctx context.Context, userID int, fullName, phone string) (*domain.Account, error) {
	if fullName == "" && phone == "" {
		return nil, ErrInvalidInput
	}
	account, err := s.accountRepo.UpdateProfile(ctx, userID, fullName, phone)
	if err != nil {
		zap.L().Error("failed to update profile", zap.Error(err))
		return nil, ErrInternal
	}
	if account == nil {
		return nil, ErrAccountNotFound
	}
	return account, nil
}
