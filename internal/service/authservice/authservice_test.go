package authservice

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/scrapsync/scrapsync/internal/domain"
	accountrepo "github.com/scrapsync/scrapsync/internal/repo/account-repo"
	"github.com/scrapsync/scrapsync/pkg/auth"
)

func newMock(t *testing.T) (*Service, *MockAccountRepo) {
	ctrl := gomock.NewController(t)
	accounts := NewMockAccountRepo(ctrl)
	service := New(accounts, &auth.HashService{}, auth.NewJWTService("test-secret"))
	return service, accounts
}

func registerParams() RegisterParams {
	return RegisterParams{
		FullName: "Asha Verma",
		Email:    "asha@scrapsync.in",
		Password: "secret",
		Phone:    "+919800000001",
		Role:     domain.RoleMCP,
	}
}

func TestRegister(t *testing.T) {
	t.Run("creates an active account with a hashed password", func(t *testing.T) {
		service, accounts := newMock(t)

		accounts.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, account *domain.Account) (*domain.Account, error) {
				assert.Equal(t, domain.RoleMCP, account.Role)
				assert.Equal(t, domain.StatusActive, account.Status)
				assert.NotEqual(t, "secret", account.PasswordHash)
				assert.True(t, (&auth.HashService{}).ComparePassword(account.PasswordHash, "secret"))
				account.ID = 1
				return account, nil
			})

		account, err := service.Register(context.Background(), registerParams())
		assert.NoError(t, err)
		assert.Equal(t, 1, account.ID)
	})

	t.Run("rejects unknown roles", func(t *testing.T) {
		service, _ := newMock(t)

		p := registerParams()
		p.Role = "ADMIN"
		_, err := service.Register(context.Background(), p)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("rejects missing fields", func(t *testing.T) {
		service, _ := newMock(t)

		p := registerParams()
		p.Email = ""
		_, err := service.Register(context.Background(), p)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("duplicate email", func(t *testing.T) {
		service, accounts := newMock(t)
		accounts.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, accountrepo.ErrDuplicateEmail)

		_, err := service.Register(context.Background(), registerParams())
		assert.ErrorIs(t, err, ErrDuplicateEmail)
	})
}

func TestAuthenticate(t *testing.T) {
	hash, _ := (&auth.HashService{}).HashPassword("secret")
	active := &domain.Account{ID: 1, Email: "asha@scrapsync.in", PasswordHash: hash, Role: domain.RoleMCP, Status: domain.StatusActive}

	t.Run("valid credentials", func(t *testing.T) {
		service, accounts := newMock(t)
		accounts.EXPECT().FindByEmail(gomock.Any(), "asha@scrapsync.in").Return(active, nil)

		account, err := service.Authenticate(context.Background(), "asha@scrapsync.in", "secret")
		assert.NoError(t, err)
		assert.Equal(t, 1, account.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		service, accounts := newMock(t)
		accounts.EXPECT().FindByEmail(gomock.Any(), "asha@scrapsync.in").Return(active, nil)

		_, err := service.Authenticate(context.Background(), "asha@scrapsync.in", "nope")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		service, accounts := newMock(t)
		accounts.EXPECT().FindByEmail(gomock.Any(), "ghost@scrapsync.in").Return(nil, nil)

		_, err := service.Authenticate(context.Background(), "ghost@scrapsync.in", "secret")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("deactivated account", func(t *testing.T) {
		service, accounts := newMock(t)
		inactive := *active
		inactive.Status = domain.StatusInactive
		accounts.EXPECT().FindByEmail(gomock.Any(), "asha@scrapsync.in").Return(&inactive, nil)

		_, err := service.Authenticate(context.Background(), "asha@scrapsync.in", "secret")
		assert.ErrorIs(t, err, ErrAccountInactive)
	})
}

func TestGetProfile(t *testing.T) {
	t.Run("returns the account", func(t *testing.T) {
		service, accounts := newMock(t)
		accounts.EXPECT().GetByID(gomock.Any(), 1).
			Return(&domain.Account{ID: 1, FullName: "Asha Verma"}, nil)

		account, err := service.GetProfile(context.Background(), 1)
		assert.NoError(t, err)
		assert.Equal(t, "Asha Verma", account.FullName)
	})

	t.Run("unknown account", func(t *testing.T) {
		service, accounts := newMock(t)
		accounts.EXPECT().GetByID(gomock.Any(), 99).Return(nil, nil)

		_, err := service.GetProfile(context.Background(), 99)
		assert.ErrorIs(t, err, ErrAccountNotFound)
	})
}

func TestUpdateProfile(t *testing.T) {
	t.Run("updates name and phone", func(t *testing.T) {
		service, accounts := newMock(t)
		accounts.EXPECT().UpdateProfile(gomock.Any(), 1, "Asha P. Verma", "+919800000009").
			Return(&domain.Account{ID: 1, FullName: "Asha P. Verma", Phone: "+919800000009"}, nil)

		account, err := service.UpdateProfile(context.Background(), 1, "Asha P. Verma", "+919800000009")
		assert.NoError(t, err)
		assert.Equal(t, "Asha P. Verma", account.FullName)
	})

	t.Run("rejects an empty update", func(t *testing.T) {
		service, _ := newMock(t)

		_, err := service.UpdateProfile(context.Background(), 1, "", "")
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("unknown account", func(t *testing.T) {
		service, accounts := newMock(t)
		accounts.EXPECT().UpdateProfile(gomock.Any(), 99, "Asha", "").Return(nil, nil)

		_, err := service.UpdateProfile(context.Background(), 99, "Asha", "")
		assert.ErrorIs(t, err, ErrAccountNotFound)
	})
}

func TestGenerateToken(t *testing.T) {
	service, _ := newMock(t)

	token, err := service.GenerateToken(&domain.Account{ID: 1, Role: domain.RoleMCP})
	assert.NoError(t, err)

	claims, err := auth.NewJWTService("test-secret").ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, 1, claims.UserID)
	assert.Equal(t, domain.RoleMCP, claims.Role)
}
