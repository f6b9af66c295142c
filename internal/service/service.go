package service

import (
	"github.com/scrapsync/scrapsync/internal/gateway"
	authhandlers "github.com/scrapsync/scrapsync/internal/handlers/auth"
	mcphandlers "github.com/scrapsync/scrapsync/internal/handlers/mcp"
	notificationhandlers "github.com/scrapsync/scrapsync/internal/handlers/notifications"
	orderhandlers "github.com/scrapsync/scrapsync/internal/handlers/orders"
	partnerhandlers "github.com/scrapsync/scrapsync/internal/handlers/partners"
	paymenthandlers "github.com/scrapsync/scrapsync/internal/handlers/payments"
	transactionhandlers "github.com/scrapsync/scrapsync/internal/handlers/transactions"
	wallethandlers "github.com/scrapsync/scrapsync/internal/handlers/wallet"
	"github.com/scrapsync/scrapsync/internal/pg"
	"github.com/scrapsync/scrapsync/internal/repo"
	"github.com/scrapsync/scrapsync/internal/service/authservice"
	"github.com/scrapsync/scrapsync/internal/service/mcpservice"
	"github.com/scrapsync/scrapsync/internal/service/notificationservice"
	"github.com/scrapsync/scrapsync/internal/service/orderservice"
	"github.com/scrapsync/scrapsync/internal/service/partnerservice"
	"github.com/scrapsync/scrapsync/internal/service/paymentservice"
	"github.com/scrapsync/scrapsync/internal/service/transactionservice"
	"github.com/scrapsync/scrapsync/internal/service/walletservice"
	pkgauth "github.com/scrapsync/scrapsync/pkg/auth"
)

type Services struct {
	AuthService         authhandlers.Service
	WalletService       wallethandlers.Service
	PaymentService      paymenthandlers.Service
	OrderService        orderhandlers.Service
	PartnerService      partnerhandlers.Service
	TransactionService  transactionhandlers.Service
	NotificationService notificationhandlers.Service
	MCPService          mcphandlers.Service
}

// New wires the service graph. The wallet service doubles as the order
// service's payout engine, and the notification service is the notifier
// behind every money- or order-related event.
func New(repo *repo.Repositories, provider *gateway.Client, jwtService pkgauth.JWTServiceInterface, txManager pg.TXManager) *Services {
	hashService := &pkgauth.HashService{}

	notificationService := notificationservice.New(repo.NotificationRepo)
	walletService := walletservice.New(repo.AccountRepo, repo.RelationshipRepo, repo.TransactionRepo, notificationService, txManager)
	paymentService := paymentservice.New(provider, repo.AccountRepo, repo.TransactionRepo, notificationService, txManager)
	orderService := orderservice.New(repo.OrderRepo, repo.AccountRepo, repo.RelationshipRepo, walletService, notificationService, txManager)
	partnerService := partnerservice.New(repo.AccountRepo, repo.RelationshipRepo, notificationService, hashService, txManager)
	authService := authservice.New(repo.AccountRepo, hashService, jwtService)
	transactionService := transactionservice.New(repo.TransactionRepo)
	mcpService := mcpservice.New(repo.AccountRepo, repo.RelationshipRepo, repo.OrderRepo, repo.TransactionRepo)

	return &Services{
		AuthService:         authService,
		WalletService:       walletService,
		PaymentService:      paymentService,
		OrderService:        orderService,
		PartnerService:      partnerService,
		TransactionService:  transactionService,
		NotificationService: notificationService,
		MCPService:          mcpService,
	}
}
