package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/scrapsync/scrapsync/docs"
	authhandlers "github.com/scrapsync/scrapsync/internal/handlers/auth"
	mcphandlers "github.com/scrapsync/scrapsync/internal/handlers/mcp"
	notificationhandlers "github.com/scrapsync/scrapsync/internal/handlers/notifications"
	orderhandlers "github.com/scrapsync/scrapsync/internal/handlers/orders"
	partnerhandlers "github.com/scrapsync/scrapsync/internal/handlers/partners"
	paymenthandlers "github.com/scrapsync/scrapsync/internal/handlers/payments"
	transactionhandlers "github.com/scrapsync/scrapsync/internal/handlers/transactions"
	wallethandlers "github.com/scrapsync/scrapsync/internal/handlers/wallet"
	"github.com/scrapsync/scrapsync/internal/service"
	"github.com/scrapsync/scrapsync/pkg/auth"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
	GetProfile(w http.ResponseWriter, r *http.Request)
	UpdateProfile(w http.ResponseWriter, r *http.Request)
}

type WalletHandler interface {
	GetBalance(w http.ResponseWriter, r *http.Request)
	AddMoney(w http.ResponseWriter, r *http.Request)
	Transfer(w http.ResponseWriter, r *http.Request)
	Withdraw(w http.ResponseWriter, r *http.Request)
}

type PaymentHandler interface {
	CreateTopUp(w http.ResponseWriter, r *http.Request)
	ConfirmPayment(w http.ResponseWriter, r *http.Request)
}

type OrderHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	GetOrder(w http.ResponseWriter, r *http.Request)
	Assign(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
	Cancel(w http.ResponseWriter, r *http.Request)
}

type PartnerHandler interface {
	AddPartner(w http.ResponseWriter, r *http.Request)
	ListPartners(w http.ResponseWriter, r *http.Request)
	GetPartner(w http.ResponseWriter, r *http.Request)
	UpdateCommission(w http.ResponseWriter, r *http.Request)
	DeactivatePartner(w http.ResponseWriter, r *http.Request)
}

type TransactionHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	GetTransaction(w http.ResponseWriter, r *http.Request)
}

type NotificationHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	MarkRead(w http.ResponseWriter, r *http.Request)
	MarkAllRead(w http.ResponseWriter, r *http.Request)
	UnreadCount(w http.ResponseWriter, r *http.Request)
}

type MCPHandler interface {
	GetDashboard(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler         AuthHandler
	WalletHandler       WalletHandler
	PaymentHandler      PaymentHandler
	OrderHandler        OrderHandler
	PartnerHandler      PartnerHandler
	TransactionHandler  TransactionHandler
	NotificationHandler NotificationHandler
	MCPHandler          MCPHandler

	jwtService auth.JWTServiceInterface
}

func New(s *service.Services, jwtService auth.JWTServiceInterface) *Handlers {
	return &Handlers{
		AuthHandler:         authhandlers.New(s.AuthService),
		WalletHandler:       wallethandlers.New(s.WalletService),
		PaymentHandler:      paymenthandlers.New(s.PaymentService),
		OrderHandler:        orderhandlers.New(s.OrderService),
		PartnerHandler:      partnerhandlers.New(s.PartnerService),
		TransactionHandler:  transactionhandlers.New(s.TransactionService),
		NotificationHandler: notificationhandlers.New(s.NotificationService),
		MCPHandler:          mcphandlers.New(s.MCPService),
		jwtService:          jwtService,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
		cors.Handler(cors.Options{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
			MaxAge:         300,
		}),
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.AuthHandler.Register)
			r.Post("/login", h.AuthHandler.Login)
		})

		r.Group(func(r chi.Router) {
			r.Use(auth.Middleware(h.jwtService))

			r.Get("/profile", h.AuthHandler.GetProfile)
			r.Patch("/profile", h.AuthHandler.UpdateProfile)
			r.Route("/wallet", func(r chi.Router) {
				r.Get("/balance", h.WalletHandler.GetBalance)
				r.Post("/add", h.WalletHandler.AddMoney)
				r.Post("/transfer", h.WalletHandler.Transfer)
				r.Post("/withdraw", h.WalletHandler.Withdraw)
			})
			r.Route("/payments", func(r chi.Router) {
				r.Post("/topup", h.PaymentHandler.CreateTopUp)
				r.Post("/confirm", h.PaymentHandler.ConfirmPayment)
			})
			r.Route("/orders", func(r chi.Router) {
				r.Post("/", h.OrderHandler.Create)
				r.Get("/", h.OrderHandler.List)
				r.Get("/{orderID}", h.OrderHandler.GetOrder)
				r.Post("/{orderID}/assign", h.OrderHandler.Assign)
				r.Patch("/{orderID}/status", h.OrderHandler.UpdateStatus)
				r.Post("/{orderID}/cancel", h.OrderHandler.Cancel)
			})
			r.Route("/partners", func(r chi.Router) {
				r.Post("/", h.PartnerHandler.AddPartner)
				r.Get("/", h.PartnerHandler.ListPartners)
				r.Get("/{partnerID}", h.PartnerHandler.GetPartner)
				r.Patch("/{partnerID}/commission", h.PartnerHandler.UpdateCommission)
				r.Delete("/{partnerID}", h.PartnerHandler.DeactivatePartner)
			})
			r.Route("/transactions", func(r chi.Router) {
				r.Get("/", h.TransactionHandler.List)
				r.Get("/{transactionID}", h.TransactionHandler.GetTransaction)
			})
			r.Route("/notifications", func(r chi.Router) {
				r.Get("/", h.NotificationHandler.List)
				r.Patch("/{notificationID}/read", h.NotificationHandler.MarkRead)
				r.Patch("/read-all", h.NotificationHandler.MarkAllRead)
				r.Get("/unread-count", h.NotificationHandler.UnreadCount)
			})
			r.Get("/mcp/dashboard", h.MCPHandler.GetDashboard)
		})
	})

	return r
}
