package repo

import (
	"github.com/scrapsync/scrapsync/internal/pg"
	accountrepo "github.com/scrapsync/scrapsync/internal/repo/account-repo"
	notificationrepo "github.com/scrapsync/scrapsync/internal/repo/notification-repo"
	orderrepo "github.com/scrapsync/scrapsync/internal/repo/order-repo"
	relationshiprepo "github.com/scrapsync/scrapsync/internal/repo/relationship-repo"
	transactionrepo "github.com/scrapsync/scrapsync/internal/repo/transaction-repo"
)

// Repositories bundles every storage adapter. Fields stay concrete so
// each service can carve out its own consumer interface.
type Repositories struct {
	AccountRepo      *accountrepo.Repository
	RelationshipRepo *relationshiprepo.Repository
	OrderRepo        *orderrepo.Repository
	TransactionRepo  *transactionrepo.Repository
	NotificationRepo *notificationrepo.Repository
}

func New(conn pg.Database) *Repositories {
	return &Repositories{
		AccountRepo:      accountrepo.New(conn),
		RelationshipRepo: relationshiprepo.New(conn),
		OrderRepo:        orderrepo.New(conn),
		TransactionRepo:  transactionrepo.New(conn),
		NotificationRepo: notificationrepo.New(conn),
	}
}
