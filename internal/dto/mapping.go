package dto

import "github.com/scrapsync/scrapsync/internal/domain"

// Constructors from domain models. Handlers never hand domain structs to
// the encoder directly; the wire shape is pinned here.

func NewTransactionDTO(t domain.Transaction) TransactionResponseDTO {
	return TransactionResponseDTO{
		ID:          t.ID,
		FromUserID:  t.FromUserID,
		ToUserID:    t.ToUserID,
		Amount:      t.Amount,
		Type:        t.Type,
		Status:      t.Status,
		OrderID:     t.OrderID,
		Description: t.Description,
		CreatedAt:   t.CreatedAt,
	}
}

func NewTransactionListDTO(txns []domain.Transaction, total, page, limit int) TransactionListResponseDTO {
	out := TransactionListResponseDTO{
		Transactions: make([]TransactionResponseDTO, 0, len(txns)),
		Pagination:   NewPaginationDTO(total, page, limit),
	}
	for _, t := range txns {
		out.Transactions = append(out.Transactions, NewTransactionDTO(t))
	}
	return out
}

func NewPaginationDTO(total, page, limit int) PaginationDTO {
	pages := 0
	if limit > 0 {
		pages = (total + limit - 1) / limit
	}
	return PaginationDTO{Total: total, Page: page, Limit: limit, Pages: pages}
}

func NewOrderDTO(o domain.Order) OrderResponseDTO {
	return OrderResponseDTO{
		ID:              o.ID,
		CustomerID:      o.CustomerID,
		PickupPartnerID: o.PickupPartnerID,
		MCPID:           o.MCPID,
		OrderAmount:     o.OrderAmount,
		Status:          o.Status,
		Address:         o.Address,
		Latitude:        o.Latitude,
		Longitude:       o.Longitude,
		CreatedAt:       o.CreatedAt,
		CompletedAt:     o.CompletedAt,
	}
}

func NewPartnerDTO(entry domain.RosterEntry) PartnerResponseDTO {
	return PartnerResponseDTO{
		RelationshipID: entry.Relationship.ID,
		Partner: PartnerSummaryDTO{
			ID:       entry.Partner.ID,
			FullName: entry.Partner.FullName,
			Email:    entry.Partner.Email,
			Phone:    entry.Partner.Phone,
			Status:   entry.Partner.Status,
			Balance:  entry.Partner.Balance,
		},
		CommissionRate: entry.Relationship.CommissionRate,
		CommissionType: entry.Relationship.CommissionType,
		Status:         entry.Relationship.Status,
		CreatedAt:      entry.Relationship.CreatedAt,
	}
}

func NewNotificationDTO(n domain.Notification) NotificationResponseDTO {
	return NotificationResponseDTO{
		ID:             n.ID,
		Title:          n.Title,
		Message:        n.Message,
		Type:           n.Type,
		IsRead:         n.IsRead,
		ReferenceID:    n.ReferenceID,
		Priority:       n.Priority,
		ActionRequired: n.ActionRequired,
		CreatedAt:      n.CreatedAt,
	}
}
