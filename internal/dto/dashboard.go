package dto

import "github.com/shopspring/decimal"

type DashboardPartnersDTO struct {
	Total    int `json:"total" example:"12"`
	Active   int `json:"active" example:"10"`
	Inactive int `json:"inactive" example:"2"`
}

type DashboardOrdersDTO struct {
	Total        int             `json:"total" example:"130"`
	Completed    int             `json:"completed" example:"100"`
	Pending      int             `json:"pending" example:"25"`
	Cancelled    int             `json:"cancelled" example:"5"`
	TotalRevenue decimal.Decimal `json:"totalRevenue" swaggertype:"number" example:"15400.50"`
}

type DashboardResponseDTO struct {
	Name               string                   `json:"name"`
	Email              string                   `json:"email"`
	WalletBalance      decimal.Decimal          `json:"walletBalance" swaggertype:"number"`
	Partners           DashboardPartnersDTO     `json:"partners"`
	Orders             DashboardOrdersDTO       `json:"orders"`
	RecentTransactions []TransactionResponseDTO `json:"recentTransactions"`
}
