package dto

type PaginationDTO struct {
	Total int `json:"total" example:"57"`
	Page  int `json:"page" example:"1"`
	Limit int `json:"limit" example:"10"`
	Pages int `json:"pages" example:"6"`
}

type TransactionListResponseDTO struct {
	Transactions []TransactionResponseDTO `json:"transactions"`
	Pagination   PaginationDTO            `json:"pagination"`
}
