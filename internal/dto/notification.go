package dto

import "time"

type NotificationResponseDTO struct {
	ID             int       `json:"id" example:"5"`
	Title          string    `json:"title" example:"Money Added"`
	Message        string    `json:"message"`
	Type           string    `json:"type" example:"WALLET"`
	IsRead         bool      `json:"isRead"`
	ReferenceID    *int      `json:"referenceId,omitempty"`
	Priority       string    `json:"priority" example:"medium"`
	ActionRequired bool      `json:"actionRequired"`
	CreatedAt      time.Time `json:"createdAt"`
}

type NotificationListResponseDTO struct {
	Notifications []NotificationResponseDTO `json:"notifications"`
	Pagination    PaginationDTO             `json:"pagination"`
}

type UnreadCountResponseDTO struct {
	Unread int `json:"unread" example:"3"`
}
