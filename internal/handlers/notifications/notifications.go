package notifications

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/scrapsync/scrapsync/internal/domain"
	"github.com/scrapsync/scrapsync/internal/dto"
	notificationrepo "github.com/scrapsync/scrapsync/internal/repo/notification-repo"
	"github.com/scrapsync/scrapsync/internal/service/notificationservice"
	"github.com/scrapsync/scrapsync/pkg/auth"
	"github.com/scrapsync/scrapsync/pkg/utils"
)

type Service interface {
	List(ctx context.Context, userID int, filter notificationrepo.Filter, page, limit int) ([]domain.Notification, int, error)
	MarkRead(ctx context.Context, id, userID int) error
	MarkAllRead(ctx context.Context, userID int) (int64, error)
	UnreadCount(ctx context.Context, userID int) (int, error)
}

type NotificationHandler struct {
	notificationService Service
}

func New(notificationService Service) *NotificationHandler {
	return &NotificationHandler{
		notificationService: notificationService,
	}
}

// List godoc
//
//	@Summary		List notifications
//	@Description	Paginated notifications of the authenticated account, newest first.
//	@Tags			Notifications
//	@Security		BearerAuth
//	@Produce		json
//	@Param			page	query		int								false	"Page number"	default(1)
//	@Param			limit	query		int								false	"Page size"		default(20)
//	@Param			type	query		string							false	"Filter by type"	Enums(ORDER,WALLET,PARTNER,SYSTEM)
//	@Param			isRead	query		bool							false	"Filter by read state"
//	@Success		200		{object}	dto.NotificationListResponseDTO	"Notifications"
//	@Failure		401		{object}	utils.Response					"User not authorized"
//	@Failure		500		{object}	utils.Response					"Internal server error"
//	@Router			/api/notifications [get]
func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	query := r.URL.Query()
	page, _ := strconv.Atoi(query.Get("page"))
	limit, _ := strconv.Atoi(query.Get("limit"))
	filter := notificationrepo.Filter{Type: query.Get("type")}
	if raw := query.Get("isRead"); raw != "" {
		if isRead, err := strconv.ParseBool(raw); err == nil {
			filter.IsRead = &isRead
		}
	}

	items, total, err := h.notificationService.List(r.Context(), userID, filter, page, limit)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := dto.NotificationListResponseDTO{
		Notifications: make([]dto.NotificationResponseDTO, 0, len(items)),
		Pagination:    dto.NewPaginationDTO(total, page, limit),
	}
	for _, n := range items {
		response.Notifications = append(response.Notifications, dto.NewNotificationDTO(n))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// MarkRead godoc
//
//	@Summary		Mark a notification as read
//	@Tags			Notifications
//	@Security		BearerAuth
//	@Produce		json
//	@Param			notificationID	path		int				true	"Notification ID"
//	@Success		204				{object}	nil				"Marked read"
//	@Failure		400				{object}	utils.Response	"Invalid notification id"
//	@Failure		401				{object}	utils.Response	"User not authorized"
//	@Failure		404				{object}	utils.Response	"Notification not found"
//	@Failure		500				{object}	utils.Response	"Internal server error"
//	@Router			/api/notifications/{notificationID}/read [patch]
func (h *NotificationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)
	id, err := strconv.Atoi(chi.URLParam(r, "notificationID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid notification id")
		return
	}

	if err := h.notificationService.MarkRead(r.Context(), id, userID); err != nil {
		switch {
		case errors.Is(err, notificationservice.ErrNotificationNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusNoContent, nil)
}

// MarkAllRead godoc
//
//	@Summary		Mark all notifications as read
//	@Tags			Notifications
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	utils.Response	"Count of notifications marked"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/notifications/read-all [patch]
func (h *NotificationHandler) MarkAllRead(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	count, err := h.notificationService.MarkAllRead(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{
		Message: strconv.FormatInt(count, 10) + " notifications marked as read",
	})
}

// UnreadCount godoc
//
//	@Summary		Count unread notifications
//	@Tags			Notifications
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.UnreadCountResponseDTO	"Unread count"
//	@Failure		401	{object}	utils.Response				"User not authorized"
//	@Failure		500	{object}	utils.Response				"Internal server error"
//	@Router			/api/notifications/unread-count [get]
func (h *NotificationHandler) UnreadCount(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	count, err := h.notificationService.UnreadCount(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.UnreadCountResponseDTO{Unread: count})
}
