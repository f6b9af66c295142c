package partners

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/scrapsync/scrapsync/internal/domain"
	"github.com/scrapsync/scrapsync/internal/dto"
	"github.com/scrapsync/scrapsync/internal/service/partnerservice"
	"github.com/scrapsync/scrapsync/pkg/auth"
	"github.com/scrapsync/scrapsync/pkg/utils"
)

type Service interface {
	AddPartner(ctx context.Context, mcpID int, p partnerservice.AddParams) (*domain.RosterEntry, error)
	ListPartners(ctx context.Context, mcpID int) ([]domain.RosterEntry, error)
	GetPartner(ctx context.Context, mcpID, partnerID int) (*domain.RosterEntry, error)
	UpdateCommission(ctx context.Context, mcpID, partnerID int, p partnerservice.UpdateParams) (*domain.PartnerRelationship, error)
	DeactivatePartner(ctx context.Context, mcpID, partnerID int) error
}

type PartnerHandler struct {
	partnerService Service
}

func New(partnerService Service) *PartnerHandler {
	return &PartnerHandler{
		partnerService: partnerService,
	}
}

// AddPartner godoc
//
//	@Summary		Register a pickup partner
//	@Description	Create a pickup partner account under the authenticated MCP with its commission terms. Account and relationship commit atomically.
//	@Tags			Partners
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.AddPartnerRequestDTO	true	"Partner payload"
//	@Success		201		{object}	dto.PartnerResponseDTO		"Created partner"
//	@Failure		400		{object}	utils.Response				"Invalid partner data"
//	@Failure		401		{object}	utils.Response				"User not authorized"
//	@Failure		409		{object}	utils.Response				"Email already taken"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/partners [post]
func (h *PartnerHandler) AddPartner(w http.ResponseWriter, r *http.Request) {
	mcpID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.AddPartnerRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	entry, err := h.partnerService.AddPartner(r.Context(), mcpID, partnerservice.AddParams{
		FullName:       req.FullName,
		Email:          req.Email,
		Password:       req.Password,
		Phone:          req.Phone,
		CommissionRate: req.CommissionRate,
		CommissionType: req.CommissionType,
	})
	if err != nil {
		h.respondPartnerError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewPartnerDTO(*entry))
}

// ListPartners godoc
//
//	@Summary		List pickup partners
//	@Description	All partners on the authenticated MCP's roster, active and inactive.
//	@Tags			Partners
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.PartnerResponseDTO	"Roster"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/partners [get]
func (h *PartnerHandler) ListPartners(w http.ResponseWriter, r *http.Request) {
	mcpID := r.Context().Value(auth.UserIDKey).(int)

	entries, err := h.partnerService.ListPartners(r.Context(), mcpID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.PartnerResponseDTO, 0, len(entries))
	for _, entry := range entries {
		response = append(response, dto.NewPartnerDTO(entry))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetPartner godoc
//
//	@Summary		Get partner details
//	@Tags			Partners
//	@Security		BearerAuth
//	@Produce		json
//	@Param			partnerID	path		int						true	"Partner ID"
//	@Success		200			{object}	dto.PartnerResponseDTO	"Partner"
//	@Failure		400			{object}	utils.Response			"Invalid partner id"
//	@Failure		401			{object}	utils.Response			"User not authorized"
//	@Failure		404			{object}	utils.Response			"Partner not on this roster"
//	@Failure		500			{object}	utils.Response			"Internal server error"
//	@Router			/api/partners/{partnerID} [get]
func (h *PartnerHandler) GetPartner(w http.ResponseWriter, r *http.Request) {
	mcpID := r.Context().Value(auth.UserIDKey).(int)
	partnerID, err := strconv.Atoi(chi.URLParam(r, "partnerID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid partner id")
		return
	}

	entry, err := h.partnerService.GetPartner(r.Context(), mcpID, partnerID)
	if err != nil {
		h.respondPartnerError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewPartnerDTO(*entry))
}

// UpdateCommission godoc
//
//	@Summary		Update partner commission terms
//	@Description	Partial update of commission rate, commission type, or relationship status.
//	@Tags			Partners
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			partnerID	path		int								true	"Partner ID"
//	@Param			request		body		dto.UpdateCommissionRequestDTO	true	"Fields to change"
//	@Success		200			{object}	dto.PartnerResponseDTO			"Updated relationship"
//	@Failure		400			{object}	utils.Response					"Invalid commission configuration"
//	@Failure		401			{object}	utils.Response					"User not authorized"
//	@Failure		404			{object}	utils.Response					"Partner not on this roster"
//	@Failure		500			{object}	utils.Response					"Internal server error"
//	@Router			/api/partners/{partnerID}/commission [patch]
func (h *PartnerHandler) UpdateCommission(w http.ResponseWriter, r *http.Request) {
	mcpID := r.Context().Value(auth.UserIDKey).(int)
	partnerID, err := strconv.Atoi(chi.URLParam(r, "partnerID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid partner id")
		return
	}

	var req dto.UpdateCommissionRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	rel, err := h.partnerService.UpdateCommission(r.Context(), mcpID, partnerID, partnerservice.UpdateParams{
		CommissionRate: req.CommissionRate,
		CommissionType: req.CommissionType,
		Status:         req.Status,
	})
	if err != nil {
		h.respondPartnerError(w, err)
		return
	}

	entry, err := h.partnerService.GetPartner(r.Context(), mcpID, rel.PartnerID)
	if err != nil {
		h.respondPartnerError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewPartnerDTO(*entry))
}

// DeactivatePartner godoc
//
//	@Summary		Deactivate a pickup partner
//	@Description	Switch the relationship and the partner account to INACTIVE. Ledger history is kept; nothing is deleted.
//	@Tags			Partners
//	@Security		BearerAuth
//	@Produce		json
//	@Param			partnerID	path		int				true	"Partner ID"
//	@Success		204			{object}	nil				"Partner deactivated"
//	@Failure		400			{object}	utils.Response	"Invalid partner id"
//	@Failure		401			{object}	utils.Response	"User not authorized"
//	@Failure		404			{object}	utils.Response	"Partner not on this roster"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/partners/{partnerID} [delete]
func (h *PartnerHandler) DeactivatePartner(w http.ResponseWriter, r *http.Request) {
	mcpID := r.Context().Value(auth.UserIDKey).(int)
	partnerID, err := strconv.Atoi(chi.URLParam(r, "partnerID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid partner id")
		return
	}

	if err := h.partnerService.DeactivatePartner(r.Context(), mcpID, partnerID); err != nil {
		h.respondPartnerError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusNoContent, nil)
}

func (h *PartnerHandler) respondPartnerError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, partnerservice.ErrInvalidInput):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, partnerservice.ErrDuplicateEmail):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	case errors.Is(err, partnerservice.ErrPartnerNotFound), errors.Is(err, partnerservice.ErrNotAssociated):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
