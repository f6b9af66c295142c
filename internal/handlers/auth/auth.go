package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/scrapsync/scrapsync/internal/domain"
	"github.com/scrapsync/scrapsync/internal/dto"
	"github.com/scrapsync/scrapsync/internal/service/authservice"
	pkgauth "github.com/scrapsync/scrapsync/pkg/auth"
	"github.com/scrapsync/scrapsync/pkg/utils"
)

type Service interface {
	Register(ctx context.Context, p authservice.RegisterParams) (*domain.Account, error)
	Authenticate(ctx context.Context, email, password string) (*domain.Account, error)
	GenerateToken(account *domain.Account) (string, error)
	GetProfile(ctx context.Context, userID int) (*domain.Account, error)
	UpdateProfile(ctx context.Context, userID int, fullName, phone string) (*domain.Account, error)
}

type AuthHandler struct {
	authService Service
}

func New(authService Service) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Register godoc
//
//	@Summary		Register a new account
//	@Description	Create an MCP or pickup partner account with an empty wallet.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.RegisterRequestDTO	true	"Registration payload"
//	@Success		201		{object}	dto.RegisterResponseDTO	"Account created"
//	@Failure		400		{object}	utils.Response			"Invalid registration data"
//	@Failure		409		{object}	utils.Response			"Email already taken"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/auth/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	account, err := h.authService.Register(r.Context(), authservice.RegisterParams{
		FullName: req.FullName,
		Email:    req.Email,
		Password: req.Password,
		Phone:    req.Phone,
		Role:     req.Role,
	})
	if err != nil {
		switch {
		case errors.Is(err, authservice.ErrInvalidInput):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, authservice.ErrDuplicateEmail):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, dto.RegisterResponseDTO{
		Message: "User successfully registered",
		UserID:  account.ID,
	})
}

// Login godoc
//
//	@Summary		Authenticate and issue a token
//	@Description	Exchange email and password for a bearer token.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.LoginRequestDTO		true	"Login payload"
//	@Success		200		{object}	dto.LoginResponseDTO	"Token issued"
//	@Failure		400		{object}	utils.Response			"Invalid request body"
//	@Failure		401		{object}	utils.Response			"Invalid email or password"
//	@Failure		403		{object}	utils.Response			"Account is deactivated"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	account, err := h.authService.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, authservice.ErrInvalidCredentials):
			utils.RespondWithError(w, http.StatusUnauthorized, err.Error())
		case errors.Is(err, authservice.ErrAccountInactive):
			utils.RespondWithError(w, http.StatusForbidden, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	token, err := h.authService.GenerateToken(account)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	w.Header().Set("Authorization", "Bearer "+token)
	utils.RespondWithJSON(w, http.StatusOK, dto.LoginResponseDTO{
		Message: "User successfully authenticated",
		Token:   token,
	})
}

// GetProfile godoc
//
//	@Summary		Get the authenticated profile
//	@Tags			Auth
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.ProfileResponseDTO	"Profile"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		404	{object}	utils.Response			"Account not found"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/profile [get]
func (h *AuthHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(pkgauth.UserIDKey).(int)

	account, err := h.authService.GetProfile(r.Context(), userID)
	if err != nil {
		h.respondProfileError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, newProfileDTO(account))
}

// UpdateProfile godoc
//
//	@Summary		Update the authenticated profile
//	@Description	Change name and phone. Email and role are immutable.
//	@Tags			Auth
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.UpdateProfileRequestDTO	true	"Fields to change"
//	@Success		200		{object}	dto.ProfileResponseDTO		"Updated profile"
//	@Failure		400		{object}	utils.Response				"Nothing to update"
//	@Failure		401		{object}	utils.Response				"User not authorized"
//	@Failure		404		{object}	utils.Response				"Account not found"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/profile [patch]
func (h *AuthHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(pkgauth.UserIDKey).(int)

	var req dto.UpdateProfileRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	account, err := h.authService.UpdateProfile(r.Context(), userID, req.FullName, req.Phone)
	if err != nil {
		h.respondProfileError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, newProfileDTO(account))
}

func (h *AuthHandler) respondProfileError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, authservice.ErrInvalidInput):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, authservice.ErrAccountNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func newProfileDTO(account *domain.Account) dto.ProfileResponseDTO {
	return dto.ProfileResponseDTO{
		ID:       account.ID,
		FullName: account.FullName,
		Email:    account.Email,
		Phone:    account.Phone,
		Role:     account.Role,
		Status:   account.Status,
	}
}
