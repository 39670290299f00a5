package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/swiftment/payment-service/internal/domain"
	"github.com/swiftment/payment-service/internal/usecase"
	userdto "github.com/swiftment/payment-service/internal/usecase/dto/user"
)

type UserHandler struct {
	userUC usecase.UserUsecase
}

func NewUserHandler(userUC usecase.UserUsecase) *UserHandler {
	return &UserHandler{userUC: userUC}
}

type registerUserRequest struct {
	Owner string `json:"owner"`
}

type userResponse struct {
	UserID            string `json:"user_id"`
	Owner             string `json:"owner"`
	DefaultDailyLimit uint64 `json:"default_daily_limit"`
}

func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid payload", http.StatusBadRequest)
		return
	}
	if req.Owner == "" {
		http.Error(w, "owner is required", http.StatusBadRequest)
		return
	}

	user, err := h.userUC.RegisterUser(r.Context(), &userdto.RegisterUserInput{Owner: req.Owner})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toUserResponse(user))
}

func (h *UserHandler) GetByOwner(w http.ResponseWriter, r *http.Request) {
	owner := chi.URLParam(r, "owner")

	user, err := h.userUC.GetUserByOwner(r.Context(), owner)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toUserResponse(user))
}

func toUserResponse(user *domain.User) userResponse {
	return userResponse{
		UserID:            user.ID,
		Owner:             user.Owner,
		DefaultDailyLimit: user.DefaultDailyLimit,
	}
}
