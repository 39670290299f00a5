package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/swiftment/payment-service/internal/usecase"
	subscriptiondto "github.com/swiftment/payment-service/internal/usecase/dto/subscription"
)

type SubscriptionHandler struct {
	subscriptionUC usecase.SubscriptionUsecase
}

func NewSubscriptionHandler(subscriptionUC usecase.SubscriptionUsecase) *SubscriptionHandler {
	return &SubscriptionHandler{subscriptionUC: subscriptionUC}
}

type optInRequest struct {
	UserOwner         string `json:"user_owner"`
	MerchantAuthority string `json:"merchant_authority"`
	DailyLimit        uint64 `json:"daily_limit"`
}

type setDailyLimitRequest struct {
	UserOwner         string `json:"user_owner"`
	MerchantAuthority string `json:"merchant_authority"`
	Caller            string `json:"caller"`
	NewLimit          uint64 `json:"new_limit"`
}

type subscriptionResponse struct {
	SubscriptionID string `json:"subscription_id"`
	UserID         string `json:"user_id"`
	MerchantID     string `json:"merchant_id"`
	DailyLimit     uint64 `json:"daily_limit"`
	SpentToday     uint64 `json:"spent_today"`
	LastReset      int64  `json:"last_reset"`
}

type subscriptionStatusResponse struct {
	subscriptionResponse
	Remaining uint64 `json:"remaining"`
	Unlimited bool   `json:"unlimited"`
}

func (h *SubscriptionHandler) OptIn(w http.ResponseWriter, r *http.Request) {
	var req optInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid payload", http.StatusBadRequest)
		return
	}
	if req.UserOwner == "" || req.MerchantAuthority == "" {
		http.Error(w, "user_owner and merchant_authority are required", http.StatusBadRequest)
		return
	}

	sub, err := h.subscriptionUC.OptIn(r.Context(), &subscriptiondto.OptInInput{
		UserOwner:         req.UserOwner,
		MerchantAuthority: req.MerchantAuthority,
		DailyLimit:        req.DailyLimit,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, subscriptionResponse{
		SubscriptionID: sub.ID,
		UserID:         sub.UserID,
		MerchantID:     sub.MerchantID,
		DailyLimit:     sub.DailyLimit,
		SpentToday:     sub.SpentToday,
		LastReset:      sub.LastReset,
	})
}

func (h *SubscriptionHandler) SetDailyLimit(w http.ResponseWriter, r *http.Request) {
	var req setDailyLimitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid payload", http.StatusBadRequest)
		return
	}
	if req.UserOwner == "" || req.MerchantAuthority == "" {
		http.Error(w, "user_owner and merchant_authority are required", http.StatusBadRequest)
		return
	}

	err := h.subscriptionUC.SetDailyLimit(r.Context(), &subscriptiondto.SetDailyLimitInput{
		UserOwner:         req.UserOwner,
		MerchantAuthority: req.MerchantAuthority,
		Caller:            req.Caller,
		NewLimit:          req.NewLimit,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (h *SubscriptionHandler) GetStatus(w http.ResponseWriter, r *http.Request) {
	userOwner := chi.URLParam(r, "user")
	merchantAuthority := chi.URLParam(r, "merchant")

	status, err := h.subscriptionUC.GetSubscriptionStatus(r.Context(), userOwner, merchantAuthority)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, subscriptionStatusResponse{
		subscriptionResponse: subscriptionResponse{
			SubscriptionID: status.Subscription.ID,
			UserID:         status.Subscription.UserID,
			MerchantID:     status.Subscription.MerchantID,
			DailyLimit:     status.Subscription.DailyLimit,
			SpentToday:     status.SpentToday,
			LastReset:      status.Subscription.LastReset,
		},
		Remaining: status.Remaining,
		Unlimited: status.Unlimited,
	})
}
