package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/swiftment/payment-service/internal/domain"
	"github.com/swiftment/payment-service/internal/usecase"
	paymentdto "github.com/swiftment/payment-service/internal/usecase/dto/payment"
)

type PaymentHandler struct {
	paymentUC usecase.PaymentUsecase
}

func NewPaymentHandler(paymentUC usecase.PaymentUsecase) *PaymentHandler {
	return &PaymentHandler{paymentUC: paymentUC}
}

type payRequest struct {
	UserOwner         string `json:"user_owner"`
	MerchantAuthority string `json:"merchant_authority"`
	Amount            uint64 `json:"amount"`
}

type purchaseResponse struct {
	ID         string `json:"id"`
	UserID     string `json:"user_id"`
	MerchantID string `json:"merchant_id"`
	Amount     uint64 `json:"amount"`
	Fee        uint64 `json:"fee"`
	Timestamp  int64  `json:"ts"`
}

func (h *PaymentHandler) Pay(w http.ResponseWriter, r *http.Request) {
	var req payRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid payload", http.StatusBadRequest)
		return
	}
	if req.UserOwner == "" || req.MerchantAuthority == "" {
		http.Error(w, "user_owner and merchant_authority are required", http.StatusBadRequest)
		return
	}
	if req.Amount == 0 {
		http.Error(w, "amount must be positive", http.StatusBadRequest)
		return
	}

	event, err := h.paymentUC.Pay(r.Context(), &paymentdto.PayInput{
		UserOwner:         req.UserOwner,
		MerchantAuthority: req.MerchantAuthority,
		Amount:            req.Amount,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, event)
}

func (h *PaymentHandler) ListByUser(w http.ResponseWriter, r *http.Request) {
	owner := chi.URLParam(r, "user")

	purchases, err := h.paymentUC.GetPurchasesByUser(r.Context(), owner, parseLimit(r))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toPurchaseResponses(purchases))
}

func (h *PaymentHandler) ListByMerchant(w http.ResponseWriter, r *http.Request) {
	authority := chi.URLParam(r, "merchant")

	purchases, err := h.paymentUC.GetPurchasesByMerchant(r.Context(), authority, parseLimit(r))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toPurchaseResponses(purchases))
}

func toPurchaseResponses(purchases []*domain.Purchase) []purchaseResponse {
	out := make([]purchaseResponse, len(purchases))
	for i, p := range purchases {
		out[i] = purchaseResponse{
			ID:         p.ID,
			UserID:     p.UserID,
			MerchantID: p.MerchantID,
			Amount:     p.Amount,
			Fee:        p.Fee,
			Timestamp:  p.Timestamp,
		}
	}
	return out
}

func parseLimit(r *http.Request) int {
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil {
		return 0
	}
	return limit
}
