package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/swiftment/payment-service/internal/usecase"
	paymentdto "github.com/swiftment/payment-service/internal/usecase/dto/payment"
)

type WithdrawalHandler struct {
	withdrawalUC usecase.WithdrawalUsecase
}

func NewWithdrawalHandler(withdrawalUC usecase.WithdrawalUsecase) *WithdrawalHandler {
	return &WithdrawalHandler{withdrawalUC: withdrawalUC}
}

type withdrawRequest struct {
	MerchantAuthority string `json:"merchant_authority"`
	Amount            uint64 `json:"amount"`
	Caller            string `json:"caller"`
}

type withdrawalResponse struct {
	ID         string `json:"id"`
	MerchantID string `json:"merchant_id"`
	Amount     uint64 `json:"amount"`
	Fee        uint64 `json:"fee"`
	Timestamp  int64  `json:"ts"`
}

func (h *WithdrawalHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	var req withdrawRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid payload", http.StatusBadRequest)
		return
	}
	if req.MerchantAuthority == "" {
		http.Error(w, "merchant_authority is required", http.StatusBadRequest)
		return
	}
	if req.Amount == 0 {
		http.Error(w, "amount must be positive", http.StatusBadRequest)
		return
	}

	event, err := h.withdrawalUC.Withdraw(r.Context(), &paymentdto.WithdrawInput{
		MerchantAuthority: req.MerchantAuthority,
		Amount:            req.Amount,
		Caller:            req.Caller,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, event)
}

func (h *WithdrawalHandler) ListByMerchant(w http.ResponseWriter, r *http.Request) {
	authority := chi.URLParam(r, "merchant")

	withdrawals, err := h.withdrawalUC.GetWithdrawalsByMerchant(r.Context(), authority, parseLimit(r))
	if err != nil {
		writeError(w, err)
		return
	}

	out := make([]withdrawalResponse, len(withdrawals))
	for i, wd := range withdrawals {
		out[i] = withdrawalResponse{
			ID:         wd.ID,
			MerchantID: wd.MerchantID,
			Amount:     wd.Amount,
			Fee:        wd.Fee,
			Timestamp:  wd.Timestamp,
		}
	}

	writeJSON(w, http.StatusOK, out)
}
