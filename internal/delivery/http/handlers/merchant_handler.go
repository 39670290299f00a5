package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/swiftment/payment-service/internal/usecase"
	merchantdto "github.com/swiftment/payment-service/internal/usecase/dto/merchant"
)

type MerchantHandler struct {
	merchantUC usecase.MerchantUsecase
}

func NewMerchantHandler(merchantUC usecase.MerchantUsecase) *MerchantHandler {
	return &MerchantHandler{merchantUC: merchantUC}
}

type registerMerchantRequest struct {
	MerchantAuthority string `json:"merchant_authority"`
}

type merchantResponse struct {
	MerchantID         string `json:"merchant_id"`
	MerchantAuthority  string `json:"merchant_authority"`
	TreasuryID         string `json:"treasury_id"`
	TreasurySubAccount string `json:"treasury_sub_account"`
}

func (h *MerchantHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerMerchantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid payload", http.StatusBadRequest)
		return
	}
	if req.MerchantAuthority == "" {
		http.Error(w, "merchant_authority is required", http.StatusBadRequest)
		return
	}

	out, err := h.merchantUC.RegisterMerchant(r.Context(), &merchantdto.RegisterMerchantInput{
		MerchantAuthority: req.MerchantAuthority,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toMerchantResponse(out))
}

func (h *MerchantHandler) GetByAuthority(w http.ResponseWriter, r *http.Request) {
	authority := chi.URLParam(r, "authority")

	out, err := h.merchantUC.GetMerchantByAuthority(r.Context(), authority)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toMerchantResponse(out))
}

func toMerchantResponse(out *merchantdto.RegisterMerchantOutput) merchantResponse {
	return merchantResponse{
		MerchantID:         out.Merchant.ID,
		MerchantAuthority:  out.Merchant.MerchantAuthority,
		TreasuryID:         out.Treasury.ID,
		TreasurySubAccount: out.Treasury.SubAccount,
	}
}
