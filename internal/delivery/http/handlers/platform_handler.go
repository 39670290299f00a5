package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/swiftment/payment-service/internal/usecase"
	platformdto "github.com/swiftment/payment-service/internal/usecase/dto/platform"
)

type PlatformHandler struct {
	platformUC usecase.PlatformUsecase
}

func NewPlatformHandler(platformUC usecase.PlatformUsecase) *PlatformHandler {
	return &PlatformHandler{platformUC: platformUC}
}

type initializeRequest struct {
	Authority      string `json:"authority"`
	AssetID        string `json:"asset_id"`
	PurchaseFeeBps uint16 `json:"purchase_fee_bps"`
	WithdrawFeeBps uint16 `json:"withdraw_fee_bps"`
	FeeAccount     string `json:"fee_account"`
}

type configResponse struct {
	Authority      string `json:"authority"`
	AssetID        string `json:"asset_id"`
	PurchaseFeeBps uint16 `json:"purchase_fee_bps"`
	WithdrawFeeBps uint16 `json:"withdraw_fee_bps"`
	FeeAccount     string `json:"fee_account"`
}

func (h *PlatformHandler) Initialize(w http.ResponseWriter, r *http.Request) {
	var req initializeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid payload", http.StatusBadRequest)
		return
	}

	cfg, err := h.platformUC.Initialize(r.Context(), &platformdto.InitializeInput{
		Authority:      req.Authority,
		AssetID:        req.AssetID,
		PurchaseFeeBps: req.PurchaseFeeBps,
		WithdrawFeeBps: req.WithdrawFeeBps,
		FeeAccount:     req.FeeAccount,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, configResponse{
		Authority:      cfg.Authority,
		AssetID:        cfg.AssetID,
		PurchaseFeeBps: cfg.PurchaseFeeBps,
		WithdrawFeeBps: cfg.WithdrawFeeBps,
		FeeAccount:     cfg.FeeAccount,
	})
}

func (h *PlatformHandler) GetConfig(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.platformUC.GetConfig(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, configResponse{
		Authority:      cfg.Authority,
		AssetID:        cfg.AssetID,
		PurchaseFeeBps: cfg.PurchaseFeeBps,
		WithdrawFeeBps: cfg.WithdrawFeeBps,
		FeeAccount:     cfg.FeeAccount,
	})
}
