package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	ledgerRequest "github.com/swiftment/payment-service/internal/delivery/http/dto/ledger/request"
	ledgerResponse "github.com/swiftment/payment-service/internal/delivery/http/dto/ledger/response"
	"github.com/swiftment/payment-service/internal/domain"
)

// HTTPTokenLedgerClient talks to the token ledger service that executes the
// actual value transfers between holding sub-accounts.
type HTTPTokenLedgerClient struct {
	Address string
	client  *http.Client
}

func NewHTTPTokenLedgerClient(address string) (*HTTPTokenLedgerClient, error) {
	return &HTTPTokenLedgerClient{
		Address: address,
		client:  &http.Client{Timeout: 3 * time.Second},
	}, nil
}

func (c *HTTPTokenLedgerClient) Transfer(ctx context.Context, req *domain.TransferRequest) error {
	requestBodyBytes, err := json.Marshal(ledgerRequest.TransferRequest{
		FromAccount: req.FromAccount,
		ToAccount:   req.ToAccount,
		Authority:   req.Authority,
		Amount:      req.Amount,
	})
	if err != nil {
		return err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, fmt.Sprintf("%s/accounts/transfer", c.Address), bytes.NewBuffer(requestBodyBytes))
	if err != nil {
		return err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	response, err := c.client.Do(httpReq)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrTransferFailed, err)
	}
	defer response.Body.Close()
	responseBodyBytes, err := io.ReadAll(response.Body)
	if err != nil {
		return err
	}

	if response.StatusCode >= 200 && response.StatusCode < 300 {
		return nil
	}

	var errorResponse ledgerResponse.ErrorResponse
	if err := json.Unmarshal(responseBodyBytes, &errorResponse); err != nil {
		return fmt.Errorf("%w: status %d", domain.ErrTransferFailed, response.StatusCode)
	}
	return fmt.Errorf("%w: %s", domain.ErrTransferFailed, errorResponse.Error)
}
