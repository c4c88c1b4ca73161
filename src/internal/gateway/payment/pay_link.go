package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"storefront-service/src/pkg/log"

	"github.com/spf13/viper"
)

// PayLinkGateway talks to the hosted payment-link API: a static API key,
// one call to mint a checkout link, status lookups by session id.
type PayLinkGateway struct {
	BaseURL string
	APIKey  string
	Client  *http.Client
	Log     log.Log
}

func NewPayLinkGateway(v *viper.Viper, client *http.Client, logger log.Log) *PayLinkGateway {
	return &PayLinkGateway{
		BaseURL: v.GetString("payment.paylink.base_url"),
		APIKey:  v.GetString("payment.paylink.api_key"),
		Client:  client,
		Log:     logger,
	}
}

func (g *PayLinkGateway) Name() string {
	return "pay-link"
}

func (g *PayLinkGateway) CreatePayment(ctx context.Context, request *CreateRequest) (*CreateResponse, error) {
	payload := map[string]interface{}{
		"amount":         request.Amount,
		"currency":       request.Currency,
		"customer_name":  request.CustomerName,
		"customer_phone": request.CustomerPhone,
		"title":          request.Description,
		"order_id":       request.OrderNumber,
		"success_url":    request.ReturnURL,
		"metadata":       request.Metadata,
	}
	body, _ := json.Marshal(payload)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.BaseURL+"/v1/gateway", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("api-key", g.APIKey)

	resp, err := g.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("gateway request failed with status %d", resp.StatusCode)
	}

	var linkResp struct {
		ID   string `json:"id"`
		Link string `json:"link"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&linkResp); err != nil {
		return nil, err
	}

	return &CreateResponse{
		RedirectURL: linkResp.Link,
		Reference:   linkResp.ID,
		SessionID:   linkResp.ID,
	}, nil
}

func (g *PayLinkGateway) GetStatus(ctx context.Context, request *StatusRequest) (*StatusResponse, error) {
	// session id keys the lookup when present, otherwise the provider
	// resolves by our order number
	lookup := request.SessionID
	if lookup == "" {
		lookup = request.OrderNumber
	}

	url := fmt.Sprintf("%s/v1/gateway/payin/%s", g.BaseURL, lookup)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("api-key", g.APIKey)

	resp, err := g.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("status request failed with status %d", resp.StatusCode)
	}

	var statusResp struct {
		Status   string `json:"status"`
		Amount   int64  `json:"amount"`
		Currency string `json:"currency"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&statusResp); err != nil {
		return nil, err
	}

	return &StatusResponse{
		Status:   statusResp.Status,
		Amount:   statusResp.Amount,
		Currency: statusResp.Currency,
	}, nil
}
