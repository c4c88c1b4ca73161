package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"storefront-service/src/pkg/log"

	"github.com/spf13/viper"
)

// MobileMoneyGateway talks to the mobile-money direct collection API.
// Auth is a credential pair exchanged for a short-lived bearer token.
type MobileMoneyGateway struct {
	BaseURL   string
	AppID     string
	AppSecret string
	Client    *http.Client
	Log       log.Log

	mu          sync.Mutex
	token       string
	tokenExpiry time.Time
}

func NewMobileMoneyGateway(v *viper.Viper, client *http.Client, logger log.Log) *MobileMoneyGateway {
	return &MobileMoneyGateway{
		BaseURL:   v.GetString("payment.momo.base_url"),
		AppID:     v.GetString("payment.momo.app_id"),
		AppSecret: v.GetString("payment.momo.app_secret"),
		Client:    client,
		Log:       logger,
	}
}

func (g *MobileMoneyGateway) Name() string {
	return "mobile-money"
}

func (g *MobileMoneyGateway) getToken(ctx context.Context) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.token != "" && time.Now().Before(g.tokenExpiry) {
		return g.token, nil
	}

	body, _ := json.Marshal(map[string]string{
		"app_id":     g.AppID,
		"app_secret": g.AppSecret,
	})
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.BaseURL+"/api/token/", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.Client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("token request failed with status %d", resp.StatusCode)
	}

	var tokenResp struct {
		Token     string `json:"token"`
		ExpiresIn int    `json:"expires_in"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&tokenResp); err != nil {
		return "", err
	}

	g.token = tokenResp.Token
	// refresh one minute before the provider-side expiry
	g.tokenExpiry = time.Now().Add(time.Duration(tokenResp.ExpiresIn-60) * time.Second)
	return g.token, nil
}

func (g *MobileMoneyGateway) CreatePayment(ctx context.Context, request *CreateRequest) (*CreateResponse, error) {
	bearer, err := g.getToken(ctx)
	if err != nil {
		g.Log.Error("mobile-money", fmt.Sprintf("Failed to get token: %v", err), "CreatePayment", request.OrderNumber)
		return nil, err
	}

	payload := map[string]interface{}{
		"amount":             request.Amount,
		"currency":           request.Currency,
		"from":               request.CustomerPhone,
		"description":        request.Description,
		"external_reference": request.OrderNumber,
		"redirect_url":       request.ReturnURL,
		"metadata":           request.Metadata,
	}
	body, _ := json.Marshal(payload)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.BaseURL+"/api/collect/", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Token "+bearer)

	resp, err := g.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("collect request failed with status %d", resp.StatusCode)
	}

	var collectResp struct {
		Reference string `json:"reference"`
		Status    string `json:"status"`
		Link      string `json:"link"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&collectResp); err != nil {
		return nil, err
	}

	return &CreateResponse{
		RedirectURL: collectResp.Link,
		Reference:   collectResp.Reference,
	}, nil
}

func (g *MobileMoneyGateway) GetStatus(ctx context.Context, request *StatusRequest) (*StatusResponse, error) {
	bearer, err := g.getToken(ctx)
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/api/transaction/%s/", g.BaseURL, request.Reference)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Token "+bearer)

	resp, err := g.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("status request failed with status %d", resp.StatusCode)
	}

	var statusResp struct {
		Status   string  `json:"status"`
		Amount   float64 `json:"amount"`
		Currency string  `json:"currency"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&statusResp); err != nil {
		return nil, err
	}

	return &StatusResponse{
		Status:   statusResp.Status,
		Amount:   int64(statusResp.Amount),
		Currency: statusResp.Currency,
	}, nil
}
