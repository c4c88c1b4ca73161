package config

import (
	"net/http"
	"time"

	"storefront-service/src/internal/gateway/payment"
	"storefront-service/src/pkg/log"

	"github.com/spf13/viper"
)

// NewPaymentGateway picks the online provider from payment.provider:
// "paylink" for the hosted pay-link API, anything else gets the mobile
// money collect API.
func NewPaymentGateway(v *viper.Viper, logger log.Log) payment.Gateway {
	timeout := v.GetInt("payment.http_timeout_seconds")
	if timeout == 0 {
		timeout = 30
	}
	client := &http.Client{
		Timeout: time.Duration(timeout) * time.Second,
	}

	if v.GetString("payment.provider") == "paylink" {
		return payment.NewPayLinkGateway(v, client, logger)
	}
	return payment.NewMobileMoneyGateway(v, client, logger)
}
