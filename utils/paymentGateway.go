package utils

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"talenta/config"

	"github.com/go-resty/resty/v2"
)

// CreatePaymentIntent creates an intent with the external processor
// and returns its client secret. Amount is in major units; the
// processor takes minor units.
func CreatePaymentIntent(amount float64, currency string) (string, error) {
	cents := int64(math.Round(amount * 100))

	client := resty.New()
	resp, err := client.R().
		SetHeader("Authorization", "Bearer "+config.AppConfig.PaymentSecretKey).
		SetFormData(map[string]string{
			"amount":   strconv.FormatInt(cents, 10),
			"currency": currency,
		}).
		Post(config.AppConfig.PaymentApiURL + "payment_intents")
	if err != nil {
		return "", fmt.Errorf("payment processor request failed: %w", err)
	}
	if resp.StatusCode() != 200 {
		return "", fmt.Errorf("payment processor returned status %d: %s", resp.StatusCode(), resp.String())
	}

	var intentResp struct {
		ClientSecret string `json:"client_secret"`
	}
	if err := json.Unmarshal(resp.Body(), &intentResp); err != nil {
		return "", fmt.Errorf("invalid payment processor response: %w", err)
	}
	if intentResp.ClientSecret == "" {
		return "", fmt.Errorf("payment processor response missing client secret")
	}

	return intentResp.ClientSecret, nil
}
