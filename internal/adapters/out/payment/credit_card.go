package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"coffeeshop/internal/core/domain/model/kernel"
	"coffeeshop/internal/core/ports"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// DefaultCardLimit is the largest single charge a card accepts.
var DefaultCardLimit = kernel.MustMoney("1000.00")

var _ ports.PaymentProcessor = (*CreditCard)(nil)

// CreditCard charges a card. Without a gateway the charge is approved locally
// when the amount is within the card limit. With a gateway the authorisation
// is delegated to it over HTTP.
type CreditCard struct {
	limit      kernel.Money
	gatewayURL string
	client     *http.Client
}

type CreditCardOption func(*CreditCard)

// WithCardLimit overrides DefaultCardLimit.
func WithCardLimit(limit kernel.Money) CreditCardOption {
	return func(c *CreditCard) {
		c.limit = limit
	}
}

// WithGateway sends authorisations to url. A nil client gets a traced client
// with a ten second timeout.
func WithGateway(url string, client *http.Client) CreditCardOption {
	return func(c *CreditCard) {
		c.gatewayURL = strings.TrimRight(url, "/")
		if client != nil {
			c.client = client
		}
	}
}

func NewCreditCard(opts ...CreditCardOption) *CreditCard {
	c := &CreditCard{
		limit: DefaultCardLimit,
		client: &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
			Timeout:   10 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *CreditCard) ProcessPayment(ctx context.Context, amount kernel.Money) (string, error) {
	if amount.IsNegative() {
		return "", ports.NewPaymentError(ports.ProcessingFailed, "amount must not be negative")
	}
	if amount.GreaterThan(c.limit) {
		return "", ports.NewPaymentError(ports.ProcessingFailed,
			fmt.Sprintf("amount %s exceeds card limit %s", amount, c.limit))
	}

	if c.gatewayURL == "" {
		return "CC-" + kernel.NewUUID().String(), nil
	}
	return c.authorize(ctx, amount)
}

func (c *CreditCard) MethodName() string {
	return "Credit Card"
}

type authorizationRequest struct {
	Amount         string `json:"amount"`
	IdempotencyKey string `json:"idempotency_key"`
}

type authorizationResponse struct {
	TransactionID string `json:"transaction_id"`
	Message       string `json:"message"`
}

// authorize posts the charge to the gateway. The idempotency key doubles as
// the payment id so a retried request cannot charge twice.
func (c *CreditCard) authorize(ctx context.Context, amount kernel.Money) (string, error) {
	paymentID := "CC-" + kernel.NewUUID().String()

	body, err := json.Marshal(authorizationRequest{Amount: amount.String(), IdempotencyKey: paymentID})
	if err != nil {
		return "", ports.NewPaymentError(ports.ProcessingFailed, err.Error())
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.gatewayURL+"/authorizations", bytes.NewReader(body))
	if err != nil {
		return "", ports.NewPaymentError(ports.ProcessingFailed, err.Error())
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Idempotency-Key", paymentID)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", ports.NewPaymentError(ports.NetworkError, err.Error())
	}
	defer resp.Body.Close()

	var decoded authorizationResponse
	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", ports.NewPaymentError(ports.NetworkError, err.Error())
	}
	_ = json.Unmarshal(raw, &decoded)

	switch {
	case resp.StatusCode == http.StatusPaymentRequired:
		return "", ports.NewPaymentError(ports.InsufficientFunds, decoded.Message)
	case resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusUnprocessableEntity:
		return "", ports.NewPaymentError(ports.InvalidInstrument, decoded.Message)
	case resp.StatusCode >= http.StatusInternalServerError:
		return "", ports.NewPaymentError(ports.NetworkError, fmt.Sprintf("gateway responded %d", resp.StatusCode))
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return "", ports.NewPaymentError(ports.ProcessingFailed, fmt.Sprintf("gateway responded %d", resp.StatusCode))
	}

	if decoded.TransactionID != "" && decoded.TransactionID != paymentID {
		return "", ports.NewPaymentError(ports.ProcessingFailed, "gateway returned a foreign transaction id")
	}
	return paymentID, nil
}
