package http

import (
	"time"

	"github.com/google/uuid"
)

// Request and response bodies of the API, mirroring api/openapi.yaml.

type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type Customer struct {
	ID    *uuid.UUID `json:"id,omitempty"`
	Name  string     `json:"name"`
	Email string     `json:"email"`
	Phone *string    `json:"phone,omitempty"`
}

type BasketItem struct {
	Type       string   `json:"type"`
	Size       *string  `json:"size,omitempty"`
	ExtraShots *int     `json:"extra_shots,omitempty"`
	Variety    *string  `json:"variety,omitempty"`
	Fruits     []string `json:"fruits,omitempty"`
	Quantity   int      `json:"quantity"`
}

type PlaceOrderRequest struct {
	Customer Customer     `json:"customer"`
	Items    []BasketItem `json:"items"`
}

type QuoteRequest struct {
	Email *string      `json:"email,omitempty"`
	Items []BasketItem `json:"items"`
}

type OrderItem struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	UnitPrice   string `json:"unit_price"`
	Quantity    int    `json:"quantity"`
	Subtotal    string `json:"subtotal"`
}

type Order struct {
	ID         uuid.UUID   `json:"id"`
	Customer   Customer    `json:"customer"`
	Items      []OrderItem `json:"items"`
	Status     string      `json:"status"`
	CreatedAt  time.Time   `json:"created_at"`
	TotalPrice string      `json:"total_price"`
	PaymentID  *string     `json:"payment_id,omitempty"`
}

type OrderOutcome struct {
	Order        Order    `json:"order"`
	Transitioned bool     `json:"transitioned"`
	Warnings     []string `json:"warnings,omitempty"`
}

type Quote struct {
	Subtotal        string `json:"subtotal"`
	DiscountPercent string `json:"discount_percent"`
	Discount        string `json:"discount"`
	Tax             string `json:"tax"`
	Total           string `json:"total"`
}

// ListOrdersParams are the query parameters of GET /api/v1/orders.
type ListOrdersParams struct {
	Email *string `form:"email,omitempty" json:"email,omitempty"`
}
