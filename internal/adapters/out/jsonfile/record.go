package jsonfile

import (
	"errors"
	"fmt"
	"time"

	"coffeeshop/internal/core/domain/model/customer"
	"coffeeshop/internal/core/domain/model/kernel"
	"coffeeshop/internal/core/domain/model/order"
)

// orderRecord is the on-disk layout of one order. Amounts are decimal strings.
type orderRecord struct {
	ID         string         `json:"id"`
	Customer   customerRecord `json:"customer"`
	Items      []itemRecord   `json:"items"`
	Status     string         `json:"status"`
	CreatedAt  time.Time      `json:"created_at"`
	TotalPrice string         `json:"total_price"`
	PaymentID  string         `json:"payment_id,omitempty"`
}

type customerRecord struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Email string  `json:"email"`
	Phone *string `json:"phone,omitempty"`
}

type itemRecord struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	UnitPrice   string `json:"unit_price"`
	Quantity    int    `json:"quantity"`
}

func toRecord(o *order.Order) orderRecord {
	c := o.Customer()
	record := orderRecord{
		ID: o.ID().String(),
		Customer: customerRecord{
			ID:    c.ID().String(),
			Name:  c.Name(),
			Email: c.Email(),
		},
		Status:     o.Status().String(),
		CreatedAt:  o.CreatedAt(),
		TotalPrice: o.TotalPrice().String(),
	}
	if phone, ok := c.Phone(); ok {
		record.Customer.Phone = &phone
	}
	if paymentID, ok := o.PaymentID(); ok {
		record.PaymentID = paymentID
	}
	for _, item := range o.Items() {
		record.Items = append(record.Items, itemRecord{
			Name:        item.Name(),
			Description: item.Description(),
			UnitPrice:   item.UnitPrice().String(),
			Quantity:    item.Quantity(),
		})
	}
	return record
}

func (r orderRecord) toDomain() (*order.Order, error) {
	id, err := kernel.UUIDFromString(r.ID)
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromString(r.Customer.ID)
	if err != nil {
		return nil, err
	}
	c, err := customer.NewCustomer(customerID, r.Customer.Name, r.Customer.Email, r.Customer.Phone)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(r.Items))
	for i, ir := range r.Items {
		price, priceErr := kernel.MoneyFromString(ir.UnitPrice)
		if priceErr != nil {
			return nil, fmt.Errorf("items[%d]: %w", i, priceErr)
		}
		item, itemErr := order.NewItem(ir.Name, ir.Description, price, ir.Quantity)
		if itemErr != nil {
			return nil, fmt.Errorf("items[%d]: %w", i, itemErr)
		}
		items = append(items, item)
	}

	status, statusErr := order.ParseStatus(r.Status)
	total, totalErr := kernel.MoneyFromString(r.TotalPrice)
	if err = errors.Join(statusErr, totalErr); err != nil {
		return nil, err
	}

	return order.RestoreOrder(id, c, items, status, r.CreatedAt, total, r.PaymentID)
}
