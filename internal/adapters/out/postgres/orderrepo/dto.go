// Package orderrepo stores order aggregates in PostgreSQL with GORM. The
// schema is created by the migrations of the parent postgres package.
package orderrepo

import (
	"time"

	"coffeeshop/internal/core/domain/model/customer"
	"coffeeshop/internal/core/domain/model/kernel"
	"coffeeshop/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO is a row of the orders table. Items live in order_items.
type OrderDTO struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Customer   CustomerDTO     `gorm:"embedded;embeddedPrefix:customer_"`
	Status     int             `gorm:"type:smallint"`
	CreatedAt  time.Time       `gorm:"autoCreateTime:false"`
	TotalPrice decimal.Decimal `gorm:"type:numeric(12,2)"`
	PaymentID  *string
	Items      []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// CustomerDTO is the customer snapshot embedded in the orders row.
type CustomerDTO struct {
	ID    uuid.UUID `gorm:"type:uuid"`
	Name  string
	Email string `gorm:"index"`
	Phone *string
}

// OrderItemDTO is a row of the order_items table. Position keeps the item
// order of the basket.
type OrderItemDTO struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	OrderID     uuid.UUID `gorm:"type:uuid;index"`
	Position    int
	Name        string
	Description string
	UnitPrice   decimal.Decimal `gorm:"type:numeric(12,2)"`
	Quantity    int
}

func (OrderItemDTO) TableName() string {
	return "order_items"
}

func fromDomain(o *order.Order) OrderDTO {
	c := o.Customer()
	dto := OrderDTO{
		ID: o.ID().Bytes(),
		Customer: CustomerDTO{
			ID:    c.ID().Bytes(),
			Name:  c.Name(),
			Email: c.Email(),
		},
		Status:     int(o.Status()),
		CreatedAt:  o.CreatedAt(),
		TotalPrice: o.TotalPrice().Amount(),
	}
	if phone, ok := c.Phone(); ok {
		dto.Customer.Phone = &phone
	}
	if paymentID, ok := o.PaymentID(); ok {
		dto.PaymentID = &paymentID
	}
	for i, item := range o.Items() {
		dto.Items = append(dto.Items, OrderItemDTO{
			OrderID:     dto.ID,
			Position:    i,
			Name:        item.Name(),
			Description: item.Description(),
			UnitPrice:   item.UnitPrice().Amount(),
			Quantity:    item.Quantity(),
		})
	}
	return dto
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.Customer.ID[:])
	if err != nil {
		return nil, err
	}
	c, err := customer.NewCustomer(customerID, dto.Customer.Name, dto.Customer.Email, dto.Customer.Phone)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := order.NewItem(
			itemDTO.Name,
			itemDTO.Description,
			kernel.NewMoney(itemDTO.UnitPrice),
			itemDTO.Quantity,
		)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	var paymentID string
	if dto.PaymentID != nil {
		paymentID = *dto.PaymentID
	}

	return order.RestoreOrder(
		id,
		c,
		items,
		order.Status(dto.Status),
		dto.CreatedAt.UTC(),
		kernel.NewMoney(dto.TotalPrice),
		paymentID,
	)
}
