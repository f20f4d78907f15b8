// Package memory keeps orders in process memory. It is the default store and
// the base of the JSON file store.
package memory

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"coffeeshop/internal/core/domain/model/kernel"
	"coffeeshop/internal/core/domain/model/order"
	"coffeeshop/internal/core/ports"
	"coffeeshop/internal/pkg/errs"
)

var _ ports.OrderRepository = (*OrderRepository)(nil)

// OrderRepository is a map of orders guarded by a RWMutex. It stores and
// returns copies, so callers never share an *order.Order with it. Lists keep
// insertion order.
type OrderRepository struct {
	mu     sync.RWMutex
	orders map[string]*order.Order
	ids    []string
}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{orders: make(map[string]*order.Order)}
}

// NewOrderRepositoryWith preloads orders, for example from a file.
func NewOrderRepositoryWith(orders []*order.Order) (*OrderRepository, error) {
	r := NewOrderRepository()
	for _, o := range orders {
		if err := r.Save(context.Background(), o); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func (r *OrderRepository) Save(ctx context.Context, aggregate *order.Order) error {
	return r.SaveAt(ctx, aggregate, -1)
}

// SaveAt is Save that puts the order at position in list order. A negative or
// too large position appends.
func (r *OrderRepository) SaveAt(_ context.Context, aggregate *order.Order, position int) error {
	if err := aggregate.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ports.ErrSaveFailed, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	key := aggregate.ID().String()
	if _, ok := r.orders[key]; ok {
		return fmt.Errorf("%w: %s", ports.ErrOrderAlreadyExists, key)
	}
	r.orders[key] = aggregate.Clone()
	if position < 0 || position > len(r.ids) {
		position = len(r.ids)
	}
	r.ids = slices.Insert(r.ids, position, key)
	return nil
}

// Position is the index of id in list order.
func (r *OrderRepository) Position(id kernel.UUID) (int, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := slices.Index(r.ids, id.String())
	return i, i >= 0
}

func (r *OrderRepository) FindByID(_ context.Context, id kernel.UUID) (*order.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	o, ok := r.orders[id.String()]
	if !ok {
		return nil, errs.NewObjectNotFoundError("order", id)
	}
	return o.Clone(), nil
}

func (r *OrderRepository) FindByCustomerEmail(_ context.Context, email string) ([]*order.Order, error) {
	return r.collect(func(o *order.Order) bool { return o.Customer().Email() == email }), nil
}

func (r *OrderRepository) ListAll(_ context.Context) ([]*order.Order, error) {
	return r.collect(func(*order.Order) bool { return true }), nil
}

func (r *OrderRepository) Update(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ports.ErrSaveFailed, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	key := aggregate.ID().String()
	if _, ok := r.orders[key]; !ok {
		return errs.NewObjectNotFoundError("order", aggregate.ID())
	}
	r.orders[key] = aggregate.Clone()
	return nil
}

func (r *OrderRepository) Delete(_ context.Context, id kernel.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := id.String()
	if _, ok := r.orders[key]; !ok {
		return false, nil
	}
	delete(r.orders, key)
	if i := slices.Index(r.ids, key); i >= 0 {
		r.ids = slices.Delete(r.ids, i, i+1)
	}
	return true, nil
}

func (r *OrderRepository) collect(match func(*order.Order) bool) []*order.Order {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*order.Order, 0)
	for _, key := range r.ids {
		if o := r.orders[key]; match(o) {
			result = append(result, o.Clone())
		}
	}
	return result
}
