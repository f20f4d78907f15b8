// Package jsonfile stores orders in a single JSON file. The whole file is
// rewritten after every change through a temporary file and a rename, so a
// crash leaves either the old or the new content.
package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"coffeeshop/internal/adapters/out/memory"
	"coffeeshop/internal/core/domain/model/kernel"
	"coffeeshop/internal/core/domain/model/order"
	"coffeeshop/internal/core/ports"
)

var _ ports.OrderRepository = (*OrderRepository)(nil)

// OrderRepository serves reads from memory and writes through to the file.
// A write that cannot be persisted is rolled back in memory.
type OrderRepository struct {
	mu    sync.Mutex
	path  string
	cache *memory.OrderRepository
}

// NewOrderRepository loads path, or starts empty when the file does not exist.
func NewOrderRepository(path string) (*OrderRepository, error) {
	orders, err := load(path)
	if err != nil {
		return nil, err
	}

	cache, err := memory.NewOrderRepositoryWith(orders)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ports.ErrLoadFailed, path, err)
	}

	return &OrderRepository{path: path, cache: cache}, nil
}

func (r *OrderRepository) Save(ctx context.Context, aggregate *order.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.cache.Save(ctx, aggregate); err != nil {
		return err
	}
	if err := r.flush(ctx); err != nil {
		_, _ = r.cache.Delete(ctx, aggregate.ID())
		return err
	}
	return nil
}

func (r *OrderRepository) FindByID(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	return r.cache.FindByID(ctx, id)
}

func (r *OrderRepository) FindByCustomerEmail(ctx context.Context, email string) ([]*order.Order, error) {
	return r.cache.FindByCustomerEmail(ctx, email)
}

func (r *OrderRepository) ListAll(ctx context.Context) ([]*order.Order, error) {
	return r.cache.ListAll(ctx)
}

func (r *OrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	previous, err := r.cache.FindByID(ctx, aggregate.ID())
	if err != nil {
		return err
	}
	if err = r.cache.Update(ctx, aggregate); err != nil {
		return err
	}
	if err = r.flush(ctx); err != nil {
		_ = r.cache.Update(ctx, previous)
		return err
	}
	return nil
}

func (r *OrderRepository) Delete(ctx context.Context, id kernel.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	previous, err := r.cache.FindByID(ctx, id)
	if err != nil {
		return false, nil
	}
	position, _ := r.cache.Position(id)
	if _, err = r.cache.Delete(ctx, id); err != nil {
		return false, err
	}
	if err = r.flush(ctx); err != nil {
		_ = r.cache.SaveAt(ctx, previous, position)
		return false, err
	}
	return true, nil
}

func (r *OrderRepository) flush(ctx context.Context) error {
	orders, err := r.cache.ListAll(ctx)
	if err != nil {
		return err
	}

	records := make([]orderRecord, 0, len(orders))
	for _, o := range orders {
		records = append(records, toRecord(o))
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %w", ports.ErrSaveFailed, err)
	}

	if err = writeAtomic(r.path, data); err != nil {
		return fmt.Errorf("%w: %w", ports.ErrSaveFailed, err)
	}
	return nil
}

func writeAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err = tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

func load(path string) ([]*order.Order, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ports.ErrLoadFailed, err)
	}
	if len(data) == 0 {
		return nil, nil
	}

	var records []orderRecord
	if err = json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ports.ErrLoadFailed, path, err)
	}

	orders := make([]*order.Order, 0, len(records))
	for i, record := range records {
		o, convErr := record.toDomain()
		if convErr != nil {
			return nil, fmt.Errorf("%w: order %d in %s: %w", ports.ErrLoadFailed, i, path, convErr)
		}
		orders = append(orders, o)
	}
	return orders, nil
}
