package recovery

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"coffeeshop/internal/core/domain/model/kernel"
	"coffeeshop/internal/core/domain/model/order"
	"coffeeshop/internal/core/ports"
	"coffeeshop/internal/pkg/errs"
)

// DrainReport summarises one Drain pass.
type DrainReport struct {
	Stored   int
	Requeued int
	GaveUp   int
}

type pendingOrder struct {
	order    *order.Order
	attempts int
	lastErr  error
}

// RetryQueue is a bounded in-memory queue of paid orders waiting to be saved.
// It is safe for concurrent use. Queued orders do not survive a restart.
type RetryQueue struct {
	mu      sync.Mutex
	drainMu sync.Mutex
	pending []pendingOrder

	capacity    int
	maxAttempts int
	fallback    ports.RecoveryStrategy
	logger      *slog.Logger
}

// NewRetryQueue creates a queue holding at most capacity orders, each retried
// at most maxAttempts times before it is handed to fallback.
func NewRetryQueue(
	capacity, maxAttempts int,
	fallback ports.RecoveryStrategy,
	logger *slog.Logger,
) (*RetryQueue, error) {
	if capacity <= 0 {
		return nil, errs.NewValueIsOutOfRangeError("capacity", capacity, 1, "unbounded")
	}
	if maxAttempts <= 0 {
		return nil, errs.NewValueIsOutOfRangeError("maxAttempts", maxAttempts, 1, "unbounded")
	}
	if fallback == nil {
		return nil, errs.NewValueIsRequiredError("fallback")
	}

	return &RetryQueue{
		capacity:    capacity,
		maxAttempts: maxAttempts,
		fallback:    fallback,
		logger:      logger.With("component", "retry_queue"),
	}, nil
}

// Recover queues a copy of paid. A full queue hands the order to the fallback.
func (q *RetryQueue) Recover(ctx context.Context, paid *order.Order, cause error) error {
	q.mu.Lock()
	if len(q.pending) >= q.capacity {
		q.mu.Unlock()
		q.logger.WarnContext(ctx, "Retry queue is full, using fallback", "order_id", paid.ID().String())
		return q.fallback.Recover(ctx, paid, cause)
	}
	q.pending = append(q.pending, pendingOrder{order: paid.Clone(), lastErr: cause})
	size := len(q.pending)
	q.mu.Unlock()

	q.logger.InfoContext(ctx, "Order queued for storage retry", "order_id", paid.ID().String(), "queued", size)
	return nil
}

// Len is the number of orders waiting.
func (q *RetryQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

// Pending lists the ids of the waiting orders in arrival order.
func (q *RetryQueue) Pending() []kernel.UUID {
	q.mu.Lock()
	defer q.mu.Unlock()

	ids := make([]kernel.UUID, 0, len(q.pending))
	for _, p := range q.pending {
		ids = append(ids, p.order.ID())
	}
	return ids
}

// Drain tries to save every queued order once. An order that already exists
// counts as stored. Concurrent Drain calls run one after another; orders
// queued while a drain is running wait for the next one. Retries that no
// longer fit next to those orders go to the fallback.
func (q *RetryQueue) Drain(ctx context.Context, repository ports.OrderRepository) DrainReport {
	q.drainMu.Lock()
	defer q.drainMu.Unlock()

	q.mu.Lock()
	batch := q.pending
	q.pending = nil
	q.mu.Unlock()

	var report DrainReport
	retry := make([]pendingOrder, 0, len(batch))
	for _, p := range batch {
		err := repository.Save(ctx, p.order.Clone())
		if err == nil || errors.Is(err, ports.ErrOrderAlreadyExists) {
			report.Stored++
			q.logger.InfoContext(ctx, "Queued order stored", "order_id", p.order.ID().String())
			continue
		}

		p.attempts++
		p.lastErr = err
		if p.attempts >= q.maxAttempts {
			report.GaveUp++
			q.logger.WarnContext(ctx, "Giving up on queued order",
				"order_id", p.order.ID().String(), "attempts", p.attempts, "error", err)
			q.giveUp(ctx, p)
			continue
		}
		retry = append(retry, p)
	}

	var overflow []pendingOrder
	if len(retry) > 0 {
		q.mu.Lock()
		room := max(q.capacity-len(q.pending), 0)
		if len(retry) > room {
			overflow = retry[room:]
			retry = retry[:room]
		}
		q.pending = append(retry, q.pending...)
		q.mu.Unlock()
	}

	report.Requeued = len(retry)
	for _, p := range overflow {
		report.GaveUp++
		q.logger.WarnContext(ctx, "Retry queue is full, using fallback for queued order",
			"order_id", p.order.ID().String(), "attempts", p.attempts)
		q.giveUp(ctx, p)
	}

	return report
}

func (q *RetryQueue) giveUp(ctx context.Context, p pendingOrder) {
	if err := q.fallback.Recover(ctx, p.order, errs.NewStorageFailedError("save", p.lastErr)); err != nil {
		q.logger.ErrorContext(ctx, "Fallback recovery failed", "order_id", p.order.ID().String(), "error", err)
	}
}
