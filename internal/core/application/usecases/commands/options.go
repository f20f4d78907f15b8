package commands

import (
	"log/slog"

	"coffeeshop/internal/core/application/recovery"
	"coffeeshop/internal/core/domain/model/kernel"
	"coffeeshop/internal/core/ports"
	"coffeeshop/internal/pkg/clock"

	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("coffeeshop/internal/core/application/usecases/commands")

type options struct {
	logger   *slog.Logger
	clock    clock.Clock
	locker   OrderLocker
	recovery ports.RecoveryStrategy
}

// Option configures a command handler.
type Option func(*options)

// WithLogger sets the logger used for warnings. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithClock sets the clock that stamps new orders.
func WithClock(c clock.Clock) Option {
	return func(o *options) {
		o.clock = c
	}
}

// WithOrderLocker serialises lifecycle operations per order id.
func WithOrderLocker(locker OrderLocker) Option {
	return func(o *options) {
		o.locker = locker
	}
}

// WithRecovery sets what PlaceOrder does with a paid order it could not store.
// Defaults to recovery.ManualReconciliation.
func WithRecovery(strategy ports.RecoveryStrategy) Option {
	return func(o *options) {
		o.recovery = strategy
	}
}

func newOptions(opts []Option) options {
	o := options{
		logger: slog.Default(),
		clock:  clock.NewSystem(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.recovery == nil {
		o.recovery = recovery.NewManualReconciliation(o.logger)
	}
	return o
}

func (o options) lock(id kernel.UUID) func() {
	if o.locker == nil {
		return func() {}
	}
	return o.locker.Lock(id)
}
