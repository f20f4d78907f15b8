package cmd

import (
	"errors"
	"fmt"
	"log/slog"

	httpadapter "coffeeshop/internal/adapters/in/http"
	"coffeeshop/internal/adapters/out/jsonfile"
	"coffeeshop/internal/adapters/out/memory"
	"coffeeshop/internal/adapters/out/notify"
	"coffeeshop/internal/adapters/out/payment"
	"coffeeshop/internal/adapters/out/postgres"
	"coffeeshop/internal/adapters/out/postgres/orderrepo"
	"coffeeshop/internal/core/application/recovery"
	"coffeeshop/internal/core/application/usecases/commands"
	"coffeeshop/internal/core/application/usecases/queries"
	"coffeeshop/internal/core/domain/model/beverage"
	"coffeeshop/internal/core/domain/services"
	"coffeeshop/internal/core/ports"
	"coffeeshop/internal/jobs"
)

const (
	retryQueueCapacity    = 1000
	retryQueueMaxAttempts = 5
)

// CompositionRoot builds the adapters selected by Config once and hands out
// use case handlers wired to them.
type CompositionRoot struct {
	config Config
	logger *slog.Logger

	orders     ports.OrderRepository
	payments   ports.PaymentProcessor
	notifier   ports.Notifier
	recovery   ports.RecoveryStrategy
	retryQueue *recovery.RetryQueue
	locker     commands.OrderLocker

	menu       beverage.Menu
	calculator services.PricingCalculator

	closers []func() error
}

func NewCompositionRoot(config Config, logger *slog.Logger) (*CompositionRoot, error) {
	c := &CompositionRoot{
		config: config,
		logger: logger,
		locker: commands.NewKeyedMutex(),
	}

	steps := []func() error{
		c.initOrderRepository,
		c.initPaymentProcessor,
		c.initNotifier,
		c.initRecovery,
		c.initPricing,
	}
	for _, step := range steps {
		if err := step(); err != nil {
			_ = c.Close()
			return nil, err
		}
	}
	return c, nil
}

// Close releases database connections and Kafka writers.
func (c *CompositionRoot) Close() error {
	var errs []error
	for i := len(c.closers) - 1; i >= 0; i-- {
		errs = append(errs, c.closers[i]())
	}
	c.closers = nil
	return errors.Join(errs...)
}

func (c *CompositionRoot) initOrderRepository() error {
	switch c.config.Store {
	case StoreJSON:
		repository, err := jsonfile.NewOrderRepository(c.config.StoreFile)
		if err != nil {
			return fmt.Errorf("failed to open order file: %w", err)
		}
		c.orders = repository
	case StorePostgres:
		db, sqlDB, err := postgres.Connect(postgres.MakeConnectionString(
			c.config.DBHost,
			c.config.DBPort,
			c.config.DBUser,
			c.config.DBPassword,
			c.config.DBName,
			c.config.DBSslMode,
		))
		if err != nil {
			return err
		}
		c.closers = append(c.closers, sqlDB.Close)
		if err = postgres.Migrate(sqlDB); err != nil {
			return err
		}
		c.orders = orderrepo.NewGormOrderRepository(db)
	default:
		c.orders = memory.NewOrderRepository()
	}
	c.logger.Info("Order store ready", "store", c.config.Store)
	return nil
}

func (c *CompositionRoot) initPaymentProcessor() error {
	switch c.config.PaymentMethod {
	case PaymentCard:
		var opts []payment.CreditCardOption
		if c.config.CardGatewayURL != "" {
			opts = append(opts, payment.WithGateway(c.config.CardGatewayURL, nil))
		}
		c.payments = payment.NewCreditCard(opts...)
	default:
		c.payments = payment.NewCash()
	}
	c.logger.Info("Payment method ready", "method", c.payments.MethodName())
	return nil
}

func (c *CompositionRoot) initNotifier() error {
	notifiers := []ports.Notifier{notify.NewLogNotifier(c.logger)}
	if len(c.config.KafkaBrokers) > 0 {
		kafkaNotifier := notify.NewKafkaNotifier(
			notify.NewKafkaWriter(c.config.KafkaBrokers, c.config.KafkaOrderEventsTopic),
			c.config.KafkaOrderEventsTopic,
			nil,
		)
		c.closers = append(c.closers, kafkaNotifier.Close)
		notifiers = append(notifiers, kafkaNotifier)
	}
	c.notifier = notify.NewFanout(notifiers...)
	return nil
}

func (c *CompositionRoot) initRecovery() error {
	manual := recovery.NewManualReconciliation(c.logger)
	if c.config.Recovery != RecoveryRetry {
		c.recovery = manual
		return nil
	}

	queue, err := recovery.NewRetryQueue(retryQueueCapacity, retryQueueMaxAttempts, manual, c.logger)
	if err != nil {
		return err
	}
	c.retryQueue = queue
	c.recovery = queue
	return nil
}

func (c *CompositionRoot) initPricing() error {
	c.menu = beverage.DefaultMenu()
	if c.config.MenuFile != "" {
		menu, err := beverage.LoadMenu(c.config.MenuFile)
		if err != nil {
			return err
		}
		c.menu = menu
	}

	calculator, err := services.NewPricingCalculator(c.config.TaxRate)
	if err != nil {
		return err
	}
	c.calculator = calculator
	return nil
}

func (c *CompositionRoot) Menu() beverage.Menu {
	return c.menu
}

func (c *CompositionRoot) commandOptions() []commands.Option {
	return []commands.Option{
		commands.WithLogger(c.logger),
		commands.WithOrderLocker(c.locker),
		commands.WithRecovery(c.recovery),
	}
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	return commands.NewPlaceOrderCommandHandler(c.orders, c.payments, c.notifier, c.commandOptions()...)
}

func (c *CompositionRoot) CreateMarkOrderPreparingCommandHandler() commands.MarkOrderPreparingCommandHandler {
	return commands.NewMarkOrderPreparingCommandHandler(c.orders, c.commandOptions()...)
}

func (c *CompositionRoot) CreateMarkOrderReadyCommandHandler() commands.MarkOrderReadyCommandHandler {
	return commands.NewMarkOrderReadyCommandHandler(c.orders, c.notifier, c.commandOptions()...)
}

func (c *CompositionRoot) CreateCompleteOrderCommandHandler() commands.CompleteOrderCommandHandler {
	return commands.NewCompleteOrderCommandHandler(c.orders, c.commandOptions()...)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.orders, c.notifier, c.commandOptions()...)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.orders)
}

func (c *CompositionRoot) CreateListCustomerOrdersQueryHandler() queries.ListCustomerOrdersQueryHandler {
	return queries.NewListCustomerOrdersQueryHandler(c.orders)
}

func (c *CompositionRoot) CreateListAllOrdersQueryHandler() queries.ListAllOrdersQueryHandler {
	return queries.NewListAllOrdersQueryHandler(c.orders)
}

func (c *CompositionRoot) CreateQuoteQueryHandler() queries.QuoteQueryHandler {
	return queries.NewQuoteQueryHandler(c.orders, c.calculator)
}

// CreateHTTPHandlers groups every handler the HTTP adapter serves.
func (c *CompositionRoot) CreateHTTPHandlers() httpadapter.Handlers {
	return httpadapter.Handlers{
		PlaceOrder:         c.CreatePlaceOrderCommandHandler(),
		MarkOrderPreparing: c.CreateMarkOrderPreparingCommandHandler(),
		MarkOrderReady:     c.CreateMarkOrderReadyCommandHandler(),
		CompleteOrder:      c.CreateCompleteOrderCommandHandler(),
		CancelOrder:        c.CreateCancelOrderCommandHandler(),
		GetOrder:           c.CreateGetOrderQueryHandler(),
		ListCustomerOrders: c.CreateListCustomerOrdersQueryHandler(),
		ListAllOrders:      c.CreateListAllOrdersQueryHandler(),
		Quote:              c.CreateQuoteQueryHandler(),
	}
}

// CreateJobManager schedules the reconciliation job when orders can be queued
// for a retry. Otherwise the manager has nothing to run.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	if c.retryQueue == nil {
		return jobs.NewJobManager()
	}
	handler := commands.NewReconcileUnstoredOrdersCommandHandler(c.retryQueue, c.orders)
	return jobs.NewJobManager(jobs.NewReconciliationJob(handler, c.config.ReconcileSchedule, c.logger))
}
