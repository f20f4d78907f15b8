package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"sync"

	"coffeeshop/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

const (
	StoreMemory   = "memory"
	StoreJSON     = "json"
	StorePostgres = "postgres"

	PaymentCash = "cash"
	PaymentCard = "card"

	RecoveryManual = "manual"
	RecoveryRetry  = "retry"
)

type Config struct {
	HTTPPort string

	Store     string
	StoreFile string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	PaymentMethod  string
	CardGatewayURL string

	KafkaBrokers          []string
	KafkaOrderEventsTopic string

	TaxRate           decimal.Decimal
	MenuFile          string
	ReconcileSchedule string
	Recovery          string

	LogLevel     string
	OTLPEndpoint string
}

var loadDotEnv sync.Once

// LoadConfig reads the configuration from the environment. A .env file in the
// working directory is loaded once when present; real environment variables
// win over it.
func LoadConfig() (Config, error) {
	var dotEnvErr error
	loadDotEnv.Do(func() {
		if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
			dotEnvErr = fmt.Errorf("failed to load .env file: %w", err)
		}
	})
	if dotEnvErr != nil {
		return Config{}, dotEnvErr
	}

	taxRate, err := decimal.NewFromString(envOrDefault("TAX_RATE", "0.08"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid TAX_RATE: %w", err)
	}

	config := Config{
		HTTPPort:              envOrDefault("HTTP_PORT", "8080"),
		Store:                 strings.ToLower(envOrDefault("STORE", StoreMemory)),
		StoreFile:             envOrDefault("STORE_FILE", "orders.json"),
		DBHost:                envOrDefault("DB_HOST", "localhost"),
		DBPort:                envOrDefault("DB_PORT", "5432"),
		DBUser:                os.Getenv("DB_USER"),
		DBPassword:            os.Getenv("DB_PASSWORD"),
		DBName:                os.Getenv("DB_NAME"),
		DBSslMode:             envOrDefault("DB_SSLMODE", "disable"),
		PaymentMethod:         strings.ToLower(envOrDefault("PAYMENT_METHOD", PaymentCash)),
		CardGatewayURL:        os.Getenv("CARD_GATEWAY_URL"),
		KafkaBrokers:          splitList(os.Getenv("KAFKA_BROKERS")),
		KafkaOrderEventsTopic: envOrDefault("KAFKA_ORDER_EVENTS_TOPIC", "order-events"),
		TaxRate:               taxRate,
		MenuFile:              os.Getenv("MENU_FILE"),
		ReconcileSchedule:     envOrDefault("RECONCILE_SCHEDULE", jobs.DefaultReconcileSchedule),
		Recovery:              strings.ToLower(envOrDefault("RECOVERY", RecoveryManual)),
		LogLevel:              envOrDefault("LOG_LEVEL", "info"),
		OTLPEndpoint:          os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
	}
	return config, config.Validate()
}

// Validate checks the enumerated settings and what each store needs.
func (c Config) Validate() error {
	var problems []error

	switch c.Store {
	case StoreMemory:
	case StoreJSON:
		if c.StoreFile == "" {
			problems = append(problems, errors.New("STORE_FILE is required for the json store"))
		}
	case StorePostgres:
		if c.DBUser == "" || c.DBName == "" {
			problems = append(problems, errors.New("DB_USER and DB_NAME are required for the postgres store"))
		}
	default:
		problems = append(problems, fmt.Errorf("STORE must be memory, json or postgres, got %q", c.Store))
	}

	if c.PaymentMethod != PaymentCash && c.PaymentMethod != PaymentCard {
		problems = append(problems, fmt.Errorf("PAYMENT_METHOD must be cash or card, got %q", c.PaymentMethod))
	}
	if c.Recovery != RecoveryManual && c.Recovery != RecoveryRetry {
		problems = append(problems, fmt.Errorf("RECOVERY must be manual or retry, got %q", c.Recovery))
	}

	return errors.Join(problems...)
}

func envOrDefault(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}

func splitList(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
