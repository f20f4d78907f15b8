package cmd_test

import (
	"path/filepath"
	"testing"

	"coffeeshop/cmd"
	"coffeeshop/internal/jobs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	for _, key := range []string{"STORE", "PAYMENT_METHOD", "RECOVERY", "TAX_RATE", "KAFKA_BROKERS", "RECONCILE_SCHEDULE", "HTTP_PORT"} {
		t.Setenv(key, "")
	}

	config, err := cmd.LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, "8080", config.HTTPPort)
	assert.Equal(t, cmd.StoreMemory, config.Store)
	assert.Equal(t, cmd.PaymentCash, config.PaymentMethod)
	assert.Equal(t, cmd.RecoveryManual, config.Recovery)
	assert.Equal(t, "0.08", config.TaxRate.String())
	assert.Equal(t, jobs.DefaultReconcileSchedule, config.ReconcileSchedule)
	assert.Empty(t, config.KafkaBrokers)
}

func TestLoadConfig_FromEnvironment(t *testing.T) {
	t.Setenv("STORE", "JSON")
	t.Setenv("STORE_FILE", filepath.Join(t.TempDir(), "orders.json"))
	t.Setenv("PAYMENT_METHOD", "card")
	t.Setenv("RECOVERY", "retry")
	t.Setenv("TAX_RATE", "0.2")
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092, kafka-2:9092,")

	config, err := cmd.LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, cmd.StoreJSON, config.Store)
	assert.Equal(t, cmd.PaymentCard, config.PaymentMethod)
	assert.Equal(t, cmd.RecoveryRetry, config.Recovery)
	assert.Equal(t, "0.2", config.TaxRate.String())
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, config.KafkaBrokers)
}

func TestLoadConfig_Invalid(t *testing.T) {
	t.Setenv("STORE", "redis")
	t.Setenv("PAYMENT_METHOD", "barter")
	t.Setenv("RECOVERY", "")
	t.Setenv("TAX_RATE", "")

	_, err := cmd.LoadConfig()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "STORE")
	assert.Contains(t, err.Error(), "PAYMENT_METHOD")

	t.Setenv("STORE", "")
	t.Setenv("PAYMENT_METHOD", "")
	t.Setenv("TAX_RATE", "eight percent")
	_, err = cmd.LoadConfig()
	assert.ErrorContains(t, err, "TAX_RATE")
}

func TestConfig_ValidatePostgresNeedsCredentials(t *testing.T) {
	config := cmd.Config{Store: cmd.StorePostgres, PaymentMethod: cmd.PaymentCash, Recovery: cmd.RecoveryManual}

	assert.ErrorContains(t, config.Validate(), "DB_USER")
}
