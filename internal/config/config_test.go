package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.HTTPAddr)
	assert.Equal(t, StorageModePostgres, cfg.StorageMode)
	assert.Equal(t, 5432, cfg.Postgres.Port)
	assert.Equal(t, "order-events", cfg.Kafka.OrderTopic)
	assert.Empty(t, cfg.Kafka.Brokers)
	assert.Equal(t, 2*time.Second, cfg.Outbox.PollInterval)
	assert.Equal(t, 5*time.Second, cfg.GeocodeTimeout)
	assert.Equal(t, "console", cfg.LogFormat)
}

func TestLoad_Environment(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("STORAGE_MODE", "memory")
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092,kafka-2:9092")
	t.Setenv("OUTBOX_MAX_ATTEMPTS", "3")
	t.Setenv("DB_HOST", "db")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, StorageModeMemory, cfg.StorageMode)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, 3, cfg.Outbox.MaxAttempts)
	assert.Contains(t, cfg.Postgres.DSN(), "host=db port=5432")
}

func TestLoad_EnvFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("HTTP_ADDR=:8088\n"), 0o600))
	chdir(t, dir)
	t.Setenv("HTTP_ADDR", "")
	os.Unsetenv("HTTP_ADDR")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":8088", cfg.HTTPAddr)
}

func TestLoad_InvalidStorageMode(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("STORAGE_MODE", "redis")

	_, err := Load()
	assert.Error(t, err)
}

func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}
