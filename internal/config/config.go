package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

const (
	StorageModePostgres = "postgres"
	StorageModeMemory   = "memory"
)

type Postgres struct {
	Host     string `env:"DB_HOST" envDefault:"localhost"`
	Port     int    `env:"DB_PORT" envDefault:"5432"`
	User     string `env:"POSTGRES_USER" envDefault:"postgres"`
	Password string `env:"POSTGRES_PASSWORD"`
	Name     string `env:"POSTGRES_DB" envDefault:"fulfillment"`
	MaxConns int    `env:"DB_MAX_CONNS" envDefault:"10"`
}

func (p Postgres) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable", p.Host, p.Port, p.User, p.Password, p.Name)
}

type Kafka struct {
	Brokers    []string `env:"KAFKA_BROKERS" envSeparator:","`
	OrderTopic string   `env:"KAFKA_ORDER_TOPIC" envDefault:"order-events"`
	GroupID    string   `env:"KAFKA_GROUP_ID" envDefault:"order-events-logger"`
}

type Outbox struct {
	PollInterval time.Duration `env:"OUTBOX_POLL_INTERVAL" envDefault:"2s"`
	BatchSize    int           `env:"OUTBOX_BATCH_SIZE" envDefault:"10"`
	MaxAttempts  int           `env:"OUTBOX_MAX_ATTEMPTS" envDefault:"5"`
}

type Audit struct {
	Workers      int           `env:"AUDIT_WORKERS" envDefault:"2"`
	BatchSize    int           `env:"AUDIT_BATCH_SIZE" envDefault:"5"`
	FlushTimeout time.Duration `env:"AUDIT_FLUSH_TIMEOUT" envDefault:"500ms"`
	BufferSize   int           `env:"AUDIT_BUFFER_SIZE" envDefault:"100"`
}

type Config struct {
	HTTPAddr    string `env:"HTTP_ADDR" envDefault:":9000"`
	StorageMode string `env:"STORAGE_MODE" envDefault:"postgres"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat   string `env:"LOG_FORMAT" envDefault:"console"`

	PrintBaseURL   string        `env:"PRINT_BASE_URL" envDefault:"http://localhost:3000"`
	ChromeWSURL    string        `env:"CHROME_WS_URL"`
	GeocodeBaseURL string        `env:"GEOCODE_BASE_URL" envDefault:"https://nominatim.openstreetmap.org"`
	GeocodeTimeout time.Duration `env:"GEOCODE_TIMEOUT" envDefault:"5s"`

	AdminUsername string `env:"ADMIN_USERNAME" envDefault:"admin"`
	AdminPassword string `env:"ADMIN_PASSWORD"`

	Postgres Postgres
	Kafka    Kafka
	Outbox   Outbox
	Audit    Audit
}

// Load reads the nearest .env file, if any, and parses the environment.
func Load() (Config, error) {
	loadEnvFile()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.StorageMode {
	case StorageModePostgres, StorageModeMemory:
	default:
		return fmt.Errorf("unknown STORAGE_MODE %q", c.StorageMode)
	}
	if c.Outbox.BatchSize <= 0 || c.Outbox.MaxAttempts <= 0 {
		return fmt.Errorf("outbox batch size and max attempts must be positive")
	}
	if c.Audit.Workers <= 0 || c.Audit.BatchSize <= 0 {
		return fmt.Errorf("audit workers and batch size must be positive")
	}
	return nil
}

func loadEnvFile() {
	wd, err := os.Getwd()
	if err != nil {
		return
	}

	for _, dir := range []string{wd, filepath.Join(wd, ".."), filepath.Join(wd, "..", "..")} {
		for _, name := range []string{".env", ".example.env"} {
			path := filepath.Join(dir, name)
			if err := godotenv.Load(path); err == nil {
				log.Printf("Loaded environment variables from %s", path)
				return
			}
		}
	}
}
