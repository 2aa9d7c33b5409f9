// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

const (
	StoreMongo    = "mongo"
	StorePostgres = "postgres"
)

type Config struct {
	App       App       `yaml:"app"`
	HTTP      HTTP      `yaml:"http"`
	GRPC      GRPC      `yaml:"grpc"`
	Store     Store     `yaml:"store"`
	Mongo     Mongo     `yaml:"mongo"`
	Postgres  Postgres  `yaml:"postgres"`
	Redis     Redis     `yaml:"redis"`
	Kafka     Kafka     `yaml:"kafka"`
	Auth      Auth      `yaml:"auth"`
	Scheduler Scheduler `yaml:"scheduler"`
	Tracing   Tracing   `yaml:"tracing"`
}

type App struct {
	Name     string `yaml:"name"      env:"APP_NAME"      env-default:"pet-food"`
	Env      string `yaml:"env"       env:"APP_ENV"       env-default:"production"`
	LogLevel string `yaml:"log_level" env:"APP_LOG_LEVEL" env-default:"info"`
	// Location is the time zone seller opening hours are written in.
	Location string `yaml:"location"  env:"APP_LOCATION"  env-default:"America/Sao_Paulo"`
}

type HTTP struct {
	Port            int           `yaml:"port"             env:"HTTP_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"HTTP_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"HTTP_WRITE_TIMEOUT"    env-default:"10s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"HTTP_SHUTDOWN_TIMEOUT" env-default:"15s"`
}

type GRPC struct {
	Port           int           `yaml:"port"            env:"GRPC_PORT"            env-default:"50051"`
	HealthInterval time.Duration `yaml:"health_interval" env:"GRPC_HEALTH_INTERVAL" env-default:"15s"`
}

type Store struct {
	Driver  string        `yaml:"driver"  env:"STORE_DRIVER"  env-default:"mongo"`
	Timeout time.Duration `yaml:"timeout" env:"STORE_TIMEOUT" env-default:"10s"`
}

type Mongo struct {
	URI      string `yaml:"uri"      env:"MONGO_URI"      env-default:"mongodb://localhost:27017"`
	Database string `yaml:"database" env:"MONGO_DATABASE" env-default:"petfood"`
}

type Postgres struct {
	Host     string `yaml:"host"     env:"DB_HOST"     env-default:"localhost"`
	Port     string `yaml:"port"     env:"DB_PORT"     env-default:"5432"`
	User     string `yaml:"user"     env:"DB_USER"     env-default:"postgres"`
	Password string `yaml:"password" env:"DB_PASSWORD"`
	Name     string `yaml:"name"     env:"DB_NAME"     env-default:"petfood"`
	SSLMode  string `yaml:"ssl_mode" env:"DB_SSLMODE"  env-default:"disable"`
}

func (p Postgres) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Name, p.SSLMode)
}

type Redis struct {
	Addr     string `yaml:"addr"     env:"REDIS_ADDR"     env-default:"localhost:6379"`
	Username string `yaml:"username" env:"REDIS_USERNAME"`
	Password string `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"db"       env:"REDIS_DB"       env-default:"0"`
}

// Kafka publishing is off when Brokers is empty.
type Kafka struct {
	Brokers  string `yaml:"brokers"   env:"KAFKA_BROKERS"`
	Topic    string `yaml:"topic"     env:"KAFKA_TOPIC"     env-default:"request_events"`
	ClientID string `yaml:"client_id" env:"KAFKA_CLIENT_ID" env-default:"pet-food"`
}

func (k Kafka) BrokerList() []string {
	var out []string
	for _, b := range strings.Split(k.Brokers, ",") {
		if b = strings.TrimSpace(b); b != "" {
			out = append(out, b)
		}
	}
	return out
}

type Auth struct {
	JWTSecret string        `yaml:"jwt_secret" env:"JWT_SECRET" env-required:"true"`
	TokenTTL  time.Duration `yaml:"token_ttl"  env:"JWT_TTL"    env-default:"24h"`
}

type Scheduler struct {
	Enabled      bool   `yaml:"enabled"       env:"SCHEDULER_ENABLED"       env-default:"true"`
	Cron         string `yaml:"cron"          env:"SCHEDULER_CRON"          env-default:"0 */5 * * * *"`
	StaleMinutes int    `yaml:"stale_minutes" env:"SCHEDULER_STALE_MINUTES" env-default:"60"`
	Page         int    `yaml:"page"          env:"SCHEDULER_PAGE"          env-default:"0"`
	Size         int    `yaml:"size"          env:"SCHEDULER_SIZE"          env-default:"50"`
}

func (s Scheduler) StaleAfter() time.Duration {
	return time.Duration(s.StaleMinutes) * time.Minute
}

// Tracing exports spans to Jaeger when Endpoint is set.
type Tracing struct {
	Endpoint   string  `yaml:"endpoint"    env:"TRACING_JAEGER_ENDPOINT"`
	SampleRate float64 `yaml:"sample_rate" env:"TRACING_SAMPLE_RATE"     env-default:"0.1"`
}

// Load reads an optional .env file, then the YAML file at path if one is
// given, then the environment. Environment variables win.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}

	var cfg Config
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config file %s: %w", path, err)
		}
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("reading config: %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("reading env: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func MustLoad() *Config {
	cfg, err := Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		panic(err)
	}
	return cfg
}

func (c *Config) validate() error {
	switch c.Store.Driver {
	case StoreMongo, StorePostgres:
	default:
		return fmt.Errorf("unknown store driver %q", c.Store.Driver)
	}
	if _, err := time.LoadLocation(c.App.Location); err != nil {
		return fmt.Errorf("app location: %w", err)
	}
	if c.Scheduler.StaleMinutes <= 0 {
		return fmt.Errorf("scheduler stale minutes must be positive, got %d", c.Scheduler.StaleMinutes)
	}
	return nil
}

// TimeLocation resolves App.Location; Load already checked it.
func (c *Config) TimeLocation() *time.Location {
	loc, err := time.LoadLocation(c.App.Location)
	if err != nil {
		return time.UTC
	}
	return loc
}
