package config

import (
	"fmt"
	"net"
	"reflect"
	"strconv"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

type Config struct {
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	Server     ServerConfig     `envPrefix:"SERVER_"`
	Database   DatabaseConfig   `envPrefix:"DB_"`
	Redis      RedisConfig      `envPrefix:"REDIS_"`
	RabbitMQ   RabbitMQConfig   `envPrefix:"RABBITMQ_"`
	Auth       AuthConfig       `envPrefix:"AUTH_"`
	Internal   InternalConfig   `envPrefix:"INTERNAL_"`
	Order      OrderConfig      `envPrefix:"ORDER_"`
	Withdrawal WithdrawalConfig `envPrefix:"WITHDRAWAL_"`
	Payment    PaymentConfig    `envPrefix:"PAYMENT_"`
}

type ServerConfig struct {
	Port         string        `env:"PORT" envDefault:"8080"`
	ReadTimeout  time.Duration `env:"READ_TIMEOUT" envDefault:"15s"`
	WriteTimeout time.Duration `env:"WRITE_TIMEOUT" envDefault:"15s"`
	IdleTimeout  time.Duration `env:"IDLE_TIMEOUT" envDefault:"60s"`
}

type DatabaseConfig struct {
	Host            string        `env:"HOST" envDefault:"localhost"`
	Port            int           `env:"PORT" envDefault:"3306"`
	User            string        `env:"USER" envDefault:"root"`
	Password        string        `env:"PASSWORD"`
	Name            string        `env:"NAME" envDefault:"marketplace"`
	MaxOpenConns    int           `env:"MAX_OPEN_CONNS" envDefault:"25"`
	MaxIdleConns    int           `env:"MAX_IDLE_CONNS" envDefault:"10"`
	ConnMaxLifetime time.Duration `env:"CONN_MAX_LIFETIME" envDefault:"5m"`
}

type RedisConfig struct {
	Host         string        `env:"HOST" envDefault:"localhost"`
	Port         int           `env:"PORT" envDefault:"6379"`
	Password     string        `env:"PASSWORD"`
	DB           int           `env:"DB" envDefault:"0"`
	PoolSize     int           `env:"POOL_SIZE" envDefault:"20"`
	DialTimeout  time.Duration `env:"DIAL_TIMEOUT" envDefault:"5s"`
	ReadTimeout  time.Duration `env:"READ_TIMEOUT" envDefault:"3s"`
	WriteTimeout time.Duration `env:"WRITE_TIMEOUT" envDefault:"3s"`
}

func (r RedisConfig) Addr() string {
	return net.JoinHostPort(r.Host, strconv.Itoa(r.Port))
}

type RabbitMQConfig struct {
	Host     string `env:"HOST" envDefault:"localhost"`
	Port     int    `env:"PORT" envDefault:"5672"`
	User     string `env:"USER" envDefault:"guest"`
	Password string `env:"PASSWORD" envDefault:"guest"`
}

type AuthConfig struct {
	JWTSecret      string        `env:"JWT_SECRET,required,notEmpty"`
	JWTExpiration  time.Duration `env:"JWT_EXPIRATION" envDefault:"24h"`
	SessionExpTime time.Duration `env:"SESSION_EXP_TIME" envDefault:"24h"`
}

// InternalConfig is used by the expiration consumer to reach the internal API.
type InternalConfig struct {
	APIKey  string `env:"API_KEY"`
	BaseURL string `env:"BASE_URL" envDefault:"http://localhost:8080"`
}

type OrderConfig struct {
	// PaymentExpiration is how long an order may stay PENDING_PAYMENT before it is cancelled.
	PaymentExpiration time.Duration `env:"PAYMENT_EXPIRATION" envDefault:"24h"`

	ServiceFeeMinSubtotal decimal.Decimal `env:"SERVICE_FEE_MIN_SUBTOTAL" envDefault:"50000"`
	ServiceFeeInterval    decimal.Decimal `env:"SERVICE_FEE_INTERVAL" envDefault:"100000"`
	ServiceFeeRate        decimal.Decimal `env:"SERVICE_FEE_RATE" envDefault:"1000"`
	PriceTolerance        decimal.Decimal `env:"PRICE_TOLERANCE" envDefault:"1"`
}

type WithdrawalConfig struct {
	MinAmount decimal.Decimal `env:"MIN_AMOUNT" envDefault:"10000"`
}

type PaymentConfig struct {
	ServerKey   string        `env:"SERVER_KEY"`
	Production  bool          `env:"PRODUCTION" envDefault:"false"`
	HTTPTimeout time.Duration `env:"HTTP_TIMEOUT" envDefault:"15s"`

	// SnapBaseURL replaces the Snap host picked from Production, e.g. for a local stub.
	SnapBaseURL string `env:"SNAP_BASE_URL"`

	// WebhookDedupeTTL is how long a processed notification is remembered in redis.
	WebhookDedupeTTL time.Duration `env:"WEBHOOK_DEDUPE_TTL" envDefault:"24h"`
}

// Load reads an optional .env file and parses the environment into Config.
func Load() (*Config, error) {
	// .env is optional; real deployments inject variables directly
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, env.Options{
		FuncMap: map[reflect.Type]env.ParserFunc{
			reflect.TypeOf(decimal.Decimal{}): parseDecimal,
		},
	}); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

func (c *Config) GetDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true&loc=UTC",
		c.Database.User, c.Database.Password, c.Database.Host, c.Database.Port, c.Database.Name)
}

func parseDecimal(v string) (interface{}, error) {
	return decimal.NewFromString(v)
}
