package config

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

const (
	StoreMongo  = "mongo"
	StoreMemory = "memory"
)

type Config struct {
	Env         string `env:"ENV,          default=development"`
	StoreDriver string `env:"STORE_DRIVER, default=mongo"`

	HTTP   HTTPConfig
	Log    LogConfig
	Mongo  MongoConfig
	Redis  RedisConfig
	Auth   AuthConfig
	Intake IntakeConfig
}

type HTTPConfig struct {
	Port            string        `env:"PORT,             default=3000"`
	ClientDir       string        `env:"CLIENT_DIR,       default=client/build"`
	CORSOrigins     []string      `env:"CORS_ORIGINS,     default=*"`
	ExposeErrors    bool          `env:"EXPOSE_ERRORS,    default=true"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT, default=10s"`
}

type LogConfig struct {
	Level string `env:"LOG_LEVEL, default=info"`
}

type MongoConfig struct {
	URI          string        `env:"MONGO_URI,          default=mongodb://localhost:27017"`
	Database     string        `env:"MONGO_DB,           default=garage"`
	OpTimeout    time.Duration `env:"MONGO_OP_TIMEOUT,   default=10s"`
	Transactions bool          `env:"MONGO_TRANSACTIONS, default=false"`
}

// RedisConfig is optional: an empty Addr disables the idempotency cache.
type RedisConfig struct {
	Addr           string        `env:"REDIS_ADDR"`
	DB             int           `env:"REDIS_DB,        default=0"`
	IdempotencyTTL time.Duration `env:"IDEMPOTENCY_TTL, default=24h"`
}

type AuthConfig struct {
	JWTSecret  string        `env:"JWT_SECRET"`
	TokenTTL   time.Duration `env:"JWT_TTL,      default=24h"`
	BcryptCost int           `env:"BCRYPT_COST,  default=10"`
	Enforce    bool          `env:"AUTH_ENFORCE, default=false"`
}

type IntakeConfig struct {
	LinkAttempts int `env:"INTAKE_LINK_ATTEMPTS, default=3"`
}

// Load reads configuration from the process environment.
func Load(ctx context.Context) (*Config, error) {
	return LoadWith(ctx, envconfig.OsLookuper())
}

// LoadWith reads configuration through l and validates it.
func LoadWith(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: l}); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	var errs []error
	switch c.StoreDriver {
	case StoreMongo, StoreMemory:
	default:
		errs = append(errs, fmt.Errorf("STORE_DRIVER must be %q or %q, got %q", StoreMongo, StoreMemory, c.StoreDriver))
	}
	if c.Auth.JWTSecret == "" {
		errs = append(errs, errors.New("JWT_SECRET is required"))
	}
	if c.Intake.LinkAttempts < 1 {
		errs = append(errs, errors.New("INTAKE_LINK_ATTEMPTS must be at least 1"))
	}
	return errors.Join(errs...)
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

func (c *Config) RedisEnabled() bool {
	return c.Redis.Addr != ""
}
