package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

// Authorization policies. "required" gates every entity route behind a
// resolved administrator; "open" drops the gate from read endpoints only.
const (
	AuthPolicyRequired = "required"
	AuthPolicyOpen     = "open"
)

type Config struct {
	Port            string `env:"PORT,              default=8080"`
	Env             string `env:"ENV,               default=development"`
	JWTSecret       string `env:"JWT_SECRET"`
	TokenTTLMinutes int    `env:"TOKEN_TTL_MINUTES, default=30"`
	AuthPolicy      string `env:"AUTH_POLICY,       default=required"`
	LogLevel        string `env:"LOG_LEVEL,         default=info"`
	AuditWorkers    int    `env:"AUDIT_WORKERS,     default=4"`
	RedeemWindowSec int    `env:"REDEEM_WINDOW_SEC, default=10"`

	Mongo MongoConfig
	Redis RedisConfig
	Seed  SeedConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=ticketing"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// SeedConfig bootstraps the first administrator. Creating administrators
// through the API requires an authenticated administrator, so an empty
// registry can only be populated out of band. Applied at startup when the
// administrator collection is empty and Identificacion is set.
type SeedConfig struct {
	Identificacion string `env:"SEED_ADMIN_ID"`
	Nombres        string `env:"SEED_ADMIN_NOMBRES,  default=Admin"`
	Apellidos      string `env:"SEED_ADMIN_APELLIDOS, default=Inicial"`
	Email          string `env:"SEED_ADMIN_EMAIL"`
	Password       string `env:"SEED_ADMIN_PASSWORD"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if cfg.AuthPolicy != AuthPolicyRequired && cfg.AuthPolicy != AuthPolicyOpen {
		return nil, fmt.Errorf("config: unknown AUTH_POLICY %q", cfg.AuthPolicy)
	}
	return &cfg, nil
}
