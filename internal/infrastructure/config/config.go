package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// FrontendURL is the origin of the SPA; used for CORS and for the
	// Stripe success/cancel redirect targets.
	FrontendURL string `env:"FRONTEND_URL, default=http://localhost:5173"`
	// StaticDir, when set, is served at / so a built SPA bundle can be
	// hosted by this binary.
	StaticDir string `env:"STATIC_DIR"`
	// SeedDemoData loads the demo fixtures (admin, demo user, catalogue)
	// at startup when true.
	SeedDemoData bool `env:"SEED_DEMO_DATA, default=false"`

	Auth   AuthConfig
	Mongo  MongoConfig
	Redis  RedisConfig
	SMTP   SMTPConfig
	Stripe StripeConfig
}

type AuthConfig struct {
	// TokenSecret signs the HS256 access tokens.
	TokenSecret string `env:"TOKEN_SECRET"`
	// AllowLegacyTokens also accepts the historical unsigned
	// base64(email:timestamp) tokens. Off by default; the legacy scheme has
	// no integrity guarantee.
	AllowLegacyTokens bool `env:"AUTH_ALLOW_LEGACY_TOKENS, default=false"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=nailyse"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

type SMTPConfig struct {
	Host      string `env:"SMTP_HOST, default=localhost"`
	Port      int    `env:"SMTP_PORT, default=587"`
	Username  string `env:"SMTP_USERNAME"`
	Password  string `env:"SMTP_PASSWORD"`
	FromEmail string `env:"MAIL_FROM,      default=hello@nailyse.com"`
	FromName  string `env:"MAIL_FROM_NAME, default=Nailyse"`
}

type StripeConfig struct {
	// SecretKey starting with the placeholder prefix "sk_test_***" enables
	// mock mode: checkout sessions are simulated without contacting Stripe.
	SecretKey string `env:"STRIPE_SECRET_KEY, default=sk_test_***"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
