package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port        string `env:"PORT,         default=5000"`
	Env         string `env:"ENV,          default=development"`
	LogLevel    string `env:"LOG_LEVEL,    default=info"`
	JWTSecret   string `env:"JWT_SECRET,   required"`
	BcryptCost  int    `env:"BCRYPT_COST,  default=10"`
	FrontendURL string `env:"FRONTEND_URL, default=http://localhost:3000"`

	Mongo     MongoConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig
	Minio     MinioConfig
	SMTP      SMTPConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=inventory"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR,     default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,       default=0"`
}

// RateLimitConfig throttles POST /api/users/forgotpassword per client IP.
type RateLimitConfig struct {
	ForgotPasswordLimit  int64         `env:"FORGOT_PASSWORD_LIMIT,  default=5"`
	ForgotPasswordWindow time.Duration `env:"FORGOT_PASSWORD_WINDOW, default=15m"`
}

type MinioConfig struct {
	Endpoint  string `env:"MINIO_ENDPOINT,   default=localhost:9000"`
	AccessKey string `env:"MINIO_ACCESS_KEY, default=minioadmin"`
	SecretKey string `env:"MINIO_SECRET_KEY, default=minioadmin"`
	Bucket    string `env:"MINIO_BUCKET,     default=inventory"`
	UseSSL    bool   `env:"MINIO_USE_SSL,    default=false"`
	// PublicURL is the base used to build image links returned to clients.
	PublicURL string `env:"MINIO_PUBLIC_URL, default=http://localhost:9000"`
}

type SMTPConfig struct {
	Host         string `env:"SMTP_HOST, default=localhost"`
	Port         int    `env:"SMTP_PORT, default=587"`
	User         string `env:"SMTP_USER"`
	Password     string `env:"SMTP_PASSWORD"`
	From         string `env:"EMAIL_FROM,    default=noreply@inventory.local"`
	SupportEmail string `env:"SUPPORT_EMAIL, default=support@inventory.local"`
}

// IsDevelopment reports whether pretty console logging should be used.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	return LoadWith(ctx, envconfig.OsLookuper())
}

// LoadWith reads configuration through the given lookuper. Tests pass an
// envconfig.MapLookuper.
func LoadWith(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: lookuper,
	}); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if cfg.BcryptCost < 4 || cfg.BcryptCost > 31 {
		return nil, fmt.Errorf("load config: BCRYPT_COST must be between 4 and 31, got %d", cfg.BcryptCost)
	}
	if cfg.RateLimit.ForgotPasswordLimit <= 0 || cfg.RateLimit.ForgotPasswordWindow <= 0 {
		return nil, fmt.Errorf("load config: forgot password limit and window must be positive")
	}
	return &cfg, nil
}
