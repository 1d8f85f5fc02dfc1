package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

// Config is the process-wide configuration, read once at startup and handed
// to components explicitly. There is no hot reload.
type Config struct {
	Port     string `env:"PORT,     default=8080"`
	Env      string `env:"ENV,      default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// JWTSecret signs access tokens. The fallback default is insecure;
	// set JWT_SECRET in any real environment.
	JWTSecret string `env:"JWT_SECRET, default=your-secret-key-here"`

	// TokenTTLMinutes is the user token lifetime. Admin tokens last twice
	// as long.
	TokenTTLMinutes int `env:"TOKEN_TTL_MINUTES, default=30"`

	Mongo MongoConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=techbridge"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
