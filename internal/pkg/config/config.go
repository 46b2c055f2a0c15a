package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

// Config holds every runtime setting for the practice API. JWTSecret and
// EncryptionKey have no defaults on purpose: portal credentials and session
// tokens must never be protected by a baked-in demo value.
type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	JWTSecret     string `env:"JWT_SECRET,     required"`
	EncryptionKey string `env:"ENCRYPTION_KEY, required"`

	UploadDir string `env:"UPLOAD_DIR, default=uploads"`

	Admin AdminConfig
}

// AdminConfig seeds the default admin account created on an empty store.
type AdminConfig struct {
	Username string `env:"ADMIN_USERNAME, default=admin"`
	Password string `env:"ADMIN_PASSWORD, default=admin123"`
	Name     string `env:"ADMIN_NAME,     default=Tax Consultant Admin"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
