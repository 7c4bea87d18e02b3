package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,     default=8080"`
	Env      string `env:"ENV,      default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	JWTSecret string        `env:"JWT_SECRET"`
	TokenTTL  time.Duration `env:"TOKEN_TTL, default=24h"`

	Directory DirectoryConfig
	Session   SessionConfig
	Mongo     MongoConfig
	Redis     RedisConfig
}

type DirectoryConfig struct {
	// Backend selects the credential directory implementation: "http"
	// fetches the JSON fixture, "mongo" reads the role collections.
	Backend string        `env:"DIRECTORY_BACKEND, default=http"`
	URL     string        `env:"DIRECTORY_URL,     default=http://localhost:8081/users.json"`
	Timeout time.Duration `env:"DIRECTORY_TIMEOUT, default=10s"`
}

type SessionConfig struct {
	// Key is the single slot the active session is persisted under.
	Key string        `env:"SESSION_KEY, default=portal:session"`
	TTL time.Duration `env:"SESSION_TTL, default=0"` // 0 = no expiry
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=carelink_portal"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
