// Package config loads application configuration from the environment, with
// an optional .env file for local development.
package config

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port       string        `env:"PORT,        default=8080"`
	Env        string        `env:"ENV,         default=development"`
	JWTSecret  string        `env:"JWT_SECRET"`
	TokenTTL   time.Duration `env:"TOKEN_TTL,   default=24h"`
	LogLevel   string        `env:"LOG_LEVEL,   default=info"`
	CORSOrigin string        `env:"CORS_ORIGIN, default=http://localhost:3000"`

	Mongo MongoConfig
	Redis RedisConfig
	S3    S3Config
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=directory"`
}

type RedisConfig struct {
	// Addr left empty disables the listing cache.
	Addr string `env:"REDIS_ADDR"`
	DB   int    `env:"REDIS_DB, default=0"`
}

type S3Config struct {
	// Endpoint left empty disables logo storage. Point it at a MinIO server
	// or leave the default AWS endpoint resolution by setting only Region.
	Endpoint  string `env:"S3_ENDPOINT"`
	Region    string `env:"S3_REGION,     default=us-east-1"`
	AccessKey string `env:"S3_ACCESS_KEY"`
	SecretKey string `env:"S3_SECRET_KEY"`
	Bucket    string `env:"S3_BUCKET,     default=logos"`
	PublicURL string `env:"S3_PUBLIC_URL, default=http://localhost:9000"`
}

// Load reads configuration from environment variables using go-envconfig. A
// .env file in the working directory is merged in first when present.
func Load() *Config {
	if _, err := os.Stat(".env"); err == nil {
		_ = godotenv.Load()
	}

	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}

// StorageEnabled reports whether a logo store should be constructed.
func (c *Config) StorageEnabled() bool {
	return c.S3.Endpoint != "" && c.S3.AccessKey != ""
}

// CacheEnabled reports whether the Redis listing cache should be constructed.
func (c *Config) CacheEnabled() bool {
	return c.Redis.Addr != ""
}
