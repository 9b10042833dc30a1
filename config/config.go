package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	App         AppConfig
	Server      ServerConfig
	Database    DatabaseConfig
	JWT         JWTConfig
	Storage     StorageConfig
	GoogleOAuth GoogleOAuthConfig
}

type AppConfig struct {
	Name        string `env:"APP_NAME" envDefault:"vaquinha"`
	Environment string `env:"APP_ENV" envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
}

type ServerConfig struct {
	Port string `env:"SERVER_PORT" envDefault:"8080"`
}

type DatabaseConfig struct {
	Host            string        `env:"DB_HOST" envDefault:"localhost"`
	Port            int           `env:"DB_PORT" envDefault:"5432"`
	User            string        `env:"DB_USER" envDefault:"postgres"`
	Password        string        `env:"DB_PASSWORD" envDefault:"postgres"`
	DBName          string        `env:"DB_NAME" envDefault:"vaquinha"`
	SSLMode         string        `env:"DB_SSLMODE" envDefault:"disable"`
	MaxOpenConns    int           `env:"DB_MAX_OPEN_CONNS" envDefault:"25"`
	MaxIdleConns    int           `env:"DB_MAX_IDLE_CONNS" envDefault:"5"`
	ConnMaxLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME" envDefault:"30m"`
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

type JWTConfig struct {
	Secret     string        `env:"JWT_SECRET"`
	Expiration time.Duration `env:"JWT_EXPIRATION" envDefault:"24h"`
	Issuer     string        `env:"JWT_ISSUER" envDefault:"vaquinha"`
}

// StorageConfig aponta para um bucket S3-compatível (MinIO, R2) onde as
// imagens de campanha são guardadas.
type StorageConfig struct {
	Endpoint  string `env:"STORAGE_ENDPOINT" envDefault:"localhost:9000"`
	AccessKey string `env:"STORAGE_ACCESS_KEY"`
	SecretKey string `env:"STORAGE_SECRET_KEY"`
	Bucket    string `env:"STORAGE_BUCKET" envDefault:"campaigns"`
	UseSSL    bool   `env:"STORAGE_USE_SSL" envDefault:"false"`
	Region    string `env:"STORAGE_REGION" envDefault:"us-east-1"`
	PublicURL string `env:"STORAGE_PUBLIC_URL"`
}

type GoogleOAuthConfig struct {
	Enabled      bool   `env:"GOOGLE_OAUTH_ENABLED" envDefault:"false"`
	ClientID     string `env:"GOOGLE_OAUTH_CLIENT_ID"`
	ClientSecret string `env:"GOOGLE_OAUTH_CLIENT_SECRET"`
	RedirectURL  string `env:"GOOGLE_OAUTH_REDIRECT_URL"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("erro ao carregar configuração: %w", err)
	}
	return cfg, nil
}
