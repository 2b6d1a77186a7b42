package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

type Config struct {
	App   AppConfig
	JWT   JWTConfig
	Admin AdminConfig
	CORS  CORSConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"AMAKHA_APP_ENV" default:"dev"`
	Port         string `envconfig:"AMAKHA_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"AMAKHA_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"AMAKHA_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type JWTConfig struct {
	Secret            string `envconfig:"AMAKHA_JWT_SECRET" required:"true"`
	Issuer            string `envconfig:"AMAKHA_JWT_ISSUER" default:"amakha-storefront"`
	ExpirationMinutes int    `envconfig:"AMAKHA_JWT_EXPIRATION_MINUTES" default:"60"`
}

// AccessTokenTTL returns the access token lifetime configured in minutes.
func (j JWTConfig) AccessTokenTTL() time.Duration {
	if j.ExpirationMinutes <= 0 {
		return 0
	}
	return time.Duration(j.ExpirationMinutes) * time.Minute
}

// AdminConfig carries the admin panel credential. The default pair mirrors the
// demo storefront; the verifier only ever sees an Argon2id hash of Password.
type AdminConfig struct {
	Username string `envconfig:"AMAKHA_ADMIN_USERNAME" default:"admin"`
	Password string `envconfig:"AMAKHA_ADMIN_PASSWORD" default:"admin123"`
	Name     string `envconfig:"AMAKHA_ADMIN_DISPLAY_NAME" default:"Administrator"`
	Email    string `envconfig:"AMAKHA_ADMIN_EMAIL" default:"admin@amakha.com"`
}

type CORSConfig struct {
	AllowedOrigins []string `envconfig:"AMAKHA_CORS_ORIGINS" default:"http://localhost:3000,http://localhost:5173"`
}
