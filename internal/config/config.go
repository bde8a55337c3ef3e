package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Drivers de storage soportados.
const (
	DriverMemory   = "memory"
	DriverMongo    = "mongo"
	DriverPostgres = "postgres"
)

// Modos de verificación de identidad.
const (
	AuthDev    = "dev"    // sin verificación: X-Debug-User-Email
	AuthJWT    = "jwt"    // JWT local (HS256 / RS256)
	AuthRemote = "remote" // servicio de identidad externo
)

type Config struct {
	AppName        string
	Port           string
	RequestTimeout time.Duration
	Log            Log
	Storage        Storage
	Auth           Auth
	Stripe         Stripe
}

type Log struct {
	Level  string
	Format string
}

type Storage struct {
	Driver            string
	MongoURI          string
	MongoDB           string
	MongoTransactions bool
	PostgresDSN       string
}

type Auth struct {
	Mode string

	JWTSecret    string
	JWTPublicKey string
	JWTIssuer    string
	JWTAudience  string

	IdentityURL    string
	IdentityAPIKey string
}

type Stripe struct {
	SecretKey string
	Currency  string
}

// Load lee env vars (PORT, STORAGE_DRIVER, ...) y, si path no es vacío, un YAML
// con las mismas claves en minúscula. Las env vars pisan al archivo.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	if strings.TrimSpace(path) != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	cfg := fromViper(v)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app_name", "petify-api")
	v.SetDefault("port", "8080")
	v.SetDefault("request_timeout", "15s")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "text")

	v.SetDefault("storage_driver", DriverMemory)
	v.SetDefault("mongo_uri", "")
	v.SetDefault("mongo_db", "petifyDB")
	v.SetDefault("mongo_transactions", false)
	v.SetDefault("db_dsn", "")

	v.SetDefault("auth_mode", AuthDev)
	v.SetDefault("jwt_secret", "")
	v.SetDefault("jwt_public_key", "")
	v.SetDefault("jwt_issuer", "")
	v.SetDefault("jwt_audience", "")
	v.SetDefault("identity_url", "")
	v.SetDefault("identity_api_key", "")

	v.SetDefault("stripe_secret_key", "")
	v.SetDefault("stripe_currency", "usd")
}

func fromViper(v *viper.Viper) *Config {
	return &Config{
		AppName:        v.GetString("app_name"),
		Port:           strings.TrimSpace(v.GetString("port")),
		RequestTimeout: v.GetDuration("request_timeout"),
		Log: Log{
			Level:  v.GetString("log_level"),
			Format: v.GetString("log_format"),
		},
		Storage: Storage{
			Driver:            strings.ToLower(strings.TrimSpace(v.GetString("storage_driver"))),
			MongoURI:          v.GetString("mongo_uri"),
			MongoDB:           v.GetString("mongo_db"),
			MongoTransactions: v.GetBool("mongo_transactions"),
			PostgresDSN:       v.GetString("db_dsn"),
		},
		Auth: Auth{
			Mode:           strings.ToLower(strings.TrimSpace(v.GetString("auth_mode"))),
			JWTSecret:      v.GetString("jwt_secret"),
			JWTPublicKey:   v.GetString("jwt_public_key"),
			JWTIssuer:      v.GetString("jwt_issuer"),
			JWTAudience:    v.GetString("jwt_audience"),
			IdentityURL:    v.GetString("identity_url"),
			IdentityAPIKey: v.GetString("identity_api_key"),
		},
		Stripe: Stripe{
			SecretKey: v.GetString("stripe_secret_key"),
			Currency:  strings.ToLower(strings.TrimSpace(v.GetString("stripe_currency"))),
		},
	}
}

// Validate chequea combinaciones; falla al arrancar y no en el primer request.
func (c *Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("config: PORT is required")
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("config: REQUEST_TIMEOUT must be positive")
	}

	switch c.Storage.Driver {
	case DriverMemory:
	case DriverMongo:
		if c.Storage.MongoURI == "" {
			return fmt.Errorf("config: MONGO_URI is required for storage driver %q", c.Storage.Driver)
		}
	case DriverPostgres:
		if c.Storage.PostgresDSN == "" {
			return fmt.Errorf("config: DB_DSN is required for storage driver %q", c.Storage.Driver)
		}
	default:
		return fmt.Errorf("config: unknown STORAGE_DRIVER %q (memory|mongo|postgres)", c.Storage.Driver)
	}

	switch c.Auth.Mode {
	case AuthDev:
	case AuthJWT:
		if c.Auth.JWTSecret == "" && c.Auth.JWTPublicKey == "" {
			return fmt.Errorf("config: JWT_SECRET or JWT_PUBLIC_KEY is required for AUTH_MODE=jwt")
		}
	case AuthRemote:
		if c.Auth.IdentityURL == "" || c.Auth.IdentityAPIKey == "" {
			return fmt.Errorf("config: IDENTITY_URL and IDENTITY_API_KEY are required for AUTH_MODE=remote")
		}
	default:
		return fmt.Errorf("config: unknown AUTH_MODE %q (dev|jwt|remote)", c.Auth.Mode)
	}
	return nil
}

func (c *Config) Addr() string {
	if strings.HasPrefix(c.Port, ":") {
		return c.Port
	}
	return ":" + c.Port
}
