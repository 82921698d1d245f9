package internal

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Server        ServerConfig        `mapstructure:"http_server"`
	Database      DatabaseConfig      `mapstructure:"database"`
	Payment       PaymentConfig       `mapstructure:"payment"`
	Email         EmailConfig         `mapstructure:"email"`
	Observability ObservabilityConfig `mapstructure:"observability"`
}

type ServerConfig struct {
	Port              int           `mapstructure:"port"`
	BaseURL           string        `mapstructure:"base_url"`
	FrontendURL       string        `mapstructure:"frontend_url"`
	AllowedOrigins    string        `mapstructure:"allowed_origins"`
	ReadHeaderTimeout time.Duration `mapstructure:"read_header_timeout"`
	ReadTimeout       time.Duration `mapstructure:"read_timeout"`
	IdleTimeout       time.Duration `mapstructure:"idle_timeout"`
	WriteTimeout      time.Duration `mapstructure:"write_timeout"`
}

type DatabaseConfig struct {
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time"`
	Source          string        `mapstructure:"source"`
}

// PaymentConfig carries the PayU credential pairs for both deployment
// modes. Which pair is active is decided once at startup via Mode and
// resolved through Gateway(), never re-read from ambient state.
type PaymentConfig struct {
	Mode           string        `mapstructure:"mode"`
	ProductionKey  string        `mapstructure:"production_key"`
	ProductionSalt string        `mapstructure:"production_salt"`
	TestKey        string        `mapstructure:"test_key"`
	TestSalt       string        `mapstructure:"test_salt"`
	ProductionURL  string        `mapstructure:"production_url"`
	TestURL        string        `mapstructure:"test_url"`
	TxnIDAttempts  int           `mapstructure:"txnid_attempts"`
	StoreTimeout   time.Duration `mapstructure:"store_timeout"`
}

const (
	PaymentModeProduction = "production"
	PaymentModeTest       = "test"

	defaultProductionGatewayURL = "https://secure.payu.in/_payment"
	defaultTestGatewayURL       = "https://test.payu.in/_payment"
)

// GatewayCredentials is the resolved credential set for the active mode.
type GatewayCredentials struct {
	Key      string
	Salt     string
	Endpoint string
}

func (c *PaymentConfig) Gateway() GatewayCredentials {
	if c.Mode == PaymentModeProduction {
		endpoint := c.ProductionURL
		if endpoint == "" {
			endpoint = defaultProductionGatewayURL
		}
		return GatewayCredentials{Key: c.ProductionKey, Salt: c.ProductionSalt, Endpoint: endpoint}
	}
	endpoint := c.TestURL
	if endpoint == "" {
		endpoint = defaultTestGatewayURL
	}
	return GatewayCredentials{Key: c.TestKey, Salt: c.TestSalt, Endpoint: endpoint}
}

type EmailConfig struct {
	Host       string `mapstructure:"host"`
	Port       int    `mapstructure:"port"`
	Username   string `mapstructure:"username"`
	Password   string `mapstructure:"password"`
	From       string `mapstructure:"from"`
	AdminEmail string `mapstructure:"admin_email"`
}

func (c *EmailConfig) Enabled() bool {
	return c.Host != "" && c.Username != ""
}

type ObservabilityConfig struct {
	Metrics MetricsConfig `mapstructure:"metrics"`
	Logging LoggingConfig `mapstructure:"logging"`
}

type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// ----------------- ENV LOADING -----------------

// LoadConfigFromEnv builds the configuration from environment variables,
// used for containerized deployments where no config file is mounted.
func LoadConfigFromEnv(getenv func(string) string) *Config {
	get := func(key, fallback string) string {
		if v := getenv(key); v != "" {
			return v
		}
		return fallback
	}
	getInt := func(key string, fallback int) int {
		if v := getenv(key); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
		return fallback
	}

	return &Config{
		Server: ServerConfig{
			Port:              getInt("PORT", 5000),
			BaseURL:           get("BASE_URL", "http://localhost:5000"),
			FrontendURL:       get("FRONTEND_URL", "https://tradingwalla.com"),
			AllowedOrigins:    get("ALLOWED_ORIGINS", ""),
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      15 * time.Second,
			IdleTimeout:       60 * time.Second,
		},
		Database: DatabaseConfig{
			Source:          get("DATABASE_URL", ""),
			MaxOpenConns:    getInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:    getInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: 30 * time.Minute,
			ConnMaxIdleTime: 5 * time.Minute,
		},
		Payment: PaymentConfig{
			Mode:           get("PAYU_MODE", PaymentModeTest),
			ProductionKey:  getenv("PAYU_PRODUCTION_KEY"),
			ProductionSalt: getenv("PAYU_PRODUCTION_SALT"),
			TestKey:        getenv("PAYU_TEST_KEY"),
			TestSalt:       getenv("PAYU_TEST_SALT"),
			TxnIDAttempts:  getInt("PAYU_TXNID_ATTEMPTS", 3),
			StoreTimeout:   5 * time.Second,
		},
		Email: EmailConfig{
			Host:       get("EMAIL_HOST", "smtp.gmail.com"),
			Port:       getInt("EMAIL_PORT", 587),
			Username:   getenv("EMAIL_USER"),
			Password:   getenv("EMAIL_PASS"),
			From:       get("EMAIL_FROM", getenv("EMAIL_USER")),
			AdminEmail: getenv("ADMIN_EMAIL"),
		},
		Observability: ObservabilityConfig{
			Metrics: MetricsConfig{
				Enabled: get("METRICS_ENABLED", "false") == "true",
				Path:    get("METRICS_PATH", "/metrics"),
			},
			Logging: LoggingConfig{
				Level:  get("LOG_LEVEL", "info"),
				Format: get("LOG_FORMAT", "json"),
			},
		},
	}
}

// ----------------- VALIDATION -----------------

func (c *Config) Validate() error {
	var errs []string

	if err := c.Server.Validate(); err != nil {
		errs = append(errs, fmt.Sprintf("server config: %v", err))
	}

	if err := c.Database.Validate(); err != nil {
		errs = append(errs, fmt.Sprintf("database config: %v", err))
	}

	if err := c.Payment.Validate(); err != nil {
		errs = append(errs, fmt.Sprintf("payment config: %v", err))
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}

	return nil
}

func (c *ServerConfig) Validate() error {
	if c.AllowedOrigins != "" {
		origins := strings.Split(c.AllowedOrigins, ",")
		for _, origin := range origins {
			origin = strings.TrimSpace(origin)
			if origin == "*" {
				continue
			}
			if _, err := url.Parse(origin); err != nil {
				return fmt.Errorf("invalid allowed origin %s: %w", origin, err)
			}
		}
	}
	if c.FrontendURL == "" {
		return errors.New("frontend_url is required")
	}
	if c.ReadTimeout < c.ReadHeaderTimeout {
		return errors.New("read_timeout must be >= read_header_timeout")
	}
	return nil
}

func (c *DatabaseConfig) Validate() error {
	if c.Source == "" {
		return errors.New("source is required")
	}
	if c.MaxIdleConns > c.MaxOpenConns {
		return errors.New("max_idle_conns cannot be greater than max_open_conns")
	}
	return nil
}

func (c *PaymentConfig) Validate() error {
	switch c.Mode {
	case PaymentModeProduction:
		if c.ProductionKey == "" || c.ProductionSalt == "" {
			return errors.New("production_key and production_salt are required in production mode")
		}
	case PaymentModeTest, "":
		if c.TestKey == "" || c.TestSalt == "" {
			return errors.New("test_key and test_salt are required in test mode")
		}
	default:
		return fmt.Errorf("unknown payment mode %q", c.Mode)
	}
	return nil
}
