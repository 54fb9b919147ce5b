package config

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// EnvConfigPath переменная окружения, переопределяющая путь к конфигу
const EnvConfigPath = "BOOKING_CONFIG"

// DefaultPath путь к конфигу по умолчанию
const DefaultPath = "config.toml"

const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
)

// ErrInvalidConfig возвращается при некорректных значениях конфигурации
var ErrInvalidConfig = errors.New("config: invalid configuration")

type Config struct {
	Server    Server    `toml:"server"`
	Database  Database  `toml:"database"`
	Storage   Storage   `toml:"storage"`
	Redis     Redis     `toml:"redis"`
	Booking   Booking   `toml:"booking"`
	Session   Session   `toml:"session"`
	RateLimit RateLimit `toml:"rate_limit"`
	Logs      Logs      `toml:"logs"`
	Metrics   Metrics   `toml:"metrics"`
}

type Server struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"` // секунды
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

type Database struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN строка подключения для lib/pq
func (d Database) DSN() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(d.User, d.Password),
		Host:   fmt.Sprintf("%s:%d", d.Host, d.Port),
		Path:   d.DBName,
	}
	q := url.Values{}
	q.Set("sslmode", d.SSLMode)
	u.RawQuery = q.Encode()
	return u.String()
}

type Storage struct {
	// Driver memory или postgres
	Driver string `toml:"driver"`
	// SeedDemo заполняет хранилище в памяти демо-резервами
	SeedDemo bool `toml:"seed_demo"`
}

type Redis struct {
	Enabled  bool   `toml:"enabled"`
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
	TTL      int    `toml:"ttl"` // секунды
}

type Booking struct {
	// Timezone часовой пояс, в котором считаются "сегодня" и текущий час
	Timezone string `toml:"timezone"`
	// PaymentDelayMs задержка имитации платежа
	PaymentDelayMs int `toml:"payment_delay_ms"`
}

// Location загружает часовой пояс бизнеса
func (b Booking) Location() (*time.Location, error) {
	return time.LoadLocation(b.Timezone)
}

// PaymentDelay задержка имитации платежа
func (b Booking) PaymentDelay() time.Duration {
	return time.Duration(b.PaymentDelayMs) * time.Millisecond
}

type Session struct {
	// Secret ключ подписи cookie (не короче 32 байт)
	Secret string `toml:"secret"`
	Name   string `toml:"name"`
	Secure bool   `toml:"secure"`
}

type RateLimit struct {
	Enabled   bool `toml:"enabled"`
	PerMinute int  `toml:"per_minute"`
	Burst     int  `toml:"burst"`

	// TrustedProxies IP или CIDR прокси, чьим X-Forwarded-For можно верить
	TrustedProxies []string `toml:"trusted_proxies"`
}

type Logs struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

type Metrics struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// Default конфигурация по умолчанию: хранилище в памяти, без Redis
func Default() *Config {
	return &Config{
		Server: Server{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Database: Database{
			Host:            "localhost",
			Port:            5432,
			User:            "postgres",
			DBName:          "alejandrums",
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Storage: Storage{
			Driver:   DriverMemory,
			SeedDemo: true,
		},
		Redis: Redis{
			Addr: "localhost:6379",
			TTL:  300,
		},
		Booking: Booking{
			Timezone:       "America/Santiago",
			PaymentDelayMs: 1500,
		},
		Session: Session{
			Name: "alejandrums_session",
		},
		RateLimit: RateLimit{
			Enabled:   true,
			PerMinute: 20,
			Burst:     5,
		},
		Logs: Logs{
			Level: "info",
		},
		Metrics: Metrics{
			Enabled:     true,
			Path:        "/metrics",
			ServiceName: "alejandrums",
		},
	}
}

// Load читает конфиг из файла поверх значений по умолчанию и валидирует его
// Если задана переменная BOOKING_CONFIG, путь берётся из неё
func Load(path string) (*Config, error) {
	if env := strings.TrimSpace(os.Getenv(EnvConfigPath)); env != "" {
		path = env
	}

	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate проверяет значения конфигурации
func (c *Config) Validate() error {
	var problems []string

	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		problems = append(problems, fmt.Sprintf("server.http_port out of range: %d", c.Server.HTTPPort))
	}

	switch c.Storage.Driver {
	case DriverMemory:
	case DriverPostgres:
		if c.Database.Host == "" || c.Database.DBName == "" {
			problems = append(problems, "database.host and database.dbname are required for postgres storage")
		}
	default:
		problems = append(problems, fmt.Sprintf("storage.driver must be %q or %q, got %q", DriverMemory, DriverPostgres, c.Storage.Driver))
	}

	if c.Redis.Enabled && c.Redis.Addr == "" {
		problems = append(problems, "redis.addr is required when redis is enabled")
	}

	if _, err := c.Booking.Location(); err != nil {
		problems = append(problems, fmt.Sprintf("booking.timezone: %v", err))
	}
	if c.Booking.PaymentDelayMs < 0 {
		problems = append(problems, "booking.payment_delay_ms must not be negative")
	}

	if len(c.Session.Secret) < 32 {
		problems = append(problems, "session.secret must be at least 32 bytes")
	}

	if c.RateLimit.Enabled && (c.RateLimit.PerMinute <= 0 || c.RateLimit.Burst <= 0) {
		problems = append(problems, "rate_limit.per_minute and rate_limit.burst must be positive")
	}
	for _, proxy := range c.RateLimit.TrustedProxies {
		if !validProxy(proxy) {
			problems = append(problems, fmt.Sprintf("rate_limit.trusted_proxies: invalid address %q", proxy))
		}
	}

	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		problems = append(problems, "metrics.path must start with /")
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}

func validProxy(s string) bool {
	s = strings.TrimSpace(s)
	if strings.Contains(s, "/") {
		_, _, err := net.ParseCIDR(s)
		return err == nil
	}
	return net.ParseIP(s) != nil
}
