package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/Immortalpie-11/VJK-Mahal-Booking/internal/domain"
)

// Config корневая конфигурация сервиса
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Auth     AuthConfig     `toml:"auth"`
	Venue    VenueConfig    `toml:"venue"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int      `toml:"http_port"`
	ReadTimeout     int      `toml:"read_timeout"`
	WriteTimeout    int      `toml:"write_timeout"`
	IdleTimeout     int      `toml:"idle_timeout"`
	ShutdownTimeout int      `toml:"shutdown_timeout"`
	AllowedOrigins  []string `toml:"allowed_origins"`
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN собирает строку подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки Prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

// AuthConfig настройки PIN-доступа к управлению
type AuthConfig struct {
	PIN             string  `toml:"pin"`
	TokenSecret     string  `toml:"token_secret"`
	TokenTTLMinutes int     `toml:"token_ttl_minutes"`
	PinRateLimit    float64 `toml:"pin_rate_limit"`
	PinRateBurst    int     `toml:"pin_rate_burst"`
}

// VenueConfig лимиты площадки: вместимость дня и словарь слотов
type VenueConfig struct {
	Name            string   `toml:"name"`
	MaxEventsPerDay int      `toml:"max_events_per_day"`
	Slots           []string `toml:"slots"`
}

// Load читает конфигурацию из TOML файла и применяет переопределения
// из окружения для секретов (ADMIN_PIN, TOKEN_SECRET, DB_PASSWORD).
func Load(path string) (*Config, error) {
	cfg := defaultConfig()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	applyEnvOverrides(cfg)

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 15,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			ServiceName: "vjk-mahal-booking",
			Path:        "/metrics",
		},
		Auth: AuthConfig{
			TokenTTLMinutes: 60,
			PinRateLimit:    1,
			PinRateBurst:    5,
		},
		Venue: VenueConfig{
			Name:            "VJK Mahal",
			MaxEventsPerDay: domain.DefaultMaxEventsPerDay,
		},
	}
}

// Секреты в TOML допустимы только для локальной разработки,
// в остальных окружениях они приходят из переменных окружения.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("ADMIN_PIN"); v != "" {
		cfg.Auth.PIN = v
	}
	if v := os.Getenv("TOKEN_SECRET"); v != "" {
		cfg.Auth.TokenSecret = v
	}
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		cfg.Database.Password = v
	}
}

func (c *Config) validate() error {
	if c.Auth.PIN == "" {
		return fmt.Errorf("config: auth.pin is required (or ADMIN_PIN env)")
	}
	if c.Auth.TokenSecret == "" {
		return fmt.Errorf("config: auth.token_secret is required (or TOKEN_SECRET env)")
	}
	if c.Venue.MaxEventsPerDay < domain.MinEventsPerDay || c.Venue.MaxEventsPerDay > domain.MaxEventsPerDay {
		return fmt.Errorf("config: venue.max_events_per_day must be between %d and %d",
			domain.MinEventsPerDay, domain.MaxEventsPerDay)
	}
	return nil
}
