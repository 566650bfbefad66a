package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	AzureMaps AzureMapsConfig
	Log       LogConfig
}

type ServerConfig struct {
	Host         string
	Port         int
	Env          string
	AllowOrigins string
}

type DatabaseConfig struct {
	URL               string
	Host              string
	Port              int
	User              string
	Password          string
	DBName            string
	SSLMode           string
	MaxConns          int
	MaxIdleConns      int
	ConnMaxLifetime   time.Duration
	ConnMaxIdleTime   time.Duration
	QueryTimeout      time.Duration
	NeighborhoodTable string
}

type AzureMapsConfig struct {
	SubscriptionKey string
	BaseURL         string
	GeocodeVersion  string
	SearchVersion   string
	CoffeeCategory  int
	RequestTimeout  time.Duration
}

type LogConfig struct {
	Level string
}

func Load() (*Config, error) {
	return LoadFile(".env")
}

// LoadFile читает конфигурацию из env-файла и переменных окружения.
// Отсутствующий файл не считается ошибкой: окружение имеет приоритет.
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigFile(path)
	v.SetConfigType("env")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Host:         v.GetString("API_HOST"),
			Port:         v.GetInt("API_PORT"),
			Env:          v.GetString("API_ENV"),
			AllowOrigins: v.GetString("CORS_ALLOW_ORIGINS"),
		},
		Database: DatabaseConfig{
			URL:               v.GetString("DATABASE_URL"),
			Host:              v.GetString("DB_HOST"),
			Port:              v.GetInt("DB_PORT"),
			User:              v.GetString("DB_USER"),
			Password:          v.GetString("DB_PASSWORD"),
			DBName:            v.GetString("DB_NAME"),
			SSLMode:           v.GetString("DB_SSLMODE"),
			MaxConns:          v.GetInt("DB_MAX_CONNS"),
			MaxIdleConns:      v.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime:   time.Duration(v.GetInt("DB_CONN_MAX_LIFETIME")) * time.Second,
			ConnMaxIdleTime:   time.Duration(v.GetInt("DB_CONN_MAX_IDLE_TIME")) * time.Second,
			QueryTimeout:      time.Duration(v.GetInt("DB_QUERY_TIMEOUT")) * time.Second,
			NeighborhoodTable: v.GetString("NEIGHBORHOOD_TABLE"),
		},
		AzureMaps: AzureMapsConfig{
			SubscriptionKey: v.GetString("AZURE_MAPS_KEY"),
			BaseURL:         strings.TrimRight(v.GetString("AZURE_MAPS_BASE_URL"), "/"),
			GeocodeVersion:  v.GetString("AZURE_MAPS_GEOCODE_API_VERSION"),
			SearchVersion:   v.GetString("AZURE_MAPS_SEARCH_API_VERSION"),
			CoffeeCategory:  v.GetInt("AZURE_MAPS_COFFEE_CATEGORY"),
			RequestTimeout:  time.Duration(v.GetInt("AZURE_MAPS_REQUEST_TIMEOUT")) * time.Second,
		},
		Log: LogConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("API_HOST", "0.0.0.0")
	v.SetDefault("API_PORT", 3000)
	v.SetDefault("API_ENV", "development")
	v.SetDefault("CORS_ALLOW_ORIGINS", "http://localhost:3000")
	v.SetDefault("LOG_LEVEL", "info")

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)
	v.SetDefault("DB_CONN_MAX_LIFETIME", 300)
	v.SetDefault("DB_CONN_MAX_IDLE_TIME", 60)
	v.SetDefault("DB_QUERY_TIMEOUT", 5)
	v.SetDefault("NEIGHBORHOOD_TABLE", "public.boston_neighborhood_boundaries")

	v.SetDefault("AZURE_MAPS_BASE_URL", "https://atlas.microsoft.com")
	v.SetDefault("AZURE_MAPS_GEOCODE_API_VERSION", "2025-01-01")
	v.SetDefault("AZURE_MAPS_SEARCH_API_VERSION", "1.0")
	v.SetDefault("AZURE_MAPS_COFFEE_CATEGORY", 9376006)
	v.SetDefault("AZURE_MAPS_REQUEST_TIMEOUT", 10)
}

// Validate проверяет обязательные параметры перед стартом
func (c *Config) Validate() error {
	if c.AzureMaps.SubscriptionKey == "" {
		return errors.New("AZURE_MAPS_KEY is required")
	}
	if c.Database.MaxConns < 1 {
		return fmt.Errorf("DB_MAX_CONNS must be >= 1, got %d", c.Database.MaxConns)
	}
	if c.AzureMaps.RequestTimeout <= 0 {
		return fmt.Errorf("AZURE_MAPS_REQUEST_TIMEOUT must be positive")
	}
	if c.Database.NeighborhoodTable == "" {
		return errors.New("NEIGHBORHOOD_TABLE is required")
	}
	return nil
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// GetDatabaseDSN возвращает DATABASE_URL, если задан, иначе собирает DSN из DB_* полей
func (c *Config) GetDatabaseDSN() string {
	if c.Database.URL != "" {
		return c.Database.URL
	}
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.DBName,
		c.Database.SSLMode,
	)
}

// RedactedDatabaseTarget описывает БД для логов без учетных данных
func (c *Config) RedactedDatabaseTarget() string {
	if c.Database.URL != "" {
		u, err := url.Parse(c.Database.URL)
		if err != nil {
			return "unparseable DATABASE_URL"
		}
		return fmt.Sprintf("%s%s", u.Host, u.Path)
	}
	return fmt.Sprintf("%s:%d/%s", c.Database.Host, c.Database.Port, c.Database.DBName)
}
