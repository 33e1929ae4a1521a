package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	DefaultPlacesBaseURL = "https://places.googleapis.com/v1"
	defaultEnvFile       = ".env"
)

type Config struct {
	Server  ServerConfig
	Places  PlacesConfig
	Redis   RedisConfig
	Log     LogConfig
	Worker  WorkerConfig
	Metrics MetricsConfig
}

type ServerConfig struct {
	Host string
	Port int
	Env  string

	CORSAllowOrigins []string
}

// PlacesConfig - настройки внешнего провайдера мест
type PlacesConfig struct {
	APIKey       string
	BaseURL      string
	MediaBaseURL string

	ConnectTimeout time.Duration
	ReadTimeout    time.Duration
	RequestTimeout time.Duration

	// LocationAwareTextSearch attaches the caller's circle to language text searches
	// when both coordinates are supplied.
	LocationAwareTextSearch bool
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type LogConfig struct {
	Level string
}

type WorkerConfig struct {
	Enabled           bool
	ConsumerGroup     string
	BatchSize         int
	StreamReadTimeout time.Duration
	ShutdownTimeout   time.Duration
}

type MetricsConfig struct {
	Enabled bool
}

// Load читает конфигурацию из .env (если файл есть) и переменных окружения
func Load() (*Config, error) {
	return LoadFile(defaultEnvFile)
}

// LoadFile читает конфигурацию из указанного env-файла и переменных окружения.
// Отсутствующий файл не является ошибкой.
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("env")
	v.AutomaticEnv()

	setDefaults(v)

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			v.SetConfigFile(path)
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("failed to read config: %w", err)
			}
		} else if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to stat config file: %w", err)
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: v.GetString("API_HOST"),
			Port: v.GetInt("API_PORT"),
			Env:  v.GetString("API_ENV"),

			CORSAllowOrigins: splitList(v.GetString("CORS_ALLOW_ORIGINS")),
		},
		Places: PlacesConfig{
			APIKey:                  strings.TrimSpace(v.GetString("GOOGLE_PLACES_API_KEY")),
			BaseURL:                 strings.TrimRight(v.GetString("GOOGLE_PLACES_BASE_URL"), "/"),
			MediaBaseURL:            strings.TrimRight(v.GetString("GOOGLE_PLACES_MEDIA_BASE_URL"), "/"),
			ConnectTimeout:          time.Duration(v.GetInt("PLACES_CONNECT_TIMEOUT")) * time.Second,
			ReadTimeout:             time.Duration(v.GetInt("PLACES_READ_TIMEOUT")) * time.Second,
			RequestTimeout:          time.Duration(v.GetInt("PLACES_REQUEST_TIMEOUT")) * time.Second,
			LocationAwareTextSearch: v.GetBool("PLACES_LOCATION_AWARE_TEXT_SEARCH"),
		},
		Redis: RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetInt("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		Log: LogConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
		Worker: WorkerConfig{
			Enabled:           v.GetBool("WORKER_ENABLED"),
			ConsumerGroup:     v.GetString("WORKER_CONSUMER_GROUP"),
			BatchSize:         v.GetInt("WORKER_BATCH_SIZE"),
			StreamReadTimeout: time.Duration(v.GetInt("WORKER_STREAM_READ_TIMEOUT")) * time.Millisecond,
			ShutdownTimeout:   time.Duration(v.GetInt("WORKER_SHUTDOWN_TIMEOUT")) * time.Second,
		},
		Metrics: MetricsConfig{
			Enabled: v.GetBool("METRICS_ENABLED"),
		},
	}

	if cfg.Places.BaseURL == "" {
		cfg.Places.BaseURL = DefaultPlacesBaseURL
	}
	if cfg.Places.MediaBaseURL == "" {
		cfg.Places.MediaBaseURL = DefaultPlacesBaseURL
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("API_HOST", "0.0.0.0")
	v.SetDefault("API_PORT", 8080)
	v.SetDefault("API_ENV", "development")
	v.SetDefault("GOOGLE_PLACES_BASE_URL", DefaultPlacesBaseURL)
	v.SetDefault("GOOGLE_PLACES_MEDIA_BASE_URL", DefaultPlacesBaseURL)
	v.SetDefault("PLACES_CONNECT_TIMEOUT", 5)
	v.SetDefault("PLACES_READ_TIMEOUT", 10)
	v.SetDefault("PLACES_REQUEST_TIMEOUT", 15)
	v.SetDefault("PLACES_LOCATION_AWARE_TEXT_SEARCH", false)
	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("WORKER_CONSUMER_GROUP", "facility-search-workers")
	v.SetDefault("WORKER_BATCH_SIZE", 20)
	v.SetDefault("WORKER_STREAM_READ_TIMEOUT", 5000)
	v.SetDefault("WORKER_SHUTDOWN_TIMEOUT", 30)
	v.SetDefault("METRICS_ENABLED", true)
}

// Validate проверяет обязательные параметры
func (c *Config) Validate() error {
	if c.Places.APIKey == "" {
		return fmt.Errorf("GOOGLE_PLACES_API_KEY is required")
	}
	if c.Places.ConnectTimeout <= 0 || c.Places.ReadTimeout <= 0 || c.Places.RequestTimeout <= 0 {
		return fmt.Errorf("places timeouts must be positive")
	}
	if c.Worker.BatchSize <= 0 {
		return fmt.Errorf("WORKER_BATCH_SIZE must be positive, got %d", c.Worker.BatchSize)
	}
	return nil
}

// splitList разбирает список через запятую, пропуская пустые элементы
func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetRedisAddr() string {
	return c.Redis.Addr()
}

// Addr - адрес Redis в формате host:port
func (r *RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}
