package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Drivers de almacenamiento soportados.
const (
	DriverMemory   = "memory"
	DriverBolt     = "bolt"
	DriverRedis    = "redis"
	DriverPostgres = "postgres"
)

// Config agrupa toda la configuración de arranque.
type Config struct {
	AppName string
	HTTP    HTTPConfig
	Storage StorageConfig
	Logger  LoggerConfig
	Pets    PetsConfig

	ShutdownTimeout time.Duration
}

type HTTPConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type StorageConfig struct {
	Driver string

	BoltPath string

	RedisURL      string
	RedisPassword string
	RedisDB       int
	RedisPrefix   string

	DatabaseDSN string
}

type LoggerConfig struct {
	Level  string
	Format string
}

type PetsConfig struct {
	// CascadeDelete: borrar una mascota borra sus tareas.
	CascadeDelete bool
}

// Load lee variables de entorno (opcionalmente desde .env) con defaults para dev.
func Load() (*Config, error) {
	_ = godotenv.Load(".env")

	cfg := &Config{
		AppName: getString("APP_NAME", "petplus"),
		HTTP: HTTPConfig{
			Port:         getString("PORT", "8080"),
			ReadTimeout:  getDuration("HTTP_READ_TIMEOUT", 5*time.Second),
			WriteTimeout: getDuration("HTTP_WRITE_TIMEOUT", 10*time.Second),
		},
		Storage: StorageConfig{
			Driver:        strings.ToLower(getString("STORAGE_DRIVER", DriverMemory)),
			BoltPath:      getString("BOLT_PATH", "./data/petplus.db"),
			RedisURL:      getString("REDIS_URL", "redis://localhost:6379/0"),
			RedisPassword: os.Getenv("REDIS_PASSWORD"),
			RedisDB:       getInt("REDIS_DB", 0),
			RedisPrefix:   getString("REDIS_PREFIX", "petplus:"),
			DatabaseDSN:   os.Getenv("DB_DSN"),
		},
		Logger: LoggerConfig{
			Level:  getString("LOG_LEVEL", "info"),
			Format: getString("LOG_FORMAT", "json"),
		},
		Pets: PetsConfig{
			CascadeDelete: getBool("PET_DELETE_CASCADE", true),
		},
		ShutdownTimeout: getDuration("SHUTDOWN_TIMEOUT", 15*time.Second),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Storage.Driver {
	case DriverMemory, DriverBolt, DriverRedis:
	case DriverPostgres:
		if strings.TrimSpace(c.Storage.DatabaseDSN) == "" {
			return fmt.Errorf("config: DB_DSN is required for STORAGE_DRIVER=%s", DriverPostgres)
		}
	default:
		return fmt.Errorf("config: unknown STORAGE_DRIVER %q", c.Storage.Driver)
	}
	return nil
}

// Address devuelve la dirección de escucha HTTP.
func (c *Config) Address() string {
	return ":" + c.HTTP.Port
}

func getString(key, fallback string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			return parsed
		}
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	if val := os.Getenv(key); val != "" {
		if parsed, err := strconv.ParseBool(val); err == nil {
			return parsed
		}
	}
	return fallback
}

// getDuration acepta "5s" o segundos enteros ("5").
func getDuration(key string, fallback time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if parsed, err := time.ParseDuration(val); err == nil {
			return parsed
		}
		if seconds, err := strconv.Atoi(val); err == nil {
			return time.Duration(seconds) * time.Second
		}
	}
	return fallback
}
