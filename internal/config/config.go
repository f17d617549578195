package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	App      AppConfig
	Backend  BackendConfig
	Auth     AuthConfig
	Weather  WeatherConfig
	Store    StoreConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Outfit   OutfitConfig
}

type AppConfig struct {
	AppName     string
	Environment string
	HTTPPort    string
	LogLevel    string
}

type BackendConfig struct {
	BaseURL string
	Timeout time.Duration
}

type AuthConfig struct {
	JWTSecret  string
	ConfirmTTL time.Duration
}

type WeatherConfig struct {
	BaseURL    string
	Timeout    time.Duration
	DefaultLat *float64
	DefaultLon *float64
}

const (
	StoreEngineNone     = "none"
	StoreEnginePostgres = "postgres"
	StoreEngineSQLite   = "sqlite"
)

type StoreConfig struct {
	Engine     string
	SQLitePath string
}

type DatabaseConfig struct {
	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string
	DBSSLMode  string

	ConnectTimeout        time.Duration
	PoolMaxConns          int32
	PoolMinConns          int32
	PoolMaxConnLifetime   time.Duration
	PoolMaxConnIdleTime   time.Duration
	PoolHealthCheckPeriod time.Duration
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	TTL      time.Duration
}

type OutfitConfig struct {
	DailyCacheSize   int
	RatingDebounce   time.Duration
	FeedbackDebounce time.Duration
}

const (
	DefaultBackendURL = "http://localhost:8000"
	DefaultWeatherURL = "https://api.open-meteo.com"
)

var (
	errMissingRequiredEnv = errors.New("missing required environment variables")
	errInvalidEnv         = errors.New("invalid environment variables")
)

func Load() (Config, error) {
	cfg := Config{}

	var missing []string
	var invalid []string
	req := func(key string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}
	opt := func(key string) string {
		return strings.TrimSpace(os.Getenv(key))
	}
	optDefault := func(key, def string) string {
		if v := opt(key); v != "" {
			return v
		}
		return def
	}
	optDuration := func(key string, def time.Duration) time.Duration {
		v := opt(key)
		if v == "" {
			return def
		}
		d, err := time.ParseDuration(v)
		if err != nil || d < 0 {
			invalid = append(invalid, key)
			return def
		}
		return d
	}
	optInt := func(key string, def int) int {
		v := opt(key)
		if v == "" {
			return def
		}
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			invalid = append(invalid, key)
			return def
		}
		return n
	}
	optFloat := func(key string) *float64 {
		v := opt(key)
		if v == "" {
			return nil
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			invalid = append(invalid, key)
			return nil
		}
		return &f
	}

	cfg.App = AppConfig{
		AppName:     req("APP_NAME"),
		Environment: req("APP_ENV"),
		HTTPPort:    req("HTTP_PORT"),
		LogLevel:    opt("LOG_LEVEL"),
	}

	cfg.Backend = BackendConfig{
		BaseURL: strings.TrimRight(optDefault("BACKEND_URL", DefaultBackendURL), "/"),
		Timeout: optDuration("BACKEND_TIMEOUT", 10*time.Second),
	}

	cfg.Auth = AuthConfig{
		JWTSecret:  opt("IDP_JWT_SECRET"),
		ConfirmTTL: optDuration("AUTH_CONFIRM_TTL", time.Minute),
	}

	cfg.Weather = WeatherConfig{
		BaseURL:    strings.TrimRight(optDefault("WEATHER_URL", DefaultWeatherURL), "/"),
		Timeout:    optDuration("WEATHER_TIMEOUT", 5*time.Second),
		DefaultLat: optFloat("DEFAULT_LAT"),
		DefaultLon: optFloat("DEFAULT_LON"),
	}

	cfg.Store = StoreConfig{
		Engine:     strings.ToLower(optDefault("PROFILE_STORE", StoreEngineNone)),
		SQLitePath: optDefault("SQLITE_PATH", "./data/profiles.db"),
	}
	switch cfg.Store.Engine {
	case StoreEngineNone, StoreEnginePostgres, StoreEngineSQLite:
	default:
		invalid = append(invalid, "PROFILE_STORE")
	}

	cfg.Database = DatabaseConfig{
		DBHost:              opt("DB_HOST"),
		DBPort:              opt("DB_PORT"),
		DBName:              opt("DB_NAME"),
		DBUser:              opt("DB_USER"),
		DBPassword:          opt("DB_PASSWORD"),
		DBSSLMode:           optDefault("DB_SSL_MODE", "disable"),
		ConnectTimeout:      optDuration("DB_CONNECT_TIMEOUT", 5*time.Second),
		PoolMaxConns:        int32(optInt("DB_POOL_MAX_CONNS", 0)),
		PoolMinConns:        int32(optInt("DB_POOL_MIN_CONNS", 0)),
		PoolMaxConnLifetime: optDuration("DB_POOL_MAX_CONN_LIFETIME", 0),
		PoolMaxConnIdleTime: optDuration("DB_POOL_MAX_CONN_IDLE_TIME", 0),
	}
	if cfg.Store.Engine == StoreEnginePostgres {
		for _, k := range []string{"DB_HOST", "DB_PORT", "DB_NAME", "DB_USER"} {
			req(k)
		}
	}

	cfg.Redis = RedisConfig{
		Host:     opt("REDIS_HOST"),
		Port:     optDefault("REDIS_PORT", "6379"),
		Password: opt("REDIS_PASSWORD"),
		TTL:      time.Duration(optInt("REDIS_TTL", 600)) * time.Second,
	}

	cfg.Outfit = OutfitConfig{
		DailyCacheSize:   optInt("DAILY_CACHE_SIZE", 1024),
		RatingDebounce:   optDuration("RATING_DEBOUNCE", 300*time.Millisecond),
		FeedbackDebounce: optDuration("FEEDBACK_DEBOUNCE", time.Second),
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}
	if len(invalid) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errInvalidEnv, strings.Join(invalid, ", "))
	}

	return cfg, nil
}
