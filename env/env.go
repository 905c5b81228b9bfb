package env

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Env struct {
	App       AppConfig
	Server    ServerConfig
	MongoDB   MongoDBConfig
	JWT       JWTConfig
	Dashboard DashboardConfig
	Redis     RedisConfig
	Seed      SeedConfig
}

type AppConfig struct {
	Environment string
	LogsPath    string
}

type ServerConfig struct {
	Port int
}

type MongoDBConfig struct {
	URI string
	DB  string
}

type JWTConfig struct {
	Secret     string
	Expiration time.Duration
}

type DashboardConfig struct {
	Port          int
	APIBaseURL    string
	APITimeout    time.Duration
	AdminUsername string
	DefaultLocale string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

// SeedConfig is the admin account the API creates on startup when both
// email and password are set.
type SeedConfig struct {
	Email    string
	Password string
}

func (s SeedConfig) Enabled() bool {
	return s.Email != "" && s.Password != ""
}

func (e Env) IsProduction() bool {
	return e.App.Environment == "production"
}

// Load reads .env when present and builds the configuration from the process
// environment, using defaults for unset keys.
func Load(files ...string) (*Env, error) {

	// .env is optional
	_ = godotenv.Load(files...)

	env := Env{
		App: AppConfig{
			Environment: getEnv("APP_ENV", "development"),
			LogsPath:    getEnv("LOGS_PATH", ""),
		},
		Server: ServerConfig{
			Port: getEnvAsInt("SERVER_PORT", 3000),
		},
		MongoDB: MongoDBConfig{
			URI: getEnv("MONGODB_URI", "mongodb://localhost:27017"),
			DB:  getEnv("MONGODB_NAME", "dashboard_data"),
		},
		JWT: JWTConfig{
			Secret:     getEnv("JWT_SECRET", "change-me"),
			Expiration: getEnvAsDuration("JWT_EXPIRATION", 24*time.Hour),
		},
		Dashboard: DashboardConfig{
			Port:          getEnvAsInt("DASHBOARD_PORT", 8080),
			APIBaseURL:    getEnv("API_BASE_URL", "http://localhost:3000"),
			APITimeout:    getEnvAsDuration("API_TIMEOUT", 10*time.Second),
			AdminUsername: getEnv("ADMIN_USERNAME", "Merge"),
			DefaultLocale: getEnv("DEFAULT_LOCALE", "en"),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
			TTL:      getEnvAsDuration("CATEGORY_CACHE_TTL", time.Minute),
		},
		Seed: SeedConfig{
			Email:    getEnv("SEED_ADMIN_EMAIL", ""),
			Password: getEnv("SEED_ADMIN_PASSWORD", ""),
		},
	}

	return &env, nil
}

func getEnv(key, defaultValue string) string {

	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}

	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {

	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}

	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {

	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}

	return defaultValue
}
