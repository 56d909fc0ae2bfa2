package config

import (
	"strings"
	"time"
)

// Settings is the process configuration resolved from the environment.
type Settings struct {
	Port string

	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string
	DBTimezone string

	RedisAddress  string
	RedisPassword string

	TokenType         string // "jwt" or "paseto"
	TokenSymmetricKey string
	TokenDuration     time.Duration
	RefreshDuration   time.Duration
	SecureCookies     bool

	ExchangeAPIURL string
	ExchangeAPIKey string
	BaseCurrency   string
	RateCacheTTL   time.Duration

	BleveIndexPath string

	AdminLogin    string
	AdminPassword string
	AdminEmail    string

	CORSOrigins string
	LogStdout   bool
}

func LoadSettings() Settings {
	return Settings{
		Port: GetEnvDefault("PORT", "8080"),

		DBHost:     GetEnvDefault("DB_HOST", "localhost"),
		DBUser:     GetEnv("POSTGRES_USER"),
		DBPassword: GetEnv("POSTGRES_PASSWORD"),
		DBName:     GetEnv("POSTGRES_DB"),
		DBPort:     GetEnvDefault("DB_PORT", "5432"),
		DBTimezone: GetEnvDefault("DB_TIMEZONE", "Europe/Warsaw"),

		RedisAddress:  GetEnvDefault("REDIS_ADDRESS", "localhost:6379"),
		RedisPassword: GetEnv("REDIS_PASSWORD"),

		TokenType:         strings.ToLower(GetEnvDefault("TOKEN_TYPE", "jwt")),
		TokenSymmetricKey: GetEnv("TOKEN_SYMMETRIC_KEY"),
		TokenDuration:     getEnvDuration("TOKEN_DURATION", 60*time.Minute),
		RefreshDuration:   getEnvDuration("REFRESH_TOKEN_DURATION", 7*24*time.Hour),
		SecureCookies:     getEnvBool("SECURE_COOKIES", false),

		ExchangeAPIURL: GetEnvDefault("EXCHANGE_API_URL", "https://v6.exchangerate-api.com/v6/"),
		ExchangeAPIKey: GetEnv("EXCHANGE_API_KEY"),
		BaseCurrency:   strings.ToUpper(GetEnvDefault("BASE_CURRENCY", "PLN")),
		RateCacheTTL:   getEnvDuration("RATE_CACHE_TTL", time.Hour),

		BleveIndexPath: GetEnvDefault("BLEVE_INDEX_PATH", "./bleve_data"),

		AdminLogin:    GetEnvDefault("ADMIN_LOGIN", "admin"),
		AdminPassword: GetEnv("ADMIN_PASSWORD"),
		AdminEmail:    GetEnvDefault("ADMIN_EMAIL", "admin@example.com"),

		CORSOrigins: GetEnvDefault("CORS_ORIGINS", "http://localhost:5173"),
		LogStdout:   getEnvBool("LOG_STDOUT", false),
	}
}
