package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// LoadEnv reads .env into the process environment. A missing file is not
// fatal, real deployments pass variables directly.
func LoadEnv(filenames ...string) {
	if len(filenames) == 0 {
		filenames = []string{".env"}
	}
	if err := godotenv.Load(filenames...); err != nil && Logger != nil {
		Logger.Warn("No .env file loaded, using process environment", zap.Error(err))
	}
}

func GetEnv(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}

func GetEnvDefault(key, def string) string {
	if v := GetEnv(key); v != "" {
		return v
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	v := GetEnv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		if Logger != nil {
			Logger.Warn("Invalid duration in environment, using default",
				zap.String("key", key), zap.String("value", v), zap.Duration("default", def))
		}
		return def
	}
	return d
}

func getEnvBool(key string, def bool) bool {
	v := GetEnv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}
