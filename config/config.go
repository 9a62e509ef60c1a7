package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type Config struct {
	Port            string
	MySQLDSN        string
	UsersFile       string
	SessionTTLHours int
}

// Load reads .env when present, then the environment. JWT_SECRET is read
// directly where tokens are signed.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		logrus.Debug("no .env file, using environment variables")
	}

	return &Config{
		Port:            getEnv("PORT", "3000"),
		MySQLDSN:        os.Getenv("MYSQL_DSN"),
		UsersFile:       getEnv("USERS_FILE", "users.json"),
		SessionTTLHours: getEnvInt("SESSION_TTL_HOURS", 24),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		logrus.Warnf("invalid %s=%q, using %d", key, v, fallback)
		return fallback
	}
	return n
}
