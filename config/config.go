package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port           string
	Env            string
	DBPath         string
	DBMaxConns     int
	AttachmentsDir string
	DefaultUserID  int64
}

var AppConfig *Config

func Load() {
	_ = godotenv.Load()

	AppConfig = &Config{
		Port:           GetEnv("PORT", "3000"),
		Env:            GetEnv("ENV", "development"),
		DBPath:         GetEnv("DB_PATH", "./data/recall.db"),
		DBMaxConns:     GetEnvInt("DB_MAX_CONNS", 10),
		AttachmentsDir: GetEnv("ATTACHMENTS_DIR", "./data/attachments"),
		DefaultUserID:  int64(GetEnvInt("DEFAULT_USER_ID", 1)),
	}
}

func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func GetEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}
