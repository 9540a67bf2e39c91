package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort    string
	Environment   string
	DatabasePath  string
	DataDir       string
	AdminPassword string
	JWTSecret     string
	JWTExpiry     int64
	StorageBucket string
	GCPProject    string
	GCPCredFile   string
}

func Load() (*Config, error) {
	godotenv.Load()

	config := &Config{
		ServerPort:    getEnv("SERVER_PORT", "8080"),
		Environment:   getEnv("ENVIRONMENT", "development"),
		DatabasePath:  getEnv("DATABASE_PATH", "./data/ruya.db"),
		DataDir:       getEnv("DATA_DIR", "./data"),
		AdminPassword: getEnv("ADMIN_PASSWORD", ""),
		JWTSecret:     getEnv("JWT_SECRET", "your-secret-key"),
		JWTExpiry:     getEnvAsInt64("JWT_EXPIRY", 24*60*60), // 24 hours
		StorageBucket: getEnv("STORAGE_BUCKET", ""),
		GCPProject:    getEnv("GCP_PROJECT_ID", ""),
		GCPCredFile:   getEnv("GCP_CREDENTIALS_FILE", ""),
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value, exists := os.LookupEnv(key); exists {
		intValue, err := strconv.ParseInt(value, 10, 64)
		if err == nil {
			return intValue
		}
	}
	return defaultValue
}
