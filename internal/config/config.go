package config

import (
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App   AppConfig
	Api   ApiConfig
	State StateConfig
}

type AppConfig struct {
	Environment string
	LogFilePath string
}

type ApiConfig struct {
	BaseURL        string
	TimeoutSeconds int
}

// StateConfig selects where the session is persisted. Backend is one of
// "file", "memory" or "redis".
type StateConfig struct {
	Backend  string
	FilePath string
	RedisURL string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Environment: getEnv("GO_ENV", "development"),
			LogFilePath: getEnv("LOG_FILE_PATH", "fintech-hub-client.log"),
		},
		Api: ApiConfig{
			BaseURL:        getEnv("API_BASE_URL", "http://localhost:8080/api"),
			TimeoutSeconds: getEnvAsInt("API_TIMEOUT_SECONDS", 30),
		},
		State: StateConfig{
			Backend:  getEnv("STATE_BACKEND", "file"),
			FilePath: getEnv("STATE_FILE_PATH", defaultStatePath()),
			RedisURL: getEnv("REDIS_URL", "redis://localhost:6379"),
		},
	}
}

func defaultStatePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "fintech-hub-state.json"
	}
	return filepath.Join(home, ".fintech-hub", "state.json")
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}
