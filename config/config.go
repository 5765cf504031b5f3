package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	BaseURL   = "https://www.emlakjet.com"
	StartPath = "/kiralik-daire/istanbul/"
)

type Config struct {
	Pages    int
	Headless bool
	Debug    bool

	OutputDir string
	LogPath   string
	DBPath    string

	DatabaseURL string
	S3          S3Config

	Scheduler SchedulerConfig

	Selectors *Selectors
}

type S3Config struct {
	Bucket          string
	Region          string
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
}

type SchedulerConfig struct {
	Cron     string
	Interval time.Duration
}

// Load reads .env, environment variables and the selector override file.
// CLI flags (pages, visibility, debug) are applied by the caller on top.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Pages:       getEnvInt("SCRAPE_PAGES", 10),
		Headless:    true,
		OutputDir:   getEnv("OUTPUT_DIR", "."),
		LogPath:     getEnv("LOG_PATH", "logs/emlakjet.log"),
		DBPath:      getEnv("DB_PATH", "scrape.db"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		S3: S3Config{
			Bucket:          os.Getenv("S3_BUCKET"),
			Region:          getEnv("S3_REGION", "eu-central-1"),
			Endpoint:        os.Getenv("S3_ENDPOINT"),
			AccessKeyID:     os.Getenv("S3_ACCESS_KEY_ID"),
			SecretAccessKey: os.Getenv("S3_SECRET_ACCESS_KEY"),
		},
		Scheduler: SchedulerConfig{
			Cron: os.Getenv("SCRAPE_CRON"),
		},
	}

	if interval := os.Getenv("SCRAPE_INTERVAL"); interval != "" {
		if d, err := time.ParseDuration(interval); err == nil {
			cfg.Scheduler.Interval = d
		}
	}

	selectors, err := LoadSelectors(getEnv("SELECTORS_PATH", "config/selectors.yaml"))
	if err != nil {
		return nil, err
	}
	cfg.Selectors = selectors

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}
