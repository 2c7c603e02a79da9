package config

import (
	"os"
	"strconv"
	"time"

	"pairplay/internal/logger"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort     string
	DatabaseURL string
	JWTSecret   string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// Notification side-channel (optional)
	BotToken        string
	NotifierEnabled bool

	// External question generation (optional)
	GeneratorURL     string
	GeneratorAPIKey  string
	GeneratorTimeout time.Duration

	// Session defaults
	QuestionCount int

	// Rate limits
	APIRateLimit   int
	APIRateWindow  time.Duration
	AuthRateLimit  int
	AuthRateWindow time.Duration

	LogLevel string
	LogJSON  bool
}

// Load reads configuration from .env / environment.
func Load() *Config {
	_ = godotenv.Load()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		logger.Fatal("DATABASE_URL is not set")
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		logger.Fatal("JWT_SECRET is not set")
	}

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}

	redisAddr := os.Getenv("REDIS_ADDR")
	if redisAddr == "" {
		redisAddr = "127.0.0.1:6379"
	}

	return &Config{
		AppPort:     port,
		DatabaseURL: dbURL,
		JWTSecret:   jwtSecret,

		RedisAddr:     redisAddr,
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       intEnv("REDIS_DB", 0),

		BotToken:        os.Getenv("BOT_TOKEN"),
		NotifierEnabled: os.Getenv("NOTIFIER_ENABLED") == "true",

		GeneratorURL:     os.Getenv("GENERATOR_URL"),
		GeneratorAPIKey:  os.Getenv("GENERATOR_API_KEY"),
		GeneratorTimeout: time.Duration(intEnv("GENERATOR_TIMEOUT_SECONDS", 10)) * time.Second,

		QuestionCount: intEnv("QUESTION_COUNT", 10),

		APIRateLimit:   intEnv("API_RATE_LIMIT", 60),
		APIRateWindow:  time.Duration(intEnv("API_RATE_WINDOW_SECONDS", 60)) * time.Second,
		AuthRateLimit:  intEnv("AUTH_RATE_LIMIT", 5),
		AuthRateWindow: time.Duration(intEnv("AUTH_RATE_WINDOW_SECONDS", 60)) * time.Second,

		LogLevel: envOr("LOG_LEVEL", "info"),
		LogJSON:  os.Getenv("LOG_JSON") == "true",
	}
}

func intEnv(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			return n
		}
	}
	return def
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
