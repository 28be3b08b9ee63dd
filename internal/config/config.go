package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	// Server
	Port        string
	Env         string
	CORSOrigins []string
	EnablePprof bool

	// Database
	DBDriver   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
	DBPath     string

	// Machine trigger
	PipelineAPIKey string

	// Job queue
	AMQPURL      string
	AMQPExchange string
	AMQPQueue    string

	// Generator
	GeneratorInterval time.Duration
	GeneratorWorkers  int

	// Worker metrics listener
	MetricsPort string

	// Notifications
	TelegramBotToken string
	TelegramChatID   int64
}

var appConfig *Config

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if not already loaded
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	config := &Config{
		// Server
		Port:        getEnv("PORT", "8080"),
		Env:         getEnv("ENV", "development"),
		CORSOrigins: splitList(getEnv("CORS_ALLOW_ORIGINS", "http://localhost:3000")),
		EnablePprof: getBool("ENABLE_PPROF", false),

		// Database
		DBDriver:   strings.ToLower(getEnv("DB_DRIVER", "postgres")),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "subtrack"),
		DBPassword: getEnv("DB_PASSWORD", "subtrack"),
		DBName:     getEnv("DB_NAME", "subtrack"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),
		DBPath:     getEnv("DB_PATH", "subtrack.db"),

		PipelineAPIKey: getEnv("PIPELINE_API_KEY", ""),

		AMQPURL:      getEnv("AMQP_URL", ""),
		AMQPExchange: getEnv("AMQP_EXCHANGE", "subtrack"),
		AMQPQueue:    getEnv("AMQP_QUEUE", "subtrack.generate"),

		GeneratorWorkers: getInt("GENERATOR_WORKERS", 2),
		MetricsPort:      getEnv("METRICS_PORT", "9091"),

		TelegramBotToken: getEnv("TELEGRAM_BOT_TOKEN", ""),
	}

	intervalStr := getEnv("GENERATOR_INTERVAL", "24h")
	interval, err := time.ParseDuration(intervalStr)
	if err != nil || interval <= 0 {
		log.Printf("Warning: invalid GENERATOR_INTERVAL value '%s', falling back to 24h\n", intervalStr)
		interval = 24 * time.Hour
	}
	config.GeneratorInterval = interval

	if chatID := getEnv("TELEGRAM_CHAT_ID", ""); chatID != "" {
		id, err := strconv.ParseInt(chatID, 10, 64)
		if err != nil {
			log.Printf("Warning: invalid TELEGRAM_CHAT_ID value '%s', notifications disabled\n", chatID)
		} else {
			config.TelegramChatID = id
		}
	}

	if config.GeneratorWorkers < 1 {
		config.GeneratorWorkers = 1
	}

	appConfig = config
	return config, nil
}

// Get returns the application configuration
func Get() *Config {
	if appConfig == nil {
		var err error
		appConfig, err = Load()
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
	}
	return appConfig
}

// QueueEnabled reports whether generation runs go through RabbitMQ.
func (c *Config) QueueEnabled() bool {
	return c.AMQPURL != ""
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Warning: invalid %s value '%s', falling back to %d\n", key, value, defaultValue)
		return defaultValue
	}
	return n
}

func getBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return b
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
