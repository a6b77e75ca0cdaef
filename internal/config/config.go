package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DatabaseURL string

	GeminiAPIKey string
	GeminiModel  string
	OpenAIAPIKey string

	PageSpeedAPIKey string

	MailHost   string
	MailPort   int
	MailUser   string
	MailPass   string
	MailFrom   string
	AdminEmail string
	BookingURL string

	AdminSecret string

	RedisAddr string

	RabbitUser string
	RabbitPass string
	RabbitHost string
	RabbitPort string

	CRMBaseURL  string
	CRMAPIToken string
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	return &Config{
		Port:        getEnv("PORT", "8080"),
		DatabaseURL: getEnv("DATABASE_URL", ""),

		GeminiAPIKey: getEnv("GOOGLE_GENERATIVE_AI_API_KEY", ""),
		GeminiModel:  getEnv("AI_MODEL", "gemini-2.5-flash"),
		OpenAIAPIKey: getEnv("OPENAI_API_KEY", ""),

		PageSpeedAPIKey: getEnv("PAGESPEED_API_KEY", ""),

		MailHost:   getEnv("MAIL_HOST", ""),
		MailPort:   getEnvInt("MAIL_PORT", 587),
		MailUser:   getEnv("MAIL_USER", ""),
		MailPass:   getEnv("MAIL_PASS", ""),
		MailFrom:   getEnv("MAIL_FROM", "AI Agent <ai@marianstancik.dev>"),
		AdminEmail: getEnv("ADMIN_EMAIL", "stancikmarian8@gmail.com"),
		BookingURL: getEnv("BOOKING_URL", "https://cal.com/marian-stancik/30min"),

		AdminSecret: getEnv("ADMIN_SECRET", "admin123"),

		RedisAddr: getEnv("REDIS_ADDR", ""),

		RabbitUser: getEnv("RABBITMQ_USER", "user"),
		RabbitPass: getEnv("RABBITMQ_PASS", "password"),
		RabbitHost: getEnv("RABBITMQ_HOST", ""),
		RabbitPort: getEnv("RABBITMQ_PORT", "5672"),

		CRMBaseURL:  getEnv("CRM_BASE_URL", ""),
		CRMAPIToken: getEnv("CRM_API_TOKEN", ""),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
