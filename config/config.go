package config

import (
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/joho/godotenv"
)

var loadOnce sync.Once

// Config reads an environment variable, loading .env on first use.
func Config(key string) string {
	loadOnce.Do(func() {
		// .env is optional, real deployments inject the environment directly
		_ = godotenv.Load()
	})
	return os.Getenv(key)
}

func configOr(key, fallback string) string {
	if v := strings.TrimSpace(Config(key)); v != "" {
		return v
	}
	return fallback
}

func configInt(key string, fallback int) int {
	v := strings.TrimSpace(Config(key))
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

type Settings struct {
	AppEnv   string
	AppPort  string
	Storage  string
	LogLevel string

	DBHost     string
	DBPort     int
	DBUser     string
	DBPassword string
	DBName     string

	JWTSecret   string
	CorsOrigins string

	RedisAddr     string
	RedisPassword string
	RabbitMQURL   string

	MailTransport string
	SMTPHost      string
	SMTPPort      int
	SMTPUsername  string
	SMTPPassword  string
	SMTPFrom      string

	FrontURL string
	AdminURL string

	CloudinaryCloudName string
	CloudinaryAPIKey    string
	CloudinaryAPISecret string
}

func Load() Settings {
	return Settings{
		AppEnv:   configOr("APP_ENV", "dev"),
		AppPort:  configOr("APP_PORT", "8002"),
		Storage:  configOr("APP_STORAGE", "postgres"),
		LogLevel: configOr("LOG_LEVEL", "info"),

		DBHost:     configOr("DB_HOST", "localhost"),
		DBPort:     configInt("DB_PORT", 5432),
		DBUser:     Config("DB_USER"),
		DBPassword: Config("DB_PASSWORD"),
		DBName:     Config("DB_NAME"),

		JWTSecret:   Config("JWT_SECRET"),
		CorsOrigins: configOr("CORS_ORIGINS", "http://localhost:5173"),

		RedisAddr:     Config("REDIS_ADDR"),
		RedisPassword: Config("REDIS_PASSWORD"),
		RabbitMQURL:   Config("RABBITMQ_URL"),

		MailTransport: configOr("MAIL_TRANSPORT", "gomail"),
		SMTPHost:      Config("SMTP_HOST"),
		SMTPPort:      configInt("SMTP_PORT", 587),
		SMTPUsername:  Config("SMTP_USERNAME"),
		SMTPPassword:  Config("SMTP_PASSWORD"),
		SMTPFrom:      configOr("SMTP_FROM", "no-reply@coworking.local"),

		FrontURL: configOr("FRONT_URL", "http://localhost:5173"),
		AdminURL: configOr("ADMIN_URL", "http://localhost:8002"),

		CloudinaryCloudName: Config("CLOUDINARY_CLOUD_NAME"),
		CloudinaryAPIKey:    Config("CLOUDINARY_API_KEY"),
		CloudinaryAPISecret: Config("CLOUDINARY_API_SECRET"),
	}
}
