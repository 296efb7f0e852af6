package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port         string
	DatabaseURL  string
	JWTSecret    string
	ClientOrigin string
	UploadDir    string

	SMTPHost     string
	SMTPPort     string
	SMTPFrom     string
	SMTPPassword string
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func LoadConfig() Config {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using system environment variables")
	}

	cfg := Config{
		Port:         getEnv("PORT", "3000"),
		DatabaseURL:  getEnv("DATABASE_URL", "host=localhost user=postgres password=postgres dbname=socialhub port=5432 sslmode=disable"),
		JWTSecret:    os.Getenv("JWT_SECRET"),
		ClientOrigin: getEnv("CLIENT_ORIGIN", "http://localhost:5173"),
		UploadDir:    getEnv("UPLOAD_DIR", "./uploads"),
		SMTPHost:     getEnv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:     getEnv("SMTP_PORT", "587"),
		SMTPFrom:     getEnv("SMTP_FROM", ""),
		SMTPPassword: getEnv("SMTP_PASSWORD", ""),
	}
	return cfg
}
