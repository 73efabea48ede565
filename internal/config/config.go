package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config carries all environment-supplied settings. Delivery credentials
// are not validated here; a missing key surfaces on first use, when the
// channel reports it.
type Config struct {
	Port        string
	DatabaseURL string // empty disables the enquiry store
	FrontendURL string
	LogLevel    string

	EmailProvider string // "sender" | "resend" | "smtp"
	DispatchMode  string // "background" | "sync"

	SenderAPIKey string
	ResendAPIKey string

	SMTPHost string
	SMTPPort string
	SMTPUser string
	SMTPPass string

	FromName     string
	FromEmail    string
	EnquiryInbox string
}

// Load reads configuration from the environment, after loading .env if
// one exists.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment variables")
	}

	return &Config{
		Port:        getEnv("PORT", "5000"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		FrontendURL: getEnv("FRONTEND_URL", "https://www.ssinteriors.online"),
		LogLevel:    getEnv("LOG_LEVEL", "INFO"),

		EmailProvider: getEnv("EMAIL_PROVIDER", "sender"),
		DispatchMode:  getEnv("DISPATCH_MODE", "background"),

		SenderAPIKey: os.Getenv("SENDER_API_KEY"),
		ResendAPIKey: os.Getenv("RESEND_API_KEY"),

		SMTPHost: getEnv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort: getEnv("SMTP_PORT", "587"),
		SMTPUser: os.Getenv("SMTP_USER"),
		SMTPPass: os.Getenv("SMTP_PASS"),

		FromName:     getEnv("EMAIL_FROM_NAME", "SS Interiors"),
		FromEmail:    getEnv("EMAIL_FROM", "ssinteriorsliving@gmail.com"),
		EnquiryInbox: getEnv("ENQUIRY_INBOX", "ssinteriorsliving@gmail.com"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
