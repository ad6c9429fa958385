package config

import (
	"os"
)

type StorageConfig struct {
	AccountID       string
	AccessKeyID     string
	SecretAccessKey string
	Bucket          string
	PublicURL       string
}

type EmailConfig struct {
	APIKey      string
	FromAddress string
	FromName    string
}

type Config struct {
	Port        string
	DatabaseURL string
	JWTSecret   string
	Storage     StorageConfig
	Email       EmailConfig
}

func LoadConfig() *Config {
	cfg := &Config{
		Port:        os.Getenv("PORT"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
	}

	cfg.Storage.AccountID = os.Getenv("R2_ACCOUNT_ID")
	cfg.Storage.AccessKeyID = os.Getenv("R2_ACCESS_KEY_ID")
	cfg.Storage.SecretAccessKey = os.Getenv("R2_SECRET_ACCESS_KEY")
	cfg.Storage.Bucket = os.Getenv("R2_BUCKET")
	cfg.Storage.PublicURL = os.Getenv("R2_PUBLIC_URL")

	cfg.Email.APIKey = os.Getenv("RESEND_API_KEY")
	cfg.Email.FromAddress = os.Getenv("EMAIL_FROM_ADDRESS")
	cfg.Email.FromName = os.Getenv("EMAIL_FROM_NAME")

	return cfg
}
