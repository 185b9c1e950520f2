package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config carries everything the process needs from the environment: the
// bot token, the single admin identity, store connection info and the
// payment gateway credentials.
type Config struct {
	BotToken string
	AdminID  int64

	DatabaseDSN string

	YooKassaShopID    string
	YooKassaSecretKey string
	YooKassaAPIURL    string
	PaymentReturnURL  string
	Currency          string

	HTTPPort string
}

const defaultYooKassaAPIURL = "https://api.yookassa.ru/v3/payments"

// Load reads .env if present, then the environment. Missing required
// values fail startup.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		BotToken:          os.Getenv("BOT_TOKEN"),
		DatabaseDSN:       databaseDSN(),
		YooKassaShopID:    os.Getenv("YOOKASSA_SHOP_ID"),
		YooKassaSecretKey: os.Getenv("YOOKASSA_SECRET_KEY"),
		YooKassaAPIURL:    os.Getenv("YOOKASSA_API_URL"),
		PaymentReturnURL:  os.Getenv("PAYMENT_RETURN_URL"),
		Currency:          os.Getenv("CURRENCY"),
		HTTPPort:          os.Getenv("PORT"),
	}

	if cfg.BotToken == "" {
		return nil, fmt.Errorf("BOT_TOKEN is required")
	}

	adminRaw := os.Getenv("ADMIN_ID")
	if adminRaw == "" {
		return nil, fmt.Errorf("ADMIN_ID is required")
	}
	adminID, err := strconv.ParseInt(adminRaw, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("ADMIN_ID must be a Telegram user id: %w", err)
	}
	cfg.AdminID = adminID

	if cfg.DatabaseDSN == "" {
		return nil, fmt.Errorf("DATABASE_URL or DB_HOST/DB_PORT/DB_USER/DB_PASSWORD/DB_NAME is required")
	}
	if cfg.YooKassaShopID == "" || cfg.YooKassaSecretKey == "" {
		return nil, fmt.Errorf("YOOKASSA_SHOP_ID and YOOKASSA_SECRET_KEY are required")
	}
	if cfg.YooKassaAPIURL == "" {
		cfg.YooKassaAPIURL = defaultYooKassaAPIURL
	}
	if cfg.PaymentReturnURL == "" {
		return nil, fmt.Errorf("PAYMENT_RETURN_URL is required")
	}
	if cfg.Currency == "" {
		cfg.Currency = "RUB"
	}
	if cfg.HTTPPort == "" {
		cfg.HTTPPort = "8080"
	}
	return cfg, nil
}

func databaseDSN() string {
	if url := os.Getenv("DATABASE_URL"); url != "" {
		return url
	}
	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	user := os.Getenv("DB_USER")
	password := os.Getenv("DB_PASSWORD")
	dbname := os.Getenv("DB_NAME")
	if host == "" || user == "" || dbname == "" {
		return ""
	}
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		host, user, password, dbname, port,
	)
}
