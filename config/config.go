package config

import (
	"os"
	"strconv"
)

// Config carries every operator-supplied setting. It is loaded once in main
// and injected into services and controllers so that business logic never
// reads the process environment directly.
type Config struct {
	AppHost     string
	AppPort     string
	FrontendURL string

	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string
	DBSSLMode  string

	JWTSecret     string
	AdminPassword string

	// Razorpay credentials. When PaymentBypass is true the gateway is never
	// called and order ids are synthesized with the dev_order_ prefix.
	RazorpayKeyID  string
	RazorpaySecret string
	PaymentBypass  bool

	// Nightly rate per person in major currency units.
	RatePerNight float64
	Currency     string

	SendGridAPIKey    string
	SendGridFromEmail string
	EmailDisabled     bool

	EncryptionKey string
}

// Load reads the configuration from the environment. Defaults keep a local
// setup usable without a full .env file.
func Load() *Config {
	cfg := &Config{
		AppHost:     getEnv("APP_HOST", "0.0.0.0"),
		AppPort:     getEnv("APP_PORT", "4000"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:5173"),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBName:     getEnv("DB_DATABASE", "hostel_booking"),
		DBUser:     getEnv("DB_USERNAME", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		JWTSecret:     getEnv("JWT_SECRET", "replace_with_real_secret"),
		AdminPassword: getEnv("ADMIN_PASSWORD", ""),

		RazorpayKeyID:  getEnv("RAZORPAY_KEY_ID", ""),
		RazorpaySecret: getEnv("RAZORPAY_SECRET", ""),
		PaymentBypass:  getEnvBool("DISABLE_RAZORPAY", false),

		RatePerNight: getEnvFloat("RATE_PER_NIGHT", 300),
		Currency:     getEnv("PAYMENT_CURRENCY", "INR"),

		SendGridAPIKey:    getEnv("SENDGRID_API_KEY", ""),
		SendGridFromEmail: getEnv("SENDGRID_FROM_EMAIL", "noreply@hostel-booking.local"),
		EmailDisabled:     getEnvBool("DISABLE_EMAIL", false),

		EncryptionKey: getEnv("ENCRYPTION_KEY", ""),
	}
	return cfg
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvFloat(key string, fallback float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fallback
	}
	return parsed
}
