package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	DB       DBConfig
	Server   ServerConfig
	WhatsApp WhatsAppConfig
	Cafe     CafeConfig
}

type DBConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
}

type ServerConfig struct {
	Port              string
	SessionTTLMinutes int
}

type WhatsAppConfig struct {
	Host        string // deep link host, e.g. "wa.me"
	CountryCode string // replaces a local trunk "0" prefix when dialing internationally
}

type CafeConfig struct {
	Name string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	port, _ := strconv.Atoi(getEnv("DB_PORT", "5432"))
	sessionTTL, _ := strconv.Atoi(getEnv("SESSION_TTL_MINUTES", "120"))

	return &Config{
		DB: DBConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     port,
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Database: getEnv("DB_NAME", "cafe"),
		},
		Server: ServerConfig{
			Port:              getEnv("SERVER_PORT", "8080"),
			SessionTTLMinutes: sessionTTL,
		},
		WhatsApp: WhatsAppConfig{
			Host:        getEnv("WA_HOST", "wa.me"),
			CountryCode: getEnv("WA_COUNTRY_CODE", "62"),
		},
		Cafe: CafeConfig{
			Name: getEnv("CAFE_NAME", "Cozy Corner Cafe"),
		},
	}, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
