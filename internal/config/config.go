package config

import (
	"os"
)

type Config struct {
	DBHost             string
	DBPort             string
	DBUser             string
	DBPassword         string
	DBName             string
	Port               string
	GinMode            string
	JWTSecret          string
	AdminID            string
	AdminPassword      string
	CORSAllowedOrigins string
}

func Load() *Config {
	return &Config{
		DBHost:             getEnv("DB_HOST", "localhost"),
		DBPort:             getEnv("DB_PORT", "3306"),
		DBUser:             getEnv("DB_USER", "shiftuser"),
		DBPassword:         getEnv("DB_PASSWORD", "shiftpassword"),
		DBName:             getEnv("DB_NAME", "shift_management"),
		Port:               getEnv("PORT", "4000"),
		GinMode:            getEnv("GIN_MODE", "debug"),
		JWTSecret:          getEnv("JWT_SECRET", "default-secret-key-change-me"),
		AdminID:            getEnv("ADMIN_ID", "admin"),
		AdminPassword:      getEnv("ADMIN_PASSWORD", ""),
		CORSAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", ""),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
