package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type Config struct {
	HTTPPort    string
	DatabaseDSN string
	JWTSecret   string
	CORSOrigins string
	UploadPath  string // map waar item-foto's bewaard worden
	SeedUsers   bool
}

func Load() *Config {
	// .env is optioneel; op de server komen de variabelen uit de omgeving
	_ = godotenv.Load()

	initLogger()

	cfg := &Config{
		HTTPPort:    getEnv("HTTP_PORT", "8080"),
		DatabaseDSN: getEnv("DATABASE_DSN", "host=localhost user=postgres password=postgres dbname=flea port=5432 sslmode=disable"),
		JWTSecret:   getEnv("JWT_SECRET", ""),
		CORSOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
		UploadPath:  getEnv("UPLOAD_PATH", "./uploads"),
		SeedUsers:   os.Getenv("SEED_USERS") == "1",
	}

	if cfg.JWTSecret == "" {
		logrus.Fatal("JWT_SECRET ontbreekt, zonder secret kan de server niet starten")
	}
	if len(cfg.JWTSecret) < 32 {
		logrus.Fatal("JWT_SECRET moet minimaal 32 tekens zijn")
	}
	if cfg.DatabaseDSN == "host=localhost user=postgres password=postgres dbname=flea port=5432 sslmode=disable" {
		logrus.Warn("DATABASE_DSN staat op de standaardwaarde, zet voor productie een eigen DSN")
	}

	return cfg
}

func initLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if lvl, err := logrus.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		logrus.SetLevel(lvl)
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
