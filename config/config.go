package config

import (
	"flag"
	"os"

	"github.com/bekzat/shortly/pkg/base62"
)

type Config struct {
	ServerAddress   string
	BaseURL         string
	FileStoragePath string
	DSN             string
	LogLevel        string
	Alphabet        string
	AuthSecret      string
}

func defaultConfig() *Config {
	return &Config{
		ServerAddress:   "localhost:8080",
		BaseURL:         "http://localhost:8080",
		FileStoragePath: "/tmp/short-url-db.json",
		LogLevel:        "info",
		Alphabet:        base62.DefaultAlphabet,
		AuthSecret:      "shortly-dev-secret",
	}
}

// NewConfig reads the command-line flags, then lets environment variables
// override them.
func NewConfig() *Config {
	cfg := defaultConfig()

	flag.StringVar(&cfg.ServerAddress, "a", cfg.ServerAddress, "HTTP server address")
	flag.StringVar(&cfg.BaseURL, "b", cfg.BaseURL, "Base URL for shortened links")
	flag.StringVar(&cfg.FileStoragePath, "f", cfg.FileStoragePath, "JSON lines file for link persistence, empty disables it")
	flag.StringVar(&cfg.DSN, "d", cfg.DSN, "PostgreSQL DSN, in-memory storage is used when empty")
	flag.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	flag.StringVar(&cfg.Alphabet, "c", cfg.Alphabet, "62-character alphabet for short codes")
	flag.StringVar(&cfg.AuthSecret, "s", cfg.AuthSecret, "secret for signing auth cookies")
	flag.Parse()

	applyEnv(cfg)
	return cfg
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("SERVER_ADDRESS"); v != "" {
		cfg.ServerAddress = v
	}
	if v := os.Getenv("BASE_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("FILE_STORAGE_PATH"); v != "" {
		cfg.FileStoragePath = v
	}
	if v := os.Getenv("DATABASE_DSN"); v != "" {
		cfg.DSN = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("SHORTENER_ALPHABET"); v != "" {
		cfg.Alphabet = v
	}
	if v := os.Getenv("AUTH_SECRET"); v != "" {
		cfg.AuthSecret = v
	}
}
