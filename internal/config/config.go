package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	LOG_LEVEL     string
	CART_BACKEND  string
	CART_DIR      string
	CART_DB_PATH  string
	REDIS_ADDR    string
	CART_KEY      string
	PRODUCTS_URL  string
	FETCH_TIMEOUT time.Duration
}

func LoadConfig() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Notice: .env file not found: %v. Using system environment variables", err)
	}

	config := &Config{
		LOG_LEVEL:     getenv("LOG_LEVEL", "info"),
		CART_BACKEND:  getenv("CART_BACKEND", "file"),
		CART_DIR:      getenv("CART_DIR", ".storefront"),
		CART_DB_PATH:  getenv("CART_DB_PATH", ".storefront/cart.db"),
		REDIS_ADDR:    getenv("REDIS_ADDR", "localhost:6379"),
		CART_KEY:      getenv("CART_KEY", "storefront_cart_v1"),
		PRODUCTS_URL:  os.Getenv("PRODUCTS_URL"),
		FETCH_TIMEOUT: getenvSeconds("FETCH_TIMEOUT_SECONDS", 10),
	}

	return config, nil
}

func getenv(name, def string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return def
}

func getenvSeconds(name string, def int) time.Duration {
	if v := os.Getenv(name); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return time.Duration(n) * time.Second
		}
	}
	return time.Duration(def) * time.Second
}
