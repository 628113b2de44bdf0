package config

import (
	"github.com/joho/godotenv"
)

// LoadDotenv loads .env files if present (for local development).
// .env.local overrides .env; neither overrides the real environment for .env.
func LoadDotenv() {
	_ = godotenv.Load(".env")
	_ = godotenv.Overload(".env.local")
}
