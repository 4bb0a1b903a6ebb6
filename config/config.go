package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// BoolMode controls how checkbox-style form fields become booleans
type BoolMode string

const (
	// BoolTruthy treats any non-empty value as true, "false" included
	BoolTruthy BoolMode = "truthy"
	// BoolStrict accepts only strconv.ParseBool spellings of true
	BoolStrict BoolMode = "strict"
)

const defaultAPIKey = "SecretAPIKey"

type Config struct {
	Port           string
	GinMode        string
	DBDriver       string
	DBSource       string
	APIKey         string
	AllowedOrigins []string
	FormBoolMode   BoolMode
}

// Load reads settings from the environment. A .env file in the working
// directory is applied first when present.
func Load() *Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Ignoring .env file: %v", err)
	}

	mode := BoolMode(strings.ToLower(getEnv("FORM_BOOL_MODE", string(BoolTruthy))))
	if mode != BoolStrict {
		mode = BoolTruthy
	}

	return &Config{
		Port:           getEnv("PORT", "8080"),
		GinMode:        os.Getenv("GIN_MODE"),
		DBDriver:       strings.ToLower(getEnv("DB_DRIVER", "sqlite")),
		DBSource:       getEnv("DB_SOURCE", "cafes.db"),
		APIKey:         getEnv("CAFE_API_KEY", defaultAPIKey),
		AllowedOrigins: splitList(getEnv("ALLOWED_ORIGINS", "*")),
		FormBoolMode:   mode,
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
