package config

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const AvatarSize = 240

// DefaultEmailDomain is the institutional suffix gating registration.
const DefaultEmailDomain = "@rajalakshmi.edu.in"

type Config struct {
	Port            string
	GinMode         string
	StorageBucket   string
	EmailDomain     string
	FrontendOrigins []string
}

// Load reads configuration from the environment, after loading .env if one
// is present. Firebase credentials stay on their own env vars
// (GOOGLE_APPLICATION_CREDENTIALS*), resolved at bootstrap.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, reading env vars from system")
	}

	port := os.Getenv("PORT")
	if port == "" {
		return nil, fmt.Errorf("$PORT must be set")
	}

	emailDomain := os.Getenv("INSTITUTION_EMAIL_DOMAIN")
	if emailDomain == "" {
		emailDomain = DefaultEmailDomain
	}

	origins := []string{"http://localhost:3000"}
	if feOrigins := os.Getenv("FE_ORIGINS"); feOrigins != "" {
		origins = strings.Split(feOrigins, ";")
	}

	return &Config{
		Port:            port,
		GinMode:         os.Getenv("GIN_MODE"),
		StorageBucket:   os.Getenv("STORAGE_BUCKET"),
		EmailDomain:     emailDomain,
		FrontendOrigins: origins,
	}, nil
}
