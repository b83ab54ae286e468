package heidelpay

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const defaultBaseURL = "https://api.heidelpay.com/v1"

// Config holds the settings needed to talk to the payment API.
type Config struct {
	// PublicKey is the publishable key of the merchant account.
	PublicKey string

	// BaseURL optionally overrides the API endpoint.
	BaseURL string
}

// Validate checks that the required configuration fields are present.
func (c Config) Validate() error {
	if c.PublicKey == "" {
		return fmt.Errorf("heidelpay: PublicKey is required")
	}
	if !IsPublicKey(c.PublicKey) {
		return fmt.Errorf("heidelpay: PublicKey must start with s-pub- or p-pub-")
	}
	if c.BaseURL != "" {
		u, err := url.Parse(c.BaseURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("heidelpay: BaseURL %q is not an absolute URL", c.BaseURL)
		}
	}
	return nil
}

// DefaultBaseURL returns BaseURL, or the production endpoint when it is empty.
func (c Config) DefaultBaseURL() string {
	if c.BaseURL != "" {
		return strings.TrimRight(c.BaseURL, "/")
	}
	return defaultBaseURL
}

// Options turns the config into client options.
func (c Config) Options() []Option {
	return []Option{WithBaseURL(c.DefaultBaseURL())}
}

// LoadConfigFromEnv creates a Config from environment variables:
//
//	HEIDELPAY_PUBLIC_KEY  – publishable key (required)
//	HEIDELPAY_BASE_URL    – optional API endpoint override
func LoadConfigFromEnv() Config {
	return configFromEnv()
}

// LoadConfigFromDotEnv loads environment variables from a .env file and then
// reads the Config from them. Variables already set in the process take
// precedence, and a missing file falls back to the process environment.
func LoadConfigFromDotEnv(filenames ...string) Config {
	_ = godotenv.Load(filenames...)
	return configFromEnv()
}

func configFromEnv() Config {
	return Config{
		PublicKey: strings.TrimSpace(os.Getenv("HEIDELPAY_PUBLIC_KEY")),
		BaseURL:   strings.TrimSpace(os.Getenv("HEIDELPAY_BASE_URL")),
	}
}
