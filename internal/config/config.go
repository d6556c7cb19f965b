// Package config resolves all runtime settings from the environment once
// at startup. Secrets have no baked-in defaults: production boot fails if
// they are absent or still set to placeholder values.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Placeholder values that must never reach a real deployment.
var placeholderSecrets = map[string]bool{
	"your-email@gmail.com": true,
	"your-app-password":    true,
	"changeme":             true,
}

type Config struct {
	Addr        string
	Environment string
	WebDir      string

	AnthropicAPIKey string
	ProviderTimeout time.Duration

	SESRegion    string
	SESAccessKey string
	SESSecretKey string
	SESSender    string

	// SQLitePath selects the persistent store; empty keeps the in-memory
	// store.
	SQLitePath string

	// OTLPEndpoint enables trace export when set.
	OTLPEndpoint string
}

// Load reads the environment. It does not validate; call Validate after.
func Load() Config {
	port := envOr("PORT", "3000")
	return Config{
		Addr:            ":" + port,
		Environment:     envOr("CLARITY_ENV", EnvDevelopment),
		WebDir:          envOr("CLARITY_WEB_DIR", "public"),
		AnthropicAPIKey: strings.TrimSpace(os.Getenv("ANTHROPIC_API_KEY")),
		ProviderTimeout: time.Duration(envIntOr("PROVIDER_TIMEOUT_SECONDS", 60)) * time.Second,
		SESRegion:       envOr("SES_REGION", "us-east-1"),
		SESAccessKey:    strings.TrimSpace(os.Getenv("SES_ACCESS_KEY")),
		SESSecretKey:    strings.TrimSpace(os.Getenv("SES_SECRET_KEY")),
		SESSender:       strings.TrimSpace(os.Getenv("SES_SENDER")),
		SQLitePath:      strings.TrimSpace(os.Getenv("CLARITY_DB_PATH")),
		OTLPEndpoint:    strings.TrimSpace(os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")),
	}
}

// Production reports whether the config targets a production deployment.
func (c Config) Production() bool {
	return c.Environment == EnvProduction
}

// Validate enforces the secret policy. Development mode tolerates missing
// credentials (stub provider/mailer take over); production does not.
func (c Config) Validate() error {
	if c.Environment != EnvDevelopment && c.Environment != EnvProduction {
		return fmt.Errorf("CLARITY_ENV must be %q or %q, got %q", EnvDevelopment, EnvProduction, c.Environment)
	}
	if c.ProviderTimeout <= 0 {
		return fmt.Errorf("PROVIDER_TIMEOUT_SECONDS must be positive")
	}
	if !c.Production() {
		return nil
	}
	for name, v := range map[string]string{
		"ANTHROPIC_API_KEY": c.AnthropicAPIKey,
		"SES_ACCESS_KEY":    c.SESAccessKey,
		"SES_SECRET_KEY":    c.SESSecretKey,
		"SES_SENDER":        c.SESSender,
	} {
		if v == "" {
			return fmt.Errorf("missing required env var %s in production", name)
		}
		if placeholderSecrets[strings.ToLower(v)] {
			return fmt.Errorf("env var %s still holds a placeholder value", name)
		}
	}
	return nil
}

func envOr(key, def string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	return v
}

func envIntOr(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
