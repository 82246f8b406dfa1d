// Package config reads the seeder's settings from the environment.
package config

import (
	"errors"
	"fmt"

	"github.com/joho/godotenv"
)

// DefaultDatabaseID is Firestore's default database
const DefaultDatabaseID = "(default)"

// ErrMissingSetting is wrapped by Validate for every required value that is empty
var ErrMissingSetting = errors.New("missing required setting")

type (
	Config struct {
		App      App
		Firebase Firebase
		Auth     Auth
	}
	App struct {
		Env      string
		LogLevel string
	}
	// Firebase mirrors the web app config the dashboard uses, plus server credentials
	Firebase struct {
		APIKey            string
		AuthDomain        string
		ProjectID         string
		StorageBucket     string
		MessagingSenderID string
		AppID             string
		DatabaseURL       string
		CredentialsFile   string
		DatabaseID        string
		AuthEmulatorHost  string
	}
	Auth struct {
		RateLimitPerSecond float64
		RateLimitBurst     int
	}
)

// LoadEnvFile loads variables from a dotenv file without overriding ones already set
func LoadEnvFile(path string) error {
	return godotenv.Load(path)
}

// Load reads the configuration from the process environment
func Load() (*Config, error) {
	rate, err := getEnvFloat("AUTH_RATE_LIMIT_PER_SECOND", 5)
	if err != nil {
		return nil, fmt.Errorf("parse AUTH_RATE_LIMIT_PER_SECOND: %w", err)
	}
	burst, err := getEnvInt("AUTH_RATE_LIMIT_BURST", 1)
	if err != nil {
		return nil, fmt.Errorf("parse AUTH_RATE_LIMIT_BURST: %w", err)
	}

	return &Config{
		App: App{
			Env:      getEnvString("APP_ENV", "development"),
			LogLevel: getEnvString("LOGGER_LEVEL", "info"),
		},
		Firebase: Firebase{
			APIKey:            getEnvString("NEXT_PUBLIC_FIREBASE_API_KEY", ""),
			AuthDomain:        getEnvString("NEXT_PUBLIC_FIREBASE_AUTH_DOMAIN", ""),
			ProjectID:         getEnvString("NEXT_PUBLIC_FIREBASE_PROJECT_ID", ""),
			StorageBucket:     getEnvString("NEXT_PUBLIC_FIREBASE_STORAGE_BUCKET", ""),
			MessagingSenderID: getEnvString("NEXT_PUBLIC_FIREBASE_MESSAGING_SENDER_ID", ""),
			AppID:             getEnvString("NEXT_PUBLIC_FIREBASE_APP_ID", ""),
			DatabaseURL:       getEnvString("NEXT_PUBLIC_FIREBASE_DATABASE_URL", ""),
			CredentialsFile:   getEnvString("GOOGLE_APPLICATION_CREDENTIALS", ""),
			DatabaseID:        getEnvString("FIRESTORE_DATABASE_ID", DefaultDatabaseID),
			AuthEmulatorHost:  getEnvString("FIREBASE_AUTH_EMULATOR_HOST", ""),
		},
		Auth: Auth{
			RateLimitPerSecond: rate,
			RateLimitBurst:     burst,
		},
	}, nil
}

// Validate checks the settings needed to reach the live backends
func (c *Config) Validate() error {
	var missing []error
	if c.Firebase.ProjectID == "" {
		missing = append(missing, fmt.Errorf("%w: NEXT_PUBLIC_FIREBASE_PROJECT_ID", ErrMissingSetting))
	}
	if c.Firebase.APIKey == "" {
		missing = append(missing, fmt.Errorf("%w: NEXT_PUBLIC_FIREBASE_API_KEY", ErrMissingSetting))
	}
	if c.Auth.RateLimitPerSecond <= 0 {
		missing = append(missing, fmt.Errorf("AUTH_RATE_LIMIT_PER_SECOND must be positive, got %v", c.Auth.RateLimitPerSecond))
	}
	return errors.Join(missing...)
}
