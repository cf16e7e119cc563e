package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config holds everything the server reads from the environment.
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	ServerPort  string `mapstructure:"SERVER_PORT"`

	// MongoDB
	MongoURI string `mapstructure:"MONGO_URI"`
	MongoDB  string `mapstructure:"MONGO_DB"`

	// Firebase service account
	FirebaseProjectID   string `mapstructure:"FIREBASE_PROJECT_ID"`
	FirebaseClientEmail string `mapstructure:"FIREBASE_CLIENT_EMAIL"`
	FirebasePrivateKey  string `mapstructure:"FIREBASE_PRIVATE_KEY"`

	// CORS
	AllowedOrigins  string `mapstructure:"ALLOWED_ORIGINS"`
	DevOriginSuffix string `mapstructure:"DEV_ORIGIN_SUFFIX"`
}

// LoadConfig reads configuration from a .env file at path, falling back to
// environment variables when the file is absent.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName(".env")
	viper.SetConfigType("env")

	viper.AutomaticEnv()

	// Bind explicitly so AutomaticEnv covers keys missing from the file.
	for _, key := range []string{
		"ENVIRONMENT", "SERVER_PORT",
		"MONGO_URI", "MONGO_DB",
		"FIREBASE_PROJECT_ID", "FIREBASE_CLIENT_EMAIL", "FIREBASE_PRIVATE_KEY",
		"ALLOWED_ORIGINS", "DEV_ORIGIN_SUFFIX",
	} {
		_ = viper.BindEnv(key)
	}

	err = viper.ReadInConfig()
	if err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return
		}
	}

	err = viper.Unmarshal(&config)
	if err != nil {
		return
	}

	if config.ServerPort == "" {
		config.ServerPort = "3000"
	}
	if config.MongoDB == "" {
		config.MongoDB = "taskflow"
	}
	// Missing store credentials degrade per request instead of aborting
	// startup, so fall back to a local instance.
	if config.MongoURI == "" {
		config.MongoURI = "mongodb://localhost:27017"
	}

	// Deployment platforms store the PEM with literal "\n" sequences.
	config.FirebasePrivateKey = strings.ReplaceAll(config.FirebasePrivateKey, `\n`, "\n")

	return
}

// Origins returns the exact CORS allow-list.
func (c *Config) Origins() []string {
	if c.AllowedOrigins == "" {
		return nil
	}
	parts := strings.Split(c.AllowedOrigins, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}

// HasFirebaseCredentials reports whether all service-account fields are set.
func (c *Config) HasFirebaseCredentials() bool {
	return c.FirebaseProjectID != "" && c.FirebaseClientEmail != "" && c.FirebasePrivateKey != ""
}
