// Package config provides application configuration through environment variables.
package config

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/allisson/go-env"
	validation "github.com/jellydator/validation"
	"github.com/joho/godotenv"

	cryptoDomain "github.com/allisson/cipherkit/internal/crypto/domain"
	appValidation "github.com/allisson/cipherkit/internal/validation"
)

// Config holds all application configuration.
type Config struct {
	// LogLevel is the logging level (e.g., "debug", "info", "warn", "error").
	LogLevel string

	// MetricsEnabled indicates whether use case metrics are recorded.
	MetricsEnabled bool
	// MetricsNamespace is the prefix of every metric name.
	MetricsNamespace string

	// RSADefaultKeyBits is the key size used when a key pair is generated without one.
	RSADefaultKeyBits int
	// RSAWorkers bounds how many RSA blocks are processed concurrently.
	RSAWorkers int

	// PBKDF2DefaultIterations is the iteration count for passwords given on the command line.
	PBKDF2DefaultIterations int
	// PBKDF2DefaultPRF is the PBKDF2 pseudorandom function ("sha1", "sha224", "sha256", "sha384" or "sha512").
	PBKDF2DefaultPRF string

	// DefaultAESTransformation is used when no transformation is given.
	DefaultAESTransformation string
}

// Load loads configuration from environment variables and .env file.
func Load() *Config {
	// Try to load .env file recursively
	loadDotEnv()

	return &Config{
		// Logging
		LogLevel: env.GetString("LOG_LEVEL", "info"),

		// Metrics
		MetricsEnabled:   env.GetBool("METRICS_ENABLED", false),
		MetricsNamespace: env.GetString("METRICS_NAMESPACE", "cipherkit"),

		// RSA
		RSADefaultKeyBits: env.GetInt("RSA_DEFAULT_KEY_BITS", cryptoDomain.RSADefaultKeyBits),
		RSAWorkers:        env.GetInt("RSA_WORKERS", runtime.GOMAXPROCS(0)),

		// Key derivation
		PBKDF2DefaultIterations: env.GetInt("PBKDF2_DEFAULT_ITERATIONS", 10000),
		PBKDF2DefaultPRF:        env.GetString("PBKDF2_DEFAULT_PRF", string(cryptoDomain.HMACSHA1)),

		// AES
		DefaultAESTransformation: env.GetString(
			"DEFAULT_AES_TRANSFORMATION",
			cryptoDomain.AESCBCPKCS7Padding,
		),
	}
}

// Validate checks that every setting is usable.
func (c *Config) Validate() error {
	err := validation.ValidateStruct(c,
		validation.Field(&c.LogLevel,
			validation.Required,
			validation.In("debug", "info", "warn", "error"),
		),
		validation.Field(&c.MetricsNamespace, validation.Required, appValidation.NoWhitespace),
		validation.Field(&c.RSADefaultKeyBits,
			validation.Required,
			validation.Min(cryptoDomain.RSAMinKeyBits),
			validation.Max(cryptoDomain.RSAMaxKeyBits),
		),
		validation.Field(&c.RSAWorkers, validation.Required, validation.Min(1)),
		validation.Field(&c.PBKDF2DefaultIterations, validation.Required, validation.Min(1)),
		validation.Field(&c.PBKDF2DefaultPRF,
			validation.Required,
			validation.In(
				string(cryptoDomain.HMACSHA1),
				string(cryptoDomain.HMACSHA224),
				string(cryptoDomain.HMACSHA256),
				string(cryptoDomain.HMACSHA384),
				string(cryptoDomain.HMACSHA512),
			),
		),
		validation.Field(&c.DefaultAESTransformation,
			validation.Required,
			appValidation.NoWhitespace,
			appValidation.Transformation,
		),
	)
	return appValidation.WrapValidationError(err)
}

// loadDotEnv searches for a .env file recursively from the current directory
// up to the root directory and loads it if found.
func loadDotEnv() {
	// Get current working directory
	cwd, err := os.Getwd()
	if err != nil {
		return
	}

	// Search for .env file recursively up the directory tree
	dir := cwd
	for {
		envPath := filepath.Join(dir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			// .env file found, load it
			_ = godotenv.Load(envPath)
			return
		}

		// Move to parent directory
		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached root directory
			break
		}
		dir = parent
	}
}
