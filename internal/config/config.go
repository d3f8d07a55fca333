package config

import (
	"fmt"
	"os"
	"strings"
)

// Output formats
const (
	OutputTable = "table"
	OutputJSON  = "json"
)

// Config holds process-level CLI configuration
// The private key is deliberately absent; it is resolved per invocation by the keys package.
type Config struct {
	// Presentation
	Output string

	// Logging
	LogLevel  string
	LogFormat string
	Verbose   bool
}

const (
	defaultLogLevel  = "WARN"
	defaultLogFormat = "text"
)

// Load reads raw values from environment variables.
// Nothing is validated here; flags are applied on top and the result is
// checked with Validate and SanitizeLogging before use.
func Load() *Config {
	return &Config{
		Output:    getEnv("POLYMARKET_OUTPUT", OutputTable),
		LogLevel:  getEnv("LOG_LEVEL", defaultLogLevel),
		LogFormat: getEnv("LOG_FORMAT", defaultLogFormat),
		Verbose:   getEnvBool("POLYMARKET_VERBOSE", false),
	}
}

// Validate checks the settings that must be valid for a command to run.
// Logging settings are not checked; see SanitizeLogging.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Output) {
	case OutputTable, OutputJSON, "text", "":
	default:
		return fmt.Errorf("output must be 'table' or 'json', got: %s", c.Output)
	}
	return nil
}

// SanitizeLogging resets unrecognized logging settings to their defaults
// and returns one warning per reset value.
func (c *Config) SanitizeLogging() []string {
	var warnings []string

	switch strings.ToUpper(c.LogLevel) {
	case "DEBUG", "INFO", "WARN", "ERROR":
	default:
		warnings = append(warnings, fmt.Sprintf("ignoring LOG_LEVEL %q, using %s", c.LogLevel, defaultLogLevel))
		c.LogLevel = defaultLogLevel
	}

	switch strings.ToLower(c.LogFormat) {
	case "json", "text":
	default:
		warnings = append(warnings, fmt.Sprintf("ignoring LOG_FORMAT %q, using %s", c.LogFormat, defaultLogFormat))
		c.LogFormat = defaultLogFormat
	}

	return warnings
}

// EffectiveLogLevel returns DEBUG when verbose output was requested
func (c *Config) EffectiveLogLevel() string {
	if c.Verbose {
		return "DEBUG"
	}
	return c.LogLevel
}

// getEnv gets an environment variable with a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvBool gets a boolean environment variable with a default value
func getEnvBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	valueStr = strings.ToLower(valueStr)
	return valueStr == "true" || valueStr == "1" || valueStr == "yes"
}
