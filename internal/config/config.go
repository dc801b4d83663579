package config

import "os"

// Config holds all ipaudit configuration.
type Config struct {
	// File is the workbook path used when the CLI receives no positional
	// argument. Empty means no fallback is configured.
	File     string
	Sheet    string
	LogLevel string // "debug", "info", "warn", "error"
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		File:     os.Getenv("IPAUDIT_FILE"),
		Sheet:    getenv("IPAUDIT_SHEET", "Sheet1"),
		LogLevel: getenv("IPAUDIT_LOG_LEVEL", "info"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
