package cliconfig

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Environment variable names
const (
	EnvLowercase = "ULIDKIT_LOWERCASE"
	EnvMonotonic = "ULIDKIT_MONOTONIC"
	EnvStrict    = "ULIDKIT_STRICT"
	EnvCount     = "ULIDKIT_COUNT"
	EnvJSON      = "ULIDKIT_JSON"
	EnvLogLevel  = "ULIDKIT_LOG_LEVEL"
	EnvLogFormat = "ULIDKIT_LOG_FORMAT"
	EnvLogFile   = "ULIDKIT_LOG_FILE"
	EnvConfig    = "ULIDKIT_CONFIG"
)

// LoadEnvConfig loads configuration from environment variables.
// It only sets values that are present in the environment.
func LoadEnvConfig(cfg *Config) error {
	// ULIDKIT_COUNT
	if v := os.Getenv(EnvCount); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %q is not an integer", EnvCount, v)
		}
		cfg.Count = n
		cfg.SetSource("count", SourceEnv)
	}

	// ULIDKIT_LOG_LEVEL
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
		cfg.SetSource("logLevel", SourceEnv)
	}

	// ULIDKIT_LOG_FORMAT
	if v := os.Getenv(EnvLogFormat); v != "" {
		cfg.LogFormat = v
		cfg.SetSource("logFormat", SourceEnv)
	}

	// ULIDKIT_LOG_FILE
	if v := os.Getenv(EnvLogFile); v != "" {
		cfg.LogFile = v
		cfg.SetSource("logFile", SourceEnv)
	}

	for _, b := range []struct {
		env, key string
		dst      *bool
	}{
		{EnvLowercase, "lowercase", &cfg.Lowercase},
		{EnvMonotonic, "monotonic", &cfg.Monotonic},
		{EnvStrict, "strict", &cfg.Strict},
		{EnvJSON, "json", &cfg.JSON},
	} {
		if v := os.Getenv(b.env); v != "" {
			parsed, err := parseBool(v)
			if err != nil {
				return fmt.Errorf("%s: %q is not a boolean", b.env, v)
			}
			*b.dst = parsed
			cfg.SetSource(b.key, SourceEnv)
		}
	}

	return nil
}

// parseBool accepts everything strconv.ParseBool does plus yes/no and on/off.
func parseBool(v string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "yes", "on":
		return true, nil
	case "no", "off":
		return false, nil
	}
	return strconv.ParseBool(strings.TrimSpace(v))
}
