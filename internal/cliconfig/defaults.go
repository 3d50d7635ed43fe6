package cliconfig

// DefaultCount is the number of IDs generated per invocation.
const DefaultCount = 1

// MaxCount bounds a single generate invocation.
const MaxCount = 1_000_000

// DefaultLogLevel keeps stderr quiet unless something goes wrong.
const DefaultLogLevel = "warn"

// DefaultLogFormat is the default log output format.
const DefaultLogFormat = "text"

// NewDefault creates a new Config with default values.
func NewDefault() *Config {
	cfg := &Config{
		Count:     DefaultCount,
		LogLevel:  DefaultLogLevel,
		LogFormat: DefaultLogFormat,
		Sources:   make(map[string]string),
	}

	// Mark all as default source
	for _, key := range Keys {
		cfg.Sources[key] = SourceDefault
	}

	return cfg
}
