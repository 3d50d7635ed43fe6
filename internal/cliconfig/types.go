package cliconfig

// Config represents the complete configuration for the ulidkit CLI.
type Config struct {
	// Generation settings
	Lowercase bool `yaml:"lowercase" json:"lowercase"`
	Monotonic bool `yaml:"monotonic" json:"monotonic"`
	Strict    bool `yaml:"strict" json:"strict"`
	Count     int  `yaml:"count" json:"count"`

	// Output settings
	JSON bool `yaml:"json" json:"json"`

	// Logging settings
	LogLevel  string `yaml:"logLevel" json:"logLevel"`
	LogFormat string `yaml:"logFormat" json:"logFormat"`
	LogFile   string `yaml:"logFile,omitempty" json:"logFile,omitempty"`

	// ConfigFile is the explicit file requested via --config or
	// ULIDKIT_CONFIG. It is not read from files.
	ConfigFile string `yaml:"-" json:"configFile,omitempty"`

	// Sources tracks where each value came from (for debugging)
	Sources map[string]string `yaml:"-" json:"-"`

	// SetFields records which keys were present in a loaded file, so an
	// explicit false can override an earlier true.
	SetFields map[string]bool `yaml:"-" json:"-"`
}

// ConfigSource identifies where a config value originated.
const (
	SourceDefault = "default"
	SourceGlobal  = "global"
	SourceLocal   = "local"
	SourceFile    = "file"
	SourceEnv     = "env"
	SourceFlag    = "flag"
)

// Keys lists the configuration keys in display order.
var Keys = []string{
	"lowercase",
	"monotonic",
	"strict",
	"count",
	"json",
	"logLevel",
	"logFormat",
	"logFile",
}

// SourceOf returns where key was last set, or SourceDefault.
func (c *Config) SourceOf(key string) string {
	if src, ok := c.Sources[key]; ok {
		return src
	}
	return SourceDefault
}

// SetSource records that key was set from source.
func (c *Config) SetSource(key, source string) {
	if c.Sources == nil {
		c.Sources = make(map[string]string)
	}
	c.Sources[key] = source
}
