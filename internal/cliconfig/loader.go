package cliconfig

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// GlobalConfigDir is the directory for global config
	GlobalConfigDir = "ulidkit"
)

// LocalConfigFileNames are the names to search for local config (in order).
var LocalConfigFileNames = []string{".ulidkit.yaml", ".ulidkit.yml"}

// GlobalConfigFileNames are the names to search for global config (in order).
var GlobalConfigFileNames = []string{"config.yaml", "config.yml"}

// FindLocalConfig searches for .ulidkit.yaml or .ulidkit.yml in the current directory.
func FindLocalConfig() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for _, name := range LocalConfigFileNames {
		path := filepath.Join(cwd, name)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", nil
}

// FindGlobalConfig returns the path to the global config file.
// Returns empty string if not found.
func FindGlobalConfig() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		//nolint:nilerr // no config dir means no global config
		return "", nil
	}
	for _, name := range GlobalConfigFileNames {
		path := filepath.Join(configDir, GlobalConfigDir, name)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", nil
}

// LoadConfigFile loads a Config from a YAML file. Unknown keys are errors.
func LoadConfigFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, newConfigError(path, err)
	}

	var keys map[string]any
	if err := yaml.Unmarshal(data, &keys); err != nil {
		return nil, newConfigError(path, err)
	}
	cfg.SetFields = make(map[string]bool, len(keys))
	for k := range keys {
		cfg.SetFields[k] = true
	}

	cfg.Sources = make(map[string]string)
	return &cfg, nil
}

// ConfigError represents a configuration file error with location info.
type ConfigError struct {
	Path    string
	Line    int
	Message string
}

func (e *ConfigError) Error() string {
	if e.Line > 0 {
		return e.Path + " (line " + strconv.Itoa(e.Line) + "): " + e.Message
	}
	return e.Path + ": " + e.Message
}

var yamlLine = regexp.MustCompile(`line (\d+): `)

// newConfigError lifts the first "line N:" out of a yaml.v3 error so the
// message reads the same for syntax and type errors.
func newConfigError(path string, err error) *ConfigError {
	msg := err.Error()
	ce := &ConfigError{Path: path, Message: msg}
	if loc := yamlLine.FindStringSubmatchIndex(msg); loc != nil {
		ce.Line, _ = strconv.Atoi(msg[loc[2]:loc[3]])
		ce.Message = msg[loc[1]:]
		if nl := strings.IndexByte(ce.Message, '\n'); nl >= 0 {
			ce.Message = ce.Message[:nl]
		}
	}
	return ce
}

// LoadAll loads configuration from files and the environment and merges
// them. explicitPath, usually the --config flag, overrides ULIDKIT_CONFIG;
// it must exist. Flags are applied by the caller.
// Precedence: env > explicit file > local config > global config > defaults
func LoadAll(explicitPath string) (*Config, error) {
	// Start with defaults
	cfg := NewDefault()

	if globalPath, err := FindGlobalConfig(); err == nil && globalPath != "" {
		globalCfg, err := LoadConfigFile(globalPath)
		if err != nil {
			return nil, err
		}
		MergeConfig(cfg, globalCfg, SourceGlobal)
	}

	localPath, err := FindLocalConfig()
	if err != nil {
		return nil, fmt.Errorf("finding local config: %w", err)
	}
	if localPath != "" {
		localCfg, err := LoadConfigFile(localPath)
		if err != nil {
			return nil, err
		}
		MergeConfig(cfg, localCfg, SourceLocal)
	}

	if explicitPath == "" {
		explicitPath = os.Getenv(EnvConfig)
	}
	if explicitPath != "" {
		fileCfg, err := LoadConfigFile(explicitPath)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("config file %s not found", explicitPath)
			}
			return nil, err
		}
		MergeConfig(cfg, fileCfg, SourceFile)
		cfg.ConfigFile = explicitPath
	}

	if err := LoadEnvConfig(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
