// Package cliconfig provides configuration types and loading for the ulidkit CLI.
//
// It implements a layered configuration system with the following precedence
// (highest to lowest):
//
//  1. Command-line flags
//  2. Environment variables (ULIDKIT_* prefix)
//  3. Explicit config file (--config or ULIDKIT_CONFIG)
//  4. Local config file (.ulidkit.yaml in current directory)
//  5. Global config file (~/.config/ulidkit/config.yaml)
//  6. Default values
//
// The package handles configuration discovery, loading, merging, and validation.
// It tracks the source of each configuration value for debugging purposes.
//
// Key types:
//
//   - Config: Complete configuration structure for the CLI
//   - ConfigError: A config file error with line information
//
// Key functions:
//
//   - LoadAll: Loads and merges configuration from all file and env sources
//   - LoadConfigFile: Loads a single YAML file
//   - LoadEnvConfig: Applies environment variable overrides
//   - MergeConfig: Overlays one Config onto another
package cliconfig
