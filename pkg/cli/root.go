package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fuxingloh/ulidkit/internal/cliconfig"
	"github.com/fuxingloh/ulidkit/pkg/logging"
	"github.com/spf13/cobra"
)

var (
	// Version is injected during build
	Version = "dev"
	// Commit is injected during build
	Commit = "none"
	// BuildDate is injected during build
	BuildDate = "unknown"
)

// rootOptions carries the persistent flags and the state they resolve to.
// PersistentPreRunE fills cfg and logger before any subcommand runs.
type rootOptions struct {
	configPath string
	jsonOutput bool
	logLevel   string
	logFormat  string
	logFile    string

	cfg     *cliconfig.Config
	logger  *slog.Logger
	logSink io.Closer
}

// Execute builds the command tree and runs it with os.Args.
func Execute(ctx context.Context) error {
	root, opts := newRootCmd()
	defer opts.close()
	return root.ExecuteContext(ctx)
}

// NewRootCmd constructs the ulidkit command tree.
func NewRootCmd() *cobra.Command {
	root, _ := newRootCmd()
	return root
}

func newRootCmd() (*cobra.Command, *rootOptions) {
	opts := &rootOptions{
		cfg:    cliconfig.NewDefault(),
		logger: logging.Nop(),
	}

	root := &cobra.Command{
		Use:   "ulidkit",
		Short: "Generate, inspect and convert ULIDs",
		Long: `ulidkit creates and decodes ULIDs (Universally Unique Lexicographically
Sortable Identifiers) and works with Crockford Base32.

Configuration can be provided via flags, environment variables (ULIDKIT_*),
or YAML files: ~/.config/ulidkit/config.yaml, .ulidkit.yaml in the current
directory, or the file named by --config.`,
		SilenceUsage:      true,
		SilenceErrors:     true, // main prints the error
		PersistentPreRunE: opts.setup,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&opts.configPath, "config", "", "Config file path")
	pf.BoolVar(&opts.jsonOutput, "json", false, "Output command results in JSON format")
	pf.StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn, error (default warn)")
	pf.StringVar(&opts.logFormat, "log-format", "", "Log format: text or json (default text)")
	pf.StringVar(&opts.logFile, "log-file", "", "Also write JSON logs to this file")

	root.AddCommand(
		newGenerateCmd(opts),
		newParseCmd(opts),
		newShortCmd(opts),
		newConvertCmd(opts),
		newUUIDCmd(opts),
		newValidateCmd(opts),
		newBase32Cmd(opts),
		newConfigCmd(opts),
		newVersionCmd(opts),
		newCompletionCmd(),
	)
	root.SetHelpCommand(newHelpCmd())
	root.CompletionOptions.DisableDefaultCmd = true
	return root, opts
}

// setup loads layered configuration, overlays the persistent flags, and
// builds the logger.
func (o *rootOptions) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := cliconfig.LoadAll(o.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("json") {
		cfg.JSON = o.jsonOutput
		cfg.SetSource("json", cliconfig.SourceFlag)
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = o.logLevel
		cfg.SetSource("logLevel", cliconfig.SourceFlag)
	}
	if flags.Changed("log-format") {
		cfg.LogFormat = o.logFormat
		cfg.SetSource("logFormat", cliconfig.SourceFlag)
	}
	if flags.Changed("log-file") {
		cfg.LogFile = o.logFile
		cfg.SetSource("logFile", cliconfig.SourceFlag)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logCfg := logging.Config{
		Level:  logging.ParseLevel(cfg.LogLevel),
		Format: logging.ParseFormat(cfg.LogFormat),
		Output: cmd.ErrOrStderr(),
	}
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		o.logSink = f
		logCfg.Tee = f
	}

	o.cfg = cfg
	o.logger = logging.New(logCfg).With("cmd", cmd.Name())
	for _, key := range cliconfig.Keys {
		o.logger.Debug("config value", "key", key, "source", cfg.SourceOf(key))
	}
	if cfg.ConfigFile != "" {
		o.logger.Debug("loaded config file", "path", cfg.ConfigFile)
	}
	return nil
}

func (o *rootOptions) close() {
	if o.logSink != nil {
		_ = o.logSink.Close()
		o.logSink = nil
	}
}
