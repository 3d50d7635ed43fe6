package cli

import (
	"fmt"
	"io"

	"github.com/fuxingloh/ulidkit/internal/cliconfig"
	"github.com/fuxingloh/ulidkit/pkg/cli/internal/output"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// ConfigValue is one entry of the config --json output.
type ConfigValue struct {
	Value  any    `json:"value"`
	Source string `json:"source"`
}

func configValue(cfg *cliconfig.Config, key string) any {
	switch key {
	case "lowercase":
		return cfg.Lowercase
	case "monotonic":
		return cfg.Monotonic
	case "strict":
		return cfg.Strict
	case "count":
		return cfg.Count
	case "json":
		return cfg.JSON
	case "logLevel":
		return cfg.LogLevel
	case "logFormat":
		return cfg.LogFormat
	case "logFile":
		return cfg.LogFile
	}
	return nil
}

func newConfigCmd(root *rootOptions) *cobra.Command {
	var showSources bool
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show effective configuration",
		Long: `Display the configuration after defaults, config files, ULIDKIT_*
environment variables and flags have been merged. The output is YAML that can
be saved as .ulidkit.yaml. With --sources, show where each value came from.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := root.cfg
			values := make(map[string]ConfigValue, len(cliconfig.Keys))
			for _, key := range cliconfig.Keys {
				values[key] = ConfigValue{Value: configValue(cfg, key), Source: cfg.SourceOf(key)}
			}

			return root.printResult(cmd, values, func(w io.Writer) error {
				if showSources {
					tw := output.Table(w)
					fmt.Fprintln(tw, "KEY\tVALUE\tSOURCE")
					for _, key := range cliconfig.Keys {
						fmt.Fprintf(tw, "%s\t%v\t%s\n", key, values[key].Value, values[key].Source)
					}
					return tw.Flush()
				}

				if cfg.ConfigFile != "" {
					fmt.Fprintf(w, "# Config file: %s\n", cfg.ConfigFile)
				}
				enc := yaml.NewEncoder(w)
				enc.SetIndent(2)
				if err := enc.Encode(cfg); err != nil {
					return err
				}
				return enc.Close()
			})
		},
	}
	cmd.Flags().BoolVar(&showSources, "sources", false, "Show the source of each value")
	return cmd
}
