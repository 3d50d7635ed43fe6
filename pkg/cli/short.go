package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/fuxingloh/ulidkit/internal/cliconfig"
	"github.com/fuxingloh/ulidkit/internal/id"
	"github.com/spf13/cobra"
)

func newShortCmd(root *rootOptions) *cobra.Command {
	var count int
	cmd := &cobra.Command{
		Use:   "short",
		Short: "Generate short random IDs",
		Long: `Generate 12-character lowercase Crockford Base32 IDs carrying 56 random
bits. They do not sort by time; use generate for that.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("count") {
				count = root.cfg.Count
			}
			if count < 1 || count > cliconfig.MaxCount {
				return fmt.Errorf("%w: %d (1-%d)", ErrCountOutOfRange, count, cliconfig.MaxCount)
			}

			ids := make([]string, count)
			for i := range ids {
				ids[i] = id.Short()
			}
			root.logger.Info("generated short ids", "count", count)

			return root.printResult(cmd, ids, func(w io.Writer) error {
				_, err := io.WriteString(w, strings.Join(ids, "\n")+"\n")
				return err
			})
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", cliconfig.DefaultCount, "Number of IDs to generate")
	return cmd
}
