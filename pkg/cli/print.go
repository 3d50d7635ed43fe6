package cli

import (
	"io"

	"github.com/fuxingloh/ulidkit/pkg/cli/internal/output"
	"github.com/spf13/cobra"
)

// printResult outputs a command result.
//
// Contract: when JSON output is active, ONLY the JSON encoding of data is
// written to stdout. Human-readable prose (progress messages, hints) must go
// to stderr or be omitted entirely. textFn is called only in text mode.
func (o *rootOptions) printResult(cmd *cobra.Command, data any, textFn func(w io.Writer) error) error {
	if o.cfg.JSON {
		return output.JSON(cmd.OutOrStdout(), data)
	}
	return textFn(cmd.OutOrStdout())
}
