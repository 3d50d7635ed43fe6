package cli

import (
	"encoding/hex"
	"fmt"
	"io"
	"time"

	"github.com/fuxingloh/ulidkit/internal/id"
	"github.com/fuxingloh/ulidkit/pkg/cli/internal/output"
	"github.com/fuxingloh/ulidkit/pkg/ulid"
	"github.com/fuxingloh/ulidkit/pkg/util"
	"github.com/spf13/cobra"
)

// timeLayout is RFC 3339 at millisecond precision, the resolution a ULID
// carries.
const timeLayout = "2006-01-02T15:04:05.000Z07:00"

// ParseOutput is the JSON form of one decoded ULID.
type ParseOutput struct {
	ULID   string `json:"ulid"`
	Time   string `json:"time"`
	Millis uint64 `json:"millis"`
	Random string `json:"random"`
	UUID   string `json:"uuid"`
}

func newParseOutput(v ulid.ULID) ParseOutput {
	return ParseOutput{
		ULID:   v.String(),
		Time:   formatTime(v.Time()),
		Millis: v.Millis(),
		Random: hex.EncodeToString(v.Random()),
		UUID:   v.UUID().String(),
	}
}

func newParseCmd(root *rootOptions) *cobra.Command {
	var local, timeOnly bool
	cmd := &cobra.Command{
		Use:     "parse <ulid>...",
		Aliases: []string{"inspect"},
		Short:   "Decode ULIDs",
		Long: `Decode one or more ULIDs and show the embedded timestamp, the random
part in hex, and the equivalent UUID. Input is case-insensitive and accepts
the Crockford aliases O, I, L and U.`,
		Example: `  ulidkit parse 01ARZ3NDEKTSV4RRFFQ69G5FAV
  ulidkit parse --json 01ARZ3NDEKTSV4RRFFQ69G5FAV
  ulidkit parse --time-only 01ARZ3NDEKTSV4RRFFQ69G5FAV`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if timeOnly {
				return runParseTimes(cmd, root, args, local)
			}
			results := make([]ParseOutput, 0, len(args))
			for _, arg := range args {
				v, err := ulid.Parse(arg)
				if err != nil {
					return fmt.Errorf("parse %q: %w", util.Truncate(arg, 0), err)
				}
				out := newParseOutput(v)
				if local {
					out.Time = v.Time().Local().Format(timeLayout)
				}
				root.logger.Debug("parsed", "input", util.Truncate(arg, 0), "millis", out.Millis)
				results = append(results, out)
			}

			var data any = results
			if len(results) == 1 {
				data = results[0]
			}
			return root.printResult(cmd, data, func(w io.Writer) error {
				tw := output.Table(w)
				fmt.Fprintln(tw, "ULID\tTIME\tMILLIS\tRANDOM\tUUID")
				for _, r := range results {
					fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%s\n", r.ULID, r.Time, r.Millis, r.Random, r.UUID)
				}
				return tw.Flush()
			})
		},
	}
	cmd.Flags().BoolVar(&local, "local", false, "Show times in the local time zone instead of UTC")
	cmd.Flags().BoolVarP(&timeOnly, "time-only", "t", false, "Print only the embedded timestamps")
	return cmd
}

// runParseTimes prints one timestamp per argument.
func runParseTimes(cmd *cobra.Command, root *rootOptions, args []string, local bool) error {
	times := make([]string, 0, len(args))
	for _, arg := range args {
		t, err := id.ULIDTime(arg)
		if err != nil {
			return fmt.Errorf("parse %q: %w", util.Truncate(arg, 0), err)
		}
		if local {
			times = append(times, t.Local().Format(timeLayout))
		} else {
			times = append(times, formatTime(t))
		}
	}
	root.logger.Debug("parsed timestamps", "count", len(times))

	var data any = times
	if len(times) == 1 {
		data = times[0]
	}
	return root.printResult(cmd, data, func(w io.Writer) error {
		for _, t := range times {
			if _, err := fmt.Fprintln(w, t); err != nil {
				return err
			}
		}
		return nil
	})
}

// formatTime renders t the way parse does.
func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}
