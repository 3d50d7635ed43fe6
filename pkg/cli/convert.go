package cli

import (
	"fmt"
	"io"

	"github.com/fuxingloh/ulidkit/pkg/ulid"
	"github.com/fuxingloh/ulidkit/pkg/util"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// ConvertOutput is the JSON form of one conversion.
type ConvertOutput struct {
	Input  string `json:"input"`
	From   string `json:"from"`
	Output string `json:"output"`
	Time   string `json:"time,omitempty"`
}

// convertID turns a ULID into its UUID form and a UUID into its ULID form.
// Both share the same 16 bytes.
func convertID(s string, lower bool) (ConvertOutput, error) {
	if len(s) == ulid.EncodedSize {
		id, err := ulid.Parse(s)
		if err != nil {
			return ConvertOutput{}, fmt.Errorf("convert %q: %w", util.Truncate(s, 0), err)
		}
		return ConvertOutput{Input: s, From: "ulid", Output: id.UUID().String(), Time: formatTime(id.Time())}, nil
	}

	u, err := uuid.Parse(s)
	if err != nil {
		return ConvertOutput{}, fmt.Errorf("convert %q: %w", util.Truncate(s, 0), ErrUnknownIDFormat)
	}
	id := ulid.FromUUID(u)
	out := ConvertOutput{Input: s, From: "uuid", Output: id.String(), Time: formatTime(id.Time())}
	if lower {
		out.Output = id.LowerString()
	}
	return out, nil
}

func newConvertCmd(root *rootOptions) *cobra.Command {
	var lower bool
	cmd := &cobra.Command{
		Use:   "convert <ulid|uuid>...",
		Short: "Convert between ULID and UUID",
		Long: `Convert each argument to the other representation of the same 128 bits.
A 26-character argument is read as a ULID and printed as a UUID; anything
else is read as a UUID (any form google/uuid accepts) and printed as a ULID.`,
		Example: `  ulidkit convert 01ARZ3NDEKTSV4RRFFQ69G5FAV
  ulidkit convert 01563e3a-b5d3-d676-4c61-efb99302bd5b`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("lowercase") {
				lower = root.cfg.Lowercase
			}
			results := make([]ConvertOutput, 0, len(args))
			for _, arg := range args {
				out, err := convertID(arg, lower)
				if err != nil {
					return err
				}
				root.logger.Debug("converted", "from", out.From, "input", util.Truncate(arg, 0))
				results = append(results, out)
			}

			var data any = results
			if len(results) == 1 {
				data = results[0]
			}
			return root.printResult(cmd, data, func(w io.Writer) error {
				for _, r := range results {
					if _, err := fmt.Fprintln(w, r.Output); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}
	cmd.Flags().BoolVarP(&lower, "lowercase", "l", false, "Print ULIDs in lowercase")
	return cmd
}
