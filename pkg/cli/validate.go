package cli

import (
	"fmt"
	"io"
	"slices"

	"github.com/fuxingloh/ulidkit/internal/id"
	"github.com/fuxingloh/ulidkit/pkg/cli/internal/output"
	"github.com/fuxingloh/ulidkit/pkg/ulid"
	"github.com/fuxingloh/ulidkit/pkg/util"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// ID kinds accepted by validate --kind.
const (
	kindAuto  = "auto"
	kindULID  = "ulid"
	kindShort = "short"
	kindUUID  = "uuid"
)

var validateKinds = []string{kindAuto, kindULID, kindShort, kindUUID}

// ValidateOutput is the JSON form of one validate result.
type ValidateOutput struct {
	Input string `json:"input"`
	Kind  string `json:"kind"`
	Valid bool   `json:"valid"`
}

// detectKind guesses the kind of s from its length.
func detectKind(s string) string {
	switch len(s) {
	case ulid.EncodedSize:
		return kindULID
	case id.ShortLength:
		return kindShort
	}
	return kindUUID
}

// validID reports whether s is a valid id of kind. With canonical, ULIDs
// must be upper case without aliases and UUIDs lowercase and hyphenated.
func validID(kind, s string, canonical bool) bool {
	switch kind {
	case kindULID:
		if canonical {
			return id.IsCanonicalULID(s)
		}
		return id.IsValidULID(s)
	case kindShort:
		return id.IsValidShort(s)
	case kindUUID:
		if canonical {
			return id.IsValidUUID(s)
		}
		_, err := uuid.Parse(s)
		return err == nil
	}
	return false
}

func newValidateCmd(root *rootOptions) *cobra.Command {
	var (
		kind      string
		canonical bool
	)
	cmd := &cobra.Command{
		Use:   "validate <id>...",
		Short: "Check ULIDs, short ids and UUIDs",
		Long: `Check that each argument is a well-formed id. The kind is guessed from the
length (26 characters: ULID, 12: short id, otherwise UUID) unless --kind is
given. With --canonical, ULIDs must be upper case without Crockford aliases
and UUIDs lowercase and hyphenated.

Exits non-zero if any argument is invalid.`,
		Example: `  ulidkit validate 01ARZ3NDEKTSV4RRFFQ69G5FAV
  ulidkit validate --canonical 01arz3ndektsv4rrffq69g5fav`,
		Args: cobra.MinimumNArgs(1),
		ValidArgsFunction: func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
			return nil, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(validateKinds, kind) {
				return fmt.Errorf("unknown --kind %q: want auto, ulid, short or uuid", kind)
			}

			results := make([]ValidateOutput, 0, len(args))
			invalid := 0
			for _, arg := range args {
				k := kind
				if k == kindAuto {
					k = detectKind(arg)
				}
				ok := validID(k, arg, canonical)
				if !ok {
					invalid++
				}
				results = append(results, ValidateOutput{Input: util.Truncate(arg, 0), Kind: k, Valid: ok})
			}
			root.logger.Debug("validated", "count", len(results), "invalid", invalid)

			var data any = results
			if len(results) == 1 {
				data = results[0]
			}
			err := root.printResult(cmd, data, func(w io.Writer) error {
				tw := output.Table(w)
				fmt.Fprintln(tw, "INPUT\tKIND\tVALID")
				for _, r := range results {
					fmt.Fprintf(tw, "%s\t%s\t%t\n", r.Input, r.Kind, r.Valid)
				}
				return tw.Flush()
			})
			if err != nil {
				return err
			}
			if invalid > 0 {
				return fmt.Errorf("%w: %d of %d", ErrInvalidID, invalid, len(results))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&kind, "kind", kindAuto, "Id kind: auto, ulid, short or uuid")
	cmd.Flags().BoolVar(&canonical, "canonical", false, "Require the canonical text form")
	_ = cmd.RegisterFlagCompletionFunc("kind", cobra.FixedCompletions(validateKinds, cobra.ShellCompDirectiveNoFileComp))
	return cmd
}
