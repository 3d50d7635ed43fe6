package cli

import (
	"encoding/hex"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fuxingloh/ulidkit/internal/cliconfig"
	"github.com/fuxingloh/ulidkit/internal/id"
	"github.com/spf13/cobra"
)

type uuidOptions struct {
	count    int
	base64   bool
	millis   bool
	fromInts string
	fromHex  string
}

func newUUIDCmd(root *rootOptions) *cobra.Command {
	opts := &uuidOptions{}
	cmd := &cobra.Command{
		Use:   "uuid",
		Short: "Generate or build UUIDs",
		Long: `Generate random version 4 UUIDs, or build one UUID from raw parts.

--base64 prints each random UUID as 22 characters of URL-safe Base64.
--millis puts the current Unix time in milliseconds in the first 64 bits.
--from-ints takes four 32-bit words, most significant first.
--from-hex takes 16 bytes as 32 hex digits; dashes are ignored.`,
		Example: `  ulidkit uuid -n 3
  ulidkit uuid --base64
  ulidkit uuid --from-ints 1000,0,2043,0
  ulidkit uuid --from-hex 01563e3ab5d3d6764c61efb99302bd5b`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("count") {
				opts.count = root.cfg.Count
			}
			ids, err := opts.build()
			if err != nil {
				return err
			}
			root.logger.Info("generated uuids", "count", len(ids))

			return root.printResult(cmd, ids, func(w io.Writer) error {
				_, err := io.WriteString(w, strings.Join(ids, "\n")+"\n")
				return err
			})
		},
	}

	f := cmd.Flags()
	f.IntVarP(&opts.count, "count", "n", cliconfig.DefaultCount, "Number of random UUIDs to generate")
	f.BoolVar(&opts.base64, "base64", false, "Print random UUIDs as URL-safe Base64")
	f.BoolVar(&opts.millis, "millis", false, "Prefix random UUIDs with the Unix time in milliseconds")
	f.StringVar(&opts.fromInts, "from-ints", "", "Build a UUID from four comma-separated 32-bit words (decimal or 0x hex)")
	f.StringVar(&opts.fromHex, "from-hex", "", "Build a UUID from 32 hex digits")
	cmd.MarkFlagsMutuallyExclusive("base64", "millis", "from-ints", "from-hex")
	cmd.MarkFlagsMutuallyExclusive("count", "from-ints")
	cmd.MarkFlagsMutuallyExclusive("count", "from-hex")
	return cmd
}

func (o *uuidOptions) build() ([]string, error) {
	switch {
	case o.fromInts != "":
		words, err := parseWords(o.fromInts)
		if err != nil {
			return nil, err
		}
		return []string{id.CreateUUIDFromInts(words[0], words[1], words[2], words[3])}, nil

	case o.fromHex != "":
		b, err := hex.DecodeString(strings.ReplaceAll(o.fromHex, "-", ""))
		if err != nil {
			return nil, fmt.Errorf("%w: --from-hex: %v", ErrInvalidUUIDParts, err)
		}
		s, err := id.CreateUUIDFromBytes(b)
		if err != nil {
			return nil, fmt.Errorf("%w: --from-hex: %v", ErrInvalidUUIDParts, err)
		}
		return []string{s}, nil
	}

	if o.count < 1 || o.count > cliconfig.MaxCount {
		return nil, fmt.Errorf("%w: %d (1-%d)", ErrCountOutOfRange, o.count, cliconfig.MaxCount)
	}
	gen := id.UUID
	switch {
	case o.base64:
		gen = id.UUIDBase64
	case o.millis:
		gen = id.MillisUUID
	}
	ids := make([]string, o.count)
	for i := range ids {
		ids[i] = gen()
	}
	return ids, nil
}

// parseWords reads exactly four comma-separated 32-bit unsigned words.
func parseWords(s string) ([4]uint32, error) {
	var words [4]uint32
	parts := strings.Split(s, ",")
	if len(parts) != len(words) {
		return words, fmt.Errorf("%w: --from-ints wants 4 words, got %d", ErrInvalidUUIDParts, len(parts))
	}
	for i, p := range parts {
		v, err := strconv.ParseUint(strings.TrimSpace(p), 0, 32)
		if err != nil {
			return words, fmt.Errorf("%w: --from-ints word %d: %q is not a 32-bit unsigned integer", ErrInvalidUUIDParts, i+1, p)
		}
		words[i] = uint32(v)
	}
	return words, nil
}
