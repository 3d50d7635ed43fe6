package cli

import (
	"bufio"
	"fmt"
	"io"
	"math/rand/v2"
	"strconv"
	"strings"
	"time"

	"github.com/fuxingloh/ulidkit/internal/cliconfig"
	"github.com/fuxingloh/ulidkit/internal/id"
	"github.com/fuxingloh/ulidkit/pkg/ulid"
	"github.com/fuxingloh/ulidkit/pkg/util"
	"github.com/spf13/cobra"
)

type generateOptions struct {
	count     int
	monotonic bool
	strict    bool
	lowercase bool
	at        string
	seed      uint64
	seeded    bool
}

func newGenerateCmd(root *rootOptions) *cobra.Command {
	opts := &generateOptions{}
	cmd := &cobra.Command{
		Use:     "generate",
		Aliases: []string{"gen", "new"},
		Short:   "Generate ULIDs",
		Long: `Generate one or more ULIDs.

By default IDs come from a process-wide generator that is always strictly
monotonic: IDs minted within the same millisecond increase by one, and an
exhausted millisecond waits for the next one.

With --seed or --time a private generator is used. There, --monotonic makes
IDs within a millisecond increase by one, and --strict fails instead of
wrapping when the random part of a millisecond is exhausted.`,
		Example: `  ulidkit generate
  ulidkit generate -n 5 --monotonic
  ulidkit generate --time 2016-07-30T23:54:10.259Z --seed 42 --lowercase`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd, root, opts)
		},
	}

	f := cmd.Flags()
	f.IntVarP(&opts.count, "count", "n", cliconfig.DefaultCount, "Number of IDs to generate")
	f.BoolVarP(&opts.monotonic, "monotonic", "m", false, "Increment within the same millisecond")
	f.BoolVar(&opts.strict, "strict", false, "Fail on monotonic overflow (implies --monotonic)")
	f.BoolVarP(&opts.lowercase, "lowercase", "l", false, "Print lowercase IDs")
	f.StringVar(&opts.at, "time", "", "Fixed timestamp (RFC 3339 or Unix milliseconds)")
	f.Uint64Var(&opts.seed, "seed", 0, "Seed a deterministic random source")
	return cmd
}

func runGenerate(cmd *cobra.Command, root *rootOptions, opts *generateOptions) error {
	cfg := root.cfg
	flags := cmd.Flags()
	if flags.Changed("count") {
		cfg.Count = opts.count
		cfg.SetSource("count", cliconfig.SourceFlag)
	}
	if flags.Changed("monotonic") {
		cfg.Monotonic = opts.monotonic
		cfg.SetSource("monotonic", cliconfig.SourceFlag)
	}
	if flags.Changed("strict") {
		cfg.Strict = opts.strict
		cfg.SetSource("strict", cliconfig.SourceFlag)
	}
	if flags.Changed("lowercase") {
		cfg.Lowercase = opts.lowercase
		cfg.SetSource("lowercase", cliconfig.SourceFlag)
	}
	if cfg.Count < 1 || cfg.Count > cliconfig.MaxCount {
		return fmt.Errorf("%w: %d (1-%d)", ErrCountOutOfRange, cfg.Count, cliconfig.MaxCount)
	}
	opts.seeded = flags.Changed("seed")
	if cfg.Strict && !cfg.Monotonic {
		root.logger.Warn("strict implies monotonic", "source", cfg.SourceOf("strict"))
		cfg.Monotonic = true
	}

	next, err := opts.source(cfg)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	ids := make([]ulid.ULID, 0, cfg.Count)
	for i := range cfg.Count {
		if ctx != nil && i%4096 == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		v, err := next()
		if err != nil {
			return fmt.Errorf("generating ID %d of %d: %w", i+1, cfg.Count, err)
		}
		ids = append(ids, v)
	}
	root.logger.Info("generated", "count", len(ids), "monotonic", cfg.Monotonic, "strict", cfg.Strict)

	format := ulid.ULID.String
	if cfg.Lowercase {
		format = ulid.ULID.LowerString
	}
	texts := make([]string, len(ids))
	for i, v := range ids {
		texts[i] = format(v)
	}

	return root.printResult(cmd, texts, func(w io.Writer) error {
		bw := bufio.NewWriter(w)
		for _, s := range texts {
			bw.WriteString(s)
			bw.WriteByte('\n')
		}
		return bw.Flush()
	})
}

// source picks the generator for one run. Without --seed or --time IDs come
// from the process-wide generator, which is always strictly monotonic and
// waits out an exhausted millisecond instead of failing. --seed and --time
// build a private generator that honors --monotonic and --strict.
func (opts *generateOptions) source(cfg *cliconfig.Config) (func() (ulid.ULID, error), error) {
	if !opts.seeded && opts.at == "" {
		return func() (ulid.ULID, error) { return id.NewULID(), nil }, nil
	}

	var genOpts []ulid.Option
	if opts.seeded {
		genOpts = append(genOpts, ulid.WithSource(rand.New(rand.NewPCG(opts.seed, opts.seed))))
	}
	if opts.at != "" {
		at, err := parseTime(opts.at)
		if err != nil {
			return nil, err
		}
		genOpts = append(genOpts, ulid.WithClock(func() time.Time { return at }))
	}
	gen := ulid.NewGenerator(genOpts...)

	if !cfg.Monotonic {
		return gen.Next, nil
	}
	var monoOpts []ulid.MonotonicOption
	if cfg.Strict {
		monoOpts = append(monoOpts, ulid.WithStrict())
	}
	return ulid.NewMonotonic(gen, monoOpts...).Next, nil
}

// parseTime accepts RFC 3339 (with optional fraction) or Unix milliseconds.
func parseTime(s string) (time.Time, error) {
	if strings.IndexFunc(s, func(r rune) bool { return r < '0' || r > '9' }) < 0 {
		ms, err := strconv.ParseUint(s, 10, 64)
		if err != nil || ms > ulid.MaxTime {
			return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidTimestamp, util.Truncate(s, 0))
		}
		return ulid.MillisTime(ms), nil
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidTimestamp, util.Truncate(s, 0))
	}
	if t.Before(time.UnixMilli(0)) || ulid.Timestamp(t) > ulid.MaxTime {
		return time.Time{}, fmt.Errorf("%w: %q is outside 1970 to year 10889", ErrInvalidTimestamp, util.Truncate(s, 0))
	}
	return t, nil
}
