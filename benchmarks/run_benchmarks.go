// Package main runs the ulidkit benchmarks and writes results to JSON/Markdown.
// Run with: go run ./benchmarks
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"runtime"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/fuxingloh/ulidkit/pkg/logging"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// BenchmarkResults holds all benchmark data
type BenchmarkResults struct {
	Timestamp   string           `json:"timestamp"`
	Environment Environment      `json:"environment"`
	Suites      map[string]Suite `json:"suites"`
	Summary     Summary          `json:"summary"`
}

type Environment struct {
	OS        string `json:"os"`
	Arch      string `json:"arch"`
	CPU       string `json:"cpu"`
	NumCPU    int    `json:"num_cpu"`
	GoVersion string `json:"go_version"`
}

type Suite struct {
	Package    string      `json:"package"`
	Benchmarks []Benchmark `json:"benchmarks"`
}

type Benchmark struct {
	Name        string  `json:"name"`
	NsPerOp     float64 `json:"ns_per_op"`
	OpsPerSec   float64 `json:"ops_per_sec"`
	BytesPerOp  int64   `json:"bytes_per_op"`
	AllocsPerOp int64   `json:"allocs_per_op"`
}

// Summary picks the headline number for each operation.
type Summary struct {
	ParseNs     float64 `json:"parse_ns"`
	StringNs    float64 `json:"string_ns"`
	NewNs       float64 `json:"new_ns"`
	MonotonicNs float64 `json:"monotonic_ns"`
	EncodeNs    float64 `json:"base32_encode_64b_ns"`
	DecodeNs    float64 `json:"base32_decode_64b_ns"`
}

// suites maps a section name to the package whose benchmarks it runs.
var suites = []struct {
	name, pkg string
}{
	{"crockford", "./pkg/crockford"},
	{"ulid", "./pkg/ulid"},
	{"facade", "./internal/id"},
}

func main() {
	logCfg := logging.DefaultConfig()
	if os.Getenv("BENCH_DEBUG") != "" {
		logCfg.Level = logging.LevelDebug
	}
	logger := logging.New(logCfg)
	slog.SetDefault(logger)

	fmt.Println("==========================================")
	fmt.Println("   ULIDKIT BENCHMARK SUITE")
	fmt.Println("==========================================")
	fmt.Println()

	results := BenchmarkResults{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Environment: Environment{
			OS:        runtime.GOOS,
			Arch:      runtime.GOARCH,
			CPU:       getCPUInfo(),
			NumCPU:    runtime.NumCPU(),
			GoVersion: runtime.Version(),
		},
		Suites: make(map[string]Suite),
	}

	for _, s := range suites {
		fmt.Printf("Running %s benchmarks...\n", s.name)
		benches, err := runBenchmarks(s.pkg)
		if err != nil {
			logger.Error("benchmark run failed", "package", s.pkg, "error", err)
		}
		results.Suites[s.name] = Suite{Package: s.pkg, Benchmarks: benches}
	}

	results.Summary = calculateSummary(results.Suites)

	if err := os.MkdirAll(filepath.Join("benchmarks", "results"), 0o755); err != nil {
		logger.Error("creating results dir", "error", err)
		os.Exit(1)
	}

	jsonPath := "benchmarks/results/latest.json"
	if err := writeFile(jsonPath, func(w io.Writer) error { return writeJSON(w, results) }); err != nil {
		logger.Error("writing JSON results", "path", jsonPath, "error", err)
	}
	fmt.Printf("\nJSON results: %s\n", jsonPath)

	mdPath := "benchmarks/results/LATEST.md"
	if err := writeFile(mdPath, func(w io.Writer) error { return writeMarkdown(w, results) }); err != nil {
		logger.Error("writing Markdown results", "path", mdPath, "error", err)
	}
	fmt.Printf("Markdown results: %s\n", mdPath)

	printSummary(os.Stdout, results)
}

func getCPUInfo() string {
	if runtime.GOOS == "linux" {
		data, err := os.ReadFile("/proc/cpuinfo")
		if err == nil {
			for line := range strings.SplitSeq(string(data), "\n") {
				if strings.HasPrefix(line, "model name") {
					if _, name, ok := strings.Cut(line, ":"); ok {
						return strings.TrimSpace(name)
					}
				}
			}
		}
	}
	return "unknown"
}

func runBenchmarks(pkg string) ([]Benchmark, error) {
	cmd := exec.Command("go", "test", "-run=^$", "-bench=.", "-benchtime=1s", "-benchmem", pkg)
	output, err := cmd.CombinedOutput()
	if err != nil {
		slog.Debug("go test output", "output", string(output))
		return parseBenchmarkOutput(string(output)), fmt.Errorf("go test %s: %w", pkg, err)
	}
	return parseBenchmarkOutput(string(output)), nil
}

// benchLine matches: BenchmarkName-N    iterations    ns/op    bytes/op    allocs/op
var benchLine = regexp.MustCompile(`(Benchmark[\w/]+)-\d+\s+(\d+)\s+([\d.]+)\s+ns/op\s+(\d+)\s+B/op\s+(\d+)\s+allocs/op`)

func parseBenchmarkOutput(output string) []Benchmark {
	var benchmarks []Benchmark

	for _, match := range benchLine.FindAllStringSubmatch(output, -1) {
		nsPerOp, _ := strconv.ParseFloat(match[3], 64)
		bytesPerOp, _ := strconv.ParseInt(match[4], 10, 64)
		allocsPerOp, _ := strconv.ParseInt(match[5], 10, 64)

		opsPerSec := 0.0
		if nsPerOp > 0 {
			opsPerSec = 1e9 / nsPerOp
		}

		benchmarks = append(benchmarks, Benchmark{
			Name:        match[1],
			NsPerOp:     nsPerOp,
			OpsPerSec:   opsPerSec,
			BytesPerOp:  bytesPerOp,
			AllocsPerOp: allocsPerOp,
		})
	}

	return benchmarks
}

func calculateSummary(suites map[string]Suite) Summary {
	var summary Summary
	pick := map[string]*float64{
		"ulid/BenchmarkParse":               &summary.ParseNs,
		"ulid/BenchmarkString":              &summary.StringNs,
		"ulid/BenchmarkNew":                 &summary.NewNs,
		"ulid/BenchmarkMonotonicNext":       &summary.MonotonicNs,
		"crockford/BenchmarkEncodeToString": &summary.EncodeNs,
		"crockford/BenchmarkDecodeString":   &summary.DecodeNs,
	}
	for name, suite := range suites {
		for _, b := range suite.Benchmarks {
			if dst, ok := pick[name+"/"+b.Name]; ok {
				*dst = b.NsPerOp
			}
		}
	}
	return summary
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func writeJSON(w io.Writer, results BenchmarkResults) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(results)
}

func writeMarkdown(w io.Writer, results BenchmarkResults) error {
	var sb strings.Builder

	sb.WriteString("# ulidkit Benchmark Results\n\n")
	fmt.Fprintf(&sb, "**Generated**: %s\n\n", results.Timestamp)
	sb.WriteString("## Environment\n\n")
	fmt.Fprintf(&sb, "- **OS**: %s/%s\n", results.Environment.OS, results.Environment.Arch)
	fmt.Fprintf(&sb, "- **CPU**: %s (%d cores)\n", results.Environment.CPU, results.Environment.NumCPU)
	fmt.Fprintf(&sb, "- **Go**: %s\n\n", results.Environment.GoVersion)

	sb.WriteString("## Summary\n\n")
	sb.WriteString("| Operation | ns/op |\n")
	sb.WriteString("|-----------|-------|\n")
	for _, row := range []struct {
		name string
		ns   float64
	}{
		{"Parse", results.Summary.ParseNs},
		{"String", results.Summary.StringNs},
		{"New", results.Summary.NewNs},
		{"Monotonic next", results.Summary.MonotonicNs},
		{"Base32 encode (64 B)", results.Summary.EncodeNs},
		{"Base32 decode (64 B)", results.Summary.DecodeNs},
	} {
		fmt.Fprintf(&sb, "| %s | %.1f |\n", row.name, row.ns)
	}
	sb.WriteString("\n")

	names := make([]string, 0, len(results.Suites))
	for name := range results.Suites {
		names = append(names, name)
	}
	sort.Strings(names)

	title := cases.Title(language.English)
	for _, name := range names {
		suite := results.Suites[name]
		fmt.Fprintf(&sb, "## %s (`%s`)\n\n", title.String(name), suite.Package)
		sb.WriteString("| Benchmark | ops/sec | ns/op | B/op | allocs/op |\n")
		sb.WriteString("|-----------|---------|-------|------|----------|\n")
		for _, b := range suite.Benchmarks {
			fmt.Fprintf(&sb, "| %s | %.0f | %.1f | %d | %d |\n",
				b.Name, b.OpsPerSec, b.NsPerOp, b.BytesPerOp, b.AllocsPerOp)
		}
		sb.WriteString("\n")
	}

	sb.WriteString("## Reproducing\n\n")
	sb.WriteString("```bash\n")
	sb.WriteString("go run ./benchmarks\n")
	sb.WriteString("# Or individual packages:\n")
	for _, s := range suites {
		fmt.Fprintf(&sb, "go test -run='^$' -bench=. -benchmem %s\n", s.pkg)
	}
	sb.WriteString("```\n")

	_, err := io.WriteString(w, sb.String())
	return err
}

func printSummary(w io.Writer, results BenchmarkResults) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "==========================================")
	fmt.Fprintln(w, "              SUMMARY")
	fmt.Fprintln(w, "==========================================")
	fmt.Fprintf(w, "Parse:      %.1f ns/op\n", results.Summary.ParseNs)
	fmt.Fprintf(w, "String:     %.1f ns/op\n", results.Summary.StringNs)
	fmt.Fprintf(w, "New:        %.1f ns/op\n", results.Summary.NewNs)
	fmt.Fprintf(w, "Monotonic:  %.1f ns/op\n", results.Summary.MonotonicNs)
	fmt.Fprintf(w, "Base32:     %.1f ns encode, %.1f ns decode (64 B)\n",
		results.Summary.EncodeNs, results.Summary.DecodeNs)
	fmt.Fprintln(w, "==========================================")
}
