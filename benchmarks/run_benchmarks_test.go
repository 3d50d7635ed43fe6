package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleOutput = `goos: linux
goarch: amd64
pkg: github.com/fuxingloh/ulidkit/pkg/ulid
BenchmarkParse-8          	40000000	        28.40 ns/op	       0 B/op	       0 allocs/op
BenchmarkString-8         	30000000	        35.10 ns/op	      32 B/op	       1 allocs/op
BenchmarkNew-8            	 5000000	       240.0 ns/op	       0 B/op	       0 allocs/op
BenchmarkMonotonicNext-8  	20000000	        60.00 ns/op	       0 B/op	       0 allocs/op
PASS
ok  	github.com/fuxingloh/ulidkit/pkg/ulid	6.123s
`

func TestParseBenchmarkOutput(t *testing.T) {
	got := parseBenchmarkOutput(sampleOutput)
	require.Len(t, got, 4)

	assert.Equal(t, "BenchmarkParse", got[0].Name)
	assert.InDelta(t, 28.4, got[0].NsPerOp, 1e-9)
	assert.InDelta(t, 1e9/28.4, got[0].OpsPerSec, 1e-3)
	assert.Equal(t, int64(32), got[1].BytesPerOp)
	assert.Equal(t, int64(1), got[1].AllocsPerOp)

	assert.Empty(t, parseBenchmarkOutput("FAIL\n"))
}

func TestCalculateSummary(t *testing.T) {
	summary := calculateSummary(map[string]Suite{
		"ulid": {Benchmarks: parseBenchmarkOutput(sampleOutput)},
		"crockford": {Benchmarks: []Benchmark{
			{Name: "BenchmarkEncodeToString", NsPerOp: 90},
			{Name: "BenchmarkDecodeString", NsPerOp: 120},
		}},
	})

	assert.InDelta(t, 28.4, summary.ParseNs, 1e-9)
	assert.InDelta(t, 60.0, summary.MonotonicNs, 1e-9)
	assert.InDelta(t, 90.0, summary.EncodeNs, 1e-9)
	assert.InDelta(t, 120.0, summary.DecodeNs, 1e-9)
}

func TestWriteMarkdown(t *testing.T) {
	results := BenchmarkResults{
		Timestamp: "2026-01-02T03:04:05Z",
		Suites: map[string]Suite{
			"ulid":      {Package: "./pkg/ulid", Benchmarks: parseBenchmarkOutput(sampleOutput)},
			"crockford": {Package: "./pkg/crockford"},
		},
	}
	results.Summary = calculateSummary(results.Suites)

	var buf bytes.Buffer
	require.NoError(t, writeMarkdown(&buf, results))
	md := buf.String()

	assert.Contains(t, md, "## Crockford (`./pkg/crockford`)")
	assert.Contains(t, md, "## Ulid (`./pkg/ulid`)")
	assert.Less(t, strings.Index(md, "## Crockford"), strings.Index(md, "## Ulid"))
	assert.Contains(t, md, "| Parse | 28.4 |")
	assert.Contains(t, md, "| BenchmarkString | 28490028 | 35.1 | 32 | 1 |")
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeJSON(&buf, BenchmarkResults{Timestamp: "now"}))
	assert.Contains(t, buf.String(), `"timestamp": "now"`)
}
