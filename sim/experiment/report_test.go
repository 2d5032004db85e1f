package experiment

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/timeshare-sim/timeshare-sim/sim"
	"github.com/timeshare-sim/timeshare-sim/sim/internal/testutil"
)

const wantSeparator = "+-------+----------------+----------------+----------------+----------------+----------------+----------------+"

func sampleResult() sim.RunResult {
	r := sim.RunResult{NumTerminals: 10, EndTime: 100, Admitted: 12, Completed: 10}
	r.Lanes[sim.Lane1] = sim.LaneResult{ResponseTime: 1.25, Completions: 6, QueueLength: 0.125, Utilization: 0.5}
	r.Lanes[sim.Lane2] = sim.LaneResult{ResponseTime: 2.5, Completions: 4, QueueLength: 3, Utilization: 0.75}
	return r
}

func TestFormatRow_FixedWidthColumns(t *testing.T) {
	got := FormatRow(sampleResult())
	want := "|    10 |          1.250 |          2.500 |          0.125 |          3.000 |          0.500 |          0.750 |\n"
	assert.Equal(t, want, got)
}

func TestFormatRow_NoCompletionsOnLane_PrintsZero(t *testing.T) {
	r := sim.RunResult{NumTerminals: 1}
	r.Lanes[sim.Lane1] = sim.LaneResult{ResponseTime: 4, Completions: 1, Utilization: 0.2}
	got := FormatRow(r)
	assert.Contains(t, got, "|          4.000 |          0.000 |")
}

func TestWriteReport_HeaderAndRows(t *testing.T) {
	// GIVEN two results
	second := sampleResult()
	second.NumTerminals = 20

	// WHEN the report is written
	var buf bytes.Buffer
	require.NoError(t, WriteReport(&buf, referenceParams(), []sim.RunResult{sampleResult(), second}))
	out := buf.String()

	// THEN the header restates every parameter
	assert.True(t, strings.HasPrefix(out, "Time-shared computer model\n\n"))
	assert.Contains(t, out, "Number of terminals       10 to  80 by   10\n")
	assert.Contains(t, out, "Mean think time       25.000 seconds\n")
	assert.Contains(t, out, "Mean service time      0.800 seconds\n")
	assert.Contains(t, out, "Quantum                0.100 seconds\n")
	assert.Contains(t, out, "Swap time              0.015 seconds\n")
	assert.Contains(t, out, "Number of jobs processed        1000\n")
	assert.Contains(t, out, "| Terms | Resp time CPU1 | Resp time CPU2 | Queue len CPU1 | Queue len CPU2 | Util of CPU1   | Util of CPU2   |\n")

	// AND every table line has the same width
	var table []string
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "|") || strings.HasPrefix(line, "+") {
			table = append(table, line)
		}
	}
	require.Len(t, table, 7) // sep, header, sep, row, sep, row, sep
	for _, line := range table {
		assert.Len(t, line, len(wantSeparator), "line %q", line)
	}
	assert.Equal(t, wantSeparator, table[0])
	assert.True(t, strings.HasPrefix(table[5], "|    20 |"))
}

func TestWriteReport_Golden(t *testing.T) {
	second := sampleResult()
	second.NumTerminals = 20

	var buf bytes.Buffer
	require.NoError(t, WriteReport(&buf, referenceParams(), []sim.RunResult{sampleResult(), second}))

	testutil.AssertGolden(t, "report.golden", buf.String())
}

func TestSaveReport_WritesFileAtomically(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tscomp.out")
	require.NoError(t, os.WriteFile(path, []byte("stale"), 0o644))

	require.NoError(t, SaveReport(path, referenceParams(), []sim.RunResult{sampleResult()}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var want bytes.Buffer
	require.NoError(t, WriteReport(&want, referenceParams(), []sim.RunResult{sampleResult()}))
	assert.Equal(t, want.String(), string(data))
}

func TestSaveReport_MissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "tscomp.out")
	err := SaveReport(path, referenceParams(), nil)
	assert.ErrorContains(t, err, "create pending report file")
}
