package experiment

import (
	"fmt"
	"io"
	"strings"

	"github.com/google/renameio/v2"
	"github.com/sirupsen/logrus"

	"github.com/timeshare-sim/timeshare-sim/sim"
)

const (
	terminalColWidth = 5
	valueColWidth    = 14
)

var reportColumns = []string{
	"Resp time CPU1",
	"Resp time CPU2",
	"Queue len CPU1",
	"Queue len CPU2",
	"Util of CPU1",
	"Util of CPU2",
}

// WriteReport renders the parameter header and one fixed-width row per run.
func WriteReport(w io.Writer, p Params, results []sim.RunResult) error {
	var sb strings.Builder

	sb.WriteString("Time-shared computer model\n\n")
	fmt.Fprintf(&sb, "Number of terminals%9d to%4d by %4d\n\n", p.MinTerminals, p.MaxTerminals, p.TerminalIncrement)
	fmt.Fprintf(&sb, "Mean think time  %11.3f seconds\n\n", p.MeanThink)
	fmt.Fprintf(&sb, "Mean service time%11.3f seconds\n\n", p.MeanService)
	fmt.Fprintf(&sb, "Quantum          %11.3f seconds\n\n", p.Quantum)
	fmt.Fprintf(&sb, "Swap time        %11.3f seconds\n\n", p.SwapOverhead)
	fmt.Fprintf(&sb, "Number of jobs processed%12d\n\n\n", p.RequiredCompletions)

	separator := tableSeparator()
	sb.WriteString(separator)
	fmt.Fprintf(&sb, "| %-*s |", terminalColWidth, "Terms")
	for _, c := range reportColumns {
		fmt.Fprintf(&sb, " %-*s |", valueColWidth, c)
	}
	sb.WriteString("\n")
	sb.WriteString(separator)

	for _, r := range results {
		sb.WriteString(FormatRow(r))
		sb.WriteString(separator)
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

// FormatRow renders a single result row, newline terminated.
// A lane with no completions reports a response time of 0.000.
func FormatRow(r sim.RunResult) string {
	values := []float64{
		r.Lanes[sim.Lane1].ResponseTime,
		r.Lanes[sim.Lane2].ResponseTime,
		r.Lanes[sim.Lane1].QueueLength,
		r.Lanes[sim.Lane2].QueueLength,
		r.Lanes[sim.Lane1].Utilization,
		r.Lanes[sim.Lane2].Utilization,
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "| %*d |", terminalColWidth, r.NumTerminals)
	for _, v := range values {
		fmt.Fprintf(&sb, " %*.3f |", valueColWidth, v)
	}
	sb.WriteString("\n")
	return sb.String()
}

func tableSeparator() string {
	var sb strings.Builder
	sb.WriteString("+")
	sb.WriteString(strings.Repeat("-", terminalColWidth+2))
	sb.WriteString("+")
	for range reportColumns {
		sb.WriteString(strings.Repeat("-", valueColWidth+2))
		sb.WriteString("+")
	}
	sb.WriteString("\n")
	return sb.String()
}

// SaveReport writes the report to path atomically: readers see either the
// previous file or the complete new report.
func SaveReport(path string, p Params, results []sim.RunResult) error {
	pendingFile, err := renameio.NewPendingFile(path)
	if err != nil {
		return fmt.Errorf("create pending report file: %w", err)
	}
	defer func() {
		if err := pendingFile.Cleanup(); err != nil {
			logrus.Debugf("cleanup pending report file: %v", err)
		}
	}()

	if err := WriteReport(pendingFile, p, results); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	if err := pendingFile.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("atomically replace report file: %w", err)
	}
	return nil
}
