package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/timeshare-sim/timeshare-sim/sim/experiment"
	"github.com/timeshare-sim/timeshare-sim/sim/trace"
)

var (
	// CLI flags for the sweep
	inputPath       string // Parameter file (whitespace record or YAML)
	seed            int64  // Master seed shared by every terminal-count run
	logLevel        string // Log verbosity level
	outputPath      string // Report destination; stdout when empty
	metricsTextfile string // Prometheus textfile destination; disabled when empty
	parallelism     int    // Max concurrent runs (0 = GOMAXPROCS)
	traceLevel      string // Dispatch trace level
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "timeshare-sim",
	Short: "Discrete-event simulator for a two-CPU time-shared computer",
	Long: `Simulates terminals that alternate between thinking and submitting jobs to
two round-robin CPUs, sweeping the number of terminals and reporting response
time, queue length, and utilization per CPU.`,
}

// runCmd executes the sweep using parameters from the input file
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the simulation sweep",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()

		if !trace.IsValidTraceLevel(traceLevel) {
			logrus.Fatalf("Invalid trace level: %s", traceLevel)
		}
		if parallelism < 0 {
			logrus.Fatalf("--parallel must be >= 0, got %d", parallelism)
		}

		params, err := experiment.LoadParams(inputPath)
		if err != nil {
			logrus.Fatalf("unable to load parameters from %s: %v", inputPath, err)
		}

		startTime := time.Now()
		outcomes, err := experiment.Sweep(context.Background(), params, experiment.SweepOptions{
			Seed:        seed,
			Parallelism: parallelism,
			TraceLevel:  trace.TraceLevel(traceLevel),
		})
		if err != nil {
			logrus.Fatalf("simulation failed: %v", err)
		}
		results := experiment.Results(outcomes)

		if outputPath == "" {
			if err := experiment.WriteReport(cmd.OutOrStdout(), params, results); err != nil {
				logrus.Fatalf("write report: %v", err)
			}
		} else if err := experiment.SaveReport(outputPath, params, results); err != nil {
			logrus.Fatalf("save report: %v", err)
		}

		if metricsTextfile != "" {
			if err := experiment.ExportMetrics(metricsTextfile, results); err != nil {
				logrus.Fatalf("export metrics: %v", err)
			}
		}

		logrus.Infof("Simulation complete: %d runs in %s", len(results), time.Since(startTime))
	},
}

// validateCmd parses and validates the input without simulating
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check a parameter file without running the simulation",
	RunE: func(cmd *cobra.Command, args []string) error {
		setupLogging()
		params, err := experiment.LoadParams(inputPath)
		if err != nil {
			return fmt.Errorf("invalid parameter file %s: %w", inputPath, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: OK, %d terminal counts from %d to %d\n",
			inputPath, len(params.TerminalCounts()), params.MinTerminals, params.MaxTerminals)
		return nil
	},
}

func setupLogging() {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		logrus.Fatalf("Invalid log level: %s", logLevel)
	}
	logrus.SetLevel(level)
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	rootCmd.PersistentFlags().StringVarP(&inputPath, "input", "i", "tscomp.in", "Parameter file: whitespace record or .yaml")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")

	runCmd.Flags().Int64Var(&seed, "seed", 42, "Seed shared by every terminal-count run")
	runCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Report file (default stdout)")
	runCmd.Flags().StringVar(&metricsTextfile, "metrics-textfile", "", "Write Prometheus textfile metrics to this path")
	runCmd.Flags().IntVar(&parallelism, "parallel", 0, "Max concurrent runs (0 = GOMAXPROCS)")
	runCmd.Flags().StringVar(&traceLevel, "trace", "none", "Dispatch trace level (none, runs)")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(validateCmd)
}
