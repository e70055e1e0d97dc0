package cmd

import (
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/AniDashyan/priority-inversion/sim"
)

var (
	// CLI flags for the scenario runner
	durationSecs int    // Wall-clock length of each scenario run (in seconds)
	logLevel     string // Log verbosity level
	inheritMode  string // How the SOLUTION run applies priority inheritance
	noPause      bool   // Skip the interactive pause between the two scenarios
	timingsFile  string // Optional YAML file overriding the fixed per-iteration timings
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "priority-inversion",
	Short: "Priority inversion demo: three workers, one shared resource",
}

// runCmd executes both scenarios using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the PROBLEM and SOLUTION scenarios back to back",
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		mode, err := sim.ParseInheritanceMode(inheritMode)
		if err != nil {
			logrus.Fatalf("Invalid inheritance mode: %v", err)
		}

		timings := sim.DefaultTimings()
		if timingsFile != "" {
			timings, err = LoadTimings(timingsFile, timings)
			if err != nil {
				logrus.Fatalf("unable to read timings file: %v", err)
			}
		}

		runner := &sim.ScenarioRunner{
			Duration: time.Duration(durationSecs) * time.Second,
			Timings:  timings,
			Mode:     mode,
			Assigner: sim.NewPriorityAssigner(),
			NoPause:  noPause,
			In:       os.Stdin,
			Out:      os.Stdout,
		}
		if _, _, err := runner.Run(); err != nil {
			logrus.Fatalf("simulation failed: %v", err)
		}
		logrus.Info("Simulation complete.")
	},
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	runCmd.Flags().IntVar(&durationSecs, "duration", 3, "Wall-clock seconds per scenario")
	runCmd.Flags().StringVar(&logLevel, "log", "info", "Log level (trace, debug, info, warn, error, fatal, panic)")
	runCmd.Flags().StringVar(&inheritMode, "inherit", "emulated",
		"Inheritance mode: 'emulated' only changes the LOW worker's reported status (the classic demo), 'real' boosts the holder's OS priority while a higher-priority worker waits")
	runCmd.Flags().BoolVar(&noPause, "no-pause", false, "Do not wait for Enter between the two scenarios")
	runCmd.Flags().StringVar(&timingsFile, "timings", "", "YAML file overriding the per-iteration timing constants (milliseconds)")

	rootCmd.AddCommand(runCmd)
}
