package main

import (
	"fmt"
	"os"

	"github.com/obentoo/autopush/internal/common/logger"
	"github.com/obentoo/autopush/internal/common/output"
	"github.com/obentoo/autopush/internal/common/version"
	"github.com/spf13/cobra"
)

var (
	verbose  bool
	quiet    bool
	noColor  bool
	logToDir bool
	logFile  string
)

var rootCmd = &cobra.Command{
	Use:   "autopush",
	Short: "Stage, commit and push all changes in one step",
	Long: `Stage every change in the working tree, and when anything changed,
commit it with a fixed message and push to the configured remote.

Any failing git command aborts the run with exit status 1.`,
	Args:          cobra.NoArgs,
	Version:       version.Short(),
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Configure logging based on flags
		if verbose {
			logger.SetVerbose(true)
		}
		if quiet {
			logger.SetQuiet(true)
			output.SetQuiet(true)
		}
		if noColor {
			output.NoColor()
		}
		if logFile != "" {
			return logger.Default().EnableFileLoggingAt(logFile)
		}
		if logToDir {
			return logger.Default().EnableFileLogging()
		}
		return nil
	},
	Run: runRoot,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(output.Stdout, version.Info())
	},
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&logToDir, "log", false, "Append a timestamped log under $XDG_STATE_HOME/autopush/logs")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Append a timestamped log to this file")

	rootCmd.AddCommand(versionCmd)
}

func main() {
	defer logger.Close()

	if err := rootCmd.Execute(); err != nil {
		output.PrintError("%v", err)
		logger.Close()
		os.Exit(1)
	}
}
