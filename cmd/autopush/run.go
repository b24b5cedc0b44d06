package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/obentoo/autopush/internal/autopush"
	"github.com/obentoo/autopush/internal/common/config"
	"github.com/obentoo/autopush/internal/common/git"
	"github.com/obentoo/autopush/internal/common/logger"
	"github.com/obentoo/autopush/internal/common/output"
	"github.com/spf13/cobra"
)

var (
	configPath string
	workDir    string
	message    string
	dryRun     bool
)

// newExecutor is replaced in tests
var newExecutor = func(dir string) git.GitExecutor {
	return git.NewGitRunner(dir)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Use this configuration file instead of the default locations")
	rootCmd.Flags().StringVarP(&workDir, "dir", "C", "", "Run in this directory instead of the current one")
	rootCmd.Flags().StringVarP(&message, "message", "m", "", "Commit message (default \""+config.DefaultCommitMessage+"\")")
	rootCmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "Show what would be committed without staging, committing or pushing")
}

func runRoot(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig(configPath)
	if err != nil {
		logger.Error("loading config: %v", err)
		exit(1)
		return
	}

	if workDir != "" {
		cfg.Git.WorkDir = workDir
	}
	if message != "" {
		cfg.Commit.Message = message
	}

	dir, err := cfg.GetWorkDir()
	if err != nil {
		logger.Error("%v", err)
		exit(1)
		return
	}

	if code := runAutopush(newExecutor(dir), cfg, dryRun); code != 0 {
		exit(code)
	}
}

// exit is replaced in tests
var exit = func(code int) {
	logger.Close()
	os.Exit(code)
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFrom(path)
	}
	return config.Load()
}

// runAutopush performs one run and returns the process exit code
func runAutopush(executor git.GitExecutor, cfg *config.Config, dryRun bool) int {
	seq := autopush.NewFromConfig(executor, cfg)

	if dryRun {
		return reportDryRun(seq)
	}

	logger.Info("🚀 Starting auto-push sequence...")

	result, err := seq.Run()
	if err != nil {
		reportFailure(err)
		return 1
	}

	if !result.Dirty {
		output.Banner(output.Info, "✨ No changes to commit. Working tree clean.")
		return 0
	}

	for _, e := range result.Entries {
		logger.Debug("  %s", output.FormatChange(git.StatusLabel(e.Status), e.FilePath))
	}
	output.Banner(output.Success, fmt.Sprintf("✅ Successfully pushed %d change(s) to remote!", len(result.Entries)))
	return 0
}

func reportDryRun(seq *autopush.Sequencer) int {
	result, err := seq.DryRun()
	if err != nil {
		reportFailure(err)
		return 1
	}

	if !result.Dirty {
		output.PrintInfo("Nothing to commit. Working tree clean.")
		return 0
	}

	output.PrintInfo("Dry-run mode - would commit with message:")
	fmt.Fprintf(output.Stdout, "  %s\n\n", output.Sprint(output.Info, seq.Message()))
	output.PrintInfo("Changes:")
	for _, e := range result.Entries {
		fmt.Fprintf(output.Stdout, "  %s\n", output.FormatChange(git.StatusLabel(e.Status), e.FilePath))
	}
	return 0
}

func reportFailure(err error) {
	var cmdErr *autopush.CommandError
	if errors.As(err, &cmdErr) {
		output.PrintError("Error running command: %s", cmdErr.Command)
		logger.Error("%v", cmdErr.Err)
		return
	}
	output.PrintError("%v", err)
}
