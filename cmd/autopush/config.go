package main

import (
	"fmt"
	"os"

	"github.com/obentoo/autopush/internal/common/config"
	"github.com/obentoo/autopush/internal/common/output"
	"github.com/spf13/cobra"
)

var configForce bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect or create the configuration file",
}

var configInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write a configuration file with default values",
	Long: `Write a configuration file with default values.
Without a path the --config file is used, or else the XDG location.
The format follows the extension (.yaml, .yml or .toml).`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := configInitPath(args, configPath)
		if err != nil {
			return err
		}
		if err := writeDefaultConfig(path, configForce); err != nil {
			return err
		}
		output.PrintSuccess("Wrote %s", path)
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the configuration file in effect",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, found, err := resolveConfigPath(configPath)
		if err != nil {
			return err
		}
		if !found && configPath != "" {
			fmt.Fprintf(output.Stdout, "%s (not present)\n", path)
			return nil
		}
		if !found {
			fmt.Fprintf(output.Stdout, "%s (not present, defaults in use)\n", path)
			return nil
		}
		fmt.Fprintln(output.Stdout, path)
		return nil
	},
}

func init() {
	configInitCmd.Flags().BoolVarP(&configForce, "force", "f", false, "Overwrite an existing file")
	configCmd.AddCommand(configInitCmd, configPathCmd)
	rootCmd.AddCommand(configCmd)
}

func configInitPath(args []string, explicit string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	if explicit != "" {
		return explicit, nil
	}
	return config.DefaultConfigPath()
}

// resolveConfigPath returns the file a run would read
func resolveConfigPath(explicit string) (path string, found bool, err error) {
	if explicit == "" {
		return config.FindConfigPath()
	}
	if _, err := os.Stat(explicit); err != nil {
		if os.IsNotExist(err) {
			return explicit, false, nil
		}
		return "", false, err
	}
	return explicit, true, nil
}

func writeDefaultConfig(path string, force bool) error {
	if _, err := os.Stat(path); err == nil {
		if !force {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
		output.PrintWarning("Overwriting %s", path)
	}
	return config.Default().SaveTo(path)
}
