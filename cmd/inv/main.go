// Package main is the entry point for the inv CLI.
package main

import (
	"fmt"
	"os"

	"github.com/jacksmith/inv/internal/cli"
	"github.com/jacksmith/inv/internal/logging"
	"github.com/jacksmith/inv/internal/ops"
	"github.com/jacksmith/inv/internal/stock"
	"github.com/jacksmith/inv/internal/storage"
	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, cli.FormatError(err))
		os.Exit(cli.ExitCode(err))
	}
}

var rootCmd = &cobra.Command{
	Use:   "inv",
	Short: "inv - a small file-backed stock tracker",
	Long: `inv tracks item quantities in a JSON file and reports low stock.

Removing at least the quantity held deletes the item. Bad input is
rejected and logged; it never changes the inventory.

Settings come from .invconfig.yaml in the current directory, then from
INV_* environment variables (or a .env file), then from flags.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	// Show help when no subcommand is provided
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

var (
	rootFile      string
	rootLogLevel  string
	rootLogFormat string
	rootForce     bool
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&rootFile, "file", "f", "", "inventory data file (default from config, else inventory.json)")
	rootCmd.PersistentFlags().StringVar(&rootLogLevel, "log-level", "", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&rootLogFormat, "log-format", "", "log format: console or json")
	rootCmd.PersistentFlags().BoolVar(&rootForce, "force", false, "save even if the data file could not be decoded (its contents are lost)")

	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SetVersionTemplate("inv version {{.Version}}\n")
}

// loadConfig reads config from the working directory and applies the
// persistent flags on top.
func loadConfig() (*storage.Config, error) {
	cfg, err := storage.LoadConfig(".")
	if err != nil {
		return nil, err
	}
	if rootFile != "" {
		cfg.DataFile = rootFile
	}
	if rootLogLevel != "" {
		cfg.LogLevel = rootLogLevel
	}
	if rootLogFormat != "" {
		cfg.LogFormat = rootLogFormat
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// openSession loads the inventory for a command. Logs go to the command's
// error stream.
func openSession(cmd *cobra.Command, observers ...stock.Observer) (*ops.Session, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	log := logging.New(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat)
	s := ops.Open(cfg, log, observers...)
	s.Force = rootForce
	return s, nil
}
