package main

import (
	"fmt"

	"github.com/jacksmith/inv/internal/logging"
	"github.com/jacksmith/inv/internal/storage"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create an empty inventory file",
	Long: `Create an empty inventory data file.

The file is written to --file, or the data_file from .invconfig.yaml,
or inventory.json.

Fails if the file already exists.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log := logging.New(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat)

	f, err := storage.Init(cfg.DataFile, logging.Named(log, "storage"))
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Initialized empty inventory in %s\n", f.Path())
	return nil
}
