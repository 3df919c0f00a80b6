package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invaders/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective game configuration",
	Long: `Print the configuration a game would use, after the search path and
the --difficulty preset are applied. Redirect it to a file to start a
custom config:

  invaders config > ~/.invaders/configs/invaders.yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return writeConfig(cmd.OutOrStdout())
	},
}

func writeConfig(w io.Writer) error {
	cfg, err := loadGameConfig(newLogger(os.Stderr, "invaders"))
	if err != nil {
		return err
	}
	data, err := config.Marshal(*cfg)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
