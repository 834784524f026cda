package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration tetris would run with, as YAML.

Search order (first readable file wins):
  1. --config <path>
  2. ~/.tetris/configs/tetris.yaml
  3. ./configs/tetris.yaml
  4. built-in defaults

The output is a complete file; save it to one of the paths above
and edit it to change timing, key hold or colors.`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, _ []string) error {
	cfg, src, err := loadConfig()
	if err != nil {
		return err
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	color.New(color.Faint).Fprintf(cmd.ErrOrStderr(), "# source: %s\n", src)
	fmt.Fprint(cmd.OutOrStdout(), string(data))
	return nil
}
