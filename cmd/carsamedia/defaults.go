package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/carsamedia/internal/config"
)

var defaultsCmd = &cobra.Command{
	Use:       "defaults [lanes|app]",
	Short:     "Print a built-in config file",
	ValidArgs: []string{"lanes", "app"},
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	Long: `Prints the embedded default YAML so it can be copied and edited.

Custom files are picked up from ~/.carsamedia/configs/<name>.yaml,
./configs/<name>.yaml, or passed explicitly with --config / --app-config.

Examples:
  carsamedia defaults lanes > ~/.carsamedia/configs/lanes.yaml
  carsamedia defaults app`,
	Run: runDefaults,
}

func runDefaults(_ *cobra.Command, args []string) {
	data := config.GetDefaultYAML(args[0])
	if data == nil {
		fmt.Fprintf(os.Stderr, "Error: no built-in config named %q\n", args[0])
		os.Exit(1)
	}
	os.Stdout.Write(data)
}
