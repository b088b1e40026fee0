// carsamedia is a car showcase and lane racing game for the terminal.
//
// Usage:
//
//	carsamedia                   - Start the app (same as "carsamedia app")
//	carsamedia app               - Sign in, browse cars, play, change settings
//	carsamedia play [game]       - Play a game directly (default: lanes)
//	carsamedia list              - List available games
//	carsamedia defaults <name>   - Print a built-in config file (lanes, app)
//	carsamedia photo set <file>  - Save a profile photo
//	carsamedia photo show        - Print the saved profile photo
//	carsamedia photo clear       - Remove the saved profile photo
//	carsamedia serve             - Start SSH server for remote sessions
//
// Global flags:
//
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.carsamedia/carsamedia.db)
//	--app-config <path>   - Set app settings file
//	--log-file <path>     - Set log file (default: ~/.carsamedia/carsamedia.log)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/carsamedia/internal/games/lanes"
)

var (
	// Global flags
	flagSeed      int64
	flagDBPath    string
	flagAppConfig string
	flagLogFile   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "carsamedia",
	Short: "Carsamedia - cars, facts and a lane racer in your terminal",
	Long: `Carsamedia is a terminal app for car enthusiasts: a slideshow of
cars with a fact for each, a lane racing mini-game and a profile photo.

Available commands:
  app      - Full app with Profile, Game and Settings tabs
  play     - Play a game directly
  list     - Show all available games
  defaults - Print a built-in config file
  photo    - Manage the profile photo
  serve    - Start SSH server for remote sessions

Examples:
  carsamedia
  carsamedia play --difficulty hard
  carsamedia photo set ~/Pictures/me.png
  carsamedia serve --ssh :2222`,
	Run: runApp,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.carsamedia/carsamedia.db", "Path to the profile photo database")
	rootCmd.PersistentFlags().StringVar(&flagAppConfig, "app-config", "", "Path to custom app settings YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.carsamedia/carsamedia.log", "Path to the log file")

	// Add subcommands
	rootCmd.AddCommand(appCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(defaultsCmd)
	rootCmd.AddCommand(photoCmd)
	rootCmd.AddCommand(serveCmd)
}
