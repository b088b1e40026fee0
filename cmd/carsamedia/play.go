package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/carsamedia/internal/audio"
	"github.com/vovakirdan/carsamedia/internal/config"
	"github.com/vovakirdan/carsamedia/internal/games/lanes"
	"github.com/vovakirdan/carsamedia/internal/platform/tui"
	"github.com/vovakirdan/carsamedia/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing the specified game without signing in.

Controls:
  ←/A/H      - Move one lane left
  →/D/L      - Move one lane right
  P          - Pause
  S          - Play/stop engine sound
  R          - Restart (after game over)
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - Slow start, gentle speed-up
  normal - Default speed-up
  hard   - Fast start, steep speed-up
  fixed  - Configured base speed, no speed-up

Examples:
  carsamedia play
  carsamedia play lanes --difficulty hard
  carsamedia play --difficulty fixed --seed 42
  carsamedia play --config ./my-lanes.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := "lanes"
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'carsamedia list' to see available games.")
		os.Exit(1)
	}

	preset, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Fail early on a bad explicit config instead of silently using defaults
	if flagConfig != "" {
		if _, err := config.LoadLanes(flagConfig); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	// Set config path and difficulty before creation
	if gameID == "lanes" {
		lanes.SetConfigPath(flagConfig)
		lanes.SetDifficultyPreset(preset)
	}

	logger, closeLog := newLogger()
	defer closeLog()

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	appCfg := loadAppConfig()
	sound := audio.NewService(audio.Options{
		File:   appCfg.Sound.File,
		Volume: appCfg.Sound.Volume,
		Logger: logger,
	})

	logger.Info("starting game", "game", gameID, "difficulty", string(preset), "seed", flagSeed)
	runErr := tui.RunGame(game, sound, runtimeConfig())
	sound.Stop()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
