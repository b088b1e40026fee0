package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/carsamedia/internal/audio"
	"github.com/vovakirdan/carsamedia/internal/platform/tui"
	"github.com/vovakirdan/carsamedia/internal/profile"
	"github.com/vovakirdan/carsamedia/internal/registry"
	"github.com/vovakirdan/carsamedia/internal/storage"
)

var flagPhotoDir string

var appCmd = &cobra.Command{
	Use:   "app",
	Short: "Start the full app",
	Long: `Sign in, set a profile photo and get started.

Tabs:
  Profile   - Car slideshow with a fact per car, Sign Out
  Game      - Lane Racer with engine sound toggle
  Settings  - Account, notifications, dark mode, about

Keys:
  Tab/Shift+Tab  - Switch tabs
  ←/→            - Previous/next car, or change lanes in the game
  Enter          - Select
  Q/Ctrl+C       - Quit`,
	Args: cobra.NoArgs,
	Run:  runApp,
}

func init() {
	appCmd.Flags().StringVar(&flagPhotoDir, "photo-dir", "", "Start directory of the photo picker (default: home)")
}

func runApp(_ *cobra.Command, _ []string) {
	logger, closeLog := newLogger()
	defer closeLog()

	appCfg := loadAppConfig()

	game, err := registry.Create("lanes")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// The app still works without a photo database
	var slot profile.Slot
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open photo database", "error", err)
	} else {
		slot = store
	}

	sound := audio.NewService(audio.Options{
		File:   appCfg.Sound.File,
		Volume: appCfg.Sound.Volume,
		Logger: logger,
	})

	runErr := tui.RunApp(tui.AppOptions{
		Game:        game,
		Images:      profile.NewImageStore(slot, logger),
		Sound:       sound,
		Config:      appCfg,
		Runtime:     runtimeConfig(),
		PhotoPicker: true,
		PhotoDir:    flagPhotoDir,
		Logger:      logger,
	})

	sound.Stop()
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running app: %v\n", runErr)
		os.Exit(1)
	}
}
