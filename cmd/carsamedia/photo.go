package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/carsamedia/internal/profile"
	"github.com/vovakirdan/carsamedia/internal/storage"
)

var photoCmd = &cobra.Command{
	Use:   "photo",
	Short: "Manage the profile photo",
	Long: `Set, show or clear the profile photo shown on the welcome screen.

Only one photo is kept; setting a new one replaces the old one.

Examples:
  carsamedia photo set ~/Pictures/me.jpg
  carsamedia photo show
  carsamedia photo clear`,
}

var photoSetCmd = &cobra.Command{
	Use:   "set <file>",
	Short: "Save a .jpg or .png file as the profile photo",
	Args:  cobra.ExactArgs(1),
	Run:   runPhotoSet,
}

var photoShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the saved profile photo",
	Args:  cobra.NoArgs,
	Run:   runPhotoShow,
}

var photoClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove the saved profile photo",
	Args:  cobra.NoArgs,
	Run:   runPhotoClear,
}

var (
	flagThumbW int
	flagThumbH int
)

func init() {
	photoShowCmd.Flags().IntVar(&flagThumbW, "width", 32, "Thumbnail width in columns")
	photoShowCmd.Flags().IntVar(&flagThumbH, "height", 16, "Thumbnail height in rows")

	photoCmd.AddCommand(photoSetCmd)
	photoCmd.AddCommand(photoShowCmd)
	photoCmd.AddCommand(photoClearCmd)
}

// openStore opens the photo database or exits.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return store
}

func runPhotoSet(_ *cobra.Command, args []string) {
	img, err := profile.LoadImageFile(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	data, err := profile.EncodeJPEG(img)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store := openStore()
	defer store.Close()

	if err := store.SaveProfileImage(data); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	b := img.Bounds()
	fmt.Printf("Profile photo saved (%dx%d, %d bytes).\n", b.Dx(), b.Dy(), len(data))
}

func runPhotoShow(_ *cobra.Command, _ []string) {
	store := openStore()
	defer store.Close()

	stored, err := store.LoadProfileImage()
	if errors.Is(err, storage.ErrNoImage) {
		fmt.Println("No profile photo saved.")
		fmt.Println("Run 'carsamedia photo set <file>' to add one.")
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	img, err := profile.DecodeJPEG(stored.Data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	for _, row := range profile.Thumbnail(img, flagThumbW, flagThumbH) {
		fmt.Println(row)
	}
	fmt.Println()
	fmt.Printf("%d bytes, updated %s\n", len(stored.Data), stored.UpdatedAt.Format("2006-01-02 15:04"))
}

func runPhotoClear(_ *cobra.Command, _ []string) {
	store := openStore()
	defer store.Close()

	if err := store.ClearProfileImage(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Profile photo cleared.")
}
