package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/OpenDiablo2/dialog"
	"github.com/spf13/cobra"
	"vincit.fi/image-gallery/backend/imageloader"
	"vincit.fi/image-gallery/backend/library"
	"vincit.fi/image-gallery/backend/navigation"
	"vincit.fi/image-gallery/common"
	"vincit.fi/image-gallery/common/logger"
	"vincit.fi/image-gallery/ui/giu"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var params *common.Params
	rootCmd := &cobra.Command{
		Use:           "image-gallery",
		Short:         "Browse the JPEG images of a directory as thumbnails",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(params)
		},
	}
	params = common.BindParams(rootCmd.Flags())
	return rootCmd
}

func run(params *common.Params) error {
	cfg, err := params.LoadConfig()
	if err != nil {
		return err
	}
	if cfg.LogFile != "" {
		logFile := logger.LogToFile(cfg.LogFile)
		defer logFile.Close()
	}
	logger.Initialize(logger.StringToLogLevel(cfg.LogLevel))

	directory := cfg.Directory
	if params.Browse() {
		directory = browseDirectory(directory)
	}

	imageLibrary, err := library.NewLibrary(cfg.Patterns)
	if err != nil {
		return err
	}
	images, err := imageLibrary.ListImages(directory)
	if err != nil {
		return fmt.Errorf("could not list images: %w", err)
	}
	logger.Info.Printf("Found %d images in '%s'", len(images), directory)

	theme, err := cfg.Theme()
	if err != nil {
		return err
	}

	navigator := navigation.NewNavigator(images)
	gui := giu.NewUi(theme, directory, navigator, imageloader.NewImageLoader())
	gui.Run()
	return nil
}

// browseDirectory asks for the image directory. Cancelling keeps fallback.
func browseDirectory(fallback string) string {
	directory, err := dialog.Directory().Title("Select image directory").Browse()
	if errors.Is(err, dialog.ErrCancelled) {
		logger.Info.Printf("Directory selection cancelled, using '%s'", fallback)
		return fallback
	} else if err != nil {
		logger.Warn.Printf("Could not open directory dialog: %s", err)
		return fallback
	}
	return directory
}
