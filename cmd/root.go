package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/marcus/lightbox/internal/config"
	"github.com/marcus/lightbox/internal/gallery"
	applog "github.com/marcus/lightbox/internal/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	version  string
	baseDir  string
	dirFlag  string
	logLevel string
)

// SetVersion sets the version string
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

var rootCmd = &cobra.Command{
	Use:   "lightbox",
	Short: "Terminal image gallery with a lightbox viewer",
	Long: `lightbox - browse a fixed set of images as a grid of tiles and open any of
them in a modal viewer with keyboard and mouse navigation.

The image set lives in .lightbox/config.json under the working directory.`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initBaseDir)
	addGlobalFlags(rootCmd.PersistentFlags())
}

func addGlobalFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&dirFlag, "dir", "C", "", "gallery directory (default: working directory)")
	fs.StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
}

func initBaseDir() {
	if dirFlag != "" {
		baseDir = dirFlag
		return
	}
	var err error
	baseDir, err = os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot determine working directory: %v\n", err)
		os.Exit(1)
	}
}

// getBaseDir returns the directory the gallery config and images live in
func getBaseDir() string {
	return baseDir
}

// loadGallery reads the config and builds the image set
func loadGallery() (*config.Config, *gallery.ImageSet, error) {
	cfg, err := config.Load(getBaseDir())
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, gallery.NewImageSet(cfg.BasePath, cfg.Extension, cfg.Images), nil
}

// initCLILogging sends logs to stderr for one-shot commands
func initCLILogging() io.Closer {
	opts := applog.FromEnv()
	opts.Stderr = true
	if logLevel != "" {
		opts.Level = logLevel
	}
	if opts.Level == "" {
		opts.Level = "warn"
	}
	_, closer := applog.Init(opts)
	return closer
}

func closeQuietly(c io.Closer) {
	if err := c.Close(); err != nil {
		slog.Debug("close log", "err", err)
	}
}
