package cmd

import (
	"log/slog"

	applog "github.com/marcus/lightbox/internal/log"
	"github.com/marcus/lightbox/pkg/monitor"
	"github.com/spf13/cobra"
)

var viewCmd = &cobra.Command{
	Use:     "view",
	Aliases: []string{"ui"},
	Short:   "Open the interactive gallery",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, set, err := loadGallery()
		if err != nil {
			return err
		}

		// The viewer owns the terminal: log to a file or nowhere
		opts := applog.FromEnv()
		if cfg.LogFile != "" && opts.File == "" {
			opts.File = cfg.LogFile
		}
		if logLevel != "" {
			opts.Level = logLevel
		}
		_, closer := applog.Init(opts)
		defer closeQuietly(closer)

		slog.Info("starting viewer", "images", set.Len(), "base_path", cfg.BasePath, "version", version)
		return monitor.Run(set, getBaseDir())
	},
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
