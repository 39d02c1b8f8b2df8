package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/marcus/lightbox/internal/config"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the gallery configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := config.Path(getBaseDir())
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(path); err == nil && !force {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		} else if err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("stat %s: %w", path, err)
		}

		cfg := config.Default()
		if basePath, _ := cmd.Flags().GetString("base-path"); basePath != "" {
			cfg.BasePath = basePath
		}
		if ext, _ := cmd.Flags().GetString("ext"); ext != "" {
			cfg.Extension = strings.TrimPrefix(strings.ToLower(ext), ".")
		}
		if err := config.Save(getBaseDir(), cfg); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%d images)\n", path, len(cfg.Images))
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(getBaseDir())
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "base_path: %s\n", cfg.BasePath)
		fmt.Fprintf(out, "extension: %s\n", cfg.Extension)
		fmt.Fprintf(out, "images:    %d\n", len(cfg.Images))
		if cfg.LogFile != "" {
			fmt.Fprintf(out, "log_file:  %s\n", cfg.LogFile)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)

	configInitCmd.Flags().Bool("force", false, "overwrite an existing config")
	configInitCmd.Flags().String("base-path", "", "directory holding the images")
	configInitCmd.Flags().String("ext", "", "image file extension")
}
