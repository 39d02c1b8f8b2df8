package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/marcus/lightbox/internal/gallery"
	"github.com/spf13/cobra"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Write the gallery tiles as HTML",
	Long: `Writes one <button class="tile"> per image, each carrying its data-index,
an accessible label and a lazily loaded <img>. The output replaces a gallery
container's content as a whole.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		defer closeQuietly(initCLILogging())

		_, set, err := loadGallery()
		if err != nil {
			return err
		}

		if path, _ := cmd.Flags().GetString("output"); path != "" {
			if err := renderToFile(path, set); err != nil {
				return err
			}
		} else if err := writeGallery(cmd.OutOrStdout(), set); err != nil {
			return err
		}
		slog.Debug("rendered gallery", "tiles", set.Len())
		return nil
	},
}

// createOutput opens the -o target. Replaced in tests.
var createOutput = func(path string) (io.WriteCloser, error) {
	return os.Create(path)
}

// renderToFile writes the markup to path. A failed close is reported since
// it can drop buffered output.
func renderToFile(path string, set *gallery.ImageSet) (err error) {
	f, err := createOutput(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()
	return writeGallery(f, set)
}

func writeGallery(w io.Writer, set *gallery.ImageSet) error {
	if err := gallery.WriteMarkup(w, set); err != nil {
		return fmt.Errorf("render gallery: %w", err)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().StringP("output", "o", "", "write to file instead of stdout")
}
