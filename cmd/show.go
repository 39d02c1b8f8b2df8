package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/marcus/lightbox/internal/gallery"
	"github.com/marcus/lightbox/internal/lightbox"
	"github.com/marcus/lightbox/internal/preview"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const (
	defaultTermWidth  = 80
	defaultTermHeight = 24
)

var showCmd = &cobra.Command{
	Use:   "show <position|name>",
	Short: "Print one image to the terminal",
	Long: `Prints a single image as it would appear in the lightbox. The argument is a
1-based position (positions outside the gallery wrap around) or a name matched
fuzzily against image identifiers.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		defer closeQuietly(initCLILogging())

		_, set, err := loadGallery()
		if err != nil {
			return err
		}
		if set.Len() == 0 {
			return fmt.Errorf("no images configured")
		}

		index, err := resolveImage(set, args[0])
		if err != nil {
			return err
		}

		surface := &lightbox.Surface{}
		ctrl := lightbox.New(set, surface)
		ctrl.OpenAt(index)

		w, h := showSize(cmd)
		return writeImage(cmd.OutOrStdout(), set, ctrl, w, h)
	},
}

// resolveImage maps a position or a name to an image index
func resolveImage(set *gallery.ImageSet, arg string) (int, error) {
	if n, err := strconv.Atoi(arg); err == nil {
		return lightbox.Normalize(n-1, set.Len()), nil
	}
	idx, ok := gallery.Find(set, arg)
	if !ok {
		return 0, fmt.Errorf("no image matches %q", arg)
	}
	return idx, nil
}

// showSize picks the drawing area from flags, then the terminal, then defaults
func showSize(cmd *cobra.Command) (int, int) {
	w, _ := cmd.Flags().GetInt("width")
	h, _ := cmd.Flags().GetInt("height")
	if w > 0 && h > 0 {
		return w, h
	}

	tw, th := defaultTermWidth, defaultTermHeight
	if fd := int(os.Stdout.Fd()); term.IsTerminal(fd) {
		if cw, ch, err := term.GetSize(fd); err == nil {
			tw, th = cw, ch
		}
	}
	if w <= 0 {
		w = tw
	}
	if h <= 0 {
		// caption and source lines
		h = max(th-3, 1)
	}
	return w, h
}

func writeImage(out io.Writer, set *gallery.ImageSet, ctrl *lightbox.Controller, w, h int) error {
	path := set.Path(getBaseDir(), ctrl.Current())

	var body string
	img, err := preview.Load(path)
	if err != nil {
		slog.Warn("image not loaded", "path", path, "err", err)
		body = preview.Placeholder(min(w, 40), min(h, 10), ctrl.Label())
	} else {
		fw, fh := preview.Fit(img, w, h)
		body = preview.Render(img, fw, fh)
	}

	if _, err := fmt.Fprintln(out, ctrl.Label()); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(out, body); err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, ctrl.Source())
	return err
}

func init() {
	rootCmd.AddCommand(showCmd)

	showCmd.Flags().Int("width", 0, "width in cells (default: terminal width)")
	showCmd.Flags().Int("height", 0, "height in cells (default: terminal height)")
}
