package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/marcus/lightbox/internal/gallery"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:     "list [query]",
	Aliases: []string{"ls"},
	Short:   "List the images in the gallery",
	Long: `Lists every image with its 1-based position, identifier and source path.
An optional query narrows the list with a fuzzy match on identifiers.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		defer closeQuietly(initCLILogging())

		_, set, err := loadGallery()
		if err != nil {
			return err
		}

		query := ""
		if len(args) > 0 {
			query = args[0]
		}
		tiles := gallery.Render(set)
		var selected []gallery.Tile
		for _, i := range gallery.FindAll(set, query) {
			selected = append(selected, tiles[i])
		}

		out := cmd.OutOrStdout()
		if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(tileJSON(selected))
		}

		if len(selected) == 0 {
			if query != "" {
				fmt.Fprintf(out, "No images match %q\n", query)
			} else {
				fmt.Fprintln(out, "No images configured")
			}
			return nil
		}

		checkFiles, _ := cmd.Flags().GetBool("check")
		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		if checkFiles {
			fmt.Fprintln(w, "#\tID\tSOURCE\tSTATUS")
		} else {
			fmt.Fprintln(w, "#\tID\tSOURCE")
		}
		for _, t := range selected {
			if checkFiles {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", t.Index+1, t.ID, t.Source, fileStatus(set.Path(getBaseDir(), t.Index)))
				continue
			}
			fmt.Fprintf(w, "%d\t%s\t%s\n", t.Index+1, t.ID, t.Source)
		}
		return w.Flush()
	},
}

type listedTile struct {
	Position int    `json:"position"`
	ID       string `json:"id"`
	Source   string `json:"source"`
	Label    string `json:"label"`
}

func tileJSON(tiles []gallery.Tile) []listedTile {
	out := make([]listedTile, 0, len(tiles))
	for _, t := range tiles {
		out = append(out, listedTile{
			Position: t.Index + 1,
			ID:       t.ID,
			Source:   t.Source,
			Label:    t.Label,
		})
	}
	return out
}

// fileStatus reports whether path names an existing file
func fileStatus(path string) string {
	if _, err := os.Stat(path); err != nil {
		return "missing"
	}
	return "ok"
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().Bool("json", false, "JSON output")
	listCmd.Flags().Bool("check", false, "check that each image file exists")
}
