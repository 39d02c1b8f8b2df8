package preview

import (
	"context"
	"image"

	"golang.org/x/sync/errgroup"
)

// Request asks for the image at Path to be decoded for tile Index.
type Request struct {
	Index int
	Path  string
}

// Result is a decoded image, or the error that replaces it with a placeholder.
type Result struct {
	Index int
	Image image.Image
	Err   error
}

// LoadBatch decodes every request with at most limit files open at once.
// Per-file failures are reported in the results; the returned error is only
// set when ctx is cancelled.
func LoadBatch(ctx context.Context, reqs []Request, limit int) ([]Result, error) {
	results := make([]Result, len(reqs))

	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}

	for i, req := range reqs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			img, err := Load(req.Path)
			results[i] = Result{Index: req.Index, Image: img, Err: err}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
