package advanced

import (
	"context"
	"runtime"

	"github.com/osuushi/cubicmvc/internal"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// FieldOption configures a Field.
type FieldOption func(*fieldOptions)

type fieldOptions struct {
	workers int
}

func defaultFieldOptions() fieldOptions {
	return fieldOptions{workers: runtime.GOMAXPROCS(0)}
}

// WithWorkers bounds the number of goroutines evaluating query points. Values
// below one are treated as one.
func WithWorkers(n int) FieldOption {
	return func(o *fieldOptions) {
		if n < 1 {
			n = 1
		}
		o.workers = n
	}
}

// Field evaluates many query points against one fixed boundary. The boundary
// is validated once, when the Field is created, and is only ever read
// afterwards, so workers share it without locking; each worker has its own
// Workspace.
type Field struct {
	vertices []Point
	edges    EdgeSource
	options  fieldOptions
}

func NewField(vertices []Point, edges EdgeSource, opts ...FieldOption) (*Field, error) {
	if err := Validate(vertices, edges); err != nil {
		return nil, err
	}
	options := defaultFieldOptions()
	for _, opt := range opts {
		opt(&options)
	}
	return &Field{vertices: vertices, edges: edges, options: options}, nil
}

// Evaluate computes the coordinates of every query point, in order. It stops
// at the first failing point, or when ctx is done, and reports which point
// failed.
func (f *Field) Evaluate(ctx context.Context, queries []Point) ([]*Coordinates, error) {
	results := make([]*Coordinates, len(queries))
	workers := f.options.workers
	if workers > len(queries) {
		workers = len(queries)
	}

	g, ctx := errgroup.WithContext(ctx)
	for worker := 0; worker < workers; worker++ {
		worker := worker
		g.Go(func() error {
			var workspace Workspace
			for i := worker; i < len(queries); i += workers {
				if err := ctx.Err(); err != nil {
					return err
				}
				c, err := workspace.Evaluate(f.vertices, f.edges, queries[i])
				if err != nil {
					return errors.Wrapf(err, "query %d at (%g, %g)", i, queries[i].X, queries[i].Y)
				}
				results[i] = Copy(c)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	internal.Logger().Debug("evaluated field", "queries", len(queries), "workers", workers)
	return results, nil
}
