package catalog

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/zeusync/geometry/internal/observability/log"
	"github.com/zeusync/geometry/internal/scene"
	"github.com/zeusync/geometry/pkg/geometry"
)

// Build constructs every shape concurrently. It returns the first error
// encountered, tagged with the offending shape name.
func (c *Config) Build(ctx context.Context, logger log.Log) (map[string]geometry.Bounded, error) {
	if logger == nil {
		logger = log.NewNop()
	}
	if err := c.validateNames(); err != nil {
		return nil, err
	}

	built := make([]geometry.Bounded, len(c.Shapes))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, def := range c.Shapes {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			shape, err := def.Build()
			if err != nil {
				return fmt.Errorf("shape %q: %w", def.Name, err)
			}
			built[i] = shape
			logger.Debug("shape built",
				log.String("name", def.Name),
				log.String("kind", string(def.Kind)),
				log.Stringer("box", shape.Box()),
			)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		logger.Warn("catalog build failed", log.Error(err))
		return nil, err
	}

	shapes := make(map[string]geometry.Bounded, len(built))
	for i, def := range c.Shapes {
		shapes[def.Name] = built[i]
	}
	logger.Info("catalog built", log.Int("shapes", len(shapes)))
	return shapes, nil
}

// Populate builds the catalog and registers each shape in s. It returns the
// body id assigned to every shape name.
func (c *Config) Populate(ctx context.Context, s *scene.Scene, logger log.Log) (map[string]string, error) {
	shapes, err := c.Build(ctx, logger)
	if err != nil {
		return nil, err
	}

	ids := make(map[string]string, len(shapes))
	for _, def := range c.Shapes {
		id, err := s.Add(def.Name, shapes[def.Name])
		if err != nil {
			return nil, fmt.Errorf("shape %q: %w", def.Name, err)
		}
		ids[def.Name] = id
	}
	return ids, nil
}

func (c *Config) validateNames() error {
	seen := make(map[string]struct{}, len(c.Shapes))
	for i, def := range c.Shapes {
		if def.Name == "" {
			return fmt.Errorf("%w: shape #%d", ErrEmptyName, i)
		}
		if _, ok := seen[def.Name]; ok {
			return fmt.Errorf("%w: %q", ErrDuplicateName, def.Name)
		}
		seen[def.Name] = struct{}{}
	}
	return nil
}
