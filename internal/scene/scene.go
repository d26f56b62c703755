package scene

import (
	"cmp"
	"slices"

	"github.com/google/uuid"

	"github.com/zeusync/geometry/internal/observability/log"
	"github.com/zeusync/geometry/pkg/geometry"
)

// DefaultShards is the shard count used by Provide.
const DefaultShards = 16

// Body is a named shape registered in a Scene.
type Body struct {
	ID    string
	Name  string
	Shape geometry.Bounded
}

// Box is the body's bounding box.
func (b Body) Box() geometry.Rectangle { return b.Shape.Box() }

// Scene is a concurrent registry of bodies that answers culling queries
// against their bounding boxes. It never inspects shape edges.
type Scene struct {
	shards []*shard
	count  int
	logger log.Log
}

type Option func(*Scene)

func WithLogger(logger log.Log) Option {
	return func(s *Scene) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New creates a Scene spread over shardCount shards.
func New(shardCount int, opts ...Option) *Scene {
	if shardCount <= 0 {
		shardCount = DefaultShards
	}

	s := &Scene{
		shards: make([]*shard, shardCount),
		count:  shardCount,
		logger: log.NewNop(),
	}
	for i := range s.shards {
		s.shards[i] = newShard()
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Provide is the wire provider for a Scene. A nil logger falls back to the
// no-op logger instead of being stored as a typed nil.
func Provide(logger *log.Logger) *Scene {
	if logger == nil {
		return New(DefaultShards)
	}
	return New(DefaultShards, WithLogger(logger))
}

func (s *Scene) shardFor(id string) *shard {
	return s.shards[xHash32(id)%uint32(s.count)]
}

// Add registers shape under name and returns its generated id.
func (s *Scene) Add(name string, shape geometry.Bounded) (string, error) {
	if shape == nil {
		return "", ErrNilShape
	}

	b := Body{ID: uuid.NewString(), Name: name, Shape: shape}
	s.shardFor(b.ID).put(b)
	s.logger.Debug("body added",
		log.String("id", b.ID),
		log.String("name", name),
		log.Stringer("box", shape.Box()),
	)
	return b.ID, nil
}

func (s *Scene) Get(id string) (Body, bool) {
	return s.shardFor(id).get(id)
}

// Replace swaps the shape of an existing body. Shapes are immutable, so
// moving or resizing a body goes through here.
func (s *Scene) Replace(id string, shape geometry.Bounded) error {
	if shape == nil {
		return ErrNilShape
	}

	b, ok := s.shardFor(id).update(id, func(b Body) Body {
		b.Shape = shape
		return b
	})
	if !ok {
		return ErrBodyNotFound
	}
	s.logger.Debug("body replaced",
		log.String("id", id),
		log.String("name", b.Name),
		log.Stringer("box", shape.Box()),
	)
	return nil
}

func (s *Scene) Remove(id string) bool {
	removed := s.shardFor(id).remove(id)
	if removed {
		s.logger.Debug("body removed", log.String("id", id))
	}
	return removed
}

func (s *Scene) Len() int {
	n := 0
	for _, sh := range s.shards {
		n += sh.len()
	}
	return n
}

// Visible returns the bodies whose bounding box overlaps view, ordered by
// name and then id.
func (s *Scene) Visible(view geometry.Rectangle) []Body {
	var out []Body
	for _, sh := range s.shards {
		out = append(out, sh.snapshot(func(b Body) bool {
			return b.Box().Overlaps(view)
		})...)
	}
	sortBodies(out)
	return out
}

// Each calls fn for every body in name order until fn returns false.
func (s *Scene) Each(fn func(Body) bool) {
	var all []Body
	for _, sh := range s.shards {
		all = append(all, sh.snapshot(nil)...)
	}
	sortBodies(all)
	for _, b := range all {
		if !fn(b) {
			return
		}
	}
}

func sortBodies(bodies []Body) {
	slices.SortFunc(bodies, func(a, b Body) int {
		return cmp.Or(cmp.Compare(a.Name, b.Name), cmp.Compare(a.ID, b.ID))
	})
}
