package scene

import (
	"sync"

	"github.com/cespare/xxhash/v2"
)

// shard owns a subset of the bodies, selected by id hash, behind its own lock.
type shard struct {
	mx     sync.RWMutex
	bodies map[string]Body
}

func newShard() *shard {
	return &shard{bodies: make(map[string]Body)}
}

func (s *shard) get(id string) (Body, bool) {
	s.mx.RLock()
	defer s.mx.RUnlock()
	b, ok := s.bodies[id]
	return b, ok
}

func (s *shard) put(b Body) {
	s.mx.Lock()
	s.bodies[b.ID] = b
	s.mx.Unlock()
}

// update swaps the body's shape in place and reports whether id was present.
func (s *shard) update(id string, fn func(Body) Body) (Body, bool) {
	s.mx.Lock()
	defer s.mx.Unlock()
	b, ok := s.bodies[id]
	if !ok {
		return Body{}, false
	}
	b = fn(b)
	s.bodies[id] = b
	return b, true
}

func (s *shard) remove(id string) bool {
	s.mx.Lock()
	defer s.mx.Unlock()
	if _, ok := s.bodies[id]; !ok {
		return false
	}
	delete(s.bodies, id)
	return true
}

func (s *shard) len() int {
	s.mx.RLock()
	defer s.mx.RUnlock()
	return len(s.bodies)
}

// snapshot copies the bodies accepted by keep so callers never hold the lock.
func (s *shard) snapshot(keep func(Body) bool) []Body {
	s.mx.RLock()
	defer s.mx.RUnlock()
	out := make([]Body, 0, len(s.bodies))
	for _, b := range s.bodies {
		if keep == nil || keep(b) {
			out = append(out, b)
		}
	}
	return out
}

func xHash32(key string) uint32 {
	return uint32(xxhash.Sum64String(key))
}
