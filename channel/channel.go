// Package channel implements the sparse per-pixel channel table shared by
// every shader, AOV layer, and the pixel-sample driver: RGB/alpha/Z plus
// an open-ended list of named AOV layers.
package channel

import "strings"

// Index is a stable offset into a Set's backing float buffer.
type Index int

// NoIndex marks a channel that has not been allocated.
const NoIndex Index = -1

// Standard channels always occupy the first fixed slots of a Set.
const (
	R Index = iota
	G
	B
	A
	Z
	DeepFront
	DeepBack
	numStandard
)

// Set is a sparse, named index of image channels. A shader declares the
// channels it consumes and produces by name; the render context unions
// these across every reachable shader to size the per-pixel buffer once.
type Set struct {
	names []string      // index -> name, len == width
	byName map[string]Index
}

// NewSet returns a Set pre-populated with the standard RGBA/Z/deep channels.
func NewSet() *Set {
	s := &Set{byName: make(map[string]Index)}
	for _, name := range []string{"r", "g", "b", "a", "z", "deep.front", "deep.back"} {
		s.intern(name)
	}
	return s
}

func (s *Set) intern(name string) Index {
	name = strings.ToLower(name)
	if idx, ok := s.byName[name]; ok {
		return idx
	}
	idx := Index(len(s.names))
	s.names = append(s.names, name)
	s.byName[name] = idx
	return idx
}

// Add registers name if not already present and returns its Index, so
// repeated Add calls for the same AOV across many shaders converge on one
// slot.
func (s *Set) Add(name string) Index { return s.intern(name) }

// Lookup returns a channel's Index, or NoIndex if name was never added.
func (s *Set) Lookup(name string) Index {
	if idx, ok := s.byName[strings.ToLower(name)]; ok {
		return idx
	}
	return NoIndex
}

// Width is the number of allocated channels, i.e. the size a per-pixel
// buffer sized against this Set must have.
func (s *Set) Width() int { return len(s.names) }

// Name returns the channel name at idx.
func (s *Set) Name(idx Index) string { return s.names[idx] }

// NewPixel allocates a zeroed per-pixel buffer sized for this Set.
func (s *Set) NewPixel() []float32 { return make([]float32, len(s.names)) }

// Union merges o's channels into s, returning the (possibly renumbered)
// index each of o's channels now occupies in s.
func (s *Set) Union(o *Set) map[Index]Index {
	remap := make(map[Index]Index, len(o.names))
	for i, name := range o.names {
		remap[Index(i)] = s.intern(name)
	}
	return remap
}
