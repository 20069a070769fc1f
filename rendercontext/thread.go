package rendercontext

import (
	"github.com/duskray/raycore/channel"
	"github.com/duskray/raycore/hostapi"
	"github.com/duskray/raycore/isect"
	"github.com/duskray/raycore/ray"
	"github.com/duskray/raycore/shadectx"
	"github.com/duskray/raycore/volume"
)

// Thread is one worker goroutine's render scratch state: a render context
// reference, a LIFO stack of shader-evaluation frames, scratch vectors
// reserved up front, per-channel pixel buffers, and an InterestRatchet per
// buffer — all exclusively owned by the goroutine that created them, so a
// worker never needs to synchronize against another worker's scratch
// state.
type Thread struct {
	Render   *Render
	Canceler hostapi.Canceler

	stack []*shadectx.ShaderContext

	Intersections []isect.Intersection
	Leaves        []int
	Deep          []volume.DeepSample

	pixel    []float32
	ratchets map[string]*InterestRatchet
}

// NewThread returns a Thread attached to r with scratch vectors
// preallocated to scratchCap, matching a common pattern of sizing
// buffers once at construction instead of growing them per pixel.
func NewThread(r *Render, cancel hostapi.Canceler, scratchCap int) *Thread {
	t := &Thread{
		Render:        r,
		Canceler:      cancel,
		stack:         make([]*shadectx.ShaderContext, 0, 64),
		Intersections: make([]isect.Intersection, 0, scratchCap),
		Leaves:        make([]int, 0, scratchCap),
		Deep:          make([]volume.DeepSample, 0, scratchCap),
		ratchets:      make(map[string]*InterestRatchet),
	}
	if r != nil && r.Channels != nil {
		t.pixel = r.Channels.NewPixel()
	}
	return t
}

// Aborted implements shadectx.ThreadScratch, polling the host-provided
// Canceler calls for.
func (t *Thread) Aborted() bool {
	return t.Canceler != nil && t.Canceler.Aborted()
}

// Pixel returns this thread's per-channel accumulation buffer, sized
// against Render.Channels.
func (t *Thread) Pixel() []float32 { return t.pixel }

// Ratchet returns (creating if needed) the InterestRatchet for the named
// buffer — in practice always Render.Channels, but keyed by name so a
// thread can hold ratchets for more than one channel set if ever needed.
func (t *Thread) Ratchet(setName string, set *channel.Set) *InterestRatchet {
	if r, ok := t.ratchets[setName]; ok {
		return r
	}
	r := NewInterestRatchet(set)
	t.ratchets[setName] = r
	return r
}

// NewRootContext pushes and returns a fresh root ShaderContext for a
// primary ray onto the thread's stack.
func (t *Thread) NewRootContext(r ray.Ray, diff ray.Differential, time float32) *shadectx.ShaderContext {
	stx := &shadectx.ShaderContext{
		Ray:    r,
		Diff:   diff,
		Time:   time,
		Thread: t,
		Render: t.Render,
	}
	t.Push(stx)
	return stx
}

// Push appends stx to the frame stack.
func (t *Thread) Push(stx *shadectx.ShaderContext) { t.stack = append(t.stack, stx) }

// Pop removes and returns the top frame; it is a no-op returning nil on
// an empty stack rather than panicking.
func (t *Thread) Pop() *shadectx.ShaderContext {
	if len(t.stack) == 0 {
		return nil
	}
	top := t.stack[len(t.stack)-1]
	t.stack = t.stack[:len(t.stack)-1]
	return top
}

// Depth returns the current frame-stack depth.
func (t *Thread) Depth() int { return len(t.stack) }
