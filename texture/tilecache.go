package texture

import (
	"sync"
	"sync/atomic"

	"github.com/duskray/raycore/rendererr"
)

// tileState is the four-state machine: NotLoaded -> Loading -> Loaded,
// or -> Error on failure.
type tileState int32

const (
	tileNotLoaded tileState = iota
	tileLoading
	tileLoaded
	tileError
)

// TileCache lazily builds the tile covering an ImageSource's data window on
// first sample, guarding the transition with a mutex held only long enough
// to test-and-set state to Loading, then a sync.Cond other goroutines wait
// on instead of spin-waiting via sleep, applied to the same
// NotLoaded/Loading/Loaded/Error shape a similar engine's
// sync.RWMutex-guarded TextureManager cache uses for whole textures
// (textures/texture.go), narrowed here to a single tile.
type TileCache struct {
	src ImageSource

	mu    sync.Mutex
	cond  *sync.Cond
	state int32 // tileState, accessed via sync/atomic

	pixels []float32
	width, height, channels int
	err    error
}

// NewTileCache wraps src in a lazily-populated tile cache. No work happens
// until the first Ensure call.
func NewTileCache(src ImageSource) *TileCache {
	tc := &TileCache{src: src}
	tc.cond = sync.NewCond(&tc.mu)
	return tc
}

// Ensure blocks until the tile is Loaded or Error, building it on the
// calling goroutine if this is the first caller to observe NotLoaded.
func (tc *TileCache) Ensure() error {
	if atomic.LoadInt32(&tc.state) == int32(tileLoaded) {
		return nil
	}

	tc.mu.Lock()
	switch tileState(tc.state) {
	case tileLoaded:
		tc.mu.Unlock()
		return nil
	case tileError:
		err := tc.err
		tc.mu.Unlock()
		return err
	case tileLoading:
		for tileState(tc.state) == tileLoading {
			tc.cond.Wait()
		}
		err := tc.err
		tc.mu.Unlock()
		return err
	default: // tileNotLoaded: this goroutine performs the build
		atomic.StoreInt32(&tc.state, int32(tileLoading))
		tc.mu.Unlock()
	}

	pixels, w, h, ch, err := buildTile(tc.src)

	tc.mu.Lock()
	if err != nil {
		tc.err = rendererr.NewResourceError("texture", err, "building tile")
		atomic.StoreInt32(&tc.state, int32(tileError))
	} else {
		tc.pixels, tc.width, tc.height, tc.channels = pixels, w, h, ch
		atomic.StoreInt32(&tc.state, int32(tileLoaded))
	}
	tc.mu.Unlock()
	tc.cond.Broadcast()

	return tc.err
}

// buildTile copies the source's full data window into a flat buffer;
// separated from Ensure so it runs unlocked — the mutex is held only
// long enough to test-and-set the status.
func buildTile(src ImageSource) (pixels []float32, w, h, ch int, err error) {
	w, h, ch = src.Width(), src.Height(), src.Channels()
	pixels = make([]float32, w*h*ch)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			for c := 0; c < ch; c++ {
				pixels[(y*w+x)*ch+c] = src.Sample(x, y, c)
			}
		}
	}
	return pixels, w, h, ch, nil
}

// texel returns the clamped-edge sample at integer texel (x,y), channel c,
// used by the filter in sample.go to clamp sample footprints at tile edges.
func (tc *TileCache) texel(x, y, c int) float32 {
	if x < 0 {
		x = 0
	}
	if x >= tc.width {
		x = tc.width - 1
	}
	if y < 0 {
		y = 0
	}
	if y >= tc.height {
		y = tc.height - 1
	}
	return tc.pixels[(y*tc.width+x)*tc.channels+c]
}
