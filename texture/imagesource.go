// Package texture implements the tiled image sampler: a lazily-built
// tile cache, an elliptically-weighted-area filter over per-ray UV
// derivatives, and the UDIM tile-addressing convention.
package texture

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/duskray/raycore/rendererr"
)

// ImageSource is the external 2-D image provider: the renderer holds a
// reference to it, never a copy, so the host can stream or re-decode as
// it likes.
type ImageSource interface {
	Channels() int
	Format() string
	Width() int
	Height() int
	Sample(x, y, channel int) float32
}

// FileImageSource decodes a raster file up front into a flat float buffer,
// the renderer-side counterpart of a similar engine's loadImageFile
// (textures/texture.go) and scene/texture.go's LoadTexture: same "open,
// decode, keep RGBA floats" shape, generalized from uint8 GPU upload bytes
// to the float32 samples the filter math in sample.go needs.
type FileImageSource struct {
	path           string
	width, height  int
	pixels         []float32 // width*height*4, RGBA, row-major
}

// LoadFileImageSource opens and decodes path. PNG/JPEG/GIF go through the
// stdlib image package (registered via the blank imports above); BMP/TIFF
// go through golang.org/x/image, which the stdlib does not cover.
func LoadFileImageSource(path string) (*FileImageSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, rendererr.NewResourceError("texture", err, "open %q", path)
	}
	defer f.Close()

	img, format, err := decodeAny(f)
	if err != nil {
		return nil, rendererr.NewResourceError("texture", err, "decode %q", path)
	}
	_ = format

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	pixels := make([]float32, w*h*4)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b, a := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			idx := (y*w + x) * 4
			pixels[idx] = float32(r) / 65535
			pixels[idx+1] = float32(g) / 65535
			pixels[idx+2] = float32(b) / 65535
			pixels[idx+3] = float32(a) / 65535
		}
	}
	return &FileImageSource{path: path, width: w, height: h, pixels: pixels}, nil
}

func decodeAny(f *os.File) (image.Image, string, error) {
	if img, format, err := image.Decode(f); err == nil {
		return img, format, nil
	}
	if _, err := f.Seek(0, 0); err != nil {
		return nil, "", err
	}
	if img, err := bmp.Decode(f); err == nil {
		return img, "bmp", nil
	}
	if _, err := f.Seek(0, 0); err != nil {
		return nil, "", err
	}
	if img, err := tiff.Decode(f); err == nil {
		return img, "tiff", nil
	}
	return nil, "", fmt.Errorf("unrecognized image format")
}

func (f *FileImageSource) Channels() int { return 4 }
func (f *FileImageSource) Format() string { return "rgba32f" }
func (f *FileImageSource) Width() int  { return f.width }
func (f *FileImageSource) Height() int { return f.height }

func (f *FileImageSource) Sample(x, y, channel int) float32 {
	if x < 0 {
		x = 0
	}
	if x >= f.width {
		x = f.width - 1
	}
	if y < 0 {
		y = 0
	}
	if y >= f.height {
		y = f.height - 1
	}
	return f.pixels[(y*f.width+x)*4+channel]
}

// SolidImageSource is a constant 1x1 image, used as a fallback source and
// in tests; grounded on a prior engine's CreateSolidColorTexture.
type SolidImageSource struct {
	R, G, B, A float32
}

func (s SolidImageSource) Channels() int   { return 4 }
func (s SolidImageSource) Format() string  { return "rgba32f" }
func (s SolidImageSource) Width() int      { return 1 }
func (s SolidImageSource) Height() int     { return 1 }
func (s SolidImageSource) Sample(_, _, channel int) float32 {
	switch channel {
	case 0:
		return s.R
	case 1:
		return s.G
	case 2:
		return s.B
	default:
		return s.A
	}
}
