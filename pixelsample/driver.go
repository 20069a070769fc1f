package pixelsample

import (
	"github.com/duskray/raycore/channel"
	"github.com/duskray/raycore/hostapi"
	"github.com/duskray/raycore/rendercontext"
	"github.com/duskray/raycore/rendererr"
)

// Driver wires one Render to a host's FrameNotifier, reproducing the
// Validate -> Request -> per-scanline Engine sequence hostapi.FrameNotifier
// documents.
type Driver struct {
	Render   *rendercontext.Render
	Notifier hostapi.FrameNotifier
	Cancel   hostapi.Canceler
}

// RenderRegion validates the render and the host, announces the region,
// channel set, and sample count, then shades and delivers one scanline at
// a time. forReal distinguishes a final render from a UI preview, passed
// straight through to the notifier.
func (d *Driver) RenderRegion(forReal bool, shutterT float32) error {
	if err := d.Render.Validate(); err != nil {
		return err
	}
	if err := d.Notifier.Validate(forReal); err != nil {
		return err
	}

	names := channelNames(d.Render.Channels)
	region := d.Render.Region
	width := region.MaxX - region.MinX
	if width <= 0 {
		return rendererr.NewConfigurationError("pixelsample", nil, "render region has non-positive width")
	}
	sampleCount := d.Render.Tunables.SubSampleGridX * d.Render.Tunables.SubSampleGridY
	d.Notifier.Request(region, names, sampleCount)

	th := rendercontext.NewThread(d.Render, d.Cancel, width)

	for y := region.MinY; y < region.MaxY; y++ {
		if d.Cancel != nil && d.Cancel.Aborted() {
			return rendererr.NewCancellationError("pixelsample", nil, "render aborted by host")
		}
		row := make([]float32, width*len(names))
		for x := region.MinX; x < region.MaxX; x++ {
			px := Sample(d.Render, th, x, y, shutterT)
			copy(row[(x-region.MinX)*len(names):], px)
		}
		d.Notifier.Engine(y, region.MinX, width, names, row)
	}
	return nil
}

func channelNames(set *channel.Set) []string {
	names := make([]string, set.Width())
	for i := range names {
		names[i] = set.Name(channel.Index(i))
	}
	return names
}
