package wire

import (
	"errors"
	"image"

	"github.com/AndreasKarg/raytracer-weekend/pkg/renderer"
)

// Receiver assembles an image from a progress message stream, mirroring the
// transfer function the renderer applies locally.
type Receiver struct {
	width, height   int
	samplesPerPixel int
	pixels          []renderer.Pixel
	started         bool
	complete        bool
}

// NewReceiver returns an empty Receiver awaiting an ImageStart.
func NewReceiver() *Receiver {
	return &Receiver{}
}

// Handle consumes one message. Pixels arriving before an ImageStart are
// dropped, matching a receiver attached mid-stream.
func (r *Receiver) Handle(msg Message) error {
	switch m := msg.(type) {
	case ImageStart:
		r.width = int(m.Width)
		r.height = int(m.Height)
		r.samplesPerPixel = int(m.SamplesPerPixel)
		r.pixels = make([]renderer.Pixel, 0, r.width*r.height)
		r.started = true
		r.complete = false
		return nil

	case Pixel:
		if !r.started || r.complete {
			return nil
		}
		if int(m.Row) >= r.height || int(m.Column) >= r.width {
			return errors.New("wire: pixel outside announced image bounds")
		}
		r.pixels = append(r.pixels, renderer.Pixel{
			Row:   int(m.Row),
			Col:   int(m.Column),
			Color: m.Color,
		})
		return nil

	case ImageEnd:
		if r.started {
			r.complete = true
		}
		return nil

	default:
		return errors.New("wire: unhandled message")
	}
}

// Progress reports received and expected pixel counts. Total is zero before
// the first ImageStart.
func (r *Receiver) Progress() (received, total int) {
	return len(r.pixels), r.width * r.height
}

// Complete reports whether an ImageEnd has arrived for the current image.
func (r *Receiver) Complete() bool {
	return r.complete
}

// Image renders the pixels received so far into an 8-bit image. Missing
// pixels stay black, so a partial image is usable for live preview.
func (r *Receiver) Image() (*image.RGBA, error) {
	if !r.started {
		return nil, errors.New("wire: no image started")
	}
	return renderer.ToImage(r.pixels, r.width, r.height, r.samplesPerPixel), nil
}
