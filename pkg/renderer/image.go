package renderer

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"github.com/HugoSmits86/nativewebp"
)

// ToImage converts raw pixel sample sums into an 8-bit image: divide by the
// sample count, gamma-correct with sqrt (gamma 2.0), clamp to [0, 0.999] and
// quantize.
func ToImage(pixels []Pixel, width, height, samplesPerPixel int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	scale := 1.0 / float64(samplesPerPixel)

	for _, p := range pixels {
		img.SetRGBA(p.Col, p.Row, color.RGBA{
			R: quantize(p.Color.X * scale),
			G: quantize(p.Color.Y * scale),
			B: quantize(p.Color.Z * scale),
			A: 255,
		})
	}

	return img
}

func quantize(channel float64) uint8 {
	v := math.Sqrt(channel)
	return uint8(255.999 * min(max(v, 0), 0.999))
}

// WritePNG encodes the image as PNG
func WritePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("renderer: encode png: %w", err)
	}
	return nil
}

// WriteWebP encodes the image as lossless WebP
func WriteWebP(w io.Writer, img image.Image) error {
	if err := nativewebp.Encode(w, img, nil); err != nil {
		return fmt.Errorf("renderer: encode webp: %w", err)
	}
	return nil
}
