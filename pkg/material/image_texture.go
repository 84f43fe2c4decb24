package material

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	// TGA is a common texture interchange format; bmp covers legacy assets.
	_ "github.com/ftrvxmtrx/tga"
	xdraw "golang.org/x/image/draw"

	_ "golang.org/x/image/bmp"

	"github.com/AndreasKarg/raytracer-weekend/pkg/core"
)

// maxTextureDim caps decoded texture size. Anything larger is downscaled at
// load time so samplers stay cache-friendly and a bad asset cannot blow up
// memory next to a million-primitive scene.
const maxTextureDim = 4096

// ImageTexture samples a decoded bitmap. Pixels are stored row-major as
// linear colors; the backing data is immutable after construction and shared
// across every primitive referencing the texture.
type ImageTexture struct {
	Width  int
	Height int
	Pixels []core.Vec3 // Pixels[y*Width + x], row 0 at the top
}

// NewImageTexture creates a texture from pre-decoded pixels
func NewImageTexture(width, height int, pixels []core.Vec3) *ImageTexture {
	return &ImageTexture{Width: width, Height: height, Pixels: pixels}
}

// LoadImageTexture decodes a bitmap file (png, jpeg, tga or bmp) into a
// texture. Missing or malformed files fail fast, before rendering starts.
func LoadImageTexture(path string) (*ImageTexture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("texture: open %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("texture: decode %s: %w", path, err)
	}

	bounds := img.Bounds()
	if bounds.Dx() > maxTextureDim || bounds.Dy() > maxTextureDim {
		img = downscale(img, maxTextureDim)
		bounds = img.Bounds()
	}

	width, height := bounds.Dx(), bounds.Dy()
	pixels := make([]core.Vec3, width*height)

	const colorScale = 1.0 / 65535.0
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			pixels[y*width+x] = core.NewVec3(
				float64(r)*colorScale,
				float64(g)*colorScale,
				float64(b)*colorScale,
			)
		}
	}

	return NewImageTexture(width, height, pixels), nil
}

// downscale resizes img so its longest edge equals maxDim, preserving aspect.
func downscale(img image.Image, maxDim int) image.Image {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	scale := float64(maxDim) / float64(max(width, height))
	dst := image.NewRGBA(image.Rect(0, 0, int(float64(width)*scale), int(float64(height)*scale)))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, xdraw.Over, nil)

	return dst
}

// Value samples the bitmap with clamped nearest-neighbor lookup. v is
// flipped because image row 0 is conventionally the top.
func (t *ImageTexture) Value(uv core.Vec2, p core.Vec3) core.Vec3 {
	u := min(max(uv.U, 0), 1)
	v := 1 - min(max(uv.V, 0), 1)

	x := int(u * float64(t.Width))
	y := int(v * float64(t.Height))

	if x >= t.Width {
		x = t.Width - 1
	}
	if y >= t.Height {
		y = t.Height - 1
	}

	return t.Pixels[y*t.Width+x]
}
