package renderer

import (
	"math"
	"math/rand"
	"runtime"
	"sync"

	"github.com/AndreasKarg/raytracer-weekend/pkg/core"
)

// Scene is the renderer's input: a single top-level Hittable (normally a BVH
// over the whole world), a camera and the color returned when a ray escapes
// all geometry. Fully built before rendering starts and read-only during it,
// which is what makes unsynchronized parallel reads safe.
type Scene struct {
	World      core.Hittable
	Camera     *Camera
	Background core.Vec3
}

// Pixel is one rendered pixel. Color holds the raw sample sum; the consumer
// divides by the sample count and gamma-corrects before quantizing.
type Pixel struct {
	Row   int // Image row, 0 at the top
	Col   int
	Color core.Vec3
}

// Options configures a render
type Options struct {
	Width           int
	Height          int
	SamplesPerPixel int
	MaxDepth        int   // Hard recursion cutoff per sample
	Workers         int   // <= 0 means one per CPU
	Seed            int64 // Base seed for the deterministic per-row streams
	Progress        func(completedRows, totalRows int)
}

// DefaultOptions returns the conventional render settings
func DefaultOptions() Options {
	return Options{
		Width:           400,
		Height:          225,
		SamplesPerPixel: 100,
		MaxDepth:        50,
		Seed:            42,
	}
}

// Renderer drives per-pixel multi-sample Monte-Carlo estimation
type Renderer struct {
	scene *Scene
	opts  Options
}

// New creates a renderer for the given scene
func New(scene *Scene, opts Options) *Renderer {
	if opts.MaxDepth <= 0 {
		opts.MaxDepth = 50
	}
	if opts.Workers <= 0 {
		opts.Workers = runtime.NumCPU()
	}
	return &Renderer{scene: scene, opts: opts}
}

// Render renders every pixel in parallel, splitting work per row across a
// fixed worker pool. Each row draws from its own random stream seeded from
// the base seed and the row index, so the output does not depend on the
// worker count. Pixels are returned row-major, top row first.
func (r *Renderer) Render() []Pixel {
	width, height := r.opts.Width, r.opts.Height
	pixels := make([]Pixel, width*height)

	rows := make(chan int, height)
	for row := 0; row < height; row++ {
		rows <- row
	}
	close(rows)

	completed := make(chan int, height)

	var wg sync.WaitGroup
	for i := 0; i < r.opts.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for row := range rows {
				rng := rand.New(rand.NewSource(r.rowSeed(row)))
				r.renderRow(row, rng, func(p Pixel) {
					pixels[p.Row*width+p.Col] = p
				})
				completed <- row
			}
		}()
	}

	go func() {
		wg.Wait()
		close(completed)
	}()

	done := 0
	for range completed {
		done++
		if r.opts.Progress != nil {
			r.opts.Progress(done, height)
		}
	}

	return pixels
}

// RenderStream renders serially from a single seeded stream and hands each
// pixel to yield as soon as it is finished, top row first. Peak memory stays
// constant regardless of image size, which is what a fixed-arena deployment
// needs.
func (r *Renderer) RenderStream(yield func(Pixel)) {
	rng := rand.New(rand.NewSource(r.opts.Seed))

	for row := 0; row < r.opts.Height; row++ {
		r.renderRow(row, rng, yield)
		if r.opts.Progress != nil {
			r.opts.Progress(row+1, r.opts.Height)
		}
	}
}

// rowSeed derives a per-row stream seed from the base seed
func (r *Renderer) rowSeed(row int) int64 {
	return r.opts.Seed + int64(row)*0x9E3779B9
}

func (r *Renderer) renderRow(row int, rng *rand.Rand, yield func(Pixel)) {
	width, height := r.opts.Width, r.opts.Height

	// Image row 0 is the top of the frame; the camera's t axis points up.
	j := height - 1 - row

	for col := 0; col < width; col++ {
		var sum core.Vec3

		for sample := 0; sample < r.opts.SamplesPerPixel; sample++ {
			s := (float64(col) + rng.Float64()) / float64(width-1)
			t := (float64(j) + rng.Float64()) / float64(height-1)

			ray := r.scene.Camera.Ray(s, t, rng)
			sum = sum.Add(r.rayColor(ray, r.opts.MaxDepth, rng))
		}

		yield(Pixel{Row: row, Col: col, Color: sum})
	}
}

// rayColor is the recursive path-tracing estimator: emitted light plus the
// attenuated estimate along the scattered continuation ray.
func (r *Renderer) rayColor(ray core.Ray, depth int, rng *rand.Rand) core.Vec3 {
	if depth <= 0 {
		return core.Vec3{}
	}

	// The 0.001 lower bound avoids immediate re-self-intersection.
	hit, ok := r.scene.World.Hit(ray, 0.001, math.Inf(1), rng)
	if !ok {
		return r.scene.Background
	}

	emitted := hit.Material.Emitted(hit.UV, hit.Point)

	scatter, ok := hit.Material.Scatter(ray, hit, rng)
	if !ok {
		return emitted
	}

	return emitted.Add(scatter.Attenuation.MultiplyVec(r.rayColor(scatter.Scattered, depth-1, rng)))
}
