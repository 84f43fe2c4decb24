package cmd

import (
	"bytes"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"

	"github.com/AndreasKarg/raytracer-weekend/pkg/renderer"
)

// RenderScene renders a catalogue scene or a world descriptor file to an
// image file.
func RenderScene(ctx *cli.Context) error {
	setupLogging(ctx)

	if ctx.NArg() != 1 {
		return fmt.Errorf("missing scene argument (catalogue name or world file)")
	}
	name := ctx.Args().First()

	opts := renderer.DefaultOptions()
	opts.Width = ctx.Int("width")
	opts.SamplesPerPixel = ctx.Int("spp")
	opts.MaxDepth = ctx.Int("depth")
	opts.Workers = ctx.Int("workers")
	opts.Seed = ctx.Int64("seed")

	aspectRatio, err := parseAspectRatio(ctx.String("aspect-ratio"))
	if err != nil {
		return err
	}
	opts.Height = int(float64(opts.Width) / aspectRatio)
	if opts.Height < 1 {
		return fmt.Errorf("width %d at aspect ratio %s leaves no rows", opts.Width, ctx.String("aspect-ratio"))
	}

	sc, err := loadScene(name, aspectRatio, opts.Seed, ctx.Int("camera"))
	if err != nil {
		return err
	}

	lastPercent := -1
	opts.Progress = func(completedRows, totalRows int) {
		percent := completedRows * 100 / totalRows
		if percent/10 > lastPercent/10 {
			logger.Infof("rendered %d/%d rows (%d%%)", completedRows, totalRows, percent)
		}
		lastPercent = percent
	}

	logger.Noticef("rendering %s at %dx%d, %d samples/pixel", name, opts.Width, opts.Height, opts.SamplesPerPixel)

	r := renderer.New(sc, opts)
	start := time.Now()
	pixels := r.Render()
	elapsed := time.Since(start)

	img := renderer.ToImage(pixels, opts.Width, opts.Height, opts.SamplesPerPixel)

	outPath := ctx.String("out")
	if err := writeImageFile(outPath, img); err != nil {
		return err
	}

	displayRenderStats(name, outPath, opts, elapsed)
	return nil
}

// parseAspectRatio accepts "W:H" or a plain decimal.
func parseAspectRatio(s string) (float64, error) {
	if w, h, ok := strings.Cut(s, ":"); ok {
		var wf, hf float64
		if _, err := fmt.Sscanf(w+" "+h, "%f %f", &wf, &hf); err != nil || hf == 0 {
			return 0, fmt.Errorf("invalid aspect ratio %q", s)
		}
		return wf / hf, nil
	}

	var ratio float64
	if _, err := fmt.Sscanf(s, "%f", &ratio); err != nil || ratio <= 0 {
		return 0, fmt.Errorf("invalid aspect ratio %q", s)
	}
	return ratio, nil
}

// writeImageFile picks the encoder from the file extension.
func writeImageFile(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png":
		err = renderer.WritePNG(f, img)
	case ".webp":
		err = renderer.WriteWebP(f, img)
	default:
		err = fmt.Errorf("unsupported output format %q, use .png or .webp", ext)
	}
	if err != nil {
		return err
	}

	return f.Close()
}

func displayRenderStats(sceneName, outPath string, opts renderer.Options, elapsed time.Duration) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Scene", "Resolution", "Samples", "Workers", "Render time"})
	table.Append([]string{
		sceneName,
		fmt.Sprintf("%dx%d", opts.Width, opts.Height),
		fmt.Sprintf("%d", opts.SamplesPerPixel),
		fmt.Sprintf("%d", opts.Workers),
		elapsed.Round(time.Millisecond).String(),
	})

	table.Render()
	logger.Noticef("wrote %s\n%s", outPath, buf.String())
}
