package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"

	"github.com/AndreasKarg/raytracer-weekend/pkg/renderer"
	"github.com/AndreasKarg/raytracer-weekend/pkg/wire"
)

// StreamScene renders serially and emits the render as a framed progress
// message stream, the format an embedded target would push over a serial
// link. "-" streams to stdout.
func StreamScene(ctx *cli.Context) error {
	setupLogging(ctx)

	if ctx.NArg() != 1 {
		return fmt.Errorf("missing scene argument (catalogue name or world file)")
	}
	name := ctx.Args().First()

	opts := renderer.DefaultOptions()
	opts.Width = ctx.Int("width")
	opts.SamplesPerPixel = ctx.Int("spp")
	opts.MaxDepth = ctx.Int("depth")
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

	var out io.Writer
	if outPath := ctx.String("out"); outPath == "-" {
		out = os.Stdout
	} else {
		f, err := os.Create(outPath)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	encoder := wire.NewEncoder(out)
	if err := encoder.Encode(wire.ImageStart{
		Width:           uint32(opts.Width),
		Height:          uint32(opts.Height),
		SamplesPerPixel: uint32(opts.SamplesPerPixel),
	}); err != nil {
		return err
	}

	var encodeErr error
	r := renderer.New(sc, opts)
	r.RenderStream(func(p renderer.Pixel) {
		if encodeErr != nil {
			return
		}
		encodeErr = encoder.Encode(wire.Pixel{
			Row:    uint32(p.Row),
			Column: uint32(p.Col),
			Color:  p.Color,
		})
	})
	if encodeErr != nil {
		return encodeErr
	}

	return encoder.Encode(wire.ImageEnd{})
}

// ReceiveStream reads a progress message stream and writes the assembled
// image once the stream ends. "-" reads from stdin.
func ReceiveStream(ctx *cli.Context) error {
	setupLogging(ctx)

	if ctx.NArg() != 1 {
		return fmt.Errorf("missing stream file argument")
	}

	var in io.Reader
	if inPath := ctx.Args().First(); inPath == "-" {
		in = os.Stdin
	} else {
		f, err := os.Open(inPath)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	decoder := wire.NewDecoder(in)
	receiver := wire.NewReceiver()

	for {
		msg, err := decoder.Decode()
		if err == io.EOF {
			break
		}
		if err != nil {
			logger.Warningf("skipping frame: %v", err)
			continue
		}
		if err := receiver.Handle(msg); err != nil {
			return err
		}
	}

	received, total := receiver.Progress()
	if !receiver.Complete() {
		logger.Warningf("stream ended early, %d/%d pixels received", received, total)
	}

	img, err := receiver.Image()
	if err != nil {
		return err
	}

	outPath := ctx.String("out")
	if err := writeImageFile(outPath, img); err != nil {
		return err
	}

	logger.Noticef("wrote %s from %d/%d received pixel(s)", outPath, received, total)
	return nil
}
