package main

import (
	"os"

	"github.com/urfave/cli"

	"github.com/AndreasKarg/raytracer-weekend/cmd"
)

func main() {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "raytracer-weekend"
	app.Usage = "render scenes using path tracing"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a scene to an image file",
			Description: `
Render a built-in scene (see the scenes command) or a JSON world descriptor
file to a PNG or WebP image.`,
			ArgsUsage: "scene_name|world.json",
			Flags:     append(renderFlags(), outFlag("render.png")),
			Action:    cmd.RenderScene,
		},
		{
			Name:   "scenes",
			Usage:  "list the built-in scene catalogue",
			Action: cmd.ListScenes,
		},
		{
			Name:  "convert",
			Usage: "validate and normalize a world descriptor file",
			Description: `
Parse a JSON world descriptor, checking every geometry, material and texture
tag, and rewrite it as indented JSON.`,
			ArgsUsage: "world.json",
			Flags:     []cli.Flag{outFlag("")},
			Action:    cmd.ConvertScene,
		},
		{
			Name:  "stream",
			Usage: "render a scene to a framed progress message stream",
			Description: `
Render serially and emit the COBS-framed progress messages an embedded target
would push over a serial link. Pair with the receive command.`,
			ArgsUsage: "scene_name|world.json",
			Flags:     append(renderFlags(), outFlag("render.stream")),
			Action:    cmd.StreamScene,
		},
		{
			Name:      "receive",
			Usage:     "assemble an image from a progress message stream",
			ArgsUsage: "stream_file|-",
			Flags:     []cli.Flag{outFlag("render.png")},
			Action:    cmd.ReceiveStream,
		},
	}

	app.Run(os.Args)
}

func renderFlags() []cli.Flag {
	return []cli.Flag{
		cli.IntFlag{
			Name:  "width",
			Value: 400,
			Usage: "frame width in pixels",
		},
		cli.StringFlag{
			Name:  "aspect-ratio",
			Value: "16:9",
			Usage: "frame aspect ratio as W:H or a decimal",
		},
		cli.IntFlag{
			Name:  "spp",
			Value: 100,
			Usage: "samples per pixel",
		},
		cli.IntFlag{
			Name:  "depth",
			Value: 50,
			Usage: "maximum ray bounce depth",
		},
		cli.IntFlag{
			Name:  "workers",
			Value: 0,
			Usage: "render worker count, 0 for one per CPU",
		},
		cli.Int64Flag{
			Name:  "seed",
			Value: 42,
			Usage: "base seed for the deterministic sample streams",
		},
		cli.IntFlag{
			Name:  "camera",
			Value: 0,
			Usage: "camera index for world descriptor files",
		},
	}
}

func outFlag(defaultValue string) cli.Flag {
	return cli.StringFlag{
		Name:  "out, o",
		Value: defaultValue,
		Usage: "output file",
	}
}
