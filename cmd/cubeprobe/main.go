// Command cubeprobe resolves a color source over a grid and writes the
// result as a PNG.
//
// Usage:
//
//	cubeprobe -source cube -faces '#f00,#0f0,#00f,#ff0,#0ff,#f0f' -face +Y -o face.png
//	cubeprobe -source cube -faces px.png,nx.png,py.png,ny.png,pz.png,nz.png -cross -o sky.png
//	cubeprobe -source image -image brick.png -filter nearest -address repeat -size 512
//	cubeprobe -source depth -o ramp.png
//	cubeprobe -source color -color '#336699'
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	stdimage "image"
	"image/png"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/gogpu/gputypes"
	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/colorsource"
	"github.com/gogpu/colorsource/internal/image"
	"github.com/gogpu/colorsource/texture"
)

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "cubeprobe:", err)
		os.Exit(1)
	}
}

type options struct {
	source  string
	color   string
	image   string
	faces   string
	face    string
	filter  string
	address string
	size    int
	cross   bool
	output  string
	verbose bool
	version bool
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	fs := flag.NewFlagSet("cubeprobe", flag.ContinueOnError)
	fs.SetOutput(stderr)

	o := &options{}
	fs.StringVar(&o.source, "source", "cube", "source kind: color, image, cube or depth")
	fs.StringVar(&o.color, "color", "#808080", "flat color for -source color")
	fs.StringVar(&o.image, "image", "", "image file for -source image")
	fs.StringVar(&o.faces, "faces", "", "six comma-separated hex colors or image files, in +X,-X,+Y,-Y,+Z,-Z order")
	fs.StringVar(&o.face, "face", "+X", "cube face to resolve")
	fs.StringVar(&o.filter, "filter", "linear", "sampler filter: linear or nearest")
	fs.StringVar(&o.address, "address", "clamp", "sampler address mode: clamp, repeat or mirror")
	fs.IntVar(&o.size, "size", 256, "output size in pixels (per face with -cross)")
	fs.BoolVar(&o.cross, "cross", false, "write all six cube faces as a cross")
	fs.StringVar(&o.output, "o", "probe.png", "output PNG file")
	fs.BoolVar(&o.verbose, "v", false, "enable debug logging")
	fs.BoolVar(&o.version, "version", false, "print the library version and exit")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if o.size <= 0 {
		return nil, fmt.Errorf("invalid -size %d", o.size)
	}
	return o, nil
}

func run(ctx context.Context, args []string, stderr io.Writer) error {
	o, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}
	if o.version {
		_, err := fmt.Fprintln(stderr, "cubeprobe", colorsource.Version)
		return err
	}

	level := slog.LevelInfo
	if o.verbose {
		level = slog.LevelDebug
	}
	colorsource.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})))
	defer colorsource.SetLogger(nil)

	sampler, err := parseSampler(o.filter, o.address)
	if err != nil {
		return err
	}

	ev := colorsource.NewEvaluator()
	defer ev.Close()

	var img stdimage.Image
	if o.cross {
		if o.source != "cube" {
			return errors.New("-cross requires -source cube")
		}
		cube, err := loadCube(o.faces)
		if err != nil {
			return err
		}
		img, err = renderCross(ctx, ev, cube, sampler, o.size)
		if err != nil {
			return err
		}
	} else {
		d, err := buildDescriptor(o, sampler)
		if err != nil {
			return err
		}
		img, err = render(ctx, ev, &d, o.size)
		if err != nil {
			return err
		}
	}

	if err := writePNG(o.output, img); err != nil {
		return err
	}
	b := img.Bounds()
	colorsource.Logger().Info("cubeprobe: wrote image",
		slog.String("path", o.output),
		slog.String("source", o.source),
		slog.Int("width", b.Dx()),
		slog.Int("height", b.Dy()))
	return nil
}

func buildDescriptor(o *options, s *colorsource.Sampler) (colorsource.Descriptor, error) {
	switch o.source {
	case "color":
		c, ok := colorsource.Hex(o.color)
		if !ok {
			return colorsource.Descriptor{}, fmt.Errorf("invalid -color %q", o.color)
		}
		return colorsource.Flat(c.RGB()), nil
	case "image":
		if o.image == "" {
			return colorsource.Descriptor{}, errors.New("-source image requires -image")
		}
		tex, err := texture.Load(o.image)
		if err != nil {
			return colorsource.Descriptor{}, err
		}
		return colorsource.FromTexture2D(tex, s)
	case "cube":
		face, err := parseFace(o.face)
		if err != nil {
			return colorsource.Descriptor{}, err
		}
		cube, err := loadCube(o.faces)
		if err != nil {
			return colorsource.Descriptor{}, err
		}
		return colorsource.FromTextureCube(cube, s, face)
	case "depth":
		depth, err := texture.DepthFunc(o.size, o.size, func(u, _ float64) float64 { return u })
		if err != nil {
			return colorsource.Descriptor{}, err
		}
		return colorsource.FromDepth2D(depth, s)
	default:
		return colorsource.Descriptor{}, fmt.Errorf("unknown -source %q", o.source)
	}
}

func parseSampler(filter, address string) (*colorsource.Sampler, error) {
	opts := []colorsource.SamplerOption{colorsource.WithLabel("cubeprobe")}
	switch filter {
	case "linear":
		opts = append(opts, colorsource.WithFilter(gputypes.FilterModeLinear))
	case "nearest":
		opts = append(opts, colorsource.WithFilter(gputypes.FilterModeNearest))
	default:
		return nil, fmt.Errorf("unknown -filter %q", filter)
	}
	switch address {
	case "clamp":
		opts = append(opts, colorsource.WithAddressMode(gputypes.AddressModeClampToEdge))
	case "repeat":
		opts = append(opts, colorsource.WithAddressMode(gputypes.AddressModeRepeat))
	case "mirror":
		opts = append(opts, colorsource.WithAddressMode(gputypes.AddressModeMirrorRepeat))
	default:
		return nil, fmt.Errorf("unknown -address %q", address)
	}
	return colorsource.NewSampler(opts...), nil
}

func parseFace(s string) (colorsource.CubeFace, error) {
	for f := range colorsource.CubeFace(colorsource.CubeFaceCount) {
		if strings.EqualFold(s, f.String()) {
			return f, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", colorsource.ErrInvalidFace, s)
}

var defaultFaces = [colorsource.CubeFaceCount]colorsource.RGBA{
	colorsource.Red, colorsource.Cyan,
	colorsource.Green, colorsource.Magenta,
	colorsource.Blue, colorsource.Yellow,
}

// loadCube builds a cube from a comma-separated face list. When every entry
// parses as a hex color the faces are solid; otherwise entries are image
// files. An empty list gives one primary or secondary color per face.
func loadCube(list string) (*texture.Cube, error) {
	if list == "" {
		return texture.SolidCube(defaultFaces), nil
	}
	parts := strings.Split(list, ",")
	if len(parts) != colorsource.CubeFaceCount {
		return nil, fmt.Errorf("-faces needs %d entries, got %d", colorsource.CubeFaceCount, len(parts))
	}

	var colors [colorsource.CubeFaceCount]colorsource.RGBA
	solid := true
	for i, p := range parts {
		c, ok := colorsource.Hex(strings.TrimSpace(p))
		if !ok {
			solid = false
			break
		}
		colors[i] = c
	}
	if solid {
		return texture.SolidCube(colors), nil
	}

	var imgs [colorsource.CubeFaceCount]stdimage.Image
	for i, p := range parts {
		img, err := image.Open(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("face %s: %w", colorsource.CubeFace(i), err)
		}
		imgs[i] = img
	}
	return texture.CubeFromImages(imgs)
}

func render(ctx context.Context, ev *colorsource.Evaluator, d *colorsource.Descriptor, size int) (*stdimage.NRGBA, error) {
	grid, err := colorsource.NewGrid(size, size)
	if err != nil {
		return nil, err
	}
	if err := ev.Evaluate(ctx, d, grid); err != nil {
		return nil, err
	}
	return grid.Image(), nil
}

// crossCells places each face in a 4x3 horizontal cross:
//
//	    +Y
//	-X  +Z  +X  -Z
//	    -Y
var crossCells = [colorsource.CubeFaceCount]stdimage.Point{
	colorsource.FacePositiveX: {2, 1},
	colorsource.FaceNegativeX: {0, 1},
	colorsource.FacePositiveY: {1, 0},
	colorsource.FaceNegativeY: {1, 2},
	colorsource.FacePositiveZ: {1, 1},
	colorsource.FaceNegativeZ: {3, 1},
}

func renderCross(ctx context.Context, ev *colorsource.Evaluator, cube *texture.Cube, s *colorsource.Sampler, size int) (*stdimage.NRGBA, error) {
	dst := stdimage.NewNRGBA(stdimage.Rect(0, 0, 4*size, 3*size))
	for f := range colorsource.CubeFace(colorsource.CubeFaceCount) {
		d, err := colorsource.FromTextureCube(cube, s, f)
		if err != nil {
			return nil, err
		}
		img, err := render(ctx, ev, &d, size)
		if err != nil {
			return nil, fmt.Errorf("face %s: %w", f, err)
		}
		at := crossCells[f].Mul(size)
		xdraw.Copy(dst, at, img, img.Bounds(), xdraw.Src, nil)
	}
	return dst, nil
}

func writePNG(path string, img stdimage.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
