// Command pathtrace renders a scene to a PPM image. Usage mirrors
// eg/eg.go's tag-dispatch examples: the first positional argument
// selects a built-in scene (or a YAML file path ending in .yaml/.yml),
// and flags control image size, sampling, and the HRPP predictor.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"runtime"
	"strings"

	"github.com/loamlabs/pathtrace/render"
	"github.com/loamlabs/pathtrace/scene"
	"golang.org/x/text/message"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("fatal error", "err", r)
			os.Exit(1)
		}
	}()

	var (
		width     = flag.Int("width", 400, "image width in pixels")
		height    = flag.Int("height", 225, "image height in pixels")
		samples   = flag.Int("samples", 100, "samples per pixel")
		maxDepth  = flag.Int("depth", 50, "maximum scatter recursion depth")
		tileSize  = flag.Int("tile", 32, "tile edge length in pixels")
		workers   = flag.Int("workers", 0, "worker goroutines (0 = GOMAXPROCS)")
		predictor = flag.Bool("predictor", false, "enable the HRPP BVH traversal predictor")
		goUpLevel = flag.Int("go-up-level", 0, "HRPP insertion walk-up depth")
		gamma     = flag.Bool("gamma", true, "apply gamma correction to output")
		output    = flag.String("out", "out.ppm", "output PPM file path")
		seed      = flag.Int64("seed", 1, "RNG seed for scene construction")
	)
	flag.Usage = printUsage
	flag.Parse()

	sceneArg := flag.Arg(0)
	if sceneArg == "" {
		printUsage()
		os.Exit(1)
	}

	rng := rand.New(rand.NewSource(*seed))
	aspectRatio := float64(*width) / float64(*height)

	built, err := loadScene(sceneArg, aspectRatio, rng)
	if err != nil {
		slog.Error("failed to build scene", "scene", sceneArg, "err", err)
		os.Exit(1)
	}

	attrs := []render.Attr{
		render.Samples(*samples),
		render.MaxDepth(*maxDepth),
		render.TileSize(*tileSize, *tileSize),
		render.Workers(*workers),
		render.Gamma(*gamma),
	}
	if *predictor {
		attrs = append(attrs, render.Predictor(*goUpLevel))
	}
	cfg := render.NewConfig(attrs...)

	fb := render.Render(*width, *height, built.Camera, built.World, built.Background, cfg)

	f, err := os.Create(*output)
	if err != nil {
		slog.Error("failed to create output file", "path", *output, "err", err)
		os.Exit(1)
	}
	defer f.Close()

	if err := render.WritePPM(f, fb, cfg.Gamma); err != nil {
		slog.Error("failed to write PPM", "path", *output, "err", err)
		os.Exit(1)
	}

	p := message.NewPrinter(message.MatchLanguage("en"))
	p.Printf("rendered %d x %d, %d samples/px, %d workers -> %s\n",
		*width, *height, *samples, effectiveWorkers(*workers), *output)
}

func effectiveWorkers(n int) int {
	if n > 0 {
		return n
	}
	return runtime.GOMAXPROCS(0)
}

// loadScene resolves arg as either a built-in scene name or a path to a
// YAML scene description file.
func loadScene(arg string, aspectRatio float64, rng *rand.Rand) (*scene.Built, error) {
	if strings.HasSuffix(arg, ".yaml") || strings.HasSuffix(arg, ".yml") {
		data, err := os.ReadFile(arg)
		if err != nil {
			return nil, err
		}
		desc, err := scene.LoadBytes(data)
		if err != nil {
			return nil, err
		}
		return scene.Build(desc, aspectRatio, rng)
	}
	return scene.BuildNamed(scene.Name(arg), aspectRatio, rng)
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "Usage: pathtrace [flags] <scene|file.yaml>\n")
	fmt.Fprintf(os.Stderr, "Built-in scenes are:\n")
	for _, b := range scene.Builtins {
		fmt.Fprintf(os.Stderr, "   %s\n", b.Description)
	}
	fmt.Fprintf(os.Stderr, "Flags:\n")
	flag.PrintDefaults()
}
