// Command tracer renders the reference gradient through the vector kernel
//
// Usage examples:
//
//	# Reference P3 image on stdout, progress on stderr
//	./tracer > gradient.ppm
//
//	# PNG file, rows rendered in parallel, then view it in the terminal
//	./tracer -format png -o gradient.png -parallel -preview
//
//	# Start from a config file and print the effective settings
//	./tracer -config tracer.toml -dump-config
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image/png"
	"io"
	"log"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/lixenwraith/vi-tracer/audio"
	"github.com/lixenwraith/vi-tracer/config"
	"github.com/lixenwraith/vi-tracer/ppm"
	"github.com/lixenwraith/vi-tracer/preview"
	"github.com/lixenwraith/vi-tracer/render"
	"github.com/lixenwraith/vi-tracer/status"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "\n\x1b[31mTRACER CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// options holds command-line flags; zero values mean "keep the config value"
type options struct {
	configPath string
	width      int
	height     int
	blue       float64
	output     string
	format     string
	gamma      bool
	parallel   bool
	preview    bool
	chime      bool
	quiet      bool
	debug      bool
	dumpConfig bool
}

func parseFlags(args []string, stderr io.Writer) (*options, map[string]bool, error) {
	opts := &options{}
	fs := flag.NewFlagSet("tracer", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&opts.configPath, "config", "", "TOML config file")
	fs.IntVar(&opts.width, "width", 0, "Image width in pixels")
	fs.IntVar(&opts.height, "height", 0, "Image height in pixels")
	fs.Float64Var(&opts.blue, "blue", 0, "Constant blue channel in [0, 1]")
	fs.StringVar(&opts.output, "o", "", "Output file ('-' for stdout)")
	fs.StringVar(&opts.format, "format", "", "Output format: 'ppm' or 'png'")
	fs.BoolVar(&opts.gamma, "gamma", false, "Encode output as sRGB")
	fs.BoolVar(&opts.parallel, "parallel", false, "Render scanlines in parallel")
	fs.BoolVar(&opts.preview, "preview", false, "Show the image in the terminal after rendering")
	fs.BoolVar(&opts.chime, "chime", false, "Play a chime when rendering completes")
	fs.BoolVar(&opts.quiet, "quiet", false, "Suppress progress on stderr")
	fs.BoolVar(&opts.debug, "debug", false, "Write debug log to "+logDir+"/"+logFileName)
	fs.BoolVar(&opts.dumpConfig, "dump-config", false, "Print the effective config as TOML and exit")

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	if fs.NArg() > 0 {
		return nil, nil, fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}

	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	return opts, set, nil
}

// resolveConfig loads the config file, if any, and applies explicitly set flags over it
func resolveConfig(opts *options, set map[string]bool) (*config.Config, error) {
	cfg := config.Default()
	if opts.configPath != "" {
		loaded, err := config.Load(opts.configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if set["width"] {
		cfg.Image.Width = opts.width
	}
	if set["height"] {
		cfg.Image.Height = opts.height
	}
	if set["blue"] {
		cfg.Gradient.Blue = float32(opts.blue)
	}
	if set["o"] {
		cfg.Output.Path = opts.output
	}
	if set["format"] {
		cfg.Output.Format = opts.format
	}
	if set["gamma"] {
		cfg.Output.Gamma = opts.gamma
	}
	if set["parallel"] {
		cfg.Render.Parallel = opts.parallel
	}
	if set["preview"] {
		cfg.Preview.Enabled = opts.preview
	}
	if set["chime"] {
		cfg.Chime.Enabled = opts.chime
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	opts, set, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}

	if logFile := setupLogging(opts.debug); logFile != nil {
		defer logFile.Close()
	}

	cfg, err := resolveConfig(opts, set)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	log.Printf("config: %+v", *cfg)

	if opts.dumpConfig {
		if err := config.Write(stdout, cfg); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
		return 0
	}

	progress := log.New(stderr, "", 0)
	if opts.quiet {
		progress.SetOutput(io.Discard)
	}

	reg := status.NewRegistry()
	r := &render.Renderer{
		Shader:   render.Gradient(cfg.Gradient.Blue),
		Name:     "gradient",
		Parallel: cfg.Render.Parallel,
		Gamma:    cfg.Output.Gamma,
		Progress: progress,
		Status:   reg,
	}

	img, err := r.Render(ctx, cfg.Image.Width, cfg.Image.Height)
	if err != nil {
		fmt.Fprintf(stderr, "Error: render: %v\n", err)
		return 1
	}
	for _, line := range reg.Snapshot() {
		log.Print(line)
	}

	if err := writeImage(cfg.Output, img, stdout); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	if cfg.Chime.Enabled {
		// Audio is optional, a missing device is not a render failure
		if err := audio.Play(ctx, cfg.Chime.SampleRate, cfg.Chime.Volume); err != nil {
			progress.Printf("Chime unavailable: %v", err)
			log.Printf("chime: %v", err)
		}
	}

	if cfg.Preview.Enabled {
		if err := preview.Run(img); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
	}

	return 0
}

// writeImage encodes img per out, '-' selects stdout
func writeImage(out config.OutputConfig, img *render.Image, stdout io.Writer) (err error) {
	w := stdout
	if out.Path != config.Stdout {
		f, createErr := os.Create(out.Path)
		if createErr != nil {
			return fmt.Errorf("create output: %w", createErr)
		}
		defer func() {
			if cerr := f.Close(); err == nil && cerr != nil {
				err = fmt.Errorf("close output: %w", cerr)
			}
		}()
		w = f
	}

	switch out.Format {
	case config.FormatPNG:
		err = png.Encode(w, img)
	default:
		err = ppm.Encode(w, img)
	}
	if err != nil {
		return fmt.Errorf("encode %s: %w", out.Format, err)
	}
	log.Printf("wrote %dx%d %s to %s", img.Width, img.Height, out.Format, out.Path)
	return nil
}
