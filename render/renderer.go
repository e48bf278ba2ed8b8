package render

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/dgravesa/go-parallel/parallel"

	"github.com/lixenwraith/vi-tracer/status"
)

// ErrSize is returned for non-positive image dimensions
var ErrSize = errors.New("render: image dimensions must be positive")

// Metric keys written to Renderer.Status
const (
	MetricRows    = "render.rows"
	MetricPixels  = "render.pixels"
	MetricSeconds = "render.seconds"
	MetricShade   = "render.shade_seconds" // summed per-row shading time, exceeds wall time when parallel
	MetricShader  = "render.shader"
)

// Renderer evaluates a Shader over every pixel of an image
type Renderer struct {
	Shader Shader
	Name   string // shader label for metrics

	// Parallel fans rows out across CPUs; progress still counts down one line per finished row
	Parallel bool

	// Gamma encodes shader output as sRGB instead of truncating linear values
	Gamma bool

	// Progress receives one line per scanline and a final "Done", nil disables
	Progress *log.Logger

	// Status receives render metrics, nil disables
	Status *status.Registry
}

// Render shades a width x height image, checking ctx between scanlines
func (r *Renderer) Render(ctx context.Context, width, height int) (*Image, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrSize, width, height)
	}
	if r.Shader == nil {
		return nil, errors.New("render: no shader")
	}

	reg := r.Status
	if reg == nil {
		reg = status.NewRegistry()
	}
	rows := reg.Ints.Get(MetricRows)
	pixels := reg.Ints.Get(MetricPixels)
	shade := reg.Floats.Get(MetricShade)
	reg.Strings.Get(MetricShader).Store(r.Name)
	rows.Store(0)
	pixels.Store(0)
	shade.Set(0)

	img := NewImage(width, height)
	toRGB := ColorToRGB
	if r.Gamma {
		toRGB = GammaToRGB
	}

	shadeRow := func(y int) {
		t0 := time.Now()
		line := img.Row(y)
		for x := range line {
			line[x] = toRGB(r.Shader(x, y, width, height))
		}
		rows.Add(1)
		pixels.Add(int64(width))
		shade.Add(time.Since(t0).Seconds())
	}

	start := time.Now()
	if r.Parallel {
		// Count and print under one lock so lines never interleave out of order
		var (
			mu   sync.Mutex
			done int
		)
		parallel.For(height, func(y, _ int) {
			if ctx.Err() != nil {
				return
			}
			shadeRow(y)
			mu.Lock()
			done++
			r.logf("Scanlines remaining: %d of %d", height-done, height)
			mu.Unlock()
		})
		if err := ctx.Err(); err != nil {
			return nil, err
		}
	} else {
		for y := 0; y < height; y++ {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			r.logf("Scanlines remaining: %d of %d", height-1-y, height)
			shadeRow(y)
		}
	}
	reg.Floats.Get(MetricSeconds).Set(time.Since(start).Seconds())

	r.logf("Done")
	return img, nil
}

func (r *Renderer) logf(format string, args ...any) {
	if r.Progress != nil {
		r.Progress.Printf(format, args...)
	}
}
