package render

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"log"
	"strings"
	"testing"

	"github.com/lixenwraith/vi-tracer/status"
	"github.com/lixenwraith/vi-tracer/vmath"
)

func TestGradientCorners(t *testing.T) {
	r := &Renderer{Shader: Gradient(0.25), Name: "gradient"}
	img, err := r.Render(context.Background(), 256, 256)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	tests := []struct {
		name string
		x, y int
		want RGB
	}{
		{"top-left", 0, 0, RGB{0, 255, 63}},
		{"top-right", 255, 0, RGB{255, 255, 63}},
		{"bottom-left", 0, 255, RGB{0, 0, 63}},
		{"bottom-right", 255, 255, RGB{255, 0, 63}},
	}
	for _, tt := range tests {
		if got := img.RGBAt(tt.x, tt.y); got != tt.want {
			t.Errorf("%s: expected %v, got %v", tt.name, tt.want, got)
		}
	}
}

func TestGradientMatchesReferenceFormula(t *testing.T) {
	const w, h = 16, 9
	r := &Renderer{Shader: Gradient(0.25)}
	img, err := r.Render(context.Background(), w, h)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	blue := float32(0.25)
	y := 0
	for row := h - 1; row >= 0; row-- {
		for col := 0; col < w; col++ {
			want := RGB{
				uint8(255.999 * (float32(col) / float32(w-1))),
				uint8(255.999 * (float32(row) / float32(h-1))),
				uint8(255.999 * blue),
			}
			if got := img.RGBAt(col, y); got != want {
				t.Fatalf("col=%d row=%d: expected %v, got %v", col, row, want, got)
			}
		}
		y++
	}
}

func TestProgressLines(t *testing.T) {
	var buf bytes.Buffer
	r := &Renderer{
		Shader:   Gradient(0.25),
		Progress: log.New(&buf, "", 0),
	}
	if _, err := r.Render(context.Background(), 4, 3); err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	want := []string{
		"Scanlines remaining: 2 of 3",
		"Scanlines remaining: 1 of 3",
		"Scanlines remaining: 0 of 3",
		"Done",
	}
	got := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(got) != len(want) {
		t.Fatalf("Expected %d lines, got %d: %q", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Line %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestParallelMatchesSerial(t *testing.T) {
	serial := &Renderer{Shader: Gradient(0.7)}
	par := &Renderer{Shader: Gradient(0.7), Parallel: true}

	a, err := serial.Render(context.Background(), 64, 48)
	if err != nil {
		t.Fatalf("Serial render failed: %v", err)
	}
	b, err := par.Render(context.Background(), 64, 48)
	if err != nil {
		t.Fatalf("Parallel render failed: %v", err)
	}

	for i := range a.Pix {
		if a.Pix[i] != b.Pix[i] {
			t.Fatalf("Pixel %d: serial %v, parallel %v", i, a.Pix[i], b.Pix[i])
		}
	}
}

func TestParallelProgressCountsDown(t *testing.T) {
	var buf bytes.Buffer
	r := &Renderer{Shader: Gradient(0.25), Parallel: true, Progress: log.New(&buf, "", 0)}
	if _, err := r.Render(context.Background(), 8, 10); err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 11 {
		t.Fatalf("Expected 11 lines, got %d", len(lines))
	}
	for i, l := range lines[:10] {
		want := fmt.Sprintf("Scanlines remaining: %d of 10", 9-i)
		if l != want {
			t.Errorf("Line %d: expected %q, got %q", i, want, l)
		}
	}
	if lines[10] != "Done" {
		t.Errorf("Expected final Done, got %q", lines[10])
	}
}

func TestRenderMetrics(t *testing.T) {
	reg := status.NewRegistry()
	r := &Renderer{Shader: Solid(vmath.Splat(0.5)), Name: "solid", Status: reg}
	if _, err := r.Render(context.Background(), 10, 5); err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	if got := reg.Ints.Get(MetricRows).Load(); got != 5 {
		t.Errorf("Expected 5 rows, got %d", got)
	}
	if got := reg.Ints.Get(MetricPixels).Load(); got != 50 {
		t.Errorf("Expected 50 pixels, got %d", got)
	}
	if got := reg.Strings.Get(MetricShader).Load(); got != "solid" {
		t.Errorf("Expected shader label solid, got %q", got)
	}
	if got := reg.Floats.Get(MetricSeconds).Get(); got < 0 {
		t.Errorf("Expected non-negative duration, got %f", got)
	}
	if got := reg.Floats.Get(MetricShade).Get(); got < 0 {
		t.Errorf("Expected non-negative shading time, got %f", got)
	}
}

func TestRenderShadeTimeResets(t *testing.T) {
	reg := status.NewRegistry()
	reg.Floats.Get(MetricShade).Set(1e6)

	r := &Renderer{Shader: Gradient(0.25), Parallel: true, Status: reg}
	if _, err := r.Render(context.Background(), 16, 16); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if got := reg.Floats.Get(MetricShade).Get(); got < 0 || got >= 1e6 {
		t.Errorf("Expected shading time accumulated from zero, got %f", got)
	}
}

func TestRenderCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for _, parallel := range []bool{false, true} {
		r := &Renderer{Shader: Gradient(0.25), Parallel: parallel}
		img, err := r.Render(ctx, 8, 8)
		if !errors.Is(err, context.Canceled) {
			t.Errorf("parallel=%v: expected context.Canceled, got %v", parallel, err)
		}
		if img != nil {
			t.Errorf("parallel=%v: expected nil image on cancel", parallel)
		}
	}
}

func TestRenderRejectsBadInput(t *testing.T) {
	r := &Renderer{Shader: Gradient(0.25)}
	for _, size := range [][2]int{{0, 10}, {10, 0}, {-1, 5}} {
		if _, err := r.Render(context.Background(), size[0], size[1]); !errors.Is(err, ErrSize) {
			t.Errorf("%v: expected ErrSize, got %v", size, err)
		}
	}

	if _, err := (&Renderer{}).Render(context.Background(), 2, 2); err == nil {
		t.Error("Expected error for missing shader")
	}
}

func TestImageInterface(t *testing.T) {
	img := NewImage(3, 2)
	img.SetRGB(2, 1, RGB{1, 2, 3})

	var _ image.Image = img
	if img.Bounds() != image.Rect(0, 0, 3, 2) {
		t.Errorf("Unexpected bounds %v", img.Bounds())
	}
	if got := img.At(2, 1); got != (RGB{1, 2, 3}) {
		t.Errorf("Expected {1 2 3}, got %v", got)
	}
	if r, g, b, a := img.At(5, 5).RGBA(); r|g|b|a != 0 {
		t.Error("Expected transparent black outside bounds")
	}
	if row := img.Row(1); len(row) != 3 || row[2] != (RGB{1, 2, 3}) {
		t.Errorf("Row(1) = %v", row)
	}
}
