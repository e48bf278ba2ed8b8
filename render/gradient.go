package render

import (
	"github.com/lixenwraith/vi-tracer/vmath"
)

// Shader returns the unit-range color of pixel (x, y), y counted from the top row
type Shader func(x, y, width, height int) vmath.Vec3

// Gradient ramps red left to right and green bottom to top over a constant blue
func Gradient(blue float32) Shader {
	return func(x, y, width, height int) vmath.Vec3 {
		// Scanlines are numbered from the bottom, the top one has full green
		row := height - 1 - y
		return vmath.New(
			float32(x)/float32(width-1),
			float32(row)/float32(height-1),
			blue,
		)
	}
}

// Solid fills every pixel with c
func Solid(c vmath.Vec3) Shader {
	return func(_, _, _, _ int) vmath.Vec3 {
		return c
	}
}
