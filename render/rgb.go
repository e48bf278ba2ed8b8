package render

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/vi-tracer/vmath"
)

// RGB is an 8-bit per channel pixel
type RGB struct {
	R, G, B uint8
}

// Predefined colors
var (
	RGBBlack = RGB{0, 0, 0}
	RGBWhite = RGB{255, 255, 255}
)

// byteScale maps 1.0 to 255 while keeping a full-width bucket for every byte value
const byteScale float32 = 255.999

// RGBA implements color.Color
func (c RGB) RGBA() (r, g, b, a uint32) {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}.RGBA()
}

// clamp01 limits x to [0, 1]; NaN maps to 0
func clamp01(x float32) float32 {
	if x >= 1 {
		return 1
	}
	if x > 0 {
		return x
	}
	return 0
}

// ToByte converts a unit intensity to a channel byte, truncating like the reference emitter
// Inputs outside [0, 1] clamp rather than wrap
func ToByte(x float32) uint8 {
	return uint8(byteScale * clamp01(x))
}

// ColorToRGB converts a unit-range color vector, component order r, g, b
func ColorToRGB(c vmath.Vec3) RGB {
	b := c.Map(clamp01).MulScalar(byteScale)
	return RGB{uint8(b[0]), uint8(b[1]), uint8(b[2])}
}

// GammaToRGB treats c as linear light and encodes it as sRGB
func GammaToRGB(c vmath.Vec3) RGB {
	r, g, b := colorful.LinearRgb(float64(c[0]), float64(c[1]), float64(c[2])).Clamped().RGB255()
	return RGB{r, g, b}
}

// Vec converts back to a unit-range color vector
func (c RGB) Vec() vmath.Vec3 {
	return vmath.New(float32(c.R), float32(c.G), float32(c.B)).DivScalar(255)
}
