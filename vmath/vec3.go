package vmath

import (
	"fmt"
)

// Vec3 is a float32 3D vector backed by a fixed array
// Components are indexed 0, 1, 2 (x, y, z); out-of-range indices panic via the runtime bounds check
type Vec3 [3]float32

// Standard basis
var (
	UnitX = Vec3{1, 0, 0}
	UnitY = Vec3{0, 1, 0}
	UnitZ = Vec3{0, 0, 1}
)

// New builds a vector from three components
func New(x, y, z float32) Vec3 {
	return Vec3{x, y, z}
}

// Splat builds a vector with all components equal to s
func Splat(s float32) Vec3 {
	return Vec3{s, s, s}
}

// FromArray converts a plain array, bit for bit
func FromArray(a [3]float32) Vec3 {
	return Vec3(a)
}

// Array returns the components as a plain array, bit for bit
func (v Vec3) Array() [3]float32 {
	return [3]float32(v)
}

// At returns component i
func (v Vec3) At(i int) float32 {
	return v[i]
}

// Set writes component i in place
func (v *Vec3) Set(i int, x float32) {
	v[i] = x
}

func (v Vec3) X() float32 { return v[0] }
func (v Vec3) Y() float32 { return v[1] }
func (v Vec3) Z() float32 { return v[2] }

// String formats as (x, y, z)
func (v Vec3) String() string {
	return fmt.Sprintf("(%g, %g, %g)", v[0], v[1], v[2])
}
