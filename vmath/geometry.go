package vmath

import (
	"github.com/chewxy/math32"
)

// MachineEpsilon is the float32 unit roundoff, 2^-23
const MachineEpsilon float32 = 0x1p-23

// Epsilon is the ApproxEq tolerance on the summed absolute difference
// Empirical: 8 ulps at 1.0 covers the round trips exercised by tests, not a derived error bound
const Epsilon = 8 * MachineEpsilon

// Dot returns the sum of componentwise products
func (v Vec3) Dot(o Vec3) float32 {
	return v.Mul(o).Sum()
}

// LengthSquared avoids the sqrt
func (v Vec3) LengthSquared() float32 {
	return v.Dot(v)
}

func (v Vec3) Length() float32 {
	return math32.Sqrt(v.LengthSquared())
}

// Normalized scales v to unit length
// Zero vector yields NaN components; callers that can see one must check first
func (v Vec3) Normalized() Vec3 {
	return v.MulScalar(1 / v.Length())
}

// Cross returns the right-handed cross product: UnitX × UnitY = UnitZ
func (v Vec3) Cross(o Vec3) Vec3 {
	// Explicit conversions force each product to round, blocking FMA fusion
	// so that a×b == -(b×a) holds exactly on every GOARCH
	return Vec3{
		float32(v[1]*o[2]) - float32(v[2]*o[1]),
		float32(v[2]*o[0]) - float32(v[0]*o[2]),
		float32(v[0]*o[1]) - float32(v[1]*o[0]),
	}
}

// ApproxEq reports whether the L1 distance between v and o is below Epsilon
// Absolute, not relative: large-magnitude vectors compare equal only when nearly identical in bits
func (v Vec3) ApproxEq(o Vec3) bool {
	return v.ZipMap(o, absDiff).Sum() < Epsilon
}

func absDiff(a, b float32) float32 {
	return math32.Abs(a - b)
}
