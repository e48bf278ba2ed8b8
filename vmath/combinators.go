package vmath

// --- Elementwise combinators ---
// All arithmetic in this package is expressed through these; nothing else loops over components

// Map applies f to each component in order
func (v Vec3) Map(f func(float32) float32) Vec3 {
	return Vec3{f(v[0]), f(v[1]), f(v[2])}
}

// ZipMap applies f pairwise as f(v[i], o[i])
func (v Vec3) ZipMap(o Vec3, f func(a, b float32) float32) Vec3 {
	return Vec3{f(v[0], o[0]), f(v[1], o[1]), f(v[2], o[2])}
}

// ZipMapAssign is ZipMap storing the result into v
func (v *Vec3) ZipMapAssign(o Vec3, f func(a, b float32) float32) {
	*v = v.ZipMap(o, f)
}

// SplatMap applies f(component, s)
func (v Vec3) SplatMap(s float32, f func(a, b float32) float32) Vec3 {
	return v.ZipMap(Splat(s), f)
}

// SplatMapLeft applies f(s, component)
// Order matters for non-commutative f: SplatMapLeft(2, sub) is 2 - v, not v - 2
func (v Vec3) SplatMapLeft(s float32, f func(a, b float32) float32) Vec3 {
	return Splat(s).ZipMap(v, f)
}

// Reduce folds left to right as f(f(v[0], v[1]), v[2])
func (v Vec3) Reduce(f func(acc, x float32) float32) float32 {
	return f(f(v[0], v[1]), v[2])
}

// Sum returns v[0] + v[1] + v[2]
func (v Vec3) Sum() float32 {
	return v.Reduce(add)
}

func add(a, b float32) float32 { return a + b }
func sub(a, b float32) float32 { return a - b }
func mul(a, b float32) float32 { return a * b }
func div(a, b float32) float32 { return a / b }
func neg(a float32) float32    { return -a }
