package vmath

// --- Arithmetic ---
// Division follows IEEE-754: x/0 yields ±Inf or NaN, no checks are made

func (v Vec3) Neg() Vec3 { return v.Map(neg) }

// NegAssign negates v in place
func (v *Vec3) NegAssign() { *v = v.Neg() }

// Vector ⊕ vector

func (v Vec3) Add(o Vec3) Vec3 { return v.ZipMap(o, add) }
func (v Vec3) Sub(o Vec3) Vec3 { return v.ZipMap(o, sub) }

// Mul is the componentwise (Hadamard) product
func (v Vec3) Mul(o Vec3) Vec3 { return v.ZipMap(o, mul) }

// Div is componentwise division
func (v Vec3) Div(o Vec3) Vec3 { return v.ZipMap(o, div) }

func (v *Vec3) AddAssign(o Vec3) { v.ZipMapAssign(o, add) }
func (v *Vec3) SubAssign(o Vec3) { v.ZipMapAssign(o, sub) }
func (v *Vec3) MulAssign(o Vec3) { v.ZipMapAssign(o, mul) }
func (v *Vec3) DivAssign(o Vec3) { v.ZipMapAssign(o, div) }

// Vector ⊕ scalar, scalar broadcast on the right

func (v Vec3) AddScalar(s float32) Vec3 { return v.SplatMap(s, add) }
func (v Vec3) SubScalar(s float32) Vec3 { return v.SplatMap(s, sub) }
func (v Vec3) MulScalar(s float32) Vec3 { return v.SplatMap(s, mul) }
func (v Vec3) DivScalar(s float32) Vec3 { return v.SplatMap(s, div) }

func (v *Vec3) AddScalarAssign(s float32) { v.ZipMapAssign(Splat(s), add) }
func (v *Vec3) SubScalarAssign(s float32) { v.ZipMapAssign(Splat(s), sub) }
func (v *Vec3) MulScalarAssign(s float32) { v.ZipMapAssign(Splat(s), mul) }
func (v *Vec3) DivScalarAssign(s float32) { v.ZipMapAssign(Splat(s), div) }

// Scalar ⊕ vector, scalar broadcast on the left

// ScalarAdd returns s + v
func ScalarAdd(s float32, v Vec3) Vec3 { return v.SplatMapLeft(s, add) }

// ScalarSub returns (s - v[0], s - v[1], s - v[2])
func ScalarSub(s float32, v Vec3) Vec3 { return v.SplatMapLeft(s, sub) }

// ScalarMul returns s * v
func ScalarMul(s float32, v Vec3) Vec3 { return v.SplatMapLeft(s, mul) }

// ScalarDiv returns (s / v[0], s / v[1], s / v[2])
func ScalarDiv(s float32, v Vec3) Vec3 { return v.SplatMapLeft(s, div) }
