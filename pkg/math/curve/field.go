package curve

import (
	"encoding/hex"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// Field is an element of the base field 𝔽ₚ.
//
// Every method leaves the receiver normalized.
type Field struct {
	f secp256k1.FieldVal
}

// NewField returns a new zero Field.
func NewField() *Field {
	return &Field{}
}

// Add sets f = x + y, and returns f.
func (f *Field) Add(x, y *Field) *Field {
	f.f.Add2(&x.f, &y.f).Normalize()
	return f
}

// Subtract sets f = x - y, and returns f.
func (f *Field) Subtract(x, y *Field) *Field {
	var yNeg secp256k1.FieldVal
	yNeg.NegateVal(&y.f, 1)
	f.f.Add2(&x.f, &yNeg).Normalize()
	return f
}

// Multiply sets f = x * y, and returns f.
func (f *Field) Multiply(x, y *Field) *Field {
	f.f.Mul2(&x.f, &y.f).Normalize()
	return f
}

// Square sets f = x², and returns f.
func (f *Field) Square(x *Field) *Field {
	f.f.SquareVal(&x.f).Normalize()
	return f
}

// Negate sets f = -x, and returns f.
func (f *Field) Negate(x *Field) *Field {
	f.f.NegateVal(&x.f, 1).Normalize()
	return f
}

// Invert sets f = x⁻¹, and returns f.
//
// The inverse of zero is zero.
func (f *Field) Invert(x *Field) *Field {
	f.f.Set(&x.f)
	f.f.Inverse().Normalize()
	return f
}

// Sqrt sets f to a square root of x and reports whether x is a quadratic residue.
//
// When it is not, f holds a square root of -x, which is never a root of x.
func (f *Field) Sqrt(x *Field) bool {
	var val secp256k1.FieldVal
	val.Set(&x.f)
	ok := f.f.SquareRootVal(&val)
	f.f.Normalize()
	return ok
}

// ConditionalNegate sets f = -f when negate is true.
//
// Both branches perform the same field operations.
func (f *Field) ConditionalNegate(negate bool) *Field {
	var neg secp256k1.FieldVal
	neg.NegateVal(&f.f, 1).Normalize()
	var mask uint32
	if negate {
		mask = 1
	}
	// f = f + mask*(neg - f), computed on canonical bytes
	a, b := f.f.Bytes(), neg.Bytes()
	m := byte(0) - byte(mask)
	var out [32]byte
	for i := range out {
		out[i] = a[i] ^ (m & (a[i] ^ b[i]))
	}
	f.f.SetBytes(&out)
	return f
}

// Set sets f = x, and returns f.
func (f *Field) Set(x *Field) *Field {
	f.f.Set(&x.f)
	return f
}

// SetUInt sets f = x, and returns f.
func (f *Field) SetUInt(x uint16) *Field {
	f.f.SetInt(x)
	return f
}

// SetDigest interprets digest as a big-endian integer and sets f to it.
// It returns false, leaving f reduced mod p, when the integer is not below p.
func (f *Field) SetDigest(digest *[32]byte) bool {
	overflow := f.f.SetBytes(digest)
	f.f.Normalize()
	return overflow == 0
}

// Bytes returns the canonical 32 bytes big-endian encoding of f.
func (f *Field) Bytes() [32]byte {
	return *f.f.Bytes()
}

// Hex returns the lower case hexadecimal encoding of Bytes, without prefix.
func (f *Field) Hex() string {
	b := f.f.Bytes()
	return hex.EncodeToString(b[:])
}

// Equal returns true if f and g are equal.
func (f *Field) Equal(g *Field) bool {
	return f.f.Equals(&g.f)
}

// IsZero returns true if f = 0.
func (f *Field) IsZero() bool {
	return f.f.IsZero()
}

// IsOne returns true if f = 1.
func (f *Field) IsOne() bool {
	return f.f.IsOne()
}

// IsOdd returns true if the canonical representative of f is odd.
func (f *Field) IsOdd() bool {
	return f.f.IsOdd()
}
