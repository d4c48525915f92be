package curve

import (
	"fmt"
	"io"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/taurusgroup/threshold-vrf/internal/params"
)

// Point is a point of secp256k1, held in Jacobian coordinates.
//
// The zero value is the point at infinity.
type Point struct {
	p secp256k1.JacobianPoint
}

// NewIdentityPoint returns the point at infinity.
func NewIdentityPoint() *Point {
	return &Point{}
}

// NewBasePoint returns the generator G.
func NewBasePoint() *Point {
	var v Point
	return v.ScalarBaseMult(NewScalarUInt32(1))
}

// Set sets v = u, and returns v.
func (v *Point) Set(u *Point) *Point {
	v.p.Set(&u.p)
	return v
}

// SetCoordinates sets v = (x, y) and returns ErrInvalidPoint if (x, y) is not on the curve.
func (v *Point) SetCoordinates(x, y *Field) (*Point, error) {
	if !isOnCurve(x, y) {
		return nil, ErrInvalidPoint
	}
	v.p = secp256k1.MakeJacobianPoint(&x.f, &y.f, new(secp256k1.FieldVal).SetInt(1))
	return v, nil
}

// Add sets v = p + q, and returns v.
func (v *Point) Add(p, q *Point) *Point {
	var r secp256k1.JacobianPoint
	secp256k1.AddNonConst(&p.p, &q.p, &r)
	v.p.Set(&r)
	return v
}

// Subtract sets v = p - q, and returns v.
func (v *Point) Subtract(p, q *Point) *Point {
	var qNeg Point
	qNeg.Negate(q)
	return v.Add(p, &qNeg)
}

// Negate sets v = -p, and returns v.
func (v *Point) Negate(p *Point) *Point {
	v.p.Set(&p.p)
	v.p.Y.Normalize().Negate(1).Normalize()
	return v
}

// ScalarBaseMult sets v = x⋅G, and returns v.
func (v *Point) ScalarBaseMult(x *Scalar) *Point {
	var r secp256k1.JacobianPoint
	secp256k1.ScalarBaseMultNonConst(&x.s, &r)
	v.p.Set(&r)
	return v
}

// ScalarMult sets v = x⋅q, and returns v.
func (v *Point) ScalarMult(x *Scalar, q *Point) *Point {
	var r secp256k1.JacobianPoint
	secp256k1.ScalarMultNonConst(&x.s, &q.p, &r)
	v.p.Set(&r)
	return v
}

// DoubleScalarMult sets v = a⋅P + b⋅G, and returns v.
func (v *Point) DoubleScalarMult(a *Scalar, p *Point, b *Scalar) *Point {
	var aP, bG Point
	aP.ScalarMult(a, p)
	bG.ScalarBaseMult(b)
	return v.Add(&aP, &bG)
}

// Equal returns true if v and u represent the same point.
func (v *Point) Equal(u *Point) bool {
	vIdentity, uIdentity := v.IsIdentity(), u.IsIdentity()
	if vIdentity || uIdentity {
		return vIdentity == uIdentity
	}
	a, b := v.affine(), u.affine()
	return a.X.Equals(&b.X) && a.Y.Equals(&b.Y)
}

// IsIdentity returns true if v is the point at infinity.
func (v *Point) IsIdentity() bool {
	return (v.p.X.IsZero() && v.p.Y.IsZero()) || v.p.Z.IsZero()
}

// IsOnCurve returns true if v is a finite point satisfying y² = x³ + 7.
func (v *Point) IsOnCurve() bool {
	if v.IsIdentity() {
		return false
	}
	x, y := v.XY()
	return isOnCurve(x, y)
}

// XY returns the normalized affine coordinates of v.
//
// The identity has no affine form; both coordinates are then zero.
func (v *Point) XY() (*Field, *Field) {
	var x, y Field
	if v.IsIdentity() {
		return &x, &y
	}
	a := v.affine()
	x.f.Set(&a.X)
	y.f.Set(&a.Y)
	return &x, &y
}

// X returns the normalized affine x coordinate of v.
func (v *Point) X() *Field {
	x, _ := v.XY()
	return x
}

// Y returns the normalized affine y coordinate of v.
func (v *Point) Y() *Field {
	_, y := v.XY()
	return y
}

// Bytes returns x ‖ y, each coordinate 32 bytes big-endian.
func (v *Point) Bytes() ([params.BytesPoint]byte, error) {
	var out [params.BytesPoint]byte
	if v.IsIdentity() {
		return out, fmt.Errorf("curve.Point.Bytes: %w: identity has no affine encoding", ErrInvalidPoint)
	}
	x, y := v.XY()
	xb, yb := x.Bytes(), y.Bytes()
	copy(out[:params.BytesField], xb[:])
	copy(out[params.BytesField:], yb[:])
	return out, nil
}

// WriteTo implements io.WriterTo and should be used within the hash.Hash function.
// It writes the affine point x ‖ y to w, ie 64 bytes.
func (v *Point) WriteTo(w io.Writer) (int64, error) {
	data, err := v.Bytes()
	if err != nil {
		return 0, err
	}
	n, err := w.Write(data[:])
	return int64(n), err
}

// String returns the affine coordinates as (x, y) in hexadecimal.
func (v *Point) String() string {
	if v.IsIdentity() {
		return "(∞)"
	}
	x, y := v.XY()
	return "(" + x.Hex() + ", " + y.Hex() + ")"
}

// affine returns a normalized copy of v with Z = 1.
func (v *Point) affine() secp256k1.JacobianPoint {
	var a secp256k1.JacobianPoint
	a.Set(&v.p)
	a.ToAffine()
	return a
}

func isOnCurve(x, y *Field) bool {
	var lhs, rhs Field
	lhs.Square(y)
	rhs.Square(x)
	rhs.Multiply(&rhs, x)
	rhs.Add(&rhs, &curveB)
	return lhs.Equal(&rhs)
}
