package curve

import "fmt"

// ProjectivePoint is a sum (X/Z, Y/Z) whose inversion has been deferred.
//
// Both affine coordinates share the denominator Z, so a verifier that is given
// Z⁻¹ recovers the affine point with two multiplications.
type ProjectivePoint struct {
	X, Y, Z Field
}

// fraction is num/den over 𝔽ₚ.
type fraction struct {
	num, den Field
}

func wholeFraction(f *Field) fraction {
	var out fraction
	out.num.Set(f)
	out.den.SetUInt(1)
	return out
}

// sub returns a - b = (a.num⋅b.den - b.num⋅a.den) / (a.den⋅b.den).
func (a fraction) sub(b fraction) fraction {
	var out fraction
	var t Field
	out.num.Multiply(&b.den, &a.num)
	t.Multiply(&a.den, &b.num)
	out.num.Subtract(&out.num, &t)
	out.den.Multiply(&a.den, &b.den)
	return out
}

// mul returns a⋅b, componentwise.
func (a fraction) mul(b fraction) fraction {
	var out fraction
	out.num.Multiply(&a.num, &b.num)
	out.den.Multiply(&a.den, &b.den)
	return out
}

// ProjectiveAdd returns p + q with the final inversion deferred.
//
// With the slope λ = (y₂ - y₁)/(x₂ - x₁) kept as a fraction:
//
//	s₁ = λ² - x₁ - x₂
//	s₂ = (x₁ - s₁)⋅λ - y₁
//
// and s₁, s₂ are brought over the common denominator Z.
// The inputs must be distinct, finite and not inverse of one another, otherwise Z = 0.
func ProjectiveAdd(p, q *Point) ProjectivePoint {
	x1, y1 := p.XY()
	x2, y2 := q.XY()
	fx1, fy1 := wholeFraction(x1), wholeFraction(y1)
	fx2 := wholeFraction(x2)

	var lambda fraction
	lambda.num.Subtract(y2, y1)
	lambda.den.Subtract(x2, x1)

	s1 := lambda.mul(lambda).sub(fx1).sub(fx2)
	s2 := fx1.sub(s1).mul(lambda).sub(fy1)

	var out ProjectivePoint
	if s1.den.Equal(&s2.den) {
		out.X.Set(&s1.num)
		out.Y.Set(&s2.num)
		out.Z.Set(&s1.den)
		return out
	}
	out.X.Multiply(&s1.num, &s2.den)
	out.Y.Multiply(&s2.num, &s1.den)
	out.Z.Multiply(&s1.den, &s2.den)
	return out
}

// InverseZ returns Z⁻¹, or zero when Z = 0.
func (pp *ProjectivePoint) InverseZ() *Field {
	return new(Field).Invert(&pp.Z)
}

// Affine returns (X⋅invZ, Y⋅invZ) after checking that invZ is the inverse of Z.
func (pp *ProjectivePoint) Affine(invZ *Field) (*Point, error) {
	var check Field
	check.Multiply(&pp.Z, invZ)
	if !check.IsOne() {
		return nil, fmt.Errorf("curve.ProjectivePoint: %w: Z⋅invZ ≠ 1", ErrInvalidPoint)
	}
	var x, y Field
	x.Multiply(&pp.X, invZ)
	y.Multiply(&pp.Y, invZ)
	return new(Point).SetCoordinates(&x, &y)
}
