package polynomial

import "github.com/taurusgroup/threshold-vrf/pkg/math/curve"

// Exponent represents a polynomial whose coefficients are points on an elliptic curve.
//
// F(X) = [a₀ + a₁⋅X + … + aₜ⋅Xᵗ]⋅G, so F(i) is the public key of the share f(i).
type Exponent struct {
	coefficients []*curve.Point
}

// NewPolynomialExponent generates an Exponent polynomial F(X) = [secret + a₁⋅X + … + aₜ⋅Xᵗ]⋅G,
// with coefficients in G, and degree t.
func NewPolynomialExponent(polynomial *Polynomial) *Exponent {
	var p Exponent

	p.coefficients = make([]*curve.Point, len(polynomial.coefficients))
	for i := range p.coefficients {
		p.coefficients[i] = curve.NewIdentityPoint().ScalarBaseMult(&polynomial.coefficients[i])
	}

	return &p
}

// Evaluate returns F(index) using Horner's method.
func (p *Exponent) Evaluate(index *curve.Scalar) *curve.Point {
	result := curve.NewIdentityPoint()
	for i := len(p.coefficients) - 1; i >= 0; i-- {
		// Bₙ₋₁ = [x]Bₙ + Aₙ₋₁
		result.ScalarMult(index, result)
		result.Add(result, p.coefficients[i])
	}
	return result
}

// Constant returns F(0), the group public key.
func (p *Exponent) Constant() *curve.Point {
	return curve.NewIdentityPoint().Set(p.coefficients[0])
}

func (p *Exponent) Degree() int {
	return len(p.coefficients) - 1
}
