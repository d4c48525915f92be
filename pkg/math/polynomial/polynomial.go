package polynomial

import (
	"errors"
	"io"

	"github.com/taurusgroup/threshold-vrf/pkg/math/curve"
	"github.com/taurusgroup/threshold-vrf/pkg/math/sample"
)

// Polynomial represents f(X) = a₀ + a₁⋅X + … + aₜ⋅Xᵗ.
type Polynomial struct {
	coefficients []curve.Scalar
}

// NewPolynomial generates a Polynomial f(X) = secret + a₁⋅X + … + aₜ⋅Xᵗ,
// with coefficients in ℤₙ, and degree t.
func NewPolynomial(rand io.Reader, degree int, constant *curve.Scalar) (*Polynomial, error) {
	var polynomial Polynomial
	polynomial.coefficients = make([]curve.Scalar, degree+1)

	// if the constant is nil, we interpret it as 0.
	if constant != nil {
		polynomial.coefficients[0].Set(constant)
	}

	for i := 1; i <= degree; i++ {
		a, err := sample.Scalar(rand)
		if err != nil {
			return nil, err
		}
		polynomial.coefficients[i].Set(a)
	}

	return &polynomial, nil
}

// Evaluate evaluates a polynomial in a given variable index.
// We use Horner's method: https://en.wikipedia.org/wiki/Horner%27s_method
func (p *Polynomial) Evaluate(index *curve.Scalar) (*curve.Scalar, error) {
	if index.IsZero() {
		return nil, errors.New("polynomial: attempt to leak secret")
	}

	result := curve.NewScalar()
	// reverse order
	for i := len(p.coefficients) - 1; i >= 0; i-- {
		// bₙ₋₁ = bₙ * x + aₙ₋₁
		result.MultiplyAdd(result, index, &p.coefficients[i])
	}
	return result, nil
}

// Constant returns a reference to the constant coefficient of the polynomial.
func (p *Polynomial) Constant() *curve.Scalar {
	return &p.coefficients[0]
}

// Degree is the highest power of the Polynomial.
func (p *Polynomial) Degree() int {
	return len(p.coefficients) - 1
}

// Zeroize overwrites all coefficients.
func (p *Polynomial) Zeroize() {
	for i := range p.coefficients {
		p.coefficients[i].Zeroize()
	}
}
